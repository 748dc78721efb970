// Package utility - Test parse tag transform và convert giá trị DTO → Model.
package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := parseTransformTag("str_objectid")
	require.NoError(t, err)
	assert.Equal(t, "str_objectid", config.Type)
	assert.False(t, config.Optional)
	assert.False(t, config.Required)

	config, err = parseTransformTag("str_objectid,optional")
	require.NoError(t, err)
	assert.True(t, config.Optional)

	config, err = parseTransformTag("str_time,format=2006-01-02,required")
	require.NoError(t, err)
	assert.Equal(t, "str_time", config.Type)
	assert.Equal(t, "2006-01-02", config.Format)
	assert.True(t, config.Required)

	config, err = parseTransformTag("str_objectid,map=ParentID,default=abc")
	require.NoError(t, err)
	assert.Equal(t, "ParentID", config.MapTo)
	assert.Equal(t, "abc", config.Default)

	// Tag rỗng nghĩa là không transform
	config, err = parseTransformTag("")
	require.NoError(t, err)
	assert.Equal(t, "", config.Type)
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	config, err := parseTransformTag("str_objectid")
	require.NoError(t, err)

	targetType := reflect.TypeOf(primitive.ObjectID{})
	hex := "65f1a2b3c4d5e6f7a8b9c0d1"

	result, err := TransformFieldValue(hex, config, targetType)
	require.NoError(t, err)
	objID, ok := result.(primitive.ObjectID)
	require.True(t, ok, "kết quả phải là primitive.ObjectID, nhận %T", result)
	assert.Equal(t, hex, objID.Hex())

	// Hex không hợp lệ phải trả lỗi
	_, err = TransformFieldValue("không-phải-hex", config, targetType)
	assert.Error(t, err)
}

func TestTransformFieldValue_RequiredEmpty(t *testing.T) {
	config, err := parseTransformTag("str_objectid,required")
	require.NoError(t, err)

	_, err = TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err, "field required với giá trị rỗng phải trả lỗi")

	_, err = TransformFieldValue(nil, config, reflect.TypeOf(primitive.ObjectID{}))
	assert.Error(t, err, "field required với giá trị nil phải trả lỗi")
}

func TestTransformFieldValue_OptionalEmpty(t *testing.T) {
	config, err := parseTransformTag("str_objectid,optional")
	require.NoError(t, err)

	result, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	require.NoError(t, err)
	assert.Nil(t, result, "field optional rỗng phải bị bỏ qua")
}

func TestTransformFieldValue_Bool(t *testing.T) {
	config, err := parseTransformTag("str_bool")
	require.NoError(t, err)

	result, err := TransformFieldValue("true", config, reflect.TypeOf(true))
	require.NoError(t, err)
	assert.Equal(t, true, result)

	result, err = TransformFieldValue("false", config, reflect.TypeOf(true))
	require.NoError(t, err)
	assert.Equal(t, false, result)
}
