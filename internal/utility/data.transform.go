package utility

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultTimeFormat là layout mặc định khi tag str_time không khai báo format
const defaultTimeFormat = "2006-01-02T15:04:05"

// transformTagConfig là cấu hình đọc từ tag transform trên field DTO.
// Naming convention của Type: <kiểu_input>_<kiểu_output>, ví dụ str_objectid.
type transformTagConfig struct {
	Type     string // str_objectid, str_objectid_ptr, str_time, str_int64, str_bool, str_number; rỗng = giữ nguyên
	Format   string // Layout time cho str_time
	Default  string // Giá trị thay thế khi input rỗng
	Optional bool   // Input rỗng thì bỏ qua field
	Required bool   // Input rỗng thì báo lỗi
	MapTo    string // Tên field đích trong Model khi khác tên field DTO
}

// ParseTransformTag đọc tag transform thành config.
// Format tag: "<type>[,format=<layout>][,default=<value>][,map=<field>][,optional|required]"
//
// Ví dụ:
//   - transform:"str_objectid"                  → string → primitive.ObjectID
//   - transform:"str_time,format=2006-01-02"    → string → int64 timestamp (ms)
//   - transform:"str_objectid,optional"         → rỗng thì bỏ qua
//   - transform:"str_objectid,map=ParentID"     → ghi vào field ParentID của Model
func ParseTransformTag(tag string) (*transformTagConfig, error) {
	return parseTransformTag(tag)
}

func parseTransformTag(tag string) (*transformTagConfig, error) {
	config := &transformTagConfig{Format: defaultTimeFormat}
	if tag == "" {
		return config, nil
	}

	parts := strings.Split(tag, ",")
	config.Type = strings.TrimSpace(parts[0])

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case "optional":
			config.Optional = true
			continue
		case "required":
			config.Required = true
			continue
		}

		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "format":
			config.Format = strings.TrimSpace(value)
		case "default":
			config.Default = strings.TrimSpace(value)
		case "map":
			config.MapTo = strings.TrimSpace(value)
		}
	}

	return config, nil
}

// TransformFieldValue convert giá trị field DTO sang kiểu của field Model
// theo config đã parse từ tag. Giá trị rỗng được xử lý theo thứ tự ưu tiên
// default → optional → required.
func TransformFieldValue(value interface{}, config *transformTagConfig, targetFieldType reflect.Type) (interface{}, error) {
	if isEmptyInput(value) {
		if config.Default != "" {
			return convertValue(config.Default, config)
		}
		if config.Required {
			return nil, fmt.Errorf("field là required nhưng không có giá trị")
		}
		// Optional hoặc không ràng buộc: bỏ qua field
		return nil, nil
	}

	return convertValue(value, config)
}

// isEmptyInput coi nil và chuỗi rỗng là không có giá trị
func isEmptyInput(value interface{}) bool {
	if value == nil {
		return true
	}
	str, ok := value.(string)
	return ok && str == ""
}

// convertValue dispatch theo transform type. Type rỗng hoặc không nhận ra
// thì giữ nguyên giá trị gốc.
func convertValue(value interface{}, config *transformTagConfig) (interface{}, error) {
	switch config.Type {
	case "str_objectid":
		return toObjectID(value)
	case "str_objectid_ptr":
		return toObjectIDPtr(value)
	case "str_time":
		return toUnixMilli(value, config.Format)
	case "str_number":
		return toNumber(value)
	case "str_int64":
		return toInt64(value)
	case "str_bool":
		return toBool(value)
	default:
		return value, nil
	}
}

func toObjectID(value interface{}) (primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return primitive.NilObjectID, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("không thể convert '%s' sang ObjectID: %w", strValue, err)
	}
	return objID, nil
}

func toObjectIDPtr(value interface{}) (*primitive.ObjectID, error) {
	strValue, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return nil, nil
	}

	objID, err := primitive.ObjectIDFromHex(strValue)
	if err != nil {
		return nil, fmt.Errorf("không thể convert '%s' sang ObjectID: %w", strValue, err)
	}
	return &objID, nil
}

// toUnixMilli parse chuỗi time theo layout và trả về timestamp milli giây
func toUnixMilli(value interface{}, format string) (int64, error) {
	strValue, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("giá trị không phải là string: %T", value)
	}
	if strValue == "" {
		return 0, nil
	}

	t, err := time.Parse(format, strValue)
	if err != nil {
		return 0, fmt.Errorf("không thể parse time '%s' với format '%s': %w", strValue, format, err)
	}
	return t.UnixMilli(), nil
}

// toNumber convert sang int64 nếu giá trị nguyên, float64 nếu có phần thập phân
func toNumber(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		if intVal, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intVal, nil
		}
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal, nil
		}
		// Không parse được thì giữ nguyên chuỗi
		return v, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return v, nil
	default:
		return fmt.Sprintf("%v", value), nil
	}
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("không thể convert %T sang int64", value)
	}
}

func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("không thể convert %T sang bool", value)
	}
}
