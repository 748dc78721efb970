// Package billinghdl - handler các gói subscription và gói token.
package billinghdl

import (
	"fmt"

	basehdl "interview_admin/internal/api/base/handler"
	billingdto "interview_admin/internal/api/billing/dto"
	models "interview_admin/internal/api/billing/models"
	billingsvc "interview_admin/internal/api/billing/service"
)

// TierHandler xử lý các request CRUD gói subscription
type TierHandler struct {
	*basehdl.BaseHandler[models.Tier, billingdto.TierCreateInput, billingdto.TierUpdateInput]
}

// NewTierHandler tạo instance mới của TierHandler
func NewTierHandler() (*TierHandler, error) {
	tierService, err := billingsvc.NewTierService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tier service: %v", err)
	}
	return &TierHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Tier, billingdto.TierCreateInput, billingdto.TierUpdateInput](tierService),
	}, nil
}

// TokenPackageHandler xử lý các request CRUD gói token
type TokenPackageHandler struct {
	*basehdl.BaseHandler[models.TokenPackage, billingdto.TokenPackageCreateInput, billingdto.TokenPackageUpdateInput]
}

// NewTokenPackageHandler tạo instance mới của TokenPackageHandler
func NewTokenPackageHandler() (*TokenPackageHandler, error) {
	packageService, err := billingsvc.NewTokenPackageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create token package service: %v", err)
	}
	return &TokenPackageHandler{
		BaseHandler: basehdl.NewBaseHandler[models.TokenPackage, billingdto.TokenPackageCreateInput, billingdto.TokenPackageUpdateInput](packageService),
	}, nil
}
