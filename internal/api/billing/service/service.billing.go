// Package billingsvc - service các gói subscription và gói token.
package billingsvc

import (
	"fmt"

	basesvc "interview_admin/internal/api/base/service"
	models "interview_admin/internal/api/billing/models"
	"interview_admin/internal/common"
	"interview_admin/internal/global"
)

// TierService là cấu trúc chứa các phương thức liên quan đến gói subscription
type TierService struct {
	*basesvc.BaseServiceMongoImpl[models.Tier]
}

// NewTierService tạo mới TierService
func NewTierService() (*TierService, error) {
	tierCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tiers)
	if !exist {
		return nil, fmt.Errorf("failed to get tiers collection: %v", common.ErrNotFound)
	}

	return &TierService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Tier](tierCollection),
	}, nil
}

// TokenPackageService là cấu trúc chứa các phương thức liên quan đến gói token
type TokenPackageService struct {
	*basesvc.BaseServiceMongoImpl[models.TokenPackage]
}

// NewTokenPackageService tạo mới TokenPackageService
func NewTokenPackageService() (*TokenPackageService, error) {
	packageCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TokenPackages)
	if !exist {
		return nil, fmt.Errorf("failed to get packages collection: %v", common.ErrNotFound)
	}

	return &TokenPackageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TokenPackage](packageCollection),
	}, nil
}
