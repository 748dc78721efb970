// Package router đăng ký các route thuộc domain billing.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	billinghdl "interview_admin/internal/api/billing/handler"
	apirouter "interview_admin/internal/api/router"
)

// Register đăng ký các route gói subscription và gói token lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tierHandler, err := billinghdl.NewTierHandler()
	if err != nil {
		return fmt.Errorf("failed to create tier handler: %w", err)
	}
	packageHandler, err := billinghdl.NewTokenPackageHandler()
	if err != nil {
		return fmt.Errorf("failed to create token package handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/tier", tierHandler, apirouter.ReadWriteConfig)
	r.RegisterCRUDRoutes(v1, "/token-package", packageHandler, apirouter.ReadWriteConfig)
	return nil
}
