package app

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/additionalinfo"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/address"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/contactinfo"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	publisher employee.EventPublisher,
) error {
	// --- Repositories ---
	addressRepo := address.NewRepository(gormDB)
	contactInfoRepo := contactinfo.NewRepository(gormDB)
	additionalInfoRepo := additionalinfo.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	addressService := address.NewService(addressRepo)
	contactInfoService := contactinfo.NewService(contactInfoRepo)
	additionalInfoService := additionalinfo.NewService(additionalInfoRepo)
	employeeService := employee.NewService(employeeRepo, publisher, rdb)

	// --- Handlers ---
	addressHandler := address.NewHandler(addressService)
	contactInfoHandler := contactinfo.NewHandler(contactInfoService)
	additionalInfoHandler := additionalinfo.NewHandler(additionalInfoService)
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		address.RegisterRoutes(api, addressHandler)
		contactinfo.RegisterRoutes(api, contactInfoHandler)
		additionalinfo.RegisterRoutes(api, additionalInfoHandler)
		employee.RegisterRoutes(api, employeeHandler)
	}

	return nil
}
