package app

import (
	"os"
	"strings"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/additionalinfo"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/address"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/contactinfo"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/employee"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/messaging/kafka"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure and registers every module's routes
// on the router. The Kafka broker and Redis are optional; the employee
// module degrades to a no-op publisher and an uncached options endpoint
// when they are absent.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, employee options cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	var publisher employee.EventPublisher
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = employee.NewKafkaEventPublisher(kafka.NewPublisher(strings.Split(brokers, ",")))
		zap.L().Info("kafka publisher configured", zap.String("brokers", brokers))
	}

	return registerModules(router, db, redisClient, publisher)
}

func migrate(db *gorm.DB) error {
	if err := db.Table(address.Present.Table()).AutoMigrate(&address.Address{}); err != nil {
		return err
	}
	if err := db.Table(address.Permanent.Table()).AutoMigrate(&address.Address{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&contactinfo.ContactInformation{},
		&additionalinfo.AdditionalInformation{},
		&employee.Employee{},
	)
}
