package app

import (
	"database/sql"

	"go-hcm/internal/contract"
	"go-hcm/internal/department"
	"go-hcm/internal/employee"
	"go-hcm/internal/evaluation"
	"go-hcm/internal/healthplan"
	"go-hcm/internal/messaging/kafka"
	"go-hcm/internal/middleware"
	"go-hcm/internal/pensionfund"
	"go-hcm/internal/position"
	"go-hcm/internal/remuneration"
	"go-hcm/internal/shared/counter"
	"go-hcm/internal/training"
	"go-hcm/internal/vacation"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	contractRepo := contract.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	evaluationRepo := evaluation.NewRepository(gormDB)
	healthPlanRepo := healthplan.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	pensionFundRepo := pensionfund.NewRepository(gormDB)
	positionRepo := position.NewRepository(gormDB)
	remunerationRepo := remuneration.NewRepository(gormDB)
	trainingRepo := training.NewRepository(gormDB)
	vacationDirectory := vacation.NewDirectory(gormDB)
	vacationRepo := vacation.NewRepository(gormDB)

	// --- Services ---
	contractService := contract.NewService(db, contractRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb)
	evaluationService := evaluation.NewService(db, evaluationRepo)
	healthPlanService := healthplan.NewService(db, healthPlanRepo)
	pensionFundService := pensionfund.NewService(db, pensionFundRepo)
	positionService := position.NewService(db, positionRepo)
	remunerationService := remuneration.NewService(db, remunerationRepo)
	trainingService := training.NewService(db, trainingRepo)
	vacationService := vacation.NewServiceWithOutbox(db, vacationRepo, vacationDirectory, outboxRepo)

	// --- Handlers ---
	contractHandler := contract.NewHandler(contractService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	evaluationHandler := evaluation.NewHandler(evaluationService)
	healthPlanHandler := healthplan.NewHandler(healthPlanService)
	pensionFundHandler := pensionfund.NewHandler(pensionFundService)
	positionHandler := position.NewHandler(positionService)
	remunerationHandler := remuneration.NewHandler(remunerationService)
	trainingHandler := training.NewHandler(trainingService)
	vacationHandler := vacation.NewHandlerWithRedis(vacationService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb))
	{
		contract.RegisterRoutes(api, contractHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		evaluation.RegisterRoutes(api, evaluationHandler)
		healthplan.RegisterRoutes(api, healthPlanHandler)
		pensionfund.RegisterRoutes(api, pensionFundHandler)
		position.RegisterRoutes(api, positionHandler)
		remuneration.RegisterRoutes(api, remunerationHandler)
		training.RegisterRoutes(api, trainingHandler)
		vacation.RegisterRoutes(api, vacationHandler)
	}

	return nil
}
