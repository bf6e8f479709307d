package healthplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeFonasa = "FONASA"
	TypeIsapre = "ISAPRE"
)

// HealthPlan covers both the public (FONASA) and private (ISAPRE) systems;
// Type discriminates and Discount holds the plan's payroll deduction.
type HealthPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Discount  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_health_plans_deleted_at"`
}
