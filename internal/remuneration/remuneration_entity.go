package remuneration

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Remuneration is the current salary breakdown for an employee. One line
// per employee; history lives in payroll, not here.
type Remuneration struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_remuneration_employee"`
	AFPID               *uuid.UUID      `gorm:"type:uuid"`
	HealthPlanID        *uuid.UUID      `gorm:"type:uuid"`
	GrossAmount         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Deductions          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Bonus               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	WelfareContribution decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetAmount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index:idx_remunerations_deleted_at"`
}
