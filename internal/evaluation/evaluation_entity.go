package evaluation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Evaluation is a periodic performance review entry for an employee.
// Factor is the weighted score used by the rating scale.
type Evaluation struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_evaluations_employee_id"`
	Date       time.Time       `gorm:"type:date;not null"`
	Evaluator  string          `gorm:"type:varchar(100);not null"`
	Factor     decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Rating     string          `gorm:"type:varchar(50);not null"`
	Comments   string          `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_evaluations_deleted_at"`
}
