package training

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Training records a course an employee completed and the score obtained.
type Training struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_trainings_employee_id"`
	Date        time.Time       `gorm:"type:date;not null"`
	Course      string          `gorm:"type:varchar(150);not null"`
	Score       decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Institution string          `gorm:"type:varchar(150)"`
	Comments    string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_trainings_deleted_at"`
}
