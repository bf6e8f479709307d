package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_number"`
	Rut            string    `gorm:"type:varchar(20)"`
	FirstName      string    `gorm:"type:varchar(50)"`
	LastName       string    `gorm:"type:varchar(50)"`
	BirthDate      *time.Time `gorm:"type:date"`
	StartDate      time.Time  `gorm:"type:date;not null"`
	Email          string     `gorm:"type:varchar(320);uniqueIndex:uq_employee_email"`
	Phone          string     `gorm:"type:varchar(20)"`
	Salary         decimal.Decimal `gorm:"type:numeric(10,2)"`
	Nationality    string          `gorm:"type:varchar(50)"`
	ActiveEmployee bool            `gorm:"not null;default:true"`

	AFPID        *uuid.UUID `gorm:"type:uuid"`
	HealthPlanID *uuid.UUID `gorm:"type:uuid"`

	// Vacation ledger state. AccumulatedDays is mutated only by the
	// vacation service; LongServiceEmployee raises the annual grant.
	AccumulatedDays     int  `gorm:"not null;default:0"`
	LongServiceEmployee bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_employees_deleted_at"`
}
