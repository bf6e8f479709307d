package contract

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contract struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_contracts_employee"`
	PositionID uuid.UUID `gorm:"type:uuid;not null"`

	ContractType   string `gorm:"type:varchar(30);not null"`
	Classification string `gorm:"type:varchar(30);not null"`

	StartDate        time.Time  `gorm:"type:date;not null"`
	EndDate          *time.Time `gorm:"type:date"`
	RegistrationDate time.Time  `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_contracts_deleted_at"`
}
