package pensionfund

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PensionFund is an AFP an employee can be affiliated with.
type PensionFund struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(100);not null"`
	CommissionPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index:idx_pension_funds_deleted_at"`
}
