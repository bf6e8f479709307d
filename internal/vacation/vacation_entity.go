package vacation

import (
	"time"

	"github.com/google/uuid"
)

// Vacation is one ledger entry for a granted leave interval. Rows are
// append-only: they are never updated or deleted once written.
type Vacation struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_vacations_employee"`

	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`

	// DaysTaken is the inclusive span of [StartDate, EndDate].
	DaysTaken int `gorm:"not null"`

	// AccumulatedDaysAfter snapshots the employee balance immediately after
	// this entry was applied. The newest entry always matches the
	// employee's current balance.
	AccumulatedDaysAfter int `gorm:"not null"`

	// LongServiceEmployee is copied from the employee at recording time.
	LongServiceEmployee bool `gorm:"not null"`

	CreatedAt time.Time
}
