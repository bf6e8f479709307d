package vacation

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerEmployee is the slice of the employee record the ledger needs:
// tenure, running balance and the long-service flag.
type LedgerEmployee struct {
	ID                  uuid.UUID
	StartDate           time.Time
	AccumulatedDays     int
	LongServiceEmployee bool
}

// Directory resolves employees and persists balance changes. It is the only
// writer of accumulated_days.
type Directory interface {
	WithTx(tx *sql.Tx) Directory
	FindByID(ctx context.Context, id string) (*LedgerEmployee, error)
	SaveBalance(ctx context.Context, id string, accumulatedDays int) error
}

type directory struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) WithTx(tx *sql.Tx) Directory {
	return &directory{db: d.db, tx: tx}
}

func (d *directory) FindByID(ctx context.Context, id string) (*LedgerEmployee, error) {
	var e LedgerEmployee
	err := d.db.WithContext(ctx).
		Table("employees").
		Select("id", "start_date", "accumulated_days", "long_service_employee").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Take(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *directory) SaveBalance(ctx context.Context, id string, accumulatedDays int) error {
	result := d.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Updates(map[string]any{
			"accumulated_days": accumulatedDays,
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
