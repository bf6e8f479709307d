package vacation

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Repository is the append-only store for ledger entries.
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, v *Vacation) error
	FindAll(ctx context.Context) ([]Vacation, error)
	FindByID(ctx context.Context, id string) (*Vacation, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Vacation, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, v *Vacation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&vacations).Error
	return vacations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Vacation, error) {
	var v Vacation
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Vacation, error) {
	var vacations []Vacation
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&vacations).Error
	return vacations, err
}
