package remuneration

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Remuneration) error
	FindAll(ctx context.Context) ([]Remuneration, error)
	FindByID(ctx context.Context, id string) (*Remuneration, error)
	FindByEmployee(ctx context.Context, employeeID string) (*Remuneration, error)
	Update(ctx context.Context, r *Remuneration) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, rem *Remuneration) error {
	return r.db.WithContext(ctx).Create(rem).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Remuneration, error) {
	var rems []Remuneration
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rems).Error
	return rems, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Remuneration, error) {
	var rem Remuneration
	err := r.db.WithContext(ctx).First(&rem, "id = ?", id).Error
	return &rem, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*Remuneration, error) {
	var rem Remuneration
	err := r.db.WithContext(ctx).First(&rem, "employee_id = ?", employeeID).Error
	return &rem, err
}

func (r *repository) Update(ctx context.Context, rem *Remuneration) error {
	return r.db.WithContext(ctx).Save(rem).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Remuneration{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
