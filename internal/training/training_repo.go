package training

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Training) error
	FindAll(ctx context.Context) ([]Training, error)
	FindByID(ctx context.Context, id string) (*Training, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Training, error)
	Update(ctx context.Context, t *Training) error
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

func (r *repository) Create(ctx context.Context, t *Training) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Training, error) {
	var trainings []Training
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&trainings).Error
	return trainings, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Training, error) {
	var t Training
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Training, error) {
	var trainings []Training
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&trainings).Error
	return trainings, err
}

func (r *repository) Update(ctx context.Context, t *Training) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Training{}, "id = ?", id).Error
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
