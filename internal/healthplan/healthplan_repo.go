package healthplan

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *HealthPlan) error
	FindAll(ctx context.Context) ([]HealthPlan, error)
	FindByID(ctx context.Context, id string) (*HealthPlan, error)
	Update(ctx context.Context, p *HealthPlan) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, p *HealthPlan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]HealthPlan, error) {
	var plans []HealthPlan
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*HealthPlan, error) {
	var p HealthPlan
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *HealthPlan) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&HealthPlan{}, "id = ?", id).Error
}
