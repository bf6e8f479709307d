package pensionfund

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PensionFund) error
	FindAll(ctx context.Context) ([]PensionFund, error)
	FindByID(ctx context.Context, id string) (*PensionFund, error)
	Update(ctx context.Context, p *PensionFund) error
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

func (r *repository) Create(ctx context.Context, p *PensionFund) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PensionFund, error) {
	var funds []PensionFund
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&funds).Error
	return funds, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PensionFund, error) {
	var p PensionFund
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *PensionFund) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&PensionFund{}, "id = ?", id).Error
}
