package healthplan

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-hcm/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errInvalidDiscount = apperror.New(
	apperror.CodeInvalidInput,
	"invalid discount amount",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreateHealthPlanRequest) (HealthPlanResponse, error)
	GetAll(ctx context.Context) ([]HealthPlanResponse, error)
	GetByID(ctx context.Context, id string) (HealthPlanResponse, error)
	Update(ctx context.Context, id string, req UpdateHealthPlanRequest) (HealthPlanResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateHealthPlanRequest) (HealthPlanResponse, error) {
	discount, err := decimal.NewFromString(req.Discount)
	if err != nil {
		return HealthPlanResponse{}, errInvalidDiscount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HealthPlanResponse{}, err
	}
	defer tx.Rollback()

	p := &HealthPlan{
		ID:       uuid.New(),
		Name:     req.Name,
		Type:     req.Type,
		Discount: discount,
	}

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		return HealthPlanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HealthPlanResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]HealthPlanResponse, error) {
	plans, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(plans), nil
}

func (s *service) GetByID(ctx context.Context, id string) (HealthPlanResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HealthPlanResponse{}, apperror.ErrNotFound
		}
		return HealthPlanResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHealthPlanRequest) (HealthPlanResponse, error) {
	discount, err := decimal.NewFromString(req.Discount)
	if err != nil {
		return HealthPlanResponse{}, errInvalidDiscount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HealthPlanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return HealthPlanResponse{}, apperror.ErrNotFound
		}
		return HealthPlanResponse{}, err
	}

	p.Name = req.Name
	p.Type = req.Type
	p.Discount = discount

	if err := qtx.Update(ctx, p); err != nil {
		return HealthPlanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HealthPlanResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(p HealthPlan) HealthPlanResponse {
	return HealthPlanResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Type:     p.Type,
		Discount: p.Discount.StringFixed(2),
	}
}

func mapToListResponse(plans []HealthPlan) []HealthPlanResponse {
	resp := make([]HealthPlanResponse, len(plans))
	for i, p := range plans {
		resp[i] = mapToResponse(p)
	}
	return resp
}
