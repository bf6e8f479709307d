package pensionfund

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

var errInvalidCommission = apperror.New(
	apperror.CodeInvalidInput,
	"invalid commission percentage",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreatePensionFundRequest) (PensionFundResponse, error)
	GetAll(ctx context.Context) ([]PensionFundResponse, error)
	GetByID(ctx context.Context, id string) (PensionFundResponse, error)
	Update(ctx context.Context, id string, req UpdatePensionFundRequest) (PensionFundResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePensionFundRequest) (PensionFundResponse, error) {
	commission, err := decimal.NewFromString(req.CommissionPercentage)
	if err != nil {
		return PensionFundResponse{}, errInvalidCommission
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PensionFundResponse{}, err
	}
	defer tx.Rollback()

	p := &PensionFund{
		ID:                   uuid.New(),
		Name:                 req.Name,
		CommissionPercentage: commission,
	}

	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		return PensionFundResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PensionFundResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PensionFundResponse, error) {
	funds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(funds), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PensionFundResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PensionFundResponse{}, apperror.ErrNotFound
		}
		return PensionFundResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePensionFundRequest) (PensionFundResponse, error) {
	commission, err := decimal.NewFromString(req.CommissionPercentage)
	if err != nil {
		return PensionFundResponse{}, errInvalidCommission
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PensionFundResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PensionFundResponse{}, apperror.ErrNotFound
		}
		return PensionFundResponse{}, err
	}

	p.Name = req.Name
	p.CommissionPercentage = commission

	if err := qtx.Update(ctx, p); err != nil {
		return PensionFundResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PensionFundResponse{}, err
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

func mapToResponse(p PensionFund) PensionFundResponse {
	return PensionFundResponse{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		CommissionPercentage: p.CommissionPercentage.StringFixed(2),
	}
}

func mapToListResponse(funds []PensionFund) []PensionFundResponse {
	resp := make([]PensionFundResponse, len(funds))
	for i, p := range funds {
		resp[i] = mapToResponse(p)
	}
	return resp
}
