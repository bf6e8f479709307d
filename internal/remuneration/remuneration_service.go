package remuneration

import (
	"context"
	"database/sql"
	"errors"

	remunerationerrors "go-hcm/internal/remuneration/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateRemunerationRequest) (RemunerationResponse, error)
	GetAll(ctx context.Context) ([]RemunerationResponse, error)
	GetByID(ctx context.Context, id string) (RemunerationResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (RemunerationResponse, error)
	Update(ctx context.Context, id string, req UpdateRemunerationRequest) (RemunerationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("remuneration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("remuneration.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

type amounts struct {
	gross      decimal.Decimal
	tax        decimal.Decimal
	deductions decimal.Decimal
	bonus      decimal.Decimal
	welfare    decimal.Decimal
}

func (a amounts) net() decimal.Decimal {
	return a.gross.Add(a.bonus).Sub(a.tax).Sub(a.deductions).Sub(a.welfare)
}

func parseAmounts(gross, tax, deductions, bonus, welfare string) (amounts, error) {
	var a amounts
	var err error
	if a.gross, err = decimal.NewFromString(gross); err != nil {
		return a, remunerationerrors.ErrInvalidAmount
	}
	if a.tax, err = decimal.NewFromString(tax); err != nil {
		return a, remunerationerrors.ErrInvalidAmount
	}
	if a.deductions, err = decimal.NewFromString(deductions); err != nil {
		return a, remunerationerrors.ErrInvalidAmount
	}
	if a.bonus, err = decimal.NewFromString(bonus); err != nil {
		return a, remunerationerrors.ErrInvalidAmount
	}
	if a.welfare, err = decimal.NewFromString(welfare); err != nil {
		return a, remunerationerrors.ErrInvalidAmount
	}
	return a, nil
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

func (s *service) Create(ctx context.Context, req CreateRemunerationRequest) (RemunerationResponse, error) {
	a, err := parseAmounts(req.GrossAmount, req.Tax, req.Deductions, req.Bonus, req.WelfareContribution)
	if err != nil {
		return RemunerationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create remuneration begin tx failed", zap.Error(err))
		return RemunerationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return RemunerationResponse{}, err
	}
	if !exists {
		return RemunerationResponse{}, remunerationerrors.ErrEmployeeNotFound
	}

	rem := &Remuneration{
		ID:                  uuid.New(),
		EmployeeID:          uuid.MustParse(req.EmployeeID),
		AFPID:               parseOptionalUUID(req.AFPID),
		HealthPlanID:        parseOptionalUUID(req.HealthPlanID),
		GrossAmount:         a.gross,
		Tax:                 a.tax,
		Deductions:          a.deductions,
		Bonus:               a.bonus,
		WelfareContribution: a.welfare,
		NetAmount:           a.net(),
	}

	if err := qtx.Create(ctx, rem); err != nil {
		return RemunerationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create remuneration commit failed", zap.Error(err))
		return RemunerationResponse{}, err
	}

	s.logger.Info("create remuneration success",
		zap.String("remuneration_id", rem.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*rem), nil
}

func (s *service) GetAll(ctx context.Context) ([]RemunerationResponse, error) {
	rems, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rems), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RemunerationResponse, error) {
	rem, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RemunerationResponse{}, remunerationerrors.ErrRemunerationNotFound
		}
		return RemunerationResponse{}, err
	}
	return mapToResponse(*rem), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (RemunerationResponse, error) {
	rem, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RemunerationResponse{}, remunerationerrors.ErrRemunerationNotFound
		}
		return RemunerationResponse{}, err
	}
	return mapToResponse(*rem), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRemunerationRequest) (RemunerationResponse, error) {
	a, err := parseAmounts(req.GrossAmount, req.Tax, req.Deductions, req.Bonus, req.WelfareContribution)
	if err != nil {
		return RemunerationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RemunerationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rem, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RemunerationResponse{}, remunerationerrors.ErrRemunerationNotFound
		}
		return RemunerationResponse{}, err
	}

	rem.AFPID = parseOptionalUUID(req.AFPID)
	rem.HealthPlanID = parseOptionalUUID(req.HealthPlanID)
	rem.GrossAmount = a.gross
	rem.Tax = a.tax
	rem.Deductions = a.deductions
	rem.Bonus = a.bonus
	rem.WelfareContribution = a.welfare
	rem.NetAmount = a.net()

	if err := qtx.Update(ctx, rem); err != nil {
		return RemunerationResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RemunerationResponse{}, err
	}

	return mapToResponse(*rem), nil
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

func mapToResponse(rem Remuneration) RemunerationResponse {
	resp := RemunerationResponse{
		ID:                  rem.ID.String(),
		EmployeeID:          rem.EmployeeID.String(),
		GrossAmount:         rem.GrossAmount.StringFixed(2),
		Tax:                 rem.Tax.StringFixed(2),
		Deductions:          rem.Deductions.StringFixed(2),
		Bonus:               rem.Bonus.StringFixed(2),
		WelfareContribution: rem.WelfareContribution.StringFixed(2),
		NetAmount:           rem.NetAmount.StringFixed(2),
	}
	if rem.AFPID != nil {
		v := rem.AFPID.String()
		resp.AFPID = &v
	}
	if rem.HealthPlanID != nil {
		v := rem.HealthPlanID.String()
		resp.HealthPlanID = &v
	}
	return resp
}

func mapToListResponse(rems []Remuneration) []RemunerationResponse {
	resp := make([]RemunerationResponse, len(rems))
	for i, rem := range rems {
		resp[i] = mapToResponse(rem)
	}
	return resp
}
