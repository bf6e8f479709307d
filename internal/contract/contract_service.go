package contract

import (
	"context"
	"database/sql"
	"errors"
	"time"

	contracterrors "go-hcm/internal/contract/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetAll(ctx context.Context) ([]ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]ContractResponse, error)
	Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error) {
	s.logger.Debug("create contract requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("contract_type", req.ContractType),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create contract begin tx failed", zap.Error(err))
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	startDate, endDate, err := parseContractDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return ContractResponse{}, err
	}
	if !exists {
		return ContractResponse{}, contracterrors.ErrEmployeeNotFound
	}

	exists, err = qtx.PositionExists(ctx, req.PositionID)
	if err != nil {
		return ContractResponse{}, err
	}
	if !exists {
		return ContractResponse{}, contracterrors.ErrPositionNotFound
	}

	c := &Contract{
		ID:               uuid.New(),
		EmployeeID:       uuid.MustParse(req.EmployeeID),
		PositionID:       uuid.MustParse(req.PositionID),
		ContractType:     req.ContractType,
		Classification:   req.Classification,
		StartDate:        startDate,
		EndDate:          endDate,
		RegistrationDate: time.Now().UTC(),
	}

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create contract persist failed", zap.Error(err))
		return ContractResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create contract commit failed", zap.Error(err))
		return ContractResponse{}, err
	}

	s.logger.Info("create contract success",
		zap.String("contract_id", c.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]ContractResponse, error) {
	contracts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(contracts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ContractResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
		return ContractResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]ContractResponse, error) {
	contracts, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(contracts), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContractResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContractResponse{}, contracterrors.ErrContractNotFound
		}
		return ContractResponse{}, err
	}

	startDate, endDate, err := parseContractDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	exists, err := qtx.PositionExists(ctx, req.PositionID)
	if err != nil {
		return ContractResponse{}, err
	}
	if !exists {
		return ContractResponse{}, contracterrors.ErrPositionNotFound
	}

	c.PositionID = uuid.MustParse(req.PositionID)
	c.ContractType = req.ContractType
	c.Classification = req.Classification
	c.StartDate = startDate
	c.EndDate = endDate

	if err := qtx.Update(ctx, c); err != nil {
		return ContractResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ContractResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// parseContractDates validates the YYYY-MM-DD pair; an empty end date leaves
// the contract open-ended.
func parseContractDates(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDateFormat
	}

	if end == "" {
		return startDate, nil, nil
	}

	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, nil, contracterrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, nil, contracterrors.ErrInvalidDateRange
	}
	return startDate, &endDate, nil
}

func mapToResponse(c Contract) ContractResponse {
	resp := ContractResponse{
		ID:               c.ID.String(),
		EmployeeID:       c.EmployeeID.String(),
		PositionID:       c.PositionID.String(),
		ContractType:     c.ContractType,
		Classification:   c.Classification,
		StartDate:        c.StartDate.Format("2006-01-02"),
		RegistrationDate: c.RegistrationDate.Format("2006-01-02"),
	}
	if c.EndDate != nil {
		v := c.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}

func mapToListResponse(contracts []Contract) []ContractResponse {
	resp := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = mapToResponse(c)
	}
	return resp
}
