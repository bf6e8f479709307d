package position

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"go-hcm/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errDepartmentNotFound = apperror.New(
	apperror.CodeInvalidInput,
	"department does not exist",
	http.StatusBadRequest,
)

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, err
	}
	if !exists {
		return PositionResponse{}, errDepartmentNotFound
	}

	p := &Position{
		ID:           uuid.New(),
		DepartmentID: uuid.MustParse(req.DepartmentID),
		Name:         req.Name,
		Description:  req.Description,
	}

	if err := qtx.Create(ctx, p); err != nil {
		return PositionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PositionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PositionResponse{}, apperror.ErrNotFound
		}
		return PositionResponse{}, err
	}

	exists, err := qtx.DepartmentExists(ctx, req.DepartmentID)
	if err != nil {
		return PositionResponse{}, err
	}
	if !exists {
		return PositionResponse{}, errDepartmentNotFound
	}

	p.DepartmentID = uuid.MustParse(req.DepartmentID)
	p.Name = req.Name
	p.Description = req.Description

	if err := qtx.Update(ctx, p); err != nil {
		return PositionResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PositionResponse{}, err
	}

	return mapToResponse(*p), nil
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

func mapToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:           p.ID.String(),
		DepartmentID: p.DepartmentID.String(),
		Name:         p.Name,
		Description:  p.Description,
	}
}

func mapToListResponse(positions []Position) []PositionResponse {
	resp := make([]PositionResponse, len(positions))
	for i, p := range positions {
		resp[i] = mapToResponse(p)
	}
	return resp
}
