package evaluation

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"go-hcm/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	errInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must use the format YYYY-MM-DD",
		http.StatusBadRequest,
	)
	errInvalidFactor = apperror.New(
		apperror.CodeInvalidInput,
		"invalid evaluation factor",
		http.StatusBadRequest,
	)
	errEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	errEvaluationNotFound = apperror.New(
		apperror.CodeNotFound,
		"evaluation not found",
		http.StatusNotFound,
	)
)

type Service interface {
	Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context) ([]EvaluationResponse, error)
	GetByID(ctx context.Context, id string) (EvaluationResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]EvaluationResponse, error)
	Update(ctx context.Context, id string, req UpdateEvaluationRequest) (EvaluationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEvaluationRequest) (EvaluationResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return EvaluationResponse{}, errInvalidDate
	}
	factor, err := decimal.NewFromString(req.Factor)
	if err != nil {
		return EvaluationResponse{}, errInvalidFactor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return EvaluationResponse{}, err
	}
	if !exists {
		return EvaluationResponse{}, errEmployeeNotFound
	}

	e := &Evaluation{
		ID:         uuid.New(),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		Date:       date,
		Evaluator:  req.Evaluator,
		Factor:     factor,
		Rating:     req.Rating,
		Comments:   req.Comments,
	}

	if err := qtx.Create(ctx, e); err != nil {
		return EvaluationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EvaluationResponse{}, err
	}

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EvaluationResponse, error) {
	evals, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(evals), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EvaluationResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EvaluationResponse{}, errEvaluationNotFound
		}
		return EvaluationResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]EvaluationResponse, error) {
	evals, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(evals), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEvaluationRequest) (EvaluationResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return EvaluationResponse{}, errInvalidDate
	}
	factor, err := decimal.NewFromString(req.Factor)
	if err != nil {
		return EvaluationResponse{}, errInvalidFactor
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EvaluationResponse{}, errEvaluationNotFound
		}
		return EvaluationResponse{}, err
	}

	e.Date = date
	e.Evaluator = req.Evaluator
	e.Factor = factor
	e.Rating = req.Rating
	e.Comments = req.Comments

	if err := qtx.Update(ctx, e); err != nil {
		return EvaluationResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EvaluationResponse{}, err
	}

	return mapToResponse(*e), nil
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

func mapToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		Date:       e.Date.Format("2006-01-02"),
		Evaluator:  e.Evaluator,
		Factor:     e.Factor.StringFixed(2),
		Rating:     e.Rating,
		Comments:   e.Comments,
	}
}

func mapToListResponse(evals []Evaluation) []EvaluationResponse {
	resp := make([]EvaluationResponse, len(evals))
	for i, e := range evals {
		resp[i] = mapToResponse(e)
	}
	return resp
}
