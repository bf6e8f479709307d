package training

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
	errInvalidScore = apperror.New(
		apperror.CodeInvalidInput,
		"invalid training score",
		http.StatusBadRequest,
	)
	errEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	errTrainingNotFound = apperror.New(
		apperror.CodeNotFound,
		"training not found",
		http.StatusNotFound,
	)
)

type Service interface {
	Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error)
	GetAll(ctx context.Context) ([]TrainingResponse, error)
	GetByID(ctx context.Context, id string) (TrainingResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]TrainingResponse, error)
	Update(ctx context.Context, id string, req UpdateTrainingRequest) (TrainingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateTrainingRequest) (TrainingResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return TrainingResponse{}, errInvalidDate
	}
	score, err := decimal.NewFromString(req.Score)
	if err != nil {
		return TrainingResponse{}, errInvalidScore
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TrainingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return TrainingResponse{}, err
	}
	if !exists {
		return TrainingResponse{}, errEmployeeNotFound
	}

	t := &Training{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		Date:        date,
		Course:      req.Course,
		Score:       score,
		Institution: req.Institution,
		Comments:    req.Comments,
	}

	if err := qtx.Create(ctx, t); err != nil {
		return TrainingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TrainingResponse{}, err
	}

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TrainingResponse, error) {
	trainings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(trainings), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TrainingResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrainingResponse{}, errTrainingNotFound
		}
		return TrainingResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]TrainingResponse, error) {
	trainings, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(trainings), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTrainingRequest) (TrainingResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return TrainingResponse{}, errInvalidDate
	}
	score, err := decimal.NewFromString(req.Score)
	if err != nil {
		return TrainingResponse{}, errInvalidScore
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TrainingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrainingResponse{}, errTrainingNotFound
		}
		return TrainingResponse{}, err
	}

	t.Date = date
	t.Course = req.Course
	t.Score = score
	t.Institution = req.Institution
	t.Comments = req.Comments

	if err := qtx.Update(ctx, t); err != nil {
		return TrainingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TrainingResponse{}, err
	}

	return mapToResponse(*t), nil
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

func mapToResponse(t Training) TrainingResponse {
	return TrainingResponse{
		ID:          t.ID.String(),
		EmployeeID:  t.EmployeeID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Course:      t.Course,
		Score:       t.Score.StringFixed(2),
		Institution: t.Institution,
		Comments:    t.Comments,
	}
}

func mapToListResponse(trainings []Training) []TrainingResponse {
	resp := make([]TrainingResponse, len(trainings))
	for i, t := range trainings {
		resp[i] = mapToResponse(t)
	}
	return resp
}
