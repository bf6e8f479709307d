package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-hcm/internal/employee/errors"
	"go-hcm/internal/events"
	"go-hcm/internal/messaging/kafka"
	"go-hcm/internal/shared/contextutil"
	"go-hcm/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsCacheTTL    = 24 * time.Hour
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	SearchByName(ctx context.Context, name string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("rut", req.Rut),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		s.logger.Warn("create employee invalid start_date", zap.String("start_date", req.StartDate))
		return EmployeeResponse{}, employeeerrors.ErrInvalidStartDate
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
		}
		birthDate = &bd
	}

	salary := decimal.Zero
	if req.Salary != "" {
		salary, err = decimal.NewFromString(req.Salary)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
		}
	}

	number := req.EmployeeNumber
	if number == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "employee_number")
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		number = fmt.Sprintf("EMP-%05d", nextVal)
	}

	e := &Employee{
		ID:              uuid.New(),
		EmployeeNumber:  number,
		Rut:             req.Rut,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		BirthDate:       birthDate,
		StartDate:       startDate,
		Email:           req.Email,
		Phone:           req.Phone,
		Salary:          salary,
		Nationality:     req.Nationality,
		ActiveEmployee:  true,
		AccumulatedDays: req.AccumulatedDays,
	}
	if req.AFPID != nil {
		afpID, err := uuid.Parse(*req.AFPID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		e.AFPID = &afpID
	}
	if req.HealthPlanID != nil {
		hpID, err := uuid.Parse(*req.HealthPlanID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		e.HealthPlanID = &hpID
	}

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			EmployeeID: e.ID.String(),
			Email:      e.Email,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			return EmployeeResponse{}, err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   e.ID.String(),
			EventType:     "employee_created",
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create employee outbox write failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_number", e.EmployeeNumber),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

// GetOptions serves the employee picker. The list is cached in redis and a
// singleflight group keeps a cold cache from stampeding the database.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result()
		if err == nil {
			var options []EmployeeOption
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (any, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		options := make([]EmployeeOption, 0, len(employees))
		for _, e := range employees {
			if !e.ActiveEmployee {
				continue
			}
			options = append(options, EmployeeOption{
				ID:       e.ID.String(),
				FullName: e.FirstName + " " + e.LastName,
			})
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, payload, optionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) SearchByName(ctx context.Context, name string) ([]EmployeeResponse, error) {
	employees, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(employees), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidBirthDate
		}
		birthDate = &bd
	}

	salary := e.Salary
	if req.Salary != "" {
		salary, err = decimal.NewFromString(req.Salary)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
		}
	}

	e.Rut = req.Rut
	e.FirstName = req.FirstName
	e.LastName = req.LastName
	e.BirthDate = birthDate
	e.Email = req.Email
	e.Phone = req.Phone
	e.Salary = salary
	e.Nationality = req.Nationality
	e.ActiveEmployee = req.ActiveEmployee
	e.LongServiceEmployee = req.LongServiceEmployee

	e.AFPID = nil
	if req.AFPID != nil {
		afpID, err := uuid.Parse(*req.AFPID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		e.AFPID = &afpID
	}
	e.HealthPlanID = nil
	if req.HealthPlanID != nil {
		hpID, err := uuid.Parse(*req.HealthPlanID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		e.HealthPlanID = &hpID
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptionsCache(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptionsCache(ctx)
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                  e.ID.String(),
		EmployeeNumber:      e.EmployeeNumber,
		Rut:                 e.Rut,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		StartDate:           e.StartDate.Format("2006-01-02"),
		Email:               e.Email,
		Phone:               e.Phone,
		Salary:              e.Salary.StringFixed(2),
		Nationality:         e.Nationality,
		ActiveEmployee:      e.ActiveEmployee,
		AccumulatedDays:     e.AccumulatedDays,
		LongServiceEmployee: e.LongServiceEmployee,
	}
	if e.BirthDate != nil {
		v := e.BirthDate.Format("2006-01-02")
		resp.BirthDate = &v
	}
	if e.AFPID != nil {
		v := e.AFPID.String()
		resp.AFPID = &v
	}
	if e.HealthPlanID != nil {
		v := e.HealthPlanID.String()
		resp.HealthPlanID = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp
}
