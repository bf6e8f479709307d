package vacation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go-hcm/internal/events"
	"go-hcm/internal/messaging/kafka"
	"go-hcm/internal/shared/contextutil"
	vacationerrors "go-hcm/internal/vacation/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	annualGrantDays      = 15
	longServiceGrantDays = 20
	daysPerServiceYear   = 365
)

type Service interface {
	Request(ctx context.Context, req RequestVacationRequest) (VacationResponse, error)
	GetAll(ctx context.Context) ([]VacationResponse, error)
	GetByID(ctx context.Context, id string) (VacationResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]VacationResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory Directory
	outbox    kafka.OutboxRepository
	now       func() time.Time

	// one mutex per employee so concurrent requests cannot double-spend a
	// balance; requests for different employees stay independent
	locks sync.Map

	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory Directory, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, directory, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	directory Directory,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	return newService(db, repo, directory, outboxRepo, time.Now, logger...)
}

// NewServiceWithClock lets callers pin "today" for accrual evaluation.
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	directory Directory,
	outboxRepo kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	return newService(db, repo, directory, outboxRepo, now, logger...)
}

func newService(
	db *sql.DB,
	repo Repository,
	directory Directory,
	outboxRepo kafka.OutboxRepository,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("vacation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("vacation.service")
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		directory: directory,
		outbox:    outboxRepo,
		now:       now,
		logger:    l,
	}
}

// Request validates a leave interval against the employee's balance, applies
// the annual accrual if due, debits the balance and appends a ledger entry.
//
// Validation order is load-bearing: date parsing, then range, then employee
// resolution, then accrual, then sufficiency. The accrual grant is committed
// on its own before the sufficiency check runs and is kept even when the
// request is ultimately rejected.
func (s *service) Request(ctx context.Context, req RequestVacationRequest) (VacationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("vacation requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		s.logger.Warn("vacation request invalid start_date", zap.String("start_date", req.StartDate))
		return VacationResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		s.logger.Warn("vacation request invalid end_date", zap.String("end_date", req.EndDate))
		return VacationResponse{}, err
	}
	if startDate.After(endDate) {
		s.logger.Warn("vacation request start after end",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return VacationResponse{}, vacationerrors.ErrInvalidDateRange
	}

	mu := s.lockFor(req.EmployeeID)
	mu.Lock()
	defer mu.Unlock()

	emp, err := s.directory.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrEmployeeNotFound
		}
		s.logger.Error("vacation request employee lookup failed", zap.Error(err))
		return VacationResponse{}, err
	}

	if err := s.applyAccrual(ctx, emp); err != nil {
		return VacationResponse{}, err
	}

	requestedDays := inclusiveDays(startDate, endDate)
	if requestedDays > emp.AccumulatedDays {
		s.logger.Warn("vacation request rejected, insufficient balance",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("requested_days", requestedDays),
			zap.Int("accumulated_days", emp.AccumulatedDays),
		)
		return VacationResponse{}, vacationerrors.ErrInsufficientBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("vacation request begin tx failed", zap.Error(err))
		return VacationResponse{}, err
	}
	defer tx.Rollback()

	emp.AccumulatedDays -= requestedDays

	if err := s.directory.WithTx(tx).SaveBalance(ctx, req.EmployeeID, emp.AccumulatedDays); err != nil {
		s.logger.Error("vacation request balance update failed", zap.Error(err))
		return VacationResponse{}, err
	}

	v := &Vacation{
		ID:                   uuid.New(),
		EmployeeID:           emp.ID,
		StartDate:            startDate,
		EndDate:              endDate,
		DaysTaken:            requestedDays,
		AccumulatedDaysAfter: emp.AccumulatedDays,
		LongServiceEmployee:  emp.LongServiceEmployee,
	}
	if err := s.repo.WithTx(tx).Create(ctx, v); err != nil {
		s.logger.Error("vacation request ledger insert failed", zap.Error(err))
		return VacationResponse{}, err
	}

	if s.outbox != nil {
		payload, err := json.Marshal(events.VacationRecordedEvent{
			EventType:            "vacation_recorded",
			VacationID:           v.ID.String(),
			EmployeeID:           v.EmployeeID.String(),
			StartDate:            v.StartDate.Format("2006-01-02"),
			EndDate:              v.EndDate.Format("2006-01-02"),
			DaysTaken:            v.DaysTaken,
			AccumulatedDaysAfter: v.AccumulatedDaysAfter,
			OccurredAt:           s.now().UTC(),
		})
		if err != nil {
			return VacationResponse{}, err
		}

		event := kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "vacation",
			AggregateID:   v.ID.String(),
			EventType:     "vacation_recorded",
			Topic:         events.VacationRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("vacation request outbox write failed", zap.Error(err))
			return VacationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("vacation request commit failed", zap.Error(err))
		return VacationResponse{}, err
	}

	s.logger.Info("vacation recorded",
		zap.String("request_id", rid),
		zap.String("vacation_id", v.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days_taken", v.DaysTaken),
		zap.Int("accumulated_days_after", v.AccumulatedDaysAfter),
	)

	return mapToResponse(*v), nil
}

// applyAccrual grants the annual day bonus when at least one full service
// year has elapsed, and commits the grant in its own transaction. The grant
// re-fires on every call that reaches it; it is not tracked per year. That
// mirrors the historical payroll behaviour this service replaced and stays
// until there is a product decision to change it.
func (s *service) applyAccrual(ctx context.Context, emp *LedgerEmployee) error {
	today := s.now().UTC()
	yearsOfService := int(today.Sub(emp.StartDate).Hours()/24) / daysPerServiceYear
	if yearsOfService < 1 {
		return nil
	}

	grant := annualGrantDays
	if emp.LongServiceEmployee {
		grant = longServiceGrantDays
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("vacation accrual begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	emp.AccumulatedDays += grant
	if err := s.directory.WithTx(tx).SaveBalance(ctx, emp.ID.String(), emp.AccumulatedDays); err != nil {
		s.logger.Error("vacation accrual persist failed", zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("vacation accrual commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("vacation accrual granted",
		zap.String("employee_id", emp.ID.String()),
		zap.Int("granted_days", grant),
		zap.Int("accumulated_days", emp.AccumulatedDays),
		zap.Int("years_of_service", yearsOfService),
	)
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]VacationResponse, error) {
	vacations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vacations), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VacationResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VacationResponse{}, vacationerrors.ErrVacationNotFound
		}
		return VacationResponse{}, err
	}
	return mapToResponse(*v), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]VacationResponse, error) {
	vacations, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(vacations), nil
}

func (s *service) lockFor(employeeID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(employeeID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// inclusiveDays counts both endpoints: 2023-01-05..2023-01-20 is 16 days.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, vacationerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(v Vacation) VacationResponse {
	return VacationResponse{
		ID:                   v.ID.String(),
		EmployeeID:           v.EmployeeID.String(),
		StartDate:            v.StartDate.Format("2006-01-02"),
		EndDate:              v.EndDate.Format("2006-01-02"),
		DaysTaken:            v.DaysTaken,
		AccumulatedDaysAfter: v.AccumulatedDaysAfter,
		LongServiceEmployee:  v.LongServiceEmployee,
	}
}

func mapToListResponse(vacations []Vacation) []VacationResponse {
	resp := make([]VacationResponse, len(vacations))
	for i, v := range vacations {
		resp[i] = mapToResponse(v)
	}
	return resp
}
