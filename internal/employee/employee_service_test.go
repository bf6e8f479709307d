package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hcm/internal/employee"
	employeeerrors "go-hcm/internal/employee/errors"
	"go-hcm/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	withTxFn       func(tx *sql.Tx) employee.Repository
	createFn       func(ctx context.Context, e *employee.Employee) error
	findAllFn      func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn     func(ctx context.Context, id string) (*employee.Employee, error)
	searchByNameFn func(ctx context.Context, name string) ([]employee.Employee, error)
	updateFn       func(ctx context.Context, e *employee.Employee) error
	deleteFn       func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) SearchByName(ctx context.Context, name string) ([]employee.Employee, error) {
	if f.searchByNameFn != nil {
		return f.searchByNameFn(ctx, name)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeCounterRepository struct {
	getNextValueFn func(ctx context.Context, counterType string) (int64, error)
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.getNextValueFn != nil {
		return f.getNextValueFn(ctx, counterType)
	}
	return 1, nil
}

type fakeOutboxRepository struct {
	withTxFn      func(tx *sql.Tx) kafka.OutboxRepository
	createFn      func(ctx context.Context, event kafka.OutboxEvent) error
	listPendingFn func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error)
	markSentFn    func(ctx context.Context, id string) error
	markFailedFn  func(ctx context.Context, id string, reason string) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if f.listPendingFn != nil {
		return f.listPendingFn(ctx, limit)
	}
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	if f.markSentFn != nil {
		return f.markSentFn(ctx, id)
	}
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.markFailedFn != nil {
		return f.markFailedFn(ctx, id, reason)
	}
	return nil
}

type employeeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   employee.Service
	repo      *fakeEmployeeRepository
	counter   *fakeCounterRepository
	outbox    *fakeOutboxRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}
	outboxRepo := &fakeOutboxRepository{}
	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, rdb)

	return &employeeServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success generates employee number and writes outbox event", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		deps.counter.getNextValueFn = func(ctx context.Context, counterType string) (int64, error) {
			assert.Equal(t, "employee_number", counterType)
			return 7, nil
		}

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}

		var outboxEvent *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		}

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Rut:             "12.345.678-9",
			FirstName:       "Maria",
			LastName:        "Soto",
			StartDate:       "2022-08-01",
			Email:           "maria.soto@example.com",
			Salary:          "850000.00",
			Nationality:     "Chilean",
			AccumulatedDays: 6,
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-00007", resp.EmployeeNumber)
		assert.True(t, resp.ActiveEmployee)
		assert.Equal(t, 6, resp.AccumulatedDays)

		assert.NotNil(t, created)
		assert.Equal(t, "850000.00", created.Salary.StringFixed(2))

		assert.NotNil(t, outboxEvent)
		assert.Equal(t, "employee_created", outboxEvent.EventType)
		assert.Equal(t, "hr.employee.lifecycle.v1", outboxEvent.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &payload))
		assert.Equal(t, created.ID.String(), payload["employee_id"])

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("negative invalid start date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Rut:       "12.345.678-9",
			FirstName: "Maria",
			LastName:  "Soto",
			StartDate: "01/08/2022",
			Email:     "maria.soto@example.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStartDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			return errors.New(`duplicate key value violates unique constraint "uq_employee_email"`)
		}

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			Rut:       "12.345.678-9",
			FirstName: "Maria",
			LastName:  "Soto",
			StartDate: "2022-08-01",
			Email:     "maria.soto@example.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cold cache loads from repository and caches", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		active := employee.Employee{
			ID:             uuid.New(),
			FirstName:      "Maria",
			LastName:       "Soto",
			ActiveEmployee: true,
		}
		inactive := employee.Employee{
			ID:             uuid.New(),
			FirstName:      "Pedro",
			LastName:       "Rojas",
			ActiveEmployee: false,
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
			return []employee.Employee{active, inactive}, nil
		}

		expected, err := json.Marshal([]employee.EmployeeOption{
			{ID: active.ID.String(), FullName: "Maria Soto"},
		})
		assert.NoError(t, err)

		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.redisMock.ExpectSet(employee.EmployeeOptionsKey, expected, 24*time.Hour).SetVal("OK")

		options, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.Equal(t, "Maria Soto", options[0].FullName)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("warm cache skips the repository", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		repoCalled := false
		deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
			repoCalled = true
			return nil, nil
		}

		cached, err := json.Marshal([]employee.EmployeeOption{
			{ID: uuid.New().String(), FullName: "Maria Soto"},
		})
		assert.NoError(t, err)
		deps.redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(cached))

		options, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Len(t, options, 1)
		assert.False(t, repoCalled)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps the vacation balance untouched", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(employee.EmployeeOptionsKey).SetVal(1)

		id := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, targetID string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:              id,
				EmployeeNumber:  "EMP-00007",
				Rut:             "12.345.678-9",
				FirstName:       "Maria",
				LastName:        "Soto",
				StartDate:       time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC),
				Email:           "maria.soto@example.com",
				ActiveEmployee:  true,
				AccumulatedDays: 14,
			}, nil
		}

		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
			Rut:                 "12.345.678-9",
			FirstName:           "Maria",
			LastName:            "Soto Vera",
			Email:               "maria.soto@example.com",
			ActiveEmployee:      true,
			LongServiceEmployee: true,
		})

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		// only the vacation ledger may move accumulated_days
		assert.Equal(t, 14, updated.AccumulatedDays)
		assert.Equal(t, 14, resp.AccumulatedDays)
		assert.True(t, resp.LongServiceEmployee)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
