package contract_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hcm/internal/contract"
	contracterrors "go-hcm/internal/contract/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeContractRepository struct {
	withTxFn            func(tx *sql.Tx) contract.Repository
	createFn            func(ctx context.Context, c *contract.Contract) error
	findAllFn           func(ctx context.Context) ([]contract.Contract, error)
	findByIDFn          func(ctx context.Context, id string) (*contract.Contract, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]contract.Contract, error)
	updateFn            func(ctx context.Context, c *contract.Contract) error
	deleteFn            func(ctx context.Context, id string) error
	employeeExistsFn    func(ctx context.Context, employeeID string) (bool, error)
	positionExistsFn    func(ctx context.Context, positionID string) (bool, error)
}

func (f *fakeContractRepository) WithTx(tx *sql.Tx) contract.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeContractRepository) FindAll(ctx context.Context) ([]contract.Contract, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeContractRepository) FindByID(ctx context.Context, id string) (*contract.Contract, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeContractRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]contract.Contract, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeContractRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeContractRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func (f *fakeContractRepository) PositionExists(ctx context.Context, positionID string) (bool, error) {
	if f.positionExistsFn != nil {
		return f.positionExistsFn(ctx, positionID)
	}
	return true, nil
}

type contractServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service contract.Service
	repo    *fakeContractRepository
}

func setupContractServiceTest(t *testing.T) *contractServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeContractRepository{}
	svc := contract.NewService(db, repo)

	return &contractServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
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

func TestContractService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	positionID := uuid.New().String()

	t.Run("success open ended contract", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, c *contract.Contract) error {
			assert.Equal(t, uuid.MustParse(employeeID), c.EmployeeID)
			assert.Equal(t, "PERMANENT", c.ContractType)
			assert.Nil(t, c.EndDate)
			return nil
		}

		resp, err := deps.service.Create(ctx, contract.CreateContractRequest{
			EmployeeID:     employeeID,
			PositionID:     positionID,
			ContractType:   "PERMANENT",
			Classification: "PROFESSIONAL",
			StartDate:      "2022-08-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2022-08-01", resp.StartDate)
		assert.Nil(t, resp.EndDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative end before start", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, contract.CreateContractRequest{
			EmployeeID:     employeeID,
			PositionID:     positionID,
			ContractType:   "FIXED_TERM",
			Classification: "TECHNICAL",
			StartDate:      "2023-06-01",
			EndDate:        "2023-01-01",
		})

		assert.ErrorIs(t, err, contracterrors.ErrInvalidDateRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.employeeExistsFn = func(ctx context.Context, eid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, contract.CreateContractRequest{
			EmployeeID:     employeeID,
			PositionID:     positionID,
			ContractType:   "PERMANENT",
			Classification: "EXECUTIVE",
			StartDate:      "2022-08-01",
		})

		assert.ErrorIs(t, err, contracterrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown position", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.positionExistsFn = func(ctx context.Context, pid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, contract.CreateContractRequest{
			EmployeeID:     employeeID,
			PositionID:     positionID,
			ContractType:   "PERMANENT",
			Classification: "EXECUTIVE",
			StartDate:      "2022-08-01",
		})

		assert.ErrorIs(t, err, contracterrors.ErrPositionNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestContractService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative not found", func(t *testing.T) {
		deps := setupContractServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*contract.Contract, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, contracterrors.ErrContractNotFound)
	})
}
