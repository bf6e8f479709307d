package vacation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hcm/internal/vacation"
	vacationerrors "go-hcm/internal/vacation/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeVacationService struct {
	requestFn          func(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error)
	getAllFn           func(ctx context.Context) ([]vacation.VacationResponse, error)
	getByIDFn          func(ctx context.Context, id string) (vacation.VacationResponse, error)
	getAllByEmployeeFn func(ctx context.Context, employeeID string) ([]vacation.VacationResponse, error)
}

func (f *fakeVacationService) Request(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
	return f.requestFn(ctx, req)
}
func (f *fakeVacationService) GetAll(ctx context.Context) ([]vacation.VacationResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeVacationService) GetByID(ctx context.Context, id string) (vacation.VacationResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeVacationService) GetAllByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationResponse, error) {
	return f.getAllByEmployeeFn(ctx, employeeID)
}

func TestVacationHandler_Request(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		employeeID := uuid.New().String()

		svc := &fakeVacationService{
			requestFn: func(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
				assert.Equal(t, employeeID, req.EmployeeID)
				return vacation.VacationResponse{
					ID:                   uuid.New().String(),
					EmployeeID:           req.EmployeeID,
					StartDate:            req.StartDate,
					EndDate:              req.EndDate,
					DaysTaken:            16,
					AccumulatedDaysAfter: 4,
				}, nil
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + employeeID + `","start_date":"2023-01-05","end_date":"2023-01-20"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Request(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got vacation.VacationResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, got.EmployeeID)
		assert.Equal(t, 16, got.DaysTaken)
		assert.Equal(t, 4, got.AccumulatedDaysAfter)
	})

	t.Run("negative validation error", func(t *testing.T) {
		h := vacation.NewHandler(&fakeVacationService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Request(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative unknown employee maps to 404", func(t *testing.T) {
		svc := &fakeVacationService{
			requestFn: func(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.ErrEmployeeNotFound
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","start_date":"2023-01-05","end_date":"2023-01-20"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Request(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "Employee not found!", env.Error.Message)
	})

	t.Run("negative insufficient balance maps to 422", func(t *testing.T) {
		svc := &fakeVacationService{
			requestFn: func(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.ErrInsufficientBalance
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","start_date":"2023-01-05","end_date":"2023-01-20"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Request(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "Insufficient vacation days!", env.Error.Message)
	})

	t.Run("negative storage failure collapses to 500", func(t *testing.T) {
		svc := &fakeVacationService{
			requestFn: func(ctx context.Context, req vacation.RequestVacationRequest) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, assert.AnError
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"` + uuid.New().String() + `","start_date":"2023-01-05","end_date":"2023-01-20"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/vacations", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Request(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestVacationHandler_GetAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeVacationService{
			getAllFn: func(ctx context.Context) ([]vacation.VacationResponse, error) {
				return []vacation.VacationResponse{
					{ID: uuid.New().String(), DaysTaken: 3},
					{ID: uuid.New().String(), DaysTaken: 5},
				}, nil
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got []vacation.VacationResponse
		err := json.Unmarshal(env.Data, &got)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filters by employee_id query", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeVacationService{
			getAllByEmployeeFn: func(ctx context.Context, eid string) ([]vacation.VacationResponse, error) {
				assert.Equal(t, employeeID, eid)
				return []vacation.VacationResponse{{ID: uuid.New().String(), EmployeeID: eid}}, nil
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations?employee_id="+employeeID, nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})
}

func TestVacationHandler_GetById(t *testing.T) {
	t.Run("negative not found", func(t *testing.T) {
		svc := &fakeVacationService{
			getByIDFn: func(ctx context.Context, id string) (vacation.VacationResponse, error) {
				return vacation.VacationResponse{}, vacationerrors.ErrVacationNotFound
			},
		}

		h := vacation.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/vacations/"+uuid.New().String(), nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
