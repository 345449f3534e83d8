package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/employee"
	employeeerrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/employee/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, payload map[string]any) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOption, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, payload map[string]any) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, payload map[string]any) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, payload)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, payload map[string]any) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, payload)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, payload map[string]any) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Abdul Karim", payload["fullName"])
				return employee.EmployeeResponse{ID: uuid.New().String(), FullName: "Abdul Karim"}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"fullName":"Abdul Karim","gender":"Male"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("violation list reaches the response body", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, map[string]any) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, apperror.FromValidation(validation.Errors{
					{FieldPath: "officeEmail", Kind: validation.MissingRequiredField, Message: "is required"},
					{FieldPath: "gender", Kind: validation.InvalidEnumValue, Message: "must be one of: Male, Female, Other"},
				})
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code    string `json:"code"`
				Details []struct {
					FieldPath string `json:"fieldPath"`
					ErrorKind string `json:"errorKind"`
				} `json:"details"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Equal(t, apperror.CodeValidationFailed, envelope.Error.Code)
		assert.Len(t, envelope.Error.Details, 2)
		assert.Equal(t, "officeEmail", envelope.Error.Details[0].FieldPath)
		assert.Equal(t, "InvalidEnumValue", envelope.Error.Details[1].ErrorKind)
	})

	t.Run("non-object body is rejected before the service", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(context.Context, map[string]any) (employee.EmployeeResponse, error) {
				t.Fatal("service must not be called")
				return employee.EmployeeResponse{}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`[1,2,3]`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	listing := func() []employee.EmployeeResponse {
		return []employee.EmployeeResponse{
			{ID: "1", FullName: "Abdul Karim", OfficeEmail: "a.karim@example.gov.bd"},
			{ID: "2", FullName: "Farida Yesmin", OfficeEmail: "f.yesmin@example.gov.bd"},
			{ID: "3", FullName: "Kamal Hossain", OfficeEmail: "k.hossain@example.gov.bd"},
		}
	}

	t.Run("search filters by name", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(context.Context) ([]employee.EmployeeResponse, error) {
				return listing(), nil
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=farida", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, "Farida Yesmin", envelope.Data[0].FullName)
	})

	t.Run("pagination slices the sorted list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(context.Context) ([]employee.EmployeeResponse, error) {
				return listing(), nil
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
			Meta struct {
				Total int64 `json:"total"`
				Page  int   `json:"page"`
			} `json:"meta"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Len(t, envelope.Data, 1)
		assert.Equal(t, int64(3), envelope.Meta.Total)
		assert.Equal(t, 2, envelope.Meta.Page)
	})

	t.Run("descending sort by name", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(context.Context) ([]employee.EmployeeResponse, error) {
				return listing(), nil
			},
		}
		r := setupRouter()
		r.GET("/employees", employee.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?sort_dir=desc", nil))

		var envelope struct {
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "Kamal Hossain", envelope.Data[0].FullName)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(context.Context) ([]employee.EmployeeOption, error) {
			return []employee.EmployeeOption{
				{ID: uuid.New().String(), FullName: "Abdul Karim", CurrentDesignation: "Executive Engineer"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/employees/options", employee.NewHandler(svc).GetOptions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByIDFn: func(_ context.Context, got string) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, got)
				return employee.EmployeeResponse{ID: id}, nil
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(context.Context, string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeEmployeeService{
		UpdateFn: func(_ context.Context, got string, payload map[string]any) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, got)
			assert.Equal(t, "Superintending Engineer", payload["currentDesignation"])
			return employee.EmployeeResponse{ID: id}, nil
		},
	}
	r := setupRouter()
	r.PUT("/employees/:id", employee.NewHandler(svc).Update)

	body := `{"currentDesignation":"Superintending Engineer"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeEmployeeService{
			DeleteFn: func(_ context.Context, got string) error {
				assert.Equal(t, id, got)
				return nil
			},
		}
		r := setupRouter()
		r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid id maps to 400", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(context.Context, string) error {
				return employeeerrors.ErrInvalidEmployeeID
			},
		}
		r := setupRouter()
		r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/12", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}
