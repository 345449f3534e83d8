package address_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/address"
	addresserrors "github.com/SamiulIslamRamim/erp-backend-personal/internal/address/errors"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAddressRepo struct {
	CreateFn   func(ctx context.Context, kind address.Kind, addr *address.Address) error
	FindByIDFn func(ctx context.Context, kind address.Kind, id string) (map[string]any, error)
	FindAllFn  func(ctx context.Context, kind address.Kind) ([]map[string]any, error)
	DeleteFn   func(ctx context.Context, kind address.Kind, id string) error
}

func (f *fakeAddressRepo) Create(ctx context.Context, kind address.Kind, addr *address.Address) error {
	return f.CreateFn(ctx, kind, addr)
}
func (f *fakeAddressRepo) FindByID(ctx context.Context, kind address.Kind, id string) (map[string]any, error) {
	return f.FindByIDFn(ctx, kind, id)
}
func (f *fakeAddressRepo) FindAll(ctx context.Context, kind address.Kind) ([]map[string]any, error) {
	return f.FindAllFn(ctx, kind)
}
func (f *fakeAddressRepo) Delete(ctx context.Context, kind address.Kind, id string) error {
	return f.DeleteFn(ctx, kind, id)
}

func storedRow(id string) map[string]any {
	return map[string]any{
		"id":               id,
		"division":         "Dhaka",
		"district":         "Gazipur",
		"sub_district":     "Sreepur",
		"post_office":      "Sreepur",
		"post_code":        "1740",
		"block":            "B",
		"house_or_village": "Vill: Kewa",
		"road_no":          nil,
		"created_at":       "2023-01-15T09:00:00Z",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload is persisted with server-assigned fields", func(t *testing.T) {
		var persisted *address.Address
		repo := &fakeAddressRepo{
			CreateFn: func(_ context.Context, kind address.Kind, addr *address.Address) error {
				assert.Equal(t, address.Present, kind)
				persisted = addr
				return nil
			},
		}
		svc := address.NewService(repo)

		resp, err := svc.Create(ctx, address.Present, map[string]any{
			"division":       "Dhaka",
			"district":       "Gazipur",
			"subDistrict":    "Sreepur",
			"postOffice":     "Sreepur",
			"postCode":       "1740",
			"block":          "B",
			"houseOrVillage": "Vill: Kewa",
		})
		assert.NoError(t, err)
		assert.NotNil(t, persisted)
		assert.NotEqual(t, uuid.Nil, persisted.ID)
		assert.NotNil(t, persisted.CreatedAt)
		assert.Equal(t, persisted.ID.String(), resp.ID)
		assert.Equal(t, "Dhaka", resp.Division)
	})

	t.Run("invalid payload returns the full violation list and skips the repo", func(t *testing.T) {
		repo := &fakeAddressRepo{
			CreateFn: func(context.Context, address.Kind, *address.Address) error {
				t.Fatal("repo must not be called for invalid input")
				return nil
			},
		}
		svc := address.NewService(repo)

		_, err := svc.Create(ctx, address.Permanent, map[string]any{"division": "Dhaka"})
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, apperror.CodeValidationFailed, httpErr.Code)

		verrs, ok := httpErr.Details.(validation.Errors)
		assert.True(t, ok)
		assert.Len(t, verrs, 6)
	})
}

func TestAddressService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("stored row is validated and mapped", func(t *testing.T) {
		id := uuid.New().String()
		repo := &fakeAddressRepo{
			FindByIDFn: func(_ context.Context, kind address.Kind, got string) (map[string]any, error) {
				assert.Equal(t, id, got)
				return storedRow(id), nil
			},
		}
		svc := address.NewService(repo)

		resp, err := svc.GetByID(ctx, address.Present, id)
		assert.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "Sreepur", resp.SubDistrict)
		assert.Nil(t, resp.RoadNo)
	})

	t.Run("malformed id is rejected before hitting the repo", func(t *testing.T) {
		svc := address.NewService(&fakeAddressRepo{})
		_, err := svc.GetByID(ctx, address.Present, "nope")
		assert.Equal(t, addresserrors.ErrInvalidAddressID, err)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		repo := &fakeAddressRepo{
			FindByIDFn: func(context.Context, address.Kind, string) (map[string]any, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := address.NewService(repo)
		_, err := svc.GetByID(ctx, address.Permanent, uuid.New().String())
		assert.Equal(t, addresserrors.ErrAddressNotFound, err)
	})

	t.Run("corrupt stored row surfaces as internal error", func(t *testing.T) {
		id := uuid.New().String()
		row := storedRow(id)
		delete(row, "division")
		repo := &fakeAddressRepo{
			FindByIDFn: func(context.Context, address.Kind, string) (map[string]any, error) {
				return row, nil
			},
		}
		svc := address.NewService(repo)
		_, err := svc.GetByID(ctx, address.Present, id)
		assert.Equal(t, apperror.ErrCorruptRecord, err)
	})
}

func TestAddressService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeAddressRepo{
		FindAllFn: func(context.Context, address.Kind) ([]map[string]any, error) {
			return []map[string]any{
				storedRow(uuid.New().String()),
				storedRow(uuid.New().String()),
			}, nil
		},
	}
	svc := address.NewService(repo)

	resp, err := svc.GetAll(ctx, address.Present)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("delete delegates to repo", func(t *testing.T) {
		called := false
		repo := &fakeAddressRepo{
			DeleteFn: func(_ context.Context, kind address.Kind, id string) error {
				called = true
				return nil
			},
		}
		svc := address.NewService(repo)
		assert.NoError(t, svc.Delete(ctx, address.Present, uuid.New().String()))
		assert.True(t, called)
	})

	t.Run("repo failures pass through", func(t *testing.T) {
		repo := &fakeAddressRepo{
			DeleteFn: func(context.Context, address.Kind, string) error {
				return errors.New("boom")
			},
		}
		svc := address.NewService(repo)
		assert.Error(t, svc.Delete(ctx, address.Present, uuid.New().String()))
	})
}
