package address

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=address_repo.go -destination=mock/address_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, kind Kind, addr *Address) error
	FindByID(ctx context.Context, kind Kind, id string) (map[string]any, error)
	FindAll(ctx context.Context, kind Kind) ([]map[string]any, error)
	Delete(ctx context.Context, kind Kind, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, kind Kind, addr *Address) error {
	return r.db.WithContext(ctx).Table(kind.Table()).Create(addr).Error
}

// FindByID returns the raw row so that the caller can run it through the
// stored-shape schema before anything downstream trusts it.
func (r *repository) FindByID(ctx context.Context, kind Kind, id string) (map[string]any, error) {
	var row map[string]any
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *repository) FindAll(ctx context.Context, kind Kind) ([]map[string]any, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, kind Kind, id string) error {
	return r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Delete(&Address{}).Error
}
