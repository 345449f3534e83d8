package contactinfo

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=contact_info_repo.go -destination=mock/contact_info_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, info *ContactInformation) error
	FindByID(ctx context.Context, id string) (map[string]any, error)
	FindAll(ctx context.Context) ([]map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, info *ContactInformation) error {
	return r.db.WithContext(ctx).Create(info).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (map[string]any, error) {
	var row map[string]any
	err := r.db.WithContext(ctx).
		Model(&ContactInformation{}).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *repository) FindAll(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Model(&ContactInformation{}).
		Order("created_at").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&ContactInformation{}, "id = ?", id).Error
}
