package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]map[string]any, error)
	FindOptions(ctx context.Context) ([]map[string]any, error)
	FindByID(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// FindAll returns raw rows; the service runs every row through the
// stored-shape schema before anything downstream trusts it.
func (r *repository) FindAll(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Order("full_name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOptions(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id", "full_name", "current_designation").
		Order("full_name").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (map[string]any, error) {
	var row map[string]any
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}
