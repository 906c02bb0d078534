package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// FarmRepository defines persistence operations for farms.
// FindByID returns (nil, nil) when no farm matches the id.
type FarmRepository interface {
	Create(ctx context.Context, farm *model.Farm) error
	FindByID(ctx context.Context, id string) (*model.Farm, error)
	FindByUser(ctx context.Context, userID string) ([]model.Farm, error)
	Update(ctx context.Context, farm *model.Farm) error
	Delete(ctx context.Context, id string) error
}

type farmRepository struct {
	db *gorm.DB
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB) FarmRepository {
	return &farmRepository{db: db}
}

func (r *farmRepository) Create(ctx context.Context, farm *model.Farm) error {
	return r.db.WithContext(ctx).Create(farm).Error
}

func (r *farmRepository) FindByID(ctx context.Context, id string) (*model.Farm, error) {
	var farm model.Farm
	err := r.db.WithContext(ctx).First(&farm, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *farmRepository) FindByUser(ctx context.Context, userID string) ([]model.Farm, error) {
	var farms []model.Farm
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&farms).Error
	if err != nil {
		return nil, err
	}
	return farms, nil
}

func (r *farmRepository) Update(ctx context.Context, farm *model.Farm) error {
	return r.db.WithContext(ctx).Save(farm).Error
}

func (r *farmRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Farm{}, "id = ?", id).Error
}
