package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// AdviceRepository defines persistence operations for advice history.
// Advice rows are additive: created once, never updated or deleted here,
// so both listings order strictly by creation time descending.
type AdviceRepository interface {
	Create(ctx context.Context, advice *model.Advice) error
	FindByFarm(ctx context.Context, farmID string) ([]model.Advice, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]model.Advice, error)
}

type adviceRepository struct {
	db *gorm.DB
}

// NewAdviceRepository creates a new advice repository
func NewAdviceRepository(db *gorm.DB) AdviceRepository {
	return &adviceRepository{db: db}
}

func (r *adviceRepository) Create(ctx context.Context, advice *model.Advice) error {
	return r.db.WithContext(ctx).Create(advice).Error
}

func (r *adviceRepository) FindByFarm(ctx context.Context, farmID string) ([]model.Advice, error) {
	var records []model.Advice
	err := r.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *adviceRepository) FindByUser(ctx context.Context, userID string, limit int) ([]model.Advice, error) {
	var records []model.Advice
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
