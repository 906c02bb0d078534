package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/AdityaDcode/FarmVista/internal/model"
	"github.com/AdityaDcode/FarmVista/internal/repository"
)

// FarmInput carries the caller-supplied farm fields. Latitude and longitude
// are pointers so a missing coordinate can be told apart from zero.
type FarmInput struct {
	FarmName  string
	Latitude  *float64
	Longitude *float64
	City      string
	State     string
	SoilType  string
	Crop      string
	CropStage string
	AreaSqM   float64
}

// FarmService handles ownership-checked farm CRUD
type FarmService interface {
	Create(ctx context.Context, userID string, input FarmInput) (*model.Farm, error)
	ListByUser(ctx context.Context, userID string) ([]model.Farm, error)
	Get(ctx context.Context, id, userID string) (*model.Farm, error)
	Update(ctx context.Context, id, userID string, input FarmInput) (*model.Farm, error)
	Delete(ctx context.Context, id, userID string) error
}

type farmService struct {
	farms  repository.FarmRepository
	logger *slog.Logger
}

// NewFarmService creates a new farm service
func NewFarmService(farms repository.FarmRepository, logger *slog.Logger) FarmService {
	return &farmService{farms: farms, logger: logger}
}

func (s *farmService) Create(ctx context.Context, userID string, input FarmInput) (*model.Farm, error) {
	if err := validateFarmInput(input); err != nil {
		return nil, err
	}

	farm := &model.Farm{
		UserID:   userID,
		FarmName: strings.TrimSpace(input.FarmName),
		Location: model.Location{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
			City:      strings.TrimSpace(input.City),
			State:     strings.TrimSpace(input.State),
		},
		SoilType:  input.SoilType,
		Crop:      strings.TrimSpace(input.Crop),
		CropStage: input.CropStage,
		AreaSqM:   input.AreaSqM,
	}
	if err := s.farms.Create(ctx, farm); err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}

	s.logger.Info("farm created", "farm_id", farm.ID, "user_id", userID)
	return farm, nil
}

func (s *farmService) ListByUser(ctx context.Context, userID string) ([]model.Farm, error) {
	return s.farms.FindByUser(ctx, userID)
}

func (s *farmService) Get(ctx context.Context, id, userID string) (*model.Farm, error) {
	return s.ownedFarm(ctx, id, userID)
}

// Update replaces the farm's caller-supplied fields after re-validation
func (s *farmService) Update(ctx context.Context, id, userID string, input FarmInput) (*model.Farm, error) {
	farm, err := s.ownedFarm(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := validateFarmInput(input); err != nil {
		return nil, err
	}

	farm.FarmName = strings.TrimSpace(input.FarmName)
	farm.Location = model.Location{
		Latitude:  *input.Latitude,
		Longitude: *input.Longitude,
		City:      strings.TrimSpace(input.City),
		State:     strings.TrimSpace(input.State),
	}
	farm.SoilType = input.SoilType
	farm.Crop = strings.TrimSpace(input.Crop)
	farm.CropStage = input.CropStage
	farm.AreaSqM = input.AreaSqM

	if err := s.farms.Update(ctx, farm); err != nil {
		return nil, fmt.Errorf("update farm %s: %w", id, err)
	}
	return farm, nil
}

// Delete removes the farm only. Advice history is intentionally left in
// place; orphaned rows stay queryable through the per-user listing.
func (s *farmService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.ownedFarm(ctx, id, userID); err != nil {
		return err
	}
	if err := s.farms.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete farm %s: %w", id, err)
	}
	s.logger.Info("farm deleted", "farm_id", id, "user_id", userID)
	return nil
}

func (s *farmService) ownedFarm(ctx context.Context, id, userID string) (*model.Farm, error) {
	farm, err := s.farms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load farm %s: %w", id, err)
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	if farm.UserID != userID {
		return nil, ErrNotFarmOwner
	}
	return farm, nil
}

func validateFarmInput(input FarmInput) error {
	if strings.TrimSpace(input.FarmName) == "" {
		return fmt.Errorf("%w: farm name is required", ErrInvalidFarm)
	}
	if input.Latitude == nil {
		return fmt.Errorf("%w: latitude is required", ErrInvalidFarm)
	}
	if input.Longitude == nil {
		return fmt.Errorf("%w: longitude is required", ErrInvalidFarm)
	}
	if !model.ValidSoilType(input.SoilType) {
		return fmt.Errorf("%w: soil type must be one of %s", ErrInvalidFarm, strings.Join(model.SoilTypes(), ", "))
	}
	if strings.TrimSpace(input.Crop) == "" {
		return fmt.Errorf("%w: crop is required", ErrInvalidFarm)
	}
	if !model.ValidCropStage(input.CropStage) {
		return fmt.Errorf("%w: crop stage must be one of %s", ErrInvalidFarm, strings.Join(model.CropStages(), ", "))
	}
	if input.AreaSqM <= 0 {
		return fmt.Errorf("%w: area must be a positive number of square meters", ErrInvalidFarm)
	}
	return nil
}
