package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AdityaDcode/FarmVista/internal/llm"
	"github.com/AdityaDcode/FarmVista/internal/model"
	"github.com/AdityaDcode/FarmVista/internal/repository"
	"github.com/AdityaDcode/FarmVista/internal/weather"
)

// Most recent advice records returned per user
const userAdviceLimit = 50

// AdviceService sequences the generation pipeline and serves advice history
type AdviceService interface {
	Generate(ctx context.Context, farmID, userID string) (*model.Advice, error)
	ListByFarm(ctx context.Context, farmID, userID string) ([]model.Advice, error)
	ListByUser(ctx context.Context, userID string) ([]model.Advice, error)
}

type adviceService struct {
	farms     repository.FarmRepository
	advice    repository.AdviceRepository
	fetcher   weather.Fetcher
	generator llm.Generator
	logger    *slog.Logger
}

// NewAdviceService creates a new advice service
func NewAdviceService(
	farms repository.FarmRepository,
	advice repository.AdviceRepository,
	fetcher weather.Fetcher,
	generator llm.Generator,
	logger *slog.Logger,
) AdviceService {
	return &adviceService{
		farms:     farms,
		advice:    advice,
		fetcher:   fetcher,
		generator: generator,
		logger:    logger,
	}
}

// Generate runs the pipeline: load farm, authorize, fetch weather, build
// prompt, call the model, persist. All-or-nothing: if the weather fetch or
// the generation call fails, no Advice record is written. The ownership
// check runs before any external call.
func (s *adviceService) Generate(ctx context.Context, farmID, userID string) (*model.Advice, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("load farm %s: %w", farmID, err)
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	if farm.UserID != userID {
		return nil, ErrNotFarmOwner
	}

	snapshot, err := s.fetcher.Fetch(ctx, farm.Location.Latitude, farm.Location.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetch weather for farm %s: %w", farm.ID, err)
	}

	prompt := BuildAdvicePrompt(farm, snapshot)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate advice for farm %s: %w", farm.ID, err)
	}

	advice := &model.Advice{
		UserID: userID,
		FarmID: farm.ID,
		FarmData: model.FarmSnapshot{
			FarmName:  farm.FarmName,
			Crop:      farm.Crop,
			SoilType:  farm.SoilType,
			CropStage: farm.CropStage,
		},
		WeatherData: &snapshot,
		AIAdvice:    text,
	}
	if err := s.advice.Create(ctx, advice); err != nil {
		return nil, fmt.Errorf("persist advice for farm %s: %w", farm.ID, err)
	}

	s.logger.Info("advice generated",
		"farm_id", farm.ID,
		"user_id", userID,
		"advice_id", advice.ID,
		"content_chars", len(text),
	)
	return advice, nil
}

// ListByFarm returns all advice for a farm, newest first, after the same
// ownership check as generation
func (s *adviceService) ListByFarm(ctx context.Context, farmID, userID string) ([]model.Advice, error) {
	farm, err := s.farms.FindByID(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("load farm %s: %w", farmID, err)
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	if farm.UserID != userID {
		return nil, ErrNotFarmOwner
	}
	return s.advice.FindByFarm(ctx, farmID)
}

// ListByUser returns the caller's most recent advice, newest first. No
// farm-level check is needed: rows are filtered by owning user directly.
func (s *adviceService) ListByUser(ctx context.Context, userID string) ([]model.Advice, error) {
	return s.advice.FindByUser(ctx, userID, userAdviceLimit)
}
