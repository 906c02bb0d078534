package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// SeedRepository handles database seeding operations
type SeedRepository struct {
	db *gorm.DB
}

// NewSeedRepository creates a new seed repository
func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// SeedDatabase populates demo farms and a small advice history for a demo
// user, for local development against an empty database
func (s *SeedRepository) SeedDatabase() error {
	if err := s.clearExistingData(); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	farms, err := s.createFarms()
	if err != nil {
		return fmt.Errorf("failed to create farms: %w", err)
	}

	created, err := s.createAdviceHistory(farms)
	if err != nil {
		return fmt.Errorf("failed to create advice history: %w", err)
	}

	fmt.Printf("Seeded database: %d farms, %d advice records\n", len(farms), created)
	return nil
}

func (s *SeedRepository) clearExistingData() error {
	if err := s.db.Exec("DELETE FROM advice").Error; err != nil {
		return err
	}
	if err := s.db.Exec("DELETE FROM farms").Error; err != nil {
		return err
	}
	return nil
}

const seedUserID = "demo-user"

func (s *SeedRepository) createFarms() ([]model.Farm, error) {
	farms := []model.Farm{
		{
			UserID:   seedUserID,
			FarmName: "Riverside Paddy",
			Location: model.Location{
				Latitude:  12.9716,
				Longitude: 77.5946,
				City:      "Bengaluru",
				State:     "Karnataka",
			},
			SoilType:  "Alluvial Soil",
			Crop:      "Rice",
			CropStage: model.StageFlowering,
			AreaSqM:   5000,
		},
		{
			UserID:   seedUserID,
			FarmName: "Hilltop Orchard",
			Location: model.Location{
				Latitude:  18.5204,
				Longitude: 73.8567,
				City:      "Pune",
				State:     "Maharashtra",
			},
			SoilType:  "Red Soil",
			Crop:      "Mango",
			CropStage: model.StageVegetative,
			AreaSqM:   12000,
		},
	}

	if err := s.db.Create(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

func (s *SeedRepository) createAdviceHistory(farms []model.Farm) (int, error) {
	created := 0
	for _, farm := range farms {
		for i := 0; i < 3; i++ {
			advice := model.Advice{
				UserID: farm.UserID,
				FarmID: farm.ID,
				FarmData: model.FarmSnapshot{
					FarmName:  farm.FarmName,
					Crop:      farm.Crop,
					SoilType:  farm.SoilType,
					CropStage: farm.CropStage,
				},
				WeatherData: &model.WeatherSnapshot{
					Temperature: 28 + i,
					Humidity:    65,
					WindSpeed:   2.4,
					Description: "scattered clouds",
					FeelsLike:   30 + i,
					Pressure:    1009,
					Cloudiness:  40,
					Rainfall:    0,
				},
				AIAdvice:  fmt.Sprintf("Seeded advice #%d for %s: conditions look stable; keep to the regular irrigation schedule.", i+1, farm.FarmName),
				CreatedAt: time.Now().AddDate(0, 0, -i),
			}
			if err := s.db.Create(&advice).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
