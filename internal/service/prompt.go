package service

import (
	"fmt"
	"strconv"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// The six section labels the model is instructed to produce. Structure is
// requested in natural language only; the response is not parsed or
// validated against these labels.
const advicePromptTemplate = `You are an expert agricultural advisor. Provide COMPLETE and ACTIONABLE farming advice based on the farm and weather data below. Do not leave the advice incomplete.

FARM DATA:
- Farm Name: %s
- Crop: %s
- Crop Stage: %s
- Soil Type: %s
- Area: %s sq meters

CURRENT WEATHER:
- Temperature: %d°C (Feels like: %d°C)
- Humidity: %d%%
- Wind Speed: %s m/s
- Condition: %s
- Pressure: %d hPa
- Cloud Coverage: %d%%
- Recent Rainfall: %s mm

PROVIDE COMPLETE ADVICE WITH THESE SECTIONS:
1. Current Conditions Assessment - What is happening now
2. Immediate Actions - What to do this week
3. Pest & Disease Alert - Watch for these
4. Irrigation Advice - Water management
5. Fertilizer Timing - Nutrition schedule
6. Additional Recommendations - Other important tips

Keep advice practical, simple, and in English suitable for farmers. Ensure EVERY section is complete and not truncated.`

// BuildAdvicePrompt renders the instruction block sent to the language
// model. Pure and deterministic: identical inputs produce byte-identical
// output.
func BuildAdvicePrompt(farm *model.Farm, weather model.WeatherSnapshot) string {
	return fmt.Sprintf(advicePromptTemplate,
		farm.FarmName,
		farm.Crop,
		farm.CropStage,
		farm.SoilType,
		formatNumber(farm.AreaSqM),
		weather.Temperature,
		weather.FeelsLike,
		weather.Humidity,
		formatNumber(weather.WindSpeed),
		weather.Description,
		weather.Pressure,
		weather.Cloudiness,
		formatNumber(weather.Rainfall),
	)
}

// formatNumber renders a float without trailing zeros (5000, 2.2, 0)
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
