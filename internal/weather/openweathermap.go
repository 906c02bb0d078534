package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AdityaDcode/FarmVista/internal/model"
)

// Fetcher fetches normalized current conditions for a pair of coordinates.
// Coordinates are trusted as-is; no bounds validation happens here.
type Fetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64) (model.WeatherSnapshot, error)
}

// FetchError is the single failure surfaced for any weather lookup problem:
// transport errors, non-2xx responses, and malformed payloads. Upstream
// detail is kept for operator logs and never shown to end users.
type FetchError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch weather data (status %d)", e.StatusCode)
	}
	return "failed to fetch weather data"
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches current conditions from OpenWeatherMap
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Fetch calls the current-conditions endpoint in metric units and normalizes
// the payload into a WeatherSnapshot: temperature and feels-like rounded to
// the nearest whole degree, wind speed to one decimal place, and rainfall
// defaulting to 0 when the provider omits the field.
func (c *Client) Fetch(ctx context.Context, latitude, longitude float64) (model.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return model.WeatherSnapshot{}, &FetchError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("weather request failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err.Error(),
		)
		return model.WeatherSnapshot{}, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.WeatherSnapshot{}, &FetchError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("weather provider returned error",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return model.WeatherSnapshot{}, &FetchError{
			StatusCode: resp.StatusCode,
			Detail:     string(body),
		}
	}

	var payload struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Clouds struct {
			All int `json:"all"`
		} `json:"clouds"`
		Rain *struct {
			OneHour float64 `json:"1h"`
		} `json:"rain"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Error("weather payload parse failed", "error", err.Error())
		return model.WeatherSnapshot{}, &FetchError{Err: err}
	}

	description := ""
	if len(payload.Weather) > 0 {
		description = payload.Weather[0].Description
	}

	rainfall := 0.0
	if payload.Rain != nil {
		rainfall = payload.Rain.OneHour
	}

	return model.WeatherSnapshot{
		Temperature: int(math.Round(payload.Main.Temp)),
		Humidity:    payload.Main.Humidity,
		WindSpeed:   math.Round(payload.Wind.Speed*10) / 10,
		Description: description,
		FeelsLike:   int(math.Round(payload.Main.FeelsLike)),
		Pressure:    payload.Main.Pressure,
		Cloudiness:  payload.Clouds.All,
		Rainfall:    rainfall,
	}, nil
}
