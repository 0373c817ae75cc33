package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/destination-service/internal/config"
	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Open-Meteo forecast API
func NewClient(cfg *config.ProvidersConfig, logger *zap.Logger) repository.WeatherProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.WeatherBaseURL,
		logger:  logger,
	}
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
	} `json:"current_weather"`
}

// Current возвращает снимок текущей погоды для координат.
// Поля, отсутствующие в ответе, остаются нулевыми.
func (c *client) Current(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error) {
	reqURL := fmt.Sprintf("%s/v1/forecast?latitude=%f&longitude=%f&current_weather=true",
		c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create weather request", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute weather request",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Open-Meteo API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamProvider
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode weather response", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	return &domain.WeatherSnapshot{
		Temperature: payload.CurrentWeather.Temperature,
		Windspeed:   payload.CurrentWeather.Windspeed,
	}, nil
}
