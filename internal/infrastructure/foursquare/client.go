package foursquare

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

// Параметры поиска: фиксированная категория ресторанов, радиус 10 км,
// не больше 5 результатов.
const (
	restaurantCategory = "13065"
	searchRadiusMeters = 10000
	resultLimit        = 5
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Foursquare places search API
func NewClient(cfg *config.ProvidersConfig, logger *zap.Logger) repository.RestaurantProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.RestaurantBaseURL,
		apiKey:  cfg.RestaurantKey,
		logger:  logger,
	}
}

type searchResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Geocodes struct {
			Main struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"main"`
		} `json:"geocodes"`
	} `json:"results"`
}

// Nearby возвращает ближайшие рестораны в порядке, выданном API
func (c *client) Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error) {
	reqURL := fmt.Sprintf("%s/v3/places/search?ll=%f,%f&radius=%d&categories=%s&limit=%d",
		c.baseURL, lat, lon, searchRadiusMeters, restaurantCategory, resultLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create restaurant search request", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute restaurant search request",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Foursquare API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamProvider
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode restaurant search response", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	places := make([]domain.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, domain.Place{
			Name: r.Name,
			Lat:  r.Geocodes.Main.Latitude,
			Lon:  r.Geocodes.Main.Longitude,
		})
	}

	return places, nil
}
