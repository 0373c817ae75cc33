package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/destination-service/internal/config"
	"github.com/destination-service/internal/domain"
	"github.com/destination-service/internal/domain/repository"
	apperrors "github.com/destination-service/internal/pkg/errors"
)

// Параметры geosearch: радиус 10 км, не больше 5 результатов.
const (
	searchRadiusMeters = 10000
	resultLimit        = 5
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает новый клиент для Wikipedia geosearch API
func NewClient(cfg *config.ProvidersConfig, logger *zap.Logger) repository.PlaceProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.PlacesBaseURL,
		logger:  logger,
	}
}

type geosearchResponse struct {
	Query struct {
		Geosearch []struct {
			Title string  `json:"title"`
			Lat   float64 `json:"lat"`
			Lon   float64 `json:"lon"`
		} `json:"geosearch"`
	} `json:"query"`
}

// Nearby возвращает ближайшие точки интереса в порядке, выданном API
func (c *client) Nearby(ctx context.Context, lat, lon float64) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "geosearch")
	params.Set("gscoord", fmt.Sprintf("%f|%f", lat, lon))
	params.Set("gsradius", fmt.Sprintf("%d", searchRadiusMeters))
	params.Set("gslimit", fmt.Sprintf("%d", resultLimit))
	params.Set("format", "json")

	reqURL := fmt.Sprintf("%s/w/api.php?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create geosearch request", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geosearch request",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Wikipedia API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamProvider
	}

	var payload geosearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode geosearch response", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	places := make([]domain.Place, 0, len(payload.Query.Geosearch))
	for _, p := range payload.Query.Geosearch {
		places = append(places, domain.Place{
			Name: p.Title,
			Lat:  p.Lat,
			Lon:  p.Lon,
		})
	}

	return places, nil
}
