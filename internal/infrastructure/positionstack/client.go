package positionstack

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

type client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	logger     *zap.Logger
}

// NewClient создает новый клиент для positionstack forward geocoding API
func NewClient(cfg *config.ProvidersConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.GeocoderBaseURL,
		accessKey: cfg.GeocoderKey,
		logger:    logger,
	}
}

type forwardResponse struct {
	Data []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"data"`
}

// Forward возвращает первый результат геокодирования или ErrLocationNotFound
func (c *client) Forward(ctx context.Context, query string) (*domain.GeoPoint, error) {
	reqURL := fmt.Sprintf("%s/v1/forward?access_key=%s&query=%s",
		c.baseURL, c.accessKey, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create geocoding request", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute geocoding request",
			zap.String("query", query), zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Positionstack API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.ErrUpstreamProvider
	}

	var payload forwardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode geocoding response", zap.Error(err))
		return nil, apperrors.ErrUpstreamProvider
	}

	if len(payload.Data) == 0 {
		return nil, apperrors.ErrLocationNotFound
	}

	first := payload.Data[0]
	return &domain.GeoPoint{
		Lat:     first.Latitude,
		Lon:     first.Longitude,
		Country: first.Country,
	}, nil
}
