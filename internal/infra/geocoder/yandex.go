// Package geocoder contains the adapter for the external address lookup service.
package geocoder

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodcart/config"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://geocode-maps.yandex.ru/1.x"
	defaultTimeout = 5 * time.Second

	// Limits how much of an error body ends up in logs.
	maxErrorBodyBytes = 512
)

// yandexGeocoder implements service.Geocoder against the Yandex Geocoder HTTP API.
type yandexGeocoder struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// Params holds dependencies for the geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// geocodeResponse mirrors the part of the JSON body that carries candidates.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// NewYandexGeocoder creates the geocoder from configuration
func NewYandexGeocoder(params Params) service.Geocoder {
	cfg := params.Config.Geocoder
	if cfg == nil {
		cfg = &config.GeocoderConfig{}
	}

	if cfg.APIKey == "" {
		params.Logger.Warn("Geocoder API key is not configured, lookups will likely be rejected")
	}

	return newYandexGeocoder(cfg, &http.Client{}, params.Logger)
}

func newYandexGeocoder(cfg *config.GeocoderConfig, httpClient *http.Client, logger *slog.Logger) *yandexGeocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := max(cfg.Burst, 1)

	return &yandexGeocoder{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
	}
}

// Resolve looks the address up and returns the first, most relevant candidate.
func (g *yandexGeocoder) Resolve(ctx context.Context, address string) (entity.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return entity.Coordinate{}, &service.TransportError{Err: errors.Wrap(err, "rate limiter wait")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.requestURL(address), nil)
	if err != nil {
		return entity.Coordinate{}, &service.TransportError{Err: errors.WithStack(err)}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return entity.Coordinate{}, &service.TransportError{Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		g.logger.Debug("Geocoder returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)

		return entity.Coordinate{}, &service.TransportError{
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.Coordinate{}, &service.TransportError{
			StatusCode: resp.StatusCode,
			Err:        errors.Wrap(err, "decode geocoder response"),
		}
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return entity.Coordinate{}, service.ErrAddressNotFound
	}

	coord, err := parsePos(members[0].GeoObject.Point.Pos)
	if err != nil {
		return entity.Coordinate{}, &service.TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	return coord, nil
}

func (g *yandexGeocoder) requestURL(address string) string {
	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")

	return g.baseURL + "?" + params.Encode()
}

// parsePos parses a "lon lat" pair.
func parsePos(pos string) (entity.Coordinate, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return entity.Coordinate{}, errors.Errorf("malformed position %q", pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "parse longitude %q", fields[0])
	}

	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "parse latitude %q", fields[1])
	}

	coord := entity.Coordinate{Lon: lon, Lat: lat}
	if !coord.IsValid() {
		return entity.Coordinate{}, errors.Errorf("position %q out of range", pos)
	}

	return coord, nil
}
