package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"arlens/place-history-service/internal/db/querylog"
	"arlens/place-history-service/internal/inmemorycache"
	"arlens/place-history-service/internal/providers"
)

// LocationQuery is a validated inbound request. Altitude and Quaternion are
// accepted from clients but unused by the pipeline.
type LocationQuery struct {
	Latitude   float64
	Longitude  float64
	Altitude   *float64
	Quaternion []float64
}

// DegradedPayload carries the diagnostics returned when the model's output
// could not be normalized into the answer shape.
type DegradedPayload struct {
	RawResponse  string
	Warning      string
	ErrorDetails string
}

// DescriptionResult is the outcome of a full pipeline run. Exactly one of
// Answer and Degraded is set.
type DescriptionResult struct {
	Answer   map[string]interface{}
	Degraded *DegradedPayload
	Location string
}

type DescriptionService interface {
	GetDescription(ctx context.Context, query LocationQuery) (DescriptionResult, error)
}

type descriptionService struct {
	geocoder     providers.GeocodingProvider
	generator    providers.GenerativeProvider
	cache        inmemorycache.Cache
	queryLogRepo querylog.Repository
	cacheTTL     time.Duration
	strictOutput bool
}

// NewDescriptionService wires the pipeline. cache and queryLogRepo may be
// nil; both are enrichments and the pipeline runs without them.
func NewDescriptionService(
	geocoder providers.GeocodingProvider,
	generator providers.GenerativeProvider,
	cache inmemorycache.Cache,
	queryLogRepo querylog.Repository,
	cacheTTL time.Duration,
	strictOutput bool,
) DescriptionService {
	return &descriptionService{
		geocoder:     geocoder,
		generator:    generator,
		cache:        cache,
		queryLogRepo: queryLogRepo,
		cacheTTL:     cacheTTL,
		strictOutput: strictOutput,
	}
}

func (s *descriptionService) GetDescription(ctx context.Context, query LocationQuery) (DescriptionResult, error) {
	locationName := s.resolveLocationName(ctx, query.Latitude, query.Longitude)

	prompt := BuildPrompt(locationName, query.Latitude, query.Longitude)

	generation, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logQuery(query, locationName, querylog.OutcomeFailed)
		return DescriptionResult{}, &ModelCallError{Err: err}
	}

	switch generation.Outcome {
	case providers.OutcomeBlocked:
		log.Warn().Str("detail", generation.Detail).Msg("model output blocked")
		s.logQuery(query, locationName, querylog.OutcomeFailed)
		return DescriptionResult{}, &ModelBlockedError{Detail: generation.Detail}
	case providers.OutcomeMalformed:
		s.logQuery(query, locationName, querylog.OutcomeFailed)
		return DescriptionResult{}, &ModelFormatError{Reason: generation.Detail}
	}

	answer, parseErr := ParseAnswer(generation.Text)
	if parseErr != nil {
		log.Warn().
			Err(parseErr).
			Str("location", locationName).
			Msg("model output failed normalization")
		s.logQuery(query, locationName, querylog.OutcomeDegraded)

		if s.strictOutput {
			return DescriptionResult{}, &ModelOutputError{
				Raw:      generation.Text,
				Detail:   parseErr.Error(),
				Location: locationName,
			}
		}

		return DescriptionResult{
			Degraded: &DegradedPayload{
				RawResponse:  generation.Text,
				Warning:      parseWarning,
				ErrorDetails: parseErr.Error(),
			},
			Location: locationName,
		}, nil
	}

	s.logQuery(query, locationName, querylog.OutcomeOK)

	return DescriptionResult{Answer: answer, Location: locationName}, nil
}

// resolveLocationName turns coordinates into a display name. Geocoding is an
// enrichment, not a hard dependency: every failure path falls back to a
// synthesized name and the pipeline continues.
func (s *descriptionService) resolveLocationName(ctx context.Context, lat, lon float64) string {
	cacheKey := fmt.Sprintf("%.6f,%.6f", lat, lon)

	if s.cache != nil {
		if cached, found, err := s.cache.Get(cacheKey); err == nil && found {
			return cached.DisplayName
		}
	}

	defaultName := DefaultLocationName(lat, lon)

	places, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		var apiErr *providers.GeocodingAPIError
		if errors.As(err, &apiErr) {
			log.Error().Err(err).Msg("geocoding API error")
			return defaultName + " (Maps API Error)"
		}
		log.Error().Err(err).Msg("unexpected geocoding failure")
		return defaultName + " (Geocoding Error)"
	}

	if len(places) == 0 || places[0].FormattedAddress == "" {
		log.Warn().
			Float64("latitude", lat).
			Float64("longitude", lon).
			Msg("geocoding returned no results")
		return defaultName
	}

	displayName := places[0].FormattedAddress

	if s.cache != nil {
		if err := s.cache.Set(cacheKey, &inmemorycache.PlaceCacheData{DisplayName: displayName}, s.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache geocoding result")
		}
	}

	return displayName
}

// logQuery records the request in the audit log when one is configured.
// Best effort: insert failures never affect the response.
func (s *descriptionService) logQuery(query LocationQuery, displayName, outcome string) {
	if s.queryLogRepo == nil {
		return
	}
	if err := s.queryLogRepo.LogLocationQuery(query.Latitude, query.Longitude, displayName, outcome); err != nil {
		log.Warn().Err(err).Msg("failed to write query audit log")
	}
}
