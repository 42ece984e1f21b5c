package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"arlens/place-history-service/internal/service"
)

type DescriptionHandler struct {
	descriptionService service.DescriptionService
	timeout            time.Duration
}

func NewDescriptionHandler(descriptionService service.DescriptionService, timeout time.Duration) *DescriptionHandler {
	return &DescriptionHandler{
		descriptionService: descriptionService,
		timeout:            timeout,
	}
}

func (h *DescriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The endpoint backs browser-based AR clients served from any origin.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/get_description":
		h.GetDescription(w, r)
	case r.URL.Path == "/get_description":
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	default:
		respondWithError(w, http.StatusNotFound, "not found")
	}
}

func (h *DescriptionHandler) GetDescription(w http.ResponseWriter, r *http.Request) {
	if h.descriptionService == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Backend configuration error: service not initialized")
		return
	}

	query, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.descriptionService.GetDescription(ctx, query)
	if err != nil {
		h.respondWithServiceError(w, query, err)
		return
	}

	if result.Degraded != nil {
		// Degraded success: the HTTP layer succeeded and the raw text may
		// still be useful, so this is a 200, not an error status.
		respondWithJSON(w, http.StatusOK, DegradedResponse{
			RawResponse:        result.Degraded.RawResponse,
			Warning:            result.Degraded.Warning,
			ErrorDetails:       result.Degraded.ErrorDetails,
			DeterminedLocation: result.Location,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, result.Answer)
}

func (h *DescriptionHandler) parseRequest(w http.ResponseWriter, r *http.Request) (service.LocationQuery, bool) {
	var req DescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondWithError(w, http.StatusBadRequest, "Request must contain a valid JSON body")
		} else {
			respondWithErrorDetails(w, http.StatusBadRequest, "Invalid JSON format in request body", err.Error())
		}
		return service.LocationQuery{}, false
	}

	if req.Latitude == nil || req.Longitude == nil {
		respondWithError(w, http.StatusBadRequest, "Required fields 'latitude' and 'longitude' are missing")
		return service.LocationQuery{}, false
	}

	lat, lon := *req.Latitude, *req.Longitude

	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		respondWithError(w, http.StatusBadRequest, "'latitude' must be a finite number within [-90, 90]")
		return service.LocationQuery{}, false
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		respondWithError(w, http.StatusBadRequest, "'longitude' must be a finite number within [-180, 180]")
		return service.LocationQuery{}, false
	}

	if len(req.Quaternion) != 0 && len(req.Quaternion) != 4 {
		respondWithError(w, http.StatusBadRequest, "'quaternion' must contain exactly 4 values")
		return service.LocationQuery{}, false
	}

	return service.LocationQuery{
		Latitude:   lat,
		Longitude:  lon,
		Altitude:   req.Altitude,
		Quaternion: req.Quaternion,
	}, true
}

func (h *DescriptionHandler) respondWithServiceError(w http.ResponseWriter, query service.LocationQuery, err error) {
	var blockedErr *service.ModelBlockedError
	var formatErr *service.ModelFormatError
	var outputErr *service.ModelOutputError

	switch {
	case errors.As(err, &blockedErr):
		respondWithErrorDetails(w, http.StatusBadRequest, "AI response blocked or invalid", blockedErr.Detail)
	case errors.As(err, &formatErr):
		respondWithError(w, http.StatusBadGateway, "Unexpected AI response format")
	case errors.As(err, &outputErr):
		respondWithErrorDetails(w, http.StatusBadGateway, "AI response could not be parsed as valid JSON", outputErr.Detail)
	default:
		log.Error().
			Err(err).
			Float64("latitude", query.Latitude).
			Float64("longitude", query.Longitude).
			Msg("failed to get location description")
		respondWithError(w, http.StatusInternalServerError, "An internal server error occurred processing the AI request")
	}
}
