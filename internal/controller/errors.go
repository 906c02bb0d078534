package controller

import (
	"errors"
	"net/http"

	"github.com/AdityaDcode/FarmVista/internal/llm"
	"github.com/AdityaDcode/FarmVista/internal/service"
	"github.com/AdityaDcode/FarmVista/internal/weather"
)

// statusForError maps an operation failure to a transport status and a
// user-visible message. Internal detail (upstream payloads, wrapped errors)
// stays in the logs; the message returned here is all the client sees.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrFarmNotFound):
		return http.StatusNotFound, "Farm not found"
	case errors.Is(err, service.ErrNotFarmOwner):
		return http.StatusForbidden, "Not authorized"
	case errors.Is(err, service.ErrInvalidFarm):
		return http.StatusBadRequest, err.Error()
	}

	var fetchErr *weather.FetchError
	if errors.As(err, &fetchErr) {
		return http.StatusInternalServerError, "Failed to fetch weather data"
	}

	var genErr *llm.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusInternalServerError, "Failed to generate advice"
	}

	return http.StatusInternalServerError, "Server error"
}
