package devserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/wellbe/api"
	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

const contentTypeJSON = "application/json; charset=utf-8"

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode response")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Failed[struct{}]("Invalid request body"))
		return false
	}
	return true
}

// notFoundMessages are the domain errors answered with 404.
var notFoundMessages = map[string]struct{}{
	wellbeerrors.ErrFoodNotFound.Error():     {},
	wellbeerrors.ErrExerciseNotFound.Error(): {},
	wellbeerrors.ErrWorkoutNotFound.Error():  {},
	"Food not found":                         {},
}

// respond writes a service envelope, choosing the status from its error.
func respond[T any](w http.ResponseWriter, resp api.Response[T]) {
	if resp.Success {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	status := http.StatusBadRequest
	if _, ok := notFoundMessages[resp.Error]; ok {
		status = http.StatusNotFound
	}
	writeJSON(w, status, resp)
}

// respondErr maps an authentication error to a status and failed envelope.
func respondErr(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, wellbeerrors.ErrInvalidRefreshToken), errors.Is(err, wellbeerrors.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, wellbeerrors.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, wellbeerrors.ErrInternal):
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, api.Fail[struct{}](err, wellbeerrors.ErrInternal.Error()))
}
