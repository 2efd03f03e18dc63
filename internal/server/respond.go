package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"askify/internal/dubbing"
	"askify/internal/locale"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "Failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// errorStatus maps pipeline errors to HTTP statuses: user input errors to
// 400, the poll timeout to 504, everything from the provider or transport
// to 502.
func errorStatus(err error) int {
	var invalid *locale.InvalidLocaleError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, dubbing.ErrPollTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
