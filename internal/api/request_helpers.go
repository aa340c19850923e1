package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
)

// ParseIDValue converts a raw textual id into a positive integer.
// Returns an error wrapping domain.ErrInvalidID for anything else.
func ParseIDValue(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id",
			"ID deve ser um número inteiro positivo.", domain.ErrInvalidID)
	}
	return id, nil
}

// getPathID extracts a positive integer id from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	return ParseIDValue(chi.URLParam(r, paramName))
}
