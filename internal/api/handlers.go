package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ammarcodes29/cryptoAPI/pkg/lcw"
	"github.com/ammarcodes29/cryptoAPI/pkg/models"
	"github.com/ammarcodes29/cryptoAPI/pkg/validate"
)

// Default pagination parameters per endpoint.
const (
	defaultListLimit   = 20
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": s.title + " is running",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	size, err := s.svc.CacheSize(r.Context())
	if err != nil {
		s.logger.Warn().Err(err).Msg("Cache size unavailable")
		size = -1
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"api_version": s.version,
		"cache_size":  size,
	})
}

func (s *Server) handleCoin(w http.ResponseWriter, r *http.Request) {
	symbol, err := validate.Symbol(r.PathValue("symbol"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	currency, err := validate.Currency(queryDefault(r, "currency", "USD"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	asset, err := s.svc.Coin(r.Context(), symbol, currency)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, asset)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", defaultListLimit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if limit, err = validate.Limit(limit, validate.DefaultMaxLimit); err != nil {
		s.writeError(w, err)
		return
	}

	offset, err := intParam(r, "offset", 0)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if offset, err = validate.Offset(offset); err != nil {
		s.writeError(w, err)
		return
	}

	currency, err := validate.Currency(queryDefault(r, "currency", "USD"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	items, err := s.svc.List(r.Context(), currency, limit, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, models.ListResponse{
		Data:       items,
		TotalCount: len(items),
		Currency:   currency,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, err := validate.Query(r.URL.Query().Get("query"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit, err := intParam(r, "limit", defaultSearchLimit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if limit, err = validate.Limit(limit, maxSearchLimit); err != nil {
		s.writeError(w, err)
		return
	}

	currency, err := validate.Currency(queryDefault(r, "currency", "USD"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	items, err := s.svc.Search(r.Context(), query, currency, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, models.ListResponse{
		Data:       items,
		TotalCount: len(items),
		Currency:   currency,
	})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	currency, err := validate.Currency(queryDefault(r, "currency", "USD"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	overview, err := s.svc.Overview(r.Context(), currency)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, overview)
}

// writeError selects the status from the error's structured kind and
// renders the public error body. Unknown errors never leak internals.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		s.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:      "Validation Error",
			Message:    verr.Error(),
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	var perr *lcw.Error
	if errors.As(err, &perr) {
		status := perr.HTTPStatus()
		s.logger.Error().
			Str("kind", string(perr.Kind)).
			Int("status", status).
			Msg(perr.Message)
		s.writeJSON(w, status, models.ErrorResponse{
			Error:      "API Error",
			Message:    perr.Message,
			StatusCode: status,
		})
		return
	}

	s.logger.Error().Err(err).Msg("Unhandled error")
	s.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Error:      "Internal Error",
		Message:    "internal server error",
		StatusCode: http.StatusInternalServerError,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("Encoding response failed")
	}
}

func queryDefault(r *http.Request, key, fallback string) string {
	if v := r.URL.Query().Get(key); v != "" {
		return v
	}
	return fallback
}

// intParam parses an integer query parameter, rejecting non-numeric input
// as a validation error.
func intParam(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &validate.Error{Field: key, Reason: "must be an integer"}
	}
	return n, nil
}
