package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
)

// decodeFields reads the request body as a JSON object. Numbers decode as
// json.Number so 64-bit values survive intact.
func decodeFields(r *http.Request) (map[string]any, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeRequestInvalidBody,
			"request body must be a JSON object", err)
	}
	if fields == nil {
		return nil, apperrors.New(apperrors.CodeRequestInvalidBody,
			"request body must be a JSON object")
	}
	return fields, nil
}

// parseID converts a URL segment into a positive record id.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.WithMetadata(apperrors.CodeRequestInvalidKey,
			fmt.Sprintf("id %q must be a positive integer", raw),
			map[string]string{"id": raw})
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorEnvelope(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

// writeError renders err through the domain error mapping. Errors without a
// domain code are treated as internal failures: logged in full, reported
// with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	domain := apperrors.FromError(err)
	if domain == nil {
		h.logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeErrorEnvelope(w, http.StatusInternalServerError,
			string(apperrors.CodeUnknown), "internal error")
		return
	}

	status := domain.Code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	writeErrorEnvelope(w, status, string(domain.Code), domain.Message)
}
