package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"homeservices/internal/apperrors"
	"homeservices/internal/logger"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps an error to its status code. Internal causes are logged,
// never returned to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternal("unexpected error", err)
	}

	switch appErr.Kind {
	case apperrors.KindNotFound:
		writeDetail(w, http.StatusNotFound, "Not found.")
	case apperrors.KindValidation:
		if len(appErr.Fields) == 0 {
			writeDetail(w, http.StatusBadRequest, appErr.Message)
			return
		}
		writeJSON(w, http.StatusBadRequest, appErr.Fields)
	default:
		logger.FromContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
	}
}

// decodeJSON reads a size-limited body into dst. Unknown fields are ignored;
// an empty body decodes as {}.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &apperrors.AppError{Kind: apperrors.KindValidation, Message: "Request body is too large."}
		}
		return &apperrors.AppError{Kind: apperrors.KindValidation, Message: "Failed to read request body."}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperrors.NewFieldError(typeErr.Field,
				fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type.Kind(), typeErr.Value))
		}
		return &apperrors.AppError{Kind: apperrors.KindValidation, Message: "JSON parse error - " + err.Error()}
	}
	return nil
}

// pathID reads the {id} route parameter. Anything but a positive integer
// cannot address a record.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound("invalid id")
	}
	return id, nil
}
