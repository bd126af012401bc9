package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

const maxRequestBody = 1 << 20 // 1 MiB

var errInvalidID = errors.New("invalid id parameter")

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondMessage writes a bare JSON string, the only body shape used for
// confirmations and failures.
func (s *Server) respondMessage(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, message)
}

func (s *Server) respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) respondDecodeError(w http.ResponseWriter, err error) {
	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	var maxBytesError *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxError), errors.Is(err, io.ErrUnexpectedEOF):
		s.respondMessage(w, http.StatusBadRequest, "Malformed JSON payload")
	case errors.As(err, &typeError):
		if typeError.Field != "" {
			s.respondMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid value for field %s", typeError.Field))
			return
		}
		s.respondMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid value, expected %s", typeError.Type))
	case errors.Is(err, io.EOF):
		s.respondMessage(w, http.StatusBadRequest, "Request body cannot be empty")
	case errors.As(err, &maxBytesError):
		s.respondMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		s.respondMessage(w, http.StatusBadRequest, fmt.Sprintf("Unknown field %s", field))
	default:
		s.respondMessage(w, http.StatusBadRequest, "Unable to parse request body")
	}
}

// respondStoreError maps repository failures onto status codes. Anything
// unrecognised is logged and reported as a bare 500.
func (s *Server) respondStoreError(w http.ResponseWriter, r *http.Request, err error, op, notFound string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.respondMessage(w, http.StatusNotFound, notFound)
	case errors.Is(err, repository.ErrInvalidReference):
		s.respondMessage(w, http.StatusBadRequest, "Invalid director or genre reference")
	case errors.Is(err, repository.ErrNotUpdated):
		s.respondMessage(w, http.StatusBadRequest, "Not updated")
	default:
		s.logger.ErrorContext(r.Context(), op+" failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		s.respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		return 0, errInvalidID
	}
	return id, nil
}
