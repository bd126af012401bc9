package httpserver

import (
	"fmt"
	"net/http"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

type directorRequest struct {
	Name *string `json:"name"`
}

type directorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleListDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := s.repo.Directors.List(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "list directors", "Director not found")
		return
	}
	items := make([]directorResponse, 0, len(directors))
	for _, d := range directors {
		items = append(items, toDirectorResponse(d))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateDirector(w http.ResponseWriter, r *http.Request) {
	var req directorRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}

	var director domain.Director
	err := s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		var err error
		director, err = tx.Directors.Create(r.Context(), name)
		return err
	})
	if err != nil {
		s.respondStoreError(w, r, err, "create director", "Director not found")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/directors/%d", director.ID))
	s.respondMessage(w, http.StatusCreated, "Director created")
}

func (s *Server) handleGetDirector(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Director not found")
		return
	}

	director, err := s.repo.Directors.GetByID(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, r, err, "get director", "Director not found")
		return
	}
	s.respondJSON(w, http.StatusOK, toDirectorResponse(director))
}

func (s *Server) handleUpdateDirector(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Director not found")
		return
	}

	var req directorRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Directors.Rename(r.Context(), id, req.Name)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "update director", "Director not found")
		return
	}
	s.respondNoContent(w)
}

func (s *Server) handleDeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Director not found")
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Directors.Delete(r.Context(), id)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "delete director", "Director not found")
		return
	}
	s.respondNoContent(w)
}

func toDirectorResponse(director domain.Director) directorResponse {
	return directorResponse{ID: director.ID, Name: director.Name}
}
