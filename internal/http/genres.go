package httpserver

import (
	"fmt"
	"net/http"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

type genreRequest struct {
	Name *string `json:"name"`
}

type genreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := s.repo.Genres.List(r.Context())
	if err != nil {
		s.respondStoreError(w, r, err, "list genres", "Genre not found")
		return
	}
	items := make([]genreResponse, 0, len(genres))
	for _, g := range genres {
		items = append(items, toGenreResponse(g))
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var req genreRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}

	var genre domain.Genre
	err := s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		var err error
		genre, err = tx.Genres.Create(r.Context(), name)
		return err
	})
	if err != nil {
		s.respondStoreError(w, r, err, "create genre", "Genre not found")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/genres/%d", genre.ID))
	s.respondMessage(w, http.StatusCreated, "Genre created")
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Genre not found")
		return
	}

	genre, err := s.repo.Genres.GetByID(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, r, err, "get genre", "Genre not found")
		return
	}
	s.respondJSON(w, http.StatusOK, toGenreResponse(genre))
}

func (s *Server) handleUpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Genre not found")
		return
	}

	var req genreRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Genres.Rename(r.Context(), id, req.Name)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "update genre", "Genre not found")
		return
	}
	s.respondNoContent(w)
}

func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Genre not found")
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Genres.Delete(r.Context(), id)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "delete genre", "Genre not found")
		return
	}
	s.respondNoContent(w)
}

func toGenreResponse(genre domain.Genre) genreResponse {
	return genreResponse{ID: genre.ID, Name: genre.Name}
}
