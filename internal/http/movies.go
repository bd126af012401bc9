package httpserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

// movieRequest whitelists the keys accepted on create and update; any other
// key is rejected by the decoder.
type movieRequest struct {
	Title       optional[string]  `json:"title"`
	Description optional[string]  `json:"description"`
	Trailer     optional[string]  `json:"trailer"`
	Year        optional[int]     `json:"year"`
	Rating      optional[float64] `json:"rating"`
	DirectorID  optional[int64]   `json:"director_id"`
	GenreID     optional[int64]   `json:"genre_id"`
}

type movieResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Trailer     string  `json:"trailer"`
	Year        int     `json:"year"`
	Rating      float64 `json:"rating"`
	DirectorID  *int64  `json:"director_id"`
	Director    *string `json:"director"`
	GenreID     *int64  `json:"genre_id"`
	Genre       *string `json:"genre"`
}

func (req movieRequest) nullScalar() string {
	switch {
	case req.Title.Null:
		return "title"
	case req.Description.Null:
		return "description"
	case req.Trailer.Null:
		return "trailer"
	case req.Year.Null:
		return "year"
	case req.Rating.Null:
		return "rating"
	}
	return ""
}

func (req movieRequest) createParams() (repository.MovieCreateParams, error) {
	if field := req.nullScalar(); field != "" {
		return repository.MovieCreateParams{}, fmt.Errorf("field %s cannot be null", field)
	}
	return repository.MovieCreateParams{
		Title:       req.Title.Value,
		Description: req.Description.Value,
		Trailer:     req.Trailer.Value,
		Year:        req.Year.Value,
		Rating:      req.Rating.Value,
		DirectorID:  req.DirectorID.ptr(),
		GenreID:     req.GenreID.ptr(),
	}, nil
}

func (req movieRequest) updateParams() (repository.MovieUpdateParams, error) {
	if field := req.nullScalar(); field != "" {
		return repository.MovieUpdateParams{}, fmt.Errorf("field %s cannot be null", field)
	}
	return repository.MovieUpdateParams{
		Title:       req.Title.ptr(),
		Description: req.Description.ptr(),
		Trailer:     req.Trailer.ptr(),
		Year:        req.Year.ptr(),
		Rating:      req.Rating.ptr(),
		DirectorID:  repository.RefUpdate{Set: req.DirectorID.Set, ID: req.DirectorID.ptr()},
		GenreID:     repository.RefUpdate{Set: req.GenreID.Set, ID: req.GenreID.ptr()},
	}, nil
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	filters, err := buildMovieFilters(r.URL.Query())
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	movies, err := s.repo.Movies.List(r.Context(), filters)
	if err != nil {
		s.respondStoreError(w, r, err, "list movies", "Movie not found")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponses(movies))
}

func buildMovieFilters(query url.Values) (repository.MovieListFilters, error) {
	var filters repository.MovieListFilters

	if val := strings.TrimSpace(query.Get("director_id")); val != "" {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid director_id value")
		}
		filters.DirectorID = &id
	}
	if val := strings.TrimSpace(query.Get("genre_id")); val != "" {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid genre_id value")
		}
		filters.GenreID = &id
	}
	return filters, nil
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.createParams()
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var movie domain.Movie
	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		var err error
		movie, err = tx.Movies.Create(r.Context(), params)
		return err
	})
	if err != nil {
		s.respondStoreError(w, r, err, "create movie", "Movie not found")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/movies/%d", movie.ID))
	s.respondMessage(w, http.StatusCreated, "Movie created")
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Movie not found")
		return
	}

	movie, err := s.repo.Movies.GetByID(r.Context(), id)
	if err != nil {
		s.respondStoreError(w, r, err, "get movie", "Movie not found")
		return
	}
	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Movie not found")
		return
	}

	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	params, err := req.updateParams()
	if err != nil {
		s.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Movies.Update(r.Context(), id, params)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "update movie", "Movie not found")
		return
	}
	s.respondNoContent(w)
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		s.respondMessage(w, http.StatusNotFound, "Movie not found")
		return
	}

	err = s.repo.InTx(r.Context(), func(tx *repository.Repository) error {
		return tx.Movies.Delete(r.Context(), id)
	})
	if err != nil {
		s.respondStoreError(w, r, err, "delete movie", "Movie not found")
		return
	}
	s.respondNoContent(w)
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Trailer:     movie.Trailer,
		Year:        movie.Year,
		Rating:      movie.Rating,
		DirectorID:  movie.DirectorID,
		Director:    movie.Director,
		GenreID:     movie.GenreID,
		Genre:       movie.Genre,
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}
	return items
}
