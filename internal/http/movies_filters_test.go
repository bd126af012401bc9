package httpserver

import (
	"net/url"
	"testing"
)

func TestBuildMovieFilters(t *testing.T) {
	values, _ := url.ParseQuery("director_id= 3 &genre_id=7")

	filters, err := buildMovieFilters(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.DirectorID == nil || *filters.DirectorID != 3 {
		t.Fatalf("director_id parse failed: %+v", filters.DirectorID)
	}
	if filters.GenreID == nil || *filters.GenreID != 7 {
		t.Fatalf("genre_id parse failed: %+v", filters.GenreID)
	}
}

func TestBuildMovieFilters_Empty(t *testing.T) {
	filters, err := buildMovieFilters(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filters.DirectorID != nil || filters.GenreID != nil {
		t.Fatalf("expected no filters, got %+v", filters)
	}
}

func TestBuildMovieFilters_Invalid(t *testing.T) {
	for _, raw := range []string{"director_id=abc", "genre_id=1.5", "director_id=99999999999999999999"} {
		values, _ := url.ParseQuery(raw)
		if _, err := buildMovieFilters(values); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
