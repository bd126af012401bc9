package domain

// Movie represents a catalog entry. Director and Genre hold the referenced
// names when the row was loaded with its relations.
type Movie struct {
	ID          int64
	Title       string
	Description string
	Trailer     string
	Year        int
	Rating      float64
	DirectorID  *int64
	Director    *string
	GenreID     *int64
	Genre       *string
}
