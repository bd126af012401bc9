package domain

// Director is a person credited as the director of one or more movies.
type Director struct {
	ID   int64
	Name string
}
