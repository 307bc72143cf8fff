package models

// Genre is the nested genre object on a movie.
type Genre struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Director is the nested director object on a movie. Birth and Death are
// plain year strings as stored by the backend; Death is empty for living
// directors.
type Director struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth string `json:"Birth"`
	Death string `json:"Death,omitempty"`
}

// Movie is a single catalog entry. ID is the backend's opaque stable
// identifier. Whether a movie is a favorite is never stored on the movie
// itself; it is derived via UserProfile.IsFavorite at render time.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	ImageURL    string   `json:"ImageUrl"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
}
