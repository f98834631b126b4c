package models

import (
	"fmt"
	"strings"
)

// Genre represents a movie genre with its catalog description.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director represents a movie director's biography.
type Director struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthYear int    `json:"birth_year"`
	DeathYear int    `json:"death_year"`
}

// Movie represents a single catalog entry. Titles are unique within the
// catalog and movies are immutable from the client's perspective.
type Movie struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"image_path"`
	Featured    bool     `json:"featured"`
}

// User represents the authenticated user's profile. FavoriteTitles is an
// ordered sequence of movie titles; duplicates carry no meaning.
type User struct {
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	Birthday       string   `json:"birthday,omitempty"`
	FavoriteTitles []string `json:"movies"`
}

// Validate checks that the user record carries its identifying fields.
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("invalid user email: %s", u.Email)
	}
	return nil
}

// HasFavorite reports whether title is in the user's favorites.
// Matching is exact-string; no case or whitespace normalization.
func (u *User) HasFavorite(title string) bool {
	for _, t := range u.FavoriteTitles {
		if t == title {
			return true
		}
	}
	return false
}

// AddFavorite appends title to the user's favorites if not already present.
func (u *User) AddFavorite(title string) {
	if u.HasFavorite(title) {
		return
	}
	u.FavoriteTitles = append(u.FavoriteTitles, title)
}

// RemoveFavorite removes the first occurrence of title from the user's
// favorites. Removing an absent title is a no-op.
func (u *User) RemoveFavorite(title string) {
	for i, t := range u.FavoriteTitles {
		if t == title {
			u.FavoriteTitles = append(u.FavoriteTitles[:i], u.FavoriteTitles[i+1:]...)
			return
		}
	}
}

// LoginResponse is the token/user pair returned by POST /login.
// A response missing either half never establishes a session.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorBody is the backend's error envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// Registration is the payload for POST /users.
type Registration struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Birthday string `json:"birthday,omitempty"`
}

// Validate checks the registration payload before it goes on the wire.
func (r *Registration) Validate() error {
	if r.Email == "" || r.Username == "" || r.Password == "" {
		return fmt.Errorf("email, username, and password are required")
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("invalid email: %s", r.Email)
	}
	return nil
}

// Credentials is the payload for POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate is the payload for PUT /users/{email}. Zero-valued fields are
// omitted and left unchanged by the backend.
type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}
