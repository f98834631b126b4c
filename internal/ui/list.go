package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/flick/internal/models"
)

var _ list.Item = movieItem{}

// movieItem wraps [models.Movie] to implement [list.Item]. The favorite
// marker is computed when items are built, and items are rebuilt whenever
// the favorites list changes.
type movieItem struct {
	movie    models.Movie
	favorite bool
}

func (i movieItem) FilterValue() string { return i.movie.Title }

func (i movieItem) Title() string {
	if i.favorite {
		return fmt.Sprintf("★ %s", i.movie.Title)
	}
	return i.movie.Title
}

func (i movieItem) Description() string {
	desc := i.movie.Genre.Name
	if i.movie.Director.Name != "" {
		if desc != "" {
			desc = fmt.Sprintf("%s • %s", desc, i.movie.Director.Name)
		} else {
			desc = i.movie.Director.Name
		}
	}
	return desc
}
