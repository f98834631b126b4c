package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/flick/internal/favorites"
	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/services"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MovieListView ViewState = iota
	DetailView
	SignedOutView
)

// SignedOutMsg routes the TUI to the anonymous entry view. The session
// policy's signed-out hook sends it through the running program.
type SignedOutMsg struct{}

type moviesFetchedMsg struct {
	movies []models.Movie
	err    error
}

type favoriteToggledMsg struct {
	title string
	err   error
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   *services.CatalogService
	favs      *favorites.Synchronizer
	width     int
	height    int
	movieList list.Model
	movies    []models.Movie
	selected  *models.Movie
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog *services.CatalogService, favs *favorites.Synchronizer) *Model {
	return &Model{
		ctx:     ctx,
		view:    MovieListView,
		catalog: catalog,
		favs:    favs,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the catalog.
func (m *Model) Init() tea.Cmd {
	return m.fetchMovies()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() != 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case SignedOutMsg:
		m.view = SignedOutView
		m.selected = nil
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MovieListView:
			return m.handleMovieListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case SignedOutView:
			return m, tea.Quit
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.movies = msg.movies
		m.movieList = list.New(m.buildItems(), list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = "Movie Catalog"
		m.movieList.SetSize(m.width-4, m.height-8)
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.refreshItems()
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.view == SignedOutView {
		return styles.warn.Render("Signed out. Run 'flick login' to start a new session.\n\nPress any key to exit.")
	}

	if m.err != nil && m.view == MovieListView && len(m.movies) == 0 {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case MovieListView:
		return m.renderMovieList()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleMovieListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if movie := m.selectedMovie(); movie != nil {
			m.selected = movie
			m.view = DetailView
		}
		return m, nil
	case "f":
		if movie := m.selectedMovie(); movie != nil {
			return m, m.toggleFavorite(movie.Title)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = MovieListView
		m.selected = nil
		return m, nil
	case "f":
		if m.selected != nil {
			return m, m.toggleFavorite(m.selected.Title)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == MovieListView {
		m.movieList, cmd = m.movieList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedMovie() *models.Movie {
	selected := m.movieList.SelectedItem()
	if selected == nil {
		return nil
	}
	if item, ok := selected.(movieItem); ok {
		movie := item.movie
		return &movie
	}
	return nil
}

// buildItems derives the favorite marker for every movie from the current
// session. Markers are recomputed here rather than cached on the item.
func (m *Model) buildItems() []list.Item {
	items := make([]list.Item, len(m.movies))
	for i, movie := range m.movies {
		items[i] = movieItem{movie: movie, favorite: m.favs.IsFavorite(movie.Title)}
	}
	return items
}

func (m *Model) refreshItems() {
	m.movieList.SetItems(m.buildItems())
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.catalog.ListAll(m.ctx)
		return moviesFetchedMsg{movies: movies, err: err}
	}
}

func (m *Model) toggleFavorite(title string) tea.Cmd {
	return func() tea.Msg {
		var err error
		if m.favs.IsFavorite(title) {
			err = m.favs.Remove(m.ctx, title)
		} else {
			err = m.favs.Add(m.ctx, title)
		}
		return favoriteToggledMsg{title: title, err: err}
	}
}

func (m *Model) renderMovieList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.favorite, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	var errLine string
	if m.err != nil {
		errLine = "\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return fmt.Sprintf("%s%s\n\n%s", m.movieList.View(), errLine, helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}

	title := m.selected.Title
	if m.favs.IsFavorite(title) {
		title = fmt.Sprintf("★ %s", title)
	}

	header := styles.title.Render(title)
	body := fmt.Sprintf(
		"Genre: %s\nDirector: %s\n\n%s",
		m.selected.Genre.Name,
		m.selected.Director.Name,
		m.selected.Description,
	)

	helpKeys := []key.Binding{m.keys.favorite, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	var errLine string
	if m.err != nil {
		errLine = "\n\n" + styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return fmt.Sprintf("%s\n%s%s\n\n%s", header, body, errLine, helpView)
}
