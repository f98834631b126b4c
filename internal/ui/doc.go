// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the catalog:
//  1. [MovieListView] : Browse the catalog with favorite markers
//  2. [DetailView] : Genre, director, and description for one movie
//  3. [SignedOutView] : Anonymous entry state after logout or a rejected session
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Favorite markers are derived from the session on every render, never cached,
// so a toggle or a discarded session is reflected immediately.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, f, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
