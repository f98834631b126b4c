// package formatter provides functions to export movie lists to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertthunder/flick/internal/models"
)

// ExportToCSV converts a movie list to CSV with columns: Title, Genre, Director, Featured, Description
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Genre", "Director", "Featured", "Description"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			movie.Title,
			movie.Genre.Name,
			movie.Director.Name,
			strconv.FormatBool(movie.Featured),
			movie.Description,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a movie list to a Markdown document titled heading
func ExportToMarkdown(heading string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", heading))
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(movies)))

	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. **%s**", i+1, movie.Title))
		if movie.Genre.Name != "" {
			buf.WriteString(fmt.Sprintf(" · %s", movie.Genre.Name))
		}
		if movie.Director.Name != "" {
			buf.WriteString(fmt.Sprintf(" · dir. %s", movie.Director.Name))
		}
		buf.WriteString("\n")
		if movie.Description != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", movie.Description))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a movie list to plain text
func ExportToText(heading string, movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", heading))
	buf.WriteString(fmt.Sprintf("Movies: %d\n\n", len(movies)))

	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, movie.Title))
		if movie.Director.Name != "" {
			buf.WriteString(fmt.Sprintf(" - %s", movie.Director.Name))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
