// Package dataset loads labeled tweet collections from csv, tsv, xlsx,
// and plain text files. Delimiters and text/label columns are detected
// automatically so common export formats load without flags.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/HananMiftah/TweetClassifier/internal/textnorm"
)

// Loader reads dataset files into models.Dataset values.
type Loader struct{}

// NewLoader returns a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path and returns its documents. The format is
// chosen by extension: .csv/.tsv/.xlsx are tabular, anything else is
// plain text with one document per line. Documents are cleaned on load
// so downstream code can use Normalized directly.
func (l *Loader) Load(path string) (*models.Dataset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds, err := l.FromBytes(name, content, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, err
	}
	ds.Path = path
	return ds, nil
}

// FromBytes parses dataset content with the given extension (leading
// dot included, e.g. ".csv").
func (l *Loader) FromBytes(name string, content []byte, ext string) (*models.Dataset, error) {
	var (
		ds  *models.Dataset
		err error
	)
	switch ext {
	case ".csv", ".tsv":
		ds, err = fromCSV(name, content, ext)
	case ".xlsx":
		ds, err = fromXLSX(name, content)
	default:
		// Unknown extension: treat as plain text.
		ds = fromText(name, content)
	}
	if err != nil {
		return nil, err
	}
	if len(ds.Documents) == 0 {
		return nil, fmt.Errorf("%s: no documents found", name)
	}
	return ds, nil
}

// rowsToDataset turns tabular records into documents using the
// detected text and label columns.
func rowsToDataset(name, format string, records [][]string) *models.Dataset {
	textCol, labelCol, hasHeader := detectColumns(records)

	start := 0
	if hasHeader {
		start = 1
	}

	docs := make([]models.Document, 0, len(records))
	for _, row := range records[start:] {
		if textCol >= len(row) {
			continue
		}
		text := strings.TrimSpace(row[textCol])
		if text == "" {
			continue
		}
		label := ""
		if labelCol >= 0 && labelCol < len(row) {
			label = strings.ToLower(strings.TrimSpace(row[labelCol]))
		}
		docs = append(docs, models.Document{
			ID:         fmt.Sprintf("doc-%d", len(docs)+1),
			Text:       text,
			Normalized: textnorm.Normalize(text),
			Label:      label,
		})
	}

	return &models.Dataset{Name: name, Format: format, Documents: docs}
}

// fromText loads one unlabeled document per non-empty line.
func fromText(name string, content []byte) *models.Dataset {
	var docs []models.Document
	for _, line := range strings.Split(string(content), "\n") {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		docs = append(docs, models.Document{
			ID:         fmt.Sprintf("doc-%d", len(docs)+1),
			Text:       text,
			Normalized: textnorm.Normalize(text),
		})
	}
	return &models.Dataset{Name: name, Format: "txt", Documents: docs}
}
