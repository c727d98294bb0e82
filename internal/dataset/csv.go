package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/HananMiftah/TweetClassifier/internal/models"
)

// fromCSV parses comma, tab, or semicolon separated content. A .tsv
// extension forces tabs; .csv content has its delimiter detected from
// a sample of lines.
func fromCSV(name string, content []byte, ext string) (*models.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	format := "csv"
	if ext == ".tsv" {
		reader.Comma = '\t'
		format = "tsv"
	} else {
		reader.Comma = detectDelimiter(sampleLines(content, 10))
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	return rowsToDataset(name, format, records), nil
}

// detectDelimiter scores comma, tab, and semicolon on sample lines and
// returns the one present in every line the most times. A delimiter
// that misses even one line scores zero; ties keep the earlier
// candidate, so comma wins by default.
func detectDelimiter(lines []string) rune {
	candidates := []rune{',', '\t', ';'}
	best := ','
	bestScore := 0
	for _, cand := range candidates {
		score := -1
		for _, line := range lines {
			n := strings.Count(line, string(cand))
			if score == -1 || n < score {
				score = n
			}
		}
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}
	return best
}

// sampleLines returns up to limit non-empty lines from content.
func sampleLines(content []byte, limit int) []string {
	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}
