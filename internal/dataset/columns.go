package dataset

import "strings"

// Header names that identify the text and label columns.
var (
	textHeaders  = map[string]bool{"text": true, "tweet": true, "content": true, "message": true}
	labelHeaders = map[string]bool{"label": true, "sentiment": true, "class": true, "polarity": true}
)

// detectColumns finds the text column, the label column (-1 when
// absent), and whether the first row is a header. A header is assumed
// only when the first row uses a known column name; otherwise the
// columns are guessed positionally: the longest column on average is
// the text, and a short column with few distinct values is the label.
func detectColumns(records [][]string) (textCol, labelCol int, hasHeader bool) {
	if len(records) == 0 {
		return 0, -1, false
	}

	headerText, headerLabel := -1, -1
	for j, cell := range records[0] {
		name := strings.ToLower(strings.TrimSpace(cell))
		if headerText == -1 && textHeaders[name] {
			headerText = j
		}
		if headerLabel == -1 && labelHeaders[name] {
			headerLabel = j
		}
	}
	hasHeader = headerText >= 0 || headerLabel >= 0

	if headerText >= 0 {
		return headerText, headerLabel, true
	}

	rows := records
	if hasHeader {
		rows = records[1:]
	}

	textCol = longestColumn(rows, headerLabel)
	labelCol = headerLabel
	if labelCol == -1 {
		labelCol = labelColumn(rows, textCol)
	}
	return textCol, labelCol, hasHeader
}

// longestColumn returns the index of the column with the highest
// average cell length, skipping exclude. Ties keep the earlier column.
func longestColumn(rows [][]string, exclude int) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	best, bestAvg := 0, -1.0
	for j := 0; j < width; j++ {
		if j == exclude {
			continue
		}
		sum, count := 0, 0
		for _, row := range rows {
			if j < len(row) {
				sum += len(row[j])
				count++
			}
		}
		if count == 0 {
			continue
		}
		avg := float64(sum) / float64(count)
		if avg > bestAvg {
			best, bestAvg = j, avg
		}
	}
	return best
}

// labelColumn guesses which column holds labels: few distinct values
// relative to the row count, and not the text column. Returns -1 when
// no column qualifies.
func labelColumn(rows [][]string, textCol int) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	limit := len(rows) / 2
	if limit < 2 {
		limit = 2
	}
	if limit > 10 {
		limit = 10
	}

	best, bestDistinct := -1, 0
	for j := 0; j < width; j++ {
		if j == textCol {
			continue
		}
		distinct := make(map[string]struct{})
		seen := false
		for _, row := range rows {
			if j >= len(row) {
				continue
			}
			val := strings.ToLower(strings.TrimSpace(row[j]))
			if val == "" {
				continue
			}
			seen = true
			distinct[val] = struct{}{}
		}
		if !seen || len(distinct) > limit {
			continue
		}
		if best == -1 || len(distinct) < bestDistinct {
			best, bestDistinct = j, len(distinct)
		}
	}
	return best
}
