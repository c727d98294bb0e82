package dataset

import (
	"bytes"
	"fmt"

	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/xuri/excelize/v2"
)

// fromXLSX reads the first sheet of a workbook and applies the same
// column detection as csv content.
func fromXLSX(name string, content []byte) (*models.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", name)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}

	return rowsToDataset(name, "xlsx", rows), nil
}
