package cardimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadCSV sütun düzenine göre CSV satırlarını okur.
func ReadCSV(r io.Reader, cfg Config) ([]Draft, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}

	return rowsToDrafts(rows, cfg), nil
}

// ReadXLSX Excel çalışma kitabının bir sayfasını okur.
func ReadXLSX(r io.Reader, cfg Config) ([]Draft, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return rowsToDrafts(rows, cfg), nil
}
