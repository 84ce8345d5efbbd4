package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// WorkbookAppender appends rows to a sheet of a local xlsx file, creating the file
// and the sheet on first use. Appends are serialized.
type WorkbookAppender struct {
	path  string
	sheet string
	mu    sync.Mutex
}

// NewWorkbookAppender returns an appender writing to path/sheet.
func NewWorkbookAppender(path, sheet string) *WorkbookAppender {
	if sheet == "" {
		sheet = "Respuestas"
	}
	return &WorkbookAppender{path: path, sheet: sheet}
}

func (w *WorkbookAppender) open() (*excelize.File, error) {
	if _, err := os.Stat(w.path); errors.Is(err, os.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), w.sheet); err != nil {
			_ = f.Close()
			return nil, err
		}
		return f, nil
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex(w.sheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if idx == -1 {
		if _, err := f.NewSheet(w.sheet); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (w *WorkbookAppender) Append(ctx context.Context, row []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := w.open()
	if err != nil {
		return "", fmt.Errorf("sheets: open workbook %s: %w", w.path, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(w.sheet)
	if err != nil {
		return "", fmt.Errorf("sheets: read %s: %w", w.sheet, err)
	}
	next := len(rows) + 1

	start, err := excelize.CoordinatesToCellName(1, next)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(max(len(row), 1), next)
	if err != nil {
		return "", err
	}
	if err := f.SetSheetRow(w.sheet, start, &row); err != nil {
		return "", fmt.Errorf("sheets: write row: %w", err)
	}
	if err := f.SaveAs(w.path); err != nil {
		return "", fmt.Errorf("sheets: save workbook %s: %w", w.path, err)
	}
	return fmt.Sprintf("%s!%s:%s", w.sheet, start, end), nil
}
