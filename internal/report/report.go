package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/library-service/internal/domain/models"
)

const (
	PeriodLastWeek  = "last_week"
	PeriodLastMonth = "last_month"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"

	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const dateLayout = "2006-01-02"

// headers is the fixed column order of every exported report.
var headers = []string{"BorrowID", "BookTitle", "Borrower", "BorrowDate", "DueDate"}

// DateRange resolves a period selector into [start, now]. Unknown or
// empty selectors mean all time since the unix epoch. last_month uses
// calendar-month subtraction with native rollover (Mar 31 minus one
// month normalizes past the end of February).
func DateRange(period string, now time.Time) (time.Time, time.Time) {
	switch period {
	case PeriodLastMonth:
		return now.AddDate(0, -1, 0), now
	case PeriodLastWeek:
		return now.AddDate(0, 0, -7), now
	default:
		return time.Unix(0, 0), now
	}
}

// Row is one flattened report line.
type Row struct {
	BorrowID   string
	BookTitle  string
	Borrower   string
	BorrowDate string
	DueDate    string
}

// Rows projects joined borrow records into flat report lines, keeping
// the input order.
func Rows(borrows []models.BorrowDetails) []Row {
	rows := make([]Row, 0, len(borrows))
	for _, b := range borrows {
		rows = append(rows, Row{
			BorrowID:   b.BID,
			BookTitle:  b.Book.Title,
			Borrower:   b.Borrower.Name,
			BorrowDate: b.BorrowDate.Format(dateLayout),
			DueDate:    b.DueDate.Format(dateLayout),
		})
	}
	return rows
}

// BuildCSV encodes rows as CSV. An empty input still produces the
// header line so the download is never a zero-byte file.
func BuildCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write([]string{r.BorrowID, r.BookTitle, r.Borrower, r.BorrowDate, r.DueDate}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildXLSX encodes rows as a single-sheet workbook. Same empty-input
// rule as BuildCSV: header row only.
func BuildXLSX(rows []Row, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &cells); err != nil {
		return nil, err
	}
	for i, r := range rows {
		line := []interface{}{r.BorrowID, r.BookTitle, r.Borrower, r.BorrowDate, r.DueDate}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow(sheetName, cell, &line); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
