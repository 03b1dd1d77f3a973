package report

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the first line of the exported sales report.
var CSVHeader = []string{"Product", "Category", "Units Sold", "Total Revenue"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Service interface {
	SalesReport(ctx context.Context) ([]*SalesRow, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SalesReport(ctx context.Context) ([]*SalesRow, error) {
	return s.repo.SalesByProduct(ctx)
}

func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.repo.SalesByProduct(ctx)
	if err != nil {
		return err
	}
	return WriteCSV(w, rows)
}

// WriteCSV writes rows behind a UTF-8 byte order mark so spreadsheet tools
// detect the encoding.
func WriteCSV(w io.Writer, rows []*SalesRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.ProductName,
			r.CategoryName,
			strconv.FormatInt(r.TotalSold, 10),
			r.TotalRevenue.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
