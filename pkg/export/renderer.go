package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/opsdash/opsdash/pkg/models"
)

// metricColumns is the full column set for metrics exports; a job may
// select a subset via its params.
var metricColumns = []string{"cpu", "memory", "disk", "network"}

func metricValue(snap *models.MetricsSnapshot, column string) string {
	switch column {
	case "cpu":
		return strconv.FormatFloat(snap.CPUPercent, 'f', 2, 64)
	case "memory":
		return strconv.FormatFloat(snap.MemoryPercent, 'f', 2, 64)
	case "disk":
		return strconv.FormatFloat(snap.DiskPercent, 'f', 2, 64)
	case "network":
		return strconv.FormatFloat(snap.NetworkMBs, 'f', 2, 64)
	default:
		return ""
	}
}

func selectedColumns(params *models.ExportParams) []string {
	if len(params.Metrics) == 0 {
		return metricColumns
	}

	cols := make([]string, 0, len(params.Metrics))

	for _, want := range params.Metrics {
		for _, known := range metricColumns {
			if want == known {
				cols = append(cols, known)
				break
			}
		}
	}

	if len(cols) == 0 {
		return metricColumns
	}

	return cols
}

// dataset is the rendered table: a header row plus data rows. Both csv and
// pdf render the same dataset so format choice never changes content.
type dataset struct {
	title   string
	header  []string
	rows    [][]string
	created time.Time
}

func logsDataset(entries []models.LogEntry) *dataset {
	d := &dataset{
		title:   "Log Export",
		header:  []string{"id", "timestamp", "level", "service", "message", "source"},
		created: time.Now(),
	}

	for i := range entries {
		e := &entries[i]
		d.rows = append(d.rows, []string{
			e.ID,
			e.Timestamp.UTC().Format(time.RFC3339),
			string(e.Level),
			e.Service,
			e.Message,
			e.Source,
		})
	}

	return d
}

func metricsDataset(snaps []models.MetricsSnapshot, params *models.ExportParams) *dataset {
	cols := selectedColumns(params)

	d := &dataset{
		title:   "Metrics Export",
		header:  append([]string{"timestamp"}, cols...),
		created: time.Now(),
	}

	for i := range snaps {
		s := &snaps[i]
		row := []string{s.Timestamp.UTC().Format(time.RFC3339)}

		for _, c := range cols {
			row = append(row, metricValue(s, c))
		}

		d.rows = append(d.rows, row)
	}

	return d
}

func renderCSV(d *dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", errRenderArtifact, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(d.header); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", errRenderArtifact, err)
	}

	for _, row := range d.rows {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("%w: %w", errRenderArtifact, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", errRenderArtifact, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", errRenderArtifact, err)
	}

	return nil
}

func renderPDF(d *dataset, path string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(d.title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, d.title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 6, "Generated "+d.created.UTC().Format(time.RFC3339))
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(d.header))

	pdf.SetFont("Helvetica", "B", 9)

	for _, h := range d.header {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "L", false, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)

	for _, row := range d.rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", false, 0, "")
		}

		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %w", errRenderArtifact, err)
	}

	return nil
}

func render(d *dataset, format models.ExportFormat, path string) error {
	switch format {
	case models.FormatCSV:
		return renderCSV(d, path)
	case models.FormatPDF:
		return renderPDF(d, path)
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

func contentType(format models.ExportFormat) string {
	switch format {
	case models.FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}
