// Package export renders task listings for offline use.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"task-manager/internal/model"
)

// Lister is the read side of task.Service.
type Lister interface {
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
}

type Exporter struct{ tasks Lister }

func NewExporter(tasks Lister) *Exporter { return &Exporter{tasks: tasks} }

// Formats lists the accepted format names.
var Formats = []string{"json", "csv", "pdf"}

func (e *Exporter) Export(ctx context.Context, format string, filter model.TaskFilter) ([]byte, error) {
	all, err := e.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return Render(format, all)
}

// Render encodes tasks in the named format.
func Render(format string, tasks []model.Task) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(tasks, "", "  ")
	case "csv":
		return renderCSV(tasks)
	case "pdf":
		return renderPDF(tasks)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

var csvHeader = []string{"id", "title", "description", "priority", "completed", "due_date", "created_at", "updated_at"}

func renderCSV(tasks []model.Task) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range tasks {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			t.Description,
			string(t.Priority),
			strconv.FormatBool(t.Completed),
			formatDue(t.DueDate, time.RFC3339),
			t.CreatedAt.UTC().Format(time.RFC3339Nano),
			t.UpdatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func renderPDF(tasks []model.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("%d tasks, generated %s", len(tasks), time.Now().UTC().Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	widths := []float64{12, 78, 20, 22, 28, 30}
	headers := []string{"ID", "Title", "Priority", "Done", "Due", "Updated"}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, t := range tasks {
		done := "no"
		if t.Completed {
			done = "yes"
		}
		cells := []string{
			strconv.FormatInt(t.ID, 10),
			tr(truncate(t.Title, 48)),
			string(t.Priority),
			done,
			formatDue(t.DueDate, time.DateOnly),
			t.UpdatedAt.UTC().Format(time.DateOnly),
		}
		for i, c := range cells {
			align := "L"
			if i == 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDue(d *time.Time, layout string) string {
	if d == nil {
		return ""
	}
	return d.UTC().Format(layout)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
