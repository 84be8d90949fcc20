package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"task-manager/internal/model"
)

type fakeLister struct {
	tasks []model.Task
	err   error
	got   model.TaskFilter
}

func (f *fakeLister) List(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	f.got = filter
	return f.tasks, f.err
}

func sampleTasks() []model.Task {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: 2, Title: "Write report, draft", Priority: model.PriorityHigh, DueDate: &due, CreatedAt: created, UpdatedAt: created},
		{ID: 1, Title: "Buy milk", Priority: model.PriorityMedium, Completed: true, CreatedAt: created, UpdatedAt: created},
	}
}

func TestExport_JSON(t *testing.T) {
	f := &fakeLister{tasks: sampleTasks()}
	done := true

	out, err := NewExporter(f).Export(context.Background(), "JSON", model.TaskFilter{Completed: &done})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if f.got.Completed == nil || !*f.got.Completed {
		t.Fatalf("filter not passed through: %+v", f.got)
	}

	var decoded []model.Task
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 || decoded[0].ID != 2 {
		t.Fatalf("decoded=%+v", decoded)
	}
}

func TestRender_CSV(t *testing.T) {
	out, err := Render("csv", sampleTasks())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0][0] != "id" || rows[0][5] != "due_date" {
		t.Fatalf("header=%v", rows[0])
	}
	if rows[1][1] != "Write report, draft" {
		t.Fatalf("title=%q", rows[1][1])
	}
	if rows[1][5] != "2026-03-10T00:00:00Z" {
		t.Fatalf("due=%q", rows[1][5])
	}
	if rows[2][4] != "true" || rows[2][5] != "" {
		t.Fatalf("row=%v", rows[2])
	}
}

func TestRender_PDF(t *testing.T) {
	out, err := Render("pdf", sampleTasks())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("not a pdf: %q", out[:min(len(out), 16)])
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render("xml", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExport_ListError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewExporter(&fakeLister{err: boom}).Export(context.Background(), "json", model.TaskFilter{})
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("got %q", got)
	}
}
