package httpapi

import (
	"encoding/json"
	"testing"
)

func TestTaskPayload_PresenceAndNull(t *testing.T) {
	var p taskPayload
	if err := json.Unmarshal([]byte(`{"title":"x","due_date":null}`), &p); err != nil {
		t.Fatal(err)
	}
	in := p.input()

	if !in.Title.Present() || in.Title.Value != "x" {
		t.Fatalf("title=%+v", in.Title)
	}
	if !in.DueDate.Set || !in.DueDate.Null {
		t.Fatalf("due_date should be present and null: %+v", in.DueDate)
	}
	if in.Description.Set || in.Priority.Set || in.Completed.Set {
		t.Fatalf("absent fields reported as set: %+v", in)
	}
}

func TestTaskPayload_CompletedTruthiness(t *testing.T) {
	cases := map[string]bool{
		`true`:    true,
		`false`:   false,
		`null`:    false,
		`0`:       false,
		`2`:       true,
		`""`:      false,
		`"no"`:    true,
		`[]`:      false,
		`[0]`:     true,
		`{}`:      false,
		`{"a":1}`: true,
	}
	for raw, want := range cases {
		var p taskPayload
		if err := json.Unmarshal([]byte(`{"completed":`+raw+`}`), &p); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		in := p.input()
		if !in.Completed.Set {
			t.Fatalf("%s: completed not set", raw)
		}
		if in.Completed.Value != want {
			t.Fatalf("%s: completed=%v want %v", raw, in.Completed.Value, want)
		}
	}
}

func TestTaskPayload_NonStringPriority(t *testing.T) {
	var p taskPayload
	if err := json.Unmarshal([]byte(`{"priority":5}`), &p); err != nil {
		t.Fatal(err)
	}
	in := p.input()
	if !in.Priority.Set || in.Priority.Value != "" {
		t.Fatalf("priority=%+v", in.Priority)
	}
}
