package model

import (
	"errors"
	"testing"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{ID: 1, UserID: 1, Title: "delectus aut autem"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsBadFields(t *testing.T) {
	err := Task{ID: 0, Title: "no id"}.Validate()
	if err == nil || !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got: %v", err)
	}

	err = Task{ID: 3, Title: "   "}.Validate()
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got: %v", err)
	}
}

func TestParseFilterMode(t *testing.T) {
	cases := []struct {
		in   string
		want FilterMode
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{" Completed ", FilterCompleted},
	}
	for _, tc := range cases {
		got, err := ParseFilterMode(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseFilterMode("pending"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got: %v", err)
	}
}

func TestFilterModeNextAndMatches(t *testing.T) {
	if FilterAll.Next() != FilterCompleted || FilterCompleted.Next() != FilterAll {
		t.Fatal("expected Next to flip between all and completed")
	}
	done := Task{ID: 1, Title: "done", Completed: true}
	open := Task{ID: 2, Title: "open"}
	if !FilterAll.Matches(done) || !FilterAll.Matches(open) {
		t.Fatal("expected all filter to match every task")
	}
	if !FilterCompleted.Matches(done) || FilterCompleted.Matches(open) {
		t.Fatal("expected completed filter to match only completed tasks")
	}
}
