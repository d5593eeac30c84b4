package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewGoalParsesCommaTasks(t *testing.T) {
	now := time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)
	g, err := NewGoal("  Morning routine ", "stretch, drink water , , journal", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "Morning routine" {
		t.Fatalf("unexpected name: %q", g.Name)
	}
	want := []string{"stretch", "drink water", "journal"}
	if len(g.TodayTasks) != len(want) {
		t.Fatalf("unexpected tasks: %v", g.TodayTasks)
	}
	for i, task := range want {
		if g.TodayTasks[i] != task {
			t.Fatalf("unexpected tasks: %v", g.TodayTasks)
		}
	}
	if g.ID != "g_1772874000000" {
		t.Fatalf("unexpected id: %q", g.ID)
	}
}

func TestNewGoalRejectsEmptyInput(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name  string
		goal  string
		tasks string
	}{
		{"empty name", "", "a, b"},
		{"blank name", "   ", "a"},
		{"empty tasks", "Read", ""},
		{"only separators", "Read", " , ,, "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGoal(tc.goal, tc.tasks, now); !errors.Is(err, ErrInvalidGoal) {
				t.Fatalf("expected ErrInvalidGoal, got: %v", err)
			}
		})
	}
}

func TestGenerateGoalTemplates(t *testing.T) {
	now := time.Now()
	g, err := GenerateGoal("leg day workout", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "Workout: leg day workout" {
		t.Fatalf("unexpected name: %q", g.Name)
	}
	if len(g.TodayTasks) != 4 || g.TodayTasks[3] != "Hydrate" {
		t.Fatalf("unexpected tasks: %v", g.TodayTasks)
	}

	g, err = GenerateGoal("learn go generics", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "Study: learn go generics" {
		t.Fatalf("unexpected name: %q", g.Name)
	}

	g, err = GenerateGoal("declutter desk", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "Generated Goal: declutter desk" {
		t.Fatalf("unexpected fallback name: %q", g.Name)
	}

	if _, err := GenerateGoal("  ", now); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal for blank prompt, got: %v", err)
	}
}
