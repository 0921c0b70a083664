package countingfarm

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	mode, err := registry.ResolveMode(g, "")
	if err != nil || mode != problem.Counting {
		t.Errorf("default mode = %s, %v; want counting", mode, err)
	}
	if _, err := registry.ResolveMode(g, "sharing"); err != nil {
		t.Errorf("sharing: %v", err)
	}
}

func TestRulesNeverEndTheGame(t *testing.T) {
	r := New().Rules()
	if r.Lives != 0 || r.LevelDown || r.Timed() {
		t.Errorf("rules = %+v, want an endless untimed game", r)
	}
	if r.MaxValueByMode[problem.Sharing] >= r.Distractors.MaxValue {
		t.Error("sharing distractors should stay smaller")
	}
}
