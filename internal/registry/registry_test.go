package registry

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

type fakeGame struct {
	id    string
	modes []problem.Mode
}

func (g fakeGame) ID() string            { return g.id }
func (g fakeGame) Title() string         { return "Fake " + g.id }
func (g fakeGame) Description() string   { return "a test game" }
func (g fakeGame) Kind() Kind            { return KindQuiz }
func (g fakeGame) Modes() []problem.Mode { return g.modes }
func (g fakeGame) Rules() session.Rules  { return session.Rules{Lives: 1} }
func (g fakeGame) Cheer(correct bool, _ int) string {
	if correct {
		return "yes"
	}
	return "no"
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game {
		return fakeGame{id: "zz-fake", modes: []problem.Mode{problem.Counting, problem.Sharing}}
	})

	if !Exists("zz-fake") {
		t.Fatal("Exists() = false after Register()")
	}

	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Fake zz-fake" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = true
			if info.Kind != KindQuiz || info.Description == "" {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() missing registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })
}

func TestResolveMode(t *testing.T) {
	g := fakeGame{id: "modes", modes: []problem.Mode{problem.Counting, problem.Sharing}}

	tests := []struct {
		name    string
		input   string
		want    problem.Mode
		wantErr bool
	}{
		{"default", "", problem.Counting, false},
		{"explicit", "sharing", problem.Sharing, false},
		{"unsupported", "addition", 0, true},
		{"unknown", "juggling", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMode(g, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ResolveMode() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ResolveMode(fakeGame{id: "none"}, ""); err == nil {
		t.Error("ResolveMode() on a modeless game should fail")
	}
}
