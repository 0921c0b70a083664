// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// Kind selects the screen the platform uses for a game.
type Kind int

const (
	KindQuiz    Kind = iota // multiple-choice questions
	KindBubbles             // timed sequence popping
	KindMemory              // card matching board
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindQuiz:
		return "quiz"
	case KindBubbles:
		return "bubbles"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Game describes one arcade game. Games contain no rendering code; the
// platform builds sessions from Rules and Modes.
type Game interface {
	// ID returns a unique identifier (e.g., "monster-munch").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description is a one-line summary for menus and `list`.
	Description() string

	// Kind selects the platform screen.
	Kind() Kind

	// Modes lists the playable modes; the first is the default.
	// Memory games return nil.
	Modes() []problem.Mode

	// Rules returns the session rules for this game.
	Rules() session.Rules

	// Cheer returns a short message for a correct or incorrect answer.
	Cheer(correct bool, n int) string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	infos[id] = GameInfo{
		ID:          id,
		Title:       g.Title(),
		Description: g.Description(),
		Kind:        g.Kind(),
	}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// SupportsMode reports whether g offers mode.
func SupportsMode(g Game, mode problem.Mode) bool {
	for _, m := range g.Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

// ResolveMode parses name against the game's modes. An empty name picks
// the game's default mode.
func ResolveMode(g Game, name string) (problem.Mode, error) {
	modes := g.Modes()
	if len(modes) == 0 {
		return 0, fmt.Errorf("registry: game %q has no modes", g.ID())
	}
	if name == "" {
		return modes[0], nil
	}
	mode, err := problem.ParseMode(name)
	if err != nil {
		return 0, err
	}
	if !SupportsMode(g, mode) {
		return 0, fmt.Errorf("registry: game %q does not offer mode %q", g.ID(), name)
	}
	return mode, nil
}
