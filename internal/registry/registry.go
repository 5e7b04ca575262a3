// Package registry keeps the games the platform can launch.
// Games register themselves in init() so the CLI and menus can discover them
// without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ZomoXYZ/dreambox-snake/internal/core"
)

// Game is the interface every game implements. Games hold pure logic; the
// platform maps keys to actions, drives the frame clock and renders the screen.
type Game interface {
	// ID returns the identifier used on the command line and in storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new session. It is called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one host frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// Summarizer is implemented by games that can report the last finished round.
type Summarizer interface {
	Summary() core.RunSummary
}

// Resizer is implemented by games that can adapt to a new screen size without
// restarting. The platform calls Reset for games that do not implement it.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo is registry metadata about a game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	factories[id] = f
	infos[id] = info
}

// List returns all registered games sorted by ID.
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

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
