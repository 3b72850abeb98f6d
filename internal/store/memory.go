// internal/store/memory.go
//
// In-memory registry of running games.
// The rules engine has no internal locking, so this is where concurrent
// callers get their serialization.
//
// Characteristics:
//   - Stores *game.GameState values keyed by a UUID string.
//   - Update runs a callback under the exclusive lock; View under a read lock.
//   - State is lost when the process restarts.
//   - Unknown IDs yield ErrNotFound.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/connectfour/internal/game"
)

// ErrNotFound is returned for IDs that are not registered.
var ErrNotFound = errors.New("game not found")

// Store defines access to registered games.
type Store interface {
	// Create builds a game with the given dimensions and registers it.
	Create(ctx context.Context, rows, cols int) (string, error)

	// Update runs fn with exclusive access to the game.
	Update(ctx context.Context, id string, fn func(*game.GameState) error) error

	// View runs fn with shared access; fn must not mutate the game.
	View(ctx context.Context, id string, fn func(*game.GameState) error) error

	// Delete forgets a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Len reports how many games are registered.
	Len() int
}

type memory struct {
	mu    sync.RWMutex               // guards games and every GameState in it
	games map[string]*game.GameState // keyed by UUID
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.GameState)}
}

func (m *memory) Create(ctx context.Context, rows, cols int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g, err := game.New(rows, cols)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()

	m.mu.Lock()
	m.games[id] = g
	m.mu.Unlock()

	log.Debug().Str("gameId", id).Int("rows", rows).Int("cols", cols).Msg("game created")
	return id, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.GameState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) View(ctx context.Context, id string, fn func(*game.GameState) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.games, id)
	m.mu.Unlock()
	log.Debug().Str("gameId", id).Msg("game deleted")
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
