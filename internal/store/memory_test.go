package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/robalobadob/connectfour/internal/game"
	"github.com/robalobadob/connectfour/internal/token"
)

func TestCreateAndView(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, err := s.Create(ctx, 7, 8)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("id %q is not a uuid: %v", id, err)
	}
	err = s.View(ctx, id, func(g *game.GameState) error {
		if g.Rows() != 7 || g.Cols() != 8 {
			t.Fatalf("dimensions = %dx%d", g.Rows(), g.Cols())
		}
		if g.Phase() != game.PhaseNew {
			t.Fatalf("phase = %v", g.Phase())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d", s.Len())
	}
}

func TestCreateRejectsBadDimensions(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Create(context.Background(), 5, 7); !errors.Is(err, game.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestUnknownID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	noop := func(*game.GameState) error { return nil }
	if err := s.Update(ctx, "missing", noop); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update err = %v", err)
	}
	if err := s.View(ctx, "missing", noop); !errors.Is(err, ErrNotFound) {
		t.Fatalf("View err = %v", err)
	}
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Fatalf("Delete err = %v", err)
	}
}

func TestUpdatePropagatesRuleErrors(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, _ := s.Create(ctx, 6, 7)
	err := s.Update(ctx, id, func(g *game.GameState) error {
		return g.DropToken(0, 0)
	})
	if !errors.Is(err, game.ErrInvalidPhase) {
		t.Fatalf("err = %v, want ErrInvalidPhase", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewMemoryStore()
	id, _ := s.Create(context.Background(), 6, 7)
	cancel()
	called := false
	err := s.Update(ctx, id, func(*game.GameState) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) || called {
		t.Fatalf("err = %v, called = %v", err, called)
	}
	if _, err := s.Create(ctx, 6, 7); !errors.Is(err, context.Canceled) {
		t.Fatalf("Create err = %v", err)
	}
}

func TestConcurrentDropsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, _ := s.Create(ctx, 9, 9)
	if err := s.Update(ctx, id, func(g *game.GameState) error {
		return g.AssignTokens(token.Red, token.Yellow)
	}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for col := 0; col < 9; col++ {
		for i := 0; i < 9; i++ {
			wg.Add(1)
			go func(player, col int) {
				defer wg.Done()
				_ = s.Update(ctx, id, func(g *game.GameState) error {
					return g.DropToken(player, col)
				})
			}(i%2, col)
		}
	}
	wg.Wait()

	err := s.View(ctx, id, func(g *game.GameState) error {
		n, err := g.NumDropped()
		if err != nil {
			return err
		}
		if n != 81 {
			t.Fatalf("NumDropped = %d, want 81", n)
		}
		for _, c := range g.Snapshot().Cells {
			if c == token.None {
				t.Fatal("grid has an empty cell")
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
}
