// main.go
//
// Replays a Connect Four game from the command line.
//
// Usage:
//
//	connectfour 3 3 4 4 5 5 6
//
// Each argument is a column; players 0 and 1 alternate starting with 0.
// After every drop the last move is checked for four-in-a-row. The final
// grid is printed to stdout; progress is logged to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/connectfour/internal/config"
	"github.com/robalobadob/connectfour/internal/game"
	"github.com/robalobadob/connectfour/internal/render"
	"github.com/robalobadob/connectfour/internal/store"
	"github.com/robalobadob/connectfour/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if _, err := run(context.Background(), cfg, os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("replay failed")
		os.Exit(1)
	}
}

// outcome is where a replay ended up.
type outcome struct {
	Phase  game.Phase
	Winner token.Token
	Moves  int // drops actually applied
}

// run replays args as alternating drops and renders the final grid to w.
// Moves after the game is over are not applied.
func run(ctx context.Context, cfg config.Config, args []string, w io.Writer) (outcome, error) {
	var res outcome
	st := store.NewMemoryStore()
	id, err := st.Create(ctx, cfg.Rows, cfg.Cols)
	if err != nil {
		return res, fmt.Errorf("create game: %w", err)
	}
	defer func() {
		if err := st.Delete(ctx, id); err != nil {
			log.Debug().Err(err).Str("gameId", id).Msg("delete game")
		}
	}()

	if err := st.Update(ctx, id, func(g *game.GameState) error {
		return g.AssignTokens(cfg.Tokens[0], cfg.Tokens[1])
	}); err != nil {
		return res, fmt.Errorf("assign tokens: %w", err)
	}
	log.Info().Str("gameId", id).Int("rows", cfg.Rows).Int("cols", cfg.Cols).
		Stringer("player0", cfg.Tokens[0]).Stringer("player1", cfg.Tokens[1]).
		Msg("game ready")

	var replayErr error
	for i, arg := range args {
		col, err := strconv.Atoi(arg)
		if err != nil {
			replayErr = fmt.Errorf("move %d: column %q is not a number", i+1, arg)
			break
		}
		player := i % 2

		var won, over bool
		err = st.Update(ctx, id, func(g *game.GameState) error {
			if err := g.DropToken(player, col); err != nil {
				return err
			}
			won = g.IsLastDropWinning()
			over = g.Phase() == game.PhaseOver
			return nil
		})
		if err != nil {
			replayErr = fmt.Errorf("move %d (player %d, column %d): %w", i+1, player, col, err)
			break
		}
		res.Moves++
		log.Debug().Int("move", i+1).Int("player", player).Int("col", col).Msg("dropped")

		if won {
			log.Info().Int("move", i+1).Int("player", player).Msg("connect four")
		} else if over {
			log.Info().Int("move", i+1).Msg("grid full, draw")
		}
		if over {
			if rest := len(args) - i - 1; rest > 0 {
				log.Warn().Int("ignored", rest).Msg("moves after game over ignored")
			}
			break
		}
	}

	err = st.View(ctx, id, func(g *game.GameState) error {
		if err := g.PrintGrid(w, render.Text{}); err != nil {
			return err
		}
		res.Phase, res.Winner = g.Phase(), g.Winner()
		return nil
	})
	log.Info().Stringer("phase", res.Phase).Stringer("winner", res.Winner).
		Int("moves", res.Moves).Int("games", st.Len()).Msg("final state")
	return res, errors.Join(replayErr, err)
}
