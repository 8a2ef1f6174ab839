package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/augurmate/chessproblem/internal/board"
	cperrors "github.com/augurmate/chessproblem/internal/errors"
	"github.com/augurmate/chessproblem/internal/problem"
	"github.com/augurmate/chessproblem/internal/search"
)

// pieceEntry is one line of a problem file's "pieces" list.
type pieceEntry struct {
	Square string `mapstructure:"square"`
	Figure string `mapstructure:"figure"`
}

// fileConfig is the shape of a problem definition file, unmarshalled by
// viper from YAML, JSON or TOML -- whichever extension the caller gives
// us.
type fileConfig struct {
	Mode          string       `mapstructure:"mode"`
	N             int          `mapstructure:"n"`
	SideToMove    string       `mapstructure:"side_to_move"`
	EnPassantFile *int         `mapstructure:"en_passant_file"`
	Castling      []string     `mapstructure:"castling"`
	Workers       int          `mapstructure:"workers"`
	Pieces        []pieceEntry `mapstructure:"pieces"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, cperrors.Wrap(err, "read problem file")
	}
	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, cperrors.Wrap(err, "parse problem file")
	}
	return &fc, nil
}

// buildProblem turns a parsed fileConfig into a validated problem.Problem
// via problem.Builder, wiring in the reporting callbacks main.go supplies.
func buildProblem(fc *fileConfig, cb search.Callbacks) (*problem.Problem, error) {
	mode, err := parseMode(fc.Mode)
	if err != nil {
		return nil, err
	}

	b := problem.NewBuilder().Goal(mode, fc.N)
	if cb.Output != nil {
		b = b.Output(cb.Output)
	}
	if cb.ProgressList != nil {
		b = b.ProgressList(cb.ProgressList)
	}
	if cb.ProgressMove != nil {
		b = b.ProgressMove(cb.ProgressMove)
	}
	if fc.Workers > 0 {
		b = b.Workers(fc.Workers)
	}

	for _, pe := range fc.Pieces {
		sq, ok := board.ParseSquare(pe.Square)
		if !ok || pe.Figure == "" {
			return nil, cperrors.Config(fmt.Errorf("bad piece entry %q/%q", pe.Square, pe.Figure), "pieces")
		}
		fig, ok := board.ParseFigure(pe.Figure[0])
		if !ok {
			return nil, cperrors.Config(fmt.Errorf("unknown figure letter %q", pe.Figure), "pieces")
		}
		b = b.Place(sq, fig)
	}

	if fc.SideToMove != "" {
		side, err := parseColour(fc.SideToMove)
		if err != nil {
			return nil, err
		}
		b = b.SideToMove(side)
	}
	if fc.EnPassantFile != nil {
		b = b.EnPassantFile(*fc.EnPassantFile)
	}

	if len(fc.Castling) > 0 {
		moved := make([]board.Square, 0, len(fc.Castling))
		for _, name := range fc.Castling {
			sq, ok := board.ParseSquare(name)
			if !ok {
				return nil, cperrors.Config(fmt.Errorf("unknown castling square %q", name), "castling")
			}
			moved = append(moved, sq)
		}
		b = b.Castling(moved...)
	}

	return b.Build()
}

func parseMode(s string) (search.Mode, error) {
	switch s {
	case "mate":
		return search.Mate, nil
	case "selfmate":
		return search.SelfMate, nil
	case "helpmate":
		return search.HelpMate, nil
	default:
		return 0, cperrors.Config(fmt.Errorf("unknown mode %q", s), "mode")
	}
}

func parseColour(s string) (board.Colour, error) {
	switch s {
	case "white":
		return board.White, nil
	case "black":
		return board.Black, nil
	default:
		return 0, cperrors.Config(fmt.Errorf("unknown side %q", s), "side_to_move")
	}
}
