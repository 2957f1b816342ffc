package agent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hex/experiments/metrics"
	"hex/game"
)

var ErrMoveFormat = errors.New("expected row,col")

// HumanAgent reads moves typed as "row,col" and asks again until the move is
// a legal one.
type HumanAgent struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHumanAgent reads lines from scanner. Human players sharing a terminal
// must share the scanner so no buffered input is lost between them.
func NewHumanAgent(name string, scanner *bufio.Scanner, out io.Writer) *HumanAgent {
	return &HumanAgent{
		name:    name,
		scanner: scanner,
		out:     out,
	}
}

func (h *HumanAgent) FindMove(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation) (int, metrics.SearchMetric, error) {
	fmt.Fprintf(h.out, "\n%s's turn (%s, %s). Input using: row,col  e.g. '0,1'    type 'exit' to exit\n", h.name, color, o)
	for {
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return 0, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}
		input := strings.TrimSpace(h.scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" {
			return 0, metrics.SearchMetric{}, ErrExit
		}

		node, err := checkMove(b, input)
		if err != nil {
			fmt.Fprintf(h.out, "\n!!!Invalid move: %v!!!\n", err)
			fmt.Fprintf(h.out, "%s's turn. Input using: row,col\n", h.name)
			continue
		}
		return node, metrics.SearchMetric{}, nil
	}
}

func checkMove(b *game.Board, input string) (int, error) {
	row, col, err := ParseMove(input)
	if err != nil {
		return 0, err
	}
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("cell %d,%d: %w", row, col, game.ErrOutOfRange)
	}
	node := b.Index(row, col)
	if b.At(node) != game.Empty {
		return 0, fmt.Errorf("cell %d,%d: %w", row, col, game.ErrOccupied)
	}
	return node, nil
}

// ParseMove parses "row,col". It does not check the board bounds.
func ParseMove(input string) (row, col int, err error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("parse %q: %w", input, ErrMoveFormat)
	}
	row, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("parse row %q: %w", parts[0], err)
	}
	col, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("parse col %q: %w", parts[1], err)
	}
	return row, col, nil
}
