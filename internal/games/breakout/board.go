package breakout

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Board is a brick layout: one slice per row, each cell holding the
// durability of the brick there, or 0 for no brick.
type Board struct {
	Name string
	Rows [][]int
}

// ParseBoard creates a Board from ASCII rows.
// Characters:
//
//	'1'-'3' = brick with that many hits
//	'.'     = empty
func ParseBoard(name string, lines []string) (Board, error) {
	board := Board{Name: name, Rows: make([][]int, len(lines))}
	for r, line := range lines {
		board.Rows[r] = make([]int, len(line))
		for c := range len(line) {
			switch ch := line[c]; {
			case ch == '.':
			case ch >= '1' && ch <= '0'+MaxHits:
				board.Rows[r][c] = int(ch - '0')
			default:
				return Board{}, fmt.Errorf("board %q row %d col %d: unexpected %q", name, r, c, ch)
			}
		}
	}
	return board, nil
}

// Count returns the number of bricks on the board.
func (b Board) Count() int {
	n := 0
	for _, row := range b.Rows {
		for _, hits := range row {
			if hits > 0 {
				n++
			}
		}
	}
	return n
}

// Columns returns how many bricks fit in a row: one every brickWidth
// starting at margin, while the start stays below fieldWidth-margin.
func Columns(fieldWidth, margin, brickWidth float64) int {
	span := fieldWidth - 2*margin
	if span <= 0 || brickWidth <= 0 {
		return 0
	}
	return int(math.Ceil(span / brickWidth))
}

// builtinBoards generate named layouts for a given column count.
var builtinBoards = map[string]func(cols int) []string{
	// Three staggered rows: 3, 2 and 1 hits top to bottom.
	"classic": func(cols int) []string {
		return []string{
			strings.Repeat("3", cols),
			strings.Repeat("2", cols),
			strings.Repeat("1", cols),
		}
	},
	"wall": func(cols int) []string {
		return []string{
			strings.Repeat("3", cols),
			strings.Repeat("3", cols),
			strings.Repeat("2", cols),
			strings.Repeat("1", cols),
		}
	},
	"checker": func(cols int) []string {
		rows := make([]string, 4)
		for r := range rows {
			var sb strings.Builder
			for c := range cols {
				if (r+c)%2 == 0 {
					sb.WriteByte(byte('0' + MaxHits - min(r, MaxHits-1)))
				} else {
					sb.WriteByte('.')
				}
			}
			rows[r] = sb.String()
		}
		return rows
	},
}

// BuiltinBoard returns a named layout sized to cols columns.
func BuiltinBoard(name string, cols int) (Board, error) {
	gen, ok := builtinBoards[name]
	if !ok {
		return Board{}, fmt.Errorf("unknown board layout %q (available: %s)", name, strings.Join(BoardNames(), ", "))
	}
	return ParseBoard(name, gen(cols))
}

// BoardNames returns the built-in layout names, sorted.
func BoardNames() []string {
	names := make([]string, 0, len(builtinBoards))
	for name := range builtinBoards {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
