package breakout

import (
	"slices"
	"testing"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		width, margin, brick float64
		want                 int
	}{
		{610, 5, 75, 8},
		{600, 0, 75, 8},
		{601, 0, 75, 9},
		{10, 5, 75, 0},
		{100, 5, 0, 0},
	}

	for _, tc := range tests {
		if got := Columns(tc.width, tc.margin, tc.brick); got != tc.want {
			t.Errorf("Columns(%v, %v, %v) = %d, expected %d", tc.width, tc.margin, tc.brick, got, tc.want)
		}
	}
}

func TestParseBoard(t *testing.T) {
	board, err := ParseBoard("test", []string{
		"3.3",
		".2",
		"111",
	})
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}

	if board.Count() != 6 {
		t.Errorf("Count() = %d, expected 6", board.Count())
	}
	if !slices.Equal(board.Rows[0], []int{3, 0, 3}) {
		t.Errorf("row 0 = %v", board.Rows[0])
	}
	if len(board.Rows[1]) != 2 {
		t.Errorf("short rows should keep their length, got %v", board.Rows[1])
	}
}

func TestParseBoardRejectsUnknown(t *testing.T) {
	for _, row := range []string{"4", "#", "1 1"} {
		if _, err := ParseBoard("bad", []string{row}); err == nil {
			t.Errorf("ParseBoard(%q) should fail", row)
		}
	}
}

func TestBuiltinBoards(t *testing.T) {
	classic, err := BuiltinBoard("classic", 8)
	if err != nil {
		t.Fatalf("BuiltinBoard(classic) failed: %v", err)
	}
	if classic.Count() != 24 || len(classic.Rows) != 3 {
		t.Errorf("classic: %d bricks in %d rows", classic.Count(), len(classic.Rows))
	}
	for r, want := range []int{3, 2, 1} {
		for c, hits := range classic.Rows[r] {
			if hits != want {
				t.Errorf("classic row %d col %d = %d, expected %d", r, c, hits, want)
			}
		}
	}

	for _, name := range BoardNames() {
		b, err := BuiltinBoard(name, 8)
		if err != nil || b.Count() == 0 {
			t.Errorf("BuiltinBoard(%q) = %d bricks, %v", name, b.Count(), err)
		}
	}

	if _, err := BuiltinBoard("missing", 8); err == nil {
		t.Error("unknown layout should fail")
	}
}
