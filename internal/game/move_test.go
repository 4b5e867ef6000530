package game

import "testing"

func TestNewMoveBounds(t *testing.T) {
	tests := []struct {
		col int
		ok  bool
	}{
		{-1, false},
		{0, true},
		{3, true},
		{Cols - 1, true},
		{Cols, false},
		{Cols + 5, false},
	}

	for _, tt := range tests {
		m, ok := NewMove(Black, tt.col)
		if ok != tt.ok {
			t.Errorf("NewMove(Black, %d) ok = %v, want %v", tt.col, ok, tt.ok)
		}
		if ok && m.Col() != tt.col {
			t.Errorf("NewMove(Black, %d).Col() = %d", tt.col, m.Col())
		}
	}
}

func TestNewMoveIgnoresFullness(t *testing.T) {
	// Column fullness is a board concern: construction succeeds even
	// when the target column has no room left.
	b := NewBoard()
	fillColumn(t, b, 2)

	if _, ok := NewMove(White, 2); !ok {
		t.Error("NewMove should succeed for an in-range column on a full column")
	}
}

func TestMoveString(t *testing.T) {
	m, _ := NewMove(White, 0)
	if got := m.String(); got != "1" {
		t.Errorf("Move in column 0 should display as %q, got %q", "1", got)
	}

	m, _ = NewMove(Black, Cols-1)
	if got := m.String(); got != "7" {
		t.Errorf("Move in column %d should display as %q, got %q", Cols-1, "7", got)
	}
}

func TestOwnerOpponentInvolutive(t *testing.T) {
	for _, o := range []Owner{Black, White} {
		if o.Opponent() == o {
			t.Errorf("%v should not be its own opponent", o)
		}
		if o.Opponent().Opponent() != o {
			t.Errorf("Opponent of opponent of %v should be %v", o, o)
		}
	}
}

func TestCellOwner(t *testing.T) {
	if _, ok := Empty.Owner(); ok {
		t.Error("Empty cell should have no owner")
	}
	for _, o := range []Owner{Black, White} {
		got, ok := OccupiedBy(o).Owner()
		if !ok || got != o {
			t.Errorf("OccupiedBy(%v).Owner() = %v, %v", o, got, ok)
		}
	}
}
