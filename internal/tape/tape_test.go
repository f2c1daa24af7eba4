package tape

import (
	"math/rand"
	"testing"
)

func TestNew_HeadStartsOnFirstSymbol(t *testing.T) {
	tp := New("abc")
	if got := tp.Head(); got != 0 {
		t.Fatalf("head = %d, want 0", got)
	}
	if got := tp.Read(); got != Symbol('a') {
		t.Fatalf("Read() = %q, want 'a'", rune(got))
	}
	if got := tp.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestNew_EmptyStringGetsOneBlankCell(t *testing.T) {
	tp := New("")
	if got := tp.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}
	if got := tp.Read(); got != Blank {
		t.Errorf("Read() = %v, want Blank", got)
	}
}

func TestNewBlank(t *testing.T) {
	tp := NewBlank(4)
	if got := tp.Len(); got != 4 {
		t.Fatalf("Len() = %d, want 4", got)
	}
	for i := 0; i < 4; i++ {
		if got := tp.Read(); got != Blank {
			t.Errorf("cell %d = %v, want Blank", i, got)
		}
		tp.MoveRight()
	}

	if got := NewBlank(0).Len(); got != 1 {
		t.Errorf("NewBlank(0).Len() = %d, want 1", got)
	}
}

func TestMoveLeft_GrowsByOneBlank(t *testing.T) {
	tp := New("x")
	tp.MoveLeft()
	if got := tp.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := tp.Read(); got != Blank {
		t.Errorf("Read() = %v, want Blank", got)
	}
	// The original content is still one cell to the right.
	tp.MoveRight()
	if got := tp.Read(); got != Symbol('x') {
		t.Errorf("Read() = %q, want 'x'", rune(got))
	}
}

func TestMoveRight_GrowsByOneBlank(t *testing.T) {
	tp := New("x")
	tp.MoveRight()
	if got := tp.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if got := tp.Read(); got != Blank {
		t.Errorf("Read() = %v, want Blank", got)
	}
}

func TestMove_InteriorMovesDoNotGrow(t *testing.T) {
	tp := New("abc")
	tp.MoveRight()
	tp.MoveLeft()
	if got := tp.Len(); got != 3 {
		t.Errorf("Len() = %d after interior moves, want 3", got)
	}
}

// TestMoves_HeadAlwaysInBounds walks the head randomly and checks the
// invariants: the head stays inside the allocated cells and growth is at
// most one cell per move.
func TestMoves_HeadAlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tp := New("seed")
	startLen := tp.Len()

	const moves = 500
	for i := 0; i < moves; i++ {
		if rng.Intn(2) == 0 {
			tp.MoveLeft()
		} else {
			tp.MoveRight()
		}
		if tp.Head() < 0 || tp.Head() >= tp.Len() {
			t.Fatalf("move %d: head %d outside [0, %d)", i, tp.Head(), tp.Len())
		}
		// Read/Write must be valid at every position.
		tp.Write(tp.Read())
	}

	if tp.Len() > startLen+moves {
		t.Errorf("Len() = %d, want at most %d", tp.Len(), startLen+moves)
	}
}

func TestMoves_GrowthTracksBoundaryCrossings(t *testing.T) {
	tp := New("ab")

	// Walk right off the end twice, then left off the start three times.
	tp.MoveRight() // interior
	tp.MoveRight() // grows
	tp.MoveRight() // grows
	for i := 0; i < 3; i++ {
		tp.MoveLeft() // interior x3, back to cell 0
	}
	tp.MoveLeft() // grows
	tp.MoveLeft() // grows
	tp.MoveLeft() // grows

	if got := tp.Len(); got != 2+2+3 {
		t.Errorf("Len() = %d, want %d (one cell per boundary crossing)", got, 2+2+3)
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	tp := New("abc")
	tp.MoveRight()
	tp.Write(Symbol('z'))
	if got := tp.Read(); got != Symbol('z') {
		t.Fatalf("Read() = %q after Write('z'), want 'z'", rune(got))
	}
	if got := tp.String(); got != "azc" {
		t.Errorf("String() = %q, want %q", got, "azc")
	}
}

func TestString_OmitsBlanks(t *testing.T) {
	tp := New("ab")
	tp.MoveLeft() // blank before 'a'
	tp.MoveRight()
	tp.MoveRight()
	tp.MoveRight() // blank after 'b'
	tp.Write(Symbol('c'))
	tp.MoveRight() // trailing blank
	tp.MoveLeft()
	tp.MoveLeft()
	tp.Write(Blank) // erase 'b'

	// Cells: [Blank a Blank c Blank] -> "ac"
	if got := tp.String(); got != "ac" {
		t.Errorf("String() = %q, want %q", got, "ac")
	}
}

func TestCells_ReturnsCopy(t *testing.T) {
	tp := New("ab")
	cells := tp.Cells()
	cells[0] = Symbol('z')
	if got := tp.Read(); got != Symbol('a') {
		t.Errorf("mutating Cells() result changed the tape: Read() = %q", rune(got))
	}
}
