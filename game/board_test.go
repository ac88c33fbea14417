package game

import "testing"

func TestNewBoard(t *testing.T) {
	b := New()

	tests := []struct {
		name string
		sq   Square
		want Piece
	}{
		{"white rook a1", Sq(0, 0), Piece{Unit: Rook, Player: White}},
		{"white knight b1", Sq(1, 0), Piece{Unit: Knight, Player: White}},
		{"white bishop c1", Sq(2, 0), Piece{Unit: Bishop, Player: White}},
		{"white queen d1", Sq(3, 0), Piece{Unit: Queen, Player: White}},
		{"white king e1", Sq(4, 0), Piece{Unit: King, Player: White}},
		{"white pawn a2", Sq(0, 1), Piece{Unit: Pawn, Player: White}},
		{"white pawn h2", Sq(7, 1), Piece{Unit: Pawn, Player: White}},
		{"black pawn a7", Sq(0, 6), Piece{Unit: Pawn, Player: Black}},
		{"black king e8", Sq(4, 7), Piece{Unit: King, Player: Black}},
		{"black rook h8", Sq(7, 7), Piece{Unit: Rook, Player: Black}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.At(tt.sq)
			if !ok {
				t.Fatalf("At(%v) empty; want %v", tt.sq, tt.want)
			}
			if got != tt.want {
				t.Errorf("At(%v) = %v %v; want %v %v",
					tt.sq, got.Player, got.Unit, tt.want.Player, tt.want.Unit)
			}
			if got.Moved != 0 {
				t.Errorf("At(%v).Moved = %d; want 0", tt.sq, got.Moved)
			}
		})
	}

	t.Run("middle ranks empty", func(t *testing.T) {
		for file := 0; file < 8; file++ {
			for rank := 2; rank < 6; rank++ {
				if _, ok := b.At(Sq(file, rank)); ok {
					t.Errorf("At(%v) occupied; want empty", Sq(file, rank))
				}
			}
		}
	})

	t.Run("one king per player", func(t *testing.T) {
		for _, player := range []Player{White, Black} {
			if _, ok := b.King(player); !ok {
				t.Errorf("King(%v) missing", player)
			}
		}
	})
}

func TestBoardAtOffBoard(t *testing.T) {
	b := New()
	for _, sq := range []Square{Sq(-1, 0), Sq(0, -1), Sq(8, 0), Sq(0, 8)} {
		if _, ok := b.At(sq); ok {
			t.Errorf("At(%v) = occupied; want empty for off-board square", sq)
		}
	}
}

func TestBoardMove(t *testing.T) {
	t.Run("transfers ownership to destination", func(t *testing.T) {
		b := New()
		b.Move(Sq(4, 1), Sq(4, 3))
		if _, ok := b.At(Sq(4, 1)); ok {
			t.Error("source square still occupied after move")
		}
		got, ok := b.At(Sq(4, 3))
		if !ok {
			t.Fatal("destination empty after move")
		}
		if got.Unit != Pawn || got.Player != White {
			t.Errorf("destination = %v %v; want white pawn", got.Player, got.Unit)
		}
		if got.Moved != 1 {
			t.Errorf("Moved = %d; want 1", got.Moved)
		}
	})

	t.Run("capture destroys occupant", func(t *testing.T) {
		var b Board
		b.Set(Sq(3, 3), Piece{Unit: Rook, Player: White})
		b.Set(Sq(3, 6), Piece{Unit: Pawn, Player: Black})
		b.Move(Sq(3, 3), Sq(3, 6))
		got, ok := b.At(Sq(3, 6))
		if !ok || got.Unit != Rook || got.Player != White {
			t.Errorf("destination = %v, %v; want captured by white rook", got, ok)
		}
	})

	t.Run("empty source is a no-op", func(t *testing.T) {
		b := New()
		before := b
		b.Move(Sq(4, 4), Sq(4, 5))
		if b != before {
			t.Error("board changed after moving from an empty square")
		}
	})

	t.Run("off-board is a no-op", func(t *testing.T) {
		b := New()
		before := b
		b.Move(Sq(4, 1), Sq(4, 8))
		b.Move(Sq(-1, 0), Sq(0, 0))
		if b != before {
			t.Error("board changed after off-board move")
		}
	})
}

func TestBoardCopiesAreIndependent(t *testing.T) {
	a := New()
	b := a
	b.Move(Sq(4, 1), Sq(4, 3))
	if _, ok := a.At(Sq(4, 3)); ok {
		t.Error("mutating a copied board leaked into the original")
	}
}

func TestScenario(t *testing.T) {
	t.Run("castle", func(t *testing.T) {
		b, ok := Scenario("castle")
		if !ok {
			t.Fatal("castle scenario missing")
		}
		if p, ok := b.At(Sq(0, 0)); !ok || p.Unit != Rook || p.Player != White {
			t.Errorf("a1 = %v, %v; want white rook", p, ok)
		}
		if p, ok := b.At(Sq(3, 0)); !ok || p.Unit != King || p.Player != White {
			t.Errorf("d1 = %v, %v; want white king", p, ok)
		}
	})

	t.Run("endgame", func(t *testing.T) {
		b, ok := Scenario("endgame")
		if !ok {
			t.Fatal("endgame scenario missing")
		}
		for _, player := range []Player{White, Black} {
			if _, ok := b.King(player); !ok {
				t.Errorf("King(%v) missing", player)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, ok := Scenario("nope"); ok {
			t.Error("unknown scenario reported ok")
		}
	})
}
