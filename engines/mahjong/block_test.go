package mahjong

import (
	"errors"
	"testing"
)

func TestBlock_InvalidComposition(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"pair of different tiles", errOf(NewPair(Man1, Man2))},
		{"triplet of different tiles", errOf(NewTriplet(Pin3, Pin3, Pin4))},
		{"run across suits", errOf(NewRun(Man8, Man9, Pin1))},
		{"run of honors", errOf(NewRun(East, South, West))},
		{"run with gap", errOf(NewRun(So1, So2, So4))},
		{"partial run too wide", errOf(NewPartialRun(Man1, Man4))},
		{"partial run of honors", errOf(NewPartialRun(White, Green))},
		{"partial run across suits", errOf(NewPartialRun(Man9, Pin1))},
	}
	for _, c := range cases {
		if !errors.Is(c.err, ErrInvalidBlockComposition) {
			t.Fatalf("%s: expected ErrInvalidBlockComposition, got %v", c.name, c.err)
		}
	}
}

func errOf(_ Block, err error) error { return err }

func TestBlock_Queries(t *testing.T) {
	run, err := NewRun(Man7, Man8, Man9)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if !run.HasTerminalOrTerminalEdge() || run.HasHonor() {
		t.Fatalf("789m: unexpected terminal/honor flags")
	}
	if run.String() != "789m" {
		t.Fatalf("expected 789m, got %s", run.String())
	}

	mid, _ := NewRun(Pin3, Pin4, Pin5)
	if mid.HasTerminalOrHonor() || mid.HasTerminal() {
		t.Fatalf("345p should not contain terminal")
	}
	if !run.HasTerminal() {
		t.Fatalf("789m should contain a terminal")
	}

	partial, err := NewPartialRun(So3, So1)
	if err != nil {
		t.Fatalf("NewPartialRun: %v", err)
	}
	if partial.Tile != So1 || partial.Tile2 != So3 {
		t.Fatalf("partial run should be ordered, got %v", partial)
	}

	east, _ := NewTriplet(East, East, East)
	if !east.HasWind(WindEast) || east.HasWind(WindSouth) || !east.HasHonor() {
		t.Fatalf("east triplet flags wrong")
	}
	red, _ := NewPair(Red, Red)
	if !red.HasDragon(DragonRed) || red.HasDragon(DragonWhite) {
		t.Fatalf("red pair flags wrong")
	}
}

func TestTileType_Predicates(t *testing.T) {
	if !Man1.IsTerminal() || !So9.IsTerminal() || Pin5.IsTerminal() || East.IsTerminal() {
		t.Fatalf("terminal predicate wrong")
	}
	if Pin5.Number() != 5 || Red.Number() != 0 {
		t.Fatalf("number wrong")
	}
	if Green.String() != "6z" || So1.String() != "1s" {
		t.Fatalf("string wrong: %s %s", Green, So1)
	}
	if !isGreen(So8) || isGreen(So5) {
		t.Fatalf("green predicate wrong")
	}
}

func TestBlock_WindAndDragonClassification(t *testing.T) {
	if !isWindBlock(pairOf(South)) || isWindBlock(pairOf(White)) || isWindBlock(runOf(Man1)) {
		t.Fatalf("unexpected wind classification")
	}
	if !isDragonBlock(tripletOf(Red)) || isDragonBlock(tripletOf(North)) {
		t.Fatalf("unexpected dragon classification")
	}
	if b, _ := NewTriplet(West, West, West); !b.HasWind(WindWest) || b.HasWind(WindEast) {
		t.Fatalf("3z triplet should only match the west wind")
	}
}
