package mahjong

import "testing"

func mustHand(t *testing.T, s string) *Hand {
	t.Helper()
	h, err := ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", s, err)
	}
	return h
}

func analyzeHand(t *testing.T, s string) (ShantenResult, TableContext) {
	t.Helper()
	h := mustHand(t, s)
	return Analyze(h.Counts()), TableContextFromHand(h)
}

func tiles(types ...TileType) Hand34 {
	return Hand34FromTiles(types)
}
