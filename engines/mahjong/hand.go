package mahjong

import (
	"fmt"
	"sort"
	"strings"
)

// Hand34 34 种牌的枚数
type Hand34 [TileKinds]uint8

func (h Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Key 缓存键
func (h Hand34) Key() string {
	var b [TileKinds]byte
	for i := 0; i < TileKinds; i++ {
		b[i] = byte(h[i])
	}
	return string(b[:])
}

// Validate 每种不超过 4 张，总数为 13 或 14
func (h Hand34) Validate() error {
	for i, c := range h {
		if c > 4 {
			return fmt.Errorf("%s has %d copies: %w", TileType(i), c, ErrInvalidHand)
		}
	}
	if n := h.Total(); n != 13 && n != 14 {
		return fmt.Errorf("hand has %d tiles: %w", n, ErrInvalidHand)
	}
	return nil
}

func (h Hand34) String() string {
	return formatTiles(h.Tiles())
}

// Tiles 展开为有序牌列
func (h Hand34) Tiles() []TileType {
	out := make([]TileType, 0, 14)
	for i, c := range h {
		for k := 0; k < int(c); k++ {
			out = append(out, TileType(i))
		}
	}
	return out
}

func Hand34FromTiles(tiles []TileType) Hand34 {
	var h Hand34
	for _, t := range tiles {
		h[int(t)]++
	}
	return h
}

type MeldKind int

const (
	MeldChi MeldKind = iota
	MeldPon
	MeldKan
	MeldConcealedKan
)

type Meld struct {
	Kind  MeldKind
	Tiles []TileType
}

// counted 杠子按 3 张计入，第 4 张不参与向听计算
func (m Meld) counted() []TileType {
	if len(m.Tiles) > 3 {
		return m.Tiles[:3]
	}
	return m.Tiles
}

func (m Meld) IsQuad() bool {
	return m.Kind == MeldKan || m.Kind == MeldConcealedKan
}

// Hand 手牌：门内牌 + 副露 + 摸到的牌
type Hand struct {
	Concealed []TileType
	Melds     []Meld
	Drawn     TileType
	HasDrawn  bool
}

// Counts 汇总为 Hand34，每次调用都返回新值
func (h *Hand) Counts() Hand34 {
	var out Hand34
	for _, t := range h.Concealed {
		out[int(t)]++
	}
	for _, m := range h.Melds {
		for _, t := range m.counted() {
			out[int(t)]++
		}
	}
	if h.HasDrawn {
		out[int(h.Drawn)]++
	}
	return out
}

// IsOpen 有明副露（暗杠不算）
func (h *Hand) IsOpen() bool {
	for _, m := range h.Melds {
		if m.Kind != MeldConcealedKan {
			return true
		}
	}
	return false
}

func (h *Hand) QuadCount() int {
	n := 0
	for _, m := range h.Melds {
		if m.IsQuad() {
			n++
		}
	}
	return n
}

func (h *Hand) String() string {
	parts := []string{formatTiles(h.Concealed)}
	for _, m := range h.Melds {
		if m.Kind == MeldConcealedKan {
			parts = append(parts, "["+formatTiles(m.Tiles)+"]")
			continue
		}
		parts = append(parts, formatTiles(m.Tiles))
	}
	if h.HasDrawn {
		parts = append(parts, h.Drawn.String())
	}
	return strings.Join(parts, " ")
}

// ParseTiles 解析 "123m444p11z" 形式，数牌的 0 视为赤五
func ParseTiles(s string) ([]TileType, error) {
	var out []TileType
	var digits []int
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(digits) == 0 {
				return nil, fmt.Errorf("%q: suit %c without digits: %w", s, r, ErrInvalidNotation)
			}
			for _, n := range digits {
				t, err := tileOf(n, r)
				if err != nil {
					return nil, fmt.Errorf("%q: %w", s, err)
				}
				out = append(out, t)
			}
			digits = digits[:0]
		default:
			return nil, fmt.Errorf("%q: unexpected %q: %w", s, r, ErrInvalidNotation)
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%q: trailing digits without suit: %w", s, ErrInvalidNotation)
	}
	return out, nil
}

func tileOf(n int, suit rune) (TileType, error) {
	if n == 0 {
		if suit == 'z' {
			return 0, fmt.Errorf("honor 0z: %w", ErrInvalidNotation)
		}
		n = 5
	}
	switch suit {
	case 'm':
		return Man1 + TileType(n-1), nil
	case 'p':
		return Pin1 + TileType(n-1), nil
	case 's':
		return So1 + TileType(n-1), nil
	default:
		if n > 7 {
			return 0, fmt.Errorf("honor %dz: %w", n, ErrInvalidNotation)
		}
		return East + TileType(n-1), nil
	}
}

// ParseHand 解析 "门内牌 [副露...] [摸牌]"，例如 "333m456p1789s 333z 1s"
// 只有一张牌的最后一组视为摸牌，方括号内的四张为暗杠，如 "[1111z]"
func ParseHand(s string) (*Hand, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty hand: %w", ErrInvalidNotation)
	}
	concealed, err := ParseTiles(fields[0])
	if err != nil {
		return nil, err
	}
	h := &Hand{Concealed: concealed}
	rest := fields[1:]
	if n := len(rest); n > 0 && !isConcealedGroup(rest[n-1]) {
		last, err := ParseTiles(rest[n-1])
		if err != nil {
			return nil, err
		}
		if len(last) == 1 {
			h.Drawn = last[0]
			h.HasDrawn = true
			rest = rest[:n-1]
		}
	}
	for _, f := range rest {
		m, err := parseMeld(f)
		if err != nil {
			return nil, fmt.Errorf("meld %q: %w", f, err)
		}
		h.Melds = append(h.Melds, m)
	}
	return h, nil
}

func isConcealedGroup(f string) bool {
	return strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]")
}

func parseMeld(f string) (Meld, error) {
	concealed := isConcealedGroup(f)
	if concealed {
		f = f[1 : len(f)-1]
	}
	tiles, err := ParseTiles(f)
	if err != nil {
		return Meld{}, err
	}
	m, err := meldOf(tiles)
	if err != nil {
		return Meld{}, err
	}
	if concealed {
		if m.Kind != MeldKan {
			return Meld{}, ErrInvalidBlockComposition
		}
		m.Kind = MeldConcealedKan
	}
	return m, nil
}

func meldOf(tiles []TileType) (Meld, error) {
	sorted := append([]TileType(nil), tiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	switch len(sorted) {
	case 3:
		if _, err := NewTriplet(sorted[0], sorted[1], sorted[2]); err == nil {
			return Meld{Kind: MeldPon, Tiles: sorted}, nil
		}
		if _, err := NewRun(sorted[0], sorted[1], sorted[2]); err == nil {
			return Meld{Kind: MeldChi, Tiles: sorted}, nil
		}
	case 4:
		if sorted[0] == sorted[3] {
			return Meld{Kind: MeldKan, Tiles: sorted}, nil
		}
	}
	return Meld{}, ErrInvalidBlockComposition
}

func formatTiles(tiles []TileType) string {
	sorted := append([]TileType(nil), tiles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var sb strings.Builder
	for i, t := range sorted {
		sb.WriteByte(t.digit())
		if i == len(sorted)-1 || sorted[i+1].Suit() != t.Suit() {
			sb.WriteString(t.Suit().String())
		}
	}
	return sb.String()
}
