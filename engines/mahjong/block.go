package mahjong

import (
	"fmt"
	"strings"
)

type BlockKind int

const (
	BlockPair       BlockKind = iota // 对子
	BlockTriplet                     // 刻子
	BlockRun                         // 顺子
	BlockPartialRun                  // 搭子：两面/边张/嵌张
)

func (k BlockKind) String() string {
	switch k {
	case BlockPair:
		return "pair"
	case BlockTriplet:
		return "triplet"
	case BlockRun:
		return "run"
	case BlockPartialRun:
		return "partial"
	default:
		return "unknown"
	}
}

// Block 面子、雀头、搭子。Tile 为最小的那张，Tile2 只对搭子有意义
type Block struct {
	Kind  BlockKind
	Tile  TileType
	Tile2 TileType
}

func NewPair(a, b TileType) (Block, error) {
	if !a.Valid() || a != b {
		return Block{}, fmt.Errorf("pair %s%s: %w", a, b, ErrInvalidBlockComposition)
	}
	return pairOf(a), nil
}

func NewTriplet(a, b, c TileType) (Block, error) {
	if !a.Valid() || a != b || b != c {
		return Block{}, fmt.Errorf("triplet %s%s%s: %w", a, b, c, ErrInvalidBlockComposition)
	}
	return tripletOf(a), nil
}

// NewRun 三张需同花色连续，不允许字牌
func NewRun(a, b, c TileType) (Block, error) {
	if !a.IsNumbered() || !b.IsNumbered() || !c.IsNumbered() ||
		a.Suit() != b.Suit() || b.Suit() != c.Suit() ||
		b != a+1 || c != b+1 {
		return Block{}, fmt.Errorf("run %s%s%s: %w", a, b, c, ErrInvalidBlockComposition)
	}
	return runOf(a), nil
}

// NewPartialRun 两张同花色数牌，间隔 1（两面/边张）或 2（嵌张）
func NewPartialRun(a, b TileType) (Block, error) {
	if a > b {
		a, b = b, a
	}
	if !a.IsNumbered() || !b.IsNumbered() || a.Suit() != b.Suit() {
		return Block{}, fmt.Errorf("partial run %s%s: %w", a, b, ErrInvalidBlockComposition)
	}
	if gap := b - a; gap != 1 && gap != 2 {
		return Block{}, fmt.Errorf("partial run %s%s: %w", a, b, ErrInvalidBlockComposition)
	}
	return partialOf(a, b), nil
}

// 以下不做校验，搜索时由计数保证组合合法
func pairOf(t TileType) Block { return Block{Kind: BlockPair, Tile: t, Tile2: t} }

func tripletOf(t TileType) Block { return Block{Kind: BlockTriplet, Tile: t, Tile2: t} }

func runOf(low TileType) Block { return Block{Kind: BlockRun, Tile: low, Tile2: low} }

func partialOf(a, b TileType) Block { return Block{Kind: BlockPartialRun, Tile: a, Tile2: b} }

func (b Block) Tiles() []TileType {
	switch b.Kind {
	case BlockPair:
		return []TileType{b.Tile, b.Tile}
	case BlockTriplet:
		return []TileType{b.Tile, b.Tile, b.Tile}
	case BlockRun:
		return []TileType{b.Tile, b.Tile + 1, b.Tile + 2}
	case BlockPartialRun:
		return []TileType{b.Tile, b.Tile2}
	default:
		return nil
	}
}

func (b Block) Size() int {
	switch b.Kind {
	case BlockTriplet, BlockRun:
		return 3
	default:
		return 2
	}
}

// IsMeld 刻子或顺子
func (b Block) IsMeld() bool {
	return b.Kind == BlockTriplet || b.Kind == BlockRun
}

// HasTerminalOrTerminalEdge 含有 1 或 9，顺子只看两端
func (b Block) HasTerminalOrTerminalEdge() bool {
	switch b.Kind {
	case BlockRun:
		return b.Tile.IsTerminal() || (b.Tile + 2).IsTerminal()
	case BlockPartialRun:
		return b.Tile.IsTerminal() || b.Tile2.IsTerminal()
	default:
		return b.Tile.IsTerminal()
	}
}

// HasTerminal 任意一张是 1 或 9
func (b Block) HasTerminal() bool {
	for _, t := range b.Tiles() {
		if t.IsTerminal() {
			return true
		}
	}
	return false
}

func (b Block) HasHonor() bool {
	// 顺子和搭子的构造保证了不含字牌
	return (b.Kind == BlockPair || b.Kind == BlockTriplet) && b.Tile.IsHonor()
}

// HasTerminalOrHonor 含幺九牌
func (b Block) HasTerminalOrHonor() bool {
	return b.HasTerminalOrTerminalEdge() || b.HasHonor()
}

func (b Block) HasWind(w Wind) bool {
	return (b.Kind == BlockPair || b.Kind == BlockTriplet) && b.Tile == w.Tile()
}

func (b Block) HasDragon(d Dragon) bool {
	return (b.Kind == BlockPair || b.Kind == BlockTriplet) && b.Tile == d.Tile()
}

func (b Block) Suit() Suit {
	return b.Tile.Suit()
}

func (b Block) String() string {
	var sb strings.Builder
	for _, t := range b.Tiles() {
		sb.WriteByte(t.digit())
	}
	sb.WriteString(b.Suit().String())
	return sb.String()
}
