package mahjong

// Decomposition 手牌拆解结果
// 一般型：Melds 最多 4 个面子，Pairs 为 0-1 个雀头，Partials 为搭子/多余对子，Singles 为孤张
// 七对子：Pairs 为全部对子；国士无双：只有 Singles
type Decomposition struct {
	Melds    []Block
	Pairs    []Block
	Partials []Block
	Singles  []TileType
}

func (d Decomposition) Triplets() []Block {
	return d.filterMelds(BlockTriplet)
}

func (d Decomposition) Runs() []Block {
	return d.filterMelds(BlockRun)
}

func (d Decomposition) filterMelds(kind BlockKind) []Block {
	var out []Block
	for _, b := range d.Melds {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Head 一般型的雀头
func (d Decomposition) Head() (Block, bool) {
	if len(d.Pairs) != 1 {
		return Block{}, false
	}
	return d.Pairs[0], true
}

// Blocks 面子与对子，役种判定只看这些
func (d Decomposition) Blocks() []Block {
	out := make([]Block, 0, len(d.Melds)+len(d.Pairs))
	out = append(out, d.Melds...)
	out = append(out, d.Pairs...)
	return out
}

// TileCount 拆解覆盖的总张数，应与手牌张数一致
func (d Decomposition) TileCount() int {
	n := len(d.Singles)
	for _, b := range d.Melds {
		n += b.Size()
	}
	for _, b := range d.Pairs {
		n += b.Size()
	}
	for _, b := range d.Partials {
		n += b.Size()
	}
	return n
}

func (d Decomposition) Clone() Decomposition {
	return Decomposition{
		Melds:    append([]Block(nil), d.Melds...),
		Pairs:    append([]Block(nil), d.Pairs...),
		Partials: append([]Block(nil), d.Partials...),
		Singles:  append([]TileType(nil), d.Singles...),
	}
}
