package mahjong

func hasTripletOf(ctx *YakuContext, t TileType) bool {
	for _, b := range ctx.triples {
		if b.Tile == t {
			return true
		}
	}
	return false
}

func hasWindTriplet(ctx *YakuContext, w Wind) bool {
	for _, b := range ctx.triples {
		if b.HasWind(w) {
			return true
		}
	}
	return false
}

func hasDragonTriplet(ctx *YakuContext, d Dragon) bool {
	for _, b := range ctx.triples {
		if b.HasDragon(d) {
			return true
		}
	}
	return false
}

var (
	allWinds   = [4]Wind{WindEast, WindSouth, WindWest, WindNorth}
	allDragons = [3]Dragon{DragonWhite, DragonGreen, DragonRed}
)

// isWindBlock 风牌的刻子或对子
func isWindBlock(b Block) bool {
	for _, w := range allWinds {
		if b.HasWind(w) {
			return true
		}
	}
	return false
}

func isDragonBlock(b Block) bool {
	for _, d := range allDragons {
		if b.HasDragon(d) {
			return true
		}
	}
	return false
}

// countTripletBlocks 满足条件的刻子数
func countTripletBlocks(ctx *YakuContext, pred func(Block) bool) int {
	n := 0
	for _, b := range ctx.triples {
		if pred(b) {
			n++
		}
	}
	return n
}

func headMatches(ctx *YakuContext, pred func(Block) bool) bool {
	head, ok := ctx.decomp.Head()
	return ok && pred(head)
}

// isValueBlock 役牌：三元牌、自风、场风
func isValueBlock(ctx *YakuContext, b Block) bool {
	return isDragonBlock(b) || b.HasWind(ctx.Table.SeatWind) || b.HasWind(ctx.Table.RoundWind)
}

// identicalRunPairs 相同顺子能组成的对数，一杯口为 1，二杯口为 2
func identicalRunPairs(runs []Block) int {
	var seen [TileKinds]int
	for _, r := range runs {
		seen[r.Tile]++
	}
	pairs := 0
	for _, n := range seen {
		pairs += n / 2
	}
	return pairs
}

func hasRun(runs []Block, low TileType) bool {
	for _, r := range runs {
		if r.Tile == low {
			return true
		}
	}
	return false
}

// allTiles 手牌每一张都满足 pred
func allTiles(counts Hand34, pred func(TileType) bool) bool {
	nonEmpty := false
	for i, c := range counts {
		if c == 0 {
			continue
		}
		nonEmpty = true
		if !pred(TileType(i)) {
			return false
		}
	}
	return nonEmpty
}

func anyTile(counts Hand34, pred func(TileType) bool) bool {
	for i, c := range counts {
		if c > 0 && pred(TileType(i)) {
			return true
		}
	}
	return false
}

// numberedSuits 出现的数牌花色数
func numberedSuits(counts Hand34) int {
	var seen [3]bool
	n := 0
	for i := int(Man1); i <= int(So9); i++ {
		if counts[i] == 0 {
			continue
		}
		s := TileType(i).Suit()
		if !seen[s] {
			seen[s] = true
			n++
		}
	}
	return n
}

// concealedTriplets 暗刻数：荣和时由和了牌凑成的刻子算明刻（和了牌能归入顺子时除外）
func concealedTriplets(ctx *YakuContext) int {
	n := len(ctx.triples)
	t := ctx.Table
	if t.IsSelfPicked || !t.HasWinningTile {
		return n
	}
	if hasTripletOf(ctx, t.WinningTile) {
		for _, r := range ctx.runs {
			if t.WinningTile >= r.Tile && t.WinningTile <= r.Tile+2 {
				return n
			}
		}
		n--
	}
	return n
}
