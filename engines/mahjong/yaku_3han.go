package mahjong

func checkTwoSetsOfIdenticalSequences(ctx *YakuContext) bool {
	return ctx.standard() && identicalRunPairs(ctx.runs) == 2
}

// checkTerminalInEachSet 纯全带：至少一个顺子，每组含 1 或 9，不含字牌
func checkTerminalInEachSet(ctx *YakuContext) bool {
	if !ctx.standard() || len(ctx.runs) == 0 {
		return false
	}
	for _, b := range ctx.blocks {
		if b.HasHonor() || !b.HasTerminalOrTerminalEdge() {
			return false
		}
	}
	return true
}

// checkHalfFlush 一种数牌加字牌，没有字牌时归清一色
func checkHalfFlush(ctx *YakuContext) bool {
	return numberedSuits(ctx.counts) == 1 && anyTile(ctx.counts, TileType.IsHonor)
}
