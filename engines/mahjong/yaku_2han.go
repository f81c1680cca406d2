package mahjong

func checkDoubleReady(ctx *YakuContext) bool {
	return ctx.Table.HasClaimedDoubleReady
}

func checkSevenPairs(ctx *YakuContext) bool {
	return ctx.Result.Form == FormSevenPairs
}

func checkThreeColourStraight(ctx *YakuContext) bool {
	if !ctx.standard() {
		return false
	}
	for k := TileType(0); k < 7; k++ {
		if hasRun(ctx.runs, Man1+k) && hasRun(ctx.runs, Pin1+k) && hasRun(ctx.runs, So1+k) {
			return true
		}
	}
	return false
}

func checkStraight(ctx *YakuContext) bool {
	if !ctx.standard() {
		return false
	}
	for _, base := range []TileType{Man1, Pin1, So1} {
		if hasRun(ctx.runs, base) && hasRun(ctx.runs, base+3) && hasRun(ctx.runs, base+6) {
			return true
		}
	}
	return false
}

func checkAllTripletHand(ctx *YakuContext) bool {
	return ctx.standard() && len(ctx.triples) == 4 && len(ctx.decomp.Pairs) == 1
}

func checkThreeClosedTriplets(ctx *YakuContext) bool {
	return ctx.standard() && concealedTriplets(ctx) >= 3
}

func checkThreeColourTriplets(ctx *YakuContext) bool {
	if !ctx.standard() {
		return false
	}
	for k := TileType(0); k < 9; k++ {
		if hasTripletOf(ctx, Man1+k) && hasTripletOf(ctx, Pin1+k) && hasTripletOf(ctx, So1+k) {
			return true
		}
	}
	return false
}

// checkTerminalOrHonorInEachSet 混全带：至少一个顺子，每组含幺九，且有字牌
// 没有字牌的情况归纯全带
func checkTerminalOrHonorInEachSet(ctx *YakuContext) bool {
	if !ctx.standard() || len(ctx.runs) == 0 {
		return false
	}
	honor := false
	for _, b := range ctx.blocks {
		if !b.HasTerminalOrHonor() {
			return false
		}
		if b.HasHonor() {
			honor = true
		}
	}
	return honor
}

// checkAllTerminalsAndHonors 混老头：幺九牌与字牌都要出现
func checkAllTerminalsAndHonors(ctx *YakuContext) bool {
	if ctx.Result.Form == FormThirteenOrphans {
		return false
	}
	return allTiles(ctx.counts, TileType.IsTerminalOrHonor) &&
		anyTile(ctx.counts, TileType.IsHonor) &&
		anyTile(ctx.counts, TileType.IsTerminal)
}

func checkLittleThreeDragons(ctx *YakuContext) bool {
	return ctx.standard() &&
		countTripletBlocks(ctx, isDragonBlock) == 2 &&
		headMatches(ctx, isDragonBlock)
}
