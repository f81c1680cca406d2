package mahjong

func checkThirteenOrphans(ctx *YakuContext) bool {
	return ctx.Result.Form == FormThirteenOrphans
}

// checkFourConcealedTriplets 门清 4 暗刻，只认自摸
func checkFourConcealedTriplets(ctx *YakuContext) bool {
	return !ctx.open && ctx.standard() && len(ctx.triples) == 4 && ctx.Table.IsSelfPicked
}

func checkBigThreeDragons(ctx *YakuContext) bool {
	return ctx.standard() && countTripletBlocks(ctx, isDragonBlock) == 3
}

func checkLittleFourWinds(ctx *YakuContext) bool {
	return ctx.standard() &&
		countTripletBlocks(ctx, isWindBlock) == 3 &&
		headMatches(ctx, isWindBlock)
}

func checkBigFourWinds(ctx *YakuContext) bool {
	return ctx.standard() && countTripletBlocks(ctx, isWindBlock) == 4
}

func checkAllHonors(ctx *YakuContext) bool {
	return allTiles(ctx.counts, TileType.IsHonor)
}

func checkAllTerminals(ctx *YakuContext) bool {
	return allTiles(ctx.counts, TileType.IsTerminal)
}

func checkAllGreen(ctx *YakuContext) bool {
	return allTiles(ctx.counts, isGreen)
}

// nineGatesBase 1112345678999
var nineGatesBase = [9]uint8{3, 1, 1, 1, 1, 1, 1, 1, 3}

// checkNineGates 门清同一种数牌，在 1112345678999 的基础上多一张
func checkNineGates(ctx *YakuContext) bool {
	if ctx.open || numberedSuits(ctx.counts) != 1 || anyTile(ctx.counts, TileType.IsHonor) {
		return false
	}
	var base TileType
	for _, b := range []TileType{Man1, Pin1, So1} {
		if ctx.counts[b] > 0 {
			base = b
			break
		}
	}
	for k := 0; k < 9; k++ {
		if ctx.counts[base+TileType(k)] < nineGatesBase[k] {
			return false
		}
	}
	return true
}

func checkFourKans(ctx *YakuContext) bool {
	return ctx.Table.QuadCount == 4
}

// checkHeavenlyHand 天和：亲家配牌即和
func checkHeavenlyHand(ctx *YakuContext) bool {
	t := ctx.Table
	return !ctx.open && t.IsFirstTurn && t.IsSelfPicked && t.SeatWind == WindEast
}

// checkHandOfEarth 地和：子家第一巡自摸
func checkHandOfEarth(ctx *YakuContext) bool {
	t := ctx.Table
	return !ctx.open && t.IsFirstTurn && t.IsSelfPicked && t.SeatWind != WindEast
}
