package mahjong

import "fmt"

func checkReadyHand(ctx *YakuContext) bool {
	return ctx.Table.HasClaimedReady
}

func checkSelfPick(ctx *YakuContext) bool {
	return ctx.Table.IsSelfPicked
}

func checkOneShot(ctx *YakuContext) bool {
	t := ctx.Table
	return (t.HasClaimedReady || t.HasClaimedDoubleReady) && t.IsOneShot
}

func checkLastTileFromTheWall(ctx *YakuContext) bool {
	return ctx.Table.IsLastTile && ctx.Table.IsSelfPicked
}

func checkLastDiscard(ctx *YakuContext) bool {
	return ctx.Table.IsLastTile && !ctx.Table.IsSelfPicked
}

func checkDeadWallDraw(ctx *YakuContext) bool {
	return ctx.Table.IsAfterQuad && ctx.Table.IsSelfPicked
}

func checkRobbingAQuad(ctx *YakuContext) bool {
	return ctx.Table.IsRobbingQuad && !ctx.Table.IsSelfPicked
}

// checkNoPointsHand 门清、4 顺子、雀头非役牌、两面听
// 听牌形需要和了牌，缺少时返回 ErrMissingWinningTile
func checkNoPointsHand(ctx *YakuContext) (YakuResult, error) {
	if ctx.open || !ctx.standard() || len(ctx.runs) != 4 {
		return YakuResult{}, nil
	}
	if headMatches(ctx, func(b Block) bool { return isValueBlock(ctx, b) }) {
		return YakuResult{}, nil
	}
	if !ctx.Table.HasWinningTile {
		return YakuResult{}, fmt.Errorf("yaku %s: %w", YakuNoPointsHand, ErrMissingWinningTile)
	}
	win := ctx.Table.WinningTile
	for _, r := range ctx.runs {
		// 12 听 3、89 听 7 是边张
		if win == r.Tile && (r.Tile+2).Number() != 9 {
			return YakuResult{Met: true, Han: 1}, nil
		}
		if win == r.Tile+2 && r.Tile.Number() != 1 {
			return YakuResult{Met: true, Han: 1}, nil
		}
	}
	return YakuResult{}, nil
}

// checkOneSetOfIdenticalSequences 二杯口成立时不计
func checkOneSetOfIdenticalSequences(ctx *YakuContext) bool {
	return ctx.standard() && identicalRunPairs(ctx.runs) == 1
}

// checkAllSimples 副露时受食断规则限制
func checkAllSimples(ctx *YakuContext) (YakuResult, error) {
	if ctx.open && !ctx.Rules.OpenAllSimples {
		return YakuResult{}, nil
	}
	if !allTiles(ctx.counts, func(t TileType) bool { return !t.IsTerminalOrHonor() }) {
		return YakuResult{}, nil
	}
	return YakuResult{Met: true, Han: 1}, nil
}
