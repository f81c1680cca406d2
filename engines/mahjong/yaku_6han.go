package mahjong

func checkFlush(ctx *YakuContext) bool {
	return numberedSuits(ctx.counts) == 1 && !anyTile(ctx.counts, TileType.IsHonor)
}
