package mahjong

import (
	"errors"
	"fmt"
)

// Yaku 役种，显示名称由外部本地化
type Yaku int

const (
	YakuReadyHand                   Yaku = iota // 立直
	YakuSevenPairs                              // 七对子
	YakuNagashiMangan                           // 流局满贯
	YakuSelfPick                                // 门前清自摸和
	YakuOneShot                                 // 一发
	YakuLastTileFromTheWall                     // 海底摸月
	YakuLastDiscard                             // 河底捞鱼
	YakuDeadWallDraw                            // 岭上开花
	YakuRobbingAQuad                            // 抢杠
	YakuDoubleReady                             // 两立直
	YakuNoPointsHand                            // 平和
	YakuOneSetOfIdenticalSequences              // 一杯口
	YakuThreeColourStraight                     // 三色同顺
	YakuStraight                                // 一气通贯
	YakuTwoSetsOfIdenticalSequences             // 二杯口
	YakuAllTripletHand                          // 对对和
	YakuThreeClosedTriplets                     // 三暗刻
	YakuThreeColourTriplets                     // 三色同刻
	YakuAllSimples                              // 断幺九
	YakuHonorTilesSeatWind                      // 役牌：自风
	YakuHonorTilesRoundWind                     // 役牌：场风
	YakuHonorTilesWhiteDragon                   // 役牌：白
	YakuHonorTilesGreenDragon                   // 役牌：发
	YakuHonorTilesRedDragon                     // 役牌：中
	YakuTerminalOrHonorInEachSet                // 混全带幺九
	YakuTerminalInEachSet                       // 纯全带幺九
	YakuAllTerminalsAndHonors                   // 混老头
	YakuLittleThreeDragons                      // 小三元
	YakuHalfFlush                               // 混一色
	YakuFlush                                   // 清一色
	YakuThirteenOrphans                         // 国士无双
	YakuFourConcealedTriplets                   // 四暗刻
	YakuBigThreeDragons                         // 大三元
	YakuLittleFourWinds                         // 小四喜
	YakuBigFourWinds                            // 大四喜
	YakuAllHonors                               // 字一色
	YakuAllTerminals                            // 清老头
	YakuAllGreen                                // 绿一色
	YakuNineGates                               // 九莲宝灯
	YakuFourKans                                // 四杠子
	YakuHeavenlyHand                            // 天和
	YakuHandOfEarth                             // 地和

	yakuCount
)

var yakuNames = [yakuCount]string{
	"ReadyHand", "SevenPairs", "NagashiMangan", "SelfPick", "OneShot",
	"LastTileFromTheWall", "LastDiscard", "DeadWallDraw", "RobbingAQuad", "DoubleReady",
	"NoPointsHand", "OneSetOfIdenticalSequences", "ThreeColourStraight", "Straight",
	"TwoSetsOfIdenticalSequences", "AllTripletHand", "ThreeClosedTriplets", "ThreeColourTriplets",
	"AllSimples", "HonorTilesSeatWind", "HonorTilesRoundWind", "HonorTilesWhiteDragon",
	"HonorTilesGreenDragon", "HonorTilesRedDragon", "TerminalOrHonorInEachSet", "TerminalInEachSet",
	"AllTerminalsAndHonors", "LittleThreeDragons", "HalfFlush", "Flush",
	"ThirteenOrphans", "FourConcealedTriplets", "BigThreeDragons", "LittleFourWinds",
	"BigFourWinds", "AllHonors", "AllTerminals", "AllGreen", "NineGates", "FourKans",
	"HeavenlyHand", "HandOfEarth",
}

// String 调试用的标识符，不是显示名称
func (y Yaku) String() string {
	if y < 0 || y >= yakuCount {
		return fmt.Sprintf("Yaku(%d)", int(y))
	}
	return yakuNames[y]
}

// AllYaku 按枚举顺序返回全部役种
func AllYaku() []Yaku {
	out := make([]Yaku, 0, yakuCount)
	for y := Yaku(0); y < yakuCount; y++ {
		out = append(out, y)
	}
	return out
}

const yakumanHan = 13

func (y Yaku) IsYakuman() bool {
	return y >= YakuThirteenOrphans && y < yakuCount
}

// TableContext 和了时的场况
type TableContext struct {
	HasClaimedOpen        bool // 有明副露
	HasClaimedReady       bool // 立直
	HasClaimedDoubleReady bool // 两立直
	IsSelfPicked          bool // 自摸
	IsOneShot             bool // 一发巡内
	IsLastTile            bool // 最后一张（海底/河底）
	IsAfterQuad           bool // 杠后摸牌
	IsRobbingQuad         bool // 抢杠
	IsFirstTurn           bool // 第一巡且无人鸣牌
	QuadCount             int
	SeatWind              Wind
	RoundWind             Wind

	WinningTile    TileType
	HasWinningTile bool
}

// TableContextFromHand 从 Hand 推出副露、杠数和和了牌
func TableContextFromHand(h *Hand) TableContext {
	tc := TableContext{
		HasClaimedOpen: h.IsOpen(),
		QuadCount:      h.QuadCount(),
	}
	if h.HasDrawn {
		tc.WinningTile = h.Drawn
		tc.HasWinningTile = true
	}
	return tc
}

// Rules 规则开关
type Rules struct {
	OpenAllSimples bool `mapstructure:"openAllSimples"` // 食断
}

func DefaultRules() Rules {
	return Rules{OpenAllSimples: true}
}

type YakuResult struct {
	Met bool
	Han uint
}

type Results map[Yaku]YakuResult

// Met 成立的役种，按枚举顺序
func (r Results) Met() []Yaku {
	var out []Yaku
	for _, y := range AllYaku() {
		if v, ok := r[y]; ok && v.Met {
			out = append(out, y)
		}
	}
	return out
}

// TotalHan 役满存在时只计役满；两立直与立直不叠加
func (r Results) TotalHan() uint {
	var regular, yakuman uint
	for y, v := range r {
		if !v.Met {
			continue
		}
		if y.IsYakuman() {
			yakuman += v.Han
			continue
		}
		if y == YakuReadyHand && r[YakuDoubleReady].Met {
			continue
		}
		regular += v.Han
	}
	if yakuman > 0 {
		return yakuman
	}
	return regular
}

// YakuContext 单次判定的输入，预先算好常用的派生量
type YakuContext struct {
	Result ShantenResult
	Table  TableContext
	Rules  Rules

	open    bool
	decomp  Decomposition
	counts  Hand34
	blocks  []Block
	runs    []Block
	triples []Block
}

func newYakuContext(res ShantenResult, table TableContext, rules Rules) *YakuContext {
	ctx := &YakuContext{
		Result: res,
		Table:  table,
		Rules:  rules,
		open:   table.HasClaimedOpen,
		decomp: res.Decomposition,
		counts: res.Counts,
	}
	ctx.blocks = ctx.decomp.Blocks()
	ctx.runs = ctx.decomp.Runs()
	ctx.triples = ctx.decomp.Triplets()
	return ctx
}

func (ctx *YakuContext) standard() bool {
	return ctx.Result.Form == FormStandard && len(ctx.decomp.Melds) == 4
}

type YakuChecker interface {
	ID() Yaku
	Check(ctx *YakuContext) (YakuResult, error)
}

type yakuCheckerFunc struct {
	id    Yaku
	check func(ctx *YakuContext) (YakuResult, error)
}

func (f yakuCheckerFunc) ID() Yaku { return f.id }

func (f yakuCheckerFunc) Check(ctx *YakuContext) (YakuResult, error) { return f.check(ctx) }

// hanRule 门清 closed 番，副露 open 番；open 为 0 表示副露不成立
func hanRule(id Yaku, closed, open uint, pred func(ctx *YakuContext) bool) YakuChecker {
	return yakuCheckerFunc{id: id, check: func(ctx *YakuContext) (YakuResult, error) {
		han := closed
		if ctx.open {
			han = open
		}
		if han == 0 || !pred(ctx) {
			return YakuResult{}, nil
		}
		return YakuResult{Met: true, Han: han}, nil
	}}
}

func yakumanRule(id Yaku, pred func(ctx *YakuContext) bool) YakuChecker {
	return hanRule(id, yakumanHan, yakumanHan, pred)
}

func notImplemented(id Yaku) YakuChecker {
	return yakuCheckerFunc{id: id, check: func(*YakuContext) (YakuResult, error) {
		return YakuResult{}, &NotImplementedError{Yaku: id}
	}}
}

// YakuRegistry 按枚举顺序排列
var YakuRegistry = []YakuChecker{
	hanRule(YakuReadyHand, 1, 0, checkReadyHand),
	hanRule(YakuSevenPairs, 2, 0, checkSevenPairs),
	notImplemented(YakuNagashiMangan),
	hanRule(YakuSelfPick, 1, 0, checkSelfPick),
	hanRule(YakuOneShot, 1, 0, checkOneShot),
	hanRule(YakuLastTileFromTheWall, 1, 1, checkLastTileFromTheWall),
	hanRule(YakuLastDiscard, 1, 1, checkLastDiscard),
	hanRule(YakuDeadWallDraw, 1, 1, checkDeadWallDraw),
	hanRule(YakuRobbingAQuad, 1, 1, checkRobbingAQuad),
	hanRule(YakuDoubleReady, 2, 0, checkDoubleReady),
	yakuCheckerFunc{id: YakuNoPointsHand, check: checkNoPointsHand},
	hanRule(YakuOneSetOfIdenticalSequences, 1, 0, checkOneSetOfIdenticalSequences),
	hanRule(YakuThreeColourStraight, 2, 1, checkThreeColourStraight),
	hanRule(YakuStraight, 2, 1, checkStraight),
	hanRule(YakuTwoSetsOfIdenticalSequences, 3, 0, checkTwoSetsOfIdenticalSequences),
	hanRule(YakuAllTripletHand, 2, 2, checkAllTripletHand),
	hanRule(YakuThreeClosedTriplets, 2, 0, checkThreeClosedTriplets),
	hanRule(YakuThreeColourTriplets, 2, 2, checkThreeColourTriplets),
	yakuCheckerFunc{id: YakuAllSimples, check: checkAllSimples},
	hanRule(YakuHonorTilesSeatWind, 1, 1, func(ctx *YakuContext) bool { return hasWindTriplet(ctx, ctx.Table.SeatWind) }),
	hanRule(YakuHonorTilesRoundWind, 1, 1, func(ctx *YakuContext) bool { return hasWindTriplet(ctx, ctx.Table.RoundWind) }),
	hanRule(YakuHonorTilesWhiteDragon, 1, 1, func(ctx *YakuContext) bool { return hasDragonTriplet(ctx, DragonWhite) }),
	hanRule(YakuHonorTilesGreenDragon, 1, 1, func(ctx *YakuContext) bool { return hasDragonTriplet(ctx, DragonGreen) }),
	hanRule(YakuHonorTilesRedDragon, 1, 1, func(ctx *YakuContext) bool { return hasDragonTriplet(ctx, DragonRed) }),
	hanRule(YakuTerminalOrHonorInEachSet, 2, 1, checkTerminalOrHonorInEachSet),
	hanRule(YakuTerminalInEachSet, 3, 2, checkTerminalInEachSet),
	hanRule(YakuAllTerminalsAndHonors, 2, 2, checkAllTerminalsAndHonors),
	hanRule(YakuLittleThreeDragons, 2, 2, checkLittleThreeDragons),
	hanRule(YakuHalfFlush, 3, 2, checkHalfFlush),
	hanRule(YakuFlush, 6, 5, checkFlush),
	yakumanRule(YakuThirteenOrphans, checkThirteenOrphans),
	yakumanRule(YakuFourConcealedTriplets, checkFourConcealedTriplets),
	yakumanRule(YakuBigThreeDragons, checkBigThreeDragons),
	yakumanRule(YakuLittleFourWinds, checkLittleFourWinds),
	yakumanRule(YakuBigFourWinds, checkBigFourWinds),
	yakumanRule(YakuAllHonors, checkAllHonors),
	yakumanRule(YakuAllTerminals, checkAllTerminals),
	yakumanRule(YakuAllGreen, checkAllGreen),
	yakumanRule(YakuNineGates, checkNineGates),
	yakumanRule(YakuFourKans, checkFourKans),
	yakumanRule(YakuHeavenlyHand, checkHeavenlyHand),
	yakumanRule(YakuHandOfEarth, checkHandOfEarth),
}

// Evaluate 对和了形判定全部役种
// 判定出错（包括未实现）的役种不出现在结果中，错误通过 errors.Join 汇总返回
func Evaluate(res ShantenResult, table TableContext, rules Rules) (Results, error) {
	if !res.IsComplete() {
		return nil, fmt.Errorf("shanten %d: %w", res.Distance, ErrHandNotComplete)
	}
	ctx := newYakuContext(res, table, rules)
	out := make(Results, len(YakuRegistry))
	var errs []error
	for _, checker := range YakuRegistry {
		r, err := checker.Check(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[checker.ID()] = r
	}
	return out, errors.Join(errs...)
}

// EvaluateOne 只判定一个役种
func EvaluateOne(y Yaku, res ShantenResult, table TableContext, rules Rules) (YakuResult, error) {
	if !res.IsComplete() {
		return YakuResult{}, fmt.Errorf("shanten %d: %w", res.Distance, ErrHandNotComplete)
	}
	for _, checker := range YakuRegistry {
		if checker.ID() == y {
			return checker.Check(newYakuContext(res, table, rules))
		}
	}
	return YakuResult{}, &NotImplementedError{Yaku: y}
}
