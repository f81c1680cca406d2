package mahjong

import (
	"errors"
	"testing"
)

func evalOne(t *testing.T, y Yaku, hand string, adjust func(*TableContext)) YakuResult {
	t.Helper()
	res, table := analyzeHand(t, hand)
	if adjust != nil {
		adjust(&table)
	}
	r, err := EvaluateOne(y, res, table, DefaultRules())
	if err != nil {
		t.Fatalf("%s on %q: %v", y, hand, err)
	}
	return r
}

func expectYaku(t *testing.T, y Yaku, hand string, adjust func(*TableContext), met bool, han uint) {
	t.Helper()
	r := evalOne(t, y, hand, adjust)
	if r.Met != met || r.Han != han {
		t.Fatalf("%s on %q: expected (%v, %d), got (%v, %d)", y, hand, met, han, r.Met, r.Han)
	}
}

func TestYaku_Straight(t *testing.T) {
	expectYaku(t, YakuStraight, "123456789m78p22z 9p", nil, true, 2)
	// 吃 123m 之后同样的形
	expectYaku(t, YakuStraight, "456789m78p22z 123m 9p", nil, true, 1)
}

func TestYaku_AllSimples(t *testing.T) {
	expectYaku(t, YakuAllSimples, "111456m777p56s88s 7s", nil, false, 0)
	expectYaku(t, YakuAllSimples, "234456m777p56s88s 7s", nil, true, 1)
}

func TestYaku_AllSimplesOpenRule(t *testing.T) {
	res, table := analyzeHand(t, "456m777p56s88s 234m 7s")
	if !table.HasClaimedOpen {
		t.Fatalf("expected open hand")
	}
	r, err := EvaluateOne(YakuAllSimples, res, table, Rules{OpenAllSimples: true})
	if err != nil || !r.Met || r.Han != 1 {
		t.Fatalf("open all simples allowed: got %+v, %v", r, err)
	}
	r, err = EvaluateOne(YakuAllSimples, res, table, Rules{OpenAllSimples: false})
	if err != nil || r.Met {
		t.Fatalf("open all simples disallowed: got %+v, %v", r, err)
	}
}

func TestYaku_ChantaJunchanExclusive(t *testing.T) {
	chanta := "111789m111p99s11z 1z"
	expectYaku(t, YakuTerminalOrHonorInEachSet, chanta, nil, true, 2)
	expectYaku(t, YakuTerminalInEachSet, chanta, nil, false, 0)

	junchan := "111789m111p1199s 9s"
	expectYaku(t, YakuTerminalInEachSet, junchan, nil, true, 3)
	expectYaku(t, YakuTerminalOrHonorInEachSet, junchan, nil, false, 0)
}

func TestYaku_ChantaNeedsRun(t *testing.T) {
	// 没有顺子时是混老头，不是混全带
	hand := "111999m111p11z22z 2z"
	expectYaku(t, YakuTerminalOrHonorInEachSet, hand, nil, false, 0)
	expectYaku(t, YakuAllTerminalsAndHonors, hand, nil, true, 2)
	expectYaku(t, YakuAllTripletHand, hand, nil, true, 2)
}

func TestYaku_Flushes(t *testing.T) {
	expectYaku(t, YakuHalfFlush, "123456789m1112z 2z", nil, true, 3)
	expectYaku(t, YakuFlush, "123456789m1112z 2z", nil, false, 0)
	expectYaku(t, YakuFlush, "1112223334445m 5m", nil, true, 6)
	expectYaku(t, YakuHalfFlush, "1112223334445m 5m", nil, false, 0)
	expectYaku(t, YakuFlush, "1234568889m 111m 9m", nil, true, 5)
	expectYaku(t, YakuHalfFlush, "456m11z22z 123m 789m 2z", nil, true, 2)
}

func TestYaku_IdenticalSequences(t *testing.T) {
	// 与七对子同形时取七对子，二杯口不成立
	hand := "112233m778899p7z 7z"
	expectYaku(t, YakuSevenPairs, hand, nil, true, 2)
	expectYaku(t, YakuTwoSetsOfIdenticalSequences, hand, nil, false, 0)

	expectYaku(t, YakuOneSetOfIdenticalSequences, "112233m456p789s1z 1z", nil, true, 1)
	// 副露后一杯口不成立
	expectYaku(t, YakuOneSetOfIdenticalSequences, "112233m456p1z 789s 1z", nil, false, 0)
}

func TestYaku_TwoSetsOnStandardForm(t *testing.T) {
	res := AnalyzeForm(mustHand(t, "112233m778899p7z 7z").Counts(), FormStandard)
	r, err := EvaluateOne(YakuTwoSetsOfIdenticalSequences, res, TableContext{}, DefaultRules())
	if err != nil || !r.Met || r.Han != 3 {
		t.Fatalf("expected (true, 3), got %+v, %v", r, err)
	}
	r, err = EvaluateOne(YakuOneSetOfIdenticalSequences, res, TableContext{}, DefaultRules())
	if err != nil || r.Met {
		t.Fatalf("one set should yield to two sets, got %+v, %v", r, err)
	}
}

func TestYaku_ThreeColour(t *testing.T) {
	expectYaku(t, YakuThreeColourStraight, "123m123p123s789m1z 1z", nil, true, 2)
	expectYaku(t, YakuThreeColourStraight, "123p123s789m1z 123m 1z", nil, true, 1)
	expectYaku(t, YakuThreeColourTriplets, "222m222p222s789m1z 1z", nil, true, 2)
}

func TestYaku_ValueTiles(t *testing.T) {
	hand := "123m456p789s11z55z 5z"
	south := func(tc *TableContext) { tc.SeatWind = WindSouth; tc.RoundWind = WindSouth }
	expectYaku(t, YakuHonorTilesWhiteDragon, hand, south, true, 1)
	expectYaku(t, YakuHonorTilesRedDragon, hand, south, false, 0)
	// 雀头 1z 不算役牌刻子
	expectYaku(t, YakuHonorTilesSeatWind, hand, nil, false, 0)

	hand = "123m456p789s22z11z 1z"
	east := func(tc *TableContext) { tc.SeatWind = WindEast; tc.RoundWind = WindEast }
	expectYaku(t, YakuHonorTilesSeatWind, hand, east, true, 1)
	expectYaku(t, YakuHonorTilesRoundWind, hand, east, true, 1)
}

func TestYaku_NoPointsHand(t *testing.T) {
	// 23s 两面听 4s
	expectYaku(t, YakuNoPointsHand, "123m456p789s23s55m 4s", nil, true, 1)
	// 24s 嵌张听 3s
	expectYaku(t, YakuNoPointsHand, "123m456p789s24s55m 3s", nil, false, 0)
	// 12s 边张听 3s
	expectYaku(t, YakuNoPointsHand, "123m456p789s12s55m 3s", nil, false, 0)
	// 雀头是役牌
	expectYaku(t, YakuNoPointsHand, "123m456p789s23s55z 4s", nil, false, 0)
	// 南家的 2z 雀头是自风，东家不是
	southSeat := func(tc *TableContext) { tc.SeatWind = WindSouth }
	expectYaku(t, YakuNoPointsHand, "123m456p789s23s22z 4s", southSeat, false, 0)
	expectYaku(t, YakuNoPointsHand, "123m456p789s23s22z 4s", nil, true, 1)
}

func TestYaku_NoPointsHandNeedsWinningTile(t *testing.T) {
	res, _ := analyzeHand(t, "123m456p789s23s55m 4s")
	_, err := EvaluateOne(YakuNoPointsHand, res, TableContext{}, DefaultRules())
	if !errors.Is(err, ErrMissingWinningTile) {
		t.Fatalf("expected ErrMissingWinningTile, got %v", err)
	}
}

func TestYaku_Triplets(t *testing.T) {
	hand := "111m222p333s4455z 5z"
	expectYaku(t, YakuAllTripletHand, hand, nil, true, 2)
	// 荣和 5z 凑成的刻子是明刻
	expectYaku(t, YakuThreeClosedTriplets, hand, nil, true, 2)
	expectYaku(t, YakuFourConcealedTriplets, hand, nil, false, 0)
	tsumo := func(tc *TableContext) { tc.IsSelfPicked = true }
	expectYaku(t, YakuFourConcealedTriplets, hand, tsumo, true, 13)
	// 单骑荣和也不算
	expectYaku(t, YakuFourConcealedTriplets, "111m222p333s555z4z 4z", nil, false, 0)
	expectYaku(t, YakuFourConcealedTriplets, "111m222p333s444s5z 5z", nil, false, 0)
	expectYaku(t, YakuFourConcealedTriplets, "111m222p333s444s5z 5z", tsumo, true, 13)
}

func TestYaku_ConcealedQuadKeepsClosedYaku(t *testing.T) {
	riichi := func(tc *TableContext) { tc.HasClaimedReady = true }
	tsumo := func(tc *TableContext) { tc.IsSelfPicked = true }
	expectYaku(t, YakuReadyHand, "123m456p789s5m [1111z] 5m", riichi, true, 1)
	expectYaku(t, YakuSelfPick, "123m456p789s5m [1111z] 5m", tsumo, true, 1)
	expectYaku(t, YakuReadyHand, "123m456p789s5m 1111z 5m", riichi, false, 0)
	expectYaku(t, YakuSelfPick, "123m456p789s5m 1111z 5m", tsumo, false, 0)
}

func TestYaku_Dragons(t *testing.T) {
	expectYaku(t, YakuBigThreeDragons, "555666777z11m23p 4p", nil, true, 13)
	expectYaku(t, YakuLittleThreeDragons, "555666z77z11m234p 1m", nil, true, 2)
	expectYaku(t, YakuLittleThreeDragons, "555666777z11m23p 4p", nil, false, 0)
}

func TestYaku_Winds(t *testing.T) {
	expectYaku(t, YakuBigFourWinds, "111222333444z5m 5m", nil, true, 13)
	expectYaku(t, YakuLittleFourWinds, "111222333z4z234m 4z", nil, true, 13)
	expectYaku(t, YakuAllHonors, "111222333444z5z 5z", nil, true, 13)
}

func TestYaku_TerminalsAndGreen(t *testing.T) {
	expectYaku(t, YakuAllTerminals, "111999m111p99s11z 1z", nil, false, 0)
	expectYaku(t, YakuAllTerminals, "111999m111p99s11s 9s", nil, true, 13)
	expectYaku(t, YakuAllGreen, "22334466888s66z 6z", nil, true, 13)
	expectYaku(t, YakuAllGreen, "22334466888s77z 7z", nil, false, 0)
}

func TestYaku_NineGates(t *testing.T) {
	expectYaku(t, YakuNineGates, "1112345678999m 5m", nil, true, 13)
	expectYaku(t, YakuNineGates, "1112345678999p 9p", nil, true, 13)
	expectYaku(t, YakuNineGates, "1112223334445m 5m", nil, false, 0)
}

func TestYaku_ThirteenOrphans(t *testing.T) {
	expectYaku(t, YakuThirteenOrphans, "19m19p19s1234567z 1m", nil, true, 13)
	expectYaku(t, YakuAllTerminalsAndHonors, "19m19p19s1234567z 1m", nil, false, 0)
}

func TestYaku_TableDriven(t *testing.T) {
	hand := "123m456p789s23s55m 4s"
	cases := []struct {
		name   string
		y      Yaku
		adjust func(*TableContext)
		met    bool
	}{
		{"riichi", YakuReadyHand, func(tc *TableContext) { tc.HasClaimedReady = true }, true},
		{"tsumo", YakuSelfPick, func(tc *TableContext) { tc.IsSelfPicked = true }, true},
		{"ippatsu", YakuOneShot, func(tc *TableContext) { tc.HasClaimedReady = true; tc.IsOneShot = true }, true},
		{"ippatsu without riichi", YakuOneShot, func(tc *TableContext) { tc.IsOneShot = true }, false},
		{"haitei", YakuLastTileFromTheWall, func(tc *TableContext) { tc.IsLastTile = true; tc.IsSelfPicked = true }, true},
		{"houtei", YakuLastDiscard, func(tc *TableContext) { tc.IsLastTile = true }, true},
		{"rinshan", YakuDeadWallDraw, func(tc *TableContext) { tc.IsAfterQuad = true; tc.IsSelfPicked = true }, true},
		{"chankan", YakuRobbingAQuad, func(tc *TableContext) { tc.IsRobbingQuad = true }, true},
		{"double riichi", YakuDoubleReady, func(tc *TableContext) { tc.HasClaimedDoubleReady = true }, true},
		{"tenhou", YakuHeavenlyHand, func(tc *TableContext) { tc.IsFirstTurn = true; tc.IsSelfPicked = true }, true},
		{"chiihou", YakuHandOfEarth, func(tc *TableContext) {
			tc.IsFirstTurn = true
			tc.IsSelfPicked = true
			tc.SeatWind = WindWest
		}, true},
		{"tenhou as non-dealer", YakuHeavenlyHand, func(tc *TableContext) {
			tc.IsFirstTurn = true
			tc.IsSelfPicked = true
			tc.SeatWind = WindNorth
		}, false},
		{"four kans", YakuFourKans, func(tc *TableContext) { tc.QuadCount = 4 }, true},
	}
	for _, c := range cases {
		r := evalOne(t, c.y, hand, c.adjust)
		if r.Met != c.met {
			t.Fatalf("%s: expected met=%v, got %+v", c.name, c.met, r)
		}
	}
}

func TestEvaluate_RequiresCompleteHand(t *testing.T) {
	res, table := analyzeHand(t, "123m456p789s23s55m")
	_, err := Evaluate(res, table, DefaultRules())
	if !errors.Is(err, ErrHandNotComplete) {
		t.Fatalf("expected ErrHandNotComplete, got %v", err)
	}
}

func TestEvaluate_ReportsNotImplemented(t *testing.T) {
	res, table := analyzeHand(t, "123456789m78p22z 9p")
	results, err := Evaluate(res, table, DefaultRules())
	var nie *NotImplementedError
	if !errors.As(err, &nie) {
		t.Fatalf("expected NotImplementedError, got %v", err)
	}
	if nie.Yaku != YakuNagashiMangan {
		t.Fatalf("expected NagashiMangan, got %s", nie.Yaku)
	}
	if _, ok := results[YakuNagashiMangan]; ok {
		t.Fatalf("unimplemented yaku must not appear in results")
	}
	if !results[YakuStraight].Met || results[YakuStraight].Han != 2 {
		t.Fatalf("straight expected (true, 2), got %+v", results[YakuStraight])
	}
	if !results[YakuNoPointsHand].Met {
		t.Fatalf("no points hand expected, got %+v", results[YakuNoPointsHand])
	}
}

func TestResults_TotalHan(t *testing.T) {
	r := Results{
		YakuReadyHand:   {Met: true, Han: 1},
		YakuDoubleReady: {Met: true, Han: 2},
		YakuSelfPick:    {Met: true, Han: 1},
		YakuAllSimples:  {Met: false},
	}
	if got := r.TotalHan(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	r[YakuBigThreeDragons] = YakuResult{Met: true, Han: 13}
	if got := r.TotalHan(); got != 13 {
		t.Fatalf("yakuman should supersede, got %d", got)
	}
	met := r.Met()
	if len(met) != 4 || met[0] != YakuReadyHand || met[3] != YakuBigThreeDragons {
		t.Fatalf("unexpected met list %v", met)
	}
}

func TestEvaluateOne_UnknownYaku(t *testing.T) {
	res, table := analyzeHand(t, "123456789m78p22z 9p")
	_, err := EvaluateOne(Yaku(999), res, table, DefaultRules())
	var nie *NotImplementedError
	if !errors.As(err, &nie) {
		t.Fatalf("expected NotImplementedError, got %v", err)
	}
}
