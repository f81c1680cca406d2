package analyzer

import (
	"fmt"
	"strings"

	"riichi/engines/mahjong"
)

// Line 一行输入：牌谱记法，可选 "|" 后跟场况选项
// 例如 "123m456p789s23s55m 4s | riichi tsumo seat=south"
type Line struct {
	Notation string
	Table    mahjong.TableContext
	Hand     *mahjong.Hand
}

// ParseLine base 为命令行给出的默认场况，行内选项覆盖它
func ParseLine(s string, base mahjong.TableContext) (Line, error) {
	notation, opts, _ := strings.Cut(s, "|")
	notation = strings.TrimSpace(notation)
	hand, err := mahjong.ParseHand(notation)
	if err != nil {
		return Line{}, err
	}

	table := base
	derived := mahjong.TableContextFromHand(hand)
	table.HasClaimedOpen = derived.HasClaimedOpen
	table.QuadCount = derived.QuadCount
	table.WinningTile = derived.WinningTile
	table.HasWinningTile = derived.HasWinningTile

	if err := ApplyOptions(&table, strings.Fields(opts)); err != nil {
		return Line{}, err
	}
	return Line{Notation: notation, Table: table, Hand: hand}, nil
}

// ApplyOptions 解析场况选项
func ApplyOptions(t *mahjong.TableContext, opts []string) error {
	for _, opt := range opts {
		key, val, hasVal := strings.Cut(strings.ToLower(opt), "=")
		if hasVal {
			w, ok := mahjong.ParseWind(val)
			if !ok {
				return fmt.Errorf("option %q: unknown wind %q", opt, val)
			}
			switch key {
			case "seat":
				t.SeatWind = w
			case "round":
				t.RoundWind = w
			default:
				return fmt.Errorf("unknown option %q", opt)
			}
			continue
		}
		switch key {
		case "riichi":
			t.HasClaimedReady = true
		case "double-riichi":
			t.HasClaimedReady = true
			t.HasClaimedDoubleReady = true
		case "tsumo":
			t.IsSelfPicked = true
		case "ippatsu":
			t.IsOneShot = true
		case "last":
			t.IsLastTile = true
		case "rinshan":
			t.IsAfterQuad = true
		case "chankan":
			t.IsRobbingQuad = true
		case "first":
			t.IsFirstTurn = true
		default:
			return fmt.Errorf("unknown option %q", opt)
		}
	}
	return nil
}
