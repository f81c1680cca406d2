package mahjong

type TileType int

const (
	// 万子 (0-8)
	Man1 TileType = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

// TileKinds 牌种数量
const TileKinds = 34

type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "m"
	case SuitPin:
		return "p"
	case SuitSou:
		return "s"
	case SuitHonor:
		return "z"
	default:
		return "?"
	}
}

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

func (w Wind) Tile() TileType {
	return East + TileType(w)
}

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "east"
	case WindSouth:
		return "south"
	case WindWest:
		return "west"
	case WindNorth:
		return "north"
	default:
		return "unknown"
	}
}

// ParseWind 接受 east/south/west/north 或 1z-4z 的序号
func ParseWind(s string) (Wind, bool) {
	switch s {
	case "east", "e", "1":
		return WindEast, true
	case "south", "s", "2":
		return WindSouth, true
	case "west", "w", "3":
		return WindWest, true
	case "north", "n", "4":
		return WindNorth, true
	default:
		return WindEast, false
	}
}

type Dragon int

const (
	DragonWhite Dragon = iota // 白
	DragonGreen               // 发
	DragonRed                 // 中
)

func (d Dragon) Tile() TileType {
	return White + TileType(d)
}

func (t TileType) Valid() bool {
	return t >= Man1 && t <= Red
}

func (t TileType) IsNumbered() bool {
	return t >= Man1 && t <= So9
}

func (t TileType) IsHonor() bool {
	return t >= East && t <= Red
}

func (t TileType) IsWind() bool {
	return t >= East && t <= North
}

func (t TileType) IsDragon() bool {
	return t >= White && t <= Red
}

// IsTerminal 数牌的 1 和 9
func (t TileType) IsTerminal() bool {
	n := t.Number()
	return n == 1 || n == 9
}

// IsTerminalOrHonor 幺九牌
func (t TileType) IsTerminalOrHonor() bool {
	return t.IsHonor() || t.IsTerminal()
}

func (t TileType) Suit() Suit {
	switch {
	case t >= Man1 && t <= Man9:
		return SuitMan
	case t >= Pin1 && t <= Pin9:
		return SuitPin
	case t >= So1 && t <= So9:
		return SuitSou
	default:
		return SuitHonor
	}
}

// Number 数牌点数 1-9，字牌返回 0
func (t TileType) Number() int {
	if !t.IsNumbered() {
		return 0
	}
	return int(t)%9 + 1
}

func (t TileType) String() string {
	if !t.Valid() {
		return "??"
	}
	return string(t.digit()) + t.Suit().String()
}

// digit 记谱用的数字，字牌按 1z-7z
func (t TileType) digit() byte {
	if t.IsHonor() {
		return byte('1' + int(t-East))
	}
	return byte('0' + t.Number())
}

var kokushiTiles = [13]TileType{
	Man1, Man9,
	Pin1, Pin9,
	So1, So9,
	East, South, West, North,
	White, Green, Red,
}

// greenTiles 绿一色可用的牌
var greenTiles = [6]TileType{So2, So3, So4, So6, So8, Green}

func isGreen(t TileType) bool {
	for _, g := range greenTiles {
		if g == t {
			return true
		}
	}
	return false
}
