package mahjong

// Form 和牌形
type Form int

const (
	FormStandard        Form = iota // 4 面子 1 雀头
	FormSevenPairs                  // 七对子
	FormThirteenOrphans             // 国士无双
)

func (f Form) String() string {
	switch f {
	case FormStandard:
		return "standard"
	case FormSevenPairs:
		return "seven-pairs"
	case FormThirteenOrphans:
		return "thirteen-orphans"
	default:
		return "unknown"
	}
}

// ShantenResult 向听数：-1 和了，0 听牌
type ShantenResult struct {
	Distance      int
	Form          Form
	Decomposition Decomposition
	Counts        Hand34
}

func (r ShantenResult) IsComplete() bool {
	return r.Distance == -1
}

func (r ShantenResult) IsTenpai() bool {
	return r.Distance == 0
}

func (r ShantenResult) Clone() ShantenResult {
	r.Decomposition = r.Decomposition.Clone()
	return r
}

// Analyze 分别计算七对子、国士无双、一般型，取最小
// 相同时按 七对子 > 国士无双 > 一般型 保留先出现的
func Analyze(h Hand34) ShantenResult {
	best := AnalyzeForm(h, FormSevenPairs)
	if to := AnalyzeForm(h, FormThirteenOrphans); to.Distance < best.Distance {
		best = to
	}
	if normal := AnalyzeForm(h, FormStandard); normal.Distance < best.Distance {
		best = normal
	}
	return best
}

func AnalyzeForm(h Hand34, form Form) ShantenResult {
	switch form {
	case FormSevenPairs:
		return analyzeChiitoi(h)
	case FormThirteenOrphans:
		return analyzeKokushi(h)
	default:
		return analyzeNormal(h)
	}
}

// ShantenChiitoi 七对子向听数，4 张相同只算一个对子
func ShantenChiitoi(h Hand34) int {
	pairs, kinds := 0, 0
	for i := 0; i < TileKinds; i++ {
		if h[i] > 0 {
			kinds++
		}
		if h[i] >= 2 {
			pairs++
		}
	}
	sh := 7 - pairs
	if kinds < 7 {
		sh += 7 - kinds
	}
	return sh - 1
}

// ShantenKokushi 国士无双向听数
func ShantenKokushi(h Hand34) int {
	unique := 0
	pair := false
	for _, t := range kokushiTiles {
		if h[t] > 0 {
			unique++
			if h[t] >= 2 {
				pair = true
			}
		}
	}
	sh := 14 - unique
	if pair {
		sh--
	}
	return sh - 1
}

// ShantenNormal 一般型向听数
func ShantenNormal(h Hand34) int {
	return analyzeNormal(h).Distance
}

func analyzeChiitoi(h Hand34) ShantenResult {
	var d Decomposition
	rest := h
	for i := 0; i < TileKinds; i++ {
		if rest[i] >= 2 {
			d.Pairs = append(d.Pairs, pairOf(TileType(i)))
			rest[i] -= 2
		}
	}
	d.Singles = rest.Tiles()
	return ShantenResult{Distance: ShantenChiitoi(h), Form: FormSevenPairs, Decomposition: d, Counts: h}
}

func analyzeKokushi(h Hand34) ShantenResult {
	return ShantenResult{
		Distance:      ShantenKokushi(h),
		Form:          FormThirteenOrphans,
		Decomposition: Decomposition{Singles: h.Tiles()},
		Counts:        h,
	}
}

func analyzeNormal(h Hand34) ShantenResult {
	work := h
	independent := stripIndependentTriplets(&work)
	independent = append(independent, stripIndependentRuns(&work)...)

	s := &normalSearch{
		work:        work,
		independent: len(independent),
		best:        worstShanten + 1,
	}

	// 先固定每一种可能的雀头，再搜索不固定雀头的情况
	for i := 0; i < TileKinds; i++ {
		if s.work[i] < 2 {
			continue
		}
		s.work[i] -= 2
		s.push(pairOf(TileType(i)), roleHead)
		s.dfs(0)
		s.pop()
		s.work[i] += 2
	}
	s.dfs(0)

	d := s.result
	d.Melds = append(d.Melds, independent...)
	return ShantenResult{Distance: s.best, Form: FormStandard, Decomposition: d, Counts: h}
}

const (
	worstShanten = 8
	maxBlocks    = 5
	stackSize    = 14
)

type blockRole uint8

const (
	roleMeld blockRole = iota
	roleHead
	rolePartial
)

type stackEntry struct {
	block Block
	role  blockRole
}

// normalSearch 回溯搜索的工作区，stack 按深度索引，回溯只需退栈
type normalSearch struct {
	work        Hand34
	singles     Hand34
	stack       [stackSize]stackEntry
	depth       int
	independent int

	melds    int
	heads    int
	partials int

	best   int
	result Decomposition
}

func (s *normalSearch) push(b Block, role blockRole) {
	s.stack[s.depth] = stackEntry{block: b, role: role}
	s.depth++
	switch role {
	case roleMeld:
		s.melds++
	case roleHead:
		s.heads++
	default:
		s.partials++
	}
}

func (s *normalSearch) pop() {
	s.depth--
	switch s.stack[s.depth].role {
	case roleMeld:
		s.melds--
	case roleHead:
		s.heads--
	default:
		s.partials--
	}
}

// distance 8 - 2*面子 - 搭子(含雀头)，块数上限 5；凑满 5 块却没有雀头时 +1
func (s *normalSearch) distance() int {
	m := s.melds + s.independent
	h := s.heads
	t := s.partials
	if m+h+t > maxBlocks {
		t = maxBlocks - m - h
		if t < 0 {
			t = 0
		}
	}
	d := worstShanten - 2*m - h - t
	if m+h+t == maxBlocks && h == 0 {
		d++
	}
	return d
}

func (s *normalSearch) evaluate() {
	d := s.distance()
	if d >= s.best {
		return
	}
	s.best = d
	s.result = s.snapshot()
}

func (s *normalSearch) snapshot() Decomposition {
	var d Decomposition
	for _, e := range s.stack[:s.depth] {
		switch e.role {
		case roleMeld:
			d.Melds = append(d.Melds, e.block)
		case roleHead:
			d.Pairs = append(d.Pairs, e.block)
		default:
			d.Partials = append(d.Partials, e.block)
		}
	}
	d.Singles = s.singles.Tiles()
	return d
}

// dfs 按下标升序，依次尝试 刻子 → 顺子 → 雀头 → 搭子 → 孤张
func (s *normalSearch) dfs(i int) {
	if s.best == -1 {
		return
	}
	for i < TileKinds && s.work[i] == 0 {
		i++
	}
	if i == TileKinds {
		s.evaluate()
		return
	}
	t := TileType(i)

	// 刻子
	if s.work[i] >= 3 {
		s.work[i] -= 3
		s.push(tripletOf(t), roleMeld)
		s.dfs(i)
		s.pop()
		s.work[i] += 3
	}

	// 顺子
	if t.IsNumbered() && t.Number() <= 7 && s.work[i+1] > 0 && s.work[i+2] > 0 {
		s.work[i]--
		s.work[i+1]--
		s.work[i+2]--
		s.push(runOf(t), roleMeld)
		s.dfs(i)
		s.pop()
		s.work[i]++
		s.work[i+1]++
		s.work[i+2]++
	}

	// 对子：没有雀头时作为雀头，否则作为搭子
	if s.work[i] >= 2 {
		role := rolePartial
		if s.heads == 0 {
			role = roleHead
		}
		s.work[i] -= 2
		s.push(pairOf(t), role)
		s.dfs(i)
		s.pop()
		s.work[i] += 2
	}

	// 两面/边张
	if t.IsNumbered() && t.Number() <= 8 && s.work[i+1] > 0 {
		s.work[i]--
		s.work[i+1]--
		s.push(partialOf(t, t+1), rolePartial)
		s.dfs(i)
		s.pop()
		s.work[i]++
		s.work[i+1]++
	}

	// 嵌张
	if t.IsNumbered() && t.Number() <= 7 && s.work[i+2] > 0 {
		s.work[i]--
		s.work[i+2]--
		s.push(partialOf(t, t+2), rolePartial)
		s.dfs(i)
		s.pop()
		s.work[i]++
		s.work[i+2]++
	}

	// 剩下的作为孤张
	n := s.work[i]
	s.work[i] = 0
	s.singles[i] += n
	s.dfs(i + 1)
	s.singles[i] -= n
	s.work[i] = n
}

// neighborsEmpty 相对 i 的各偏移处（仅同花色）是否全为 0
func neighborsEmpty(h *Hand34, i int, offsets ...int) bool {
	t := TileType(i)
	for _, off := range offsets {
		j := i + off
		if j < 0 || j >= TileKinds {
			continue
		}
		if TileType(j).Suit() != t.Suit() {
			continue
		}
		if h[j] != 0 {
			return false
		}
	}
	return true
}

// stripIndependentTriplets 抽出与周围无关联的刻子，字牌刻子总是独立的
func stripIndependentTriplets(h *Hand34) []Block {
	var out []Block
	for i := 0; i < TileKinds; i++ {
		if h[i] < 3 {
			continue
		}
		t := TileType(i)
		if t.IsNumbered() && !neighborsEmpty(h, i, -2, -1, 1, 2) {
			continue
		}
		h[i] -= 3
		out = append(out, tripletOf(t))
	}
	return out
}

// stripIndependentRuns 抽出孤立的顺子（xx567xx），先处理一杯口形
func stripIndependentRuns(h *Hand34) []Block {
	var out []Block
	for n := uint8(2); n >= 1; n-- {
		for base := int(Man1); base <= int(So1); base += 9 {
			for k := 0; k <= 6; k++ {
				l := base + k
				if h[l] != n || h[l+1] != n || h[l+2] != n {
					continue
				}
				if !neighborsEmpty(h, l, -2, -1, 3, 4) {
					continue
				}
				h[l] -= n
				h[l+1] -= n
				h[l+2] -= n
				for c := uint8(0); c < n; c++ {
					out = append(out, runOf(TileType(l)))
				}
			}
		}
	}
	return out
}
