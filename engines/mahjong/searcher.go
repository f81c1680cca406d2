package mahjong

// ResultStore 向听结果缓存，由调用方注入（见 common/cache）
type ResultStore interface {
	Get(key string) (ShantenResult, bool)
	Set(key string, value ShantenResult) bool
}

// Searcher 带缓存的向听计算，并发安全取决于 store 的实现
type Searcher struct {
	store ResultStore
}

// NewSearcher store 为 nil 时不缓存
func NewSearcher(store ResultStore) *Searcher {
	return &Searcher{store: store}
}

// Analyze 同 Analyze，命中缓存时返回副本，调用方可以随意修改
func (s *Searcher) Analyze(h Hand34) ShantenResult {
	if s.store == nil {
		return Analyze(h)
	}
	key := h.Key()
	if v, ok := s.store.Get(key); ok {
		return v.Clone()
	}
	res := Analyze(h)
	s.store.Set(key, res.Clone())
	return res
}

func (s *Searcher) Shanten(h Hand34) int {
	return s.Analyze(h).Distance
}

// Waits 13 张听牌时枚举和了牌，并按 visible 扣除已见张数计算进张
// 不听牌时返回 nil, 0
func (s *Searcher) Waits(h13 Hand34, visible *Hand34) ([]TileType, int) {
	var waits []TileType
	for t := 0; t < TileKinds; t++ {
		if h13[t] >= 4 {
			continue
		}
		work := h13
		work[t]++
		if s.Analyze(work).IsComplete() {
			waits = append(waits, TileType(t))
		}
	}
	return waits, ukeireByWaits(h13, waits, visible)
}

// Candidate 打出一张后的听牌情况
type Candidate struct {
	Discard TileType
	Waits   []TileType
	Ukeire  int
}

// SeekCandidates 14 张时，打出哪张可以听牌
func (s *Searcher) SeekCandidates(h14 Hand34, visible *Hand34) []Candidate {
	var out []Candidate
	for i := 0; i < TileKinds; i++ {
		if h14[i] == 0 {
			continue
		}
		h13 := h14
		h13[i]--
		waits, ukeire := s.Waits(h13, visible)
		if len(waits) == 0 {
			continue
		}
		out = append(out, Candidate{Discard: TileType(i), Waits: waits, Ukeire: ukeire})
	}
	return out
}

func ukeireByWaits(h13 Hand34, waits []TileType, visible *Hand34) int {
	ukeire := 0
	for _, t := range waits {
		add := 4 - int(h13[t])
		if visible != nil {
			add -= int(visible[t])
			if add < 0 {
				add = 0
			}
		}
		ukeire += add
	}
	return ukeire
}
