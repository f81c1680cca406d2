package analyzer

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"riichi/common/log"
	"riichi/engines/mahjong"
)

// Report 一手牌的分析结果
type Report struct {
	JobID    string
	Index    int
	Notation string
	Analyzed bool // 解析和校验通过，Shanten 有效
	Shanten  mahjong.ShantenResult
	Yaku     []YakuEntry
	TotalHan uint
	Waits    []mahjong.TileType
	Ukeire   int
	Err      error
}

type YakuEntry struct {
	Yaku mahjong.Yaku
	Han  uint
}

// Progress 运行中的计数，供 Monitor 读取
type Progress struct {
	Total     int64
	Processed int64
	Failed    int64
	Complete  int64
	Tenpai    int64
	Started   time.Time
}

type job struct {
	id    string
	index int
	line  string
}

// Runner 批量分析，多个 worker 共享同一个 Searcher
type Runner struct {
	searcher  *mahjong.Searcher
	base      mahjong.TableContext
	workers   int
	queueSize int
	rules     atomic.Pointer[mahjong.Rules]

	total, processed, failed, complete, tenpai atomic.Int64
	started                                    atomic.Pointer[time.Time]
}

type Options struct {
	Workers   int
	QueueSize int
	Rules     mahjong.Rules
	Table     mahjong.TableContext
}

func NewRunner(searcher *mahjong.Searcher, opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = opts.Workers * 2
	}
	r := &Runner{
		searcher:  searcher,
		base:      opts.Table,
		workers:   opts.Workers,
		queueSize: opts.QueueSize,
	}
	r.SetRules(opts.Rules)
	return r
}

// SetRules 配置热更新时调用，对之后处理的手牌生效
func (r *Runner) SetRules(rules mahjong.Rules) {
	r.rules.Store(&rules)
}

func (r *Runner) Rules() mahjong.Rules {
	return *r.rules.Load()
}

func (r *Runner) Progress() Progress {
	p := Progress{
		Total:     r.total.Load(),
		Processed: r.processed.Load(),
		Failed:    r.failed.Load(),
		Complete:  r.complete.Load(),
		Tenpai:    r.tenpai.Load(),
	}
	if s := r.started.Load(); s != nil {
		p.Started = *s
	}
	return p
}

// Process 并行分析，结果按输入顺序返回
// ctx 取消时返回已完成的部分和 ctx.Err()，未处理的行 Report 为零值
func (r *Runner) Process(ctx context.Context, lines []string) ([]Report, error) {
	now := time.Now()
	r.started.Store(&now)
	r.total.Add(int64(len(lines)))

	reports := make([]Report, len(lines))
	jobs := make(chan job, r.queueSize)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case j, ok := <-jobs:
					if !ok {
						return
					}
					// 每个 index 只由一个 worker 写入
					reports[j.index] = r.analyze(j)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, line := range lines {
			select {
			case jobs <- job{id: uuid.NewString(), index: i, line: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	if err := ctx.Err(); err != nil {
		log.Warn("批量分析被取消, 已完成 %d/%d", r.processed.Load(), len(lines))
		return reports, err
	}
	return reports, nil
}

// Analyze 单独分析一行，不计入进度
func (r *Runner) Analyze(line string) Report {
	return r.evaluate(job{id: uuid.NewString(), line: line})
}

func (r *Runner) analyze(j job) Report {
	rep := r.evaluate(j)
	r.processed.Add(1)
	if rep.Err != nil {
		log.Debug("job %s [%d] %q: %v", j.id, j.index, j.line, rep.Err)
	}
	// 役种判定的错误（如缺少和了牌）不影响向听结果，只有解析和校验失败算失败
	switch {
	case !rep.Analyzed:
		r.failed.Add(1)
	case rep.Shanten.IsComplete():
		r.complete.Add(1)
	case rep.Shanten.IsTenpai():
		r.tenpai.Add(1)
	}
	return rep
}

func (r *Runner) evaluate(j job) Report {
	rep := Report{JobID: j.id, Index: j.index, Notation: j.line}
	line, err := ParseLine(j.line, r.base)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Notation = line.Notation
	counts := line.Hand.Counts()
	if err := counts.Validate(); err != nil {
		rep.Err = err
		return rep
	}

	rep.Shanten = r.searcher.Analyze(counts)
	rep.Analyzed = true
	switch {
	case rep.Shanten.IsComplete():
		results, err := mahjong.Evaluate(rep.Shanten, line.Table, r.Rules())
		rep.Err = dropNotImplemented(err)
		for _, y := range results.Met() {
			rep.Yaku = append(rep.Yaku, YakuEntry{Yaku: y, Han: results[y].Han})
		}
		rep.TotalHan = results.TotalHan()
	case rep.Shanten.IsTenpai() && counts.Total() == 13:
		rep.Waits, rep.Ukeire = r.searcher.Waits(counts, nil)
	}
	return rep
}

// dropNotImplemented 未实现的役种不算错误
func dropNotImplemented(err error) error {
	if err == nil {
		return nil
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	var kept []error
	for _, e := range errs {
		var nie *mahjong.NotImplementedError
		if errors.As(e, &nie) {
			continue
		}
		kept = append(kept, e)
	}
	return errors.Join(kept...)
}
