package analyzer

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"riichi/common/log"
)

// LoadInfo 一次采样
type LoadInfo struct {
	Progress
	CPUUsage  float64
	MemUsage  float64
	Rate      float64 // 每秒处理手牌数
	CacheHits uint64
	CacheMiss uint64
}

// HitRatio 缓存命中率，没有访问时为 0
func (l LoadInfo) HitRatio() float64 {
	total := l.CacheHits + l.CacheMiss
	if total == 0 {
		return 0
	}
	return float64(l.CacheHits) / float64(total)
}

// Monitor 定期输出批处理进度和机器负载
type Monitor struct {
	progress       func() Progress
	cacheStats     func() (uint64, uint64)
	updateInterval time.Duration
	stopCh         chan struct{}
}

// NewMonitor cacheStats 可以为 nil
func NewMonitor(progress func() Progress, cacheStats func() (uint64, uint64), updateInterval time.Duration) *Monitor {
	if updateInterval <= 0 {
		updateInterval = 5 * time.Second
	}
	return &Monitor{
		progress:       progress,
		cacheStats:     cacheStats,
		updateInterval: updateInterval,
		stopCh:         make(chan struct{}),
	}
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.report()
			return
		case <-m.stopCh:
			m.report()
			return
		case <-ticker.C:
			m.report()
		}
	}
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) report() {
	info := m.Collect()
	log.Info("Monitor 进度: %d/%d, 失败=%d, 和了=%d, 听牌=%d, %.0f 手/秒, 缓存命中率=%.2f, CPU=%.2f%%, Mem=%.2f%%",
		info.Processed, info.Total, info.Failed, info.Complete, info.Tenpai,
		info.Rate, info.HitRatio(), info.CPUUsage, info.MemUsage)
}

// Collect 采样一次，CPU 与内存取系统整体使用率
func (m *Monitor) Collect() LoadInfo {
	info := LoadInfo{
		Progress: m.progress(),
		CPUUsage: cpuUsage(),
		MemUsage: memUsage(),
	}
	if !info.Started.IsZero() {
		if elapsed := time.Since(info.Started).Seconds(); elapsed > 0 {
			info.Rate = float64(info.Processed) / elapsed
		}
	}
	if m.cacheStats != nil {
		info.CacheHits, info.CacheMiss = m.cacheStats()
	}
	return info
}

func cpuUsage() float64 {
	// interval 为 0 时与上次调用比较，不阻塞
	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return 0
	}
	return percents[0]
}

func memUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0
	}
	return vm.UsedPercent
}

// DefaultWorkers 逻辑核数，取不到时用 GOMAXPROCS
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
