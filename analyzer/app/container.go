package app

import (
	"riichi/analyzer"
	"riichi/common/cache"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/engines/mahjong"
)

// Container 组装批处理需要的依赖
type Container struct {
	Config   *config.Config
	Cache    *cache.Cache[mahjong.ShantenResult]
	Searcher *mahjong.Searcher
	Runner   *analyzer.Runner
}

func RulesFromConfig(cfg *config.Config) mahjong.Rules {
	return mahjong.Rules{OpenAllSimples: cfg.Rules.OpenAllSimples}
}

// NewContainer table 为命令行给出的默认场况
func NewContainer(cfg *config.Config, table mahjong.TableContext) (*Container, error) {
	c := &Container{Config: cfg}

	var store mahjong.ResultStore
	if cfg.Cache.Enabled {
		rc, err := cache.New[mahjong.ShantenResult](cache.Options{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
			BufferItems: cfg.Cache.BufferItems,
			TTL:         cfg.Cache.TTL,
			Metrics:     true,
		})
		if err != nil {
			return nil, err
		}
		c.Cache = rc
		store = rc
		log.Debug("向听缓存已创建, maxCost=%d", cfg.Cache.MaxCost)
	}
	c.Searcher = mahjong.NewSearcher(store)

	workers := cfg.Batch.Workers
	if workers <= 0 {
		workers = analyzer.DefaultWorkers()
	}
	c.Runner = analyzer.NewRunner(c.Searcher, analyzer.Options{
		Workers:   workers,
		QueueSize: cfg.Batch.QueueSize,
		Rules:     RulesFromConfig(cfg),
		Table:     table,
	})
	return c, nil
}

// CacheStats 未启用缓存时为 nil
func (c *Container) CacheStats() func() (uint64, uint64) {
	if c.Cache == nil {
		return nil
	}
	return c.Cache.Stats
}

func (c *Container) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}
