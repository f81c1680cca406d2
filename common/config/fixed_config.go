package config

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"riichi/common/log"
)

const envPrefix = "RIICHI"

type Config struct {
	AppName    string    `mapstructure:"appName"`
	Log        LogConf   `mapstructure:"log"`
	MetricPort int       `mapstructure:"metricPort"`
	Rules      RulesConf `mapstructure:"rules"`
	Cache      CacheConf `mapstructure:"cache"`
	Batch      BatchConf `mapstructure:"batch"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// RulesConf 规则开关，支持热更新
type RulesConf struct {
	OpenAllSimples bool `mapstructure:"openAllSimples"`
}

type CacheConf struct {
	Enabled     bool          `mapstructure:"enabled"`
	NumCounters int64         `mapstructure:"numCounters"`
	MaxCost     int64         `mapstructure:"maxCost"`
	BufferItems int64         `mapstructure:"bufferItems"`
	TTL         time.Duration `mapstructure:"ttl"`
}

type BatchConf struct {
	Workers        int           `mapstructure:"workers"` // 0 表示按 CPU 核数
	QueueSize      int           `mapstructure:"queueSize"`
	ReportInterval time.Duration `mapstructure:"reportInterval"`
}

var defaults = map[string]any{
	"appName":              "riichi",
	"log.level":            "info",
	"log.path":             "",
	"metricPort":           0,
	"rules.openAllSimples": true,
	"cache.enabled":        true,
	"cache.numCounters":    int64(1e6),
	"cache.maxCost":        int64(1 << 17),
	"cache.bufferItems":    int64(64),
	"cache.ttl":            time.Duration(0),
	"batch.workers":        0,
	"batch.queueSize":      1024,
	"batch.reportInterval": 5 * time.Second,
}

var (
	current atomic.Pointer[Config]

	hooksMu sync.Mutex
	hooks   []func(*Config)
)

// Current 最近一次成功加载的配置，未加载时返回默认值
func Current() *Config {
	if c := current.Load(); c != nil {
		return c
	}
	c, _ := decode(newViper())
	return c
}

// OnChange 配置文件变化并解析成功后回调
func OnChange(fn func(*Config)) {
	hooksMu.Lock()
	hooks = append(hooks, fn)
	hooksMu.Unlock()
}

// Load 读取配置文件，环境变量 RIICHI_BATCH_WORKERS 这样的形式可以覆盖
// configFile 为空时只使用默认值和环境变量
func Load(configFile string) (*Config, error) {
	_, cfg, err := load(configFile)
	return cfg, err
}

// InitConfig 加载并监听配置文件，解析失败直接退出
func InitConfig(configFile string) *Config {
	v, cfg, err := load(configFile)
	if err != nil {
		log.Fatal("读取配置文件出错, err:%v", err)
	}
	current.Store(cfg)
	if configFile != "" {
		v.OnConfigChange(func(in fsnotify.Event) {
			reload(v, in)
		})
		v.WatchConfig()
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func load(configFile string) (*viper.Viper, *Config, error) {
	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", configFile, err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件出错: %w", err)
	}
	return cfg, nil
}

// reload viper 已经重新读取了文件，这里只负责解析和通知
func reload(v *viper.Viper, in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
		return
	}
	cfg, err := decode(v)
	if err != nil {
		log.Warn("配置热更新失败, 保留旧配置: %v", err)
		return
	}
	current.Store(cfg)
	log.Info("配置已更新: %s", in.Name)

	hooksMu.Lock()
	fns := slices.Clone(hooks)
	hooksMu.Unlock()
	for _, fn := range fns {
		fn(cfg)
	}
}
