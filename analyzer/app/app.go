package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"riichi/analyzer"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/common/metrics"
	"riichi/engines/mahjong"
)

// RunBatch 逐行读取 in，分析后写到 out；空行和 # 开头的行跳过
func RunBatch(ctx context.Context, cfg *config.Config, table mahjong.TableContext, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := NewContainer(cfg, table)
	if err != nil {
		return err
	}
	defer c.Close()

	config.OnChange(func(next *config.Config) {
		c.Runner.SetRules(RulesFromConfig(next))
		log.SetLevel(next.Log.Level)
	})

	if cfg.MetricPort > 0 {
		go func() {
			addr := fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)
			log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
			if err := metrics.Serve(ctx, addr); err != nil {
				log.Error("监控服务退出: %v", err)
			}
		}()
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}
	log.Info("批量分析开始, %d 手牌", len(lines))

	monitor := analyzer.NewMonitor(c.Runner.Progress, c.CacheStats(), cfg.Batch.ReportInterval)
	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		monitor.Start(ctx)
	}()

	reports, procErr := c.Runner.Process(ctx, lines)
	monitor.Stop()
	<-monitorDone

	w := bufio.NewWriter(out)
	for _, rep := range reports {
		if rep.JobID == "" {
			continue
		}
		WriteReport(w, rep)
	}
	p := c.Runner.Progress()
	fmt.Fprintf(w, "# processed=%d failed=%d complete=%d tenpai=%d\n", p.Processed, p.Failed, p.Complete, p.Tenpai)
	if err := w.Flush(); err != nil {
		return err
	}
	return procErr
}

// RunOne 分析单手牌，供 shanten/yaku 子命令使用
func RunOne(cfg *config.Config, table mahjong.TableContext, line string, out io.Writer) error {
	c, err := NewContainer(cfg, table)
	if err != nil {
		return err
	}
	defer c.Close()
	rep := c.Runner.Analyze(line)
	WriteReport(out, rep)
	return rep.Err
}

// RunShanten 输出三种和牌形各自的向听与拆解，听牌时列出听牌，14 张时列出可打的牌
func RunShanten(cfg *config.Config, notation string, out io.Writer) error {
	c, err := NewContainer(cfg, mahjong.TableContext{})
	if err != nil {
		return err
	}
	defer c.Close()
	return writeShanten(c.Searcher, notation, out)
}

func writeShanten(searcher *mahjong.Searcher, notation string, out io.Writer) error {
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return err
	}
	counts := h.Counts()
	if err := counts.Validate(); err != nil {
		return err
	}
	for _, form := range []mahjong.Form{mahjong.FormStandard, mahjong.FormSevenPairs, mahjong.FormThirteenOrphans} {
		res := mahjong.AnalyzeForm(counts, form)
		fmt.Fprintf(out, "%-16s %2d  %s\n", form, res.Distance, FormatDecomposition(res.Decomposition))
	}
	best := searcher.Analyze(counts)
	fmt.Fprintf(out, "best: %d (%s)\n", best.Distance, best.Form)
	switch {
	case counts.Total() == 13 && best.IsTenpai():
		waits, ukeire := searcher.Waits(counts, nil)
		fmt.Fprintf(out, "waits: %s (ukeire %d)\n", formatTiles(waits), ukeire)
	case counts.Total() == 14 && !best.IsComplete():
		for _, cand := range searcher.SeekCandidates(counts, nil) {
			fmt.Fprintf(out, "discard %s: waits %s (ukeire %d)\n", cand.Discard, formatTiles(cand.Waits), cand.Ukeire)
		}
	}
	return nil
}

func formatTiles(tiles []mahjong.TileType) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func readLines(in io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// WriteReport 文本输出，一手牌多行
func WriteReport(w io.Writer, rep analyzer.Report) {
	fmt.Fprintf(w, "%s\n", rep.Notation)
	if !rep.Analyzed {
		fmt.Fprintf(w, "  error: %v\n", rep.Err)
		return
	}
	res := rep.Shanten
	fmt.Fprintf(w, "  shanten: %d (%s) %s\n", res.Distance, res.Form, FormatDecomposition(res.Decomposition))
	if len(rep.Waits) > 0 {
		fmt.Fprintf(w, "  waits: %s (ukeire %d)\n", formatTiles(rep.Waits), rep.Ukeire)
	}
	if res.IsComplete() {
		parts := make([]string, len(rep.Yaku))
		for i, y := range rep.Yaku {
			parts[i] = fmt.Sprintf("%s %d", y.Yaku, y.Han)
		}
		fmt.Fprintf(w, "  yaku: %s (total %d)\n", strings.Join(parts, ", "), rep.TotalHan)
	}
	if rep.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", rep.Err)
	}
}

func FormatDecomposition(d mahjong.Decomposition) string {
	var parts []string
	for _, b := range d.Melds {
		parts = append(parts, b.String())
	}
	for _, b := range d.Pairs {
		parts = append(parts, "["+b.String()+"]")
	}
	for _, b := range d.Partials {
		parts = append(parts, "("+b.String()+")")
	}
	if len(d.Singles) > 0 {
		parts = append(parts, "+"+mahjong.Hand34FromTiles(d.Singles).String())
	}
	return strings.Join(parts, " ")
}
