package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"riichi/common/config"
	"riichi/engines/mahjong"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Batch.Workers = 2
	return cfg
}

func TestRunBatch(t *testing.T) {
	in := strings.NewReader(`
# comment
123456789m78p22z 9p
123m456p789s23s55m

bad
`)
	var out bytes.Buffer
	if err := RunBatch(context.Background(), testConfig(t), mahjong.TableContext{}, in, &out); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Straight 2",
		"waits: 1s 4s (ukeire 8)",
		"error:",
		"# processed=3 failed=1 complete=1 tenpai=1",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunOne_CacheDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	var out bytes.Buffer
	table := mahjong.TableContext{HasClaimedReady: true}
	if err := RunOne(cfg, table, "123m456p789s23s55m 4s", &out); err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if !strings.Contains(out.String(), "ReadyHand 1") || !strings.Contains(out.String(), "NoPointsHand 1") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestFormatDecomposition(t *testing.T) {
	h, err := mahjong.ParseHand("123m444p789s1112z 2z")
	if err != nil {
		t.Fatalf("ParseHand: %v", err)
	}
	got := FormatDecomposition(mahjong.Analyze(h.Counts()).Decomposition)
	if !strings.Contains(got, "[22z]") || !strings.Contains(got, "444p") {
		t.Fatalf("unexpected decomposition %q", got)
	}
}

func TestRunShanten(t *testing.T) {
	var out bytes.Buffer
	if err := RunShanten(testConfig(t), "123m456p789s23s55m", &out); err != nil {
		t.Fatalf("RunShanten: %v", err)
	}
	if !strings.Contains(out.String(), "best: 0 (standard)") || !strings.Contains(out.String(), "waits: 1s 4s (ukeire 8)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	// 打 9p 听 1s 4s
	if err := RunShanten(testConfig(t), "123m456p789s23s55m 9p", &out); err != nil {
		t.Fatalf("RunShanten: %v", err)
	}
	if !strings.Contains(out.String(), "discard 9p: waits 1s 4s (ukeire 8)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	if err := RunShanten(testConfig(t), "123m", &out); err == nil {
		t.Fatalf("expected error for a short hand")
	}
}

func TestWriteShanten_UsesConfiguredCache(t *testing.T) {
	c, err := NewContainer(testConfig(t), mahjong.TableContext{})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer c.Close()
	if c.Cache == nil {
		t.Fatalf("cache should be enabled by default")
	}

	var out bytes.Buffer
	if err := writeShanten(c.Searcher, "123m456p789s23s55m", &out); err != nil {
		t.Fatalf("writeShanten: %v", err)
	}
	c.Cache.Wait()
	if err := writeShanten(c.Searcher, "123m456p789s23s55m", &out); err != nil {
		t.Fatalf("writeShanten: %v", err)
	}
	if hits, _ := c.Cache.Stats(); hits == 0 {
		t.Fatalf("expected cache hits on the second run")
	}
}
