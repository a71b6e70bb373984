package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacerun/internal/core"
	"github.com/vovakirdan/spacerun/internal/games/spacerun"
	"github.com/vovakirdan/spacerun/internal/storage"
)

func simConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := simulate(spacerun.New(), simConfig(7), 1800, true)
	b := simulate(spacerun.New(), simConfig(7), 1800, true)

	if a.Snapshot.Hash() != b.Snapshot.Hash() {
		t.Errorf("same seed produced different runs: %x vs %x", a.Snapshot.Hash(), b.Snapshot.Hash())
	}
	if a.Ticks != b.Ticks {
		t.Errorf("tick counts differ: %d vs %d", a.Ticks, b.Ticks)
	}
}

func TestSimulateStopsAtLimit(t *testing.T) {
	out := simulate(spacerun.New(), simConfig(3), 30, false)

	if out.Ticks > 30 {
		t.Errorf("simulated %d ticks, limit was 30", out.Ticks)
	}
	if out.Elapsed > 0.5+1e-9 {
		t.Errorf("elapsed = %.3f, expected at most 0.5", out.Elapsed)
	}
}

func TestAutopilotPointer(t *testing.T) {
	cfg := simConfig(1)

	first := autopilotPointer(0, cfg)
	if first.Kind != core.PointerPress || first.X != 40 || first.Y != 21 {
		t.Errorf("first pointer = %+v, expected press at (40, 21)", first)
	}
	for tick := 1; tick < 600; tick += 37 {
		p := autopilotPointer(tick, cfg)
		if p.Kind != core.PointerDrag {
			t.Fatalf("tick %d: kind = %v, expected drag", tick, p.Kind)
		}
		if p.X < 0 || p.X >= cfg.ScreenW {
			t.Errorf("tick %d: x = %d outside the screen", tick, p.X)
		}
	}
}

func TestRenderOutcomes(t *testing.T) {
	out := simulate(spacerun.New(), simConfig(11), 10, false)
	rendered := renderOutcomes([]simOutcome{out})

	for _, want := range []string{"Seed", "Score", "11", "alive"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestRecordOutcome(t *testing.T) {
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	var buf bytes.Buffer
	logger := log.New(&buf)

	out := simulate(spacerun.New(), simConfig(4), 10, false)
	recordOutcome(store, logger, "spacerun", 1, out)

	sum, err := store.Summarize("spacerun")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 1 {
		t.Errorf("runs = %d, expected 1", sum.Runs)
	}
	if buf.Len() != 0 {
		t.Errorf("a successful save should not log:\n%s", buf.String())
	}

	store.Close()
	recordOutcome(store, logger, "spacerun", 2, out)
	if !strings.Contains(buf.String(), "cannot record run") {
		t.Errorf("a failed save should be logged, got:\n%s", buf.String())
	}
}
