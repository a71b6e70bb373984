package spacerun

import "testing"

func TestTimersOneShot(t *testing.T) {
	tm := NewTimers()
	fired := 0
	tm.After("reset", 5, func(float64) { fired++ })

	if n := tm.Run(4.99); n != 0 || fired != 0 {
		t.Fatalf("timer fired early: n=%d", n)
	}
	if n := tm.Run(5); n != 1 || fired != 1 {
		t.Fatalf("timer should fire at its deadline, n=%d fired=%d", n, fired)
	}
	tm.Run(100)
	if fired != 1 {
		t.Errorf("one-shot timer fired %d times", fired)
	}
	if tm.Len() != 0 {
		t.Errorf("Len() = %d after firing, expected 0", tm.Len())
	}
}

func TestTimersArmReplacesPendingEntry(t *testing.T) {
	tm := NewTimers()
	var log []string
	tm.After("reset", 5, func(float64) { log = append(log, "first") })
	tm.After("reset", 8, func(float64) { log = append(log, "second") })

	if tm.Len() != 1 {
		t.Fatalf("re-arming should keep one entry, Len() = %d", tm.Len())
	}
	if due, _ := tm.Due("reset"); due != 8 {
		t.Errorf("Due() = %f, expected 8", due)
	}

	tm.Run(6)
	if len(log) != 0 {
		t.Errorf("replaced entry fired: %v", log)
	}
	tm.Run(8)
	if len(log) != 1 || log[0] != "second" {
		t.Errorf("fired = %v, expected [second]", log)
	}
}

func TestTimersCancel(t *testing.T) {
	tm := NewTimers()
	tm.After("a", 1, func(float64) { t.Error("cancelled timer fired") })

	if !tm.Cancel("a") {
		t.Fatal("Cancel should report the pending entry")
	}
	if tm.Cancel("a") {
		t.Error("second Cancel should report nothing pending")
	}
	tm.Run(10)
}

func TestTimersFireInDeadlineOrder(t *testing.T) {
	tm := NewTimers()
	var order []string
	tm.After("late", 3, func(float64) { order = append(order, "late") })
	tm.After("early", 1, func(float64) { order = append(order, "early") })
	tm.After("tie", 1, func(float64) { order = append(order, "tie") })

	tm.Run(5)

	expected := []string{"early", "tie", "late"}
	for i := range expected {
		if i >= len(order) || order[i] != expected[i] {
			t.Fatalf("order = %v, expected %v", order, expected)
		}
	}
}

func TestTimersRepeatAndCatchUp(t *testing.T) {
	tm := NewTimers()
	fired := 0
	tm.Every("tick", 0, 0.25, func(float64) { fired++ })

	tm.Run(0.2)
	if fired != 0 {
		t.Errorf("repeating timer fired before its first interval")
	}
	tm.Run(0.5)
	if fired != 2 {
		t.Errorf("fired = %d after 0.5s at 0.25s interval, expected 2", fired)
	}

	// A long stall is capped and the backlog dropped.
	tm.Run(100)
	if fired != 2+maxCatchUp {
		t.Errorf("fired = %d after stall, expected %d", fired, 2+maxCatchUp)
	}
	if due, _ := tm.Due("tick"); due != 100.25 {
		t.Errorf("Due() after stall = %f, expected 100.25", due)
	}
}

func TestTimersCallbackMayRearm(t *testing.T) {
	tm := NewTimers()
	fired := 0
	var rearm func(now float64)
	rearm = func(now float64) {
		fired++
		tm.After("chain", now+1, rearm)
	}
	tm.After("chain", 1, rearm)

	tm.Run(1)
	tm.Run(1.5)
	tm.Run(2)
	if fired != 2 {
		t.Errorf("chained timer fired %d times, expected 2", fired)
	}
}

func TestTimersRejectNonPositiveInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every with zero interval should panic")
		}
	}()
	NewTimers().Every("bad", 0, 0, func(float64) {})
}
