package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunResult{
		{GameID: "spacerun", Score: 100, Duration: 30 * time.Second, Seed: 1},
		{GameID: "spacerun", Score: 50, Duration: 10 * time.Second, Seed: 2},
		{GameID: "spacerun", Score: 200, Duration: 90 * time.Second, Seed: 3, Difficulty: "hard"},
		{GameID: "spacerun_timed", Score: 500, Duration: time.Minute, Seed: 4},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("spacerun", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, score := range expected {
		if top[i].Score != score {
			t.Errorf("run %d score = %d, expected %d", i, top[i].Score, score)
		}
	}
	if top[0].Duration != 90*time.Second || top[0].Seed != 3 || top[0].Difficulty != "hard" {
		t.Errorf("best run = %+v", top[0])
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		//nolint:errcheck // test fixture
		store.SaveRun(RunResult{GameID: "spacerun", Score: 10, Duration: time.Duration(i) * time.Second})
	}

	top, err := store.TopRuns("spacerun", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Duration != 14*time.Second {
		t.Errorf("ties should prefer the longer run, got %v", top[0].Duration)
	}

	all, err := store.TopRuns("spacerun", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("default limit should be 10, got %d", len(all))
	}
}

func TestStoreNegativeScores(t *testing.T) {
	store := openTestStore(t)

	//nolint:errcheck // test fixture
	store.SaveRun(RunResult{GameID: "spacerun", Score: -10})

	sum, err := store.Summarize("spacerun")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Best != -10 {
		t.Errorf("best = %d, expected -10", sum.Best)
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summarize("spacerun")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("empty summary = %+v", sum)
	}

	//nolint:errcheck // test fixture
	store.SaveRun(RunResult{GameID: "spacerun", Score: 30, Duration: 2 * time.Second})
	//nolint:errcheck // test fixture
	store.SaveRun(RunResult{GameID: "spacerun", Score: 10, Duration: 3 * time.Second})

	sum, err = store.Summarize("spacerun")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 2 || sum.Best != 30 || sum.Average != 20 || sum.PlayTime != 5*time.Second {
		t.Errorf("summary = %+v", sum)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	//nolint:errcheck // test fixture
	a.SaveRun(RunResult{GameID: "spacerun", Score: 10})

	runs, err := b.TopRuns("spacerun", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("separate sessions should not share runs, got %d", len(runs))
	}
}
