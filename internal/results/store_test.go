package results

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordlebot/internal/sim"
)

func TestInsertAndList(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	st := NewStore(db)
	ctx := context.Background()

	rep := sim.Report{
		Games:     100,
		MaxTurns:  6,
		Histogram: []int{1, 20, 45, 25, 7, 1},
		Unsolved:  1,
		WinRate:   0.99,
		AvgTurns:  3.4,
	}
	if err := st.InsertRun(ctx, "abcd1234abcd1234", 42, true, rep); err != nil {
		t.Fatal(err)
	}
	if err := st.InsertRun(ctx, "abcd1234abcd1234", 43, false, rep); err != nil {
		t.Fatal(err)
	}

	runs, err := st.ListRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d rows", len(runs))
	}
	// Newest first.
	if runs[0].Seed != 43 || runs[1].Seed != 42 {
		t.Errorf("order: got seeds %d, %d", runs[0].Seed, runs[1].Seed)
	}
	if !runs[1].HardMode || runs[0].HardMode {
		t.Errorf("hard mode flags: %v, %v", runs[0].HardMode, runs[1].HardMode)
	}
	if diff := cmp.Diff(rep.Histogram, runs[0].Histogram); diff != "" {
		t.Errorf("histogram round trip (-want +got):\n%s", diff)
	}
	if runs[0].WinRate != 0.99 || runs[0].Games != 100 {
		t.Errorf("row = %+v", runs[0])
	}
}

func TestListLimit(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	st := NewStore(db)
	ctx := context.Background()
	rep := sim.Report{Games: 1, MaxTurns: 6, Histogram: []int{1, 0, 0, 0, 0, 0}, WinRate: 1, AvgTurns: 1}
	for i := 0; i < 5; i++ {
		if err := st.InsertRun(ctx, "d", int64(i), false, rep); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := st.ListRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("limit ignored: %d rows", len(runs))
	}
}
