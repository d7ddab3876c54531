package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeClock сдвигается на step при каждом вызове.
func fakeClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	cur := time.Unix(0, 0)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	lex := tm.Begin("lex")
	tm.End(lex, "")
	done := tm.Track("parse")
	done("3 decls")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "lex" || rep.Phases[1].Name != "parse" {
		t.Fatalf("order = %+v", rep.Phases)
	}
	if rep.Phases[1].Note != "3 decls" {
		t.Errorf("note = %q", rep.Phases[1].Note)
	}
	if rep.Phases[0].DurationMS != 1 || rep.TotalMS != 2 {
		t.Errorf("durations = %+v total %v", rep.Phases, rep.TotalMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)
	tm.Track("render")("go")

	want := "timings:\n" +
		"  render                  2.00 ms  // go\n" +
		"  total                   2.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Errorf("summary:\n%s\nwant:\n%s", got, want)
	}
}

func TestTimerIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(-1, "x")
	tm.End(5, "x")
	if tm.Len() != 0 {
		t.Fatalf("len = %d", tm.Len())
	}
	if rep := tm.Report(); rep.Phases != nil || rep.TotalMS != 0 {
		t.Errorf("empty report = %+v", rep)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("parse")("")
	if tm.Len() != 0 {
		t.Fatal("nil timer must stay empty")
	}
	if !strings.HasPrefix(tm.Summary(), "timings:\n") {
		t.Errorf("summary = %q", tm.Summary())
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("file")("")
		}()
	}
	wg.Wait()
	if tm.Len() != 16 {
		t.Errorf("len = %d, want 16", tm.Len())
	}
}
