package goid

import (
	"sync"
	"testing"
)

// TestParseGID tests goroutine id parsing from stack trace headers.
func TestParseGID(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want int64
	}{
		{"typical header", "goroutine 123 [running]:\nmain.main()", 123},
		{"single digit", "goroutine 7 [running]:", 7},
		{"large id", "goroutine 18446744073 [running]:", 18446744073},
		{"empty buffer", "", 0},
		{"short buffer", "gorout", 0},
		{"wrong prefix", "panic: goroutine 5", 0},
		{"no digits", "goroutine [running]:", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseGID([]byte(tt.buf)); got != tt.want {
				t.Errorf("parseGID(%q) = %d, want %d", tt.buf, got, tt.want)
			}
		})
	}
}

// TestCurrent verifies that Current returns a positive, stable id.
func TestCurrent(t *testing.T) {
	id := Current()
	if id <= 0 {
		t.Fatalf("Current() = %d, want > 0", id)
	}

	// The id must not change between calls on the same goroutine.
	if again := Current(); again != id {
		t.Errorf("Current() unstable: first %d, then %d", id, again)
	}
}

// TestCurrentDistinctAcrossGoroutines verifies ids differ between goroutines.
func TestCurrentDistinctAcrossGoroutines(t *testing.T) {
	const n = 32

	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{}, n+1)
		wg  sync.WaitGroup
	)

	ids[Current()] = struct{}{}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := Current()
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != n+1 {
		t.Errorf("expected %d distinct goroutine ids, got %d", n+1, len(ids))
	}
}
