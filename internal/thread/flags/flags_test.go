package flags

import "testing"

// TestWorkerPriorityDefault verifies the sentinel is returned when no
// override is configured.
func TestWorkerPriorityDefault(t *testing.T) {
	// The test process is not started with OSTHREAD_WORKER_PRIORITY set,
	// and no other test in this package may leave an override behind.
	SetWorkerPriority(PriorityUnset)

	if got := WorkerPriority(); got != PriorityUnset {
		t.Fatalf("WorkerPriority() = %d, want PriorityUnset (%d)", got, PriorityUnset)
	}
}

// TestSetWorkerPriority verifies programmatic overrides round-trip.
func TestSetWorkerPriority(t *testing.T) {
	defer SetWorkerPriority(PriorityUnset)

	tests := []struct {
		name     string
		priority int
	}{
		{"negative niceness", -10},
		{"zero", 0},
		{"positive niceness", 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetWorkerPriority(tt.priority)
			if got := WorkerPriority(); got != tt.priority {
				t.Errorf("WorkerPriority() = %d, want %d", got, tt.priority)
			}
		})
	}
}

// TestMaxThreads verifies the cap setter clamps negatives to unlimited.
func TestMaxThreads(t *testing.T) {
	defer SetMaxThreads(0)

	tests := []struct {
		name string
		in   int
		want int
	}{
		{"unlimited", 0, 0},
		{"small cap", 4, 4},
		{"negative clamps to unlimited", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetMaxThreads(tt.in)
			if got := MaxThreads(); got != tt.want {
				t.Errorf("MaxThreads() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestParseEnvInt exercises the environment parsing helper.
func TestParseEnvInt(t *testing.T) {
	const key = "OSTHREAD_TEST_ENV_INT"

	tests := []struct {
		name   string
		value  string
		set    bool
		want   int64
		wantOK bool
	}{
		{"unset", "", false, 0, false},
		{"empty", "", true, 0, false},
		{"valid", "-5", true, -5, true},
		{"garbage", "high", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(key, tt.value)
			}
			got, ok := parseEnvInt(key)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseEnvInt(%q) = (%d, %v), want (%d, %v)",
					tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
