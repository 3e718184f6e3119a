package main

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := *cfg
	bad.ListenPort = 0
	if err := bad.Validate(); err == nil {
		t.Errorf("zero listen port should be rejected")
	}

	bad = *cfg
	bad.MaxBatchSize = 1
	if err := bad.Validate(); err == nil {
		t.Errorf("max_batch_size of 1 should be rejected")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, 1, time.Hour)
	if !rl.Allow() || !rl.Allow() {
		t.Fatalf("first two requests should be allowed")
	}
	if rl.Allow() {
		t.Errorf("third request should be rejected before refill")
	}
	if rl.Tokens() != 0 {
		t.Errorf("tokens = %d, want 0", rl.Tokens())
	}
}

func TestClientRateLimiterIsolation(t *testing.T) {
	crl := NewClientRateLimiter(1, 1, time.Hour)
	if !crl.Allow("a") {
		t.Fatalf("first request from client a should be allowed")
	}
	if crl.Allow("a") {
		t.Errorf("second request from client a should be rejected")
	}
	if !crl.Allow("b") {
		t.Errorf("client b should not share client a's bucket")
	}
}

func TestMetricsCollector(t *testing.T) {
	mc := NewMetricsCollector()
	mc.IncrementCounter("prove_requests_total")
	mc.IncrementCounter("prove_requests_total")
	mc.SetGauge("batch_size", 4)
	mc.ObserveDuration("prove_duration_seconds", 20*time.Millisecond)

	snapshot := mc.Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("snapshot size = %d, want 3", len(snapshot))
	}
	for _, m := range snapshot {
		if m.Name == "prove_requests_total" && m.Value != 2 {
			t.Errorf("counter value = %v, want 2", m.Value)
		}
	}
}
