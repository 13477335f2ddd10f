//go:build unit
// +build unit

package prommetrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm, err := New(reg, "vortex", "emailorphone")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	pm.ObserveVerdict("email_regex")
	pm.ObserveVerdict("email_regex")
	pm.ObserveVerdict("rejected")
	pm.IncMatchError("phone")

	if got, want := testutil.ToFloat64(pm.verdicts.WithLabelValues("email_regex")), 2.0; got != want {
		t.Fatalf("verdict_total{email_regex}=%v want %v", got, want)
	}
	if got, want := testutil.ToFloat64(pm.verdicts.WithLabelValues("rejected")), 1.0; got != want {
		t.Fatalf("verdict_total{rejected}=%v want %v", got, want)
	}
	if got, want := testutil.ToFloat64(pm.matchErrors.WithLabelValues("phone")), 1.0; got != want {
		t.Fatalf("match_errors_total{phone}=%v want %v", got, want)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("reg.Gather err: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, n := range []string{"vortex_emailorphone_verdict_total", "vortex_emailorphone_match_errors_total"} {
		if !names[n] {
			t.Fatalf("metric %q not gathered", n)
		}
	}
}

func TestPromMetrics_NilRegisterer(t *testing.T) {
	if _, err := New(nil, "vortex", "emailorphone"); err == nil {
		t.Fatalf("expected error for nil registerer")
	}
}

func TestPromMetrics_SameRegistryTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg, "vortex", "emailorphone"); err != nil {
		t.Fatalf("first New() error: %v", err)
	}
	if _, err := New(reg, "vortex", "emailorphone"); err != nil {
		t.Fatalf("second New() should tolerate AlreadyRegisteredError, got %v", err)
	}
}
