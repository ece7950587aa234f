package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRunCounters(t *testing.T) {
	run := NewRun()
	run.ObserveSection("accents", 4)
	run.ObserveSection("accents", 5)
	run.ObserveLookups(3)
	run.ObserveLookups(2)
	run.ObserveTemplate("written")
	run.ObserveTemplate("written")
	run.ObserveTemplate("unchanged")

	if got := testutil.ToFloat64(run.Slots.WithLabelValues("accents")); got != 5 {
		t.Errorf("slots = %v, want 5", got)
	}
	if got := testutil.ToFloat64(run.LookupsTotal); got != 5 {
		t.Errorf("lookups = %v, want 5", got)
	}
	if got := testutil.ToFloat64(run.TemplateTotal.WithLabelValues("written")); got != 2 {
		t.Errorf("written = %v, want 2", got)
	}
	if got := testutil.ToFloat64(run.TemplateTotal.WithLabelValues("unchanged")); got != 1 {
		t.Errorf("unchanged = %v, want 1", got)
	}
}

func TestRunsAreIndependent(t *testing.T) {
	a, b := NewRun(), NewRun()
	a.ObserveLookups(7)
	if got := testutil.ToFloat64(b.LookupsTotal); got != 0 {
		t.Errorf("second run saw %v lookups", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	run := NewRun()
	run.ObserveTemplate("checked")
	path := filepath.Join(t.TempDir(), "veneer.prom")
	if err := run.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`veneer_templates_total{result="checked"} 1`,
		"veneer_run_duration_seconds",
		"veneer_reference_lookups_total 0",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile lacks %q:\n%s", want, data)
		}
	}
}
