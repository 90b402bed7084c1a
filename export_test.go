package keplerian

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config should be useless")
	}
	if (ExportConfig{Filename: "out", AsCSV: true}).IsUseless() {
		t.Fatal("CSV config should not be useless")
	}
}

func TestStreamStatesCSV(t *testing.T) {
	dir := t.TempDir()
	prevConfig, prevLoaded := config, cfgLoaded
	config, cfgLoaded = _keplerianconfig{outputDir: dir}, true
	defer func() { config, cfgLoaded = prevConfig, prevLoaded }()

	stateChan := make(chan State, 4)
	stateChan <- State{Tick: 0, M: 0.1, E: 0.2, Nu: 0.3, R: []float64{7000, 0, 0}}
	stateChan <- State{Tick: 10, M: 0.4, E: 0.5, Nu: 0.6, R: []float64{6999, 100, 0}}
	close(stateChan)
	StreamStates(ExportConfig{Filename: "test", AsCSV: true}, stateChan)

	content, err := os.ReadFile(fmt.Sprintf("%s/anomalies-test.csv", dir))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(content), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and two rows, got %d lines", len(lines))
	}
	if lines[0] != "tick,meanAnomaly,eccentricAnomaly,trueAnomaly,x,y,z" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.000000,0.100000,0.200000,0.300000,7000.000000") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestPropagateWithExport(t *testing.T) {
	dir := t.TempDir()
	prevConfig, prevLoaded := config, cfgLoaded
	config, cfgLoaded = _keplerianconfig{outputDir: dir}, true
	defer func() { config, cfgLoaded = prevConfig, prevLoaded }()

	b := circularBody(t, 7000)
	if _, err := NewPropagation(b, 0, 60, 10, ExportConfig{Filename: "prop", AsCSV: true}).Propagate(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(fmt.Sprintf("%s/anomalies-prop.csv", dir))
	if err != nil {
		t.Fatal(err)
	}
	// Header plus eleven samples (tick zero included).
	if got := len(strings.Split(string(content), "\n")); got != 12 {
		t.Fatalf("expected 12 lines, got %d", got)
	}
}

func TestPropagateErrorStopsExporter(t *testing.T) {
	dir := t.TempDir()
	prevConfig, prevLoaded := config, cfgLoaded
	config, cfgLoaded = _keplerianconfig{outputDir: dir}, true
	defer func() { config, cfgLoaded = prevConfig, prevLoaded }()

	// Escape velocity: the mean motion derivation fails on the first tick.
	b := quietBody("escape", []float64{7000, 0, 0}, []float64{0, 12, 0}, 0, Earth)
	b.SetEpoch(0, 0)
	p := NewPropagation(b, 0, 60, 10, ExportConfig{Filename: "err", AsCSV: true})
	if _, err := p.Propagate(); err == nil {
		t.Fatal("expected a failed propagation")
	}
	// A failed propagation must still release the exporter.
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("exporter still running after a failed propagation")
	}
}
