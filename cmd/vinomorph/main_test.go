package main

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with the given args and returns its
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestStatesCommand(t *testing.T) {
	out, err := execute(t, "states")
	if err != nil {
		t.Fatalf("states: %v\n%s", err, out)
	}
	for _, want := range []string{"young_burgundy", "riesling_crystal", "structure_toggle"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in states output:\n%s", want, out)
		}
	}
}

func TestTrajectoryCommand(t *testing.T) {
	out, err := execute(t, "trajectory", "mosel_riesling", "napa_cabernet", "--steps", "20", "--markdown")
	if err != nil {
		t.Fatalf("trajectory: %v\n%s", err, out)
	}
	if !strings.Contains(out, "dominant: textural_weight") {
		t.Errorf("expected dominant axis footer in output:\n%s", out)
	}
}

func TestTrajectoryCommand_UnknownState(t *testing.T) {
	out, err := execute(t, "trajectory", "no_such_state", "napa_cabernet")
	if err == nil {
		t.Fatalf("expected error for unknown state, got:\n%s", out)
	}
	if !strings.Contains(err.Error(), "no_such_state") {
		t.Errorf("error should name the unknown state: %v", err)
	}
}

func TestPresetCommand(t *testing.T) {
	out, err := execute(t, "preset", "structure_toggle")
	if err != nil {
		t.Fatalf("preset: %v\n%s", err, out)
	}
	if !strings.Contains(out, "0.0000") || !strings.Contains(out, "1.0000") {
		t.Errorf("square preset output should contain both blend extremes:\n%s", out)
	}
}

func TestKeyframesCommand(t *testing.T) {
	out, err := execute(t, "keyframes", "structure_toggle", "--count", "4")
	if err != nil {
		t.Fatalf("keyframes: %v\n%s", err, out)
	}
	if !strings.Contains(out, "blend") && !strings.Contains(out, "BLEND") {
		t.Errorf("expected sequence table in output:\n%s", out)
	}
}

func TestNearestCommand(t *testing.T) {
	out, err := execute(t, "nearest", "mosel_riesling")
	if err != nil {
		t.Fatalf("nearest: %v\n%s", err, out)
	}
	if !strings.Contains(out, "riesling_crystal") {
		t.Errorf("expected riesling_crystal classification:\n%s", out)
	}
}

func TestVocabCommand(t *testing.T) {
	out, err := execute(t, "vocab", "riesling_crystal", "--intensity", "dramatic", "--emphasis", "structure", "--markdown")
	if err != nil {
		t.Fatalf("vocab: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2.25") {
		t.Errorf("expected boosted weight 2.25 in output:\n%s", out)
	}
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--parallel", "2")
	if err != nil {
		t.Fatalf("sweep: %v\n%s", err, out)
	}
	for _, preset := range []string{"structure_toggle", "maturation_wave", "terroir_drift", "crystal_pulse", "ember_swing"} {
		if !strings.Contains(out, preset) {
			t.Errorf("expected preset %q in sweep output:\n%s", preset, out)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	out, err := execute(t, "states", "--log-level", "verbose")
	if err == nil {
		t.Fatalf("expected error for bad log level, got:\n%s", out)
	}
}
