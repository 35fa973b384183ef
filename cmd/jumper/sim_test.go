package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSimRejectsUnknownDifficulty(t *testing.T) {
	flagSimPreset = "insane"
	t.Cleanup(func() { flagSimPreset = "" })

	err := runSim(simCmd, nil)
	if err == nil {
		t.Fatal("runSim() = nil, expected an error for an unknown difficulty")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("runSim() = %q, expected mention of difficulty", err)
	}
}

func TestRunSimSummary(t *testing.T) {
	flagFrames, flagSeed, flagSteer = 120, 5, "sine"
	flagSimPreset = "easy"
	t.Cleanup(func() {
		flagFrames, flagSeed, flagSteer = 3600, 0, "sine"
		flagSimPreset = ""
	})

	var out bytes.Buffer
	simCmd.SetOut(&out)
	t.Cleanup(func() { simCmd.SetOut(nil) })

	if err := runSim(simCmd, nil); err != nil {
		t.Fatalf("runSim() error: %v", err)
	}
	for _, want := range []string{"game:      jumper", "seed:      5", "frames:    120", "/10\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}
