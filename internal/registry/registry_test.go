package registry

import (
	"testing"

	"github.com/vovakirdan/tilt-jumper/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                                      { return s.id }
func (s stubGame) Title() string                                   { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)                        {}
func (s stubGame) Update(float64, core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                             {}
func (s stubGame) State() core.GameState                           { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Create() built %q, expected stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected \"Stub stub-a\"", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() of unknown ID should fail")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-b", func() Game { return stubGame{id: "stub-b"} })

	assertPanics(t, "duplicate", func() {
		Register("stub-b", func() Game { return stubGame{id: "stub-b"} })
	})
	assertPanics(t, "mismatched id", func() {
		Register("stub-c", func() Game { return stubGame{id: "other"} })
	})
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
