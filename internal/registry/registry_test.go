package registry

import (
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return "Fake " + g.id }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game { return fakeGame{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = info.Title == "Fake zz-fake"
		}
	}
	if !found {
		t.Error("List should include the game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("unknown game should not exist")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("zz-dup", func() Game { return fakeGame{id: "zz-dup"} })

	tests := []struct {
		name string
		id   string
	}{
		{"empty id", ""},
		{"duplicate", "zz-dup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.id, func() Game { return fakeGame{id: tt.id} })
		})
	}
}
