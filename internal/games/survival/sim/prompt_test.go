package sim

import (
	"testing"

	"github.com/vovakirdan/tui-survivor/internal/config"
)

func TestPromptEligible(t *testing.T) {
	tests := []struct {
		kills     int
		hasChosen bool
		want      bool
	}{
		{0, false, false},
		{19, false, false},
		{20, false, true},
		{20, true, false},
		{21, false, false},
		{40, false, true},
	}
	for _, tc := range tests {
		p := Prompt{HasChosen: tc.hasChosen}
		if got := p.Eligible(tc.kills, 20); got != tc.want {
			t.Errorf("Eligible(kills=%d, chosen=%v) = %v, expected %v", tc.kills, tc.hasChosen, got, tc.want)
		}
	}
}

func TestPromptGateIsIdempotent(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	gun, sword := NewGun(cfg.Gun), NewSword(cfg.Sword)
	var p Prompt

	if !p.Check(20, 20, gun, sword) {
		t.Fatal("milestone should open the prompt")
	}
	p.Close()

	for i := 0; i < 5; i++ {
		if p.Check(20, 20, gun, sword) {
			t.Fatal("prompt reopened without a new kill")
		}
	}

	// A kill resets the gate but 21 is not a milestone.
	p.HasChosen = false
	if p.Check(21, 20, gun, sword) {
		t.Error("21 kills should not open the prompt")
	}
	p.HasChosen = false
	if !p.Check(40, 20, gun, sword) {
		t.Error("next milestone should open the prompt")
	}
}

func TestPromptTexts(t *testing.T) {
	cfg := config.DefaultSurvivalConfig()
	gun, sword := NewGun(cfg.Gun), NewSword(cfg.Sword)
	var p Prompt

	p.Open(gun, sword)
	if p.Text[0] != "[1] Gun: upgrade to level 2" {
		t.Errorf("gun text = %q", p.Text[0])
	}
	if p.Text[1] != "[2] Sword: get new weapon" {
		t.Errorf("sword text = %q", p.Text[1])
	}

	sword.AddLevel()
	p.Open(gun, sword)
	if p.Text[1] != "[2] Sword: upgrade to level 2" {
		t.Errorf("sword text after unlock = %q", p.Text[1])
	}
}
