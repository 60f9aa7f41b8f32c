package sim

import "fmt"

// Prompt is the inline two-choice level-up offer.
type Prompt struct {
	Appear    bool
	Text      [2]string
	HasChosen bool
}

// Eligible reports whether the kill count sits on a milestone that has not
// been spent yet.
func (p *Prompt) Eligible(kills, killsPerLevel int) bool {
	return killsPerLevel > 0 && kills != 0 && kills%killsPerLevel == 0 && !p.HasChosen
}

// Check opens the prompt when the milestone gate passes. It reports whether
// the prompt is showing afterwards.
func (p *Prompt) Check(kills, killsPerLevel int, gun *Gun, sword *Sword) bool {
	if p.Eligible(kills, killsPerLevel) {
		p.Open(gun, sword)
	}
	return p.Appear
}

// Open shows the prompt with texts describing the next upgrade of each weapon.
func (p *Prompt) Open(gun *Gun, sword *Sword) {
	p.Appear = true
	p.Text = [2]string{
		upgradeText(1, "Gun", gun.Level),
		upgradeText(2, "Sword", sword.Level),
	}
}

// Close records the choice and hides the prompt until the next kill.
func (p *Prompt) Close() {
	p.HasChosen = true
	p.Appear = false
}

func upgradeText(key int, name string, level int) string {
	if level == 0 {
		return fmt.Sprintf("[%d] %s: get new weapon", key, name)
	}
	return fmt.Sprintf("[%d] %s: upgrade to level %d", key, name, level+1)
}
