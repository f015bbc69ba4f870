package runner

// DefaultAutopilotLead is the jump distance that clears every default archetype.
const DefaultAutopilotLead = 21

// Autopilot jumps whenever the nearest obstacle ahead of the player is
// within Lead units. It is a tuning aid for headless runs.
type Autopilot struct {
	Lead float64
}

// Drive inspects g and requests a jump if one is due.
// Returns true if a jump was accepted.
func (a Autopilot) Drive(g *Game) bool {
	p := g.player
	for _, o := range g.field.obstacles {
		gap := o.X - (p.X + p.Width)
		if gap < 0 {
			continue
		}
		if gap <= a.Lead {
			return g.RequestJump()
		}
		return false
	}
	return false
}
