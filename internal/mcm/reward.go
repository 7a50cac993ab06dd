// Package mcm implements the Mochimo monetary schedule. All amounts are
// expressed in nanoMCM.
package mcm

// Reward phase constants. The schedule has three linear phases: the reward
// climbs from the genesis base until the v2.0 trigger block, restarts from a
// lower base and climbs faster until the mid trigger, then decays linearly
// until it ends entirely after the final trigger.
const (
	instamine = 4757066000000000

	v20Trigger   = 17185
	midTrigger   = 373761
	finalTrigger = 2097152

	phase1Base  = 5000000000
	phase1Delta = 56000
	phase2Base  = 5917392000
	phase2Delta = 150000
	phase3Base  = 59523942000
	phase3Delta = 28488
)

// Reward returns the mining reward for the block at the given position.
// Position zero (genesis) and positions past the final trigger earn nothing.
func Reward(position uint64) uint64 {
	switch {
	case position == 0 || position > finalTrigger:
		return 0
	case position < v20Trigger:
		return phase1Base + phase1Delta*(position-1)
	case position <= midTrigger:
		return phase2Base + phase2Delta*(position-v20Trigger)
	default:
		return phase3Base - phase3Delta*(position-midTrigger)
	}
}

// ProjectedSupply returns the theoretical cumulative supply after the block
// at the given position: the instamine plus every reward scheduled for
// positions 1..position, evaluated in closed form.
func ProjectedSupply(position uint64) uint64 {
	supply := uint64(instamine)
	if position == 0 {
		return supply
	}
	if position > finalTrigger {
		position = finalTrigger
	}

	// Phase 1 covers positions 1..v20Trigger-1.
	n := min(position, v20Trigger-1)
	supply += phase1Base*n + phase1Delta*(n*(n-1)/2)
	if position < v20Trigger {
		return supply
	}

	// Phase 2 covers positions v20Trigger..midTrigger.
	n = min(position, midTrigger) - v20Trigger + 1
	supply += phase2Base*n + phase2Delta*(n*(n-1)/2)
	if position <= midTrigger {
		return supply
	}

	// Phase 3 covers positions midTrigger+1..finalTrigger.
	n = position - midTrigger
	supply += phase3Base*n - phase3Delta*(n*(n+1)/2)
	return supply
}

// TotalProjectedSupply returns the theoretical final supply once the reward
// schedule has run out.
func TotalProjectedSupply() uint64 {
	return ProjectedSupply(finalTrigger)
}
