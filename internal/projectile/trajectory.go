// internal/projectile/trajectory.go
package projectile

import "strings"

// Trajectory selects the motion and hit algorithm of a projectile.
// It is fixed at construction.
type Trajectory int

const (
	Straight Trajectory = iota
	Homing
	Orbiting
	SineWave
	Boomerang
	Chain
	Piercing
	GroundAOE
	Forking
	Spiral
	GrowingOrb
)

var trajectoryNames = [...]string{
	Straight:   "STRAIGHT",
	Homing:     "HOMING",
	Orbiting:   "ORBITING",
	SineWave:   "SINE_WAVE",
	Boomerang:  "BOOMERANG",
	Chain:      "CHAIN",
	Piercing:   "PIERCING",
	GroundAOE:  "GROUND_AOE",
	Forking:    "FORKING",
	Spiral:     "SPIRAL",
	GrowingOrb: "GROWING_ORB",
}

func (t Trajectory) String() string {
	if t < 0 || int(t) >= len(trajectoryNames) {
		return "UNKNOWN"
	}
	return trajectoryNames[t]
}

// ParseTrajectory maps a config tag to a Trajectory. Matching ignores case.
// An empty or unknown tag yields Straight; ok is false only for unknown tags.
func ParseTrajectory(tag string) (t Trajectory, ok bool) {
	if tag == "" {
		return Straight, true
	}
	for i, name := range trajectoryNames {
		if strings.EqualFold(name, tag) {
			return Trajectory(i), true
		}
	}
	return Straight, false
}

// ForkTrigger is the condition that makes a FORKING projectile split.
type ForkTrigger string

const (
	ForkOnDistance ForkTrigger = "DISTANCE"
	ForkOnTimer    ForkTrigger = "TIMER"
	ForkOnFirstHit ForkTrigger = "ON_FIRST_HIT"
)

// AoeState is the phase of a GROUND_AOE projectile.
type AoeState int

const (
	AoeTraveling AoeState = iota
	AoeArrived
	AoeExploding
)

func (s AoeState) String() string {
	switch s {
	case AoeTraveling:
		return "traveling"
	case AoeArrived:
		return "arrived"
	case AoeExploding:
		return "exploding"
	}
	return "unknown"
}
