package engine

// Event selection: filter the catalog by trigger phase, then by stat gate,
// then pick uniformly from whatever is left.

// EligibleEvents returns the catalog subset that may fire for the given phase
// and stats, in catalog order.
func EligibleEvents(phase Phase, s Stats) []GameEvent {
	var out []GameEvent
	for _, ev := range Events() {
		if ev.Phase != phase {
			continue
		}
		if !ev.Gate.Allows(s) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// PickEvent selects one eligible event uniformly at random, or nil when
// nothing is eligible (a quiet phase, not an error).
func PickEvent(phase Phase, s Stats, rnd Rand) *GameEvent {
	eligible := EligibleEvents(phase, s)
	if len(eligible) == 0 {
		return nil
	}
	ev := eligible[rnd.Intn(len(eligible))]
	return &ev
}
