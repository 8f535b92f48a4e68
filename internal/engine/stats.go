package engine

// Stats is the fixed six-field player record. The same struct doubles as a
// delta bundle: the zero value of a field means "no change", so partial
// effects are just sparse literals.
type Stats struct {
	Money      int `json:"money" yaml:"money"`
	Reputation int `json:"reputation" yaml:"reputation"`
	Sanity     int `json:"sanity" yaml:"sanity"`
	Grit       int `json:"grit" yaml:"grit"`
	Persuasion int `json:"persuasion" yaml:"persuasion"`
	Fluency    int `json:"fluency" yaml:"fluency"`
}

// Clamp restricts v to 0-100.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Apply adds delta to s and clamps every field except Money. Money has no
// ceiling and no floor here; the bankruptcy threshold is the ending
// evaluator's business, not the mutation path's.
func Apply(s, delta Stats) Stats {
	return Stats{
		Money:      s.Money + delta.Money,
		Reputation: Clamp(s.Reputation + delta.Reputation),
		Sanity:     Clamp(s.Sanity + delta.Sanity),
		Grit:       Clamp(s.Grit + delta.Grit),
		Persuasion: Clamp(s.Persuasion + delta.Persuasion),
		Fluency:    Clamp(s.Fluency + delta.Fluency),
	}
}

// Merge sums two delta bundles field-wise without clamping.
func Merge(a, b Stats) Stats {
	return Stats{
		Money:      a.Money + b.Money,
		Reputation: a.Reputation + b.Reputation,
		Sanity:     a.Sanity + b.Sanity,
		Grit:       a.Grit + b.Grit,
		Persuasion: a.Persuasion + b.Persuasion,
		Fluency:    a.Fluency + b.Fluency,
	}
}

// Get reads the named field. Unknown keys read as 0.
func (s Stats) Get(k StatKey) int {
	switch k {
	case StatMoney:
		return s.Money
	case StatReputation:
		return s.Reputation
	case StatSanity:
		return s.Sanity
	case StatGrit:
		return s.Grit
	case StatPersuasion:
		return s.Persuasion
	case StatFluency:
		return s.Fluency
	default:
		return 0
	}
}

// IsZero reports whether the bundle carries no effect at all.
func (s Stats) IsZero() bool { return s == Stats{} }

// StartingStats are the fixed per-run initial values.
func StartingStats() Stats {
	return Stats{Money: 100, Reputation: 10, Sanity: 100, Grit: 50, Persuasion: 10, Fluency: 10}
}
