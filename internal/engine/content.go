package engine

// Content table types. Items and events are read-only data loaded once at
// startup; the engine never mutates them. Authoring correctness (unique ids,
// non-empty choices) is the content pack's problem, validated at load time,
// not re-checked per call.

// Item is a static catalog entry purchasable into the run inventory.
type Item struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Price int      `yaml:"price"`
	Desc  string   `yaml:"desc"`
	Kind  ItemKind `yaml:"kind"`
	Tags  []string `yaml:"tags"`
	// Immediate fires once on purchase (or on use, for consumables);
	// Passive is summed each phase advance while the item is held.
	Immediate Stats `yaml:"immediate"`
	Passive   Stats `yaml:"passive"`
	// Requires gates the purchase on current stats. Nil means always.
	Requires *Gate `yaml:"requires"`
}

// HasTag reports whether the item carries the given synergy tag.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Gate is an optional stat predicate. Nil pointer fields are unset bounds.
type Gate struct {
	MinMoney      *int `yaml:"min_money"`
	MinReputation *int `yaml:"min_reputation"`
	MaxReputation *int `yaml:"max_reputation"`
	MinSanity     *int `yaml:"min_sanity"`
	MaxSanity     *int `yaml:"max_sanity"`
	MinGrit       *int `yaml:"min_grit"`
	MinPersuasion *int `yaml:"min_persuasion"`
	MinFluency    *int `yaml:"min_fluency"`
}

// Allows evaluates the gate against current stats. A nil gate allows all.
func (g *Gate) Allows(s Stats) bool {
	if g == nil {
		return true
	}
	if g.MinMoney != nil && s.Money < *g.MinMoney {
		return false
	}
	if g.MinReputation != nil && s.Reputation < *g.MinReputation {
		return false
	}
	if g.MaxReputation != nil && s.Reputation > *g.MaxReputation {
		return false
	}
	if g.MinSanity != nil && s.Sanity < *g.MinSanity {
		return false
	}
	if g.MaxSanity != nil && s.Sanity > *g.MaxSanity {
		return false
	}
	if g.MinGrit != nil && s.Grit < *g.MinGrit {
		return false
	}
	if g.MinPersuasion != nil && s.Persuasion < *g.MinPersuasion {
		return false
	}
	if g.MinFluency != nil && s.Fluency < *g.MinFluency {
		return false
	}
	return true
}

// SkillCheck compares stat + d20 roll (0-19) against a difficulty class.
// Meeting the DC exactly is a success.
type SkillCheck struct {
	Stat StatKey `yaml:"stat"`
	DC   int     `yaml:"dc"`
}

// Outcome is one branch of a resolved choice.
type Outcome struct {
	Text    string `yaml:"text"`
	Effects Stats  `yaml:"effects"`
}

// Choice is one selectable option on an event.
type Choice struct {
	ID    string      `yaml:"id"`
	Label string      `yaml:"label"`
	Check *SkillCheck `yaml:"check"`
	// Cost applies unconditionally, win or lose.
	Cost    Stats        `yaml:"cost"`
	Success Outcome      `yaml:"success"`
	Fail    Outcome      `yaml:"fail"`
	PathXP  map[Path]int `yaml:"path_xp"`
}

// GameEvent is a static narrative event offered during a DAY or NIGHT phase.
type GameEvent struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Text  string   `yaml:"text"`
	Phase Phase    `yaml:"phase"`
	Gate  *Gate    `yaml:"gate"`
	Tags  []string `yaml:"tags"`
	// Tier 1-3 bands difficulty/reward by elapsed days. Zero means untiered.
	Tier     int      `yaml:"tier"`
	PaperWar bool     `yaml:"paper_war"`
	Choices  []Choice `yaml:"choices"`
}

// HasTag reports whether the event carries the given tag.
func (e GameEvent) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func iptr(v int) *int { return &v }
