package engine

// Choice resolution, the center of the engine. Pure given its Rand: reads no
// globals, mutates nothing it is handed.

// Resolution is the structured result of resolving one choice (or one full
// Paper War, which returns the same shape).
type Resolution struct {
	Success  bool
	Roll     int // -1 when the choice had no skill check
	Text     string
	Effects  Stats
	Paths    PathProgress
	LAIDelta int
}

// dieSides is the skill-check roll range: Intn(20), i.e. 0-19. Success is
// stat + roll >= dc, so meeting the DC exactly passes. Difficulty curves are
// tuned to this convention; do not shift to 1-20.
const dieSides = 20

// ResolveChoice resolves one choice against the current run context.
//
// Order matters: cost first (applies win or lose), then the checked outcome,
// then tag synergies (outcome-independent), then path XP with its milestone
// rewards. The LAI delta is returned separately from the stat bundle.
func ResolveChoice(c Choice, ev GameEvent, s Stats, inv []Item, lai int, progress PathProgress, rnd Rand) Resolution {
	res := Resolution{Success: true, Roll: -1, Effects: c.Cost}

	if c.Check != nil {
		res.Roll = rnd.Intn(dieSides)
		res.Success = s.Get(c.Check.Stat)+res.Roll >= c.Check.DC
	}

	outcome := c.Success
	if !res.Success {
		outcome = c.Fail
	}
	res.Text = outcome.Text
	res.Effects = Merge(res.Effects, outcome.Effects)

	for _, rule := range synergyRules {
		if rule.applies(ev, inv, lai) {
			res.Effects = Merge(res.Effects, rule.bonus)
			res.LAIDelta += rule.lai
		}
	}

	res.Paths = progress
	if len(c.PathXP) > 0 {
		updated, rewards, laiDelta := ApplyPathXP(progress, c.PathXP)
		res.Paths = updated
		res.Effects = Merge(res.Effects, rewards)
		res.LAIDelta += laiDelta
	}
	return res
}

// synergyRule grants a small bonus when an event's tags line up with the
// player's inventory and anomaly context. Rules are evaluated in order, every
// matching rule fires, and none of them look at the skill-check outcome.
type synergyRule struct {
	name    string
	applies func(ev GameEvent, inv []Item, lai int) bool
	bonus   Stats
	lai     int
}

var synergyRules = []synergyRule{
	{
		name: "form_in_hand",
		applies: func(ev GameEvent, inv []Item, lai int) bool {
			return (ev.PaperWar || ev.HasTag("tax")) && hasItemKind(inv, ItemForm)
		},
		bonus: Stats{Fluency: 2},
	},
	{
		name: "local_color",
		applies: func(ev GameEvent, inv []Item, lai int) bool {
			return ev.HasTag("tourist") && hasItemTag(inv, "tourist")
		},
		bonus: Stats{Persuasion: 1, Reputation: 1},
	},
	{
		name: "relic_resonance",
		applies: func(ev GameEvent, inv []Item, lai int) bool {
			return ev.HasTag("occult") && hasItemKind(inv, ItemRelic)
		},
		bonus: Stats{Grit: 1},
		lai:   3,
	},
	{
		name: "signal_discipline",
		applies: func(ev GameEvent, inv []Item, lai int) bool {
			return ev.HasTag("network") && hasItemTag(inv, "network") && lai >= 40
		},
		bonus: Stats{Persuasion: 2},
		lai:   -6,
	},
}

func hasItemKind(inv []Item, kind ItemKind) bool {
	for _, it := range inv {
		if it.Kind == kind {
			return true
		}
	}
	return false
}

func hasItemTag(inv []Item, tag string) bool {
	for _, it := range inv {
		if it.HasTag(tag) {
			return true
		}
	}
	return false
}
