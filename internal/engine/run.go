package engine

import (
	"fmt"
	"math"
)

// Rent: a fixed daily cost deducted on day rollover, compounding weekly.
const (
	baseRent       = 40
	weeklyRentRate = 0.08
)

// RentForDay returns the rent due on entering the given day.
func RentForDay(day int) int {
	weeks := (day - 1) / 7
	return int(math.Round(float64(baseRent) * math.Pow(1+weeklyRentRate, float64(weeks))))
}

// DaySnapshot is the once-per-day history record taken at morning.
type DaySnapshot struct {
	Day   int   `json:"day"`
	Stats Stats `json:"stats"`
	LAI   int   `json:"lai"`
}

// RunState owns all mutable state of one run. Callers serialize access; the
// engine holds nothing global, so independent runs coexist freely.
type RunState struct {
	Seed      RunSeed
	Stats     Stats
	Inventory []Item
	Phase     Phase
	Day       int
	LAI       int
	Paths     PathProgress
	Ending    *Ending
	History   []DaySnapshot

	// Event currently offered for this phase, nil when quiet.
	Event *GameEvent
	// Resolved locks the current event once acted on.
	Resolved bool

	paperRound int
	paperTally PaperWarResult
}

// NewRun starts a fresh run at DAY of day 1 with the fixed initial stats.
func NewRun(seed RunSeed) *RunState {
	return &RunState{
		Seed:  seed,
		Stats: StartingStats(),
		Phase: PhaseDay,
		Day:   1,
		Paths: NewPathProgress(),
	}
}

// Reset discards the run and starts over under a new seed.
func (r *RunState) Reset(seed RunSeed) { *r = *NewRun(seed) }

// phaseStream derives the deterministic stream for the current day+phase and
// a purpose label, so replays see identical draws regardless of call order
// elsewhere.
func (r *RunState) phaseStream(label string) *Stream {
	return r.Seed.Stream(fmt.Sprintf("day:%d:phase:%s:%s", r.Day, r.Phase, label))
}

// PickEvent queries the selector for this phase and caches the result until
// the phase advances. Mornings have no events, and finished runs offer none.
func (r *RunState) PickEvent() *GameEvent {
	if r.Ending != nil || r.Phase == PhaseMorning {
		return nil
	}
	if r.Event != nil {
		return r.Event
	}
	r.Event = PickEvent(r.Phase, r.Stats, r.phaseStream("event"))
	return r.Event
}

// Resolve resolves the current event's choice at idx and applies the result.
// Returns false without touching state on misuse: no active event, already
// resolved, finished run, or index out of range.
func (r *RunState) Resolve(idx int) (Resolution, bool) {
	if r.Ending != nil || r.Event == nil || r.Resolved {
		return Resolution{}, false
	}
	if idx < 0 || idx >= len(r.Event.Choices) {
		return Resolution{}, false
	}
	res := ResolveChoice(r.Event.Choices[idx], *r.Event, r.Stats, r.Inventory, r.LAI, r.Paths, r.phaseStream("resolve"))
	r.apply(res)
	return res, true
}

// PlayPaperWarRound plays one round of the current paper-war event. After the
// final round the aggregate is applied as a resolution; the returned result
// carries the running tally. Returns false on misuse (no paper-war event
// active or already resolved).
func (r *RunState) PlayPaperWarRound(move Move) (PaperWarResult, bool) {
	if r.Ending != nil || r.Event == nil || !r.Event.PaperWar || r.Resolved {
		return PaperWarResult{}, false
	}
	round := PlayPaperWarRound(move, r.phaseStream(fmt.Sprintf("paperwar:round:%d", r.paperRound)))
	r.paperRound++
	r.paperTally.Rounds = append(r.paperTally.Rounds, round)
	r.paperTally.Effects = Merge(r.paperTally.Effects, round.Effects)
	switch round.Verdict {
	case RoundWin:
		r.paperTally.Wins++
	case RoundLoss:
		r.paperTally.Losses++
	default:
		r.paperTally.Draws++
	}
	if r.paperRound >= PaperWarRounds {
		r.paperTally.Summary = paperWarSummary(r.paperTally)
		r.apply(r.paperTally.Resolution(r.Paths))
	}
	return r.paperTally, true
}

// apply folds a resolution into the run and locks the event.
func (r *RunState) apply(res Resolution) {
	r.Stats = Apply(r.Stats, res.Effects)
	r.LAI = Clamp(r.LAI + res.LAIDelta)
	if res.Paths != nil {
		r.Paths = res.Paths
	}
	r.Resolved = true
}

// BuyItem purchases a catalog item during DAY or NIGHT. False when the phase
// forbids purchases, the item is unknown, unaffordable, or stat-gated away.
// Immediate effects fire once: on purchase for persistent kinds, on use for
// consumables. The item then sits in inventory.
func (r *RunState) BuyItem(id string) bool {
	if r.Ending != nil || r.Phase == PhaseMorning {
		return false
	}
	item, ok := ItemByID(id)
	if !ok {
		return false
	}
	if r.Stats.Money < item.Price || !item.Requires.Allows(r.Stats) {
		return false
	}
	r.Stats.Money -= item.Price
	if item.Kind != ItemConsumable {
		r.Stats = Apply(r.Stats, item.Immediate)
	}
	r.Inventory = append(r.Inventory, item)
	return true
}

// UseItem consumes a held consumable, firing its immediate effects and
// removing one instance. Tools, forms, and relics persist for the run and
// cannot be used up.
func (r *RunState) UseItem(id string) bool {
	if r.Ending != nil {
		return false
	}
	for i, it := range r.Inventory {
		if it.ID != id {
			continue
		}
		if it.Kind != ItemConsumable {
			return false
		}
		r.Stats = Apply(r.Stats, it.Immediate)
		r.Inventory = append(r.Inventory[:i], r.Inventory[i+1:]...)
		return true
	}
	return false
}

// AdvancePhase steps DAY -> NIGHT -> MORNING -> DAY. Entering MORNING records
// the day's history snapshot exactly once; entering DAY increments the day
// and charges rent. Passive item effects tick on every advance. No-op once an
// ending exists.
func (r *RunState) AdvancePhase() {
	if r.Ending != nil {
		return
	}
	r.Event = nil
	r.Resolved = false
	r.paperRound = 0
	r.paperTally = PaperWarResult{}

	r.Phase = r.Phase.Next()
	switch r.Phase {
	case PhaseMorning:
		r.recordDay()
	case PhaseDay:
		r.Day++
		r.Stats.Money -= RentForDay(r.Day)
	}
	if passive := r.passiveEffects(); !passive.IsZero() {
		r.Stats = Apply(r.Stats, passive)
	}
}

// passiveEffects sums the passive bundles of held items.
func (r *RunState) passiveEffects() Stats {
	var total Stats
	for _, it := range r.Inventory {
		total = Merge(total, it.Passive)
	}
	return total
}

// recordDay appends the day snapshot unless this day is already recorded.
func (r *RunState) recordDay() {
	if n := len(r.History); n > 0 && r.History[n-1].Day == r.Day {
		return
	}
	r.History = append(r.History, DaySnapshot{Day: r.Day, Stats: r.Stats, LAI: r.LAI})
}

// EvaluateEnding consults the ending evaluator and latches the first result.
func (r *RunState) EvaluateEnding() *Ending {
	if r.Ending != nil {
		return r.Ending
	}
	if e := EvaluateEnding(r.Phase, r.Day, r.Stats, r.LAI, r.Paths); e != nil {
		r.Ending = e
	}
	return r.Ending
}
