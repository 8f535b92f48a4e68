package engine

// Save/restore. The snapshot is a plain JSON-compatible record; where the
// bytes go is the store's business.

// Snapshot is the serializable projection of a RunState.
type Snapshot struct {
	SeedText  string        `json:"seed_text"`
	Stats     Stats         `json:"stats"`
	Inventory []string      `json:"inventory"`
	Phase     Phase         `json:"phase"`
	Day       int           `json:"day"`
	LAI       int           `json:"lai"`
	Paths     PathProgress  `json:"paths"`
	Ending    *Ending       `json:"ending,omitempty"`
	History   []DaySnapshot `json:"history"`
	// Resolved and the paper-war fields carry mid-phase progress, so a save
	// taken after acting cannot replay the same event's effects on restore.
	Resolved   bool            `json:"resolved,omitempty"`
	PaperRound int             `json:"paper_round,omitempty"`
	PaperTally *PaperWarResult `json:"paper_tally,omitempty"`
}

// Snapshot captures the run. Inventory is stored by item id; the active
// catalog re-hydrates it on restore.
func (r *RunState) Snapshot() Snapshot {
	inv := make([]string, len(r.Inventory))
	for i, it := range r.Inventory {
		inv[i] = it.ID
	}
	snap := Snapshot{
		SeedText:  r.Seed.Text,
		Stats:     r.Stats,
		Inventory: inv,
		Phase:     r.Phase,
		Day:       r.Day,
		LAI:       r.LAI,
		Paths:     r.Paths.Clone(),
		Ending:    r.Ending,
		History:   append([]DaySnapshot(nil), r.History...),
		Resolved:  r.Resolved,
	}
	if r.paperRound > 0 {
		snap.PaperRound = r.paperRound
		tally := r.paperTally
		tally.Rounds = append([]PaperWarRound(nil), r.paperTally.Rounds...)
		snap.PaperTally = &tally
	}
	return snap
}

// RestoreRun rebuilds a RunState from a snapshot. Inventory ids unknown to
// the active catalog are dropped silently; missing paths are zero-filled.
func RestoreRun(snap Snapshot) (*RunState, error) {
	seed, err := NewRunSeed(snap.SeedText)
	if err != nil {
		return nil, err
	}
	r := NewRun(seed)
	r.Stats = snap.Stats
	r.Phase = snap.Phase
	r.Day = snap.Day
	r.LAI = Clamp(snap.LAI)
	r.Ending = snap.Ending
	r.History = append([]DaySnapshot(nil), snap.History...)
	if !r.Phase.Validate() {
		r.Phase = PhaseDay
	}
	if r.Day < 1 {
		r.Day = 1
	}
	r.Paths = NewPathProgress()
	for path, st := range snap.Paths {
		if path.Validate() {
			r.Paths[path] = st
		}
	}
	for _, id := range snap.Inventory {
		if it, ok := ItemByID(id); ok {
			r.Inventory = append(r.Inventory, it)
		}
	}
	r.Resolved = snap.Resolved
	if snap.PaperRound > 0 && snap.PaperTally != nil {
		round := snap.PaperRound
		if round > PaperWarRounds {
			round = PaperWarRounds
		}
		r.paperRound = round
		r.paperTally = *snap.PaperTally
	}
	return r, nil
}
