package engine

// Ending evaluation: a priority-ordered predicate chain consulted only at
// MORNING. Fatal thresholds always apply; narrative endings unlock from
// minNarrativeDay; before that, no fatal condition means the run continues.

const (
	// minNarrativeDay is the first day narrative endings may fire.
	minNarrativeDay = 30
	// bankruptcyFloor is the money level at which the run ends fatally.
	bankruptcyFloor = -1000
	// taxRaidReputation: fame at this level reads as taxable income.
	taxRaidReputation = 99
)

// Ending is a terminal run outcome. Produced once; immutable thereafter.
type Ending struct {
	ID    EndingID `json:"id"`
	Title string   `json:"title"`
	Text  string   `json:"text"`
}

// EvaluateEnding classifies the run state into an ending, or nil while the
// run continues. Deterministic: identical inputs, identical classification.
func EvaluateEnding(phase Phase, day int, s Stats, lai int, progress PathProgress) *Ending {
	if phase != PhaseMorning {
		return nil
	}
	// Fatal endings dominate everything, on any day.
	if s.Sanity <= 0 {
		return &Ending{ID: EndingWard, Title: "The Quiet Ward",
			Text: "The season ends in a room with soft corners and a view of a sea you no longer trust."}
	}
	if s.Money <= bankruptcyFloor {
		return &Ending{ID: EndingBankruptcy, Title: "Seized and Shuttered",
			Text: "The bailiffs are polite. The padlock on the front door is not."}
	}
	if s.Reputation >= taxRaidReputation {
		return &Ending{ID: EndingTaxRaid, Title: "The Raid",
			Text: "Fame of this magnitude is, fiscally speaking, a confession. They arrive at dawn with boxes."}
	}
	if day < minNarrativeDay {
		return nil
	}
	if dominant, ok := progress.Dominant(); ok {
		switch dominant {
		case PathTourist:
			if s.Money >= 500 && s.Reputation >= 60 {
				return &Ending{ID: EndingMogul, Title: "Tourist Mogul",
					Text: "Three properties, a shuttle bus, and your face on the ferry timetable."}
			}
		case PathOccult:
			if lai >= 70 {
				return &Ending{ID: EndingAscension, Title: "Occult Ascension",
					Text: "The procession passes your door one last time, and this season it is you they carry."}
			}
		case PathNetwork:
			if lai <= 30 {
				return &Ending{ID: EndingGhostNet, Title: "The Invisible Network",
					Text: "On paper the pensione barely exists. Everything else runs through it."}
			}
		case PathTax:
			if s.Fluency >= 80 {
				return &Ending{ID: EndingArchon, Title: "Protocol Archon",
					Text: "The provincial office cites your filings as precedent. Clerks request your signature for reasons they cannot articulate."}
			}
		}
	}
	if s.Money >= 1500 {
		return &Ending{ID: EndingMagnate, Title: "Riviera Magnate",
			Text: "The ledgers close fat. The lungomare, for once, owes you."}
	}
	return &Ending{ID: EndingQuiet, Title: "A Quiet Season",
		Text: "No triumph, no ruin. The shutters come down, the salt stays in the air, and next year the coaches will come again."}
}
