package engine

// String backed enums for DB and YAML interoperability.

type Phase string
type Path string
type ItemKind string
type StatKey string
type Move string
type EndingID string

const (
	PhaseDay     Phase = "day"
	PhaseNight   Phase = "night"
	PhaseMorning Phase = "morning"
)

var AllPhases = []Phase{PhaseDay, PhaseNight, PhaseMorning}

// Next returns the following phase in the day/night/morning cycle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseDay:
		return PhaseNight
	case PhaseNight:
		return PhaseMorning
	default:
		return PhaseDay
	}
}

const (
	PathTourist Path = "tourist"
	PathTax     Path = "tax"
	PathOccult  Path = "occult"
	PathNetwork Path = "network"
)

var AllPaths = []Path{PathTourist, PathTax, PathOccult, PathNetwork}

const (
	ItemConsumable ItemKind = "consumable"
	ItemTool       ItemKind = "tool"
	ItemForm       ItemKind = "form"
	ItemRelic      ItemKind = "relic"
)

var AllItemKinds = []ItemKind{ItemConsumable, ItemTool, ItemForm, ItemRelic}

const (
	StatMoney      StatKey = "money"
	StatReputation StatKey = "reputation"
	StatSanity     StatKey = "sanity"
	StatGrit       StatKey = "grit"
	StatPersuasion StatKey = "persuasion"
	StatFluency    StatKey = "fluency"
)

var AllStatKeys = []StatKey{StatMoney, StatReputation, StatSanity, StatGrit, StatPersuasion, StatFluency}

// Paper War moves form a cycle: stamp beats seal, seal beats ledger,
// ledger beats stamp.
const (
	MoveStamp  Move = "stamp"
	MoveLedger Move = "ledger"
	MoveSeal   Move = "seal"
)

var AllMoves = []Move{MoveStamp, MoveLedger, MoveSeal}

const (
	EndingWard       EndingID = "psychiatric_ward"
	EndingBankruptcy EndingID = "bankruptcy"
	EndingTaxRaid    EndingID = "tax_raid"
	EndingMogul      EndingID = "tourist_mogul"
	EndingAscension  EndingID = "occult_ascension"
	EndingGhostNet   EndingID = "invisible_network"
	EndingArchon     EndingID = "protocol_archon"
	EndingMagnate    EndingID = "riviera_magnate"
	EndingQuiet      EndingID = "quiet_season"
)

var AllEndingIDs = []EndingID{
	EndingWard, EndingBankruptcy, EndingTaxRaid,
	EndingMogul, EndingAscension, EndingGhostNet, EndingArchon, EndingMagnate,
	EndingQuiet,
}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (p Phase) Validate() bool    { return contains(AllPhases, p) }
func (p Path) Validate() bool     { return contains(AllPaths, p) }
func (k ItemKind) Validate() bool { return contains(AllItemKinds, k) }
func (k StatKey) Validate() bool  { return contains(AllStatKeys, k) }
func (m Move) Validate() bool     { return contains(AllMoves, m) }
func (e EndingID) Validate() bool { return contains(AllEndingIDs, e) }
