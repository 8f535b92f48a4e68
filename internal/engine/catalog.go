package engine

// Built-in content tables. External packs loaded via LoadContentPack replace
// these wholesale; the engine only ever reads through Items()/Events().

var itemCatalog = []Item{
	{
		ID: "espresso_doppio", Name: "Espresso Doppio", Price: 5, Kind: ItemConsumable,
		Desc:      "Burnt, bitter, indispensable.",
		Tags:      []string{"tourist"},
		Immediate: Stats{Sanity: 6},
	},
	{
		ID: "amaro_del_vescovo", Name: "Amaro del Vescovo", Price: 20, Kind: ItemConsumable,
		Desc:      "The label shows a lighthouse that is not on any map.",
		Tags:      []string{"occult"},
		Immediate: Stats{Sanity: 12, Grit: 2},
	},
	{
		ID: "guida_balneare", Name: "Guida Balneare 1974", Price: 35, Kind: ItemTool,
		Desc:    "Out of print. The beaches it describes mostly still exist.",
		Tags:    []string{"tourist"},
		Passive: Stats{Persuasion: 1},
	},
	{
		ID: "ombrellone_di_latta", Name: "Ombrellone di Latta", Price: 60, Kind: ItemTool,
		Desc:      "Rattles in the wind. Tourists photograph it constantly.",
		Tags:      []string{"tourist"},
		Immediate: Stats{Reputation: 3},
	},
	{
		ID: "modulo_f24", Name: "Modulo F-24 (blank)", Price: 15, Kind: ItemForm,
		Desc: "A blank form radiates a faint institutional authority.",
		Tags: []string{"tax"},
	},
	{
		ID: "ricevutario_carbone", Name: "Ricevutario a Carbone", Price: 45, Kind: ItemForm,
		Desc:    "Carbon-copy receipt book. Every sheet already feels audited.",
		Tags:    []string{"tax"},
		Passive: Stats{Fluency: 1},
	},
	{
		ID: "talismano_del_faro", Name: "Talismano del Faro", Price: 80, Kind: ItemRelic,
		Desc:     "Warm to the touch at low tide.",
		Tags:     []string{"occult"},
		Passive:  Stats{Sanity: -1, Grit: 1},
		Requires: &Gate{MinGrit: iptr(40)},
	},
	{
		ID: "scheda_sim_estera", Name: "Scheda SIM Estera", Price: 50, Kind: ItemTool,
		Desc: "Registered to a company that dissolved in 1999.",
		Tags: []string{"network"},
	},
	{
		ID: "agendina_contatti", Name: "Agendina dei Contatti", Price: 70, Kind: ItemTool,
		Desc:     "Half the numbers ring somewhere. The other half ring somewhere else.",
		Tags:     []string{"network"},
		Passive:  Stats{Persuasion: 1},
		Requires: &Gate{MinPersuasion: iptr(20)},
	},
	{
		ID: "timbro_consortile", Name: "Timbro Consortile", Price: 120, Kind: ItemForm,
		Desc:     "Nobody remembers which consortium. The ink never dries out.",
		Tags:     []string{"tax", "occult"},
		Immediate: Stats{Fluency: 5},
		Requires: &Gate{MinFluency: iptr(30)},
	},
}

var eventCatalog = []GameEvent{
	{
		ID: "pullman_comitiva", Name: "The Coach Party", Phase: PhaseDay, Tier: 1,
		Tags: []string{"tourist"},
		Text: "A coach exhales forty pensioners from Bergamo onto your forecourt. They want lunch, shade, and a discount, in that order.",
		Choices: []Choice{
			{
				ID: "host", Label: "Seat them all, improvise a menu",
				Check: &SkillCheck{Stat: StatPersuasion, DC: 12},
				Cost:  Stats{Sanity: -4},
				Success: Outcome{Text: "Forty clean plates and a round of applause for the house wine.",
					Effects: Stats{Money: 90, Reputation: 6}},
				Fail: Outcome{Text: "The kitchen collapses around the third course. Someone posts a review from the table.",
					Effects: Stats{Money: 25, Reputation: -5}},
				PathXP: map[Path]int{PathTourist: 6},
			},
			{
				ID: "turn_away", Label: "Claim a private function, wave them on",
				Success: Outcome{Text: "The coach grumbles off toward the competition. A quiet afternoon.",
					Effects: Stats{Sanity: 4, Reputation: -2}},
			},
		},
	},
	{
		ID: "ispezione_siae", Name: "The Licensing Inspector", Phase: PhaseDay, Tier: 1,
		Tags: []string{"tax"},
		Text: "A man with a laminated badge asks whether the radio on your terrace is, strictly speaking, a public performance.",
		Choices: []Choice{
			{
				ID: "paperwork", Label: "Produce the license, or something shaped like one",
				Check: &SkillCheck{Stat: StatFluency, DC: 10},
				Success: Outcome{Text: "He reads it twice, finds it technically unobjectionable, and leaves unhappy.",
					Effects: Stats{Fluency: 3, Reputation: 2}},
				Fail: Outcome{Text: "The fine is modest. The follow-up appointment is not.",
					Effects: Stats{Money: -60, Sanity: -3}},
				PathXP: map[Path]int{PathTax: 5},
			},
			{
				ID: "pay_quietly", Label: "Pay the fee without argument",
				Cost: Stats{Money: -40},
				Success: Outcome{Text: "Money changes hands. The radio plays on.",
					Effects: Stats{Sanity: 2}},
			},
		},
	},
	{
		ID: "bagnante_notturno", Name: "The Night Swimmer", Phase: PhaseNight, Tier: 1,
		Tags: []string{"occult"},
		Text: "Past midnight a guest walks into the sea fully dressed, swims out precisely one hundred meters, and treads water, facing the lighthouse.",
		Choices: []Choice{
			{
				ID: "row_out", Label: "Row out and bring them back",
				Check: &SkillCheck{Stat: StatGrit, DC: 11},
				Cost:  Stats{Sanity: -2},
				Success: Outcome{Text: "They thank you politely and do not explain. Their room smells of salt for days.",
					Effects: Stats{Reputation: 4, Grit: 2}},
				Fail: Outcome{Text: "By the time you reach the spot there is nobody there. At breakfast they wave from their usual table.",
					Effects: Stats{Sanity: -8}},
				PathXP: map[Path]int{PathOccult: 6},
			},
			{
				ID: "watch", Label: "Watch from the shore and note the time",
				Success: Outcome{Text: "At 1:14 they swim back. You write the number down. It feels important to have written it down.",
					Effects: Stats{Sanity: -3, Grit: 1}},
				PathXP: map[Path]int{PathOccult: 3},
			},
		},
	},
	{
		ID: "antenna_abusiva", Name: "The Rooftop Antenna", Phase: PhaseNight, Tier: 2,
		Tags: []string{"network"},
		Text: "Two polite strangers offer a monthly consideration for mounting a small antenna on your roof. It would point out to sea.",
		Gate: &Gate{MinReputation: iptr(15)},
		Choices: []Choice{
			{
				ID: "accept", Label: "Take the money, ask nothing",
				Success: Outcome{Text: "An envelope arrives on the first of the month. The antenna hums on windless nights.",
					Effects: Stats{Money: 120, Sanity: -4}},
				PathXP: map[Path]int{PathNetwork: 7},
			},
			{
				ID: "negotiate", Label: "Negotiate terms, in writing",
				Check: &SkillCheck{Stat: StatPersuasion, DC: 13},
				Success: Outcome{Text: "The contract names a holding company and a better figure. Both parties sign with visible respect.",
					Effects: Stats{Money: 180, Persuasion: 3}},
				Fail: Outcome{Text: "They withdraw the offer with perfect courtesy. You feel watched at checkout times.",
					Effects: Stats{Sanity: -5}},
				PathXP: map[Path]int{PathNetwork: 5},
			},
			{
				ID: "refuse", Label: "Refuse",
				Success: Outcome{Text: "They nod as though you have passed a test, which is somehow worse.",
					Effects: Stats{Sanity: -2, Grit: 2}},
			},
		},
	},
	{
		ID: "guerra_bollo", Name: "The Stamp-Duty Tribunal", Phase: PhaseDay, Tier: 2,
		Tags: []string{"tax"}, PaperWar: true,
		Text: "The provincial office disputes your stamp duty for a year in which, by their own records, your business did not exist. A hearing is convened at the counter.",
		Choices: []Choice{
			{
				ID: "engage", Label: "Fight it form by form",
				Check: &SkillCheck{Stat: StatFluency, DC: 13},
				Success: Outcome{Text: "You cite a circular so obscure the clerk asks to photocopy it for personal reasons.",
					Effects: Stats{Money: 70, Fluency: 4, Reputation: 3}},
				Fail: Outcome{Text: "Your appeal is rejected for being submitted on the correct form, which was withdrawn.",
					Effects: Stats{Money: -80, Sanity: -6}},
				PathXP: map[Path]int{PathTax: 8},
			},
			{
				ID: "settle", Label: "Settle and go home",
				Cost: Stats{Money: -50},
				Success: Outcome{Text: "The matter is closed, pending reopening.",
					Effects: Stats{Sanity: 3}},
			},
		},
	},
	{
		ID: "processione_fuori_stagione", Name: "The Off-Season Procession", Phase: PhaseNight, Tier: 2,
		Tags: []string{"occult", "tourist"},
		Gate: &Gate{MaxSanity: iptr(85)},
		Text: "A procession files past the pensione toward the breakwater. The saint they carry is not one you recognize, and the town has no such feast day.",
		Choices: []Choice{
			{
				ID: "join", Label: "Join at the rear, head covered",
				Check: &SkillCheck{Stat: StatGrit, DC: 12},
				Cost:  Stats{Sanity: -3},
				Success: Outcome{Text: "At the water they sing one verse and disperse. In the morning the sea is glassy and the bookings double.",
					Effects: Stats{Reputation: 5, Money: 40}},
				Fail: Outcome{Text: "You lose the procession in streets you have walked for twenty years.",
					Effects: Stats{Sanity: -7}},
				PathXP: map[Path]int{PathOccult: 7},
			},
			{
				ID: "lock_up", Label: "Lock the doors and count the guests",
				Success: Outcome{Text: "All present. One extra.",
					Effects: Stats{Sanity: -4, Grit: 2}},
				PathXP: map[Path]int{PathOccult: 2},
			},
		},
	},
	{
		ID: "influencer_in_fuga", Name: "The Runaway Influencer", Phase: PhaseDay, Tier: 2,
		Tags: []string{"tourist", "network"},
		Gate: &Gate{MinReputation: iptr(25)},
		Text: "A travel influencer with four hundred thousand followers wants three nights incognito, paid in exposure.",
		Choices: []Choice{
			{
				ID: "charm", Label: "Comp the room, stage the terrace",
				Check: &SkillCheck{Stat: StatPersuasion, DC: 14},
				Cost:  Stats{Money: -30},
				Success: Outcome{Text: "The reel does numbers. The phone starts ringing in languages you must squint at.",
					Effects: Stats{Reputation: 10, Money: 60}},
				Fail: Outcome{Text: "The post goes up: 'authentic, in a bad way'.",
					Effects: Stats{Reputation: -8, Sanity: -4}},
				PathXP: map[Path]int{PathTourist: 7, PathNetwork: 3},
			},
			{
				ID: "full_rate", Label: "Full rate, like anyone else",
				Success: Outcome{Text: "They pay, sulk, and leave a three-star review praising your integrity.",
					Effects: Stats{Money: 80, Reputation: 1}},
				PathXP: map[Path]int{PathTourist: 3},
			},
		},
	},
	{
		ID: "condono_lampo", Name: "The Flash Amnesty", Phase: PhaseDay, Tier: 3,
		Tags: []string{"tax"},
		Gate: &Gate{MinFluency: iptr(25)},
		Text: "A tax amnesty opens at 9:00 and closes at 12:00. The queue already wraps the block. The forms are being revised while you wait.",
		Choices: []Choice{
			{
				ID: "sprint", Label: "Queue with every document you own",
				Check: &SkillCheck{Stat: StatFluency, DC: 15},
				Cost:  Stats{Sanity: -5},
				Success: Outcome{Text: "Stamped at 11:58. Years of contingent liability evaporate.",
					Effects: Stats{Money: 150, Fluency: 5}},
				Fail: Outcome{Text: "At 12:00 the window closes on a raised hand. Yours.",
					Effects: Stats{Sanity: -6, Money: -20}},
				PathXP: map[Path]int{PathTax: 10},
			},
			{
				ID: "skip", Label: "Let it pass",
				Success: Outcome{Text: "There will be another amnesty. There is always another amnesty.",
					Effects: Stats{Sanity: 2}},
			},
		},
	},
	{
		ID: "blackout_lungomare", Name: "Blackout on the Lungomare", Phase: PhaseNight, Tier: 1,
		Tags: []string{"tourist"},
		Text: "The whole seafront goes dark mid-service. Somewhere down the strip a generator coughs to life, and every head on your terrace turns toward it.",
		Choices: []Choice{
			{
				ID: "candles", Label: "Candles, accordion, double grappa",
				Check: &SkillCheck{Stat: StatPersuasion, DC: 9},
				Success: Outcome{Text: "By the time the lights return, nobody wants them back.",
					Effects: Stats{Money: 45, Reputation: 5}},
				Fail: Outcome{Text: "The accordion finds three of the four chords it needs.",
					Effects: Stats{Reputation: -2, Money: 10}},
				PathXP: map[Path]int{PathTourist: 4},
			},
			{
				ID: "close_early", Label: "Close early, comp the desserts",
				Cost: Stats{Money: -15},
				Success: Outcome{Text: "Grumbles, then goodwill. The dark settles kindly.",
					Effects: Stats{Sanity: 3, Reputation: 2}},
			},
		},
	},
	{
		ID: "fattura_fantasma", Name: "The Ghost Invoice", Phase: PhaseNight, Tier: 3,
		Tags: []string{"tax", "occult"}, PaperWar: true,
		Gate: &Gate{MinFluency: iptr(35)},
		Text: "An invoice arrives from a supplier who died in 1987, for services rendered next month. The VAT number checks out.",
		Choices: []Choice{
			{
				ID: "contest", Label: "Contest it through channels living and dead",
				Check: &SkillCheck{Stat: StatFluency, DC: 16},
				Cost:  Stats{Sanity: -4},
				Success: Outcome{Text: "The counter-filing is accepted by an office that, on later inspection, has no street address.",
					Effects: Stats{Fluency: 6, Grit: 3}},
				Fail: Outcome{Text: "A reminder arrives, postmarked from the harbor. Interest is accruing somewhere.",
					Effects: Stats{Money: -70, Sanity: -8}},
				PathXP: map[Path]int{PathTax: 6, PathOccult: 6},
			},
			{
				ID: "pay_it", Label: "Pay it and burn the receipt",
				Cost: Stats{Money: -90},
				Success: Outcome{Text: "The ash refuses to scatter. The ledger, at least, balances.",
					Effects: Stats{Sanity: -2, Fluency: 2}},
				PathXP: map[Path]int{PathOccult: 3},
			},
		},
	},
	{
		ID: "corriere_senza_targa", Name: "The Unmarked Courier", Phase: PhaseDay, Tier: 3,
		Tags: []string{"network"},
		Gate: &Gate{MinPersuasion: iptr(20)},
		Text: "A courier hands over a padded envelope addressed to a guest who checked out before you bought the place. He waits for a signature with professional patience.",
		Choices: []Choice{
			{
				ID: "sign", Label: "Sign the name on the envelope",
				Check: &SkillCheck{Stat: StatPersuasion, DC: 12},
				Success: Outcome{Text: "The courier leaves satisfied. A week later, a favor you never asked for is quietly repaid.",
					Effects: Stats{Money: 100, Persuasion: 3}},
				Fail: Outcome{Text: "Your hand hesitates on the tablet. The courier retrieves the envelope without comment.",
					Effects: Stats{Sanity: -3}},
				PathXP: map[Path]int{PathNetwork: 8},
			},
			{
				ID: "refuse_delivery", Label: "Refuse delivery",
				Success: Outcome{Text: "He marks something on his manifest. The entry is longer than a refusal should be.",
					Effects: Stats{Grit: 1, Sanity: -1}},
				PathXP: map[Path]int{PathNetwork: 2},
			},
		},
	},
	{
		ID: "alba_tranquilla", Name: "A Quiet Stretch", Phase: PhaseDay, Tier: 1,
		Text: "No coaches, no inspectors, no processions. The sea does what the sea does.",
		Choices: []Choice{
			{
				ID: "maintenance", Label: "Fix the shutters, repaint the sign",
				Cost: Stats{Money: -10},
				Success: Outcome{Text: "Small repairs. The place looks loved, because it is.",
					Effects: Stats{Reputation: 3, Sanity: 2}},
			},
			{
				ID: "rest", Label: "Espresso on the terrace, feet up",
				Success: Outcome{Text: "An hour in which nothing is owed to anyone.",
					Effects: Stats{Sanity: 6}},
			},
		},
	},
}

var catalogOverride *ContentPack

// Items returns the active item catalog.
func Items() []Item {
	if catalogOverride != nil {
		return catalogOverride.Items
	}
	return itemCatalog
}

// Events returns the active event catalog.
func Events() []GameEvent {
	if catalogOverride != nil {
		return catalogOverride.Events
	}
	return eventCatalog
}

// ItemByID looks an item up in the active catalog.
func ItemByID(id string) (Item, bool) {
	for _, it := range Items() {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// UseCatalog installs a content pack as the active catalog. Passing nil
// restores the built-ins. Boot-time configuration only: install the pack
// before any run starts or restores, since item ids in snapshots re-hydrate
// against whatever catalog is active at restore time.
func UseCatalog(p *ContentPack) { catalogOverride = p }
