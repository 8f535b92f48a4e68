package engine

import "testing"

func checkedChoice(stat StatKey, dc int) Choice {
	return Choice{
		ID: "c", Label: "attempt",
		Check:   &SkillCheck{Stat: stat, DC: dc},
		Success: Outcome{Text: "made it", Effects: Stats{Money: 10}},
		Fail:    Outcome{Text: "blew it", Effects: Stats{Sanity: -5}},
	}
}

func TestSkillCheckMeetsDC(t *testing.T) {
	s := Stats{Fluency: 5}
	ev := GameEvent{ID: "ev"}
	// 5 + 0 >= 5: meeting the DC exactly is a success.
	res := ResolveChoice(checkedChoice(StatFluency, 5), ev, s, nil, 0, NewPathProgress(), fixedRand(0))
	if !res.Success {
		t.Fatalf("expected success at stat+roll == dc")
	}
	if res.Text != "made it" {
		t.Fatalf("wrong outcome text: %q", res.Text)
	}
	// 5 + 0 < 6: one under fails.
	res = ResolveChoice(checkedChoice(StatFluency, 6), ev, s, nil, 0, NewPathProgress(), fixedRand(0))
	if res.Success {
		t.Fatalf("expected failure one under the dc")
	}
	if res.Text != "blew it" {
		t.Fatalf("wrong outcome text: %q", res.Text)
	}
}

func TestSkillCheckConstantRollDeterminism(t *testing.T) {
	s := Stats{Grit: 10}
	ev := GameEvent{ID: "ev"}
	for i := 0; i < 10; i++ {
		res := ResolveChoice(checkedChoice(StatGrit, 14), ev, s, nil, 0, NewPathProgress(), fixedRand(4))
		if !res.Success {
			t.Fatalf("iteration %d: 10+4 >= 14 must always succeed", i)
		}
		res = ResolveChoice(checkedChoice(StatGrit, 15), ev, s, nil, 0, NewPathProgress(), fixedRand(4))
		if res.Success {
			t.Fatalf("iteration %d: 10+4 < 15 must always fail", i)
		}
	}
}

func TestNoCheckIsAutomaticSuccess(t *testing.T) {
	c := Choice{ID: "c", Success: Outcome{Text: "done", Effects: Stats{Reputation: 2}}}
	res := ResolveChoice(c, GameEvent{ID: "ev"}, Stats{}, nil, 0, NewPathProgress(), fixedRand(0))
	if !res.Success || res.Roll != -1 {
		t.Fatalf("checkless choice must auto-succeed without rolling: %+v", res)
	}
}

func TestCostAppliesOnFailure(t *testing.T) {
	c := checkedChoice(StatGrit, 19)
	c.Cost = Stats{Money: -25, Sanity: -3}
	res := ResolveChoice(c, GameEvent{ID: "ev"}, Stats{Grit: 0}, nil, 0, NewPathProgress(), fixedRand(0))
	if res.Success {
		t.Fatalf("expected failure")
	}
	// Cost plus fail outcome (sanity -5).
	if res.Effects.Money != -25 || res.Effects.Sanity != -8 {
		t.Fatalf("cost must apply win or lose: %+v", res.Effects)
	}
}

func TestSynergyIndependentOfOutcome(t *testing.T) {
	ev := GameEvent{ID: "ev", Tags: []string{"tax"}}
	inv := []Item{{ID: "form", Kind: ItemForm}}
	for _, roll := range []fixedRand{0, 19} {
		res := ResolveChoice(checkedChoice(StatFluency, 10), ev, Stats{Fluency: 0}, inv, 0, NewPathProgress(), roll)
		if res.Effects.Fluency < 2 {
			t.Fatalf("form synergy must fire regardless of check outcome (roll %d): %+v", int(roll), res.Effects)
		}
	}
}

func TestSynergyWithEmptyOutcome(t *testing.T) {
	// A choice with no effect bundles at all still collects synergy bonuses.
	c := Choice{ID: "c", Label: "stand there"}
	ev := GameEvent{ID: "ev", PaperWar: true}
	inv := []Item{{ID: "form", Kind: ItemForm}}
	res := ResolveChoice(c, ev, Stats{}, inv, 0, NewPathProgress(), fixedRand(0))
	if res.Effects.Fluency != 2 {
		t.Fatalf("expected bare synergy bonus, got %+v", res.Effects)
	}
}

func TestNetworkSynergyStabilizesLAI(t *testing.T) {
	ev := GameEvent{ID: "ev", Tags: []string{"network"}}
	inv := []Item{{ID: "sim", Kind: ItemTool, Tags: []string{"network"}}}
	res := ResolveChoice(Choice{ID: "c"}, ev, Stats{}, inv, 55, NewPathProgress(), fixedRand(0))
	if res.LAIDelta >= 0 {
		t.Fatalf("network synergy above the threshold must stabilize lai, got %d", res.LAIDelta)
	}
	// Below the anomaly threshold the rule stays dormant.
	res = ResolveChoice(Choice{ID: "c"}, ev, Stats{}, inv, 10, NewPathProgress(), fixedRand(0))
	if res.LAIDelta != 0 {
		t.Fatalf("network synergy must not fire at low lai, got %d", res.LAIDelta)
	}
}

func TestPaperWarEventThroughOrdinaryResolver(t *testing.T) {
	ev := GameEvent{ID: "boss", PaperWar: true, Tags: []string{"tax"}}
	c := checkedChoice(StatFluency, 5)
	res := ResolveChoice(c, ev, Stats{Fluency: 10}, nil, 0, NewPathProgress(), fixedRand(3))
	if !res.Success || res.Text == "" {
		t.Fatalf("paper-war flagged event must resolve normally: %+v", res)
	}
}

func TestResolveEndToEndScenario(t *testing.T) {
	s := Stats{Money: 0, Reputation: 10, Sanity: 100, Grit: 50, Persuasion: 10, Fluency: 5}
	c := Choice{
		ID:      "file",
		Cost:    Stats{Money: 0},
		Check:   &SkillCheck{Stat: StatFluency, DC: 5},
		Success: Outcome{Text: "stamped"},
		PathXP:  map[Path]int{PathTax: 6},
	}
	res := ResolveChoice(c, GameEvent{ID: "ev"}, s, nil, 0, NewPathProgress(), fixedRand(0))
	if !res.Success {
		t.Fatalf("5+0 >= 5 must succeed")
	}
	if res.Paths[PathTax].Milestone < 1 {
		t.Fatalf("tax path must pass its first milestone: %+v", res.Paths[PathTax])
	}
	if res.Effects.Fluency == 0 {
		t.Fatalf("milestone reward must surface in effects: %+v", res.Effects)
	}
}
