package engine

import (
	"encoding/json"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	seed, _ := NewRunSeed("save-me")
	run := NewRun(seed)
	run.BuyItem("espresso_doppio")
	run.BuyItem("modulo_f24")
	run.LAI = 42
	run.Paths, _, _ = ApplyPathXP(run.Paths, map[Path]int{PathTax: 16})
	run.AdvancePhase()
	run.AdvancePhase()

	snap := run.Snapshot()
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := RestoreRun(decoded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Stats != run.Stats || restored.Day != run.Day || restored.Phase != run.Phase || restored.LAI != run.LAI {
		t.Fatalf("core fields diverged: %+v vs %+v", restored, run)
	}
	if restored.Paths[PathTax] != run.Paths[PathTax] {
		t.Fatalf("path progress diverged: %+v vs %+v", restored.Paths[PathTax], run.Paths[PathTax])
	}
	if len(restored.Inventory) != len(run.Inventory) {
		t.Fatalf("inventory diverged: %d vs %d", len(restored.Inventory), len(run.Inventory))
	}
	if len(restored.History) != len(run.History) {
		t.Fatalf("history diverged")
	}
}

func TestRestoreDropsUnknownItems(t *testing.T) {
	snap := Snapshot{
		SeedText:  "restore-unknown",
		Stats:     StartingStats(),
		Phase:     PhaseDay,
		Day:       3,
		Inventory: []string{"espresso_doppio", "item_from_a_newer_pack"},
		Paths:     NewPathProgress(),
	}
	run, err := RestoreRun(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(run.Inventory) != 1 || run.Inventory[0].ID != "espresso_doppio" {
		t.Fatalf("unknown ids must be dropped: %+v", run.Inventory)
	}
}

func TestRestoreSanitizesBadFields(t *testing.T) {
	snap := Snapshot{SeedText: "sanitize", Phase: Phase("noon"), Day: 0, LAI: 400, Paths: PathProgress{Path("astral"): {XP: 9}}}
	run, err := RestoreRun(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if run.Phase != PhaseDay || run.Day != 1 || run.LAI != 100 {
		t.Fatalf("bad fields not sanitized: %+v", run)
	}
	if _, ok := run.Paths[Path("astral")]; ok {
		t.Fatalf("unknown path kept on restore")
	}
}

func TestRestoreKeepsResolutionLock(t *testing.T) {
	seed, _ := NewRunSeed("mid-phase-save")
	run := NewRun(seed)
	if run.PickEvent() == nil {
		t.Fatalf("expected an event")
	}
	if _, ok := run.Resolve(0); !ok {
		t.Fatalf("setup resolve failed")
	}
	restored, err := RestoreRun(run.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.PickEvent() == nil {
		t.Fatalf("the phase event must still be offered for display")
	}
	if _, ok := restored.Resolve(0); ok {
		t.Fatalf("a resolved event must stay locked across restore")
	}
}

func TestRestoreResumesPaperWarMidExchange(t *testing.T) {
	pack := &ContentPack{Events: []GameEvent{
		{ID: "boss", Name: "Boss", Phase: PhaseDay, PaperWar: true,
			Choices: []Choice{{ID: "fight", Label: "Fight", Success: Outcome{Text: "ok"}}}},
	}}
	withCatalog(pack, func() {
		seed, _ := NewRunSeed("paper-save")
		run := NewRun(seed)
		if ev := run.PickEvent(); ev == nil || !ev.PaperWar {
			t.Fatalf("expected the boss event")
		}
		if _, ok := run.PlayPaperWarRound(MoveStamp); !ok {
			t.Fatalf("first round rejected")
		}
		restored, err := RestoreRun(run.Snapshot())
		if err != nil {
			t.Fatalf("restore: %v", err)
		}
		if restored.PickEvent() == nil {
			t.Fatalf("expected the boss event after restore")
		}
		var last PaperWarResult
		for i := 1; i < PaperWarRounds; i++ {
			tally, ok := restored.PlayPaperWarRound(MoveStamp)
			if !ok {
				t.Fatalf("round %d rejected after restore", i)
			}
			last = tally
		}
		if len(last.Rounds) != PaperWarRounds {
			t.Fatalf("restored exchange must keep earlier rounds: %d", len(last.Rounds))
		}
		if !restored.Resolved {
			t.Fatalf("exchange must lock after the final round")
		}
	})
}

func TestRestoreRejectsEmptySeed(t *testing.T) {
	if _, err := RestoreRun(Snapshot{}); err == nil {
		t.Fatalf("expected error restoring without a seed")
	}
}
