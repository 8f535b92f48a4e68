package engine

import "testing"

func TestMilestoneFirstThreshold(t *testing.T) {
	p := NewPathProgress()
	updated, rewards, _ := ApplyPathXP(p, map[Path]int{PathTax: 6})
	if updated[PathTax].XP != 6 {
		t.Fatalf("xp not accumulated: %+v", updated[PathTax])
	}
	if updated[PathTax].Milestone < 1 {
		t.Fatalf("expected first tax milestone to fire, got index %d", updated[PathTax].Milestone)
	}
	if rewards.Fluency == 0 {
		t.Fatalf("expected fluency reward from first tax milestone, got %+v", rewards)
	}
	if p[PathTax].XP != 0 || p[PathTax].Milestone != 0 {
		t.Fatalf("input progress mutated: %+v", p[PathTax])
	}
}

func TestMilestoneIdempotence(t *testing.T) {
	p := NewPathProgress()
	p1, _, _ := ApplyPathXP(p, map[Path]int{PathOccult: 20})
	p2, rewards, lai := ApplyPathXP(p1, map[Path]int{})
	if !rewards.IsZero() || lai != 0 {
		t.Fatalf("zero-gain call produced rewards %+v lai %d", rewards, lai)
	}
	if p2[PathOccult] != p1[PathOccult] {
		t.Fatalf("zero-gain call changed progress: %+v vs %+v", p2[PathOccult], p1[PathOccult])
	}
}

func TestMilestoneFiresAtMostOnce(t *testing.T) {
	p := NewPathProgress()
	p1, r1, _ := ApplyPathXP(p, map[Path]int{PathTourist: 10})
	if p1[PathTourist].Milestone != 1 || r1.IsZero() {
		t.Fatalf("expected exactly milestone 1: %+v rewards %+v", p1[PathTourist], r1)
	}
	// More XP below the next threshold: no new rewards.
	p2, r2, _ := ApplyPathXP(p1, map[Path]int{PathTourist: 2})
	if !r2.IsZero() {
		t.Fatalf("milestone reward repeated: %+v", r2)
	}
	if p2[PathTourist].Milestone != 1 {
		t.Fatalf("milestone index moved without crossing: %d", p2[PathTourist].Milestone)
	}
}

func TestMilestoneMonotonicAndMultiCross(t *testing.T) {
	p := NewPathProgress()
	// One large gain crosses several thresholds at once.
	p1, _, _ := ApplyPathXP(p, map[Path]int{PathNetwork: 40})
	if p1[PathNetwork].Milestone != 3 {
		t.Fatalf("expected milestone 3 after 40 xp, got %d", p1[PathNetwork].Milestone)
	}
	prev := p1[PathNetwork].Milestone
	for i := 0; i < 5; i++ {
		p1, _, _ = ApplyPathXP(p1, map[Path]int{PathNetwork: 7})
		if p1[PathNetwork].Milestone < prev {
			t.Fatalf("milestone index decreased: %d -> %d", prev, p1[PathNetwork].Milestone)
		}
		prev = p1[PathNetwork].Milestone
	}
	if prev != len(pathMilestones[PathNetwork]) {
		t.Fatalf("milestone index must saturate at %d, got %d", len(pathMilestones[PathNetwork]), prev)
	}
}

func TestXPUncappedPastFinalMilestone(t *testing.T) {
	p := NewPathProgress()
	p1, _, _ := ApplyPathXP(p, map[Path]int{PathTax: 500})
	if p1[PathTax].XP != 500 {
		t.Fatalf("xp must not be capped by the final milestone: %d", p1[PathTax].XP)
	}
	if p1[PathTax].Milestone != len(pathMilestones[PathTax]) {
		t.Fatalf("milestone index past last threshold: %d", p1[PathTax].Milestone)
	}
}

func TestDominantPath(t *testing.T) {
	p := NewPathProgress()
	if _, ok := p.Dominant(); ok {
		t.Fatalf("empty progress must have no dominant path")
	}
	p[PathOccult] = PathState{XP: 12}
	p[PathTax] = PathState{XP: 9}
	if dom, ok := p.Dominant(); !ok || dom != PathOccult {
		t.Fatalf("expected occult dominant, got %v %v", dom, ok)
	}
}
