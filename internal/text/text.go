package text

import (
	"fmt"
	"strings"

	"github.com/mbeltrami/lungomare/internal/engine"
)

// Deterministic markdown rendering for the TUI and the journal. The renderer
// only formats what the engine returns; it never re-derives game logic.

var phaseTitles = map[engine.Phase]string{
	engine.PhaseDay:     "Day",
	engine.PhaseNight:   "Night",
	engine.PhaseMorning: "Morning",
}

// Scene renders the current phase view: stats header, event prose, choices.
func Scene(run *engine.RunState, ev *engine.GameEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s — Day %d\n\n", phaseTitles[run.Phase], run.Day)
	b.WriteString(statsLine(run.Stats, run.LAI))
	b.WriteString("\n\n")
	if ev == nil {
		b.WriteString("The lungomare is quiet. Nothing needs you, which is its own kind of unsettling.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "### %s\n\n%s\n\n", ev.Name, ev.Text)
	if ev.PaperWar {
		b.WriteString("*A Paper War may be joined here.*\n\n")
	}
	b.WriteString("#### Choices\n")
	for i, c := range ev.Choices {
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, c.Label, choiceNotes(c))
	}
	return b.String()
}

func choiceNotes(c engine.Choice) string {
	var notes []string
	if c.Check != nil {
		notes = append(notes, fmt.Sprintf("check: %s vs %d", c.Check.Stat, c.Check.DC))
	}
	if !c.Cost.IsZero() {
		notes = append(notes, "cost: "+deltaLine(c.Cost))
	}
	if len(notes) == 0 {
		return ""
	}
	return " _(" + strings.Join(notes, "; ") + ")_"
}

// Outcome renders a resolution for display and the journal.
func Outcome(res engine.Resolution) string {
	var b strings.Builder
	if res.Roll >= 0 {
		verdict := "Failure"
		if res.Success {
			verdict = "Success"
		}
		fmt.Fprintf(&b, "**%s** (rolled %d)\n\n", verdict, res.Roll)
	}
	b.WriteString(res.Text)
	b.WriteString("\n")
	if !res.Effects.IsZero() {
		fmt.Fprintf(&b, "\n*%s*\n", deltaLine(res.Effects))
	}
	if res.LAIDelta != 0 {
		fmt.Fprintf(&b, "*anomaly %+d*\n", res.LAIDelta)
	}
	return b.String()
}

// MorningReport renders the once-per-day summary shown at MORNING.
func MorningReport(run *engine.RunState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Morning Report — Day %d\n\n", run.Day)
	b.WriteString(statsLine(run.Stats, run.LAI))
	b.WriteString("\n\n### Paths\n")
	for _, path := range engine.AllPaths {
		st := run.Paths[path]
		fmt.Fprintf(&b, "- %s: %d xp (milestone %d)\n", path, st.XP, st.Milestone)
	}
	if len(run.Inventory) > 0 {
		b.WriteString("\n### Inventory\n")
		for _, it := range run.Inventory {
			fmt.Fprintf(&b, "- %s\n", it.Name)
		}
	}
	return b.String()
}

// EndingCard renders the terminal screen.
func EndingCard(e *engine.Ending, run *engine.RunState) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", e.Title, e.Text)
	fmt.Fprintf(&b, "*Day %d. %s*\n", run.Day, statsLine(run.Stats, run.LAI))
	return b.String()
}

func statsLine(s engine.Stats, lai int) string {
	return fmt.Sprintf("₤%d | rep %d | sanity %d | grit %d | persuasion %d | fluency %d | LAI %d",
		s.Money, s.Reputation, s.Sanity, s.Grit, s.Persuasion, s.Fluency, lai)
}

// deltaLine formats a sparse delta bundle, skipping zero fields.
func deltaLine(d engine.Stats) string {
	var parts []string
	add := func(label string, v int) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", label, v))
		}
	}
	add("money", d.Money)
	add("rep", d.Reputation)
	add("sanity", d.Sanity)
	add("grit", d.Grit)
	add("persuasion", d.Persuasion)
	add("fluency", d.Fluency)
	if len(parts) == 0 {
		return "no change"
	}
	return strings.Join(parts, ", ")
}
