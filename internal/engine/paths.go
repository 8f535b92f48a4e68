package engine

// Path progression. Each build path has ascending XP milestones carrying a
// one-time stat reward and an anomaly-index delta. XP keeps accumulating past
// the last milestone; only the milestone index saturates.

// Milestone is one threshold on a path's progression track.
type Milestone struct {
	XP     int
	Reward Stats
	LAI    int
}

var pathMilestones = map[Path][]Milestone{
	PathTourist: {
		{XP: 5, Reward: Stats{Persuasion: 4, Reputation: 2}},
		{XP: 15, Reward: Stats{Persuasion: 6, Money: 50}},
		{XP: 35, Reward: Stats{Persuasion: 8, Reputation: 6}, LAI: -3},
		{XP: 60, Reward: Stats{Persuasion: 10, Money: 200, Reputation: 8}},
	},
	PathTax: {
		{XP: 5, Reward: Stats{Fluency: 4}},
		{XP: 15, Reward: Stats{Fluency: 6, Money: 40}},
		{XP: 35, Reward: Stats{Fluency: 8, Grit: 3}, LAI: -4},
		{XP: 60, Reward: Stats{Fluency: 12, Reputation: -5}, LAI: -6},
	},
	PathOccult: {
		{XP: 5, Reward: Stats{Grit: 3}, LAI: 6},
		{XP: 15, Reward: Stats{Grit: 5, Sanity: -4}, LAI: 10},
		{XP: 35, Reward: Stats{Grit: 8, Sanity: -6}, LAI: 14},
		// Mastery stabilizes the glitch.
		{XP: 60, Reward: Stats{Grit: 10, Sanity: 10}, LAI: -10},
	},
	PathNetwork: {
		{XP: 5, Reward: Stats{Persuasion: 3}, LAI: 4},
		{XP: 15, Reward: Stats{Money: 80}, LAI: 6},
		{XP: 35, Reward: Stats{Persuasion: 6, Money: 120}, LAI: -8},
		{XP: 60, Reward: Stats{Persuasion: 8, Money: 250}, LAI: -12},
	},
}

// PathState tracks one path's accumulated XP and highest milestone reached.
// Milestone 0 means none; milestone n means the n-th threshold has fired.
type PathState struct {
	XP        int `json:"xp" yaml:"xp"`
	Milestone int `json:"milestone" yaml:"milestone"`
}

// PathProgress maps every build path to its state.
type PathProgress map[Path]PathState

// NewPathProgress returns zeroed progress for all paths.
func NewPathProgress() PathProgress {
	p := make(PathProgress, len(AllPaths))
	for _, path := range AllPaths {
		p[path] = PathState{}
	}
	return p
}

// Clone copies progress so callers can stay value-semantic.
func (p PathProgress) Clone() PathProgress {
	out := make(PathProgress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ApplyPathXP adds gains to the given paths and fires any newly crossed
// milestones. Each milestone fires at most once per run: the returned reward
// bundle and LAI delta cover only thresholds crossed by this call. Calling
// with zero gains is a no-op returning empty rewards.
func ApplyPathXP(progress PathProgress, gains map[Path]int) (PathProgress, Stats, int) {
	updated := progress.Clone()
	var rewards Stats
	laiDelta := 0
	for _, path := range AllPaths {
		gain := gains[path]
		if gain <= 0 {
			continue
		}
		st := updated[path]
		st.XP += gain
		for idx, ms := range pathMilestones[path] {
			if idx+1 <= st.Milestone {
				continue
			}
			if st.XP < ms.XP {
				break
			}
			st.Milestone = idx + 1
			rewards = Merge(rewards, ms.Reward)
			laiDelta += ms.LAI
		}
		updated[path] = st
	}
	return updated, rewards, laiDelta
}

// Dominant returns the path with the most accumulated XP. The second return
// is false when no path has any XP. Ties resolve in AllPaths order so the
// result is deterministic.
func (p PathProgress) Dominant() (Path, bool) {
	best := Path("")
	bestXP := 0
	for _, path := range AllPaths {
		if st := p[path]; st.XP > bestXP {
			best, bestXP = path, st.XP
		}
	}
	return best, bestXP > 0
}
