package engine

import "fmt"

// Headless run simulator. Drives the state machine for a bounded number of
// phase steps under the run's own deterministic streams, recording enough to
// assert global properties without any presentation layer.

// ChoicePolicy picks a choice index for an offered event.
type ChoicePolicy func(ev GameEvent, s Stats) int

// FirstChoice always takes the first option.
func FirstChoice(GameEvent, Stats) int { return 0 }

// SeededChoice picks uniformly using a stream derived from the run seed.
func SeededChoice(seed RunSeed) ChoicePolicy {
	counter := 0
	return func(ev GameEvent, s Stats) int {
		counter++
		return seed.Stream(fmt.Sprintf("policy:%d:%s", counter, ev.ID)).Intn(len(ev.Choices))
	}
}

// StepRecord is one simulated phase step.
type StepRecord struct {
	Day     int
	Phase   Phase
	EventID string
	Stats   Stats
	LAI     int
}

// RunLog is the full trace of a simulated run.
type RunLog struct {
	Steps   []StepRecord
	History []DaySnapshot
	Paths   PathProgress
	Ending  *Ending
	Final   Stats
}

// Simulate plays up to maxSteps phase steps from a fresh run. Paper-war
// events are resolved through the ordinary resolver, which is a supported
// path. Stops early once an ending fires.
func Simulate(seedText string, maxSteps int, policy ChoicePolicy) (*RunLog, error) {
	seed, err := NewRunSeed(seedText)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		policy = FirstChoice
	}
	run := NewRun(seed)
	log := &RunLog{}
	for step := 0; step < maxSteps; step++ {
		eventID := ""
		if ev := run.PickEvent(); ev != nil {
			eventID = ev.ID
			idx := policy(*ev, run.Stats)
			if idx < 0 || idx >= len(ev.Choices) {
				idx = 0
			}
			run.Resolve(idx)
		}
		run.AdvancePhase()
		if run.Phase == PhaseMorning {
			run.EvaluateEnding()
		}
		log.Steps = append(log.Steps, StepRecord{
			Day:     run.Day,
			Phase:   run.Phase,
			EventID: eventID,
			Stats:   run.Stats,
			LAI:     run.LAI,
		})
		if run.Ending != nil {
			break
		}
	}
	log.History = append([]DaySnapshot(nil), run.History...)
	log.Paths = run.Paths.Clone()
	log.Ending = run.Ending
	log.Final = run.Stats
	return log, nil
}
