package engine

import "fmt"

// Paper War: a three-round bureaucratic standoff layered onto boss events.
// Stamp beats seal, seal beats ledger, ledger beats stamp; identical picks
// draw. Per-round deltas are fixed, and the whole exchange folds into a
// Resolution so it feeds the same downstream phase logic as a normal choice.

// PaperWarRounds is the fixed length of a full exchange.
const PaperWarRounds = 3

var (
	paperWarWin  = Stats{Money: 30, Reputation: 2, Sanity: -2}
	paperWarLoss = Stats{Money: -20, Reputation: -3, Sanity: -6}
	paperWarDraw = Stats{Money: -5, Sanity: -2}
)

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	MoveStamp:  MoveSeal,
	MoveSeal:   MoveLedger,
	MoveLedger: MoveStamp,
}

// RoundVerdict is the outcome of a single round.
type RoundVerdict string

const (
	RoundWin  RoundVerdict = "win"
	RoundLoss RoundVerdict = "loss"
	RoundDraw RoundVerdict = "draw"
)

// PaperWarRound records one exchanged pair of moves.
type PaperWarRound struct {
	Player   Move
	Opponent Move
	Verdict  RoundVerdict
	Effects  Stats
}

// PaperWarResult aggregates a full exchange.
type PaperWarResult struct {
	Rounds  []PaperWarRound
	Wins    int
	Losses  int
	Draws   int
	Summary string
	Effects Stats
}

// PlayPaperWarRound resolves a single round, drawing the opponent's move from
// the supplied source.
func PlayPaperWarRound(player Move, rnd Rand) PaperWarRound {
	opponent := AllMoves[rnd.Intn(len(AllMoves))]
	round := PaperWarRound{Player: player, Opponent: opponent}
	switch {
	case player == opponent:
		round.Verdict = RoundDraw
		round.Effects = paperWarDraw
	case beats[player] == opponent:
		round.Verdict = RoundWin
		round.Effects = paperWarWin
	default:
		round.Verdict = RoundLoss
		round.Effects = paperWarLoss
	}
	return round
}

// ResolvePaperWar plays a fixed-length exchange with the given player moves.
// Short move lists repeat their last move; empty lists default to stamp.
func ResolvePaperWar(moves []Move, rnd Rand) PaperWarResult {
	result := PaperWarResult{}
	for i := 0; i < PaperWarRounds; i++ {
		move := MoveStamp
		if len(moves) > 0 {
			if i < len(moves) {
				move = moves[i]
			} else {
				move = moves[len(moves)-1]
			}
		}
		round := PlayPaperWarRound(move, rnd)
		result.Rounds = append(result.Rounds, round)
		result.Effects = Merge(result.Effects, round.Effects)
		switch round.Verdict {
		case RoundWin:
			result.Wins++
		case RoundLoss:
			result.Losses++
		default:
			result.Draws++
		}
	}
	result.Summary = paperWarSummary(result)
	return result
}

// Resolution converts the exchange into the shape a normal choice resolution
// has, so the state machine applies it identically.
func (r PaperWarResult) Resolution(progress PathProgress) Resolution {
	return Resolution{
		Success: r.Wins > r.Losses,
		Roll:    -1,
		Text:    r.Summary,
		Effects: r.Effects,
		Paths:   progress,
	}
}

func paperWarSummary(r PaperWarResult) string {
	verdict := "The counter closes. Nobody is sure who won, which suits the office fine."
	switch {
	case r.Wins > r.Losses:
		verdict = "Your paperwork holds. The clerk stamps the concession with visible regret."
	case r.Losses > r.Wins:
		verdict = "Outfiled and outformed. You sign where indicated."
	}
	return fmt.Sprintf("%s (%d won, %d lost, %d drawn)", verdict, r.Wins, r.Losses, r.Draws)
}
