package meetings

import (
	"math"

	"github.com/sabhahq/sabha/internal/api"
)

// DefaultQuorumFraction is the share of eligible members that must be
// present for a resolution vote to count.
const DefaultQuorumFraction = 0.5

// Tally is the vote count for one resolution.
type Tally struct {
	For     int
	Against int
	Abstain int
}

// Total returns the number of ballots cast
func (t Tally) Total() int {
	return t.For + t.Against + t.Abstain
}

// Outcome of a resolution vote.
type Outcome string

const (
	OutcomePassed   Outcome = "PASSED"
	OutcomeFailed   Outcome = "FAILED"
	OutcomeNoQuorum Outcome = "NO_QUORUM"
)

// CountVotes tallies ballots. Unrecognized choices count as abstentions
// rather than being dropped, so Total always matches the ballot count.
func CountVotes(votes []api.Vote) Tally {
	var t Tally
	for _, v := range votes {
		switch v.Choice {
		case "for":
			t.For++
		case "against":
			t.Against++
		default:
			t.Abstain++
		}
	}
	return t
}

// QuorumMet reports whether enough eligible members were present.
// The threshold is ceil(fraction × eligible); zero eligible members
// never reach quorum.
func QuorumMet(present, eligible int, fraction float64) bool {
	if eligible <= 0 {
		return false
	}
	required := int(math.Ceil(fraction * float64(eligible)))
	return present >= required
}

// Resolve determines a resolution's outcome: quorum must be met and
// the motion needs strictly more votes for than against. A tie fails.
func Resolve(t Tally, present, eligible int, fraction float64) Outcome {
	if !QuorumMet(present, eligible, fraction) {
		return OutcomeNoQuorum
	}
	if t.For > t.Against {
		return OutcomePassed
	}
	return OutcomeFailed
}
