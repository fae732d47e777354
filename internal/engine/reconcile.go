package engine

import (
	"github.com/samber/lo"

	"github.com/roach88/santa/internal/core"
)

// Existing rebuilds the previously recorded assignments of a roster.
//
// For each participant with a SecretChildName, the receiver is the first
// other participant in roster order whose Name equals it. Participants
// without a match are skipped. The result is a derived view: it is not
// checked for being a derangement and may contain repeated receivers.
func Existing(roster []core.Participant) []core.Assignment {
	out := make([]core.Assignment, 0, len(roster))

	for giver, p := range roster {
		if p.SecretChildName == "" {
			continue
		}

		receiver := -1
		for j, candidate := range roster {
			if j != giver && candidate.Name == p.SecretChildName {
				receiver = j
				break
			}
		}
		if receiver < 0 {
			continue
		}

		out = append(out, core.Assignment{
			Giver:         p,
			Receiver:      roster[receiver],
			GiverIndex:    giver,
			ReceiverIndex: receiver,
		})
	}

	return out
}

// AmbiguousNames lists names that occur more than once in roster. Existing
// resolves such names to their first occurrence.
func AmbiguousNames(roster []core.Participant) []string {
	counts := lo.CountValuesBy(roster, func(p core.Participant) string {
		return p.Name
	})
	dups := lo.Filter(lo.Uniq(lo.Map(roster, func(p core.Participant, _ int) string {
		return p.Name
	})), func(name string, _ int) bool {
		return counts[name] > 1
	})
	return dups
}
