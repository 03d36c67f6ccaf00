package results

import (
	"fmt"

	store "github.com/furia-fc/team-sync/repos/store"
)

const maxGoals = 99

// clampScore keeps a score within [0, 99].
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxGoals {
		return maxGoals
	}
	return n
}

// checkResult enforces the domain rules a result must satisfy before any
// write happens: the goal list must account for the scoreline exactly, and
// the guest scorer is only allowed in friendlies.
func checkResult(req ResultRequest) error {
	const op = "results.checkResult"

	furiaGoals := clampScore(req.FuriaGoals)
	if len(req.Goals) != furiaGoals {
		return store.ValidationError(op, fmt.Sprintf("must add exactly %d goals, got %d", furiaGoals, len(req.Goals)))
	}

	if !req.IsFriendly {
		for _, goal := range req.Goals {
			if goal.PlayerID == store.GuestPlayerID || goal.AssistPlayerID == store.GuestPlayerID {
				return store.ValidationError(op, "guest players are only allowed in friendly matches")
			}
		}
	}
	return nil
}
