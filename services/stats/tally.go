package stats

import (
	store "github.com/furia-fc/team-sync/repos/store"
)

// Tally is one player's contribution from a single match result.
type Tally struct {
	Goals            int
	Assists          int
	YellowCards      int
	RedCards         int
	FigureOfTheMatch int
}

func (t Tally) isZero() bool {
	return t == Tally{}
}

func (t Tally) add(o Tally) Tally {
	t.Goals += o.Goals
	t.Assists += o.Assists
	t.YellowCards += o.YellowCards
	t.RedCards += o.RedCards
	t.FigureOfTheMatch += o.FigureOfTheMatch
	return t
}

func (t Tally) sub(o Tally) Tally {
	t.Goals -= o.Goals
	t.Assists -= o.Assists
	t.YellowCards -= o.YellowCards
	t.RedCards -= o.RedCards
	t.FigureOfTheMatch -= o.FigureOfTheMatch
	return t
}

// resultTally counts the per-player contribution of one result. A friendly
// result contributes nothing at all, and goals or assists credited to the
// guest id never count, even inside a friendly edit history.
func resultTally(result *store.MatchResult) map[string]Tally {
	tallies := map[string]Tally{}
	if result == nil || result.IsFriendly {
		return tallies
	}

	for _, goal := range result.Goals {
		if goal.PlayerID != "" && goal.PlayerID != store.GuestPlayerID {
			t := tallies[goal.PlayerID]
			t.Goals++
			tallies[goal.PlayerID] = t
		}
		if goal.AssistPlayerID != "" && goal.AssistPlayerID != store.GuestPlayerID {
			t := tallies[goal.AssistPlayerID]
			t.Assists++
			tallies[goal.AssistPlayerID] = t
		}
	}

	for _, card := range result.Cards {
		if card.PlayerID == "" || card.PlayerID == store.GuestPlayerID {
			continue
		}
		t := tallies[card.PlayerID]
		switch card.CardType {
		case store.CardYellow:
			t.YellowCards++
		case store.CardRed:
			t.RedCards++
		}
		tallies[card.PlayerID] = t
	}

	if result.FigureOfTheMatchID != "" && result.FigureOfTheMatchID != store.GuestPlayerID {
		t := tallies[result.FigureOfTheMatchID]
		t.FigureOfTheMatch++
		tallies[result.FigureOfTheMatchID] = t
	}

	return tallies
}

// diffTallies computes next minus prev per player, dropping zero deltas.
// An official result turned friendly collapses to "subtract everything";
// friendly turned official to "add everything" — resultTally already maps a
// friendly result to no contribution, so both fall out of the subtraction.
func diffTallies(prev, next *store.MatchResult) map[string]Tally {
	prevTallies := resultTally(prev)
	nextTallies := resultTally(next)

	diff := map[string]Tally{}
	for playerID, t := range nextTallies {
		d := t.sub(prevTallies[playerID])
		if !d.isZero() {
			diff[playerID] = d
		}
	}
	for playerID, t := range prevTallies {
		if _, seen := nextTallies[playerID]; seen {
			continue
		}
		d := Tally{}.sub(t)
		if !d.isZero() {
			diff[playerID] = d
		}
	}
	return diff
}

// playerNames collects the display names present in a result, so lazily
// created stats documents get a readable name.
func playerNames(result *store.MatchResult) map[string]string {
	names := map[string]string{}
	if result == nil {
		return names
	}
	for _, goal := range result.Goals {
		if goal.PlayerID != "" {
			names[goal.PlayerID] = goal.PlayerName
		}
		if goal.AssistPlayerID != "" {
			names[goal.AssistPlayerID] = goal.AssistPlayerName
		}
	}
	for _, card := range result.Cards {
		if card.PlayerID != "" {
			names[card.PlayerID] = card.PlayerName
		}
	}
	return names
}

func clampAt0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
