package stats

import (
	"testing"

	store "github.com/furia-fc/team-sync/repos/store"
)

func goalBy(playerID string) store.Goal {
	return store.Goal{ID: playerID + "-goal", PlayerID: playerID, PlayerName: playerID}
}

func goalWithAssist(playerID, assistID string) store.Goal {
	g := goalBy(playerID)
	g.AssistPlayerID = assistID
	g.AssistPlayerName = assistID
	return g
}

func officialResult(goals ...store.Goal) *store.MatchResult {
	return &store.MatchResult{
		RivalID:    "rival-1",
		RivalName:  "Deportivo Lagarto",
		FuriaGoals: len(goals),
		Goals:      goals,
	}
}

func TestResultTallyCountsPerPlayer(t *testing.T) {
	result := officialResult(goalBy("a@f.fc"), goalBy("a@f.fc"), goalWithAssist("b@f.fc", "a@f.fc"))
	result.Cards = []store.Card{
		{ID: "c1", PlayerID: "b@f.fc", CardType: store.CardYellow},
		{ID: "c2", PlayerID: "b@f.fc", CardType: store.CardRed},
	}
	result.FigureOfTheMatchID = "a@f.fc"

	tallies := resultTally(result)

	a := tallies["a@f.fc"]
	if a.Goals != 2 || a.Assists != 1 || a.FigureOfTheMatch != 1 {
		t.Errorf("unexpected tally for a: %+v", a)
	}
	b := tallies["b@f.fc"]
	if b.Goals != 1 || b.YellowCards != 1 || b.RedCards != 1 {
		t.Errorf("unexpected tally for b: %+v", b)
	}
}

func TestResultTallyFriendlyContributesNothing(t *testing.T) {
	result := officialResult(goalBy("a@f.fc"))
	result.IsFriendly = true

	if tallies := resultTally(result); len(tallies) != 0 {
		t.Errorf("friendly result should contribute nothing, got %+v", tallies)
	}
}

func TestResultTallyExcludesGuest(t *testing.T) {
	result := officialResult(
		goalWithAssist(store.GuestPlayerID, "a@f.fc"),
		goalWithAssist("a@f.fc", store.GuestPlayerID),
	)

	tallies := resultTally(result)

	if _, ok := tallies[store.GuestPlayerID]; ok {
		t.Errorf("guest id must never appear in tallies: %+v", tallies)
	}
	a := tallies["a@f.fc"]
	if a.Goals != 1 || a.Assists != 1 {
		t.Errorf("unexpected tally for a: %+v", a)
	}
}

func TestDiffTalliesOnEdit(t *testing.T) {
	// Existing official result [A, A, B] edited to [A, B, B]: A -1, B +1.
	prev := officialResult(goalBy("a@f.fc"), goalBy("a@f.fc"), goalBy("b@f.fc"))
	next := officialResult(goalBy("a@f.fc"), goalBy("b@f.fc"), goalBy("b@f.fc"))

	diff := diffTallies(prev, next)

	if diff["a@f.fc"].Goals != -1 {
		t.Errorf("expected -1 goal for a, got %+v", diff["a@f.fc"])
	}
	if diff["b@f.fc"].Goals != 1 {
		t.Errorf("expected +1 goal for b, got %+v", diff["b@f.fc"])
	}
}

func TestDiffTalliesNoChangeIsEmpty(t *testing.T) {
	prev := officialResult(goalBy("a@f.fc"), goalBy("b@f.fc"))
	next := officialResult(goalBy("a@f.fc"), goalBy("b@f.fc"))

	if diff := diffTallies(prev, next); len(diff) != 0 {
		t.Errorf("identical results should yield no deltas, got %+v", diff)
	}
}

func TestDiffTalliesOfficialToFriendly(t *testing.T) {
	prev := officialResult(goalBy("a@f.fc"))
	next := officialResult(goalBy("a@f.fc"))
	next.IsFriendly = true

	diff := diffTallies(prev, next)
	if diff["a@f.fc"].Goals != -1 {
		t.Errorf("marking friendly should subtract the whole contribution, got %+v", diff)
	}

	// And back: the credit is restored in full.
	diff = diffTallies(next, prev)
	if diff["a@f.fc"].Goals != 1 {
		t.Errorf("marking official should restore the whole contribution, got %+v", diff)
	}
}

func TestDiffTalliesFirstSave(t *testing.T) {
	next := officialResult(goalWithAssist("a@f.fc", "b@f.fc"))

	diff := diffTallies(nil, next)

	if diff["a@f.fc"].Goals != 1 || diff["b@f.fc"].Assists != 1 {
		t.Errorf("unexpected first-save deltas: %+v", diff)
	}
}

func TestDiffTalliesFigureSwap(t *testing.T) {
	prev := officialResult(goalBy("a@f.fc"))
	prev.FigureOfTheMatchID = "a@f.fc"
	next := officialResult(goalBy("a@f.fc"))
	next.FigureOfTheMatchID = "b@f.fc"

	diff := diffTallies(prev, next)

	if diff["a@f.fc"].FigureOfTheMatch != -1 {
		t.Errorf("previous holder should lose the figure, got %+v", diff["a@f.fc"])
	}
	if diff["b@f.fc"].FigureOfTheMatch != 1 {
		t.Errorf("new holder should gain the figure, got %+v", diff["b@f.fc"])
	}
	if diff["a@f.fc"].Goals != 0 {
		t.Errorf("goal count should be untouched by the swap, got %+v", diff["a@f.fc"])
	}
}

func TestResultTallyIsIdempotent(t *testing.T) {
	// Folding the same result set twice yields identical tallies, which is
	// what makes full reprocessing safe to run repeatedly.
	results := []*store.MatchResult{
		officialResult(goalBy("a@f.fc"), goalWithAssist("b@f.fc", "a@f.fc")),
		officialResult(goalBy("b@f.fc")),
	}

	fold := func() map[string]Tally {
		totals := map[string]Tally{}
		for _, r := range results {
			for playerID, tally := range resultTally(r) {
				totals[playerID] = totals[playerID].add(tally)
			}
		}
		return totals
	}

	first := fold()
	second := fold()
	for playerID, tally := range first {
		if second[playerID] != tally {
			t.Errorf("tallies differ between runs for %s: %+v vs %+v", playerID, tally, second[playerID])
		}
	}
	if len(first) != len(second) {
		t.Errorf("tally sets differ between runs: %d vs %d", len(first), len(second))
	}
}

func TestClampAt0(t *testing.T) {
	if clampAt0(-3) != 0 {
		t.Error("negative counters must clamp to zero")
	}
	if clampAt0(4) != 4 {
		t.Error("positive counters pass through")
	}
}
