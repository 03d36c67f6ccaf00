package results

import (
	"testing"

	store "github.com/furia-fc/team-sync/repos/store"
)

func goals(playerIDs ...string) []GoalInput {
	var out []GoalInput
	for _, id := range playerIDs {
		out = append(out, GoalInput{PlayerID: id, PlayerName: id})
	}
	return out
}

func TestCheckResultGoalCount(t *testing.T) {
	cases := []struct {
		name    string
		req     ResultRequest
		wantErr bool
	}{
		{
			name:    "three goals three entries",
			req:     ResultRequest{RivalID: "r1", FuriaGoals: 3, Goals: goals("a", "b", "c")},
			wantErr: false,
		},
		{
			name:    "three goals two entries",
			req:     ResultRequest{RivalID: "r1", FuriaGoals: 3, Goals: goals("a", "b")},
			wantErr: true,
		},
		{
			name:    "three goals four entries",
			req:     ResultRequest{RivalID: "r1", FuriaGoals: 3, Goals: goals("a", "b", "c", "d")},
			wantErr: true,
		},
		{
			name:    "goalless draw",
			req:     ResultRequest{RivalID: "r1", FuriaGoals: 0, RivalGoals: 0},
			wantErr: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := checkResult(c.req)
			if c.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckResultGuestOnlyInFriendlies(t *testing.T) {
	official := ResultRequest{RivalID: "r1", FuriaGoals: 1, Goals: goals(store.GuestPlayerID)}
	if err := checkResult(official); err == nil {
		t.Error("guest scorer in an official match must be rejected")
	}

	friendly := official
	friendly.IsFriendly = true
	if err := checkResult(friendly); err != nil {
		t.Errorf("guest scorer in a friendly should pass, got %v", err)
	}

	guestAssist := ResultRequest{
		RivalID:    "r1",
		FuriaGoals: 1,
		Goals:      []GoalInput{{PlayerID: "a", AssistPlayerID: store.GuestPlayerID}},
	}
	if err := checkResult(guestAssist); err == nil {
		t.Error("guest assist in an official match must be rejected")
	}
}

func TestClampScore(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{4, 4},
		{99, 99},
		{150, 99},
	}
	for _, c := range cases {
		if got := clampScore(c.in); got != c.want {
			t.Errorf("clampScore(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
