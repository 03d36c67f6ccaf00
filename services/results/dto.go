package results

// GoalInput is one scored goal in a result payload.
type GoalInput struct {
	ID               string `json:"id"`
	PlayerID         string `json:"playerId" validate:"required"`
	PlayerName       string `json:"playerName"`
	AssistPlayerID   string `json:"assistPlayerId"`
	AssistPlayerName string `json:"assistPlayerName"`
}

// CardInput is one booking in a result payload.
type CardInput struct {
	ID         string `json:"id"`
	PlayerID   string `json:"playerId" validate:"required"`
	PlayerName string `json:"playerName"`
	CardType   string `json:"cardType" validate:"oneof=yellow red"`
}

// ResultRequest is the payload for saving a match result.
type ResultRequest struct {
	RivalID            string      `json:"rivalId" validate:"required"`
	RivalName          string      `json:"rivalName"`
	FuriaGoals         int         `json:"furiaGoals"`
	RivalGoals         int         `json:"rivalGoals"`
	Goals              []GoalInput `json:"goals" validate:"dive"`
	Cards              []CardInput `json:"cards" validate:"dive"`
	FigureOfTheMatchID string      `json:"figureOfTheMatchId"`
	IsFriendly         bool        `json:"isFriendly"`
}

// RivalRequest is the payload for creating or updating a rival.
type RivalRequest struct {
	Name  string `json:"name" validate:"required"`
	Field string `json:"field"`
	Notes string `json:"notes"`
}

// FixtureRequest is the payload for creating or updating a fixture.
type FixtureRequest struct {
	RivalID  string `json:"rivalId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location"`
}
