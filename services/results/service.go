package results

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/samborkent/uuidv7"

	store "github.com/furia-fc/team-sync/repos/store"
)

// StatsApplier is the slice of the stats service the editor feeds.
type StatsApplier interface {
	ApplyResultDelta(ctx context.Context, prev, next *store.MatchResult) error
}

// ResultsService validates and persists match results for archived matches,
// and keeps the reference data (rivals, fixtures) they point at.
type ResultsService struct {
	storeService *store.Service
	statsService StatsApplier
	validate     *validator.Validate
	logger       zerolog.Logger
}

func NewResultsService(storeService *store.Service, statsService StatsApplier, logger zerolog.Logger) *ResultsService {
	return &ResultsService{
		storeService: storeService,
		statsService: statsService,
		validate:     validator.New(),
		logger:       logger,
	}
}

// SaveResult validates and upserts the result for one archived match, mirrors
// the rival fields back onto the archived event, and hands the stats service
// the previous result as the delta baseline. The three writes are separate
// documents and not atomic; a crash in between is repaired by reprocessing.
func (s *ResultsService) SaveResult(ctx context.Context, eventID string, req ResultRequest) (store.MatchResult, error) {
	const op = "results.SaveResult"

	if err := s.validate.Struct(req); err != nil {
		return store.MatchResult{}, store.ValidationError(op, err.Error())
	}
	if err := checkResult(req); err != nil {
		return store.MatchResult{}, err
	}

	event, err := s.storeService.GetArchivedEvent(ctx, eventID)
	if err != nil {
		return store.MatchResult{}, err
	}
	if event.Type != store.EventMatch {
		return store.MatchResult{}, store.ValidationError(op, "results can only be recorded for matches")
	}

	var prev *store.MatchResult
	existing, err := s.storeService.GetMatchResult(ctx, eventID)
	if err == nil {
		prev = &existing
	} else if !store.IsNotFound(err) {
		return store.MatchResult{}, err
	}

	now := time.Now()
	next := buildResult(req, event, prev, now)

	if err := s.storeService.SetMatchResult(ctx, eventID, next); err != nil {
		return store.MatchResult{}, err
	}

	// Mirror the opponent onto the archived event so list views don't re-join.
	err = s.storeService.UpdateArchivedEvent(ctx, eventID, []firestore.Update{
		{Path: "rivalId", Value: next.RivalID},
		{Path: "rivalName", Value: next.RivalName},
		{Path: "isFriendly", Value: next.IsFriendly},
	})
	if err != nil {
		return store.MatchResult{}, err
	}

	if err := s.statsService.ApplyResultDelta(ctx, prev, &next); err != nil {
		return store.MatchResult{}, err
	}
	return next, nil
}

// GetResult fetches the stored result for one archived match.
func (s *ResultsService) GetResult(ctx context.Context, eventID string) (store.MatchResult, error) {
	return s.storeService.GetMatchResult(ctx, eventID)
}

// DeleteMatch removes an archived match, its archived attendances and its
// result in one atomic commit. Its stats contribution is deliberately left in
// place; reprocessing is the repair path.
func (s *ResultsService) DeleteMatch(ctx context.Context, eventID string) error {
	attendances, err := s.storeService.ListArchivedAttendancesForEvent(ctx, eventID)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(attendances))
	for _, att := range attendances {
		ids = append(ids, att.ID)
	}
	return s.storeService.DeleteArchivedMatch(ctx, eventID, ids)
}

func buildResult(req ResultRequest, event store.Event, prev *store.MatchResult, now time.Time) store.MatchResult {
	result := store.MatchResult{
		RivalID:            req.RivalID,
		RivalName:          req.RivalName,
		FuriaGoals:         clampScore(req.FuriaGoals),
		RivalGoals:         clampScore(req.RivalGoals),
		FigureOfTheMatchID: req.FigureOfTheMatchID,
		IsFriendly:         req.IsFriendly,
		Date:               event.Date,
		Location:           event.Location,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if prev != nil {
		result.CreatedAt = prev.CreatedAt
	}

	for _, g := range req.Goals {
		goal := store.Goal{
			ID:               g.ID,
			PlayerID:         g.PlayerID,
			PlayerName:       g.PlayerName,
			AssistPlayerID:   g.AssistPlayerID,
			AssistPlayerName: g.AssistPlayerName,
			CreatedAt:        now,
		}
		if goal.ID == "" {
			goal.ID = uuidv7.New().String()
		}
		result.Goals = append(result.Goals, goal)
	}
	for _, c := range req.Cards {
		card := store.Card{
			ID:         c.ID,
			PlayerID:   c.PlayerID,
			PlayerName: c.PlayerName,
			CardType:   store.CardType(c.CardType),
			CreatedAt:  now,
		}
		if card.ID == "" {
			card.ID = uuidv7.New().String()
		}
		result.Cards = append(result.Cards, card)
	}
	return result
}

// ListRivals returns the rival roster.
func (s *ResultsService) ListRivals(ctx context.Context) ([]store.Rival, error) {
	return s.storeService.ListRivals(ctx)
}

// CreateRival adds a new rival.
func (s *ResultsService) CreateRival(ctx context.Context, req RivalRequest) (store.Rival, error) {
	const op = "results.CreateRival"
	if err := s.validate.Struct(req); err != nil {
		return store.Rival{}, store.ValidationError(op, err.Error())
	}
	rival := store.Rival{
		ID:        uuidv7.New().String(),
		Name:      req.Name,
		Field:     req.Field,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}
	if err := s.storeService.SetRival(ctx, rival); err != nil {
		return store.Rival{}, err
	}
	return rival, nil
}

// UpdateRival overwrites a rival's editable fields.
func (s *ResultsService) UpdateRival(ctx context.Context, id string, req RivalRequest) error {
	const op = "results.UpdateRival"
	if err := s.validate.Struct(req); err != nil {
		return store.ValidationError(op, err.Error())
	}
	rival, err := s.storeService.GetRival(ctx, id)
	if err != nil {
		return err
	}
	rival.Name = req.Name
	rival.Field = req.Field
	rival.Notes = req.Notes
	return s.storeService.SetRival(ctx, rival)
}

// DeleteRival removes a rival from the roster.
func (s *ResultsService) DeleteRival(ctx context.Context, id string) error {
	return s.storeService.DeleteRival(ctx, id)
}

// ListFixtures returns every scheduled fixture.
func (s *ResultsService) ListFixtures(ctx context.Context) ([]store.Fixture, error) {
	return s.storeService.ListFixtures(ctx)
}

// CreateFixture schedules a tournament date against a known rival.
func (s *ResultsService) CreateFixture(ctx context.Context, req FixtureRequest) (store.Fixture, error) {
	const op = "results.CreateFixture"
	if err := s.validate.Struct(req); err != nil {
		return store.Fixture{}, store.ValidationError(op, err.Error())
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return store.Fixture{}, store.ValidationError(op, "date must be RFC 3339")
	}
	rival, err := s.storeService.GetRival(ctx, req.RivalID)
	if err != nil {
		return store.Fixture{}, err
	}
	fixture := store.Fixture{
		ID:        uuidv7.New().String(),
		RivalID:   rival.ID,
		RivalName: rival.Name,
		Date:      date,
		Location:  req.Location,
		CreatedAt: time.Now(),
	}
	if err := s.storeService.SetFixture(ctx, fixture); err != nil {
		return store.Fixture{}, err
	}
	return fixture, nil
}

// LinkFixtureResult points a fixture at a played match's result, copying the
// score at link time so fixture lists render without a join.
func (s *ResultsService) LinkFixtureResult(ctx context.Context, fixtureID, resultID string) error {
	result, err := s.storeService.GetMatchResult(ctx, resultID)
	if err != nil {
		return err
	}
	return s.storeService.UpdateFixture(ctx, fixtureID, []firestore.Update{
		{Path: "resultId", Value: resultID},
		{Path: "furiaGoals", Value: result.FuriaGoals},
		{Path: "rivalGoals", Value: result.RivalGoals},
	})
}

// DeleteFixture removes a fixture.
func (s *ResultsService) DeleteFixture(ctx context.Context, id string) error {
	return s.storeService.DeleteFixture(ctx, id)
}
