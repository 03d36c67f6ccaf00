package stats

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	store "github.com/furia-fc/team-sync/repos/store"
)

// StatsService maintains the per-player stats documents. All writes are
// read-modify-write without any store-side lock: two admins editing at once
// can race, which is accepted for a human-paced team app. Reprocessing and
// recalculation are the repair paths.
type StatsService struct {
	storeService *store.Service
	logger       zerolog.Logger
}

func NewStatsService(storeService *store.Service, logger zerolog.Logger) *StatsService {
	return &StatsService{
		storeService: storeService,
		logger:       logger,
	}
}

// AttendanceEntry is one archived attendance seen from the stats side.
type AttendanceEntry struct {
	EventID   string
	Attended  bool
	EventType store.EventType
}

// ApplyAttendance increments one player's attendance counters for a batch of
// freshly archived events. Only MATCH and TRAINING entries count; archival is
// one-directional so nothing ever decrements here. The stats document is
// created lazily on first touch.
func (s *StatsService) ApplyAttendance(ctx context.Context, userID, displayName string, entries []AttendanceEntry) error {
	matches := 0
	trainings := 0
	for _, entry := range entries {
		if !entry.Attended || !entry.EventType.CountsForStats() {
			continue
		}
		if entry.EventType == store.EventMatch {
			matches++
		} else {
			trainings++
		}
	}
	if matches == 0 && trainings == 0 {
		return nil
	}

	current, err := s.storeService.GetPlayerStats(ctx, userID)
	if err != nil && !store.IsNotFound(err) {
		return err
	}

	newMatches := current.MatchesAttended + matches
	newTrainings := current.TrainingsAttended + trainings
	fields := map[string]interface{}{
		"userId":            userID,
		"matchesAttended":   newMatches,
		"trainingsAttended": newTrainings,
		"totalAttended":     newMatches + newTrainings,
		"lastUpdated":       time.Now(),
	}
	if displayName != "" {
		fields["displayName"] = displayName
	}
	return s.storeService.MergePlayerStats(ctx, userID, fields)
}

// ApplyResultDelta moves every affected player's counters from the previous
// result's contribution to the new one's. prev is nil on first save. Counters
// are clamped at zero and zero deltas produce no write. A figure-of-the-match
// swap decrements the old holder and increments the new one in this single
// pass, though the two writes are still separate documents and not atomic.
func (s *StatsService) ApplyResultDelta(ctx context.Context, prev, next *store.MatchResult) error {
	diff := diffTallies(prev, next)
	if len(diff) == 0 {
		return nil
	}

	names := playerNames(next)
	for playerID, name := range playerNames(prev) {
		if _, ok := names[playerID]; !ok {
			names[playerID] = name
		}
	}

	for playerID, delta := range diff {
		current, err := s.storeService.GetPlayerStats(ctx, playerID)
		if err != nil && !store.IsNotFound(err) {
			return err
		}

		fields := map[string]interface{}{
			"userId":           playerID,
			"goals":            clampAt0(current.Goals + delta.Goals),
			"assists":          clampAt0(current.Assists + delta.Assists),
			"yellowCards":      clampAt0(current.YellowCards + delta.YellowCards),
			"redCards":         clampAt0(current.RedCards + delta.RedCards),
			"figureOfTheMatch": clampAt0(current.FigureOfTheMatch + delta.FigureOfTheMatch),
			"lastUpdated":      time.Now(),
		}
		if name := names[playerID]; name != "" {
			fields["displayName"] = name
		}
		if err := s.storeService.MergePlayerStats(ctx, playerID, fields); err != nil {
			return err
		}
	}
	return nil
}

// Reprocess recomputes goals, assists, cards and figure-of-the-match for
// every player with any match activity by folding over all stored results,
// then overwrites those five fields. Attendance counters are untouched.
// Scanning the same result set twice yields the same tallies, so running it
// repeatedly is safe.
func (s *StatsService) Reprocess(ctx context.Context) error {
	results, err := s.storeService.ListMatchResults(ctx)
	if err != nil {
		return err
	}

	totals := map[string]Tally{}
	names := map[string]string{}
	for _, result := range results {
		result := result
		for playerID, t := range resultTally(&result) {
			totals[playerID] = totals[playerID].add(t)
		}
		for playerID, name := range playerNames(&result) {
			if name != "" {
				names[playerID] = name
			}
		}
	}

	s.logger.Info().Int("results", len(results)).Int("players", len(totals)).Msg("reprocessing match stats")

	for playerID, total := range totals {
		fields := map[string]interface{}{
			"userId":           playerID,
			"goals":            total.Goals,
			"assists":          total.Assists,
			"yellowCards":      total.YellowCards,
			"redCards":         total.RedCards,
			"figureOfTheMatch": total.FigureOfTheMatch,
			"lastUpdated":      time.Now(),
		}
		if name := names[playerID]; name != "" {
			fields["displayName"] = name
		}
		if err := s.storeService.MergePlayerStats(ctx, playerID, fields); err != nil {
			return err
		}
	}
	return nil
}

// RecalculateAttendance recomputes the three attendance counters from scratch
// by joining archived attendances against archived event types. Like
// Reprocess it is a manual repair tool and idempotent.
func (s *StatsService) RecalculateAttendance(ctx context.Context) error {
	events, err := s.storeService.ListArchivedEvents(ctx)
	if err != nil {
		return err
	}
	attendances, err := s.storeService.ListArchivedAttendances(ctx)
	if err != nil {
		return err
	}

	eventTypes := map[string]store.EventType{}
	for _, event := range events {
		eventTypes[event.ID] = event.Type
	}

	type counts struct{ matches, trainings int }
	perUser := map[string]counts{}
	names := map[string]string{}
	for _, att := range attendances {
		if !att.IsAttending() {
			continue
		}
		eventType, ok := eventTypes[att.EventID]
		if !ok || !eventType.CountsForStats() {
			continue
		}
		c := perUser[att.UserID]
		if eventType == store.EventMatch {
			c.matches++
		} else {
			c.trainings++
		}
		perUser[att.UserID] = c
		if att.UserDisplayName != "" {
			names[att.UserID] = att.UserDisplayName
		}
	}

	s.logger.Info().Int("attendances", len(attendances)).Int("players", len(perUser)).Msg("recalculating attendance stats")

	for userID, c := range perUser {
		fields := map[string]interface{}{
			"userId":            userID,
			"matchesAttended":   c.matches,
			"trainingsAttended": c.trainings,
			"totalAttended":     c.matches + c.trainings,
			"lastUpdated":       time.Now(),
		}
		if name := names[userID]; name != "" {
			fields["displayName"] = name
		}
		if err := s.storeService.MergePlayerStats(ctx, userID, fields); err != nil {
			return err
		}
	}
	return nil
}

// List returns every player's stats document.
func (s *StatsService) List(ctx context.Context) ([]store.PlayerStats, error) {
	return s.storeService.ListPlayerStats(ctx)
}
