package store

import "time"

// Collection names.
const (
	ColEvents             = "events"
	ColEventsArchive      = "events_archive"
	ColAttendances        = "attendances"
	ColAttendancesArchive = "attendances_archive"
	ColRivals             = "rivals"
	ColFixtures           = "fixtures"
	ColMatchResults       = "match_results"
	ColStats              = "stats"
	ColUsers              = "users"
)

// GuestPlayerID is the synthetic scorer id allowed in friendly matches only.
// Goals and assists credited to it never reach any player's stats.
const GuestPlayerID = "INVITADO"

type EventType string

const (
	EventTraining EventType = "TRAINING"
	EventMatch    EventType = "MATCH"
	EventBirthday EventType = "BIRTHDAY"
	EventCustom   EventType = "CUSTOM"
)

// CountsForStats reports whether attendance at this event type feeds the
// per-player counters.
func (t EventType) CountsForStats() bool {
	return t == EventMatch || t == EventTraining
}

type RecurringType string

const (
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
)

type AttendanceStatus string

const (
	StatusAttending    AttendanceStatus = "attending"
	StatusNotAttending AttendanceStatus = "not-attending"
	StatusPending      AttendanceStatus = "pending"
	// StatusNotVoted is synthesized at read time for roster members with no
	// attendance document. It is never persisted.
	StatusNotVoted AttendanceStatus = "not-voted"
)

type CardType string

const (
	CardYellow CardType = "yellow"
	CardRed    CardType = "red"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RolePlayer Role = "PLAYER"
	RoleViewer Role = "VIEWER"
)

type Event struct {
	ID               string        `firestore:"id"`
	Type             EventType     `firestore:"type"`
	Date             time.Time     `firestore:"date"`
	Title            string        `firestore:"title"`
	Description      string        `firestore:"description,omitempty"`
	Location         string        `firestore:"location,omitempty"`
	CreatedBy        string        `firestore:"createdBy"`
	CreatedAt        time.Time     `firestore:"createdAt"`
	IsRecurring      bool          `firestore:"isRecurring"`
	RecurringType    RecurringType `firestore:"recurringType,omitempty"`
	RecurringEndDate time.Time     `firestore:"recurringEndDate,omitempty"`
	OriginalEventID  string        `firestore:"originalEventId,omitempty"`
	RivalID          string        `firestore:"rivalId,omitempty"`
	RivalName        string        `firestore:"rivalName,omitempty"`
	IsFriendly       bool          `firestore:"isFriendly,omitempty"`
	Suspended        bool          `firestore:"suspended"`
	SuspendedBy      string        `firestore:"suspendedBy,omitempty"`
	SuspendedAt      time.Time     `firestore:"suspendedAt,omitempty"`
	ArchivedAt       time.Time     `firestore:"archivedAt,omitempty"`
}

type Attendance struct {
	ID              string           `firestore:"id"`
	EventID         string           `firestore:"eventId"`
	UserID          string           `firestore:"userId"`
	UserDisplayName string           `firestore:"userDisplayName"`
	// Attending predates Status and is kept in sync on every write so old
	// readers keep working. Status wins when both are present.
	Attending   bool             `firestore:"attending"`
	Status      AttendanceStatus `firestore:"status,omitempty"`
	Comment     string           `firestore:"comment,omitempty"`
	WithCar     bool             `firestore:"withCar"`
	CanGiveRide bool             `firestore:"canGiveRide"`
	CreatedAt   time.Time        `firestore:"createdAt"`
	UpdatedAt   time.Time        `firestore:"updatedAt"`
	ArchivedAt  time.Time        `firestore:"archivedAt,omitempty"`
}

// IsAttending resolves the status/legacy-bool pair.
func (a Attendance) IsAttending() bool {
	if a.Status != "" {
		return a.Status == StatusAttending
	}
	return a.Attending
}

// PlayerStats is keyed by player email, one document per player.
// Invariant: TotalAttended == MatchesAttended + TrainingsAttended.
type PlayerStats struct {
	UserID            string    `firestore:"userId"`
	DisplayName       string    `firestore:"displayName"`
	MatchesAttended   int       `firestore:"matchesAttended"`
	TrainingsAttended int       `firestore:"trainingsAttended"`
	TotalAttended     int       `firestore:"totalAttended"`
	Goals             int       `firestore:"goals"`
	Assists           int       `firestore:"assists"`
	YellowCards       int       `firestore:"yellowCards"`
	RedCards          int       `firestore:"redCards"`
	FigureOfTheMatch  int       `firestore:"figureOfTheMatch"`
	LastUpdated       time.Time `firestore:"lastUpdated"`
}

type Goal struct {
	ID               string    `firestore:"id"`
	PlayerID         string    `firestore:"playerId"`
	PlayerName       string    `firestore:"playerName"`
	AssistPlayerID   string    `firestore:"assistPlayerId,omitempty"`
	AssistPlayerName string    `firestore:"assistPlayerName,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt"`
}

type Card struct {
	ID         string    `firestore:"id"`
	PlayerID   string    `firestore:"playerId"`
	PlayerName string    `firestore:"playerName"`
	CardType   CardType  `firestore:"cardType"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// MatchResult is keyed by the originating event's id.
type MatchResult struct {
	RivalID            string    `firestore:"rivalId"`
	RivalName          string    `firestore:"rivalName"`
	FuriaGoals         int       `firestore:"furiaGoals"`
	RivalGoals         int       `firestore:"rivalGoals"`
	Goals              []Goal    `firestore:"goals"`
	Cards              []Card    `firestore:"cards"`
	FigureOfTheMatchID string    `firestore:"figureOfTheMatchId,omitempty"`
	IsFriendly         bool      `firestore:"isFriendly"`
	Date               time.Time `firestore:"date"`
	Location           string    `firestore:"location,omitempty"`
	CreatedAt          time.Time `firestore:"createdAt"`
	UpdatedAt          time.Time `firestore:"updatedAt"`
}

type Rival struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	Field     string    `firestore:"field,omitempty"`
	Notes     string    `firestore:"notes,omitempty"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type Fixture struct {
	ID          string    `firestore:"id"`
	RivalID     string    `firestore:"rivalId"`
	RivalName   string    `firestore:"rivalName"`
	Date        time.Time `firestore:"date"`
	Location    string    `firestore:"location,omitempty"`
	ResultID    string    `firestore:"resultId,omitempty"`
	FuriaGoals  int       `firestore:"furiaGoals,omitempty"`
	RivalGoals  int       `firestore:"rivalGoals,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

type User struct {
	ID          string    `firestore:"id"`
	Email       string    `firestore:"email"`
	DisplayName string    `firestore:"displayName"`
	Role        Role      `firestore:"role"`
	CreatedAt   time.Time `firestore:"createdAt"`
}
