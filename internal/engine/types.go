package engine

import "time"

type Player struct {
	ID          string
	Name        string
	Position    string
	Nationality string
	BirthDate   time.Time
	Jersey      int
}

type Team struct {
	ID      string
	Name    string
	City    string
	Stadium string
	Founded int
	Colors  string
}

type Competition struct {
	ID     string
	Name   string
	Season string
	Kind   string
}

// Match scores are only meaningful when Finished is true; a scheduled
// match that has not been played carries zero scores and Finished false.
type Match struct {
	ID            string
	Date          time.Time
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     int
	AwayScore     int
	Finished      bool
	CompetitionID string
	Season        string
	Attendance    int
}

// Contract is the tenure edge between a player and a team. A zero End
// means the contract is ongoing.
type Contract struct {
	PlayerID string
	TeamID   string
	Start    time.Time
	End      time.Time
}

func (c Contract) Ongoing() bool {
	return c.End.IsZero()
}

// Covers reports whether the contract was active on the given date.
func (c Contract) Covers(on time.Time) bool {
	if on.Before(c.Start) {
		return false
	}
	return c.Ongoing() || !on.After(c.End)
}

// Appearance links a player to a match they played in.
type Appearance struct {
	PlayerID string
	MatchID  string
	Goals    int
	Minutes  int
}

// CareerEntry is one tenure in a player's career history. A zero End
// means the tenure is ongoing.
type CareerEntry struct {
	TeamID   string
	TeamName string
	Start    time.Time
	End      time.Time
}

type ScorerEntry struct {
	PlayerID   string
	PlayerName string
	Goals      int
}

type TeamStats struct {
	TeamID        string
	TeamName      string
	Season        string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
}

type HeadToHead struct {
	TeamAID      string
	TeamBID      string
	TotalMatches int
	WinsA        int
	WinsB        int
	Draws        int
	GoalsA       int
	GoalsB       int
}

type PlayerStats struct {
	PlayerID    string
	PlayerName  string
	Season      string
	Appearances int
	Goals       int
	Minutes     int
}

// MatchScorer is a per-player goal line for a single match.
type MatchScorer struct {
	PlayerID   string
	PlayerName string
	Goals      int
}

type MatchDetail struct {
	Match       *Match
	HomeTeam    *Team
	AwayTeam    *Team
	Competition *Competition
	Scorers     []MatchScorer
}
