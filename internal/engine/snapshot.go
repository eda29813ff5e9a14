package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Snapshot is the immutable graph loaded once at startup. All indices
// are built in Build; nothing mutates a snapshot afterwards, so it is
// safe for unrestricted concurrent reads.
type Snapshot struct {
	players      map[string]*Player
	teams        map[string]*Team
	matches      map[string]*Match
	competitions map[string]*Competition

	contractsByPlayer   map[string][]Contract
	contractsByTeam     map[string][]Contract
	appearancesByPlayer map[string][]Appearance
	appearancesByMatch  map[string][]Appearance

	matchesByTeam        map[string][]*Match
	matchesByCompetition map[string][]*Match
	matchesByDate        []*Match

	// player-id sets per team, for roster intersections
	rosterByTeam map[string]map[string]struct{}
}

func (s *Snapshot) Players() int      { return len(s.players) }
func (s *Snapshot) Teams() int        { return len(s.teams) }
func (s *Snapshot) Matches() int      { return len(s.matches) }
func (s *Snapshot) Competitions() int { return len(s.competitions) }

func (s *Snapshot) Contracts() int {
	n := 0
	for _, contracts := range s.contractsByPlayer {
		n += len(contracts)
	}
	return n
}

func (s *Snapshot) Appearances() int {
	n := 0
	for _, appearances := range s.appearancesByPlayer {
		n += len(appearances)
	}
	return n
}

// Builder accumulates entities and edges during ingestion and produces
// an immutable Snapshot. Add methods reject malformed records; Build
// rejects dangling references and duplicate ids.
type Builder struct {
	players      []Player
	teams        []Team
	matches      []Match
	competitions []Competition
	contracts    []Contract
	appearances  []Appearance
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AddPlayer(p Player) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player %s: name is required", p.ID)
	}
	b.players = append(b.players, p)
	return nil
}

func (b *Builder) AddTeam(t Team) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team %s: name is required", t.ID)
	}
	b.teams = append(b.teams, t)
	return nil
}

func (b *Builder) AddCompetition(c Competition) error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("competition id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("competition %s: name is required", c.ID)
	}
	b.competitions = append(b.competitions, c)
	return nil
}

func (b *Builder) AddMatch(m Match) error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match %s: date is required", m.ID)
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match %s: home and away team must differ", m.ID)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match %s: scores must be non-negative", m.ID)
	}
	b.matches = append(b.matches, m)
	return nil
}

func (b *Builder) AddContract(c Contract) error {
	if strings.TrimSpace(c.PlayerID) == "" || strings.TrimSpace(c.TeamID) == "" {
		return fmt.Errorf("contract: player id and team id are required")
	}
	if c.Start.IsZero() {
		return fmt.Errorf("contract %s/%s: start date is required", c.PlayerID, c.TeamID)
	}
	if !c.Ongoing() && c.End.Before(c.Start) {
		return fmt.Errorf("contract %s/%s: end date precedes start date", c.PlayerID, c.TeamID)
	}
	b.contracts = append(b.contracts, c)
	return nil
}

func (b *Builder) AddAppearance(a Appearance) error {
	if strings.TrimSpace(a.PlayerID) == "" || strings.TrimSpace(a.MatchID) == "" {
		return fmt.Errorf("appearance: player id and match id are required")
	}
	if a.Goals < 0 {
		return fmt.Errorf("appearance %s/%s: goals must be non-negative", a.PlayerID, a.MatchID)
	}
	if a.Minutes < 0 {
		return fmt.Errorf("appearance %s/%s: minutes must be non-negative", a.PlayerID, a.MatchID)
	}
	b.appearances = append(b.appearances, a)
	return nil
}

// Build checks referential integrity and constructs every index. The
// returned snapshot shares no mutable state with the builder.
func (b *Builder) Build() (*Snapshot, error) {
	s := &Snapshot{
		players:              make(map[string]*Player, len(b.players)),
		teams:                make(map[string]*Team, len(b.teams)),
		matches:              make(map[string]*Match, len(b.matches)),
		competitions:         make(map[string]*Competition, len(b.competitions)),
		contractsByPlayer:    make(map[string][]Contract),
		contractsByTeam:      make(map[string][]Contract),
		appearancesByPlayer:  make(map[string][]Appearance),
		appearancesByMatch:   make(map[string][]Appearance),
		matchesByTeam:        make(map[string][]*Match),
		matchesByCompetition: make(map[string][]*Match),
		rosterByTeam:         make(map[string]map[string]struct{}),
	}

	for i := range b.players {
		p := b.players[i]
		if _, exists := s.players[p.ID]; exists {
			return nil, fmt.Errorf("duplicate player id: %s", p.ID)
		}
		s.players[p.ID] = &p
	}
	for i := range b.teams {
		t := b.teams[i]
		if _, exists := s.teams[t.ID]; exists {
			return nil, fmt.Errorf("duplicate team id: %s", t.ID)
		}
		s.teams[t.ID] = &t
	}
	for i := range b.competitions {
		c := b.competitions[i]
		if _, exists := s.competitions[c.ID]; exists {
			return nil, fmt.Errorf("duplicate competition id: %s", c.ID)
		}
		s.competitions[c.ID] = &c
	}

	for i := range b.matches {
		m := b.matches[i]
		if _, exists := s.matches[m.ID]; exists {
			return nil, fmt.Errorf("duplicate match id: %s", m.ID)
		}
		if _, ok := s.teams[m.HomeTeamID]; !ok {
			return nil, fmt.Errorf("match %s: unknown home team %s", m.ID, m.HomeTeamID)
		}
		if _, ok := s.teams[m.AwayTeamID]; !ok {
			return nil, fmt.Errorf("match %s: unknown away team %s", m.ID, m.AwayTeamID)
		}
		if _, ok := s.competitions[m.CompetitionID]; !ok {
			return nil, fmt.Errorf("match %s: unknown competition %s", m.ID, m.CompetitionID)
		}
		s.matches[m.ID] = &m
	}

	for _, c := range b.contracts {
		if _, ok := s.players[c.PlayerID]; !ok {
			return nil, fmt.Errorf("contract: unknown player %s", c.PlayerID)
		}
		if _, ok := s.teams[c.TeamID]; !ok {
			return nil, fmt.Errorf("contract %s: unknown team %s", c.PlayerID, c.TeamID)
		}
		s.contractsByPlayer[c.PlayerID] = append(s.contractsByPlayer[c.PlayerID], c)
		s.contractsByTeam[c.TeamID] = append(s.contractsByTeam[c.TeamID], c)
		roster, ok := s.rosterByTeam[c.TeamID]
		if !ok {
			roster = make(map[string]struct{})
			s.rosterByTeam[c.TeamID] = roster
		}
		roster[c.PlayerID] = struct{}{}
	}

	for _, a := range b.appearances {
		if _, ok := s.players[a.PlayerID]; !ok {
			return nil, fmt.Errorf("appearance: unknown player %s", a.PlayerID)
		}
		if _, ok := s.matches[a.MatchID]; !ok {
			return nil, fmt.Errorf("appearance %s: unknown match %s", a.PlayerID, a.MatchID)
		}
		s.appearancesByPlayer[a.PlayerID] = append(s.appearancesByPlayer[a.PlayerID], a)
		s.appearancesByMatch[a.MatchID] = append(s.appearancesByMatch[a.MatchID], a)
	}

	for _, contracts := range s.contractsByPlayer {
		sortContracts(contracts)
	}
	for _, contracts := range s.contractsByTeam {
		sortContracts(contracts)
	}

	s.matchesByDate = make([]*Match, 0, len(s.matches))
	for _, m := range s.matches {
		s.matchesByDate = append(s.matchesByDate, m)
		s.matchesByTeam[m.HomeTeamID] = append(s.matchesByTeam[m.HomeTeamID], m)
		s.matchesByTeam[m.AwayTeamID] = append(s.matchesByTeam[m.AwayTeamID], m)
		s.matchesByCompetition[m.CompetitionID] = append(s.matchesByCompetition[m.CompetitionID], m)
	}
	sortMatches(s.matchesByDate)
	for _, matches := range s.matchesByTeam {
		sortMatches(matches)
	}
	for _, matches := range s.matchesByCompetition {
		sortMatches(matches)
	}

	return s, nil
}

func sortContracts(contracts []Contract) {
	sort.Slice(contracts, func(i, j int) bool {
		if !contracts[i].Start.Equal(contracts[j].Start) {
			return contracts[i].Start.Before(contracts[j].Start)
		}
		if contracts[i].TeamID != contracts[j].TeamID {
			return contracts[i].TeamID < contracts[j].TeamID
		}
		return contracts[i].PlayerID < contracts[j].PlayerID
	})
}

func sortMatches(matches []*Match) {
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].ID < matches[j].ID
	})
}
