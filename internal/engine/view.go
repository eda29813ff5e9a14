package engine

import "sort"

// Read-only views over the snapshot used by consistency checks and
// presentation code. Returned slices are fresh copies of index order;
// the underlying entities must not be mutated.

func (s *Snapshot) AllPlayers() []*Player {
	players := make([]*Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players
}

func (s *Snapshot) AllTeams() []*Team {
	teams := make([]*Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams
}

func (s *Snapshot) AllCompetitions() []*Competition {
	competitions := make([]*Competition, 0, len(s.competitions))
	for _, c := range s.competitions {
		competitions = append(competitions, c)
	}
	sort.Slice(competitions, func(i, j int) bool { return competitions[i].ID < competitions[j].ID })
	return competitions
}

func (s *Snapshot) AllMatches() []*Match {
	return append([]*Match{}, s.matchesByDate...)
}

func (s *Snapshot) TeamByID(id string) (*Team, bool) {
	t, ok := s.teams[id]
	return t, ok
}

func (s *Snapshot) MatchByID(id string) (*Match, bool) {
	m, ok := s.matches[id]
	return m, ok
}

func (s *Snapshot) PlayerContracts(playerID string) []Contract {
	return append([]Contract{}, s.contractsByPlayer[playerID]...)
}

func (s *Snapshot) PlayerAppearances(playerID string) []Appearance {
	return append([]Appearance{}, s.appearancesByPlayer[playerID]...)
}

func (s *Snapshot) CompetitionMatches(competitionID string) []*Match {
	return append([]*Match{}, s.matchesByCompetition[competitionID]...)
}
