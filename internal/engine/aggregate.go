package engine

import (
	"fmt"
	"sort"
)

// TopScorers sums appearance goals over the matches of the given
// competition and season, grouped by player, ordered by goals
// descending with ties broken by player name then id so output is
// deterministic. It fails with ErrNotFound when the competition/season
// combination has no matches. A limit of zero or less returns the full
// table.
func (e *Engine) TopScorers(competitionID, season string, limit int) ([]ScorerEntry, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.competitions[competitionID]; !ok {
		return nil, fmt.Errorf("competition %s: %w", competitionID, ErrNotFound)
	}

	goalsByPlayer := make(map[string]int)
	seen := false
	for _, m := range snap.matchesByCompetition[competitionID] {
		if m.Season != season {
			continue
		}
		seen = true
		for _, a := range snap.appearancesByMatch[m.ID] {
			goalsByPlayer[a.PlayerID] += a.Goals
		}
	}
	if !seen {
		return nil, fmt.Errorf("competition %s season %s has no matches: %w", competitionID, season, ErrNotFound)
	}

	entries := make([]ScorerEntry, 0, len(goalsByPlayer))
	for playerID, goals := range goalsByPlayer {
		if goals == 0 {
			continue
		}
		entries = append(entries, ScorerEntry{
			PlayerID:   playerID,
			PlayerName: snap.players[playerID].Name,
			Goals:      goals,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Goals != entries[j].Goals {
			return entries[i].Goals > entries[j].Goals
		}
		if entries[i].PlayerName != entries[j].PlayerName {
			return entries[i].PlayerName < entries[j].PlayerName
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// TeamStatistics classifies every finished match the team took part in
// as a win, draw or loss from the team's perspective. Season may be
// empty to cover all seasons. Matches without a recorded result are
// treated as not yet played and excluded.
func (e *Engine) TeamStatistics(teamID, season string) (TeamStats, error) {
	snap, err := e.snapshot()
	if err != nil {
		return TeamStats{}, err
	}
	team, ok := snap.teams[teamID]
	if !ok {
		return TeamStats{}, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	stats := TeamStats{TeamID: teamID, TeamName: team.Name, Season: season}
	for _, m := range snap.matchesByTeam[teamID] {
		if !m.Finished {
			continue
		}
		if season != "" && m.Season != season {
			continue
		}
		scored, conceded := m.HomeScore, m.AwayScore
		if m.AwayTeamID == teamID {
			scored, conceded = m.AwayScore, m.HomeScore
		}
		stats.MatchesPlayed++
		stats.GoalsFor += scored
		stats.GoalsAgainst += conceded
		switch {
		case scored > conceded:
			stats.Wins++
		case scored < conceded:
			stats.Losses++
		default:
			stats.Draws++
		}
	}
	return stats, nil
}

// HeadToHead aggregates all finished matches between the two teams in
// either home/away order. Two teams that never met yield zeros, not an
// error.
func (e *Engine) HeadToHead(teamAID, teamBID string) (HeadToHead, error) {
	snap, err := e.snapshot()
	if err != nil {
		return HeadToHead{}, err
	}
	if _, ok := snap.teams[teamAID]; !ok {
		return HeadToHead{}, fmt.Errorf("team %s: %w", teamAID, ErrNotFound)
	}
	if _, ok := snap.teams[teamBID]; !ok {
		return HeadToHead{}, fmt.Errorf("team %s: %w", teamBID, ErrNotFound)
	}

	record := HeadToHead{TeamAID: teamAID, TeamBID: teamBID}
	for _, m := range snap.matchesByTeam[teamAID] {
		if !m.Finished {
			continue
		}
		var goalsA, goalsB int
		switch {
		case m.HomeTeamID == teamAID && m.AwayTeamID == teamBID:
			goalsA, goalsB = m.HomeScore, m.AwayScore
		case m.HomeTeamID == teamBID && m.AwayTeamID == teamAID:
			goalsA, goalsB = m.AwayScore, m.HomeScore
		default:
			continue
		}
		record.TotalMatches++
		record.GoalsA += goalsA
		record.GoalsB += goalsB
		switch {
		case goalsA > goalsB:
			record.WinsA++
		case goalsA < goalsB:
			record.WinsB++
		default:
			record.Draws++
		}
	}
	return record, nil
}

// PlayerStatistics sums the player's appearance edges, optionally
// restricted to matches of a season.
func (e *Engine) PlayerStatistics(playerID, season string) (PlayerStats, error) {
	snap, err := e.snapshot()
	if err != nil {
		return PlayerStats{}, err
	}
	player, ok := snap.players[playerID]
	if !ok {
		return PlayerStats{}, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}

	stats := PlayerStats{PlayerID: playerID, PlayerName: player.Name, Season: season}
	for _, a := range snap.appearancesByPlayer[playerID] {
		if season != "" && snap.matches[a.MatchID].Season != season {
			continue
		}
		stats.Appearances++
		stats.Goals += a.Goals
		stats.Minutes += a.Minutes
	}
	return stats, nil
}
