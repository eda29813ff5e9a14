package engine

import (
	"fmt"
	"sort"
	"time"
)

// MatchDetails returns the match together with both team identities,
// the competition, and the scorers recorded through appearance edges.
func (e *Engine) MatchDetails(matchID string) (*MatchDetail, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	m, ok := snap.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", matchID, ErrNotFound)
	}

	detail := &MatchDetail{
		Match:       m,
		HomeTeam:    snap.teams[m.HomeTeamID],
		AwayTeam:    snap.teams[m.AwayTeamID],
		Competition: snap.competitions[m.CompetitionID],
	}
	for _, a := range snap.appearancesByMatch[matchID] {
		if a.Goals == 0 {
			continue
		}
		detail.Scorers = append(detail.Scorers, MatchScorer{
			PlayerID:   a.PlayerID,
			PlayerName: snap.players[a.PlayerID].Name,
			Goals:      a.Goals,
		})
	}
	sort.Slice(detail.Scorers, func(i, j int) bool {
		if detail.Scorers[i].Goals != detail.Scorers[j].Goals {
			return detail.Scorers[i].Goals > detail.Scorers[j].Goals
		}
		return detail.Scorers[i].PlayerName < detail.Scorers[j].PlayerName
	})
	return detail, nil
}

// MatchesByTeam resolves the team by fuzzy name through the search
// index and returns every match any matched team played in, home or
// away, ordered by date. It fails with ErrNotFound when no team name
// matches.
func (e *Engine) MatchesByTeam(teamName string) ([]*Match, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	teams, err := e.SearchTeams(teamName)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("team %q: %w", teamName, ErrNotFound)
	}

	seen := make(map[string]struct{})
	results := make([]*Match, 0)
	for _, t := range teams {
		for _, m := range snap.matchesByTeam[t.ID] {
			if _, dup := seen[m.ID]; dup {
				continue
			}
			seen[m.ID] = struct{}{}
			results = append(results, m)
		}
	}
	sortMatches(results)
	return results, nil
}

// MatchesByDateRange returns all matches whose date falls within the
// inclusive [start, end] window, ordered by date. A start after end
// fails with ErrInvalidQuery; an empty window is not an error.
func (e *Engine) MatchesByDateRange(start, end time.Time) ([]*Match, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("start date %s after end date %s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), ErrInvalidQuery)
	}

	// matchesByDate is sorted, so binary-search the lower bound.
	matches := snap.matchesByDate
	lo := sort.Search(len(matches), func(i int) bool {
		return !matches[i].Date.Before(start)
	})

	results := make([]*Match, 0)
	for _, m := range matches[lo:] {
		if m.Date.After(end) {
			break
		}
		results = append(results, m)
	}
	return results, nil
}
