package engine

import (
	"fmt"
	"time"
)

// PlayersOfBothTeams returns the players holding at least one contract
// with each of the two teams. Tenures do not have to overlap in time:
// a real player cannot be contracted to two clubs at once, so the
// query means "ever contracted to both". Symmetric in its arguments.
func (e *Engine) PlayersOfBothTeams(teamAID, teamBID string) ([]*Player, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.teams[teamAID]; !ok {
		return nil, fmt.Errorf("team %s: %w", teamAID, ErrNotFound)
	}
	if _, ok := snap.teams[teamBID]; !ok {
		return nil, fmt.Errorf("team %s: %w", teamBID, ErrNotFound)
	}

	small, large := snap.rosterByTeam[teamAID], snap.rosterByTeam[teamBID]
	if len(large) < len(small) {
		small, large = large, small
	}

	results := make([]*Player, 0)
	for playerID := range small {
		if _, ok := large[playerID]; ok {
			results = append(results, snap.players[playerID])
		}
	}
	sortPlayers(results)
	return results, nil
}

// CommonTeammates returns the players, excluding x and y themselves,
// who shared a team with x and a team with y. The two shared teams may
// differ: "played with both at some team" does not require all three
// to have been at the same club.
func (e *Engine) CommonTeammates(playerXID, playerYID string) ([]*Player, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.players[playerXID]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerXID, ErrNotFound)
	}
	if _, ok := snap.players[playerYID]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerYID, ErrNotFound)
	}

	teammatesOfX := teammatesOf(snap, playerXID)
	teammatesOfY := teammatesOf(snap, playerYID)

	results := make([]*Player, 0)
	for playerID := range teammatesOfX {
		if playerID == playerXID || playerID == playerYID {
			continue
		}
		if _, ok := teammatesOfY[playerID]; ok {
			results = append(results, snap.players[playerID])
		}
	}
	sortPlayers(results)
	return results, nil
}

// CareerHistory returns the player's tenures ordered by start date
// ascending. Adjacent tenures at the same team are never merged, and
// an ongoing tenure carries a zero End.
func (e *Engine) CareerHistory(playerID string) ([]CareerEntry, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.players[playerID]; !ok {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrNotFound)
	}

	contracts := snap.contractsByPlayer[playerID]
	entries := make([]CareerEntry, 0, len(contracts))
	for _, c := range contracts {
		entries = append(entries, CareerEntry{
			TeamID:   c.TeamID,
			TeamName: snap.teams[c.TeamID].Name,
			Start:    c.Start,
			End:      c.End,
		})
	}
	return entries, nil
}

// TeamRoster returns the players under contract with the team on the
// given date. A zero date selects ongoing contracts, i.e. the current
// roster.
func (e *Engine) TeamRoster(teamID string, on time.Time) ([]*Player, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if _, ok := snap.teams[teamID]; !ok {
		return nil, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	seen := make(map[string]struct{})
	results := make([]*Player, 0)
	for _, c := range snap.contractsByTeam[teamID] {
		if on.IsZero() {
			if !c.Ongoing() {
				continue
			}
		} else if !c.Covers(on) {
			continue
		}
		if _, dup := seen[c.PlayerID]; dup {
			continue
		}
		seen[c.PlayerID] = struct{}{}
		results = append(results, snap.players[c.PlayerID])
	}
	sortPlayers(results)
	return results, nil
}

// teammatesOf collects everyone who had a contract with any team the
// player had a contract with, the player included.
func teammatesOf(snap *Snapshot, playerID string) map[string]struct{} {
	teammates := make(map[string]struct{})
	for _, c := range snap.contractsByPlayer[playerID] {
		for teammateID := range snap.rosterByTeam[c.TeamID] {
			teammates[teammateID] = struct{}{}
		}
	}
	return teammates
}
