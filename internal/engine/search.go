package engine

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Filter keys accepted by SearchPlayers.
const (
	FilterTeam     = "team"
	FilterPosition = "position"
)

var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases and strips diacritics, so "Grêmio" matches
// "gremio" and "São Paulo" matches "sao paulo".
func NormalizeName(s string) string {
	folded, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// SearchPlayers matches query as a case- and diacritics-insensitive
// substring of player names. Supported filter keys: "team" restricts
// to players holding a contract (at any time) with a team whose name
// matches the value as a substring; "position" requires an exact,
// case-insensitive position. Any other key fails with ErrInvalidQuery.
// The empty query is permitted and returns the full filtered set.
// Results are ordered by name, then id.
func (e *Engine) SearchPlayers(query string, filters map[string]string) ([]*Player, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	var teamFilter, positionFilter string
	for key, value := range filters {
		switch key {
		case FilterTeam:
			teamFilter = NormalizeName(value)
		case FilterPosition:
			positionFilter = NormalizeName(value)
		default:
			return nil, fmt.Errorf("unknown filter key %q: %w", key, ErrInvalidQuery)
		}
	}

	needle := NormalizeName(query)
	results := make([]*Player, 0)
	for _, p := range snap.players {
		if needle != "" && !strings.Contains(NormalizeName(p.Name), needle) {
			continue
		}
		if positionFilter != "" && NormalizeName(p.Position) != positionFilter {
			continue
		}
		if teamFilter != "" && !playerHasTeamNamed(snap, p.ID, teamFilter) {
			continue
		}
		results = append(results, p)
	}
	sortPlayers(results)
	return results, nil
}

// SearchTeams matches query as a case- and diacritics-insensitive
// substring of team names, ordered by name then id. The empty query
// returns all teams.
func (e *Engine) SearchTeams(query string) ([]*Team, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	needle := NormalizeName(query)
	results := make([]*Team, 0)
	for _, t := range snap.teams {
		if needle != "" && !strings.Contains(NormalizeName(t.Name), needle) {
			continue
		}
		results = append(results, t)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Name != results[j].Name {
			return results[i].Name < results[j].Name
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}

func playerHasTeamNamed(snap *Snapshot, playerID, normalizedName string) bool {
	for _, c := range snap.contractsByPlayer[playerID] {
		team, ok := snap.teams[c.TeamID]
		if !ok {
			continue
		}
		if strings.Contains(NormalizeName(team.Name), normalizedName) {
			return true
		}
	}
	return false
}

func sortPlayers(players []*Player) {
	sort.Slice(players, func(i, j int) bool {
		if players[i].Name != players[j].Name {
			return players[i].Name < players[j].Name
		}
		return players[i].ID < players[j].ID
	})
}
