package engine

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Grêmio", "gremio"},
		{"São Paulo", "sao paulo"},
		{"Éverton Ribeiro", "everton ribeiro"},
		{"FLAMENGO", "flamengo"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearchPlayers(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.SearchPlayers("barbosa", nil)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 1 || players[0].ID != "P001" {
		t.Fatalf("unexpected result: %+v", players)
	}
}

func TestSearchPlayersDiacriticsInsensitive(t *testing.T) {
	eng := newTestEngine(t)

	// "everton" without the accent matches both Éverton Ribeiro and
	// Weverton.
	players, err := eng.SearchPlayers("everton", nil)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("result count = %d, want 2: %+v", len(players), players)
	}
	found := map[string]bool{}
	for _, p := range players {
		found[p.ID] = true
	}
	if !found["P002"] || !found["P004"] {
		t.Fatalf("unexpected results: %+v", players)
	}
}

func TestSearchPlayersFilters(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.SearchPlayers("", map[string]string{
		FilterTeam:     "flamengo",
		FilterPosition: "Forward",
	})
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 1 || players[0].ID != "P001" {
		t.Fatalf("unexpected result: %+v", players)
	}

	// Position is exact: "For" must not match "Forward".
	players, err = eng.SearchPlayers("", map[string]string{FilterPosition: "For"})
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("partial position matched: %+v", players)
	}
}

func TestSearchPlayersEmptyQueryReturnsFilteredSet(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.SearchPlayers("", map[string]string{FilterPosition: "forward"})
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 4 {
		t.Fatalf("forward count = %d, want 4: %+v", len(players), players)
	}
	for i := 1; i < len(players); i++ {
		if players[i-1].Name > players[i].Name {
			t.Fatalf("results not sorted by name: %+v", players)
		}
	}
}

func TestSearchPlayersTeamFilterIncludesAllContractHolders(t *testing.T) {
	eng := newTestEngine(t)

	// Every player with a contract at a team must come back when the
	// team filter names it, past and present tenures alike.
	teams, err := eng.SearchTeams("")
	if err != nil {
		t.Fatalf("SearchTeams: %v", err)
	}
	for _, team := range teams {
		players, err := eng.SearchPlayers("", map[string]string{FilterTeam: team.Name})
		if err != nil {
			t.Fatalf("SearchPlayers for %s: %v", team.Name, err)
		}
		found := make(map[string]bool, len(players))
		for _, p := range players {
			found[p.ID] = true
		}
		roster, err := eng.TeamRoster(team.ID, time.Time{})
		if err != nil {
			t.Fatalf("TeamRoster: %v", err)
		}
		for _, p := range roster {
			if !found[p.ID] {
				t.Fatalf("player %s missing from team filter %q: %+v", p.ID, team.Name, players)
			}
		}
	}
}

func TestSearchPlayersUnknownFilterKey(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.SearchPlayers("gabriel", map[string]string{"nationality": "Brazil"})
	if !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("error = %v, want ErrInvalidQuery", err)
	}
}

func TestSearchPlayersNoMatchIsEmptyNotError(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.SearchPlayers("zico", nil)
	if err != nil {
		t.Fatalf("SearchPlayers: %v", err)
	}
	if len(players) != 0 {
		t.Fatalf("unexpected matches: %+v", players)
	}
}

func TestSearchTeams(t *testing.T) {
	eng := newTestEngine(t)

	teams, err := eng.SearchTeams("sao")
	if err != nil {
		t.Fatalf("SearchTeams: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != "T003" {
		t.Fatalf("unexpected result: %+v", teams)
	}
}

func TestSearchTeamsEmptyQueryReturnsAll(t *testing.T) {
	eng := newTestEngine(t)

	teams, err := eng.SearchTeams("")
	if err != nil {
		t.Fatalf("SearchTeams: %v", err)
	}
	if len(teams) != 4 {
		t.Fatalf("result count = %d, want 4", len(teams))
	}
}
