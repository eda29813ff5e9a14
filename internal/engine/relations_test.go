package engine

import (
	"errors"
	"testing"
	"time"
)

func TestPlayersOfBothTeams(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.PlayersOfBothTeams("T001", "T002")
	if err != nil {
		t.Fatalf("PlayersOfBothTeams: %v", err)
	}
	if len(players) != 1 || players[0].ID != "P007" {
		t.Fatalf("unexpected result: %+v", players)
	}

	// Non-overlapping tenures still count: Gabriel Barbosa left São
	// Paulo before joining Flamengo.
	players, err = eng.PlayersOfBothTeams("T001", "T003")
	if err != nil {
		t.Fatalf("PlayersOfBothTeams: %v", err)
	}
	if len(players) != 1 || players[0].ID != "P001" {
		t.Fatalf("unexpected result: %+v", players)
	}
}

func TestPlayersOfBothTeamsSymmetric(t *testing.T) {
	eng := newTestEngine(t)

	forward, err := eng.PlayersOfBothTeams("T001", "T002")
	if err != nil {
		t.Fatalf("PlayersOfBothTeams: %v", err)
	}
	reverse, err := eng.PlayersOfBothTeams("T002", "T001")
	if err != nil {
		t.Fatalf("PlayersOfBothTeams reversed: %v", err)
	}
	if len(forward) != len(reverse) {
		t.Fatalf("asymmetric results: %d vs %d", len(forward), len(reverse))
	}
	for i := range forward {
		if forward[i].ID != reverse[i].ID {
			t.Fatalf("asymmetric result at %d: %s vs %s", i, forward[i].ID, reverse[i].ID)
		}
	}
}

func TestPlayersOfBothTeamsUnknownTeam(t *testing.T) {
	eng := newTestEngine(t)

	if _, err := eng.PlayersOfBothTeams("T001", "T999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCommonTeammates(t *testing.T) {
	eng := newTestEngine(t)

	// Rafael Silva played with Gabriel Barbosa at Flamengo and with Dudu
	// at Palmeiras; the two shared teams differ.
	players, err := eng.CommonTeammates("P001", "P003")
	if err != nil {
		t.Fatalf("CommonTeammates: %v", err)
	}
	if len(players) != 1 || players[0].ID != "P007" {
		t.Fatalf("unexpected result: %+v", players)
	}
}

func TestCommonTeammatesExcludesInputs(t *testing.T) {
	eng := newTestEngine(t)

	// Both played for Flamengo at some point, so each is in the other's
	// teammate set, but neither may appear in the output.
	players, err := eng.CommonTeammates("P001", "P002")
	if err != nil {
		t.Fatalf("CommonTeammates: %v", err)
	}
	for _, p := range players {
		if p.ID == "P001" || p.ID == "P002" {
			t.Fatalf("input player in result: %+v", players)
		}
	}
}

func TestCommonTeammatesUnknownPlayer(t *testing.T) {
	eng := newTestEngine(t)

	if _, err := eng.CommonTeammates("P001", "P999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestCareerHistory(t *testing.T) {
	eng := newTestEngine(t)

	career, err := eng.CareerHistory("P001")
	if err != nil {
		t.Fatalf("CareerHistory: %v", err)
	}
	if len(career) != 2 {
		t.Fatalf("entry count = %d, want 2", len(career))
	}
	if career[0].TeamName != "São Paulo" || career[1].TeamName != "Flamengo" {
		t.Fatalf("entries out of order: %+v", career)
	}
	if career[0].Start.After(career[1].Start) {
		t.Fatalf("entries not sorted by start date: %+v", career)
	}
	if !career[0].End.Equal(mustDate(t, "2018-12-31")) {
		t.Fatalf("unexpected first tenure end: %v", career[0].End)
	}
	if !career[1].End.IsZero() {
		t.Fatalf("ongoing tenure should have zero end: %v", career[1].End)
	}
}

func TestCareerHistoryNoContracts(t *testing.T) {
	eng := newTestEngine(t)

	b := NewBuilder()
	if err := b.AddPlayer(Player{ID: "P100", Name: "Free Agent"}); err != nil {
		t.Fatalf("add player: %v", err)
	}
	snap, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	eng.Load(snap)

	career, err := eng.CareerHistory("P100")
	if err != nil {
		t.Fatalf("CareerHistory: %v", err)
	}
	if len(career) != 0 {
		t.Fatalf("unexpected entries: %+v", career)
	}
}

func TestTeamRosterCurrent(t *testing.T) {
	eng := newTestEngine(t)

	players, err := eng.TeamRoster("T002", time.Time{})
	if err != nil {
		t.Fatalf("TeamRoster: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("roster size = %d, want 3: %+v", len(players), players)
	}
	want := map[string]bool{"P003": true, "P004": true, "P007": true}
	for _, p := range players {
		if !want[p.ID] {
			t.Fatalf("unexpected roster member: %+v", p)
		}
	}
}

func TestTeamRosterOnDate(t *testing.T) {
	eng := newTestEngine(t)

	// Mid-2019: Rafael Silva was still at Flamengo.
	players, err := eng.TeamRoster("T001", mustDate(t, "2019-06-01"))
	if err != nil {
		t.Fatalf("TeamRoster: %v", err)
	}
	want := map[string]bool{"P001": true, "P002": true, "P007": true}
	if len(players) != len(want) {
		t.Fatalf("roster size = %d, want %d: %+v", len(players), len(want), players)
	}
	for _, p := range players {
		if !want[p.ID] {
			t.Fatalf("unexpected roster member: %+v", p)
		}
	}

	// By 2021 his contract had expired.
	players, err = eng.TeamRoster("T001", mustDate(t, "2021-06-01"))
	if err != nil {
		t.Fatalf("TeamRoster: %v", err)
	}
	for _, p := range players {
		if p.ID == "P007" {
			t.Fatalf("expired contract still on roster: %+v", players)
		}
	}
}
