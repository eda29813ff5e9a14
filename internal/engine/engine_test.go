package engine

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

// newTestEngine builds a small but complete graph: four clubs, two
// competitions, one full Série A season plus a scheduled match and one
// match from the following season.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	b := NewBuilder()

	teams := []Team{
		{ID: "T001", Name: "Flamengo", City: "Rio de Janeiro", Stadium: "Maracanã", Founded: 1895},
		{ID: "T002", Name: "Palmeiras", City: "São Paulo", Stadium: "Allianz Parque", Founded: 1914},
		{ID: "T003", Name: "São Paulo", City: "São Paulo", Stadium: "Morumbi", Founded: 1930},
		{ID: "T004", Name: "Grêmio", City: "Porto Alegre", Stadium: "Arena do Grêmio", Founded: 1903},
	}
	for _, team := range teams {
		if err := b.AddTeam(team); err != nil {
			t.Fatalf("add team %s: %v", team.ID, err)
		}
	}

	competitions := []Competition{
		{ID: "C001", Name: "Brasileirão Série A", Season: "2023", Kind: "league"},
		{ID: "C002", Name: "Copa do Brasil", Season: "2023", Kind: "cup"},
	}
	for _, comp := range competitions {
		if err := b.AddCompetition(comp); err != nil {
			t.Fatalf("add competition %s: %v", comp.ID, err)
		}
	}

	players := []Player{
		{ID: "P001", Name: "Gabriel Barbosa", Position: "Forward", Nationality: "Brazil"},
		{ID: "P002", Name: "Éverton Ribeiro", Position: "Midfielder", Nationality: "Brazil"},
		{ID: "P003", Name: "Dudu", Position: "Forward", Nationality: "Brazil"},
		{ID: "P004", Name: "Weverton", Position: "Goalkeeper", Nationality: "Brazil"},
		{ID: "P005", Name: "Jonathan Calleri", Position: "Forward", Nationality: "Argentina"},
		{ID: "P006", Name: "Luís Suárez", Position: "Forward", Nationality: "Uruguay"},
		{ID: "P007", Name: "Rafael Silva", Position: "Defender", Nationality: "Brazil"},
	}
	for _, player := range players {
		if err := b.AddPlayer(player); err != nil {
			t.Fatalf("add player %s: %v", player.ID, err)
		}
	}

	contracts := []Contract{
		{PlayerID: "P001", TeamID: "T003", Start: mustDate(t, "2015-01-01"), End: mustDate(t, "2018-12-31")},
		{PlayerID: "P001", TeamID: "T001", Start: mustDate(t, "2019-01-01")},
		{PlayerID: "P002", TeamID: "T001", Start: mustDate(t, "2017-06-01")},
		{PlayerID: "P003", TeamID: "T002", Start: mustDate(t, "2015-01-10")},
		{PlayerID: "P004", TeamID: "T002", Start: mustDate(t, "2018-01-01")},
		{PlayerID: "P005", TeamID: "T003", Start: mustDate(t, "2021-01-01")},
		{PlayerID: "P006", TeamID: "T004", Start: mustDate(t, "2023-01-01"), End: mustDate(t, "2023-12-31")},
		{PlayerID: "P007", TeamID: "T001", Start: mustDate(t, "2019-01-01"), End: mustDate(t, "2020-12-31")},
		{PlayerID: "P007", TeamID: "T002", Start: mustDate(t, "2021-01-01")},
	}
	for _, contract := range contracts {
		if err := b.AddContract(contract); err != nil {
			t.Fatalf("add contract %s/%s: %v", contract.PlayerID, contract.TeamID, err)
		}
	}

	matches := []Match{
		{ID: "M001", Date: mustDate(t, "2023-05-10"), HomeTeamID: "T001", AwayTeamID: "T002", HomeScore: 2, AwayScore: 1, Finished: true, CompetitionID: "C001", Season: "2023", Attendance: 65000},
		{ID: "M002", Date: mustDate(t, "2023-06-20"), HomeTeamID: "T002", AwayTeamID: "T001", HomeScore: 1, AwayScore: 1, Finished: true, CompetitionID: "C001", Season: "2023"},
		{ID: "M003", Date: mustDate(t, "2023-07-15"), HomeTeamID: "T001", AwayTeamID: "T003", HomeScore: 3, AwayScore: 0, Finished: true, CompetitionID: "C001", Season: "2023"},
		{ID: "M004", Date: mustDate(t, "2023-08-05"), HomeTeamID: "T004", AwayTeamID: "T001", HomeScore: 0, AwayScore: 2, Finished: true, CompetitionID: "C001", Season: "2023"},
		{ID: "M005", Date: mustDate(t, "2023-09-12"), HomeTeamID: "T002", AwayTeamID: "T003", HomeScore: 2, AwayScore: 2, Finished: true, CompetitionID: "C001", Season: "2023"},
		{ID: "M006", Date: mustDate(t, "2024-04-14"), HomeTeamID: "T001", AwayTeamID: "T002", HomeScore: 1, AwayScore: 0, Finished: true, CompetitionID: "C001", Season: "2024"},
		{ID: "M007", Date: mustDate(t, "2023-11-30"), HomeTeamID: "T001", AwayTeamID: "T004", CompetitionID: "C001", Season: "2023"},
		{ID: "M008", Date: mustDate(t, "2023-10-01"), HomeTeamID: "T003", AwayTeamID: "T004", HomeScore: 2, AwayScore: 1, Finished: true, CompetitionID: "C001", Season: "2023"},
	}
	for _, match := range matches {
		if err := b.AddMatch(match); err != nil {
			t.Fatalf("add match %s: %v", match.ID, err)
		}
	}

	appearances := []Appearance{
		{PlayerID: "P001", MatchID: "M001", Goals: 2, Minutes: 90},
		{PlayerID: "P002", MatchID: "M001", Goals: 0, Minutes: 90},
		{PlayerID: "P003", MatchID: "M001", Goals: 1, Minutes: 90},
		{PlayerID: "P001", MatchID: "M002", Goals: 1, Minutes: 85},
		{PlayerID: "P003", MatchID: "M002", Goals: 1, Minutes: 90},
		{PlayerID: "P001", MatchID: "M003", Goals: 1, Minutes: 90},
		{PlayerID: "P005", MatchID: "M003", Goals: 0, Minutes: 90},
		{PlayerID: "P001", MatchID: "M004", Goals: 2, Minutes: 90},
		{PlayerID: "P003", MatchID: "M005", Goals: 2, Minutes: 90},
		{PlayerID: "P005", MatchID: "M005", Goals: 2, Minutes: 90},
		{PlayerID: "P005", MatchID: "M008", Goals: 2, Minutes: 90},
		{PlayerID: "P006", MatchID: "M008", Goals: 1, Minutes: 90},
		{PlayerID: "P001", MatchID: "M006", Goals: 1, Minutes: 90},
	}
	for _, appearance := range appearances {
		if err := b.AddAppearance(appearance); err != nil {
			t.Fatalf("add appearance %s/%s: %v", appearance.PlayerID, appearance.MatchID, err)
		}
	}

	snap, err := b.Build()
	if err != nil {
		t.Fatalf("build snapshot: %v", err)
	}

	eng := New()
	eng.Load(snap)
	return eng
}

func TestEngineNotReady(t *testing.T) {
	eng := New()
	if eng.Ready() {
		t.Fatalf("empty engine reports ready")
	}

	if _, err := eng.Player("P001"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Player error = %v, want ErrNotReady", err)
	}
	if _, err := eng.SearchPlayers("gabriel", nil); !errors.Is(err, ErrNotReady) {
		t.Fatalf("SearchPlayers error = %v, want ErrNotReady", err)
	}
	if _, err := eng.HeadToHead("T001", "T002"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("HeadToHead error = %v, want ErrNotReady", err)
	}
}

func TestEngineLookups(t *testing.T) {
	eng := newTestEngine(t)
	if !eng.Ready() {
		t.Fatalf("loaded engine not ready")
	}

	player, err := eng.Player("P001")
	if err != nil {
		t.Fatalf("Player: %v", err)
	}
	if player.Name != "Gabriel Barbosa" || player.Position != "Forward" {
		t.Fatalf("unexpected player: %+v", player)
	}

	team, err := eng.Team("T003")
	if err != nil {
		t.Fatalf("Team: %v", err)
	}
	if team.Name != "São Paulo" {
		t.Fatalf("unexpected team: %+v", team)
	}

	if _, err := eng.Player("P999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing player error = %v, want ErrNotFound", err)
	}
	if _, err := eng.Team("T999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing team error = %v, want ErrNotFound", err)
	}
	if _, err := eng.Match("M999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing match error = %v, want ErrNotFound", err)
	}
	if _, err := eng.Competition("C999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing competition error = %v, want ErrNotFound", err)
	}
}

func TestContractsOfOrdered(t *testing.T) {
	eng := newTestEngine(t)

	contracts, err := eng.ContractsOf("P001")
	if err != nil {
		t.Fatalf("ContractsOf: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("contract count = %d, want 2", len(contracts))
	}
	if contracts[0].TeamID != "T003" || contracts[1].TeamID != "T001" {
		t.Fatalf("contracts out of order: %+v", contracts)
	}
	if !contracts[1].Ongoing() {
		t.Fatalf("current contract should be ongoing")
	}
}

func TestBuilderRejectsMalformedRecords(t *testing.T) {
	b := NewBuilder()

	if err := b.AddPlayer(Player{ID: "", Name: "Nameless"}); err == nil {
		t.Fatalf("expected error for empty player id")
	}
	if err := b.AddPlayer(Player{ID: "P001", Name: "  "}); err == nil {
		t.Fatalf("expected error for blank player name")
	}
	if err := b.AddMatch(Match{ID: "M001", Date: mustDate(t, "2023-05-10"), HomeTeamID: "T001", AwayTeamID: "T001"}); err == nil {
		t.Fatalf("expected error for identical home and away team")
	}
	if err := b.AddMatch(Match{ID: "M002", Date: mustDate(t, "2023-05-10"), HomeTeamID: "T001", AwayTeamID: "T002", HomeScore: -1}); err == nil {
		t.Fatalf("expected error for negative score")
	}
	if err := b.AddContract(Contract{PlayerID: "P001", TeamID: "T001", Start: mustDate(t, "2023-05-10"), End: mustDate(t, "2023-01-01")}); err == nil {
		t.Fatalf("expected error for end before start")
	}
	if err := b.AddAppearance(Appearance{PlayerID: "P001", MatchID: "M001", Goals: -1}); err == nil {
		t.Fatalf("expected error for negative goals")
	}
}

func TestBuildRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, b *Builder)
	}{
		{
			name: "match with unknown team",
			setup: func(t *testing.T, b *Builder) {
				if err := b.AddMatch(Match{ID: "M001", Date: mustDate(t, "2023-05-10"), HomeTeamID: "T001", AwayTeamID: "T999", CompetitionID: "C001"}); err != nil {
					t.Fatalf("add match: %v", err)
				}
			},
		},
		{
			name: "contract with unknown player",
			setup: func(t *testing.T, b *Builder) {
				if err := b.AddContract(Contract{PlayerID: "P999", TeamID: "T001", Start: mustDate(t, "2020-01-01")}); err != nil {
					t.Fatalf("add contract: %v", err)
				}
			},
		},
		{
			name: "appearance with unknown match",
			setup: func(t *testing.T, b *Builder) {
				if err := b.AddAppearance(Appearance{PlayerID: "P001", MatchID: "M999"}); err != nil {
					t.Fatalf("add appearance: %v", err)
				}
			},
		},
		{
			name: "duplicate team id",
			setup: func(t *testing.T, b *Builder) {
				if err := b.AddTeam(Team{ID: "T001", Name: "Duplicate"}); err != nil {
					t.Fatalf("add team: %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			if err := b.AddTeam(Team{ID: "T001", Name: "Flamengo"}); err != nil {
				t.Fatalf("add team: %v", err)
			}
			if err := b.AddTeam(Team{ID: "T002", Name: "Palmeiras"}); err != nil {
				t.Fatalf("add team: %v", err)
			}
			if err := b.AddPlayer(Player{ID: "P001", Name: "Gabriel Barbosa"}); err != nil {
				t.Fatalf("add player: %v", err)
			}
			if err := b.AddCompetition(Competition{ID: "C001", Name: "Brasileirão Série A"}); err != nil {
				t.Fatalf("add competition: %v", err)
			}
			tt.setup(t, b)
			if _, err := b.Build(); err == nil {
				t.Fatalf("expected build error")
			}
		})
	}
}

func TestSnapshotCounts(t *testing.T) {
	eng := newTestEngine(t)
	snap := eng.snap.Load()

	if got := snap.Players(); got != 7 {
		t.Fatalf("players = %d, want 7", got)
	}
	if got := snap.Teams(); got != 4 {
		t.Fatalf("teams = %d, want 4", got)
	}
	if got := snap.Matches(); got != 8 {
		t.Fatalf("matches = %d, want 8", got)
	}
	if got := snap.Contracts(); got != 9 {
		t.Fatalf("contracts = %d, want 9", got)
	}
	if got := snap.Appearances(); got != 13 {
		t.Fatalf("appearances = %d, want 13", got)
	}
}
