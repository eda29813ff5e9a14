package validate

import (
	"testing"
	"time"

	"craque/internal/engine"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

type fixture struct {
	players      []engine.Player
	teams        []engine.Team
	competitions []engine.Competition
	matches      []engine.Match
	contracts    []engine.Contract
	appearances  []engine.Appearance
}

func buildSnapshot(t *testing.T, f fixture) *engine.Snapshot {
	t.Helper()
	b := engine.NewBuilder()
	for _, team := range f.teams {
		if err := b.AddTeam(team); err != nil {
			t.Fatalf("add team: %v", err)
		}
	}
	for _, comp := range f.competitions {
		if err := b.AddCompetition(comp); err != nil {
			t.Fatalf("add competition: %v", err)
		}
	}
	for _, player := range f.players {
		if err := b.AddPlayer(player); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}
	for _, match := range f.matches {
		if err := b.AddMatch(match); err != nil {
			t.Fatalf("add match: %v", err)
		}
	}
	for _, contract := range f.contracts {
		if err := b.AddContract(contract); err != nil {
			t.Fatalf("add contract: %v", err)
		}
	}
	for _, appearance := range f.appearances {
		if err := b.AddAppearance(appearance); err != nil {
			t.Fatalf("add appearance: %v", err)
		}
	}
	snap, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return snap
}

func issuesWithCode(report *Report, code string) []Issue {
	var found []Issue
	for _, issue := range report.Issues {
		if issue.Code == code {
			found = append(found, issue)
		}
	}
	return found
}

func cleanFixture(t *testing.T) fixture {
	return fixture{
		teams: []engine.Team{
			{ID: "T001", Name: "Flamengo"},
			{ID: "T002", Name: "Palmeiras"},
		},
		competitions: []engine.Competition{
			{ID: "C001", Name: "Brasileirão Série A", Season: "2023", Kind: "league"},
		},
		players: []engine.Player{
			{ID: "P001", Name: "Gabriel Barbosa", Position: "Forward"},
			{ID: "P002", Name: "Dudu", Position: "Forward"},
		},
		matches: []engine.Match{
			{ID: "M001", Date: date(t, "2023-05-10"), HomeTeamID: "T001", AwayTeamID: "T002", HomeScore: 2, AwayScore: 1, Finished: true, CompetitionID: "C001", Season: "2023"},
		},
		contracts: []engine.Contract{
			{PlayerID: "P001", TeamID: "T001", Start: date(t, "2019-01-01")},
			{PlayerID: "P002", TeamID: "T002", Start: date(t, "2015-01-10")},
		},
		appearances: []engine.Appearance{
			{PlayerID: "P001", MatchID: "M001", Goals: 2, Minutes: 90},
			{PlayerID: "P002", MatchID: "M001", Goals: 1, Minutes: 90},
		},
	}
}

func TestRunCleanDataset(t *testing.T) {
	snap := buildSnapshot(t, cleanFixture(t))

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("unexpected issues: %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Fatalf("clean dataset reports errors")
	}
}

func TestRunNilSnapshot(t *testing.T) {
	if _, err := Run(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOverlappingContracts(t *testing.T) {
	f := cleanFixture(t)
	// Second Flamengo tenure starts before the first one ends.
	f.contracts = append(f.contracts, engine.Contract{
		PlayerID: "P001", TeamID: "T001",
		Start: date(t, "2022-01-01"), End: date(t, "2024-12-31"),
	})
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	issues := issuesWithCode(report, "overlapping_contracts")
	if len(issues) != 1 {
		t.Fatalf("issue count = %d, want 1: %+v", len(issues), report.Issues)
	}
	if issues[0].Severity != SeverityError || issues[0].Entity != "P001" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
	if !report.HasErrors() {
		t.Fatalf("overlap not reported as error")
	}
}

func TestSequentialContractsDoNotOverlap(t *testing.T) {
	f := cleanFixture(t)
	f.contracts = []engine.Contract{
		{PlayerID: "P001", TeamID: "T001", Start: date(t, "2015-01-01"), End: date(t, "2018-12-31")},
		{PlayerID: "P001", TeamID: "T001", Start: date(t, "2019-01-01")},
		{PlayerID: "P002", TeamID: "T002", Start: date(t, "2015-01-10")},
	}
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if issues := issuesWithCode(report, "overlapping_contracts"); len(issues) != 0 {
		t.Fatalf("sequential tenures flagged: %+v", issues)
	}
}

func TestAppearanceOutsideContract(t *testing.T) {
	f := cleanFixture(t)
	// P001's contract starts in 2019; move the match before it.
	f.matches[0].Date = date(t, "2018-05-10")
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	issues := issuesWithCode(report, "appearance_outside_contract")
	if len(issues) != 1 {
		t.Fatalf("issue count = %d, want 1: %+v", len(issues), report.Issues)
	}
	if issues[0].Severity != SeverityError || issues[0].Entity != "P001" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
}

func TestAppearanceWithContractAtOtherClub(t *testing.T) {
	f := cleanFixture(t)
	// A contract with a club not involved in the match does not cover
	// the appearance.
	f.teams = append(f.teams, engine.Team{ID: "T003", Name: "São Paulo"})
	f.contracts[0] = engine.Contract{PlayerID: "P001", TeamID: "T003", Start: date(t, "2019-01-01")}
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if issues := issuesWithCode(report, "appearance_outside_contract"); len(issues) != 1 {
		t.Fatalf("expected one issue: %+v", report.Issues)
	}
}

func TestOrphanedPlayerWarning(t *testing.T) {
	f := cleanFixture(t)
	f.players = append(f.players, engine.Player{ID: "P099", Name: "Free Agent"})
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	issues := issuesWithCode(report, "orphaned_player")
	if len(issues) != 1 || issues[0].Entity != "P099" {
		t.Fatalf("unexpected issues: %+v", report.Issues)
	}
	if issues[0].Severity != SeverityWarn {
		t.Fatalf("orphaned player should be a warning: %+v", issues[0])
	}
	if report.HasErrors() {
		t.Fatalf("warnings alone must not count as errors")
	}
}

func TestEmptyCompetitionWarning(t *testing.T) {
	f := cleanFixture(t)
	f.competitions = append(f.competitions, engine.Competition{ID: "C002", Name: "Copa do Brasil", Season: "2023", Kind: "cup"})
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	issues := issuesWithCode(report, "empty_competition")
	if len(issues) != 1 || issues[0].Entity != "C002" {
		t.Fatalf("unexpected issues: %+v", report.Issues)
	}
}

func TestDuplicateNameWarning(t *testing.T) {
	f := cleanFixture(t)
	// Same name modulo case and diacritics.
	f.players = append(f.players, engine.Player{ID: "P100", Name: "GABRIEL BARBOSA"})
	f.contracts = append(f.contracts, engine.Contract{PlayerID: "P100", TeamID: "T002", Start: date(t, "2020-01-01")})
	snap := buildSnapshot(t, f)

	report, err := Run(snap)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	issues := issuesWithCode(report, "duplicate_name")
	if len(issues) != 1 || issues[0].Entity != "P100" {
		t.Fatalf("unexpected issues: %+v", report.Issues)
	}
	if issues[0].Severity != SeverityWarn {
		t.Fatalf("duplicate name should be a warning: %+v", issues[0])
	}
}
