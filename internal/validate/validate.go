package validate

import (
	"fmt"

	"craque/internal/engine"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeOverlappingContracts = "overlapping_contracts"
	codeAppearanceNoContract = "appearance_outside_contract"
	codeOrphanedPlayer       = "orphaned_player"
	codeEmptyCompetition     = "empty_competition"
	codeDuplicateName        = "duplicate_name"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Entity   string
}

type Report struct {
	Issues []Issue
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run checks the consistency invariants the query engine assumes but
// the builder does not enforce record by record: contract tenures at
// the same team must not overlap, and every appearance must fall
// within some contract the player holds with a team involved in that
// match. Softer findings are reported as warnings.
func Run(snap *engine.Snapshot) (*Report, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is required")
	}

	report := &Report{Issues: make([]Issue, 0)}
	checkContracts(snap, report)
	checkAppearances(snap, report)
	checkOrphanedPlayers(snap, report)
	checkEmptyCompetitions(snap, report)
	checkDuplicateNames(snap, report)
	return report, nil
}

func checkContracts(snap *engine.Snapshot, report *Report) {
	for _, p := range snap.AllPlayers() {
		contracts := snap.PlayerContracts(p.ID)
		byTeam := make(map[string][]engine.Contract)
		for _, c := range contracts {
			byTeam[c.TeamID] = append(byTeam[c.TeamID], c)
		}
		for teamID, tenures := range byTeam {
			// contracts come back sorted by start date
			for i := 1; i < len(tenures); i++ {
				prev, next := tenures[i-1], tenures[i]
				if prev.Ongoing() || !next.Start.After(prev.End) {
					report.Issues = append(report.Issues, Issue{
						Severity: SeverityError,
						Code:     codeOverlappingContracts,
						Message: fmt.Sprintf("contracts with team %s overlap (%s and %s)",
							teamID, prev.Start.Format("2006-01-02"), next.Start.Format("2006-01-02")),
						Entity: p.ID,
					})
				}
			}
		}
	}
}

func checkAppearances(snap *engine.Snapshot, report *Report) {
	for _, p := range snap.AllPlayers() {
		contracts := snap.PlayerContracts(p.ID)
		for _, a := range snap.PlayerAppearances(p.ID) {
			m, ok := snap.MatchByID(a.MatchID)
			if !ok {
				continue
			}
			covered := false
			for _, c := range contracts {
				if c.TeamID != m.HomeTeamID && c.TeamID != m.AwayTeamID {
					continue
				}
				if c.Covers(m.Date) {
					covered = true
					break
				}
			}
			if !covered {
				report.Issues = append(report.Issues, Issue{
					Severity: SeverityError,
					Code:     codeAppearanceNoContract,
					Message: fmt.Sprintf("appearance in match %s (%s) has no covering contract with either team",
						m.ID, m.Date.Format("2006-01-02")),
					Entity: p.ID,
				})
			}
		}
	}
}

func checkOrphanedPlayers(snap *engine.Snapshot, report *Report) {
	for _, p := range snap.AllPlayers() {
		if len(snap.PlayerContracts(p.ID)) == 0 {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarn,
				Code:     codeOrphanedPlayer,
				Message:  fmt.Sprintf("player %s has no contracts", p.Name),
				Entity:   p.ID,
			})
		}
	}
}

func checkEmptyCompetitions(snap *engine.Snapshot, report *Report) {
	for _, c := range snap.AllCompetitions() {
		if len(snap.CompetitionMatches(c.ID)) == 0 {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarn,
				Code:     codeEmptyCompetition,
				Message:  fmt.Sprintf("competition %s (%s) has no matches", c.Name, c.Season),
				Entity:   c.ID,
			})
		}
	}
}

func checkDuplicateNames(snap *engine.Snapshot, report *Report) {
	playerNames := make(map[string]string)
	for _, p := range snap.AllPlayers() {
		key := engine.NormalizeName(p.Name)
		if otherID, dup := playerNames[key]; dup {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarn,
				Code:     codeDuplicateName,
				Message:  fmt.Sprintf("player name %q duplicates %s", p.Name, otherID),
				Entity:   p.ID,
			})
			continue
		}
		playerNames[key] = p.ID
	}

	teamNames := make(map[string]string)
	for _, t := range snap.AllTeams() {
		key := engine.NormalizeName(t.Name)
		if otherID, dup := teamNames[key]; dup {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarn,
				Code:     codeDuplicateName,
				Message:  fmt.Sprintf("team name %q duplicates %s", t.Name, otherID),
				Entity:   t.ID,
			})
			continue
		}
		teamNames[key] = t.ID
	}
}
