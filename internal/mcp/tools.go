package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"craque/internal/engine"
)

const dateLayout = "2006-01-02"

type SearchPlayerInput struct {
	Name     string `json:"name" jsonschema:"player name, partial match supported"`
	Team     string `json:"team,omitempty" jsonschema:"restrict to players who played for a team matching this name"`
	Position string `json:"position,omitempty" jsonschema:"restrict to an exact position, e.g. Forward"`
}

type SearchTeamInput struct {
	Name string `json:"name" jsonschema:"team name, partial match supported"`
}

type PlayerIDInput struct {
	PlayerID string `json:"player_id" jsonschema:"unique player identifier"`
}

type PlayerStatsInput struct {
	PlayerID string `json:"player_id" jsonschema:"unique player identifier"`
	Season   string `json:"season,omitempty" jsonschema:"optional season year, e.g. 2023"`
}

type TeamRosterInput struct {
	TeamID string `json:"team_id" jsonschema:"unique team identifier"`
	On     string `json:"on,omitempty" jsonschema:"roster date YYYY-MM-DD; omit for the current roster"`
}

type TeamStatsInput struct {
	TeamID string `json:"team_id" jsonschema:"unique team identifier"`
	Season string `json:"season,omitempty" jsonschema:"optional season year, e.g. 2023"`
}

type TeamPairInput struct {
	TeamAID string `json:"team_a_id" jsonschema:"first team identifier"`
	TeamBID string `json:"team_b_id" jsonschema:"second team identifier"`
}

type PlayerPairInput struct {
	PlayerAID string `json:"player_a_id" jsonschema:"first player identifier"`
	PlayerBID string `json:"player_b_id" jsonschema:"second player identifier"`
}

type TopScorersInput struct {
	CompetitionID string `json:"competition_id" jsonschema:"competition identifier"`
	Season        string `json:"season" jsonschema:"season year, e.g. 2023"`
	Limit         int    `json:"limit,omitempty" jsonschema:"maximum entries to return, default 10"`
}

type MatchDetailsInput struct {
	MatchID string `json:"match_id" jsonschema:"unique match identifier"`
}

type MatchesByTeamInput struct {
	Team string `json:"team" jsonschema:"team name, partial match supported"`
}

type MatchesByDateRangeInput struct {
	From string `json:"from" jsonschema:"start date YYYY-MM-DD, inclusive"`
	To   string `json:"to" jsonschema:"end date YYYY-MM-DD, inclusive"`
}

type PlayerOutput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Nationality string   `json:"nationality,omitempty"`
	BirthDate   string   `json:"birth_date,omitempty"`
	Teams       []string `json:"teams,omitempty"`
}

type TeamOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Stadium string `json:"stadium,omitempty"`
	Founded int    `json:"founded,omitempty"`
	Colors  string `json:"colors,omitempty"`
}

type CareerEntryOutput struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team"`
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Ongoing  bool   `json:"ongoing"`
}

type MatchOutput struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	HomeTeamID  string `json:"home_team_id"`
	HomeTeam    string `json:"home_team"`
	AwayTeamID  string `json:"away_team_id"`
	AwayTeam    string `json:"away_team"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	Finished    bool   `json:"finished"`
	Competition string `json:"competition_id"`
	Season      string `json:"season"`
}

type ScorerOutput struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Goals    int    `json:"goals"`
}

type PlayersOutput struct {
	Players []PlayerOutput `json:"players"`
}

type TeamsOutput struct {
	Teams []TeamOutput `json:"teams"`
}

type CareerOutput struct {
	Player PlayerOutput        `json:"player"`
	Career []CareerEntryOutput `json:"career"`
}

type PlayerStatsOutput struct {
	PlayerID    string `json:"player_id"`
	Name        string `json:"name"`
	Season      string `json:"season,omitempty"`
	Appearances int    `json:"appearances"`
	Goals       int    `json:"goals"`
	Minutes     int    `json:"minutes"`
}

type TeamStatsOutput struct {
	TeamID        string `json:"team_id"`
	Name          string `json:"name"`
	Season        string `json:"season,omitempty"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
}

type HeadToHeadOutput struct {
	TeamAID      string `json:"team_a_id"`
	TeamBID      string `json:"team_b_id"`
	TotalMatches int    `json:"total_matches"`
	WinsA        int    `json:"wins_a"`
	WinsB        int    `json:"wins_b"`
	Draws        int    `json:"draws"`
	GoalsA       int    `json:"goals_a"`
	GoalsB       int    `json:"goals_b"`
}

type TopScorersOutput struct {
	CompetitionID string         `json:"competition_id"`
	Season        string         `json:"season"`
	Scorers       []ScorerOutput `json:"scorers"`
}

type MatchDetailsOutput struct {
	Match       MatchOutput    `json:"match"`
	Competition string         `json:"competition"`
	Scorers     []ScorerOutput `json:"scorers,omitempty"`
	Attendance  int            `json:"attendance,omitempty"`
}

type MatchesOutput struct {
	Matches []MatchOutput `json:"matches"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_player",
		Description: "Search players by name with optional team and position filters",
	}, s.handleSearchPlayer)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_team",
		Description: "Search teams by name",
	}, s.handleSearchTeam)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_player_career",
		Description: "Career history of a player, ordered by tenure start date",
	}, s.handlePlayerCareer)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_player_stats",
		Description: "Goals, appearances and minutes for a player, optionally per season",
	}, s.handlePlayerStats)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_team_roster",
		Description: "Players under contract with a team on a date (current roster by default)",
	}, s.handleTeamRoster)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_team_stats",
		Description: "Win/draw/loss record and goal totals for a team",
	}, s.handleTeamStats)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_rival_players",
		Description: "Players who played for both given teams",
	}, s.handleRivalPlayers)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_common_teammates",
		Description: "Players who were teammates of both given players at some team",
	}, s.handleCommonTeammates)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_top_scorers",
		Description: "Top scorers of a competition season",
	}, s.handleTopScorers)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_head_to_head",
		Description: "Head-to-head record between two teams",
	}, s.handleHeadToHead)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_match_details",
		Description: "Details of a single match including scorers",
	}, s.handleMatchDetails)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_matches_by_team",
		Description: "All matches a team played in, resolved by fuzzy team name",
	}, s.handleMatchesByTeam)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_matches_by_date_range",
		Description: "Matches within an inclusive date window",
	}, s.handleMatchesByDateRange)
}

func (s *Server) handleSearchPlayer(ctx context.Context, req *sdk.CallToolRequest, input SearchPlayerInput) (*sdk.CallToolResult, PlayersOutput, error) {
	filters := map[string]string{}
	if input.Team != "" {
		filters[engine.FilterTeam] = input.Team
	}
	if input.Position != "" {
		filters[engine.FilterPosition] = input.Position
	}

	players, err := s.engine.SearchPlayers(input.Name, filters)
	if err != nil {
		return nil, PlayersOutput{}, err
	}
	return nil, PlayersOutput{Players: s.playerOutputs(players)}, nil
}

func (s *Server) handleSearchTeam(ctx context.Context, req *sdk.CallToolRequest, input SearchTeamInput) (*sdk.CallToolResult, TeamsOutput, error) {
	teams, err := s.engine.SearchTeams(input.Name)
	if err != nil {
		return nil, TeamsOutput{}, err
	}

	output := make([]TeamOutput, 0, len(teams))
	for _, t := range teams {
		output = append(output, teamOutputFromEngine(t))
	}
	return nil, TeamsOutput{Teams: output}, nil
}

func (s *Server) handlePlayerCareer(ctx context.Context, req *sdk.CallToolRequest, input PlayerIDInput) (*sdk.CallToolResult, CareerOutput, error) {
	if input.PlayerID == "" {
		return nil, CareerOutput{}, fmt.Errorf("player_id is required")
	}
	player, err := s.engine.Player(input.PlayerID)
	if err != nil {
		return nil, CareerOutput{}, err
	}
	career, err := s.engine.CareerHistory(input.PlayerID)
	if err != nil {
		return nil, CareerOutput{}, err
	}

	entries := make([]CareerEntryOutput, 0, len(career))
	for _, entry := range career {
		out := CareerEntryOutput{
			TeamID:   entry.TeamID,
			TeamName: entry.TeamName,
			Start:    entry.Start.Format(dateLayout),
			Ongoing:  entry.End.IsZero(),
		}
		if !entry.End.IsZero() {
			out.End = entry.End.Format(dateLayout)
		}
		entries = append(entries, out)
	}
	return nil, CareerOutput{Player: playerOutputFromEngine(player), Career: entries}, nil
}

func (s *Server) handlePlayerStats(ctx context.Context, req *sdk.CallToolRequest, input PlayerStatsInput) (*sdk.CallToolResult, PlayerStatsOutput, error) {
	if input.PlayerID == "" {
		return nil, PlayerStatsOutput{}, fmt.Errorf("player_id is required")
	}
	stats, err := s.engine.PlayerStatistics(input.PlayerID, input.Season)
	if err != nil {
		return nil, PlayerStatsOutput{}, err
	}
	return nil, PlayerStatsOutput{
		PlayerID:    stats.PlayerID,
		Name:        stats.PlayerName,
		Season:      stats.Season,
		Appearances: stats.Appearances,
		Goals:       stats.Goals,
		Minutes:     stats.Minutes,
	}, nil
}

func (s *Server) handleTeamRoster(ctx context.Context, req *sdk.CallToolRequest, input TeamRosterInput) (*sdk.CallToolResult, PlayersOutput, error) {
	if input.TeamID == "" {
		return nil, PlayersOutput{}, fmt.Errorf("team_id is required")
	}
	var on time.Time
	if input.On != "" {
		parsed, err := time.Parse(dateLayout, input.On)
		if err != nil {
			return nil, PlayersOutput{}, fmt.Errorf("parsing on date: %w", err)
		}
		on = parsed
	}
	players, err := s.engine.TeamRoster(input.TeamID, on)
	if err != nil {
		return nil, PlayersOutput{}, err
	}
	return nil, PlayersOutput{Players: s.playerOutputs(players)}, nil
}

func (s *Server) handleTeamStats(ctx context.Context, req *sdk.CallToolRequest, input TeamStatsInput) (*sdk.CallToolResult, TeamStatsOutput, error) {
	if input.TeamID == "" {
		return nil, TeamStatsOutput{}, fmt.Errorf("team_id is required")
	}
	stats, err := s.engine.TeamStatistics(input.TeamID, input.Season)
	if err != nil {
		return nil, TeamStatsOutput{}, err
	}
	return nil, TeamStatsOutput{
		TeamID:        stats.TeamID,
		Name:          stats.TeamName,
		Season:        stats.Season,
		MatchesPlayed: stats.MatchesPlayed,
		Wins:          stats.Wins,
		Draws:         stats.Draws,
		Losses:        stats.Losses,
		GoalsFor:      stats.GoalsFor,
		GoalsAgainst:  stats.GoalsAgainst,
	}, nil
}

func (s *Server) handleRivalPlayers(ctx context.Context, req *sdk.CallToolRequest, input TeamPairInput) (*sdk.CallToolResult, PlayersOutput, error) {
	if input.TeamAID == "" || input.TeamBID == "" {
		return nil, PlayersOutput{}, fmt.Errorf("team_a_id and team_b_id are required")
	}
	players, err := s.engine.PlayersOfBothTeams(input.TeamAID, input.TeamBID)
	if err != nil {
		return nil, PlayersOutput{}, err
	}
	return nil, PlayersOutput{Players: s.playerOutputs(players)}, nil
}

func (s *Server) handleCommonTeammates(ctx context.Context, req *sdk.CallToolRequest, input PlayerPairInput) (*sdk.CallToolResult, PlayersOutput, error) {
	if input.PlayerAID == "" || input.PlayerBID == "" {
		return nil, PlayersOutput{}, fmt.Errorf("player_a_id and player_b_id are required")
	}
	players, err := s.engine.CommonTeammates(input.PlayerAID, input.PlayerBID)
	if err != nil {
		return nil, PlayersOutput{}, err
	}
	return nil, PlayersOutput{Players: s.playerOutputs(players)}, nil
}

func (s *Server) handleTopScorers(ctx context.Context, req *sdk.CallToolRequest, input TopScorersInput) (*sdk.CallToolResult, TopScorersOutput, error) {
	if input.CompetitionID == "" {
		return nil, TopScorersOutput{}, fmt.Errorf("competition_id is required")
	}
	if input.Season == "" {
		return nil, TopScorersOutput{}, fmt.Errorf("season is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}
	scorers, err := s.engine.TopScorers(input.CompetitionID, input.Season, limit)
	if err != nil {
		return nil, TopScorersOutput{}, err
	}

	output := TopScorersOutput{
		CompetitionID: input.CompetitionID,
		Season:        input.Season,
		Scorers:       make([]ScorerOutput, 0, len(scorers)),
	}
	for _, entry := range scorers {
		output.Scorers = append(output.Scorers, ScorerOutput{
			PlayerID: entry.PlayerID,
			Name:     entry.PlayerName,
			Goals:    entry.Goals,
		})
	}
	return nil, output, nil
}

func (s *Server) handleHeadToHead(ctx context.Context, req *sdk.CallToolRequest, input TeamPairInput) (*sdk.CallToolResult, HeadToHeadOutput, error) {
	if input.TeamAID == "" || input.TeamBID == "" {
		return nil, HeadToHeadOutput{}, fmt.Errorf("team_a_id and team_b_id are required")
	}
	record, err := s.engine.HeadToHead(input.TeamAID, input.TeamBID)
	if err != nil {
		return nil, HeadToHeadOutput{}, err
	}
	return nil, HeadToHeadOutput{
		TeamAID:      record.TeamAID,
		TeamBID:      record.TeamBID,
		TotalMatches: record.TotalMatches,
		WinsA:        record.WinsA,
		WinsB:        record.WinsB,
		Draws:        record.Draws,
		GoalsA:       record.GoalsA,
		GoalsB:       record.GoalsB,
	}, nil
}

func (s *Server) handleMatchDetails(ctx context.Context, req *sdk.CallToolRequest, input MatchDetailsInput) (*sdk.CallToolResult, MatchDetailsOutput, error) {
	if input.MatchID == "" {
		return nil, MatchDetailsOutput{}, fmt.Errorf("match_id is required")
	}
	detail, err := s.engine.MatchDetails(input.MatchID)
	if err != nil {
		return nil, MatchDetailsOutput{}, err
	}

	output := MatchDetailsOutput{
		Match:      matchOutputFromDetail(detail),
		Attendance: detail.Match.Attendance,
	}
	if detail.Competition != nil {
		output.Competition = detail.Competition.Name
	}
	for _, scorer := range detail.Scorers {
		output.Scorers = append(output.Scorers, ScorerOutput{
			PlayerID: scorer.PlayerID,
			Name:     scorer.PlayerName,
			Goals:    scorer.Goals,
		})
	}
	return nil, output, nil
}

func (s *Server) handleMatchesByTeam(ctx context.Context, req *sdk.CallToolRequest, input MatchesByTeamInput) (*sdk.CallToolResult, MatchesOutput, error) {
	if input.Team == "" {
		return nil, MatchesOutput{}, fmt.Errorf("team is required")
	}
	matches, err := s.engine.MatchesByTeam(input.Team)
	if err != nil {
		return nil, MatchesOutput{}, err
	}
	return nil, MatchesOutput{Matches: s.matchOutputs(matches)}, nil
}

func (s *Server) handleMatchesByDateRange(ctx context.Context, req *sdk.CallToolRequest, input MatchesByDateRangeInput) (*sdk.CallToolResult, MatchesOutput, error) {
	if input.From == "" || input.To == "" {
		return nil, MatchesOutput{}, fmt.Errorf("from and to are required")
	}
	from, err := time.Parse(dateLayout, input.From)
	if err != nil {
		return nil, MatchesOutput{}, fmt.Errorf("parsing from date: %w", err)
	}
	to, err := time.Parse(dateLayout, input.To)
	if err != nil {
		return nil, MatchesOutput{}, fmt.Errorf("parsing to date: %w", err)
	}

	matches, err := s.engine.MatchesByDateRange(from, to)
	if err != nil {
		return nil, MatchesOutput{}, err
	}
	return nil, MatchesOutput{Matches: s.matchOutputs(matches)}, nil
}

func (s *Server) playerOutputs(players []*engine.Player) []PlayerOutput {
	output := make([]PlayerOutput, 0, len(players))
	for _, p := range players {
		out := playerOutputFromEngine(p)
		if career, err := s.engine.CareerHistory(p.ID); err == nil {
			seen := make(map[string]struct{})
			for _, entry := range career {
				if _, dup := seen[entry.TeamName]; dup {
					continue
				}
				seen[entry.TeamName] = struct{}{}
				out.Teams = append(out.Teams, entry.TeamName)
			}
		}
		output = append(output, out)
	}
	return output
}

func (s *Server) matchOutputs(matches []*engine.Match) []MatchOutput {
	output := make([]MatchOutput, 0, len(matches))
	for _, m := range matches {
		out := MatchOutput{
			ID:          m.ID,
			Date:        m.Date.Format(dateLayout),
			HomeTeamID:  m.HomeTeamID,
			AwayTeamID:  m.AwayTeamID,
			HomeScore:   m.HomeScore,
			AwayScore:   m.AwayScore,
			Finished:    m.Finished,
			Competition: m.CompetitionID,
			Season:      m.Season,
		}
		if home, err := s.engine.Team(m.HomeTeamID); err == nil {
			out.HomeTeam = home.Name
		}
		if away, err := s.engine.Team(m.AwayTeamID); err == nil {
			out.AwayTeam = away.Name
		}
		output = append(output, out)
	}
	return output
}

func playerOutputFromEngine(p *engine.Player) PlayerOutput {
	out := PlayerOutput{
		ID:          p.ID,
		Name:        p.Name,
		Position:    p.Position,
		Nationality: p.Nationality,
	}
	if !p.BirthDate.IsZero() {
		out.BirthDate = p.BirthDate.Format(dateLayout)
	}
	return out
}

func teamOutputFromEngine(t *engine.Team) TeamOutput {
	return TeamOutput{
		ID:      t.ID,
		Name:    t.Name,
		City:    t.City,
		Stadium: t.Stadium,
		Founded: t.Founded,
		Colors:  t.Colors,
	}
}

func matchOutputFromDetail(detail *engine.MatchDetail) MatchOutput {
	m := detail.Match
	out := MatchOutput{
		ID:          m.ID,
		Date:        m.Date.Format(dateLayout),
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Finished:    m.Finished,
		Competition: m.CompetitionID,
		Season:      m.Season,
	}
	if detail.HomeTeam != nil {
		out.HomeTeam = detail.HomeTeam.Name
	}
	if detail.AwayTeam != nil {
		out.AwayTeam = detail.AwayTeam.Name
	}
	return out
}
