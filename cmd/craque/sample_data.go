package main

// A small, internally consistent demo dataset: every appearance is
// covered by a contract with one of the match's teams on the match
// date, so `craque validate` passes cleanly.
var sampleDataset = map[string]string{
	"teams.csv": `team_id,name,city,stadium,founded,colors
T001,Flamengo,Rio de Janeiro,Maracanã,1895,Red and Black
T002,Fluminense,Rio de Janeiro,Maracanã,1902,"Maroon, Green and White"
T003,Corinthians,São Paulo,Neo Química Arena,1910,Black and White
T004,Palmeiras,São Paulo,Allianz Parque,1914,Green and White
T005,Santos,Santos,Vila Belmiro,1912,Black and White
T007,Grêmio,Porto Alegre,Arena do Grêmio,1903,"Blue, Black and White"
`,
	"competitions.csv": `competition_id,name,season,kind
C001,Campeonato Brasileiro Série A,2023,league
C002,Campeonato Brasileiro Série A,2022,league
C003,Copa do Brasil,2023,cup
`,
	"players.csv": `player_id,name,position,nationality,birth_date,jersey
P001,Gabriel Barbosa (Gabigol),Forward,Brazilian,1996-08-30,10
P002,Pedro,Forward,Brazilian,1997-06-20,9
P003,Arrascaeta,Midfielder,Uruguayan,1994-06-01,14
P005,Endrick,Forward,Brazilian,2006-07-21,9
P006,Raphael Veiga,Midfielder,Brazilian,1995-06-19,23
P008,Yuri Alberto,Forward,Brazilian,2001-03-18,9
P011,Neymar Jr,Forward,Brazilian,1992-02-05,11
P015,Ronaldinho,Forward,Brazilian,1980-03-21,10
P016,Germán Cano,Forward,Argentine,1988-01-07,14
P017,Ganso,Midfielder,Brazilian,1989-10-12,10
`,
	"contracts.csv": `player_id,team_id,start_date,end_date
P001,T001,2019-01-01,
P002,T001,2020-01-01,
P003,T001,2019-01-01,
P005,T004,2022-01-01,2024-06-30
P006,T004,2019-01-01,
P008,T003,2022-01-01,
P011,T005,2009-01-01,2013-05-31
P011,T001,2025-01-01,
P015,T007,1998-01-01,2001-12-31
P015,T001,2011-01-01,2012-06-30
P016,T002,2022-01-01,
P017,T005,2008-01-01,2012-12-31
P017,T002,2019-01-01,
`,
	"matches.csv": `match_id,date,home_team_id,away_team_id,home_score,away_score,competition_id,season,attendance
M001,2023-04-16,T001,T002,2,1,C001,2023,65000
M002,2023-05-21,T003,T004,1,1,C001,2023,45000
M005,2023-08-12,T001,T004,3,2,C001,2023,70000
M006,2023-09-03,T002,T001,0,3,C001,2023,60000
M011,2022-04-10,T001,T002,1,0,C002,2022,55000
M014,2023-05-10,T001,T005,4,0,C003,2023,52000
M021,2023-12-06,T001,T004,,,C001,2023,
`,
	"appearances.csv": `player_id,match_id,goals,minutes
P001,M001,1,90
P002,M001,1,85
P003,M001,0,90
P016,M001,1,90
P008,M002,1,90
P006,M002,1,88
P001,M005,1,90
P002,M005,1,90
P003,M005,1,74
P005,M005,1,65
P006,M005,1,90
P001,M006,2,90
P002,M006,1,80
P016,M006,0,90
P001,M011,1,90
P001,M014,2,90
P002,M014,1,90
P003,M014,1,90
`,
}
