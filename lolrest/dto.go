package lolrest

// Champion is the rotation/availability status of a single champion.
type Champion struct {
	ID                int64 `json:"id"`
	Active            bool  `json:"active"`
	BotEnabled        bool  `json:"botEnabled"`
	BotMmEnabled      bool  `json:"botMmEnabled"`
	FreeToPlay        bool  `json:"freeToPlay"`
	RankedPlayEnabled bool  `json:"rankedPlayEnabled"`
}

// ChampionList is the collection of champion statuses returned by the champion endpoint.
type ChampionList struct {
	Champions []Champion `json:"champions"`
}

// Summoner is the account information for a single summoner.
type Summoner struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// MiniSeries is the state of a promotion series, only present for entries currently in one.
type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

// LeagueEntry is the standing of a single participant within a league.
type LeagueEntry struct {
	Division         string      `json:"division"`
	IsFreshBlood     bool        `json:"isFreshBlood"`
	IsHotStreak      bool        `json:"isHotStreak"`
	IsInactive       bool        `json:"isInactive"`
	IsVeteran        bool        `json:"isVeteran"`
	LeaguePoints     int         `json:"leaguePoints"`
	Losses           int         `json:"losses"`
	MiniSeries       *MiniSeries `json:"miniSeries,omitempty"`
	PlayerOrTeamID   string      `json:"playerOrTeamId"`
	PlayerOrTeamName string      `json:"playerOrTeamName"`
	Wins             int         `json:"wins"`
}

// League is a single ranked league and the entries of its participants.
type League struct {
	Entries       []LeagueEntry `json:"entries"`
	Name          string        `json:"name"`
	ParticipantID string        `json:"participantId"`
	Queue         string        `json:"queue"`
	Tier          string        `json:"tier"`
}

// BannedChampion is a champion ban within a live game.
type BannedChampion struct {
	ChampionID int64 `json:"championId"`
	PickTurn   int   `json:"pickTurn"`
	TeamID     int64 `json:"teamId"`
}

// Observer carries the key spectator streams for a live game are encrypted with.
type Observer struct {
	EncryptionKey string `json:"encryptionKey"`
}

// Mastery is a single mastery selection of a live game participant.
type Mastery struct {
	MasteryID int64 `json:"masteryId"`
	Rank      int   `json:"rank"`
}

// Rune is a single rune selection of a live game participant.
type Rune struct {
	Count  int   `json:"count"`
	RuneID int64 `json:"runeId"`
}

// CurrentGameParticipant is a single player within a live game.
type CurrentGameParticipant struct {
	Bot           bool      `json:"bot"`
	ChampionID    int64     `json:"championId"`
	Masteries     []Mastery `json:"masteries"`
	ProfileIconID int64     `json:"profileIconId"`
	Runes         []Rune    `json:"runes"`
	Spell1ID      int64     `json:"spell1Id"`
	Spell2ID      int64     `json:"spell2Id"`
	SummonerID    int64     `json:"summonerId"`
	SummonerName  string    `json:"summonerName"`
	TeamID        int64     `json:"teamId"`
}

// CurrentGameInfo is the spectator view of a game in progress.
type CurrentGameInfo struct {
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	GameID            int64                    `json:"gameId"`
	GameLength        int64                    `json:"gameLength"`
	GameMode          string                   `json:"gameMode"`
	GameQueueConfigID int64                    `json:"gameQueueConfigId"`
	GameStartTime     int64                    `json:"gameStartTime"`
	GameType          string                   `json:"gameType"`
	MapID             int64                    `json:"mapId"`
	Observers         Observer                 `json:"observers"`
	Participants      []CurrentGameParticipant `json:"participants"`
	PlatformID        string                   `json:"platformId"`
}
