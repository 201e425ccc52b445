package lolrest

import (
	"context"
	"net/http"
	"testing"

	"github.com/loltools/loltools/httptools"
	"github.com/loltools/loltools/testutil"

	"github.com/stretchr/testify/require"
)

func TestClientChampion(t *testing.T) {
	body := []byte(`{"champions":[` +
		`{"id":266,"active":true,"botEnabled":false,"botMmEnabled":false,"freeToPlay":true,"rankedPlayEnabled":true},` +
		`{"id":103,"active":true,"botEnabled":true,"botMmEnabled":true,"freeToPlay":false,"rankedPlayEnabled":true}]}`)

	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/api/lol/na/v1.2/champion", httptools.NewTestHandler(t, http.StatusOK, body))

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	champions, err := client.Champion(context.Background(), nil)
	require.NoError(t, err)

	expected := &ChampionList{Champions: []Champion{
		{ID: 266, Active: true, FreeToPlay: true, RankedPlayEnabled: true},
		{ID: 103, Active: true, BotEnabled: true, BotMmEnabled: true, RankedPlayEnabled: true},
	}}

	require.Equal(t, expected, champions)
}

func TestClientSummoner(t *testing.T) {
	// The wire shape is spelled out independently of the DTO so a tag regression fails here rather than round
	// tripping unnoticed
	type wireSummoner struct {
		ID            int64  `json:"id"`
		Name          string `json:"name"`
		ProfileIconID int    `json:"profileIconId"`
		RevisionDate  int64  `json:"revisionDate"`
		SummonerLevel int64  `json:"summonerLevel"`
	}

	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/api/lol/na/v1.4/summoner/by-name/Wrux",
		func(writer http.ResponseWriter, request *http.Request) {
			testutil.EncodeJSON(t, writer, map[string]wireSummoner{
				"wrux": {ID: 10101, Name: "Wrux", ProfileIconID: 663, RevisionDate: 1408789937000, SummonerLevel: 30},
			})
		})

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	summoners, err := client.Summoner(context.Background(), Params{"by": "name", "id": "Wrux"})
	require.NoError(t, err)

	expected := map[string]Summoner{
		"wrux": {ID: 10101, Name: "Wrux", ProfileIconID: 663, RevisionDate: 1408789937000, SummonerLevel: 30},
	}

	require.Equal(t, expected, summoners)
}

func TestClientLeague(t *testing.T) {
	body := []byte(`{"10101":[{"name":"Elise's Elite","queue":"RANKED_SOLO_5x5","tier":"CHALLENGER","entries":[` +
		`{"division":"I","isFreshBlood":false,"isHotStreak":true,"isInactive":false,"isVeteran":true,` +
		`"leaguePoints":812,"losses":102,"playerOrTeamId":"10101","playerOrTeamName":"Wrux","wins":154}]}]}`)

	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/api/lol/na/v2.5/league/by-summoner/10101",
		httptools.NewTestHandler(t, http.StatusOK, body))

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	leagues, err := client.League(context.Background(), Params{"by": "summoner", "id": 10101})
	require.NoError(t, err)

	expected := map[string][]League{
		"10101": {{
			Name:  "Elise's Elite",
			Queue: "RANKED_SOLO_5x5",
			Tier:  "CHALLENGER",
			Entries: []LeagueEntry{{
				Division:         "I",
				IsHotStreak:      true,
				IsVeteran:        true,
				LeaguePoints:     812,
				Losses:           102,
				PlayerOrTeamID:   "10101",
				PlayerOrTeamName: "Wrux",
				Wins:             154,
			}},
		}},
	}

	require.Equal(t, expected, leagues)
}

func TestClientCurrentGame(t *testing.T) {
	body := []byte(`{"gameId":2018032769,"gameLength":1542,"gameMode":"CLASSIC","gameQueueConfigId":4,` +
		`"gameStartTime":1408789937000,"gameType":"MATCHED_GAME","mapId":11,"platformId":"NA1",` +
		`"observers":{"encryptionKey":"spectate-key"},` +
		`"bannedChampions":[{"championId":157,"pickTurn":1,"teamId":100}],` +
		`"participants":[{"bot":false,"championId":266,"profileIconId":663,"spell1Id":4,"spell2Id":12,` +
		`"summonerId":10101,"summonerName":"Wrux","teamId":100}]}`)

	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/observer-mode/rest/consumer/getSpectatorGameInfo/NA1",
		httptools.NewTestHandler(t, http.StatusOK, body))

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	info, err := client.CurrentGame(context.Background(), Params{"summonerId": 10101})
	require.NoError(t, err)

	expected := &CurrentGameInfo{
		GameID:            2018032769,
		GameLength:        1542,
		GameMode:          "CLASSIC",
		GameQueueConfigID: 4,
		GameStartTime:     1408789937000,
		GameType:          "MATCHED_GAME",
		MapID:             11,
		PlatformID:        "NA1",
		Observers:         Observer{EncryptionKey: "spectate-key"},
		BannedChampions:   []BannedChampion{{ChampionID: 157, PickTurn: 1, TeamID: 100}},
		Participants: []CurrentGameParticipant{{
			ChampionID:    266,
			ProfileIconID: 663,
			Spell1ID:      4,
			Spell2ID:      12,
			SummonerID:    10101,
			SummonerName:  "Wrux",
			TeamID:        100,
		}},
	}

	require.Equal(t, expected, info)
}

func TestClientStaticData(t *testing.T) {
	body := []byte(`{"type":"champion","version":"5.2.1","data":{}}`)

	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/api/lol/static-data/na/v1.2/champion",
		httptools.NewTestHandler(t, http.StatusOK, body))

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	// Static data payloads vary wildly with the requested type, the response is returned undecoded
	resp, err := client.StaticData(context.Background(), Params{"type": "champion"})
	require.NoError(t, err)
	require.Equal(t, &Response{StatusCode: http.StatusOK, Body: body}, resp)
}

func TestClientOperationDecodeError(t *testing.T) {
	handlers := make(httptools.TestHandlers)
	handlers.Add(http.MethodGet, "/api/lol/na/v1.2/champion",
		httptools.NewTestHandler(t, http.StatusOK, []byte(`not-json`)))

	service := NewTestService(t, TestServiceOptions{Handlers: handlers})
	defer service.Close()

	client := newTestClient(t, ClientOptions{BaseHost: service.URL()})

	_, err := client.Champion(context.Background(), nil)

	var decode *DecodeError

	require.ErrorAs(t, err, &decode)
}
