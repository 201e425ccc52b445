package lolrest

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/loltools/loltools/httptools"

	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	type test struct {
		name     string
		id       EndpointID
		params   Params
		expected *httptools.Request
	}

	client := newTestClient(t, ClientOptions{})

	tests := []*test{
		{
			name: "ChampionNoParams",
			id:   EndpointChampion,
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v1.2/champion",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "ChampionFreeToPlayQuery",
			id:     EndpointChampion,
			params: Params{"freeToPlay": true},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v1.2/champion",
				QueryParameters:    url.Values{"api_key": []string{apiKey}, "freeToPlay": []string{"true"}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "SummonerByName",
			id:     EndpointSummoner,
			params: Params{"by": "name", "id": "RiotSchmick"},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v1.4/summoner/by-name/RiotSchmick",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "ReservedSegmentsArePositional",
			id:     EndpointStats,
			params: Params{"type": "ranked", "id": 10101, "by": "summoner", "season": "SEASON2015"},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v1.3/stats/by-summoner/10101/ranked",
				QueryParameters:    url.Values{"api_key": []string{apiKey}, "season": []string{"SEASON2015"}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "LeagueEntryByTeam",
			id:     EndpointLeague,
			params: Params{"by": "team", "id": "TEAM-2a88df50", "type": "entry"},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v2.5/league/by-team/TEAM-2a88df50/entry",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "EndpointNameDashed",
			id:     EndpointStaticData,
			params: nil,
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/static-data/na/v1.2",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name: "StaticDataBareRoot",
			id:   EndpointStaticData,
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/static-data/na/v1.2/",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "StaticDataTypeSubstitution",
			id:     EndpointStaticData,
			params: Params{"type": "champion", "dataById": true},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/static-data/na/v1.2/champion",
				QueryParameters:    url.Values{"api_key": []string{apiKey}, "dataById": []string{"true"}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "StaticDataReservedSegments",
			id:     EndpointStaticData,
			params: Params{"type": "champion", "id": 266, "by": "rarity"},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/static-data/na/v1.2/champion/by-rarity/266",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "CurrentGame",
			id:     EndpointCurrentGame,
			params: Params{"summonerId": 112233},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/observer-mode/rest/consumer/getSpectatorGameInfo/NA1",
				QueryParameters:    url.Values{"api_key": []string{apiKey}, "summonerId": []string{"112233"}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			// The live game path performs no reserved parameter handling, the upstream ignores parameters it doesn't
			// know about so they pass through to the query string untouched
			name:   "CurrentGameReservedParamsPassThrough",
			id:     EndpointCurrentGame,
			params: Params{"by": "summoner", "id": 42},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/observer-mode/rest/consumer/getSpectatorGameInfo/NA1",
				QueryParameters: url.Values{
					"api_key": []string{apiKey},
					"by":      []string{"summoner"},
					"id":      []string{"42"},
				},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "SegmentsArePathEscaped",
			id:     EndpointSummoner,
			params: Params{"by": "name", "id": "the rock"},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v1.4/summoner/by-name/the%20rock",
				QueryParameters:    url.Values{"api_key": []string{apiKey}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
		{
			name:   "NumericCoercion",
			id:     EndpointMatch,
			params: Params{"id": int64(2018032769), "includeTimeline": false},
			expected: &httptools.Request{
				Host:               "https://na.api.pvp.net",
				Method:             httptools.MethodGet,
				Endpoint:           "/api/lol/na/v2.2/match/2018032769",
				QueryParameters:    url.Values{"api_key": []string{apiKey}, "includeTimeline": []string{"false"}},
				ExpectedStatusCode: http.StatusOK,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request, err := client.NewRequest(test.id, test.params)
			require.NoError(t, err)
			require.Equal(t, test.expected, request)
		})
	}
}

func TestNewRequestVersionInPath(t *testing.T) {
	client := newTestClient(t, ClientOptions{})

	for _, id := range Endpoints() {
		t.Run(string(id), func(t *testing.T) {
			request, err := client.NewRequest(id, nil)
			require.NoError(t, err)

			version, ok := id.Version()
			require.True(t, ok)

			if id == EndpointCurrentGame {
				require.NotRegexp(t, `/v\d`, string(request.Endpoint))
				return
			}

			require.Contains(t, string(request.Endpoint), "/v"+version+"/")
		})
	}
}

func TestNewRequestWorkedExample(t *testing.T) {
	client := newTestClient(t, ClientOptions{})

	request, err := client.NewRequest(EndpointStaticData, Params{"type": "champion", "id": 1, "dataById": 1})
	require.NoError(t, err)

	// 'url.Values.Encode' emits keys in sorted order so the full URI is reproducible byte-for-byte
	uri := request.Host + string(request.Endpoint) + "?" + request.QueryParameters.Encode()
	require.Equal(t, "https://na.api.pvp.net/api/lol/static-data/na/v1.2/champion/1?api_key=api-key&dataById=1", uri)
}

func TestNewRequestKeyPresentExactlyOnce(t *testing.T) {
	type test struct {
		name   string
		id     EndpointID
		params Params
	}

	client := newTestClient(t, ClientOptions{})

	tests := []*test{
		{name: "NoParams", id: EndpointChampion},
		{name: "WithParams", id: EndpointSummoner, params: Params{"by": "name", "id": "Wrux"}},
		{name: "LiveGame", id: EndpointCurrentGame, params: Params{"summonerId": 42}},
		{name: "CallerSuppliedKeyOverwritten", id: EndpointChampion, params: Params{"api_key": "not-the-key"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request, err := client.NewRequest(test.id, test.params)
			require.NoError(t, err)
			require.Equal(t, []string{apiKey}, request.QueryParameters["api_key"])
		})
	}
}

func TestNewRequestLiveGamePlatform(t *testing.T) {
	type test struct {
		name     string
		region   Region
		expected httptools.Endpoint
	}

	tests := []*test{
		{name: "NA", region: RegionNA, expected: "/observer-mode/rest/consumer/getSpectatorGameInfo/NA1"},
		{name: "EUW", region: RegionEUW, expected: "/observer-mode/rest/consumer/getSpectatorGameInfo/EUW1"},
		{name: "EUNE", region: RegionEUNE, expected: "/observer-mode/rest/consumer/getSpectatorGameInfo/EUN1"},
		{name: "OCE", region: RegionOCE, expected: "/observer-mode/rest/consumer/getSpectatorGameInfo/OC1"},
		{name: "KR", region: RegionKR, expected: "/observer-mode/rest/consumer/getSpectatorGameInfo/KR"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newTestClient(t, ClientOptions{Region: test.region})

			request, err := client.NewRequest(EndpointCurrentGame, nil)
			require.NoError(t, err)
			require.Equal(t, test.expected, request.Endpoint)
		})
	}
}

func TestNewRequestUnknownEndpoint(t *testing.T) {
	client := newTestClient(t, ClientOptions{})

	_, err := client.NewRequest("tournament", nil)

	var unknownEndpoint *UnknownEndpointError

	require.ErrorAs(t, err, &unknownEndpoint)
	require.True(t, IsUnknownEndpoint(err))
}

func TestNewRequestInvalidParameterValue(t *testing.T) {
	type test struct {
		name   string
		id     EndpointID
		params Params
	}

	client := newTestClient(t, ClientOptions{})

	tests := []*test{
		{
			name:   "NonScalarSegment",
			id:     EndpointSummoner,
			params: Params{"by": "name", "id": []string{"Wrux"}},
		},
		{
			name:   "NonScalarQuery",
			id:     EndpointChampion,
			params: Params{"freeToPlay": map[string]bool{"yes": true}},
		},
		{
			name:   "EmptySegment",
			id:     EndpointSummoner,
			params: Params{"by": "name", "id": ""},
		},
		{
			name:   "InvalidUTF8",
			id:     EndpointSummoner,
			params: Params{"by": "name", "id": string([]byte{0xff, 0xfe, 0xfd})},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := client.NewRequest(test.id, test.params)

			var invalidParameterValue *InvalidParameterValueError

			require.ErrorAs(t, err, &invalidParameterValue)
			require.True(t, IsInvalidParameterValue(err))
		})
	}
}

func TestNewRequestDeterministic(t *testing.T) {
	client := newTestClient(t, ClientOptions{})
	params := Params{"by": "summoner", "id": 10101, "type": "ranked", "season": "SEASON2015"}

	first, err := client.NewRequest(EndpointStats, params)
	require.NoError(t, err)

	second, err := client.NewRequest(EndpointStats, params)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Construction must never modify the parameters it was given
	require.Equal(t, Params{"by": "summoner", "id": 10101, "type": "ranked", "season": "SEASON2015"}, params)
}
