package lolrest

import (
	"strings"

	"golang.org/x/exp/slices"
)

// EndpointID identifies a single logical operation exposed by the service. The set of supported endpoints is fixed at
// build time; supporting a new operation means registering a new spec, not extending the router.
type EndpointID string

const (
	EndpointChampion    EndpointID = "champion"
	EndpointCurrentGame EndpointID = "current_game"
	EndpointGame        EndpointID = "game"
	EndpointLeague      EndpointID = "league"
	EndpointMatch       EndpointID = "match"
	EndpointMatchlist   EndpointID = "matchlist"
	EndpointStaticData  EndpointID = "static_data"
	EndpointStats       EndpointID = "stats"
	EndpointSummoner    EndpointID = "summoner"
	EndpointTeam        EndpointID = "team"
)

// pathStrategy tags the rule set used to turn parameters into path segments for a class of endpoints. New upstream
// conventions are supported by adding a tag here and a builder to the 'builders' table.
type pathStrategy int

const (
	// pathStandard routes '/api/lol/<region>/v<version>/<name>' with the positional by/id/type segments.
	pathStandard pathStrategy = iota

	// pathStaticData routes '/api/lol/static-data/<region>/v<version>/<type>', the type value substitutes for the
	// endpoint name itself.
	pathStaticData

	// pathLiveGame routes '/observer-mode/rest/consumer/getSpectatorGameInfo/<platformId>' bypassing the versioned
	// prefix entirely.
	pathLiveGame
)

// endpointSpec is a static registry entry binding an endpoint to the API version it's served under and the rule used
// to construct its path.
type endpointSpec struct {
	version  string
	strategy pathStrategy
}

// endpoints is the compiled-in endpoint registry with the versions as published by the service.
//
// NOTE: The 'current_game' version is carried for completeness, the live game path shape never includes a version
// segment.
var endpoints = map[EndpointID]endpointSpec{
	EndpointChampion:    {version: "1.2", strategy: pathStandard},
	EndpointCurrentGame: {version: "1.0", strategy: pathLiveGame},
	EndpointGame:        {version: "1.3", strategy: pathStandard},
	EndpointLeague:      {version: "2.5", strategy: pathStandard},
	EndpointMatch:       {version: "2.2", strategy: pathStandard},
	EndpointMatchlist:   {version: "2.2", strategy: pathStandard},
	EndpointStaticData:  {version: "1.2", strategy: pathStaticData},
	EndpointStats:       {version: "1.3", strategy: pathStandard},
	EndpointSummoner:    {version: "1.4", strategy: pathStandard},
	EndpointTeam:        {version: "2.4", strategy: pathStandard},
}

// pathName returns the endpoint name as it appears in the request path, the service routes use dashes where the
// logical names use underscores.
func (e EndpointID) pathName() string {
	return strings.ReplaceAll(string(e), "_", "-")
}

// Version returns the API version the given endpoint is served under.
func (e EndpointID) Version() (string, bool) {
	spec, ok := endpoints[e]
	return spec.version, ok
}

// Endpoints returns the closed set of endpoint ids known to the router in a deterministic order.
func Endpoints() []EndpointID {
	ids := make([]EndpointID, 0, len(endpoints))
	for id := range endpoints {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
