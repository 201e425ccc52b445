package lolrest

import (
	"net"
	"strconv"

	"golang.org/x/exp/slices"
)

// Region is a closed set code selecting which geographic deployment of the service to target. Unknown codes are
// rejected when the client is configured, not when requests are built.
type Region string

const (
	RegionBR   Region = "br"
	RegionEUNE Region = "eune"
	RegionEUW  Region = "euw"
	RegionJP   Region = "jp"
	RegionKR   Region = "kr"
	RegionLAN  Region = "lan"
	RegionLAS  Region = "las"
	RegionNA   Region = "na"
	RegionOCE  Region = "oce"
	RegionTR   Region = "tr"
	RegionRU   Region = "ru"
)

// Platform is the per-region deployment metadata required by the live spectator endpoint; the platform id becomes a
// path segment, the host/port pair addresses the spectator stream itself.
type Platform struct {
	ID            string
	SpectatorHost string
	SpectatorPort int
}

// platforms is the static region registry; the spectator hosts don't follow the platform id naming one-to-one, the
// table below matches the deployments as published.
var platforms = map[Region]Platform{
	RegionBR:   {ID: "BR1", SpectatorHost: "spectator.br.lol.riotgames.com", SpectatorPort: 80},
	RegionEUNE: {ID: "EUN1", SpectatorHost: "spectator.eu.lol.riotgames.com", SpectatorPort: 8088},
	RegionEUW:  {ID: "EUW1", SpectatorHost: "spectator.euw1.lol.riotgames.com", SpectatorPort: 80},
	RegionJP:   {ID: "JP1", SpectatorHost: "spectator.jp1.lol.riotgames.com", SpectatorPort: 80},
	RegionKR:   {ID: "KR", SpectatorHost: "spectator.kr.lol.riotgames.com", SpectatorPort: 80},
	RegionLAN:  {ID: "LA1", SpectatorHost: "spectator.la1.lol.riotgames.com", SpectatorPort: 80},
	RegionLAS:  {ID: "LA2", SpectatorHost: "spectator.la2.lol.riotgames.com", SpectatorPort: 80},
	RegionNA:   {ID: "NA1", SpectatorHost: "spectator.na.lol.riotgames.com", SpectatorPort: 80},
	RegionOCE:  {ID: "OC1", SpectatorHost: "spectator.oc1.lol.riotgames.com", SpectatorPort: 80},
	RegionTR:   {ID: "TR1", SpectatorHost: "spectator.tr.lol.riotgames.com", SpectatorPort: 80},
	RegionRU:   {ID: "RU", SpectatorHost: "spectator.ru.lol.riotgames.com", SpectatorPort: 80},
}

// ResolvePlatform returns the deployment metadata for the given region. This is a pure lookup, no side effects, no
// I/O.
func ResolvePlatform(region Region) (Platform, error) {
	platform, ok := platforms[region]
	if !ok {
		return Platform{}, &UnknownRegionError{region: region}
	}

	return platform, nil
}

// Valid returns a boolean indicating whether this region is within the closed set of supported codes.
func (r Region) Valid() bool {
	_, ok := platforms[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}

// SpectatorAddr returns the 'host:port' address of the spectator stream for this platform.
func (p Platform) SpectatorAddr() string {
	return net.JoinHostPort(p.SpectatorHost, strconv.Itoa(p.SpectatorPort))
}

// Regions returns the closed set of supported region codes in a deterministic order.
func Regions() []Region {
	regions := make([]Region, 0, len(platforms))
	for region := range platforms {
		regions = append(regions, region)
	}

	slices.Sort(regions)

	return regions
}
