package lolrest

import (
	"context"
)

// Champion retrieves the status of all champions for the client's region.
func (c *Client) Champion(ctx context.Context, params Params) (*ChampionList, error) {
	resp, err := c.Execute(ctx, EndpointChampion, params)
	if err != nil {
		return nil, err
	}

	var list ChampionList
	if err := DecodeResponse(resp, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// CurrentGame retrieves the spectator view of the game the given summoner is currently in, if any.
func (c *Client) CurrentGame(ctx context.Context, params Params) (*CurrentGameInfo, error) {
	resp, err := c.Execute(ctx, EndpointCurrentGame, params)
	if err != nil {
		return nil, err
	}

	var info CurrentGameInfo
	if err := DecodeResponse(resp, &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// League retrieves leagues keyed by the summoner/team ids they were requested for.
func (c *Client) League(ctx context.Context, params Params) (map[string][]League, error) {
	resp, err := c.Execute(ctx, EndpointLeague, params)
	if err != nil {
		return nil, err
	}

	leagues := make(map[string][]League)
	if err := DecodeResponse(resp, &leagues); err != nil {
		return nil, err
	}

	return leagues, nil
}

// Summoner retrieves summoners keyed by the standardized names/ids they were requested for.
func (c *Client) Summoner(ctx context.Context, params Params) (map[string]Summoner, error) {
	resp, err := c.Execute(ctx, EndpointSummoner, params)
	if err != nil {
		return nil, err
	}

	summoners := make(map[string]Summoner)
	if err := DecodeResponse(resp, &summoners); err != nil {
		return nil, err
	}

	return summoners, nil
}

// Game retrieves the recent games for a summoner; the response is returned undecoded.
func (c *Client) Game(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointGame, params)
}

// Match retrieves a single match; the response is returned undecoded.
func (c *Client) Match(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointMatch, params)
}

// Matchlist retrieves the match history for a summoner; the response is returned undecoded.
func (c *Client) Matchlist(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointMatchlist, params)
}

// StaticData retrieves game constants such as champions, items and runes; the response is returned undecoded.
func (c *Client) StaticData(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointStaticData, params)
}

// Stats retrieves the ranked/summary statistics for a summoner; the response is returned undecoded.
func (c *Client) Stats(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointStats, params)
}

// Team retrieves the ranked teams for a summoner; the response is returned undecoded.
func (c *Client) Team(ctx context.Context, params Params) (*Response, error) {
	return c.Execute(ctx, EndpointTeam, params)
}
