package clubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"club-console/internal/domain/article"
	"club-console/internal/domain/lineup"
	"club-console/internal/domain/match"
	"club-console/internal/domain/player"
	"club-console/internal/domain/playerstats"
	"club-console/internal/domain/playerteam"
	"club-console/internal/domain/season"
	"club-console/internal/domain/team"
	"club-console/internal/domain/teamstats"
	"club-console/internal/domain/user"
	"club-console/internal/resource"
)

// Public list endpoints live at /<entity>; admin writes at /admin/<entity>.

func listPage[T any](ctx context.Context, c *Client, path string, params resource.Params) (resource.Page[T], error) {
	var page resource.Page[T]
	if err := c.getJSON(ctx, path, params.Query(), &page); err != nil {
		return resource.Page[T]{}, err
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

func fetchOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func createOne[T any](ctx context.Context, c *Client, path string, body any, invalidate string) (T, error) {
	var out T
	if err := c.send(ctx, http.MethodPost, path, body, &out, invalidate); err != nil {
		return out, err
	}
	return out, nil
}

func updateOne[T any](ctx context.Context, c *Client, path string, body any, invalidate string) (T, error) {
	var out T
	if err := c.send(ctx, http.MethodPut, path, body, &out, invalidate); err != nil {
		return out, err
	}
	return out, nil
}

func deleteOne(ctx context.Context, c *Client, path, invalidate string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil, invalidate)
}

func (c *Client) ListSeasons(ctx context.Context, params resource.Params) (resource.Page[season.Season], error) {
	return listPage[season.Season](ctx, c, "/seasons", params)
}

func (c *Client) GetSeason(ctx context.Context, id int64) (season.Season, error) {
	return fetchOne[season.Season](ctx, c, fmt.Sprintf("/seasons/%d", id))
}

func (c *Client) CreateSeason(ctx context.Context, req season.CreateRequest) (season.Season, error) {
	return createOne[season.Season](ctx, c, "/admin/seasons", req, "seasons")
}

func (c *Client) UpdateSeason(ctx context.Context, id int64, req season.UpdateRequest) (season.Season, error) {
	return updateOne[season.Season](ctx, c, fmt.Sprintf("/admin/seasons/%d", id), req, "seasons")
}

func (c *Client) DeleteSeason(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/seasons/%d", id), "seasons")
}

func (c *Client) ListTeams(ctx context.Context, params resource.Params) (resource.Page[team.Team], error) {
	return listPage[team.Team](ctx, c, "/teams", params)
}

func (c *Client) GetTeam(ctx context.Context, id int64) (team.Team, error) {
	return fetchOne[team.Team](ctx, c, fmt.Sprintf("/teams/%d", id))
}

func (c *Client) CreateTeam(ctx context.Context, req team.CreateRequest) (team.Team, error) {
	return createOne[team.Team](ctx, c, "/admin/teams", req, "teams")
}

func (c *Client) UpdateTeam(ctx context.Context, id int64, req team.UpdateRequest) (team.Team, error) {
	return updateOne[team.Team](ctx, c, fmt.Sprintf("/admin/teams/%d", id), req, "teams")
}

func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/teams/%d", id), "teams")
}

func (c *Client) ListPlayers(ctx context.Context, params resource.Params) (resource.Page[player.Player], error) {
	return listPage[player.Player](ctx, c, "/players", params)
}

func (c *Client) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	return fetchOne[player.Player](ctx, c, fmt.Sprintf("/players/%d", id))
}

func (c *Client) CreatePlayer(ctx context.Context, req player.CreateRequest) (player.Player, error) {
	return createOne[player.Player](ctx, c, "/admin/players", req, "players")
}

func (c *Client) UpdatePlayer(ctx context.Context, id int64, req player.UpdateRequest) (player.Player, error) {
	return updateOne[player.Player](ctx, c, fmt.Sprintf("/admin/players/%d", id), req, "players")
}

func (c *Client) DeletePlayer(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/players/%d", id), "players")
}

func (c *Client) ListMatches(ctx context.Context, params resource.Params) (resource.Page[match.Match], error) {
	return listPage[match.Match](ctx, c, "/matches", params)
}

func (c *Client) GetMatch(ctx context.Context, id int64) (match.Match, error) {
	return fetchOne[match.Match](ctx, c, fmt.Sprintf("/matches/%d", id))
}

func (c *Client) CreateMatch(ctx context.Context, req match.CreateRequest) (match.Match, error) {
	return createOne[match.Match](ctx, c, "/admin/matches", req, "matches")
}

func (c *Client) UpdateMatch(ctx context.Context, id int64, req match.UpdateRequest) (match.Match, error) {
	return updateOne[match.Match](ctx, c, fmt.Sprintf("/admin/matches/%d", id), req, "matches")
}

func (c *Client) DeleteMatch(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/matches/%d", id), "matches")
}

func (c *Client) ListLineups(ctx context.Context, params resource.Params) (resource.Page[lineup.Lineup], error) {
	return listPage[lineup.Lineup](ctx, c, "/lineups", params)
}

func (c *Client) GetLineup(ctx context.Context, id int64) (lineup.Lineup, error) {
	return fetchOne[lineup.Lineup](ctx, c, fmt.Sprintf("/lineups/%d", id))
}

// MatchLineups loads the full saved lineup for one match, starters and
// substitutes together.
func (c *Client) MatchLineups(ctx context.Context, matchID int64) ([]lineup.Short, error) {
	return fetchOne[[]lineup.Short](ctx, c, fmt.Sprintf("/matches/%d/lineups", matchID))
}

func (c *Client) CreateLineup(ctx context.Context, req lineup.CreateRequest) (lineup.Lineup, error) {
	return createOne[lineup.Lineup](ctx, c, "/admin/lineups", req, "lineups")
}

func (c *Client) UpdateLineup(ctx context.Context, id int64, req lineup.UpdateRequest) (lineup.Lineup, error) {
	return updateOne[lineup.Lineup](ctx, c, fmt.Sprintf("/admin/lineups/%d", id), req, "lineups")
}

func (c *Client) DeleteLineup(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/lineups/%d", id), "lineups")
}

func (c *Client) ListPlayerStats(ctx context.Context, params resource.Params) (resource.Page[playerstats.PlayerStats], error) {
	return listPage[playerstats.PlayerStats](ctx, c, "/player-stats", params)
}

func (c *Client) GetPlayerStats(ctx context.Context, id int64) (playerstats.PlayerStats, error) {
	return fetchOne[playerstats.PlayerStats](ctx, c, fmt.Sprintf("/player-stats/%d", id))
}

func (c *Client) CreatePlayerStats(ctx context.Context, req playerstats.CreateRequest) (playerstats.PlayerStats, error) {
	return createOne[playerstats.PlayerStats](ctx, c, "/admin/player-stats", req, "player-stats")
}

func (c *Client) UpdatePlayerStats(ctx context.Context, id int64, req playerstats.UpdateRequest) (playerstats.PlayerStats, error) {
	return updateOne[playerstats.PlayerStats](ctx, c, fmt.Sprintf("/admin/player-stats/%d", id), req, "player-stats")
}

func (c *Client) DeletePlayerStats(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/player-stats/%d", id), "player-stats")
}

func (c *Client) ListTeamStats(ctx context.Context, params resource.Params) (resource.Page[teamstats.TeamStats], error) {
	return listPage[teamstats.TeamStats](ctx, c, "/team-stats", params)
}

func (c *Client) GetTeamStats(ctx context.Context, id int64) (teamstats.TeamStats, error) {
	return fetchOne[teamstats.TeamStats](ctx, c, fmt.Sprintf("/team-stats/%d", id))
}

func (c *Client) CreateTeamStats(ctx context.Context, req teamstats.CreateRequest) (teamstats.TeamStats, error) {
	return createOne[teamstats.TeamStats](ctx, c, "/admin/team-stats", req, "team-stats")
}

func (c *Client) UpdateTeamStats(ctx context.Context, id int64, req teamstats.UpdateRequest) (teamstats.TeamStats, error) {
	return updateOne[teamstats.TeamStats](ctx, c, fmt.Sprintf("/admin/team-stats/%d", id), req, "team-stats")
}

func (c *Client) DeleteTeamStats(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/team-stats/%d", id), "team-stats")
}

func (c *Client) ListPlayerTeams(ctx context.Context, params resource.Params) (resource.Page[playerteam.PlayerTeam], error) {
	return listPage[playerteam.PlayerTeam](ctx, c, "/player-teams", params)
}

func (c *Client) GetPlayerTeam(ctx context.Context, id int64) (playerteam.PlayerTeam, error) {
	return fetchOne[playerteam.PlayerTeam](ctx, c, fmt.Sprintf("/player-teams/%d", id))
}

func (c *Client) CreatePlayerTeam(ctx context.Context, req playerteam.CreateRequest) (playerteam.PlayerTeam, error) {
	return createOne[playerteam.PlayerTeam](ctx, c, "/admin/player-teams", req, "player-teams")
}

func (c *Client) UpdatePlayerTeam(ctx context.Context, id int64, req playerteam.UpdateRequest) (playerteam.PlayerTeam, error) {
	return updateOne[playerteam.PlayerTeam](ctx, c, fmt.Sprintf("/admin/player-teams/%d", id), req, "player-teams")
}

func (c *Client) DeletePlayerTeam(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/player-teams/%d", id), "player-teams")
}

func (c *Client) ListArticles(ctx context.Context, params resource.Params) (resource.Page[article.Article], error) {
	return listPage[article.Article](ctx, c, "/articles", params)
}

func (c *Client) GetArticle(ctx context.Context, id int64) (article.Article, error) {
	return fetchOne[article.Article](ctx, c, fmt.Sprintf("/articles/%d", id))
}

func (c *Client) CreateArticle(ctx context.Context, req article.CreateRequest) (article.Article, error) {
	return createOne[article.Article](ctx, c, "/admin/articles", req, "articles")
}

func (c *Client) UpdateArticle(ctx context.Context, id int64, req article.UpdateRequest) (article.Article, error) {
	return updateOne[article.Article](ctx, c, fmt.Sprintf("/admin/articles/%d", id), req, "articles")
}

func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	return deleteOne(ctx, c, fmt.Sprintf("/admin/articles/%d", id), "articles")
}

func (c *Client) ListUsers(ctx context.Context, params resource.Params) (resource.Page[user.User], error) {
	return listPage[user.User](ctx, c, "/admin/users", params)
}

func (c *Client) GetUser(ctx context.Context, id string) (user.User, error) {
	return fetchOne[user.User](ctx, c, "/admin/users/"+url.PathEscape(id))
}

func (c *Client) UpdateUser(ctx context.Context, id string, req user.UpdateRequest) (user.User, error) {
	return updateOne[user.User](ctx, c, "/admin/users/"+url.PathEscape(id), req, "users")
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return deleteOne(ctx, c, "/admin/users/"+url.PathEscape(id), "users")
}
