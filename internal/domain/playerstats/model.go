package playerstats

import (
	"club-console/internal/domain/match"
	"club-console/internal/domain/player"
	"club-console/internal/domain/season"
	"club-console/internal/domain/team"
)

// PlayerStats is one player's per-match stat line.
type PlayerStats struct {
	ID            int64           `json:"id"`
	PlayerID      int64           `json:"player_id"`
	MatchID       int64           `json:"match_id"`
	SeasonID      int64           `json:"season_id"`
	TeamID        int64           `json:"team_id,omitempty"`
	Goals         int             `json:"goals"`
	Assists       int             `json:"assists"`
	Saves         int             `json:"saves"`
	YellowCards   int             `json:"yellow_cards"`
	RedCards      int             `json:"red_cards"`
	Rating        float64         `json:"rating"`
	IsStarting    bool            `json:"is_starting"`
	MinutesPlayed int             `json:"minutes_played"`
	IsMVP         bool            `json:"is_mvp"`
	Position      player.Position `json:"position"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	Player        *player.Short   `json:"player,omitempty"`
	Match         *match.Short    `json:"match,omitempty"`
	Season        *season.Short   `json:"season,omitempty"`
	Team          *team.Short     `json:"team,omitempty"`
}

type CreateRequest struct {
	PlayerID      int64           `json:"player_id" validate:"gt=0"`
	MatchID       int64           `json:"match_id" validate:"gt=0"`
	SeasonID      int64           `json:"season_id" validate:"gt=0"`
	TeamID        int64           `json:"team_id,omitempty"`
	Goals         int             `json:"goals" validate:"gte=0"`
	Assists       int             `json:"assists" validate:"gte=0"`
	Saves         int             `json:"saves" validate:"gte=0"`
	YellowCards   int             `json:"yellow_cards" validate:"gte=0,lte=2"`
	RedCards      int             `json:"red_cards" validate:"gte=0,lte=1"`
	Rating        float64         `json:"rating" validate:"gte=0,lte=10"`
	IsStarting    bool            `json:"is_starting"`
	MinutesPlayed int             `json:"minutes_played" validate:"gte=0"`
	IsMVP         bool            `json:"is_mvp"`
	Position      player.Position `json:"position" validate:"required"`
}

type UpdateRequest struct {
	Goals         *int             `json:"goals,omitempty"`
	Assists       *int             `json:"assists,omitempty"`
	Saves         *int             `json:"saves,omitempty"`
	YellowCards   *int             `json:"yellow_cards,omitempty"`
	RedCards      *int             `json:"red_cards,omitempty"`
	Rating        *float64         `json:"rating,omitempty"`
	IsStarting    *bool            `json:"is_starting,omitempty"`
	MinutesPlayed *int             `json:"minutes_played,omitempty"`
	IsMVP         *bool            `json:"is_mvp,omitempty"`
	Position      *player.Position `json:"position,omitempty"`
}
