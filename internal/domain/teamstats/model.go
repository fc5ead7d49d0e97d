package teamstats

import (
	"club-console/internal/domain/season"
	"club-console/internal/domain/team"
)

// TeamStats is one team's season standings row.
type TeamStats struct {
	ID           int64        `json:"id"`
	Wins         int          `json:"wins"`
	Draws        int          `json:"draws"`
	Losses       int          `json:"losses"`
	GoalsFor     int          `json:"goals_for"`
	GoalsAgainst int          `json:"goals_against"`
	Points       int          `json:"points"`
	Rank         int          `json:"rank"`
	SeasonID     int64        `json:"season_id"`
	TeamID       int64        `json:"team_id"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
	Team         team.Short   `json:"team"`
	Season       season.Short `json:"season"`
}

type CreateRequest struct {
	Wins         int   `json:"wins" validate:"gte=0"`
	Draws        int   `json:"draws" validate:"gte=0"`
	Losses       int   `json:"losses" validate:"gte=0"`
	GoalsFor     int   `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int   `json:"goals_against" validate:"gte=0"`
	Points       int   `json:"points" validate:"gte=0"`
	Rank         int   `json:"rank" validate:"gt=0"`
	SeasonID     int64 `json:"season_id" validate:"gt=0"`
	TeamID       int64 `json:"team_id" validate:"gt=0"`
}

type UpdateRequest struct {
	Wins         *int `json:"wins,omitempty"`
	Draws        *int `json:"draws,omitempty"`
	Losses       *int `json:"losses,omitempty"`
	GoalsFor     *int `json:"goals_for,omitempty"`
	GoalsAgainst *int `json:"goals_against,omitempty"`
	Points       *int `json:"points,omitempty"`
	Rank         *int `json:"rank,omitempty"`
}
