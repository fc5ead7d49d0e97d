package playerteam

import (
	"club-console/internal/domain/player"
	"club-console/internal/domain/season"
	"club-console/internal/domain/team"
)

// PlayerTeam links a player to a team for part of a season.
type PlayerTeam struct {
	ID        int64         `json:"id"`
	PlayerID  int64         `json:"player_id"`
	TeamID    int64         `json:"team_id"`
	SeasonID  int64         `json:"season_id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	Player    *player.Short `json:"player,omitempty"`
	Team      *team.Short   `json:"team,omitempty"`
	Season    *season.Short `json:"season,omitempty"`
}

type CreateRequest struct {
	PlayerID  int64  `json:"player_id" validate:"gt=0"`
	TeamID    int64  `json:"team_id" validate:"gt=0"`
	SeasonID  int64  `json:"season_id" validate:"gt=0"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date,omitempty"`
}

type UpdateRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}
