package match

import (
	"club-console/internal/domain/player"
	"club-console/internal/domain/season"
	"club-console/internal/domain/team"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
	StatusPostponed  Status = "postponed"
	StatusCancelled  Status = "cancelled"
)

// AcceptsLineup reports whether the lineup builder should offer this match.
func (s Status) AcceptsLineup() bool {
	return s == StatusScheduled || s == StatusInProgress
}

// Short is the trimmed match projection embedded in related entities.
type Short struct {
	ID        int64  `json:"id"`
	Status    Status `json:"status"`
	Kickoff   string `json:"kickoff"`
	Location  string `json:"location"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}

// Match is the full record served by the API.
type Match struct {
	ID          int64         `json:"id"`
	Status      Status        `json:"status"`
	Kickoff     string        `json:"kickoff"`
	Location    string        `json:"location"`
	HomeGoals   int           `json:"home_goals"`
	AwayGoals   int           `json:"away_goals"`
	HomeTeamID  int64         `json:"home_team_id"`
	AwayTeamID  int64         `json:"away_team_id"`
	SeasonID    int64         `json:"season_id"`
	MVPPlayerID int64         `json:"mvp_player_id,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	HomeTeam    *team.Short   `json:"home_team,omitempty"`
	AwayTeam    *team.Short   `json:"away_team,omitempty"`
	Season      *season.Short `json:"season,omitempty"`
	MVPPlayer   *player.Short `json:"mvp_player,omitempty"`
}

// CreateRequest is the privileged creation payload.
type CreateRequest struct {
	Status      Status `json:"status" validate:"oneof=scheduled in_progress finished postponed cancelled"`
	Kickoff     string `json:"kickoff" validate:"required"`
	Location    string `json:"location" validate:"required"`
	HomeTeamID  int64  `json:"home_team_id" validate:"gt=0"`
	AwayTeamID  int64  `json:"away_team_id" validate:"gt=0,nefield=HomeTeamID"`
	SeasonID    int64  `json:"season_id" validate:"gt=0"`
	HomeGoals   int    `json:"home_goals,omitempty"`
	AwayGoals   int    `json:"away_goals,omitempty"`
	MVPPlayerID int64  `json:"mvp_player_id,omitempty"`
}

// UpdateRequest carries only the fields the admin changed.
type UpdateRequest struct {
	Status      *Status `json:"status,omitempty"`
	Kickoff     *string `json:"kickoff,omitempty"`
	Location    *string `json:"location,omitempty"`
	HomeGoals   *int    `json:"home_goals,omitempty"`
	AwayGoals   *int    `json:"away_goals,omitempty"`
	HomeTeamID  *int64  `json:"home_team_id,omitempty"`
	AwayTeamID  *int64  `json:"away_team_id,omitempty"`
	SeasonID    *int64  `json:"season_id,omitempty"`
	MVPPlayerID *int64  `json:"mvp_player_id,omitempty"`
}
