package lineup

import (
	"club-console/internal/domain/match"
	"club-console/internal/domain/player"
)

// Lineup is one saved lineup row: a single player's position in a match.
type Lineup struct {
	ID        int64           `json:"id"`
	Position  player.Position `json:"position"`
	PlayerID  int64           `json:"player_id"`
	MatchID   int64           `json:"match_id"`
	Starting  bool            `json:"starting"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	Player    *player.Short   `json:"player,omitempty"`
	Match     *match.Short    `json:"match,omitempty"`
}

// Short is the trimmed projection used when showing a match's lineup.
type Short struct {
	ID       int64           `json:"id"`
	Position player.Position `json:"position"`
	Starting bool            `json:"starting"`
	Player   player.Short    `json:"player"`
}

// CreateRequest is the per-slot creation payload the save batch submits.
type CreateRequest struct {
	Position player.Position `json:"position" validate:"required"`
	PlayerID int64           `json:"player_id" validate:"gt=0"`
	MatchID  int64           `json:"match_id" validate:"gt=0"`
	Starting bool            `json:"starting"`
}

// UpdateRequest carries only the fields the admin changed.
type UpdateRequest struct {
	Position *player.Position `json:"position,omitempty"`
	PlayerID *int64           `json:"player_id,omitempty"`
	MatchID  *int64           `json:"match_id,omitempty"`
	Starting *bool            `json:"starting,omitempty"`
}
