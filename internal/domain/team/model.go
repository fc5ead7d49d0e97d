package team

// Short is the trimmed team projection embedded in related entities.
type Short struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`
	Shield    string `json:"shield,omitempty"`
}

// Team is the full record served by the API.
type Team struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	ShortName   string `json:"short_name"`
	Color       string `json:"color"`
	Color2      string `json:"color2"`
	Shield      string `json:"shield"`
	NextMatchID int64  `json:"next_match_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateRequest struct {
	FullName    string `json:"full_name" validate:"required"`
	ShortName   string `json:"short_name" validate:"required"`
	Color       string `json:"color" validate:"required"`
	Color2      string `json:"color2" validate:"required"`
	Shield      string `json:"shield,omitempty"`
	NextMatchID int64  `json:"next_match_id,omitempty"`
}

type UpdateRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	ShortName   *string `json:"short_name,omitempty"`
	Color       *string `json:"color,omitempty"`
	Color2      *string `json:"color2,omitempty"`
	Shield      *string `json:"shield,omitempty"`
	NextMatchID *int64  `json:"next_match_id,omitempty"`
}
