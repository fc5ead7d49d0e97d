package season

// Short is the trimmed season projection embedded in related entities.
type Short struct {
	ID   int64 `json:"id"`
	Year int   `json:"year"`
}

// Season is the full record served by the API.
type Season struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	IsCurrent bool   `json:"is_current"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateRequest struct {
	Year      int    `json:"year" validate:"gt=1900"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	IsCurrent bool   `json:"is_current,omitempty"`
}

type UpdateRequest struct {
	Year      *int    `json:"year,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	IsCurrent *bool   `json:"is_current,omitempty"`
}
