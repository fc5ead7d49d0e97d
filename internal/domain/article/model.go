package article

import "club-console/internal/domain/season"

// Short is the trimmed article projection for the public news feed.
type Short struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Date   string       `json:"date"`
	Season season.Short `json:"season"`
}

// Article is the full record served by the API.
type Article struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Date      string       `json:"date"`
	ImgBanner string       `json:"img_banner,omitempty"`
	Season    season.Short `json:"season"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

type CreateRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Date      string `json:"date" validate:"required"`
	SeasonID  int64  `json:"season_id" validate:"gt=0"`
	ImgBanner string `json:"img_banner,omitempty"`
}

type UpdateRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Date      *string `json:"date,omitempty"`
	SeasonID  *int64  `json:"season_id,omitempty"`
	ImgBanner *string `json:"img_banner,omitempty"`
}
