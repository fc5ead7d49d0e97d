package user

// Role assigned to a console user.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
	RoleViewer = "viewer"
)

// Short is the trimmed user projection.
type Short struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// User is the full record served by the API.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	Role       Role   `json:"role"`
	ImgProfile string `json:"img_profile,omitempty"`
	ImgBanner  string `json:"img_banner,omitempty"`
	Birthdate  string `json:"birthdate,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// IsAdmin reports whether the user may reach /admin endpoints.
func (u User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}

type CreateRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	RoleID   int64  `json:"role_id" validate:"gt=0"`
}

type UpdateRequest struct {
	Username   *string `json:"username,omitempty"`
	Name       *string `json:"name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	RoleID     *int64  `json:"role_id,omitempty"`
	ImgProfile *string `json:"img_profile,omitempty"`
	ImgBanner  *string `json:"img_banner,omitempty"`
	Birthdate  *string `json:"birthdate,omitempty"`
}
