package player

import "fmt"

// Position represents the club's pitch role codes as used by the API.
type Position string

const (
	PositionPortero      Position = "por"
	PositionCentralIzq   Position = "ceni"
	PositionCentralMedio Position = "cenm"
	PositionCentralDer   Position = "cend"
	PositionLateralIzq   Position = "lati"
	PositionLateralDer   Position = "latd"
	PositionMedioCentro  Position = "med"
	PositionDelantero    Position = "del"
	PositionDelanteroIzq Position = "deli"
	PositionDelanteroDer Position = "deld"
)

var AllPositions = map[Position]struct{}{
	PositionPortero:      {},
	PositionCentralIzq:   {},
	PositionCentralMedio: {},
	PositionCentralDer:   {},
	PositionLateralIzq:   {},
	PositionLateralDer:   {},
	PositionMedioCentro:  {},
	PositionDelantero:    {},
	PositionDelanteroIzq: {},
	PositionDelanteroDer: {},
}

// Foot is a player's preferred foot.
type Foot string

const (
	FootLeft  Foot = "L"
	FootRight Foot = "R"
)

// Short is the trimmed projection list screens and the lineup builder use.
type Short struct {
	ID          int64    `json:"id"`
	NickName    string   `json:"nick_name"`
	SquadNumber int      `json:"squad_number"`
	Position    Position `json:"position"`
	Rating      float64  `json:"rating"`
}

// Player is the full roster record served by the API.
type Player struct {
	ID            int64    `json:"id"`
	NickName      string   `json:"nick_name"`
	Height        int      `json:"height"`
	Country       string   `json:"country"`
	Country2      string   `json:"country2"`
	Foot          Foot     `json:"foot"`
	Age           int      `json:"age"`
	SquadNumber   int      `json:"squad_number"`
	Rating        float64  `json:"rating"`
	Matches       int      `json:"matches"`
	YellowCards   int      `json:"y_cards"`
	RedCards      int      `json:"r_cards"`
	Goals         int      `json:"goals"`
	Assists       int      `json:"assists"`
	Saves         int      `json:"saves"`
	Position      Position `json:"position"`
	Injured       bool     `json:"injured"`
	CareerSummary string   `json:"career_summary"`
	MVPCount      int      `json:"mvp_count"`
	UserID        string   `json:"user_id,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func (p Player) Short() Short {
	return Short{
		ID:          p.ID,
		NickName:    p.NickName,
		SquadNumber: p.SquadNumber,
		Position:    p.Position,
		Rating:      p.Rating,
	}
}

// CreateRequest is the privileged creation payload.
type CreateRequest struct {
	NickName      string   `json:"nick_name" validate:"required"`
	Height        int      `json:"height" validate:"gt=0"`
	Country       string   `json:"country" validate:"required"`
	Country2      string   `json:"country2,omitempty"`
	Foot          Foot     `json:"foot" validate:"oneof=L R"`
	Age           int      `json:"age" validate:"gt=0"`
	SquadNumber   int      `json:"squad_number" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0"`
	Position      Position `json:"position" validate:"required"`
	Injured       bool     `json:"injured,omitempty"`
	CareerSummary string   `json:"career_summary,omitempty"`
	UserID        string   `json:"user_id,omitempty"`
}

func (r CreateRequest) Validate() error {
	if _, ok := AllPositions[r.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", r.Position)
	}
	return nil
}

// UpdateRequest carries only the fields the admin changed.
type UpdateRequest struct {
	NickName      *string   `json:"nick_name,omitempty"`
	Height        *int      `json:"height,omitempty"`
	Country       *string   `json:"country,omitempty"`
	Country2      *string   `json:"country2,omitempty"`
	Foot          *Foot     `json:"foot,omitempty"`
	Age           *int      `json:"age,omitempty"`
	SquadNumber   *int      `json:"squad_number,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Position      *Position `json:"position,omitempty"`
	Injured       *bool     `json:"injured,omitempty"`
	CareerSummary *string   `json:"career_summary,omitempty"`
	MVPCount      *int      `json:"mvp_count,omitempty"`
	UserID        *string   `json:"user_id,omitempty"`
}
