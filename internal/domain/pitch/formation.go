package pitch

import (
	"fmt"

	"club-console/internal/domain/player"
)

// Formation is a named 7-a-side slot template.
type Formation string

const (
	Formation321 Formation = "3-2-1"
	Formation231 Formation = "2-3-1"
)

// StartingSlots is the number of on-pitch slots every formation carries.
const StartingSlots = 7

// BenchSize is the fixed number of substitute seats, independent of formation.
const BenchSize = 7

// Coord positions a slot on the pitch as percentages of the container.
// Render-only data; assignment logic never reads it.
type Coord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Slot is one position template within a formation.
type Slot struct {
	ID    int             `json:"id"`
	Coord Coord           `json:"coord"`
	Role  player.Position `json:"role"`
}

// DisplayNames maps role codes to their Spanish display labels.
var DisplayNames = map[player.Position]string{
	player.PositionPortero:      "Portero",
	player.PositionCentralIzq:   "Defensa Central Izquierdo",
	player.PositionCentralMedio: "Defensa Central Medio",
	player.PositionCentralDer:   "Defensa Central Derecho",
	player.PositionMedioCentro:  "Medio Centro",
	player.PositionLateralIzq:   "Lateral Izquierdo",
	player.PositionLateralDer:   "Lateral Derecho",
	player.PositionDelantero:    "Delantero",
	player.PositionDelanteroIzq: "Delantero Izquierdo",
	player.PositionDelanteroDer: "Delantero Derecho",
}

var formationSlots = map[Formation][]Slot{
	Formation321: {
		{ID: 1, Coord: Coord{X: 50, Y: 85}, Role: player.PositionPortero},
		{ID: 2, Coord: Coord{X: 25, Y: 65}, Role: player.PositionCentralIzq},
		{ID: 3, Coord: Coord{X: 50, Y: 65}, Role: player.PositionCentralMedio},
		{ID: 4, Coord: Coord{X: 75, Y: 65}, Role: player.PositionCentralDer},
		{ID: 5, Coord: Coord{X: 35, Y: 45}, Role: player.PositionLateralIzq},
		{ID: 6, Coord: Coord{X: 65, Y: 45}, Role: player.PositionLateralDer},
		{ID: 7, Coord: Coord{X: 50, Y: 25}, Role: player.PositionDelantero},
	},
	Formation231: {
		{ID: 1, Coord: Coord{X: 50, Y: 85}, Role: player.PositionPortero},
		{ID: 2, Coord: Coord{X: 30, Y: 65}, Role: player.PositionCentralIzq},
		{ID: 3, Coord: Coord{X: 70, Y: 65}, Role: player.PositionCentralDer},
		{ID: 4, Coord: Coord{X: 20, Y: 45}, Role: player.PositionLateralIzq},
		{ID: 5, Coord: Coord{X: 50, Y: 45}, Role: player.PositionMedioCentro},
		{ID: 6, Coord: Coord{X: 80, Y: 45}, Role: player.PositionLateralDer},
		{ID: 7, Coord: Coord{X: 50, Y: 25}, Role: player.PositionDelantero},
	},
}

// Formations lists the available templates in a stable order.
func Formations() []Formation {
	return []Formation{Formation321, Formation231}
}

// Slots returns a fresh copy of the slot templates for f. Callers own the
// returned slice and may annotate it with assignments.
func Slots(f Formation) ([]Slot, error) {
	template, ok := formationSlots[f]
	if !ok {
		return nil, fmt.Errorf("unknown formation %q", f)
	}
	out := make([]Slot, len(template))
	copy(out, template)
	return out, nil
}
