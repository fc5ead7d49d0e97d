package lineup

import (
	"errors"
	"fmt"

	"club-console/internal/domain/pitch"
	"club-console/internal/domain/player"
)

var (
	ErrNoFormation   = errors.New("no formation selected")
	ErrBoardNotReady = errors.New("lineup board is not ready to save")
)

// Phase is the board's derived lifecycle state.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseFormationSelected Phase = "formation_selected"
	PhasePartiallyAssigned Phase = "partially_assigned"
	PhaseFullyAssigned     Phase = "fully_assigned"
)

// SlotAssignment is a formation slot plus its current occupant, if any.
type SlotAssignment struct {
	Slot       pitch.Slot
	PlayerID   int64
	PlayerName string
}

func (s SlotAssignment) Occupied() bool {
	return s.PlayerID > 0
}

// BenchSeat is one substitute seat. Substitutes carry no role template;
// their position comes from the roster record at save time.
type BenchSeat struct {
	PlayerID   int64
	PlayerName string
}

func (b BenchSeat) Occupied() bool {
	return b.PlayerID > 0
}

type starterEntry struct {
	role       player.Position
	playerID   int64
	playerName string
	slotID     int
}

// Board assigns players to formation slots and bench seats for one match.
// It owns all slot state for the editing session; a failed save never
// mutates it. Not safe for concurrent use: one board, one editing session.
type Board struct {
	formation pitch.Formation
	slots     []SlotAssignment
	bench     [pitch.BenchSize]BenchSeat
	starters  []starterEntry
	matchID   int64
	roster    map[int64]player.Short
}

func NewBoard() *Board {
	return &Board{roster: make(map[int64]player.Short)}
}

// SetRoster indexes the candidate players so bench entries can resolve
// their natural position at save time.
func (b *Board) SetRoster(players []player.Short) {
	b.roster = make(map[int64]player.Short, len(players))
	for _, p := range players {
		b.roster[p.ID] = p
	}
}

// SetFormation swaps the slot template wholesale. Slot geometry and role
// meaning change per formation, so every starter assignment is dropped;
// the bench is independent and survives.
func (b *Board) SetFormation(f pitch.Formation) error {
	slots, err := pitch.Slots(f)
	if err != nil {
		return err
	}

	b.formation = f
	b.slots = make([]SlotAssignment, len(slots))
	for i, s := range slots {
		b.slots[i] = SlotAssignment{Slot: s}
	}
	b.starters = nil
	return nil
}

func (b *Board) Formation() pitch.Formation {
	return b.formation
}

// SetMatch selects the match this lineup is being built for.
func (b *Board) SetMatch(matchID int64) {
	b.matchID = matchID
}

func (b *Board) SelectedMatch() int64 {
	return b.matchID
}

// Assign places p on the referenced slot. A positive slotRef addresses a
// starter slot by id; a negative slotRef addresses bench seat -(ref)-1.
// A player already placed anywhere on the board is rejected and the call
// reports false with state unchanged.
func (b *Board) Assign(slotRef int, p player.Short) bool {
	if slotRef == 0 || p.ID <= 0 {
		return false
	}
	if b.isPlacedAnywhere(p.ID) {
		return false
	}

	if slotRef < 0 {
		idx := -slotRef - 1
		if idx < 0 || idx >= pitch.BenchSize {
			return false
		}
		b.bench[idx] = BenchSeat{PlayerID: p.ID, PlayerName: p.NickName}
		return true
	}

	for i := range b.slots {
		if b.slots[i].Slot.ID != slotRef {
			continue
		}
		b.slots[i].PlayerID = p.ID
		b.slots[i].PlayerName = p.NickName
		b.upsertStarter(b.slots[i])
		return true
	}
	return false
}

// Remove clears a single slot or bench seat, leaving all others untouched.
func (b *Board) Remove(slotRef int) {
	if slotRef < 0 {
		idx := -slotRef - 1
		if idx >= 0 && idx < pitch.BenchSize {
			b.bench[idx] = BenchSeat{}
		}
		return
	}

	for i := range b.slots {
		if b.slots[i].Slot.ID != slotRef {
			continue
		}
		b.slots[i].PlayerID = 0
		b.slots[i].PlayerName = ""
		b.dropStarter(slotRef)
		return
	}
}

// Slots returns a copy of the current slot assignments.
func (b *Board) Slots() []SlotAssignment {
	out := make([]SlotAssignment, len(b.slots))
	copy(out, b.slots)
	return out
}

// Bench returns a copy of the substitute seats.
func (b *Board) Bench() []BenchSeat {
	out := make([]BenchSeat, pitch.BenchSize)
	copy(out, b.bench[:])
	return out
}

// AssignedStarters counts occupied starter slots.
func (b *Board) AssignedStarters() int {
	count := 0
	for _, s := range b.slots {
		if s.Occupied() {
			count++
		}
	}
	return count
}

// Phase derives the board's lifecycle state from occupancy; nothing stores it.
func (b *Board) Phase() Phase {
	if b.formation == "" {
		return PhaseIdle
	}
	assigned := b.AssignedStarters()
	switch {
	case assigned == 0:
		return PhaseFormationSelected
	case assigned < pitch.StartingSlots:
		return PhasePartiallyAssigned
	default:
		return PhaseFullyAssigned
	}
}

// CanSave reports whether the lineup is submittable: a full set of starters
// and a selected match.
func (b *Board) CanSave() bool {
	return b.AssignedStarters() == pitch.StartingSlots && b.matchID > 0
}

// BuildSaveRequest flattens the board into creation records: starters first
// (role from the slot), then occupied bench seats (position from the roster
// record, since the bench has no slot template). Bench players missing from
// the roster are skipped, matching the console's observed behavior.
func (b *Board) BuildSaveRequest(matchID int64) ([]CreateRequest, error) {
	if !b.CanSave() {
		return nil, ErrBoardNotReady
	}
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id must be positive", ErrBoardNotReady)
	}

	out := make([]CreateRequest, 0, len(b.starters)+pitch.BenchSize)
	for _, s := range b.starters {
		out = append(out, CreateRequest{
			Position: s.role,
			PlayerID: s.playerID,
			MatchID:  matchID,
			Starting: true,
		})
	}

	for _, seat := range b.bench {
		if !seat.Occupied() {
			continue
		}
		p, ok := b.roster[seat.PlayerID]
		if !ok {
			continue
		}
		out = append(out, CreateRequest{
			Position: p.Position,
			PlayerID: seat.PlayerID,
			MatchID:  matchID,
			Starting: false,
		})
	}

	return out, nil
}

func (b *Board) isPlacedAnywhere(playerID int64) bool {
	for _, s := range b.slots {
		if s.PlayerID == playerID {
			return true
		}
	}
	for _, seat := range b.bench {
		if seat.PlayerID == playerID {
			return true
		}
	}
	return false
}

func (b *Board) upsertStarter(s SlotAssignment) {
	entry := starterEntry{
		role:       s.Slot.Role,
		playerID:   s.PlayerID,
		playerName: s.PlayerName,
		slotID:     s.Slot.ID,
	}
	for i := range b.starters {
		if b.starters[i].slotID == s.Slot.ID {
			b.starters[i] = entry
			return
		}
	}
	b.starters = append(b.starters, entry)
}

func (b *Board) dropStarter(slotID int) {
	kept := b.starters[:0]
	for _, s := range b.starters {
		if s.slotID != slotID {
			kept = append(kept, s)
		}
	}
	b.starters = kept
}
