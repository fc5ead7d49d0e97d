package lineup

import (
	"errors"
	"testing"

	"club-console/internal/domain/pitch"
	"club-console/internal/domain/player"
)

func testRoster() []player.Short {
	return []player.Short{
		{ID: 1, NickName: "Ter Stegen", Position: player.PositionPortero},
		{ID: 2, NickName: "Araujo", Position: player.PositionCentralIzq},
		{ID: 3, NickName: "Cubarsi", Position: player.PositionCentralMedio},
		{ID: 4, NickName: "Kounde", Position: player.PositionCentralDer},
		{ID: 5, NickName: "Balde", Position: player.PositionLateralIzq},
		{ID: 6, NickName: "Pedri", Position: player.PositionMedioCentro},
		{ID: 7, NickName: "Lamine", Position: player.PositionLateralDer},
		{ID: 8, NickName: "Lewandowski", Position: player.PositionDelantero},
		{ID: 9, NickName: "Gavi", Position: player.PositionMedioCentro},
		{ID: 10, NickName: "Ferran", Position: player.PositionDelantero},
	}
}

func readyBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	b.SetRoster(testRoster())
	if err := b.SetFormation(pitch.Formation321); err != nil {
		t.Fatalf("set formation: %v", err)
	}
	return b
}

func TestBoard_AssignFillsSlotAndStarter(t *testing.T) {
	b := readyBoard(t)

	if ok := b.Assign(1, testRoster()[0]); !ok {
		t.Fatal("expected assignment to slot 1 to succeed")
	}

	slots := b.Slots()
	if slots[0].PlayerID != 1 || slots[0].PlayerName != "Ter Stegen" {
		t.Fatalf("slot 1 not occupied as expected: %+v", slots[0])
	}
	if got := b.AssignedStarters(); got != 1 {
		t.Fatalf("expected 1 assigned starter, got %d", got)
	}
}

func TestBoard_AssignRejectsPlayerAlreadyPlaced(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	if ok := b.Assign(1, roster[0]); !ok {
		t.Fatal("first assignment should succeed")
	}
	if ok := b.Assign(2, roster[0]); ok {
		t.Fatal("assigning the same player to a second slot must be rejected")
	}
	if ok := b.Assign(-1, roster[0]); ok {
		t.Fatal("assigning a placed starter to the bench must be rejected")
	}

	// Rejection leaves everything untouched.
	slots := b.Slots()
	if slots[1].Occupied() {
		t.Fatalf("slot 2 should stay empty, got %+v", slots[1])
	}
	if b.Bench()[0].Occupied() {
		t.Fatal("bench seat 1 should stay empty")
	}
}

func TestBoard_AssignReplacesSlotOccupant(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	b.Assign(7, roster[7])
	if ok := b.Assign(7, roster[9]); !ok {
		t.Fatal("replacing a slot occupant with a free player should succeed")
	}

	slots := b.Slots()
	if slots[6].PlayerID != 10 {
		t.Fatalf("expected slot 7 occupied by player 10, got %d", slots[6].PlayerID)
	}
	if got := b.AssignedStarters(); got != 1 {
		t.Fatalf("expected a single starter after replacement, got %d", got)
	}
}

func TestBoard_AssignInvalidRefs(t *testing.T) {
	b := readyBoard(t)
	p := testRoster()[0]

	if b.Assign(0, p) {
		t.Fatal("slot ref 0 must be rejected")
	}
	if b.Assign(99, p) {
		t.Fatal("unknown slot id must be rejected")
	}
	if b.Assign(-(pitch.BenchSize + 1), p) {
		t.Fatal("bench ref past the last seat must be rejected")
	}
	if b.Assign(1, player.Short{ID: 0, NickName: "ghost"}) {
		t.Fatal("player without id must be rejected")
	}
}

func TestBoard_BenchSeatsUseNegativeRefs(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	for i := 0; i < 3; i++ {
		if ok := b.Assign(-(i + 1), roster[i]); !ok {
			t.Fatalf("bench seat %d assignment failed", i+1)
		}
	}

	bench := b.Bench()
	for i := 0; i < 3; i++ {
		if bench[i].PlayerID != roster[i].ID {
			t.Fatalf("bench seat %d holds player %d, want %d", i+1, bench[i].PlayerID, roster[i].ID)
		}
	}
	if bench[3].Occupied() {
		t.Fatal("bench seat 4 should stay empty")
	}
}

func TestBoard_SetFormationClearsStartersKeepsBench(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	b.Assign(1, roster[0])
	b.Assign(2, roster[1])
	b.Assign(-1, roster[8])

	if err := b.SetFormation(pitch.Formation231); err != nil {
		t.Fatalf("switch formation: %v", err)
	}

	if got := b.AssignedStarters(); got != 0 {
		t.Fatalf("starters must be dropped on formation change, got %d", got)
	}
	for _, s := range b.Slots() {
		if s.Occupied() {
			t.Fatalf("slot %d still occupied after formation change", s.Slot.ID)
		}
	}
	if bench := b.Bench(); bench[0].PlayerID != 9 {
		t.Fatalf("bench must survive formation change, seat 1 holds %d", bench[0].PlayerID)
	}
}

func TestBoard_RemoveClearsOnlyTargetSlot(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	b.Assign(1, roster[0])
	b.Assign(2, roster[1])
	b.Assign(-1, roster[8])

	b.Remove(1)
	slots := b.Slots()
	if slots[0].Occupied() {
		t.Fatal("slot 1 should be empty after remove")
	}
	if !slots[1].Occupied() {
		t.Fatal("slot 2 must be untouched")
	}

	b.Remove(-1)
	if b.Bench()[0].Occupied() {
		t.Fatal("bench seat 1 should be empty after remove")
	}

	// Removing the player frees them for reassignment.
	if ok := b.Assign(3, roster[0]); !ok {
		t.Fatal("removed player should be assignable again")
	}
}

func TestBoard_PhaseProgression(t *testing.T) {
	b := NewBoard()
	if got := b.Phase(); got != PhaseIdle {
		t.Fatalf("fresh board phase = %s, want %s", got, PhaseIdle)
	}

	b.SetRoster(testRoster())
	if err := b.SetFormation(pitch.Formation321); err != nil {
		t.Fatalf("set formation: %v", err)
	}
	if got := b.Phase(); got != PhaseFormationSelected {
		t.Fatalf("phase = %s, want %s", got, PhaseFormationSelected)
	}

	roster := testRoster()
	b.Assign(1, roster[0])
	if got := b.Phase(); got != PhasePartiallyAssigned {
		t.Fatalf("phase = %s, want %s", got, PhasePartiallyAssigned)
	}

	for i := 2; i <= pitch.StartingSlots; i++ {
		b.Assign(i, roster[i-1])
	}
	if got := b.Phase(); got != PhaseFullyAssigned {
		t.Fatalf("phase = %s, want %s", got, PhaseFullyAssigned)
	}
}

func TestBoard_CanSaveNeedsFullStartersAndMatch(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	for i := 1; i <= pitch.StartingSlots; i++ {
		b.Assign(i, roster[i-1])
	}
	if b.CanSave() {
		t.Fatal("board without a match must not be savable")
	}

	b.SetMatch(42)
	if !b.CanSave() {
		t.Fatal("full board with a match must be savable")
	}

	b.Remove(3)
	if b.CanSave() {
		t.Fatal("board with a hole must not be savable")
	}
}

func TestBoard_BuildSaveRequest(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	for i := 1; i <= pitch.StartingSlots; i++ {
		b.Assign(i, roster[i-1])
	}
	b.Assign(-1, roster[7]) // Lewandowski on the bench
	b.Assign(-3, roster[8]) // Gavi, seat 3; the gap at seat 2 is skipped
	b.SetMatch(42)

	records, err := b.BuildSaveRequest(42)
	if err != nil {
		t.Fatalf("build save request: %v", err)
	}
	if len(records) != pitch.StartingSlots+2 {
		t.Fatalf("expected %d records, got %d", pitch.StartingSlots+2, len(records))
	}

	slots, _ := pitch.Slots(pitch.Formation321)
	for i := 0; i < pitch.StartingSlots; i++ {
		rec := records[i]
		if !rec.Starting {
			t.Fatalf("record %d should be a starter", i)
		}
		if rec.Position != slots[i].Role {
			t.Fatalf("record %d position = %s, want slot role %s", i, rec.Position, slots[i].Role)
		}
		if rec.MatchID != 42 {
			t.Fatalf("record %d match id = %d", i, rec.MatchID)
		}
	}

	// Substitutes come after the starters, with positions from the roster.
	sub := records[pitch.StartingSlots]
	if sub.Starting || sub.PlayerID != 8 || sub.Position != player.PositionDelantero {
		t.Fatalf("first substitute record unexpected: %+v", sub)
	}
	sub = records[pitch.StartingSlots+1]
	if sub.Starting || sub.PlayerID != 9 || sub.Position != player.PositionMedioCentro {
		t.Fatalf("second substitute record unexpected: %+v", sub)
	}
}

func TestBoard_StrikerSlotEndToEnd(t *testing.T) {
	roster := []player.Short{
		{ID: 9, NickName: "Griezmann", Position: player.PositionDelantero},
		{ID: 21, NickName: "Oblak", Position: player.PositionPortero},
		{ID: 22, NickName: "Gimenez", Position: player.PositionCentralIzq},
		{ID: 23, NickName: "Savic", Position: player.PositionCentralMedio},
		{ID: 24, NickName: "Hermoso", Position: player.PositionCentralDer},
		{ID: 25, NickName: "Llorente", Position: player.PositionLateralIzq},
		{ID: 26, NickName: "Koke", Position: player.PositionLateralDer},
	}

	b := NewBoard()
	b.SetRoster(roster)
	if err := b.SetFormation(pitch.Formation321); err != nil {
		t.Fatalf("set formation: %v", err)
	}
	b.SetMatch(42)

	if !b.Assign(7, roster[0]) {
		t.Fatal("striker slot assignment failed")
	}
	for i := 1; i < len(roster); i++ {
		if !b.Assign(i, roster[i]) {
			t.Fatalf("slot %d assignment failed", i)
		}
	}

	if !b.CanSave() {
		t.Fatal("board with 7 starters and a match must be savable")
	}
	records, err := b.BuildSaveRequest(42)
	if err != nil {
		t.Fatalf("build save request: %v", err)
	}
	if len(records) != pitch.StartingSlots {
		t.Fatalf("expected %d records, got %d", pitch.StartingSlots, len(records))
	}

	var striker *CreateRequest
	for i := range records {
		if records[i].PlayerID == 9 {
			striker = &records[i]
			break
		}
	}
	if striker == nil {
		t.Fatal("no record for the striker")
	}
	want := CreateRequest{Position: player.PositionDelantero, PlayerID: 9, MatchID: 42, Starting: true}
	if *striker != want {
		t.Fatalf("striker record = %+v, want %+v", *striker, want)
	}
}

func TestBoard_BuildSaveRequestSkipsSubMissingFromRoster(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	for i := 1; i <= pitch.StartingSlots; i++ {
		b.Assign(i, roster[i-1])
	}
	b.Assign(-1, player.Short{ID: 999, NickName: "trialist"})
	b.SetMatch(7)

	records, err := b.BuildSaveRequest(7)
	if err != nil {
		t.Fatalf("build save request: %v", err)
	}
	if len(records) != pitch.StartingSlots {
		t.Fatalf("sub without roster record must be skipped, got %d records", len(records))
	}
}

func TestBoard_BuildSaveRequestNotReady(t *testing.T) {
	b := readyBoard(t)
	b.SetMatch(7)

	if _, err := b.BuildSaveRequest(7); !errors.Is(err, ErrBoardNotReady) {
		t.Fatalf("expected ErrBoardNotReady, got %v", err)
	}
}

func TestBoard_BuildSaveRequestLeavesBoardUntouched(t *testing.T) {
	b := readyBoard(t)
	roster := testRoster()

	for i := 1; i <= pitch.StartingSlots; i++ {
		b.Assign(i, roster[i-1])
	}
	b.SetMatch(7)

	if _, err := b.BuildSaveRequest(7); err != nil {
		t.Fatalf("build save request: %v", err)
	}

	if got := b.AssignedStarters(); got != pitch.StartingSlots {
		t.Fatalf("board mutated by build: %d starters left", got)
	}
	if !b.CanSave() {
		t.Fatal("board must remain savable after build")
	}
}
