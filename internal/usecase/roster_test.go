package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"club-console/internal/domain/match"
	"club-console/internal/domain/player"
	"club-console/internal/platform/logging"
	"club-console/internal/resource"
)

type fakeRosterAPI struct {
	players    resource.Page[player.Player]
	matches    resource.Page[match.Match]
	playersErr error
	matchesErr error

	playerParams resource.Params
	matchParams  resource.Params
}

func (f *fakeRosterAPI) ListPlayers(_ context.Context, params resource.Params) (resource.Page[player.Player], error) {
	f.playerParams = params
	return f.players, f.playersErr
}

func (f *fakeRosterAPI) ListMatches(_ context.Context, params resource.Params) (resource.Page[match.Match], error) {
	f.matchParams = params
	return f.matches, f.matchesErr
}

func TestRosterLoader_LoadsSquadAndOpenMatches(t *testing.T) {
	api := &fakeRosterAPI{
		players: resource.Page[player.Player]{
			Items: []player.Player{
				{ID: 1, NickName: "Pedri", Position: player.PositionMedioCentro},
				{ID: 2, NickName: "Gavi", Position: player.PositionMedioCentro},
			},
			TotalCount: 2,
		},
		matches: resource.Page[match.Match]{
			Items: []match.Match{
				{ID: 10, Status: match.StatusScheduled},
				{ID: 11, Status: match.StatusInProgress},
				{ID: 12, Status: match.StatusFinished},
				{ID: 13, Status: match.StatusCancelled},
			},
			TotalCount: 4,
		},
	}

	loader := NewRosterLoader(api, logging.NewNop())
	data, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Players, 2)
	require.Equal(t, "Pedri", data.Players[0].NickName)

	// Finished and cancelled matches cannot take a lineup.
	require.Len(t, data.Matches, 2)
	require.Equal(t, int64(10), data.Matches[0].ID)
	require.Equal(t, int64(11), data.Matches[1].ID)

	require.Equal(t, resource.Params{Page: 0, PageSize: 30, Sort: "id", Order: resource.OrderAsc}, api.playerParams)
	require.Equal(t, resource.Params{Page: 0, PageSize: 20, Sort: "kickoff", Order: resource.OrderDesc}, api.matchParams)
}

func TestRosterLoader_PartialFailureReturnsWhatLoaded(t *testing.T) {
	api := &fakeRosterAPI{
		players: resource.Page[player.Player]{
			Items:      []player.Player{{ID: 1, NickName: "Pedri"}},
			TotalCount: 1,
		},
		matchesErr: errors.New("matches endpoint down"),
	}

	loader := NewRosterLoader(api, logging.NewNop())
	data, err := loader.Load(context.Background())

	require.ErrorIs(t, err, ErrDependencyUnavailable)
	require.Len(t, data.Players, 1)
	require.Empty(t, data.Matches)
}
