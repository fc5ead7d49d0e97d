package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc"

	"club-console/internal/domain/match"
	"club-console/internal/domain/player"
	"club-console/internal/platform/logging"
	"club-console/internal/resource"
)

const (
	rosterPlayerPageSize = 30
	rosterMatchPageSize  = 20
)

// RosterAPI is the slice of the backend client the builder screen needs.
type RosterAPI interface {
	ListPlayers(ctx context.Context, params resource.Params) (resource.Page[player.Player], error)
	ListMatches(ctx context.Context, params resource.Params) (resource.Page[match.Match], error)
}

// BuilderData is everything the lineup builder needs up front: the candidate
// squad and the matches still open for a lineup.
type BuilderData struct {
	Players []player.Short
	Matches []match.Match
}

// RosterLoader fetches the squad and match options concurrently. A failed
// half comes back empty rather than failing the screen outright.
type RosterLoader struct {
	api    RosterAPI
	logger *logging.Logger
}

func NewRosterLoader(api RosterAPI, logger *logging.Logger) *RosterLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterLoader{api: api, logger: logger}
}

func (l *RosterLoader) Load(ctx context.Context) (BuilderData, error) {
	var (
		players    resource.Page[player.Player]
		matches    resource.Page[match.Match]
		playersErr error
		matchesErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		players, playersErr = l.api.ListPlayers(ctx, resource.Params{
			Page:     0,
			PageSize: rosterPlayerPageSize,
			Sort:     "id",
			Order:    resource.OrderAsc,
		})
	})
	wg.Go(func() {
		matches, matchesErr = l.api.ListMatches(ctx, resource.Params{
			Page:     0,
			PageSize: rosterMatchPageSize,
			Sort:     "kickoff",
			Order:    resource.OrderDesc,
		})
	})
	wg.Wait()

	out := BuilderData{
		Players: make([]player.Short, 0, len(players.Items)),
		Matches: make([]match.Match, 0, len(matches.Items)),
	}
	for _, p := range players.Items {
		out.Players = append(out.Players, p.Short())
	}
	for _, m := range matches.Items {
		if m.Status.AcceptsLineup() {
			out.Matches = append(out.Matches, m)
		}
	}

	if playersErr != nil || matchesErr != nil {
		combined := crerr.CombineErrors(playersErr, matchesErr)
		l.logger.WarnContext(ctx, "builder data partially loaded",
			"players", len(out.Players),
			"matches", len(out.Matches),
			"error", combined,
		)
		return out, fmt.Errorf("%w: %v", ErrDependencyUnavailable, combined)
	}

	return out, nil
}
