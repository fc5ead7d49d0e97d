package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	sonic "github.com/bytedance/sonic"
	godotenv "github.com/joho/godotenv"
	cli "github.com/urfave/cli/v2"

	"club-console/external/clubapi"
	"club-console/internal/config"
	"club-console/internal/domain/lineup"
	"club-console/internal/domain/pitch"
	"club-console/internal/domain/player"
	"club-console/internal/platform/cache"
	"club-console/internal/platform/logging"
	"club-console/internal/platform/resilience"
	"club-console/internal/resource"
	"club-console/internal/usecase"
)

type app struct {
	cfg    config.Config
	logger *logging.Logger
	client *clubapi.Client
	store  *cache.Store
}

func main() {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logger *logging.Logger
	if cfg.AppEnv == config.EnvDev {
		logger = logging.NewConsole(cfg.LogLevel)
	} else {
		logger = logging.NewJSON(cfg.LogLevel)
	}
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	a := &app{cfg: cfg, logger: logger, store: store}

	cliApp := &cli.App{
		Name:    "club-console",
		Usage:   "Admin console for the club backend",
		Version: cfg.ServiceVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "session token for /admin endpoints",
				EnvVars: []string{"CLUB_API_TOKEN"},
			},
		},
		Before: func(c *cli.Context) error {
			a.client = clubapi.NewClient(clubapi.ClientConfig{
				BaseURL:    cfg.APIBaseURL,
				Token:      c.String("token"),
				Timeout:    cfg.APITimeout,
				MaxRetries: cfg.APIMaxRetries,
				Logger:     logger,
				Cache:      store,
				CircuitBreaker: resilience.CircuitBreakerConfig{
					Enabled:          cfg.APICircuitEnabled,
					FailureThreshold: cfg.APICircuitFailureCount,
					OpenTimeout:      cfg.APICircuitOpenTimeout,
					HalfOpenMaxReq:   cfg.APICircuitHalfOpenReq,
				},
			})
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List entity pages",
				Subcommands: []*cli.Command{
					listCommand(a, "seasons", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListSeasons(ctx, p))
					}),
					listCommand(a, "teams", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListTeams(ctx, p))
					}),
					listCommand(a, "players", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListPlayers(ctx, p))
					}),
					listCommand(a, "matches", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListMatches(ctx, p))
					}),
					listCommand(a, "lineups", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListLineups(ctx, p))
					}),
					listCommand(a, "player-stats", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListPlayerStats(ctx, p))
					}),
					listCommand(a, "team-stats", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListTeamStats(ctx, p))
					}),
					listCommand(a, "player-teams", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListPlayerTeams(ctx, p))
					}),
					listCommand(a, "articles", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListArticles(ctx, p))
					}),
					listCommand(a, "users", func(ctx context.Context, p resource.Params) (resource.Page[any], error) {
						return asAnyPage(a.client.ListUsers(ctx, p))
					}),
				},
			},
			{
				Name:  "formations",
				Usage: "Show the available formation templates",
				Action: func(c *cli.Context) error {
					return a.printFormations()
				},
			},
			{
				Name:  "lineup",
				Usage: "Build and submit match lineups",
				Subcommands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Show the saved lineup for a match",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "match", Usage: "match id", Required: true},
						},
						Action: func(c *cli.Context) error {
							rows, err := a.client.MatchLineups(c.Context, c.Int64("match"))
							if err != nil {
								return err
							}
							return printJSON(rows)
						},
					},
					{
						Name:  "submit",
						Usage: "Assign players to a formation and save the lineup",
						Flags: []cli.Flag{
							&cli.Int64Flag{Name: "match", Usage: "match id"},
							&cli.StringFlag{Name: "formation", Usage: "formation template (3-2-1 or 2-3-1)", Value: string(pitch.Formation321)},
							&cli.StringSliceFlag{Name: "starter", Usage: "starter assignment as slot=player_id, repeatable"},
							&cli.Int64SliceFlag{Name: "sub", Usage: "substitute player id, repeatable"},
							&cli.StringFlag{Name: "file", Usage: "JSON board file; overrides the assignment flags"},
						},
						Action: func(c *cli.Context) error {
							return a.submitLineup(c)
						},
					},
				},
			},
		},
	}

	return cliApp.RunContext(ctx, args)
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "0-based page index", Value: -1},
		&cli.IntFlag{Name: "page-size", Usage: "rows per page", Value: -1},
		&cli.StringFlag{Name: "sort", Usage: "sort field"},
		&cli.StringFlag{Name: "order", Usage: "asc or desc"},
	}
}

func listCommand(a *app, entity string, fetch resource.FetchFunc[any]) *cli.Command {
	return &cli.Command{
		Name:  entity,
		Usage: "List " + entity,
		Flags: listFlags(),
		Action: func(c *cli.Context) error {
			params := paramsFromFlags(c, resource.DefaultsFor(entity))
			return a.runList(c.Context, entity, fetch, params)
		},
	}
}

// paramsFromFlags overlays explicit flags on the entity's defaults.
func paramsFromFlags(c *cli.Context, defaults resource.Params) resource.Params {
	params := defaults
	if c.Int("page") >= 0 {
		params.Page = c.Int("page")
	}
	if c.Int("page-size") >= 1 {
		params.PageSize = c.Int("page-size")
	}
	if sort := strings.TrimSpace(c.String("sort")); sort != "" {
		params.Sort = sort
	}
	switch strings.ToLower(strings.TrimSpace(c.String("order"))) {
	case "asc":
		params.Order = resource.OrderAsc
	case "desc":
		params.Order = resource.OrderDesc
	}
	return params
}

// runList drives one page load through the resource coordinator, so the CLI
// exercises the same fetch path as the screens: caching, dedup, and error
// normalization included.
func (a *app) runList(ctx context.Context, entity string, fetch resource.FetchFunc[any], params resource.Params) error {
	opts := []resource.Option[any]{resource.WithLogger[any](a.logger)}
	if a.store != nil {
		opts = append(opts, resource.WithCache[any](a.store, entity))
	}

	res := resource.New(fetch, params, opts...)
	done := make(chan resource.State[any], 1)
	res.Subscribe(func(s resource.State[any]) {
		if s.Loading {
			return
		}
		select {
		case done <- s:
		default:
		}
	})
	res.Refresh(ctx)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case state := <-done:
		if state.Err != nil {
			return state.Err
		}
		return printJSON(map[string]any{
			"items":       state.Items,
			"total_count": state.TotalCount,
			"page":        state.Params.Page,
			"page_size":   state.Params.PageSize,
		})
	}
}

func (a *app) printFormations() error {
	out := make([]map[string]any, 0, 2)
	for _, f := range pitch.Formations() {
		slots, err := pitch.Slots(f)
		if err != nil {
			return err
		}
		rows := make([]map[string]any, 0, len(slots))
		for _, s := range slots {
			rows = append(rows, map[string]any{
				"slot": s.ID,
				"role": s.Role,
				"name": pitch.DisplayNames[s.Role],
				"x":    s.Coord.X,
				"y":    s.Coord.Y,
			})
		}
		out = append(out, map[string]any{"formation": f, "slots": rows})
	}
	return printJSON(out)
}

// starterRef pairs a formation slot with the player assigned to it.
type starterRef struct {
	Slot     int   `json:"slot"`
	PlayerID int64 `json:"player_id"`
}

// boardFile is the on-disk form of a prepared lineup.
type boardFile struct {
	Formation string       `json:"formation"`
	MatchID   int64        `json:"match_id"`
	Starters  []starterRef `json:"starters"`
	Subs      []int64      `json:"subs"`
}

func boardInputFromFlags(c *cli.Context) (boardFile, error) {
	if path := strings.TrimSpace(c.String("file")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return boardFile{}, fmt.Errorf("read board file: %w", err)
		}
		var in boardFile
		if err := sonic.Unmarshal(raw, &in); err != nil {
			return boardFile{}, fmt.Errorf("parse board file: %w", err)
		}
		if in.Formation == "" {
			in.Formation = c.String("formation")
		}
		if in.MatchID == 0 {
			in.MatchID = c.Int64("match")
		}
		return in, nil
	}

	in := boardFile{
		Formation: c.String("formation"),
		MatchID:   c.Int64("match"),
		Subs:      c.Int64Slice("sub"),
	}
	for _, raw := range c.StringSlice("starter") {
		slotID, playerID, err := parseStarter(raw)
		if err != nil {
			return boardFile{}, err
		}
		in.Starters = append(in.Starters, starterRef{Slot: slotID, PlayerID: playerID})
	}
	return in, nil
}

func (a *app) submitLineup(c *cli.Context) error {
	ctx := c.Context

	in, err := boardInputFromFlags(c)
	if err != nil {
		return err
	}
	matchID := in.MatchID
	if matchID <= 0 {
		return fmt.Errorf("a match id is required")
	}

	loader := usecase.NewRosterLoader(a.client, a.logger)
	data, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int64]player.Short, len(data.Players))
	for _, p := range data.Players {
		byID[p.ID] = p
	}
	matchOK := false
	for _, m := range data.Matches {
		if m.ID == matchID {
			matchOK = true
			break
		}
	}
	if !matchOK {
		return fmt.Errorf("match %d is not open for a lineup", matchID)
	}

	board := lineup.NewBoard()
	board.SetRoster(data.Players)
	if err := board.SetFormation(pitch.Formation(in.Formation)); err != nil {
		return err
	}
	board.SetMatch(matchID)

	for _, starter := range in.Starters {
		p, ok := byID[starter.PlayerID]
		if !ok {
			return fmt.Errorf("player %d is not in the roster", starter.PlayerID)
		}
		if !board.Assign(starter.Slot, p) {
			return fmt.Errorf("cannot assign player %d to slot %d: slot unknown or player already placed", starter.PlayerID, starter.Slot)
		}
	}
	for i, playerID := range in.Subs {
		p, ok := byID[playerID]
		if !ok {
			return fmt.Errorf("substitute %d is not in the roster", playerID)
		}
		if !board.Assign(-(i + 1), p) {
			return fmt.Errorf("cannot seat substitute %d: bench full or player already placed", playerID)
		}
	}

	if !board.CanSave() {
		return fmt.Errorf("lineup incomplete: %d of %d starters assigned", board.AssignedStarters(), pitch.StartingSlots)
	}

	saver := usecase.NewLineupSaver(a.client, a.cfg.SaveWorkers, a.logger)
	result, err := saver.Save(ctx, board, matchID)
	if err != nil && !stderrors.Is(err, usecase.ErrPartialSave) {
		return err
	}

	summary := map[string]any{
		"match_id":  matchID,
		"submitted": result.Submitted,
		"created":   len(result.Created),
		"failed":    len(result.Failed),
	}
	if len(result.Failed) > 0 {
		rows := make([]map[string]any, 0, len(result.Failed))
		for _, f := range result.Failed {
			rows = append(rows, map[string]any{
				"index":     f.Index,
				"player_id": f.Record.PlayerID,
				"position":  f.Record.Position,
				"error":     f.Err.Error(),
			})
		}
		summary["failures"] = rows
	}
	if printErr := printJSON(summary); printErr != nil {
		return printErr
	}
	return err
}

func parseStarter(raw string) (int, int64, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "=", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid starter %q: expected slot=player_id", raw)
	}
	slotID, err := strconv.Atoi(parts[0])
	if err != nil || slotID < 1 {
		return 0, 0, fmt.Errorf("invalid starter slot in %q", raw)
	}
	playerID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || playerID < 1 {
		return 0, 0, fmt.Errorf("invalid starter player id in %q", raw)
	}
	return slotID, playerID, nil
}

func asAnyPage[T any](page resource.Page[T], err error) (resource.Page[any], error) {
	if err != nil {
		return resource.Page[any]{}, err
	}
	items := make([]any, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, item)
	}
	return resource.Page[any]{Items: items, TotalCount: page.TotalCount}, nil
}

func printJSON(v any) error {
	out, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
