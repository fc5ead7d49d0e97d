package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	validator "github.com/go-playground/validator/v10"
	ants "github.com/panjf2000/ants/v2"

	"club-console/internal/domain/lineup"
	"club-console/internal/platform/logging"
)

// ErrPartialSave marks a batch where some records were created and others
// rejected. The result carries which ones, so the admin can retry the rest.
var ErrPartialSave = errors.New("lineup save incomplete")

// LineupAPI is the slice of the backend client the saver needs.
type LineupAPI interface {
	CreateLineup(ctx context.Context, req lineup.CreateRequest) (lineup.Lineup, error)
}

// RecordError pins a failure to the record that caused it.
type RecordError struct {
	Index  int
	Record lineup.CreateRequest
	Err    error
}

// BatchResult reports what happened to each record of a save batch. The
// backend has no batch endpoint, so partial outcomes are possible and no
// compensation is attempted for records already created.
type BatchResult struct {
	Submitted int
	Created   []lineup.Lineup
	Failed    []RecordError
}

// LineupSaver flattens a board into creation records and submits them
// through a bounded worker pool. The board itself is never mutated; on
// failure the admin still has every assignment on screen.
type LineupSaver struct {
	api      LineupAPI
	workers  int
	logger   *logging.Logger
	validate *validator.Validate
}

func NewLineupSaver(api LineupAPI, workers int, logger *logging.Logger) *LineupSaver {
	if workers < 1 {
		workers = 4
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupSaver{
		api:      api,
		workers:  workers,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *LineupSaver) Save(ctx context.Context, board *lineup.Board, matchID int64) (BatchResult, error) {
	records, err := board.BuildSaveRequest(matchID)
	if err != nil {
		return BatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Reject the whole batch before anything hits the wire; a half-valid
	// batch would otherwise leave orphan records behind.
	for i, record := range records {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			return BatchResult{}, fmt.Errorf("%w: record %d: %v", ErrInvalidInput, i, err)
		}
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return BatchResult{}, fmt.Errorf("create save pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		created = make([]lineup.Lineup, 0, len(records))
		failed  []RecordError
	)
	for i, record := range records {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			row, callErr := s.api.CreateLineup(ctx, record)
			mu.Lock()
			defer mu.Unlock()
			if callErr != nil {
				failed = append(failed, RecordError{Index: i, Record: record, Err: callErr})
				return
			}
			created = append(created, row)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			failed = append(failed, RecordError{Index: i, Record: record, Err: submitErr})
			mu.Unlock()
		}
	}
	wg.Wait()

	sort.Slice(failed, func(i, j int) bool { return failed[i].Index < failed[j].Index })

	result := BatchResult{
		Submitted: len(records),
		Created:   created,
		Failed:    failed,
	}
	if len(failed) > 0 {
		s.logger.WarnContext(ctx, "lineup save finished with failures",
			"match_id", matchID,
			"submitted", result.Submitted,
			"failed", len(failed),
		)
		return result, fmt.Errorf("%w: %d of %d records failed", ErrPartialSave, len(failed), len(records))
	}

	s.logger.InfoContext(ctx, "lineup saved", "match_id", matchID, "records", result.Submitted)
	return result, nil
}
