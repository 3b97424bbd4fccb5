package domain

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
	"wordguess.dev/pkg/wordguess/internal/adapter"
	m "wordguess.dev/pkg/wordguess/internal/model"
)

// ErrNoCandidates is returned when asked to rank against an empty solution list.
var ErrNoCandidates = errors.New("no candidate solutions")

const (
	// Below this many candidates only the candidates themselves are considered
	// as guesses.
	smallCandidateLimit = 3

	// Progress is only reported for candidate lists larger than this.
	progressThreshold = 1000

	// Scans cheaper than this many feedback computations are not cached.
	cacheMinWork = 1 << 20
)

// Ranker scores every allowed guess against the remaining candidates.
type Ranker interface {
	Rank(ctx context.Context, master, candidates []m.Word) (m.Ranking, error)
	Policy() m.Policy
}

// RankerOption configures a Ranker.
type RankerOption func(*ranker)

// WithThreads sets how many goroutines score guesses in parallel.
func WithThreads(threads int) RankerOption {
	return func(r *ranker) {
		if threads > 0 {
			r.threads = threads
		}
	}
}

// WithProgress registers a progress callback for large scans.
func WithProgress(fn m.ProgressFunc) RankerOption {
	return func(r *ranker) {
		r.progress = fn
	}
}

// WithCache stores and reuses score tables of expensive scans in dir.
func WithCache(cache adapter.RankingCache, dir m.Path) RankerOption {
	return func(r *ranker) {
		r.cache = cache
		r.cacheDir = dir
	}
}

type ranker struct {
	scorer   Scorer
	threads  int
	progress m.ProgressFunc
	cache    adapter.RankingCache
	cacheDir m.Path
}

// NewRanker constructs a Ranker scoring partitions with scorer.
func NewRanker(scorer Scorer, opts ...RankerOption) Ranker {
	r := &ranker{
		scorer:  scorer,
		threads: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *ranker) Policy() m.Policy {
	return r.scorer.Policy()
}

// Rank returns the best guess, the partition of candidates it produces and the
// full score table sorted ascending. Equal scores list candidate guesses
// first, then keep master-list order, and the best guess is always the first
// row of the table.
func (r *ranker) Rank(ctx context.Context, master, candidates []m.Word) (m.Ranking, error) {
	if len(candidates) == 0 {
		return m.Ranking{}, ErrNoCandidates
	}

	if err := ctx.Err(); err != nil {
		return m.Ranking{}, err
	}

	if len(candidates) < smallCandidateLimit {
		master = candidates
	}

	table, err := r.scoreTable(ctx, master, candidates)
	if err != nil {
		return m.Ranking{}, err
	}

	best := table[0].Guess

	return m.Ranking{
		Best:      best,
		Partition: PartitionWords(best, candidates),
		Scores:    table,
	}, nil
}

func (r *ranker) scoreTable(ctx context.Context, master, candidates []m.Word) (m.ScoreTable, error) {
	useCache := r.cache != nil && len(master)*len(candidates) >= cacheMinWork

	var key string

	if useCache {
		key = fingerprint(r.Policy(), master, candidates)

		table, ok, err := r.cache.Load(ctx, r.cacheDir, key)

		switch {
		case err != nil:
			slog.Warn("Failed to load cached ranking, rescanning", "key", key, "error", err)
		case ok && len(table) == len(master):
			slog.Debug("using cached ranking", "key", key, "guesses", len(table))
			return table, nil
		case ok:
			slog.Warn("Ignoring cached ranking with wrong size", "key", key, "cached", len(table), "expected", len(master))
		}
	}

	table, err := r.scan(ctx, master, candidates)
	if err != nil {
		return nil, err
	}

	sortTable(table)

	if useCache {
		if err := r.cache.Save(ctx, r.cacheDir, key, table); err != nil {
			slog.Warn("Failed to cache ranking", "key", key, "error", err)
		}
	}

	return table, nil
}

func (r *ranker) scan(ctx context.Context, master, candidates []m.Word) (m.ScoreTable, error) {
	located := locateAll(candidates)

	isCandidate := make(map[m.Word]struct{}, len(candidates))
	for _, c := range candidates {
		isCandidate[c] = struct{}{}
	}

	var progress m.ProgressFunc
	if len(candidates) > progressThreshold {
		progress = r.progress
	}

	tracker := newProgressTracker(len(master), progress)
	table := make(m.ScoreTable, len(master))

	slog.Debug("scanning guesses", "policy", r.Policy(), "guesses", len(master), "candidates", len(candidates), "threads", r.threads)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.threads)

	chunk := chunkSize(len(master), r.threads)

	for start := 0; start < len(master); start += chunk {
		end := min(start+chunk, len(master))

		group.Go(func() error {
			for i := start; i < end; i++ {
				if err := groupCtx.Err(); err != nil {
					return err
				}

				guess := master[i]
				_, candidate := isCandidate[guess]

				table[i] = m.Score{
					Guess:     guess,
					Value:     r.scorer.Score(countPatterns(guess, located)),
					Candidate: candidate,
				}

				tracker.step()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("rank guesses: %w", err)
	}

	return table, nil
}

// chunkSize splits n guesses into a few chunks per worker so progress stays smooth.
func chunkSize(n, threads int) int {
	const chunksPerThread = 8

	size := n / (threads * chunksPerThread)
	if size < 1 {
		return 1
	}

	return size
}

func sortTable(table m.ScoreTable) {
	slices.SortStableFunc(table, func(a, b m.Score) int {
		if c := cmp.Compare(a.Value, b.Value); c != 0 {
			return c
		}

		switch {
		case a.Candidate && !b.Candidate:
			return -1
		case b.Candidate && !a.Candidate:
			return 1
		default:
			return 0
		}
	})
}

// fingerprint identifies a scan by its inputs.
func fingerprint(policy m.Policy, master, candidates []m.Word) string {
	h := sha256.New()
	h.Write([]byte(policy))
	h.Write([]byte{0})

	for _, w := range master {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}

	h.Write([]byte{0})

	for _, w := range candidates {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// progressTracker reports whole percentages, once each and in order, no
// matter which worker finishes a guess.
type progressTracker struct {
	mu    sync.Mutex
	fn    m.ProgressFunc
	total int
	done  int
	last  int
}

func newProgressTracker(total int, fn m.ProgressFunc) *progressTracker {
	t := &progressTracker{fn: fn, total: total, last: -1}
	if fn != nil && total > 0 {
		t.last = 0
		fn(0)
	}

	return t
}

func (t *progressTracker) step() {
	if t.fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.done++

	percent := t.done * 100 / t.total
	if percent > t.last {
		t.last = percent
		t.fn(percent)
	}
}
