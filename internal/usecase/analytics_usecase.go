package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"placement-intel/internal/domain/insight"
	"placement-intel/internal/domain/matrix"
	"placement-intel/internal/repository"
)

// MatrixResult is the full skill matrix plus per-skill roster stats, ready
// for the analytics page.
type MatrixResult struct {
	Matrix matrix.Matrix       `json:"matrix"`
	Stats  []insight.SkillStat `json:"stats"`
}

type AnalyticsUsecase interface {
	Matrix(ctx context.Context) (MatrixResult, error)
	Insights(ctx context.Context, companies []string) (insight.Insights, error)
	Refresh(ctx context.Context) error
	MarkProcessed(ctx context.Context, id int64) error
}

type Analytics struct {
	catalog repository.SkillCatalogRepository
	staging repository.ProficiencyStagingRepository
	cache   SnapshotCache
	logger  *log.Logger
}

func NewAnalyticsUsecase(
	catalog repository.SkillCatalogRepository,
	staging repository.ProficiencyStagingRepository,
	cache SnapshotCache,
	logger *log.Logger,
) *Analytics {
	return &Analytics{catalog: catalog, staging: staging, cache: cache, logger: logger}
}

// snapshot is one request's immutable view of catalog plus staging rows.
// Normalization and aggregation are pure over it, so a snapshot superseded
// by a newer fetch is simply discarded, never repaired.
type snapshot struct {
	Skills []matrix.SkillDefinition `json:"skills"`
	Rows   []matrix.CompanyRow      `json:"rows"`
}

func (u *Analytics) Matrix(ctx context.Context) (MatrixResult, error) {
	snap, err := u.loadSnapshot(ctx)
	if err != nil {
		return MatrixResult{}, err
	}

	return MatrixResult{
		Matrix: matrix.Build(snap.Skills, snap.Rows),
		Stats:  insight.Stats(snap.Skills, snap.Rows),
	}, nil
}

// Insights computes the three strategic sets for a roster selected by
// company name. A roster that resolves to fewer than two companies yields
// empty sets; only an oversized selection is an input error.
func (u *Analytics) Insights(ctx context.Context, companies []string) (insight.Insights, error) {
	names := normalizeRoster(companies)
	if len(names) > insight.MaxRoster {
		return insight.Insights{}, ErrInvalidInput
	}

	cacheKey := InsightsCacheKey(companies)
	if u.cache != nil {
		var cached insight.Insights
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Analytics] Insights cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	snap, err := u.loadSnapshot(ctx)
	if err != nil {
		return insight.Insights{}, err
	}

	roster := selectRoster(snap.Rows, names)
	result := insight.Analyze(snap.Skills, roster)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result, 0)
	}
	return result, nil
}

// Refresh is the explicit invalidation trigger: the next fetch reloads from
// the datastore instead of the cached snapshot.
func (u *Analytics) Refresh(ctx context.Context) error {
	if u == nil || u.cache == nil {
		return nil
	}
	if err := u.cache.InvalidateAnalytics(ctx); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Analytics] Cache invalidation failed: %v", err)
		}
		return ErrInternal
	}
	return nil
}

func (u *Analytics) MarkProcessed(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := u.staging.MarkProcessed(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRowNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	// The staged row changed shape; cached snapshots are stale now.
	return u.Refresh(ctx)
}

func (u *Analytics) loadSnapshot(ctx context.Context) (snapshot, error) {
	if u.cache != nil {
		var cached snapshot
		hit, err := u.cache.GetJSON(ctx, snapshotCacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Analytics] Snapshot cache HIT")
			}
			return cached, nil
		}
	}

	// Catalog and staging reads are independent; dispatch both and join.
	type catalogFetch struct {
		skills []matrix.SkillDefinition
		err    error
	}
	type rowsFetch struct {
		rows []matrix.CompanyRow
		err  error
	}

	catCh := make(chan catalogFetch, 1)
	rowsCh := make(chan rowsFetch, 1)
	go func() {
		skills, err := u.catalog.GetAll(ctx)
		catCh <- catalogFetch{skills: skills, err: err}
	}()
	go func() {
		rows, err := u.staging.GetAll(ctx)
		rowsCh <- rowsFetch{rows: rows, err: err}
	}()

	cat := <-catCh
	rws := <-rowsCh
	if cat.err != nil {
		if u.logger != nil {
			u.logger.Printf("[Analytics] Catalog fetch failed: %v", cat.err)
		}
		return snapshot{}, ErrInternal
	}
	if rws.err != nil {
		if u.logger != nil {
			u.logger.Printf("[Analytics] Staging fetch failed: %v", rws.err)
		}
		return snapshot{}, ErrInternal
	}

	snap := snapshot{Skills: cat.skills, Rows: rws.rows}
	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, snapshotCacheKey, snap, 0)
	}
	return snap, nil
}

func normalizeRoster(companies []string) []string {
	out := make([]string, 0, len(companies))
	seen := map[string]struct{}{}
	for _, c := range companies {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func selectRoster(rows []matrix.CompanyRow, names []string) []matrix.CompanyRow {
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = struct{}{}
	}

	out := make([]matrix.CompanyRow, 0, len(names))
	for _, row := range rows {
		if _, ok := wanted[strings.ToLower(strings.TrimSpace(row.CompanyName))]; ok {
			out = append(out, row)
		}
	}
	return out
}
