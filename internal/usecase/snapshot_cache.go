package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateAnalytics(ctx context.Context) error
}

const snapshotCacheKey = "analytics:snapshot:all"

// InsightsCacheKey derives a stable key for one roster selection. Names are
// normalized and sorted so the same roster always hits the same entry no
// matter the selection order.
func InsightsCacheKey(companies []string) string {
	normalized := make([]string, 0, len(companies))
	for _, c := range companies {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		normalized = append(normalized, strings.Join(strings.Fields(c), " "))
	}
	sort.Strings(normalized)

	b, _ := json.Marshal(normalized)
	sum := sha256.Sum256(b)
	return "analytics:insights:" + hex.EncodeToString(sum[:])
}
