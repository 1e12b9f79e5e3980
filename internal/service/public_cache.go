package service

import (
	"context"
	"fmt"

	"psisite/internal/cache"
)

// CacheGenerationKey counts content and config writes. Public cache entries
// are stored under the generation they were read in, so a list loaded before
// a write can never be served after it.
const CacheGenerationKey = "generation"

// publicCache reads and fills generation-scoped entries.
type publicCache struct {
	client *cache.Client
}

// key returns the entry name for base in the current generation. ok is false
// when redis is unavailable and the caller should go to the database.
func (p publicCache) key(ctx context.Context, base string) (string, bool) {
	gen, ok := p.client.Version(ctx, CacheGenerationKey)
	if !ok {
		return "", false
	}
	return generationKey(base, gen), true
}

func (p publicCache) get(ctx context.Context, key string, dst any) bool {
	return key != "" && p.client.GetJSON(ctx, key, dst)
}

func (p publicCache) set(ctx context.Context, key string, value any) {
	if key != "" {
		p.client.SetJSON(ctx, key, value, publicCacheTTL)
	}
}

// invalidate starts a new generation and drops the previous generation's
// entries for bases.
func (p publicCache) invalidate(ctx context.Context, bases ...string) {
	gen, ok := p.client.Bump(ctx, CacheGenerationKey)
	if !ok || gen < 1 {
		return
	}
	keys := make([]string, len(bases))
	for i, base := range bases {
		keys[i] = generationKey(base, gen-1)
	}
	_ = p.client.Delete(ctx, keys...)
}

func generationKey(base string, gen int64) string {
	return fmt.Sprintf("%s:g%d", base, gen)
}
