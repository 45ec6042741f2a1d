package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

var sf singleflight.Group

// Utility helpers
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// loadListWithSingleflight coalesces a list load under one key, caches the
// result and returns it. The loader fetches from the primary store.
func loadListWithSingleflight[T any](cache ports.Cache, ctx context.Context, key string, ttl time.Duration, loader func() ([]T, error)) ([]T, error) {
	if cache != nil {
		if v, ok := cacheGet[[]T](cache, ctx, key); ok {
			return *v, nil
		}
	}
	res, err, _ := sf.Do(key, func() (any, error) {
		if cache != nil {
			if v, ok := cacheGet[[]T](cache, ctx, key); ok {
				return *v, nil
			}
		}
		all, err := loader()
		if err != nil {
			return nil, err
		}
		if cache != nil {
			cacheSetSilently(cache, ctx, key, all, ttl)
		}
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	all, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return all, nil
}

// CachingChefRepository decorates a ChefRepository with cache-aside reads.
type CachingChefRepository struct {
	inner ports.ChefRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingChefRepository(inner ports.ChefRepository, cache ports.Cache, ttl time.Duration) ports.ChefRepository {
	return &CachingChefRepository{inner: inner, cache: cache, ttl: ttl}
}

func chefProfileKey(userID uuid.UUID) string { return "chef:user:" + userID.String() }

func (c *CachingChefRepository) Upsert(ctx context.Context, p *chef.Profile) error {
	if err := c.inner.Upsert(ctx, p); err != nil {
		return err
	}
	cacheSetSilently(c.cache, ctx, chefProfileKey(p.UserID), p, c.ttl)
	return nil
}

func (c *CachingChefRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
	if v, ok := cacheGet[chef.Profile](c.cache, ctx, chefProfileKey(userID)); ok {
		return v, nil
	}
	p, err := c.inner.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cacheSetSilently(c.cache, ctx, chefProfileKey(userID), p, c.ttl)
	return p, nil
}

// Search is left uncached: filters are high-cardinality and the board is
// already paginated.
func (c *CachingChefRepository) Search(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
	return c.inner.Search(ctx, filter)
}

// CachingGigRepository decorates a GigRepository with cache-aside reads on
// the gig board. List pages are cached briefly under a filter-derived key
// with singleflight to absorb stampedes on the open-gigs board.
type CachingGigRepository struct {
	inner   ports.GigRepository
	cache   ports.Cache
	ttl     time.Duration
	listTTL time.Duration
}

func NewCachingGigRepository(inner ports.GigRepository, cache ports.Cache, ttl time.Duration) ports.GigRepository {
	return &CachingGigRepository{inner: inner, cache: cache, ttl: ttl, listTTL: 30 * time.Second}
}

func gigKey(id uuid.UUID) string { return "gig:id:" + id.String() }

func gigListKey(f *gig.Filter) string {
	from, to := "", ""
	if f.From != nil {
		from = f.From.UTC().Format(time.RFC3339)
	}
	if f.To != nil {
		to = f.To.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("gigs:list:%s:%s:%s:%s:%s:%d:%d", f.Status, f.Cuisine, f.CompanyID, from, to, f.Limit, f.Offset)
}

func (c *CachingGigRepository) Create(ctx context.Context, g *gig.Gig) error {
	if err := c.inner.Create(ctx, g); err != nil {
		return err
	}
	cacheSetSilently(c.cache, ctx, gigKey(g.ID), g, c.ttl)
	return nil
}

func (c *CachingGigRepository) GetByID(ctx context.Context, id uuid.UUID) (*gig.Gig, error) {
	if v, ok := cacheGet[gig.Gig](c.cache, ctx, gigKey(id)); ok {
		return v, nil
	}
	g, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheSetSilently(c.cache, ctx, gigKey(g.ID), g, c.ttl)
	return g, nil
}

func (c *CachingGigRepository) Update(ctx context.Context, g *gig.Gig) error {
	if err := c.inner.Update(ctx, g); err != nil {
		return err
	}
	cacheSetSilently(c.cache, ctx, gigKey(g.ID), g, c.ttl)
	return nil
}

func (c *CachingGigRepository) List(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error) {
	return loadListWithSingleflight(c.cache, ctx, gigListKey(filter), c.listTTL, func() ([]*gig.Gig, error) {
		return c.inner.List(ctx, filter)
	})
}

// Application operations are pass-through: decisions must always read
// current state.

func (c *CachingGigRepository) CreateApplication(ctx context.Context, a *gig.Application) error {
	return c.inner.CreateApplication(ctx, a)
}

func (c *CachingGigRepository) GetApplication(ctx context.Context, id uuid.UUID) (*gig.Application, error) {
	return c.inner.GetApplication(ctx, id)
}

func (c *CachingGigRepository) GetApplicationByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*gig.Application, error) {
	return c.inner.GetApplicationByGigAndChef(ctx, gigID, chefID)
}

func (c *CachingGigRepository) UpdateApplication(ctx context.Context, a *gig.Application) error {
	return c.inner.UpdateApplication(ctx, a)
}

func (c *CachingGigRepository) ListApplicationsForGig(ctx context.Context, gigID uuid.UUID) ([]*gig.Application, error) {
	return c.inner.ListApplicationsForGig(ctx, gigID)
}

func (c *CachingGigRepository) ListApplicationsForChef(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error) {
	return c.inner.ListApplicationsForChef(ctx, chefID)
}

func (c *CachingGigRepository) DeclinePendingApplications(ctx context.Context, gigID uuid.UUID, keep uuid.UUID) ([]uuid.UUID, error) {
	return c.inner.DeclinePendingApplications(ctx, gigID, keep)
}
