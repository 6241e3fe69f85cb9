package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	allEntriesCacheKey = "catalog:all"
	cacheSize          = 10 * 1024 * 1024
	// the catalog only changes through ReplaceAll/UpsertURLs, which clear the cache
	cacheExpireSeconds = 6 * 60 * 60
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=catalog_test

type entriesStore interface {
	ListAll(ctx context.Context) ([]Entry, error)
	ReplaceAll(ctx context.Context, entries []Entry) error
	UpsertURLs(ctx context.Context, entries []Entry) (int, error)
}

// CachedRepo keeps the whole catalog in a freecache in front of the store.
type CachedRepo struct {
	store entriesStore
	cache *freecache.Cache
}

func NewCachedRepo(store entriesStore) *CachedRepo {
	return &CachedRepo{
		store: store,
		cache: freecache.NewCache(cacheSize),
	}
}

func (c *CachedRepo) ListAll(ctx context.Context) ([]Entry, error) {
	if entriesBytes, err := c.cache.Get([]byte(allEntriesCacheKey)); err == nil {
		var entries []Entry
		if err := json.Unmarshal(entriesBytes, &entries); err != nil {
			log.Errorf("catalog: unmarshal cached entries: %s", err)
		} else {
			log.Tracef("catalog: returning %d cached entries", len(entries))
			return entries, nil
		}
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Errorf("catalog: get cached entries: %s", err)
	}

	entries, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	entriesBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("catalog: marshal entries for cache: %s", err)
		return entries, nil
	}
	if err := c.cache.Set([]byte(allEntriesCacheKey), entriesBytes, cacheExpireSeconds); err != nil {
		log.Errorf("catalog: cache entries: %s", err)
	}

	return entries, nil
}

func (c *CachedRepo) List(ctx context.Context, params ListParams) ([]Entry, error) {
	entries, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(entries, params), nil
}

func (c *CachedRepo) Get(ctx context.Context, name string) (*Entry, error) {
	entries, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i], nil
		}
	}
	return nil, ErrEntryNotFound
}

func (c *CachedRepo) Categories(ctx context.Context) ([]CategoryCount, error) {
	entries, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryCounts(entries), nil
}

func (c *CachedRepo) ReplaceAll(ctx context.Context, entries []Entry) error {
	defer c.cache.Clear()
	return c.store.ReplaceAll(ctx, entries)
}

func (c *CachedRepo) UpsertURLs(ctx context.Context, entries []Entry) (int, error) {
	defer c.cache.Clear()
	return c.store.UpsertURLs(ctx, entries)
}
