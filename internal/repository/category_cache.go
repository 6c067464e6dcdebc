package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bmi-tracker/internal/models"
	"github.com/redis/go-redis/v9"
)

const defaultCategoryCacheTTL = 10 * time.Minute

// CachedCategoryRepository decorates a CategoryRepository with Redis
// caching for the read paths. The category table is seeded once and
// read on every classification, so List is the hot path. All cache
// operations are best effort; a nil Redis client bypasses the cache.
type CachedCategoryRepository struct {
	inner     *CategoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachedCategoryRepository decorates a CategoryRepository with Redis caching.
// If ttl is 0, it defaults to 10 minutes. If namespace is empty, it uses "bmi_categories".
func NewCachedCategoryRepository(rdb *redis.Client, ttl time.Duration, inner *CategoryRepository, namespace string) *CachedCategoryRepository {
	if ttl <= 0 {
		ttl = defaultCategoryCacheTTL
	}
	if namespace == "" {
		namespace = "bmi_categories"
	}
	return &CachedCategoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a category and invalidates the cached list
func (c *CachedCategoryRepository) Create(category *models.BMICategory) error {
	if err := c.inner.Create(category); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// CreateBatch inserts categories and invalidates the cached list
func (c *CachedCategoryRepository) CreateBatch(categories []models.BMICategory) error {
	if err := c.inner.CreateBatch(categories); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// GetByID retrieves a category, checking cache first then falling back to the database
func (c *CachedCategoryRepository) GetByID(id uint) (*models.BMICategory, error) {
	if c.rdb == nil {
		return c.inner.GetByID(id)
	}

	ctx, cancel := c.opContext()
	defer cancel()

	key := fmt.Sprintf("%s:id:%d", c.namespace, id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out models.BMICategory
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetByID(id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// List retrieves all categories, checking cache first then falling back to the database
func (c *CachedCategoryRepository) List() ([]models.BMICategory, error) {
	if c.rdb == nil {
		return c.inner.List()
	}

	ctx, cancel := c.opContext()
	defer cancel()

	key := c.listKey()
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.BMICategory
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Count counts categories, always against the database
func (c *CachedCategoryRepository) Count() (int64, error) {
	return c.inner.Count()
}

func (c *CachedCategoryRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached list after a write (best effort)
func (c *CachedCategoryRepository) invalidate() {
	if c.rdb == nil {
		return
	}
	ctx, cancel := c.opContext()
	defer cancel()
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// opContext bounds a cache operation so a slow Redis never stalls a request
func (c *CachedCategoryRepository) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Second)
}
