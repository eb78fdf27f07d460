package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

type TableRepository struct {
	mu     sync.Mutex
	cache  *cache.Cache
	nextId uint
}

func NewTableRepository() *TableRepository {
	return &TableRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *TableRepository) Create(ctx context.Context, table *entity.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if table.Id == 0 {
		r.nextId++
		table.Id = r.nextId
	} else if table.Id > r.nextId {
		r.nextId = table.Id
	}

	stored := *table
	r.cache.Set(strconv.FormatUint(uint64(table.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *TableRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Table, error) {
	all := r.filtered(specs)
	if len(all) == 0 {
		return nil, nil
	}
	found := *all[0]
	return &found, nil
}

func (r *TableRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Table, error) {
	all := r.filtered(specs)
	result := make([]*entity.Table, len(all))
	for i, t := range all {
		copied := *t
		result[i] = &copied
	}
	return result, nil
}

func (r *TableRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs))), nil
}

func (r *TableRepository) filtered(specs []specification.Specification) []*entity.Table {
	var all []*entity.Table
	for _, item := range r.cache.Items() {
		t := item.Object.(*entity.Table)
		if matchTable(t, specs) {
			all = append(all, t)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number < all[j].Number })
	return all
}

func matchTable(t *entity.Table, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if t.Id != s.ID {
				return false
			}
		case specification.OrderBy, specification.ForUpdate:
		default:
			panic("memory: unsupported table specification")
		}
	}
	return true
}
