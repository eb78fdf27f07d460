package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

// ProductRepository is an in-memory stand-in for the GORM implementation,
// backed by go-cache. It interprets the query specifications the services
// actually use; an unknown specification type panics so a test failure is loud.
type ProductRepository struct {
	mu     sync.Mutex
	cache  *cache.Cache
	nextId uint
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.Id == 0 {
		r.nextId++
		product.Id = r.nextId
	} else if product.Id > r.nextId {
		r.nextId = product.Id
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	stored := *product
	r.cache.Set(strconv.FormatUint(uint64(product.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	stored := *product
	r.cache.Set(strconv.FormatUint(uint64(product.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	r.cache.Delete(strconv.FormatUint(uint64(id), 10))
	return nil
}

func (r *ProductRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	all := r.filtered(specs)
	if len(all) == 0 {
		return nil, nil
	}
	found := *all[0]
	return &found, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	all := r.filtered(specs)
	result := make([]*entity.Product, len(all))
	for i, p := range all {
		copied := *p
		result[i] = &copied
	}
	return result, nil
}

func (r *ProductRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs))), nil
}

func (r *ProductRepository) filtered(specs []specification.Specification) []*entity.Product {
	var all []*entity.Product
	for _, item := range r.cache.Items() {
		p := item.Object.(*entity.Product)
		if matchProduct(p, specs) {
			all = append(all, p)
		}
	}
	sortProducts(all, specs)
	return all
}

func matchProduct(p *entity.Product, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.NameLike:
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(s.Fragment)) {
				return false
			}
		case specification.OrderBy, specification.ForUpdate:
			// handled elsewhere / no-op in memory
		default:
			panic("memory: unsupported product specification")
		}
	}
	return true
}

func sortProducts(products []*entity.Product, specs []specification.Specification) {
	ordered := false
	desc := false
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "name" {
			ordered = true
			desc = s.Desc
		}
	}
	if !ordered {
		sort.Slice(products, func(i, j int) bool { return products[i].Id < products[j].Id })
		return
	}
	sort.Slice(products, func(i, j int) bool {
		if desc {
			return products[i].Name > products[j].Name
		}
		return products[i].Name < products[j].Name
	})
}
