package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"restaurant-pos-be/internal/entity"
	"restaurant-pos-be/internal/repository/specification"

	"github.com/patrickmn/go-cache"
)

// OrderRepository keeps a reference to the product fake so the joined order
// lines can resolve product names the way the SQL implementation does.
type OrderRepository struct {
	mu       sync.Mutex
	cache    *cache.Cache
	nextId   uint
	products *ProductRepository
}

func NewOrderRepository(products *ProductRepository) *OrderRepository {
	return &OrderRepository{
		cache:    cache.New(cache.NoExpiration, 0),
		products: products,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.Id == 0 {
		r.nextId++
		order.Id = r.nextId
	} else if order.Id > r.nextId {
		r.nextId = order.Id
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	stored := *order
	r.cache.Set(strconv.FormatUint(uint64(order.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *OrderRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	all := r.filtered(specs)
	result := make([]*entity.Order, len(all))
	for i, o := range all {
		copied := *o
		result[i] = &copied
	}
	return result, nil
}

func (r *OrderRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs))), nil
}

func (r *OrderRepository) FindLinesBySession(ctx context.Context, sessionID uint) ([]*entity.OrderLine, error) {
	orders := r.filtered([]specification.Specification{specification.ByTableSessionID{TableSessionID: sessionID}})

	// created_at DESC, newest first
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].Id > orders[j].Id
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	lines := make([]*entity.OrderLine, 0, len(orders))
	for _, o := range orders {
		name := ""
		if r.products != nil {
			if p, _ := r.products.FindOne(ctx, specification.ByID{ID: o.ProductId}); p != nil {
				name = p.Name
			}
		}
		lines = append(lines, &entity.OrderLine{
			Id:             o.Id,
			TableSessionId: o.TableSessionId,
			ProductId:      o.ProductId,
			ProductName:    name,
			Quantity:       o.Quantity,
			Price:          o.Price,
			Total:          o.Price * float64(o.Quantity),
			CreatedAt:      o.CreatedAt,
			UpdatedAt:      o.UpdatedAt,
		})
	}
	return lines, nil
}

func (r *OrderRepository) SummarizeBySession(ctx context.Context, sessionID uint) (*entity.OrderSummary, error) {
	orders := r.filtered([]specification.Specification{specification.ByTableSessionID{TableSessionID: sessionID}})

	summary := &entity.OrderSummary{}
	for _, o := range orders {
		summary.Total += o.Price * float64(o.Quantity)
		summary.Quantity += o.Quantity
	}
	return summary, nil
}

func (r *OrderRepository) filtered(specs []specification.Specification) []*entity.Order {
	var all []*entity.Order
	for _, item := range r.cache.Items() {
		o := item.Object.(*entity.Order)
		if matchOrder(o, specs) {
			all = append(all, o)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Id < all[j].Id })
	return all
}

func matchOrder(o *entity.Order, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if o.Id != s.ID {
				return false
			}
		case specification.ByTableSessionID:
			if o.TableSessionId != s.TableSessionID {
				return false
			}
		case specification.OrderBy, specification.ForUpdate:
		default:
			panic("memory: unsupported order specification")
		}
	}
	return true
}
