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

type TableSessionRepository struct {
	mu     sync.Mutex
	cache  *cache.Cache
	nextId uint
}

func NewTableSessionRepository() *TableSessionRepository {
	return &TableSessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *TableSessionRepository) Create(ctx context.Context, session *entity.TableSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.Id == 0 {
		r.nextId++
		session.Id = r.nextId
	} else if session.Id > r.nextId {
		r.nextId = session.Id
	}

	stored := *session
	r.cache.Set(strconv.FormatUint(uint64(session.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *TableSessionRepository) Update(ctx context.Context, session *entity.TableSession) error {
	stored := *session
	r.cache.Set(strconv.FormatUint(uint64(session.Id), 10), &stored, cache.NoExpiration)
	return nil
}

func (r *TableSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TableSession, error) {
	all := r.filtered(specs)
	if len(all) == 0 {
		return nil, nil
	}
	found := *all[0]
	return &found, nil
}

func (r *TableSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TableSession, error) {
	all := r.filtered(specs)
	result := make([]*entity.TableSession, len(all))
	for i, s := range all {
		copied := *s
		result[i] = &copied
	}
	return result, nil
}

func (r *TableSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filtered(specs))), nil
}

func (r *TableSessionRepository) filtered(specs []specification.Specification) []*entity.TableSession {
	var all []*entity.TableSession
	for _, item := range r.cache.Items() {
		s := item.Object.(*entity.TableSession)
		if matchSession(s, specs) {
			all = append(all, s)
		}
	}
	sortSessions(all, specs)
	return all
}

func matchSession(session *entity.TableSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.ByTableID:
			if session.TableId != s.TableID {
				return false
			}
		case specification.Open:
			if session.ClosedAt != nil {
				return false
			}
		case specification.OrderBy, specification.OpenSessionsFirst, specification.ForUpdate:
		default:
			panic("memory: unsupported table session specification")
		}
	}
	return true
}

func sortSessions(sessions []*entity.TableSession, specs []specification.Specification) {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OpenSessionsFirst:
			// closed_at ASC NULLS FIRST
			sort.Slice(sessions, func(i, j int) bool {
				a, b := sessions[i], sessions[j]
				if a.ClosedAt == nil && b.ClosedAt == nil {
					return a.Id < b.Id
				}
				if a.ClosedAt == nil {
					return true
				}
				if b.ClosedAt == nil {
					return false
				}
				return a.ClosedAt.Before(*b.ClosedAt)
			})
			return
		case specification.OrderBy:
			if s.Field == "opened_at" {
				desc := s.Desc
				sort.Slice(sessions, func(i, j int) bool {
					a, b := sessions[i], sessions[j]
					if a.OpenedAt.Equal(b.OpenedAt) {
						if desc {
							return a.Id > b.Id
						}
						return a.Id < b.Id
					}
					if desc {
						return a.OpenedAt.After(b.OpenedAt)
					}
					return a.OpenedAt.Before(b.OpenedAt)
				})
				return
			}
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Id < sessions[j].Id })
}
