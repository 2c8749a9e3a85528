package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/lucasmarqs/gym-checkin-api/internal/geo"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// GymRepo is the in-memory repository.GymRepository. Gyms keep their
// insertion order, which is what SearchMany pages over.
type GymRepo struct {
	mu    sync.Mutex
	items []*model.Gym
}

func NewGymRepo() *GymRepo { return &GymRepo{} }

func (r *GymRepo) Create(_ context.Context, g *model.Gym) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *g
	r.items = append(r.items, &cp)
	return nil
}

func (r *GymRepo) FindByID(_ context.Context, id string) (*model.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *GymRepo) SearchMany(_ context.Context, query string, page int) ([]*model.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if page < 1 {
		page = 1
	}
	q := strings.ToLower(query)
	matched := make([]*model.Gym, 0)
	for _, it := range r.items {
		if strings.Contains(strings.ToLower(it.Title), q) {
			matched = append(matched, it)
		}
	}
	return pageOf(matched, page), nil
}

func (r *GymRepo) SearchManyNearby(_ context.Context, latitude, longitude, radiusKm float64) ([]*model.Gym, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	from := geo.Coordinate{Latitude: latitude, Longitude: longitude}
	out := make([]*model.Gym, 0)
	for _, it := range r.items {
		d := geo.DistanceKm(from, geo.Coordinate{Latitude: it.Latitude, Longitude: it.Longitude})
		if d <= radiusKm {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

// pageOf slices out one fixed-size page, copying rows so callers cannot
// mutate the store.
func pageOf(items []*model.Gym, page int) []*model.Gym {
	lo := (page - 1) * repository.PageSize
	if lo >= len(items) {
		return []*model.Gym{}
	}
	hi := lo + repository.PageSize
	if hi > len(items) {
		hi = len(items)
	}
	out := make([]*model.Gym, 0, hi-lo)
	for _, it := range items[lo:hi] {
		cp := *it
		out = append(out, &cp)
	}
	return out
}
