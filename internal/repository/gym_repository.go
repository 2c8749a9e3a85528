package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"github.com/lucasmarqs/gym-checkin-api/internal/geo"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
)

// GymRepo is the MySQL-backed GymRepository.
type GymRepo struct{ DB *sql.DB }

func NewGymRepo(db *sql.DB) *GymRepo { return &GymRepo{DB: db} }

// Create inserts the gym row.
func (r *GymRepo) Create(ctx context.Context, g *model.Gym) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO gyms (id, title, description, phone, latitude, longitude, created_at) VALUES (?,?,?,?,?,?,?)",
		g.ID, g.Title, g.Description, g.Phone, g.Latitude, g.Longitude, g.CreatedAt)
	return err
}

// FindByID fetches a gym by id.
func (r *GymRepo) FindByID(ctx context.Context, id string) (*model.Gym, error) {
	var g model.Gym
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,description,phone,latitude,longitude,created_at FROM gyms WHERE id=? LIMIT 1",
		id).Scan(&g.ID, &g.Title, &g.Description, &g.Phone, &g.Latitude, &g.Longitude, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// SearchMany returns one page of gyms whose title contains the query,
// case-insensitive, ordered by creation. A page past the end of the result
// set yields an empty slice, not an error.
func (r *GymRepo) SearchMany(ctx context.Context, query string, page int) ([]*model.Gym, error) {
	if page < 1 {
		page = 1
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,title,description,phone,latitude,longitude,created_at
		 FROM gyms
		 WHERE LOWER(title) LIKE ?
		 ORDER BY created_at ASC, id ASC
		 LIMIT ? OFFSET ?`,
		"%"+strings.ToLower(query)+"%", PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGyms(rows)
}

// SearchManyNearby returns gyms within radiusKm of the given coordinate.
// A bounding box narrows the candidate rows in SQL; the exact great-circle
// distance is checked per row afterwards since the box over-approximates
// the circle.
func (r *GymRepo) SearchManyNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*model.Gym, error) {
	latMin, latMax, lonMin, lonMax := boundingBox(latitude, longitude, radiusKm)
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,title,description,phone,latitude,longitude,created_at
		 FROM gyms
		 WHERE latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?
		 ORDER BY created_at ASC, id ASC`,
		latMin, latMax, lonMin, lonMax)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates, err := scanGyms(rows)
	if err != nil {
		return nil, err
	}
	from := geo.Coordinate{Latitude: latitude, Longitude: longitude}
	out := candidates[:0]
	for _, g := range candidates {
		d := geo.DistanceKm(from, geo.Coordinate{Latitude: g.Latitude, Longitude: g.Longitude})
		if d <= radiusKm {
			out = append(out, g)
		}
	}
	return out, nil
}

func scanGyms(rows *sql.Rows) ([]*model.Gym, error) {
	out := make([]*model.Gym, 0, PageSize)
	for rows.Next() {
		var g model.Gym
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.Phone,
			&g.Latitude, &g.Longitude, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// boundingBox approximates a radius around a point with degree deltas.
// One degree of latitude is ~111 km; longitude degrees shrink with the
// cosine of the latitude.
func boundingBox(lat, lon, radiusKm float64) (latMin, latMax, lonMin, lonMax float64) {
	latDelta := radiusKm / 111.0
	lonDelta := radiusKm / (111.0 * math.Cos(lat*math.Pi/180))
	return lat - latDelta, lat + latDelta, lon - lonDelta, lon + lonDelta
}
