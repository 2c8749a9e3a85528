package geo

import (
	"math"
	"testing"
)

func TestDistanceKmIdenticalCoordinates(t *testing.T) {
	p := Coordinate{Latitude: -23.5336554, Longitude: -47.5133974}
	if d := DistanceKm(p, p); d != 0 {
		t.Fatalf("expected zero distance for identical coordinates, got %v", d)
	}
}

func TestDistanceKmIsSymmetric(t *testing.T) {
	pairs := []struct {
		a, b Coordinate
	}{
		{Coordinate{-23.5336554, -47.5133974}, Coordinate{-23.5336612, -47.4824978}},
		{Coordinate{0, 0}, Coordinate{0, 180}},
		{Coordinate{51.5007, -0.1246}, Coordinate{40.6892, -74.0445}},
	}
	for _, p := range pairs {
		ab := DistanceKm(p.a, p.b)
		ba := DistanceKm(p.b, p.a)
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("distance not symmetric: %v vs %v for %+v", ab, ba, p)
		}
	}
}

func TestDistanceKmKnownDistance(t *testing.T) {
	// Roughly 3 km apart along the same parallel in Sorocaba.
	user := Coordinate{Latitude: -23.5336554, Longitude: -47.5133974}
	gym := Coordinate{Latitude: -23.5336612, Longitude: -47.4824978}

	d := DistanceKm(user, gym)
	if d < 3.0 || d > 3.3 {
		t.Fatalf("expected ~3.1 km, got %v", d)
	}
}
