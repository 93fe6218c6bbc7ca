// Package reviewsvc - Test tính khoảng cách haversine.
package reviewsvc

import (
	"math"
	"testing"

	reviewmodels "outlet_review/internal/api/review/models"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	if d := HaversineKm(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("Khoảng cách giữa cùng một điểm phải là 0, got %v", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	d1 := HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Haversine phải đối xứng: %v != %v", d1, d2)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// London → Paris khoảng 343-344 km
	d := HaversineKm(51.5074, -0.1278, 48.8566, 2.3522)
	if d < 330 || d > 360 {
		t.Errorf("London-Paris phải khoảng 344km, got %v", d)
	}
}

func TestGeoDistanceKm_NilLocation(t *testing.T) {
	if d := GeoDistanceKm(nil); d != 0 {
		t.Errorf("GeoDistanceKm(nil) phải là 0, got %v", d)
	}
}

func TestGeoDistanceKm_FromLocation(t *testing.T) {
	g := &reviewmodels.GeoLocation{
		SourceLatitude:     51.5074,
		SourceLongitude:    -0.1278,
		SuggestedLatitude:  48.8566,
		SuggestedLongitude: 2.3522,
	}
	d := GeoDistanceKm(g)
	want := HaversineKm(g.SourceLatitude, g.SourceLongitude, g.SuggestedLatitude, g.SuggestedLongitude)
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("GeoDistanceKm = %v, muốn %v", d, want)
	}
}
