// Package reviewsvc - tính toán khoảng cách địa lý.
package reviewsvc

import (
	"math"

	reviewmodels "outlet_review/internal/api/review/models"
)

// earthRadiusKm là bán kính Trái Đất theo km.
const earthRadiusKm = 6371.0

// HaversineKm tính khoảng cách great-circle giữa 2 tọa độ theo km.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLon := degToRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// GeoDistanceKm tính khoảng cách giữa outlet nguồn và outlet gợi ý của một suggestion.
// Trả về 0 nếu suggestion không có tọa độ.
func GeoDistanceKm(g *reviewmodels.GeoLocation) float64 {
	if g == nil {
		return 0
	}
	return HaversineKm(g.SourceLatitude, g.SourceLongitude, g.SuggestedLatitude, g.SuggestedLongitude)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
