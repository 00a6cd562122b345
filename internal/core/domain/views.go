package domain

// MapPin is the map-view projection of a filtered listing. Index is the
// stable 1-based badge number that correlates a pin with its entry in the
// sidebar list. PixelX/PixelY are Web Mercator world pixel coordinates at
// the requested zoom; Cell is a geohash key clients can group nearby pins
// by.
type MapPin struct {
	Index     int     `json:"index"`
	ListingID string  `json:"listingId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Status    Status  `json:"status"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	PixelX    int     `json:"pixelX"`
	PixelY    int     `json:"pixelY"`
	Cell      string  `json:"cell"`
}
