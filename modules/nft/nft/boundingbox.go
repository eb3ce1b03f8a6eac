package nft

// BoundingBox is an axis-aligned search box around a center point. Radius
// extends the box by radius in every direction, so the box spans 2*radius on
// each axis, clamped at zero on the low side since coordinates are never
// negative.
type BoundingBox struct {
	MinLat  int64
	MinLong int64
	MaxLat  int64
	MaxLong int64
}

func NewBoundingBox(lat, long, radius int64) BoundingBox {
	b := BoundingBox{
		MinLat:  lat - radius,
		MinLong: long - radius,
		MaxLat:  lat + radius,
		MaxLong: long + radius,
	}
	if b.MinLat < 0 {
		b.MinLat = 0
	}
	if b.MinLong < 0 {
		b.MinLong = 0
	}
	return b
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, long int64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && long >= b.MinLong && long <= b.MaxLong
}
