package model

// Coordinate is an immutable geographic position in decimal degrees (WGS 84)
type Coordinate struct {
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
}

// Valid reports whether the coordinate lies within the WGS 84 domain
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
