package entity

// BlurType classifies a crossing by where each party was relative to home.
type BlurType string

const (
	// BlurTypeTravel means the subject was away from their own home.
	BlurTypeTravel BlurType = "travel"
	// BlurTypeLong means the counterpart was away from their home.
	BlurTypeLong BlurType = "long"
	// BlurTypeNeighbor means both parties were near home.
	BlurTypeNeighbor BlurType = "neighbor"
)

// Blurrable reports whether rows of this type hide detail unless exempt.
func (t BlurType) Blurrable() bool {
	return t == BlurTypeTravel || t == BlurTypeLong
}

// Category is the entitlement category that can lift the blur.
func (t BlurType) Category() string {
	return string(t)
}
