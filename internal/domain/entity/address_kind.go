package entity

// AddressKind represents the purpose of an address.
type AddressKind string

const (
	// AddressKindHome is the user's home, used for travel classification.
	AddressKindHome AddressKind = "home"
	// AddressKindPrivacyZone is an area where location reports are dropped.
	AddressKindPrivacyZone AddressKind = "privacy_zone"
)

// String returns the string representation of the AddressKind.
func (k AddressKind) String() string {
	return string(k)
}

// IsValid checks if the AddressKind is a valid value.
func (k AddressKind) IsValid() bool {
	switch k {
	case AddressKindHome, AddressKindPrivacyZone:
		return true
	default:
		return false
	}
}
