package entity

// Place is a gazetteer entry used to resolve free-text addresses.
type Place struct {
	Name        string
	Country     string
	Coordinates Coordinates
	Population  int64
}
