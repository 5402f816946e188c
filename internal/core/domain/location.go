package domain

// Location is a postal address as the carrier sees it: a contact plus a street
// address. It is an input to every shipping operation and is only built by
// the adapters when decoding tracking replies.
type Location struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Company     string `json:"company,omitempty" bson:"company,omitempty"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address1    string `json:"address1,omitempty" bson:"address1,omitempty"`
	Address2    string `json:"address2,omitempty" bson:"address2,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	State       string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty" bson:"country_code,omitempty"` // ISO 3166 alpha-2
	Commercial  bool   `json:"commercial" bson:"commercial"`
}

// Residential reports whether the address should be flagged as residential.
func (l Location) Residential() bool {
	return !l.Commercial
}

// Dimensions of a package, in inches.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Package is a single parcel. Weight is expressed in pounds.
type Package struct {
	Weight     float64     `json:"weight"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}
