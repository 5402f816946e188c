package domain

// Response is the part every carrier reply shares: the verdict and the raw
// exchange, kept so that callers can store or inspect it.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	XML     string `json:"-"` // raw carrier reply
	Request string `json:"-"` // raw request that produced it
}

// RateEstimate is one priced service offer for a route and set of packages.
type RateEstimate struct {
	Origin       Location  `json:"origin"`
	Destination  Location  `json:"destination"`
	Carrier      string    `json:"carrier"`
	ServiceCode  string    `json:"service_code"`
	ServiceName  string    `json:"service_name"`
	TotalPrice   float64   `json:"total_price"`
	Currency     string    `json:"currency"`
	Packages     []Package `json:"packages"`
	DeliveryDate string    `json:"delivery_date,omitempty"` // timestamp, or transit time for ground
}

// RateResponse is the outcome of a rate quote.
type RateResponse struct {
	Response
	Rates []RateEstimate `json:"rates"`
}
