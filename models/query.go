package models

// SearchCriteria holds the optional constraints for one search. A nil
// pointer or empty string means "no constraint on this dimension"; the
// zero value matches every listing.
type SearchCriteria struct {
	Operation     string
	PropertyType  string
	PriceMin      *float64
	PriceMax      *float64
	Currency      string
	Status        string
	Bedrooms      *int
	Bathrooms     *int
	ParkingSpaces *int
	SizeMin       *float64
	SizeMax       *float64
}

// DisplayItem is the compact projection of a matching listing sent to
// the results page. Nil numerics serialize as JSON null ("unknown"),
// never as zero.
type DisplayItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	PropertyType     string   `json:"property_type"`
	Operation        string   `json:"operation"`
	Amount           *float64 `json:"amount"`
	Currency         string   `json:"currency"`
	Bedrooms         *int     `json:"bedrooms"`
	Bathrooms        *int     `json:"bathrooms"`
	ParkingSpaces    *int     `json:"parking_spaces"`
	ConstructionSize *float64 `json:"construction_size"`
	Image            string   `json:"image,omitempty"`
}

// SearchResult is the success response body for a search request.
type SearchResult struct {
	Count int           `json:"count"`
	Items []DisplayItem `json:"items"`
}

// Metadata lists the distinct values present in the inventory, used to
// populate the filter controls.
type Metadata struct {
	Types      []string `json:"types"`
	Operations []string `json:"operations"`
	Currencies []string `json:"currencies"`
	Statuses   []string `json:"statuses"`
}
