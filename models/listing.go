package models

// RawListing is one property record as returned by the upstream
// listing source. Field coverage is deliberately partial: unknown
// upstream fields are ignored, and absent numerics stay nil rather
// than collapsing to zero (zero bedrooms is a real value).
type RawListing struct {
	PublicID         string      `json:"public_id"`
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Location         string      `json:"location"`
	Address          string      `json:"address"`
	PropertyType     string      `json:"property_type"`
	Status           string      `json:"status"`
	Operations       []Operation `json:"operations"`
	Bedrooms         *int        `json:"bedrooms"`
	Bathrooms        *int        `json:"bathrooms"`
	ParkingSpaces    *int        `json:"parking_spaces"`
	ConstructionSize *float64    `json:"construction_size"`
	TitleImageFull   string      `json:"title_image_full"`
	TitleImage       string      `json:"title_image"`
	PropertyImages   []Image     `json:"property_images"`
	Photos           []Image     `json:"photos"`
}

// Key returns the listing identifier, preferring public_id over id.
func (l *RawListing) Key() string {
	if l.PublicID != "" {
		return l.PublicID
	}
	return l.ID
}

// Place returns the display location, preferring location over address.
func (l *RawListing) Place() string {
	if l.Location != "" {
		return l.Location
	}
	return l.Address
}

// Operation is a sale or rental offer attached to a listing. Amount is
// nil when the source omits the price.
type Operation struct {
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

// Image wraps the url-bearing objects in the source's image lists.
type Image struct {
	URL string `json:"url"`
}

// PageResponse is the envelope the upstream source returns per page.
type PageResponse struct {
	Content    []RawListing `json:"content"`
	Pagination Pagination   `json:"pagination"`
}

type Pagination struct {
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	NextPage   *int `json:"next_page"`
}

// HasMore reports whether another page should be requested. Sources
// are inconsistent about which continuation signal they populate, so
// either one keeps the walk going.
func (p Pagination) HasMore() bool {
	if p.NextPage != nil {
		return true
	}
	return p.TotalPages > 0 && p.Page > 0 && p.Page < p.TotalPages
}
