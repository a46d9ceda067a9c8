package services

import (
	"strings"

	"propfinder/models"
)

// ToDisplayItem projects a matching listing into the shape the results
// page renders. The displayed operation is chosen with the same
// precedence the filter uses, so the price shown is the price that
// matched.
func ToDisplayItem(l *models.RawListing, c models.SearchCriteria) models.DisplayItem {
	item := models.DisplayItem{
		ID:               l.Key(),
		Title:            l.Title,
		Location:         l.Place(),
		PropertyType:     l.PropertyType,
		Currency:         DefaultCurrency,
		Bedrooms:         l.Bedrooms,
		Bathrooms:        l.Bathrooms,
		ParkingSpaces:    l.ParkingSpaces,
		ConstructionSize: l.ConstructionSize,
		Image:            resolveImage(l),
	}

	wantOp := NormalizeOperation(c.Operation)
	wantCur := requestedCurrency(c)
	if op := pricingOperation(l, wantOp, wantCur); op != nil {
		item.Operation = operationLabel(op.Type)
		item.Amount = op.Amount
		item.Currency = NormalizeCurrency(op.Currency)
	}

	return item
}

func operationLabel(raw string) string {
	if normalized := NormalizeOperation(raw); normalized != "" {
		return normalized
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// resolveImage walks the image fields in fixed priority order and
// returns the first non-empty URL. No image is not an error.
func resolveImage(l *models.RawListing) string {
	if l.TitleImageFull != "" {
		return l.TitleImageFull
	}
	if l.TitleImage != "" {
		return l.TitleImage
	}
	if url := firstImageURL(l.PropertyImages); url != "" {
		return url
	}
	return firstImageURL(l.Photos)
}

func firstImageURL(images []models.Image) string {
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}
