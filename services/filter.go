package services

import (
	"strings"

	"propfinder/models"
)

// Filter returns the listings matching every set criterion. Criteria
// combine with logical AND; an unset criterion is vacuously true, so
// the zero criteria value returns the input unchanged (in order).
func Filter(records []models.RawListing, c models.SearchCriteria) []models.RawListing {
	wantOp := NormalizeOperation(c.Operation)
	wantCur := requestedCurrency(c)

	out := make([]models.RawListing, 0, len(records))
	for i := range records {
		if matches(&records[i], c, wantOp, wantCur) {
			out = append(out, records[i])
		}
	}
	return out
}

func matches(l *models.RawListing, c models.SearchCriteria, wantOp, wantCur string) bool {
	return matchOperation(l, wantOp) &&
		matchPropertyType(l, c.PropertyType) &&
		matchStatus(l, c.Status) &&
		matchPriceCurrency(l, c, wantOp, wantCur) &&
		matchCounts(l, c) &&
		matchSize(l, c)
}

func matchOperation(l *models.RawListing, wantOp string) bool {
	if wantOp == "" {
		return true
	}
	for _, op := range l.Operations {
		if NormalizeOperation(op.Type) == wantOp {
			return true
		}
	}
	return false
}

func matchPropertyType(l *models.RawListing, wantType string) bool {
	if wantType == "" {
		return true
	}
	return strings.EqualFold(l.PropertyType, wantType)
}

func matchStatus(l *models.RawListing, rawStatus string) bool {
	wantStatus := NormalizeStatus(rawStatus)
	// Published is what the upstream serves by default, so requesting
	// it (or nothing) constrains nothing.
	if wantStatus == "" || wantStatus == StatusPublished {
		return true
	}

	if NormalizeStatus(l.Status) == wantStatus {
		return true
	}

	// Some sources never normalize sold/rented and send the raw words.
	if wantStatus == StatusSoldRented {
		raw := strings.ToLower(strings.TrimSpace(l.Status))
		return raw == "sold" || raw == "rented"
	}
	return false
}

func matchPriceCurrency(l *models.RawListing, c models.SearchCriteria, wantOp, wantCur string) bool {
	if wantCur != "" && !hasCurrency(l.Operations, wantCur) {
		return false
	}

	if c.PriceMin == nil && c.PriceMax == nil {
		return true
	}

	op := pricingOperation(l, wantOp, wantCur)
	if op == nil || op.Amount == nil {
		// No numeric price to compare: bounds pass vacuously.
		return true
	}

	if c.PriceMin != nil && *op.Amount < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && *op.Amount > *c.PriceMax {
		return false
	}
	return true
}

func matchCounts(l *models.RawListing, c models.SearchCriteria) bool {
	return matchMinCount(l.Bedrooms, c.Bedrooms) &&
		matchMinCount(l.Bathrooms, c.Bathrooms) &&
		matchMinCount(l.ParkingSpaces, c.ParkingSpaces)
}

// matchMinCount treats the criterion as a minimum. A record missing
// the field is never excluded for it.
func matchMinCount(have, want *int) bool {
	if want == nil || have == nil {
		return true
	}
	return *have >= *want
}

func matchSize(l *models.RawListing, c models.SearchCriteria) bool {
	if l.ConstructionSize == nil {
		return true
	}
	if c.SizeMin != nil && *l.ConstructionSize < *c.SizeMin {
		return false
	}
	if c.SizeMax != nil && *l.ConstructionSize > *c.SizeMax {
		return false
	}
	return true
}

// pricingOperation selects the operation entry that represents the
// listing's price: operations narrowed by the requested operation,
// then by the requested currency, first survivor wins. With no
// survivors it falls back to the first operation overall; source order
// breaks every tie.
func pricingOperation(l *models.RawListing, wantOp, wantCur string) *models.Operation {
	candidates := l.Operations
	if wantOp != "" {
		candidates = filterOps(candidates, func(op *models.Operation) bool {
			return NormalizeOperation(op.Type) == wantOp
		})
	}
	if wantCur != "" {
		candidates = filterOps(candidates, func(op *models.Operation) bool {
			return NormalizeCurrency(op.Currency) == wantCur
		})
	}

	if len(candidates) > 0 {
		return &candidates[0]
	}
	if len(l.Operations) > 0 {
		return &l.Operations[0]
	}
	return nil
}

func filterOps(ops []models.Operation, keep func(*models.Operation) bool) []models.Operation {
	var out []models.Operation
	for i := range ops {
		if keep(&ops[i]) {
			out = append(out, ops[i])
		}
	}
	return out
}

func hasCurrency(ops []models.Operation, wantCur string) bool {
	for i := range ops {
		if NormalizeCurrency(ops[i].Currency) == wantCur {
			return true
		}
	}
	return false
}

// requestedCurrency normalizes the currency criterion, keeping "unset"
// distinct from the empty-input MXN default.
func requestedCurrency(c models.SearchCriteria) string {
	if strings.TrimSpace(c.Currency) == "" {
		return ""
	}
	return NormalizeCurrency(c.Currency)
}
