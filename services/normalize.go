package services

import (
	"strings"
	"unicode"
)

// Canonical vocabulary. Sources label the same concepts in Spanish,
// English, and assorted abbreviations; everything funnels through the
// alias tables below so the rules stay auditable in one place.
const (
	OperationSale   = "sale"
	OperationRental = "rental"

	StatusPublished    = "published"
	StatusNotPublished = "not_published"
	StatusReserved     = "reserved"
	StatusSoldRented   = "sold_rented"
	StatusSuspended    = "suspended"
	StatusFlagged      = "flagged"

	DefaultCurrency = "MXN"
)

var operationAliases = map[string]string{
	"venta":  OperationSale,
	"sale":   OperationSale,
	"sell":   OperationSale,
	"renta":  OperationRental,
	"rent":   OperationRental,
	"rental": OperationRental,
}

// currencyAliases keys are uppercased with whitespace and periods
// already stripped.
var currencyAliases = map[string]string{
	"MXN":      "MXN",
	"MN":       "MXN",
	"MX$":      "MXN",
	"MXP":      "MXN",
	"PESOS":    "MXN",
	"PESOSMXN": "MXN",
	"USD":      "USD",
	"US$":      "USD",
	"DOLARES":  "USD",
	"DLLS":     "USD",
	"EUR":      "EUR",
	"EURO":     "EUR",
	"EUROS":    "EUR",
	"€":        "EUR",
}

var statusAliases = map[string]string{
	"published":     StatusPublished,
	"publicada":     StatusPublished,
	"publicado":     StatusPublished,
	"active":        StatusPublished,
	"activa":        StatusPublished,
	"not_published": StatusNotPublished,
	"not published": StatusNotPublished,
	"no publicada":  StatusNotPublished,
	"unpublished":   StatusNotPublished,
	"draft":         StatusNotPublished,
	"borrador":      StatusNotPublished,
	"reserved":      StatusReserved,
	"reservada":     StatusReserved,
	"reservado":     StatusReserved,
	"apartada":      StatusReserved,
	"sold_rented":   StatusSoldRented,
	"sold":          StatusSoldRented,
	"rented":        StatusSoldRented,
	"vendida":       StatusSoldRented,
	"vendido":       StatusSoldRented,
	"rentada":       StatusSoldRented,
	"rentado":       StatusSoldRented,
	"suspended":     StatusSuspended,
	"suspendida":    StatusSuspended,
	"suspendido":    StatusSuspended,
	"pausada":       StatusSuspended,
	"flagged":       StatusFlagged,
	"reportada":     StatusFlagged,
	"denunciada":    StatusFlagged,
}

// NormalizeOperation maps a free-form operation label to sale or
// rental. Unknown input yields "", meaning no operation asserted.
func NormalizeOperation(s string) string {
	return operationAliases[strings.ToLower(strings.TrimSpace(s))]
}

// NormalizeCurrency maps a free-form currency label to a canonical
// uppercase code. Unknown non-empty input is assumed to already be a
// valid code and is returned uppercased; empty input defaults to MXN.
func NormalizeCurrency(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '.' {
			return -1
		}
		return r
	}, s)
	if stripped == "" {
		return DefaultCurrency
	}

	upper := strings.ToUpper(stripped)
	if code, ok := currencyAliases[upper]; ok {
		return code
	}
	return upper
}

// NormalizeStatus maps a free-form status label to the canonical
// status vocabulary. Unknown input yields "", meaning unrecognized.
func NormalizeStatus(s string) string {
	return statusAliases[strings.ToLower(strings.TrimSpace(s))]
}
