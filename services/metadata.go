package services

import (
	"sort"
	"strings"

	"propfinder/models"
)

// ExtractMetadata scans a record set and reports the distinct property
// types, operations, currencies, and statuses present, for populating
// filter controls. Property types keep their source casing so display
// labels survive intact; operations are lowercase, currencies
// uppercase, and statuses only appear when recognized.
func ExtractMetadata(records []models.RawListing) models.Metadata {
	types := make(map[string]struct{})
	operations := make(map[string]struct{})
	currencies := make(map[string]struct{})
	statuses := make(map[string]struct{})

	for i := range records {
		r := &records[i]

		if t := strings.TrimSpace(r.PropertyType); t != "" {
			types[t] = struct{}{}
		}

		for _, op := range r.Operations {
			label := strings.TrimSpace(op.Type)
			if label == "" {
				continue
			}
			if normalized := NormalizeOperation(label); normalized != "" {
				operations[normalized] = struct{}{}
			} else {
				operations[strings.ToLower(label)] = struct{}{}
			}
			currencies[NormalizeCurrency(op.Currency)] = struct{}{}
		}

		if s := NormalizeStatus(r.Status); s != "" {
			statuses[s] = struct{}{}
		}
	}

	return models.Metadata{
		Types:      sortedKeys(types),
		Operations: sortedKeys(operations),
		Currencies: sortedKeys(currencies),
		Statuses:   sortedKeys(statuses),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
