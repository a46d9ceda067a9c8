package services

import (
	"context"

	"propfinder/models"
)

// ListingFetcher abstracts the upstream pagination walk so the search
// flow can be exercised without network access.
type ListingFetcher interface {
	FetchAll(ctx context.Context) ([]models.RawListing, error)
}

// SearchService runs one search request end to end: fetch everything,
// filter, project. The records are an immutable snapshot; nothing here
// holds state between requests.
type SearchService struct {
	fetcher ListingFetcher
}

func NewSearchService(fetcher ListingFetcher) *SearchService {
	return &SearchService{fetcher: fetcher}
}

func (s *SearchService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := Filter(records, criteria)
	items := make([]models.DisplayItem, 0, len(matched))
	for i := range matched {
		items = append(items, ToDisplayItem(&matched[i], criteria))
	}

	return &models.SearchResult{Count: len(items), Items: items}, nil
}

// Metadata fetches the full inventory and reports its distinct filter
// values, bypassing filtering entirely.
func (s *SearchService) Metadata(ctx context.Context) (*models.Metadata, error) {
	records, err := s.fetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	meta := ExtractMetadata(records)
	return &meta, nil
}
