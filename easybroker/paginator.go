package easybroker

import (
	"context"
	"fmt"
	"log"

	"propfinder/models"
)

// maxPages bounds a pagination walk against sources that keep
// advertising a next page forever.
const maxPages = 500

// FetchAll walks every listing page in sequence, starting at page 1,
// and accumulates the records in source order. Duplicates are kept.
// The walk continues while either continuation signal (next_page, or
// page < total_pages) says there is more; a failed page aborts the
// whole run with no partial result.
func (c *Client) FetchAll(ctx context.Context) ([]models.RawListing, error) {
	var all []models.RawListing

	page := 1
	for fetched := 0; ; fetched++ {
		if fetched >= maxPages {
			return nil, fmt.Errorf("easybroker: aborting after %d pages, source never signalled the last page", maxPages)
		}

		resp, err := c.FetchPage(ctx, page, c.source.PageLimit)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Content...)
		log.Printf("easybroker: page %d: %d listings (total: %d)", page, len(resp.Content), len(all))

		p := resp.Pagination
		if !p.HasMore() {
			return all, nil
		}
		if p.NextPage != nil {
			page = *p.NextPage
		} else {
			page = p.Page + 1
		}
	}
}
