package airwave

import (
	"context"
	"fmt"
)

// PageIterator walks a paginated listing endpoint one item at a time. Each
// page body is expected to carry the items under a named attribute plus an
// optional next_page URL; iteration ends when next_page is absent or the
// server repeats the current page URL.
//
//	it := airwave.NewPageIterator(client, "api/schedules/", "schedules")
//	for it.Next(ctx) {
//		item := it.Value()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type PageIterator struct {
	client        RequestSender
	dataAttribute string

	nextURL string
	done    bool

	items   []map[string]any
	pos     int
	current map[string]any
	count   int
	err     error
}

// NewPageIterator seeds an iterator with the first page URL and the body
// field holding the array of items per page.
func NewPageIterator(client RequestSender, seedURL string, dataAttribute string) *PageIterator {
	return &PageIterator{
		client:        client,
		dataAttribute: dataAttribute,
		nextURL:       seedURL,
	}
}

// Next advances to the following item, fetching the next page when the
// current one is exhausted. It returns false at the end of the listing or
// on the first error; Err distinguishes the two.
func (it *PageIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	for it.pos >= len(it.items) {
		if it.done {
			return false
		}
		if !it.fetch(ctx) {
			return false
		}
	}
	it.current = it.items[it.pos]
	it.pos++
	it.count++
	return true
}

// Value returns the item the iterator currently points at.
func (it *PageIterator) Value() map[string]any { return it.current }

// Count reports how many items have been yielded so far.
func (it *PageIterator) Count() int { return it.count }

// Err returns the error that terminated iteration, if any.
func (it *PageIterator) Err() error { return it.err }

func (it *PageIterator) fetch(ctx context.Context) bool {
	pageURL := it.nextURL

	resp, err := it.client.SendRequest(ctx, "GET", pageURL, nil, "")
	if err != nil {
		it.err = err
		return false
	}
	body, ok := resp.Map()
	if !ok {
		it.err = fmt.Errorf("listing page %q returned a non-JSON body", pageURL)
		return false
	}

	rawItems, ok := body[it.dataAttribute].([]any)
	if !ok {
		it.err = fmt.Errorf("listing page %q has no %q array", pageURL, it.dataAttribute)
		return false
	}
	it.items = it.items[:0]
	it.pos = 0
	for _, raw := range rawItems {
		if item, isMap := raw.(map[string]any); isMap {
			it.items = append(it.items, item)
		}
	}

	// Some deployments echo the current URL as next_page on the last page.
	next, hasNext := body["next_page"].(string)
	if !hasNext || next == "" || next == pageURL {
		it.done = true
		it.nextURL = ""
	} else {
		it.nextURL = next
	}
	return true
}
