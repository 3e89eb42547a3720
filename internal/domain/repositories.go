package domain

import (
	"context"
)

// CatalogClient provides paginated access to an upstream track catalog.
type CatalogClient interface {
	// FetchPage returns up to limit raw records of the collection starting at offset.
	// A short page is a normal answer, not an error.
	FetchPage(ctx context.Context, c Collection, offset, limit int) ([]RawTrack, error)
}
