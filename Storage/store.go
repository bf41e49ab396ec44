// Package Storage is the persistence boundary: whole JSON-serialized
// collections addressed by fixed string keys in one key-value namespace.
// Every write replaces the full collection; there are no partial updates,
// transactions or migrations. A backend that cannot parse what it reads
// recovers by handing back an empty collection and logging the error.
package Storage

import "context"

// Collection keys. All backends share this namespace.
const (
	CollectionUsers        = "users"
	CollectionAppointments = "appointments"
	CollectionReviews      = "reviews"
)

// Store reads and writes one collection at a time. Read leaves dest
// untouched when the collection does not exist yet, so callers start from
// their zero value.
type Store interface {
	Read(ctx context.Context, collection string, dest any) error
	Write(ctx context.Context, collection string, src any) error
}
