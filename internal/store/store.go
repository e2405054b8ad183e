// File: internal/store/store.go
package store

import "errors"

// ErrNotFound reports an id or email lookup that matched no row. Callers
// depend on it to answer 404 instead of treating the miss as undefined.
var ErrNotFound = errors.New("store: not found")
