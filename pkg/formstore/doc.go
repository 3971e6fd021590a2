// Package formstore keeps in-progress registration forms in memory.
//
// Forms are keyed by a random UUID and held in a bounded least-recently-used
// list. When the store is full, creating a form evicts the session that was
// touched longest ago. An optional callback observes evictions.
//
//	store := formstore.New(1024, formstore.WithFormOptions(registration.WithLogger(log)))
//	id, form := store.Create()
//	form, err := store.Get(id) // ErrNotFound once evicted or deleted
//
// The store never persists anything; a restart drops every session.
package formstore
