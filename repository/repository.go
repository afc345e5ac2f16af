// Package repository holds one repository per entity over the shared
// sqlx handle. Each repo exposes find/insert/update/delete; not-found
// is surfaced as ErrNotFound so callers never touch sql.ErrNoRows.
// Multi-statement mutations (user cascade delete, goal delete with
// task detach) run inside a single transaction.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")
