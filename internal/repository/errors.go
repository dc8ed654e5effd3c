// Package repository wraps the SQL tables behind small typed accessors.
// Only the database-backed credential verifier uses it; the catalog
// itself lives in the key-value storage backend.
package repository

import "errors"

// ErrEmailExists is returned by AccountRepo.Create when the email is
// already registered. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")
