// Package interfaces documents the core abstractions used throughout the catalog.
//
// # Interface Categories
//
// ## Query Interfaces
//
//   - BookStore: book predicates, aggregates and bulk mutations (internal/catalog/service.go)
//   - AuthorStore: author listings and the author book count (internal/catalog/service.go)
//
// ## Seeding Interfaces
//
//   - BookStore, AuthorStore, CategoryStore: idempotent inserts and reference
//     set listings (internal/seed/seeder.go)
//   - Rand: random source for author and category assignment; pass a seeded
//     *math/rand.Rand for reproducible runs (internal/seed/seeder.go)
//
// # Adding a New Query
//
//  1. Add the predicate method to the repository in internal/database/books/
//
//     func (r *Repository) FindByCopiesBetween(low, high int) ([]entities.Book, error)
//
//  2. Add it to catalog.BookStore and expose a formatting method on catalog.Service
//
//  3. Call it from the demo run in internal/cli/run.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
