package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"math/rand"

	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/database/authors"
	"github.com/mrlokans/catalog/internal/database/books"
	"github.com/mrlokans/catalog/internal/database/categories"
	"github.com/mrlokans/catalog/internal/seed"
)

// =============================================================================
// Query Engine
// =============================================================================

var _ catalog.BookStore = (*books.Repository)(nil)
var _ catalog.AuthorStore = (*authors.Repository)(nil)

// =============================================================================
// Seeding
// =============================================================================

var _ seed.BookStore = (*books.Repository)(nil)
var _ seed.AuthorStore = (*authors.Repository)(nil)
var _ seed.CategoryStore = (*categories.Repository)(nil)
var _ seed.Rand = (*rand.Rand)(nil)
