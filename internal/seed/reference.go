package seed

import "github.com/mrlokans/catalog/internal/entities"

// MaxCategoriesPerBook bounds how many categories a seeded book receives.
const MaxCategoriesPerBook = 3

var defaultCategories = []string{
	"Fiction",
	"Science",
	"History",
	"Drama",
	"Poetry",
	"Mystery",
	"Romance",
	"Fantasy",
	"Biography",
	"Horror",
	"Travel",
	"Philosophy",
}

var defaultAuthors = []struct {
	FirstName string
	LastName  string
}{
	{"Amanda", "Rice"},
	{"Chinua", "Achebe"},
	{"Randy", "Graham"},
	{"Wendy", "Richards"},
	{"Andy", "Rickman"},
	{"Bernard", "Hammond"},
	{"Carl", "Kelly"},
	{"Diane", "Murray"},
	{"Ernest", "Dalton"},
	{"Frances", "Harlow"},
	{"George", "Powell"},
	{"Helen", "Carter"},
	{"Ivan", "Petrov"},
	{"Julia", "Bennett"},
	{"Kenneth", "Morris"},
	{"Laura", "Sanders"},
	{"Michael", "Sullivan"},
	{"Nora", "Fleming"},
	{"Oscar", "Walsh"},
	{"Patricia", "Lane"},
}

// DefaultCategories returns the category reference set.
func DefaultCategories() []entities.Category {
	categories := make([]entities.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		categories = append(categories, entities.Category{Name: name})
	}
	return categories
}

// DefaultAuthors returns the author reference set.
func DefaultAuthors() []entities.Author {
	authors := make([]entities.Author, 0, len(defaultAuthors))
	for _, a := range defaultAuthors {
		authors = append(authors, entities.Author{FirstName: a.FirstName, LastName: a.LastName})
	}
	return authors
}
