package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type EditionType string

const (
	EditionTypeGold   EditionType = "GOLD"
	EditionTypeSilver EditionType = "SILVER"
	EditionTypeBronze EditionType = "BRONZE"
)

// EditionTypes lists every edition type in ordinal order. Seed files refer to
// edition types by their index in this slice.
var EditionTypes = []EditionType{
	EditionTypeGold,
	EditionTypeSilver,
	EditionTypeBronze,
}

type AgeRestriction string

const (
	AgeRestrictionMinor AgeRestriction = "MINOR"
	AgeRestrictionTeen  AgeRestriction = "TEEN"
	AgeRestrictionAdult AgeRestriction = "ADULT"
)

// AgeRestrictions lists every age restriction in ordinal order.
var AgeRestrictions = []AgeRestriction{
	AgeRestrictionMinor,
	AgeRestrictionTeen,
	AgeRestrictionAdult,
}

// EditionTypeFromOrdinal returns the edition type at position i.
func EditionTypeFromOrdinal(i int) (EditionType, bool) {
	if i < 0 || i >= len(EditionTypes) {
		return "", false
	}
	return EditionTypes[i], true
}

// AgeRestrictionFromOrdinal returns the age restriction at position i.
func AgeRestrictionFromOrdinal(i int) (AgeRestriction, bool) {
	if i < 0 || i >= len(AgeRestrictions) {
		return "", false
	}
	return AgeRestrictions[i], true
}

// ParseEditionType resolves an edition type by name, ignoring case.
func ParseEditionType(name string) (EditionType, error) {
	candidate := EditionType(strings.ToUpper(strings.TrimSpace(name)))
	for _, et := range EditionTypes {
		if et == candidate {
			return et, nil
		}
	}
	return "", &InvalidEnumNameError{Enum: "edition type", Name: name}
}

// ParseAgeRestriction resolves an age restriction by name, ignoring case.
func ParseAgeRestriction(name string) (AgeRestriction, error) {
	candidate := AgeRestriction(strings.ToUpper(strings.TrimSpace(name)))
	for _, ar := range AgeRestrictions {
		if ar == candidate {
			return ar, nil
		}
	}
	return "", &InvalidEnumNameError{Enum: "age restriction", Name: name}
}

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
}

type Author struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"index:idx_author_name;size:100" json:"first_name"`
	LastName  string `gorm:"index:idx_author_name;size:100;not null" json:"last_name"`
	Books     []Book `gorm:"foreignKey:AuthorID" json:"-"`
}

// FullName returns "FirstName LastName".
func (a Author) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

type Book struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	EditionType    EditionType     `gorm:"size:10;not null" json:"edition_type" validate:"required"`
	ReleaseDate    datatypes.Date  `gorm:"index" json:"release_date"`
	Copies         int             `gorm:"not null" json:"copies" validate:"gte=0"`
	Price          decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"price" validate:"gte=0"`
	AgeRestriction AgeRestriction  `gorm:"size:10;not null" json:"age_restriction" validate:"required"`
	Title          string          `gorm:"index;size:512;not null" json:"title" validate:"required"`
	AuthorID       uint            `gorm:"index;not null" json:"author_id" validate:"required"`
	Author         Author          `gorm:"foreignKey:AuthorID" json:"author"`
	Categories     []Category      `gorm:"many2many:books_categories;" json:"categories" validate:"min=1,max=3"`
}

// BookInfo is the reduced projection returned by exact title lookups.
type BookInfo struct {
	Title          string
	EditionType    EditionType
	AgeRestriction AgeRestriction
	Price          decimal.Decimal
}

func (b BookInfo) String() string {
	return fmt.Sprintf("%s %s %s %s", b.Title, b.EditionType, b.AgeRestriction, b.Price.StringFixed(2))
}

// AuthorCopies holds the total number of copies across all books of an author.
type AuthorCopies struct {
	AuthorID  uint
	FirstName string
	LastName  string
	Total     int64
}
