package seed

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/catalog/internal/entities"
)

// ReleaseDateLayout is the d/M/yyyy date format used in seed files.
const ReleaseDateLayout = "2/1/2006"

const minBookFields = 6

// BookRecord is one parsed line of a books seed file.
type BookRecord struct {
	EditionType    entities.EditionType
	ReleaseDate    time.Time
	Copies         int
	Price          decimal.Decimal
	AgeRestriction entities.AgeRestriction
	Title          string
}

// ParseBookLine parses a line of the form
//
//	editionOrdinal releaseDate copies price ageRestrictionOrdinal title words...
//
// Fields are separated by runs of whitespace; the title words are joined with
// single spaces.
func ParseBookLine(line string) (BookRecord, error) {
	fields := strings.Fields(line)
	if len(fields) < minBookFields {
		return BookRecord{}, &SeedFormatError{Reason: "expected at least 6 fields, got " + strconv.Itoa(len(fields))}
	}

	editionOrdinal, err := strconv.Atoi(fields[0])
	if err != nil {
		return BookRecord{}, &SeedFormatError{Reason: "invalid edition ordinal", Err: err}
	}
	editionType, ok := entities.EditionTypeFromOrdinal(editionOrdinal)
	if !ok {
		return BookRecord{}, &SeedFormatError{Reason: "edition ordinal out of range: " + fields[0]}
	}

	releaseDate, err := time.Parse(ReleaseDateLayout, fields[1])
	if err != nil {
		return BookRecord{}, &SeedFormatError{Reason: "invalid release date", Err: err}
	}

	copies, err := strconv.Atoi(fields[2])
	if err != nil {
		return BookRecord{}, &SeedFormatError{Reason: "invalid copies", Err: err}
	}
	if copies < 0 {
		return BookRecord{}, &SeedFormatError{Reason: "negative copies: " + fields[2]}
	}

	price, err := decimal.NewFromString(fields[3])
	if err != nil {
		return BookRecord{}, &SeedFormatError{Reason: "invalid price", Err: err}
	}
	if price.IsNegative() {
		return BookRecord{}, &SeedFormatError{Reason: "negative price: " + fields[3]}
	}

	ageOrdinal, err := strconv.Atoi(fields[4])
	if err != nil {
		return BookRecord{}, &SeedFormatError{Reason: "invalid age restriction ordinal", Err: err}
	}
	ageRestriction, ok := entities.AgeRestrictionFromOrdinal(ageOrdinal)
	if !ok {
		return BookRecord{}, &SeedFormatError{Reason: "age restriction ordinal out of range: " + fields[4]}
	}

	return BookRecord{
		EditionType:    editionType,
		ReleaseDate:    releaseDate,
		Copies:         copies,
		Price:          price,
		AgeRestriction: ageRestriction,
		Title:          strings.Join(fields[5:], " "),
	}, nil
}

// ParseBooks reads every non-blank line of r. The first malformed line aborts
// parsing with a *SeedFormatError carrying its line number.
func ParseBooks(r io.Reader) ([]BookRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []BookRecord
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record, err := ParseBookLine(line)
		if err != nil {
			var formatErr *SeedFormatError
			if errors.As(err, &formatErr) {
				formatErr.Line = lineNo
			}
			return nil, err
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
