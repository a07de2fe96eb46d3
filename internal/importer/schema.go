// Package importer parses contact lists from CSV and vCard text into
// plain records. Parsing is deliberately lenient: malformed rows and
// cards are skipped, never fatal.
package importer

// RawContact is one parsed contact record. All fields are untrimmed-raw
// except what the individual parsers already normalize (vCard phones).
// Records with an empty name are skipped by the import service.
type RawContact struct {
	Name    string
	Phone   string
	Email   string
	Company string
	Notes   string
}
