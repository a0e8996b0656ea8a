// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/md5" //nolint:gosec // cache key, not a security boundary
	"encoding/hex"
	"strings"
)

// EntityType distinguishes natural persons from organizations.
type EntityType string

// Entity type constants.
const (
	EntityIndividual   EntityType = "individual"
	EntityOrganization EntityType = "organization"
)

// Supplier is one row from the input spreadsheet: the party we screen
// against the watchlists. Optional attributes are empty strings when the
// spreadsheet did not provide them; absence matters to the rules engine,
// so callers must not substitute defaults.
type Supplier struct {
	Name        string
	FirstName   string
	MiddleName  string
	LastName    string
	Gender      string
	Country     string
	DateOfBirth string
	EntityType  EntityType
	RowID       int
}

// Hash returns a stable content hash for the supplier, used as the
// screening-cache key so re-runs skip the API for unchanged rows.
func (s Supplier) Hash() string {
	fields := []string{s.Name, s.DateOfBirth, s.FirstName, s.LastName, s.Gender, string(s.EntityType), s.Country}
	joined := strings.ReplaceAll(strings.Join(fields, ""), "-", "")
	sum := md5.Sum([]byte(joined)) //nolint:gosec // cache key, not a security boundary
	return hex.EncodeToString(sum[:])
}

// HasCountry reports whether the supplier declared a country.
func (s Supplier) HasCountry() bool {
	return strings.TrimSpace(s.Country) != ""
}

// HasDateOfBirth reports whether the supplier declared a date of birth
// (or incorporation date for organizations).
func (s Supplier) HasDateOfBirth() bool {
	return strings.TrimSpace(s.DateOfBirth) != ""
}

// HasEntityType reports whether the supplier declared an entity type.
func (s Supplier) HasEntityType() bool {
	return s.EntityType != ""
}
