package model

import "strings"

// ScreeningHit is one candidate match returned by the screening service
// for a supplier. Score is the service's own confidence and may be absent;
// our classification never depends on it being present.
type ScreeningHit struct {
	MatchedName string
	SourceList  string
	Score       *float64
	Country     string
	DateOfBirth string
	EntityType  EntityType
	Aliases     []string
	ReferenceID string
}

// HasCountry reports whether the hit carries a country.
func (h ScreeningHit) HasCountry() bool {
	return strings.TrimSpace(h.Country) != ""
}

// HasDateOfBirth reports whether the hit carries a date of birth.
func (h ScreeningHit) HasDateOfBirth() bool {
	return strings.TrimSpace(h.DateOfBirth) != ""
}

// HasEntityType reports whether the hit carries an entity type.
func (h ScreeningHit) HasEntityType() bool {
	return h.EntityType != ""
}
