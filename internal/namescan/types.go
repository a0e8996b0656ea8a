// Package namescan implements the client for the Namescan emerald
// screening API, translating its scan responses into screening hits.
package namescan

import (
	"time"

	"github.com/surfaid/vetflow/internal/model"
)

// personScanRequest is the emerald person-scan payload.
type personScanRequest struct {
	Name       string `json:"name"`
	FirstName  string `json:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Gender     string `json:"gender,omitempty"`
	DOB        string `json:"dob,omitempty"`
	Country    string `json:"country,omitempty"`
	MatchRate  int    `json:"matchRate"`
}

// organisationScanRequest is the emerald organisation-scan payload.
type organisationScanRequest struct {
	Name      string `json:"name"`
	Country   string `json:"country,omitempty"`
	MatchRate int    `json:"matchRate"`
}

type reference struct {
	Name     string `json:"name"`
	IDInList string `json:"idInList"`
}

type otherName struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type dateOfBirth struct {
	Date string `json:"date"`
}

type address struct {
	Country string `json:"country"`
}

type person struct {
	Name         string        `json:"name"`
	Category     string        `json:"category"`
	Gender       string        `json:"gender"`
	Deceased     bool          `json:"deceased"`
	DatesOfBirth []dateOfBirth `json:"datesOfBirth"`
	References   []reference   `json:"references"`
	Program      string        `json:"program"`
	Nationality  string        `json:"nationality"`
	Citizenship  string        `json:"citizenship"`
	OtherNames   []otherName   `json:"otherNames"`
	Summary      string        `json:"summary"`
	MatchRate    float64       `json:"matchRate"`
}

type organisation struct {
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	References []reference `json:"references"`
	Program    string      `json:"program"`
	Addresses  []address   `json:"addresses"`
	OtherNames []otherName `json:"otherNames"`
	Summary    string      `json:"summary"`
	MatchRate  float64     `json:"matchRate"`
}

// scanResponse covers both person and organisation scans; only one of the
// entity arrays is populated per call.
type scanResponse struct {
	Date            string         `json:"date"`
	ScanID          string         `json:"scanId"`
	NumberOfMatches int            `json:"numberOfMatches"`
	Persons         []person       `json:"persons"`
	Organisations   []organisation `json:"organisations"`
}

func (p person) toHit() model.ScreeningHit {
	hit := model.ScreeningHit{
		MatchedName: p.Name,
		SourceList:  p.Category,
		EntityType:  model.EntityIndividual,
		Country:     firstNonEmpty(p.Citizenship, p.Nationality),
	}
	if len(p.References) > 0 {
		hit.SourceList = p.References[0].Name
		hit.ReferenceID = p.References[0].IDInList
	}
	if len(p.DatesOfBirth) > 0 {
		hit.DateOfBirth = canonicalDate(p.DatesOfBirth[0].Date)
	}
	for _, other := range p.OtherNames {
		hit.Aliases = append(hit.Aliases, other.Name)
	}
	if p.MatchRate > 0 {
		score := p.MatchRate / 100
		hit.Score = &score
	}
	return hit
}

func (o organisation) toHit() model.ScreeningHit {
	hit := model.ScreeningHit{
		MatchedName: o.Name,
		SourceList:  o.Category,
		EntityType:  model.EntityOrganization,
	}
	if len(o.References) > 0 {
		hit.SourceList = o.References[0].Name
		hit.ReferenceID = o.References[0].IDInList
	}
	if len(o.Addresses) > 0 {
		hit.Country = o.Addresses[0].Country
	}
	for _, other := range o.OtherNames {
		hit.Aliases = append(hit.Aliases, other.Name)
	}
	if o.MatchRate > 0 {
		score := o.MatchRate / 100
		hit.Score = &score
	}
	return hit
}

func (r scanResponse) hits() []model.ScreeningHit {
	hits := make([]model.ScreeningHit, 0, len(r.Persons)+len(r.Organisations))
	for _, p := range r.Persons {
		hits = append(hits, p.toHit())
	}
	for _, o := range r.Organisations {
		hits = append(hits, o.toHit())
	}
	return hits
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// canonicalDate coerces the service's date renderings to ISO so they
// compare cleanly against spreadsheet values. Unparseable dates pass
// through unchanged.
func canonicalDate(s string) string {
	for _, layout := range []string{"2006-01-02", "02/01/2006", "02-01-2006", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == "2006" {
				return t.Format("2006")
			}
			return t.Format("2006-01-02")
		}
	}
	return s
}

// requestDate renders an ISO date the way the emerald API expects
// (dd/mm/yyyy). Anything unparseable passes through unchanged.
func requestDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02/01/2006")
	}
	return s
}
