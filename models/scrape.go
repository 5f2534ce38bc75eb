// SPDX-License-Identifier: GPL-2.0-or-later

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CastMember is a single credited person attached to a title scrape.
// On the wire it is a fixed two-element array: ["nm0000001", "Name Surname"].
type CastMember struct {
	ID   string
	Name string
}

// UnmarshalJSON decodes the two-element ["id", "name"] array form.
func (c *CastMember) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("cast member must be a [id, name] pair, got %d elements", len(pair))
	}
	c.ID = pair[0]
	c.Name = pair[1]
	return nil
}

// MarshalJSON encodes the member back into its ["id", "name"] array form.
func (c CastMember) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.ID, c.Name})
}

// ScrapedTitle is a single scrape of a title page. Only ID and Timestamp are
// mandatory; every other field is present only when the scraper managed to
// extract it.
type ScrapedTitle struct {
	ID            string       `json:"id"`
	Timestamp     int64        `json:"timestamp"`
	Title         *string      `json:"title,omitempty"`
	OriginalTitle *string      `json:"original_title,omitempty"`
	Rating        *string      `json:"rating,omitempty"`
	RatingCount   *int64       `json:"rating_count,omitempty"`
	Year          *string      `json:"year,omitempty"`
	Directors     []CastMember `json:"directors,omitempty"`
	Writers       []CastMember `json:"writers,omitempty"`
	Cast          []CastMember `json:"cast,omitempty"`
	Duration      *int64       `json:"duration,omitempty"`
	Languages     []string     `json:"languages,omitempty"`
}

// FilmCreditTitleInfo carries the bits of title information that come along
// with a filmography entry on a person page.
type FilmCreditTitleInfo struct {
	Title *string  `json:"title,omitempty"`
	Year  *string  `json:"year,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// FilmCredit is one filmography entry of a scraped person.
type FilmCredit struct {
	ID         string              `json:"id"`
	CreditType []string            `json:"credit_type"`
	Tags       []string            `json:"tags"`
	TitleInfo  FilmCreditTitleInfo `json:"title_info"`
}

// Filmography maps title IDs to the credit the person holds on that title.
type Filmography map[string]FilmCredit

// ScrapedPerson is a single scrape of a person page.
type ScrapedPerson struct {
	ID          string      `json:"id"`
	Timestamp   int64       `json:"timestamp"`
	Name        *string     `json:"name,omitempty"`
	Birthday    *string     `json:"birthday,omitempty"`
	Filmography Filmography `json:"filmography,omitempty"`
}

// ErrEmptyScrapeResult is returned by [ScrapeResult.Kind] when neither a
// title nor a person payload is set.
var ErrEmptyScrapeResult = errors.New("scrape result contains neither title nor person")

// Scrape result kinds as reported by [ScrapeResult.Kind].
const (
	ScrapeKindTitle  = "title"
	ScrapeKindPerson = "person"
)

// ScrapeResult is the envelope posted by the scraper. Exactly one of Title or
// Person is set; the JSON schema enforces this before decoding.
type ScrapeResult struct {
	Title  *ScrapedTitle  `json:"title,omitempty"`
	Person *ScrapedPerson `json:"person,omitempty"`
}

// Kind reports which payload the envelope carries.
func (s ScrapeResult) Kind() (string, error) {
	switch {
	case s.Title != nil:
		return ScrapeKindTitle, nil
	case s.Person != nil:
		return ScrapeKindPerson, nil
	default:
		return "", ErrEmptyScrapeResult
	}
}
