// SPDX-License-Identifier: GPL-2.0-or-later

package models

// AttributeValue is one observed value of a title or person attribute,
// together with the timestamp of the most recent scrape that reported it.
// Because scrapes are append-only, the same key can appear with several
// values over time (e.g. a rating that changed between scrapes).
type AttributeValue struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	LastSeen int64  `json:"last_seen"`
}

// CreditValue is one observed credit connecting a person to a title.
// CreditType is nil when the scrape carried a credit without a type.
type CreditValue struct {
	TitleID    string  `json:"title_id"`
	PersonID   string  `json:"person_id"`
	CreditType *string `json:"credit_type"`
	LastSeen   int64   `json:"last_seen"`
}

// TagValue is one observed tag with its most recent sighting.
type TagValue struct {
	Tag      string `json:"tag"`
	LastSeen int64  `json:"last_seen"`
}

// TitleRecord is the aggregated read model of everything ever scraped about
// a single title.
type TitleRecord struct {
	ID         string           `json:"id"`
	Attributes []AttributeValue `json:"attributes"`
	Tags       []TagValue       `json:"tags"`
	Credits    []CreditValue    `json:"credits"`
}

// PersonRecord is the aggregated read model of everything ever scraped about
// a single person.
type PersonRecord struct {
	ID         string           `json:"id"`
	Attributes []AttributeValue `json:"attributes"`
	Credits    []CreditValue    `json:"credits"`
}
