// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	insertScrape       = `INSERT INTO scrapes (timestamp) VALUES (?);`
	insertChangeID     = `INSERT INTO _changes (id) VALUES (NULL);`
	linkChangeToScrape = `INSERT INTO changes (id, scrape_id) VALUES (?, ?);`
)

// attrRow is one row destined for a change-tracked table. Column order is
// preserved so the generated SQL is deterministic.
type attrRow struct {
	table string
	cols  []string
	vals  []any
}

// buildChangeLookupQuery builds the SELECT that checks whether an identical
// row already exists in the target table. A nil value matches rows where the
// column IS NULL (e.g. credits without a credit type).
func buildChangeLookupQuery(row attrRow) (string, []any, error) {
	eq := make(sq.Eq, len(row.cols))
	for i, col := range row.cols {
		eq[col] = row.vals[i]
	}

	return sq.Select("change_id").
		From(row.table).
		Where(eq).
		Limit(1).
		ToSql()
}

// buildInsertWithChangeQuery builds the INSERT for a brand-new row, carrying
// the freshly allocated change id.
func buildInsertWithChangeQuery(row attrRow, changeID int64) (string, []any, error) {
	cols := make([]string, 0, len(row.cols)+1)
	cols = append(cols, row.cols...)
	cols = append(cols, "change_id")

	vals := make([]any, 0, len(row.vals)+1)
	vals = append(vals, row.vals...)
	vals = append(vals, changeID)

	return sq.Insert(row.table).
		Columns(cols...).
		Values(vals...).
		ToSql()
}

// buildAttributeHistoryQuery builds the grouped SELECT returning every
// observed (key, value) pair of a title or person together with the timestamp
// of the most recent scrape that reported it.
func buildAttributeHistoryQuery(table, idColumn, id string) (string, []any, error) {
	return sq.Select(table+".key", table+".value", "MAX(scrapes.timestamp) AS last_seen").
		From(table).
		Join("changes ON changes.id = " + table + ".change_id").
		Join("scrapes ON scrapes.id = changes.scrape_id").
		Where(sq.Eq{table + "." + idColumn: id}).
		GroupBy(table+".key", table+".value").
		OrderBy(table + ".key").
		ToSql()
}

// buildTitleTagHistoryQuery builds the grouped SELECT over a title's tags.
func buildTitleTagHistoryQuery(titleID string) (string, []any, error) {
	return sq.Select("title_tags.tag", "MAX(scrapes.timestamp) AS last_seen").
		From("title_tags").
		Join("changes ON changes.id = title_tags.change_id").
		Join("scrapes ON scrapes.id = changes.scrape_id").
		Where(sq.Eq{"title_tags.title_id": titleID}).
		GroupBy("title_tags.tag").
		OrderBy("title_tags.tag").
		ToSql()
}

// buildCreditHistoryQuery builds the grouped SELECT over credits filtered by
// either "title_id" or "person_id".
func buildCreditHistoryQuery(idColumn, id string) (string, []any, error) {
	return sq.Select("credits.title_id", "credits.person_id", "credits.credit_type", "MAX(scrapes.timestamp) AS last_seen").
		From("credits").
		Join("changes ON changes.id = credits.change_id").
		Join("scrapes ON scrapes.id = changes.scrape_id").
		Where(sq.Eq{"credits." + idColumn: id}).
		GroupBy("credits.title_id", "credits.person_id", "credits.credit_type").
		OrderBy("credits.title_id", "credits.person_id").
		ToSql()
}
