// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildChangeLookupQuery_SQLContainsParts(t *testing.T) {
	row := attrRow{
		table: "title_info",
		cols:  []string{"title_id", "key", "value"},
		vals:  []any{"tt0000001", "title", "Carmencita"},
	}

	query, args, err := buildChangeLookupQuery(row)
	require.NoError(t, err)

	// args checks (squirrel orders Eq columns alphabetically)
	require.Len(t, args, 3)
	assert.ElementsMatch(t, []any{"tt0000001", "title", "Carmencita"}, args)

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select change_id")
	require.Contains(t, q, "from title_info")
	require.Contains(t, q, "where")
	require.Contains(t, q, "title_id")
	require.Contains(t, q, "limit 1")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildChangeLookupQuery_NullValueUsesIsNull(t *testing.T) {
	row := attrRow{
		table: "credits",
		cols:  []string{"title_id", "credit_type", "person_id"},
		vals:  []any{"tt0000001", nil, "nm0000001"},
	}

	query, args, err := buildChangeLookupQuery(row)
	require.NoError(t, err)

	// the NULL credit type must not become a "= ?" comparison
	require.Contains(t, strings.ToLower(query), "credit_type is null")
	require.Len(t, args, 2)
}

func Test_buildInsertWithChangeQuery(t *testing.T) {
	row := attrRow{
		table: "people_info",
		cols:  []string{"person_id", "key", "value"},
		vals:  []any{"nm0000001", "name", "Fred Ott"},
	}

	query, args, err := buildInsertWithChangeQuery(row, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into people_info")
	require.Contains(t, q, "person_id")
	require.Contains(t, q, "change_id")

	// declared column order is preserved, change_id comes last
	require.Equal(t, []any{"nm0000001", "name", "Fred Ott", int64(42)}, args)
}

func Test_buildAttributeHistoryQuery(t *testing.T) {
	query, args, err := buildAttributeHistoryQuery("title_info", "title_id", "tt0000001")
	require.NoError(t, err)

	require.Equal(t, []any{"tt0000001"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from title_info")
	require.Contains(t, q, "join changes on changes.id = title_info.change_id")
	require.Contains(t, q, "join scrapes on scrapes.id = changes.scrape_id")
	require.Contains(t, q, "max(scrapes.timestamp)")
	require.Contains(t, q, "group by title_info.key, title_info.value")
}

func Test_buildTitleTagHistoryQuery(t *testing.T) {
	query, args, err := buildTitleTagHistoryQuery("tt0000001")
	require.NoError(t, err)

	require.Equal(t, []any{"tt0000001"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from title_tags")
	require.Contains(t, q, "group by title_tags.tag")
}

func Test_buildCreditHistoryQuery(t *testing.T) {
	tests := []struct {
		name     string
		idColumn string
		id       string
	}{
		{name: "by title", idColumn: "title_id", id: "tt0000001"},
		{name: "by person", idColumn: "person_id", id: "nm0000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCreditHistoryQuery(tt.idColumn, tt.id)
			require.NoError(t, err)

			require.Equal(t, []any{tt.id}, args)

			q := strings.ToLower(query)
			require.Contains(t, q, "from credits")
			require.Contains(t, q, "credits."+tt.idColumn)
			require.Contains(t, q, "group by credits.title_id, credits.person_id, credits.credit_type")
		})
	}
}
