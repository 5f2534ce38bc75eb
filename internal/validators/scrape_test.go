// SPDX-License-Identifier: GPL-2.0-or-later

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) ScrapeValidator {
	t.Helper()
	v, err := NewScrapeValidator()
	require.NoError(t, err)
	return v
}

func TestValidate_TitleScrape(t *testing.T) {
	v := newValidator(t)

	result, err := v.Validate([]byte(`{
		"title": {
			"id": "tt0000001",
			"timestamp": 1650000000,
			"title": "Carmencita",
			"rating": "5.7",
			"rating_count": 2042,
			"year": "1894",
			"duration": 60,
			"languages": ["None"],
			"cast": [["nm0000001", "Carmen Dauset"]],
			"directors": [["nm0000002", "William K.L. Dickson"]]
		}
	}`))
	require.NoError(t, err)

	require.NotNil(t, result.Title)
	assert.Nil(t, result.Person)
	assert.Equal(t, "tt0000001", result.Title.ID)
	assert.Equal(t, int64(1650000000), result.Title.Timestamp)
	require.NotNil(t, result.Title.RatingCount)
	assert.Equal(t, int64(2042), *result.Title.RatingCount)
	require.Len(t, result.Title.Cast, 1)
	assert.Equal(t, "nm0000001", result.Title.Cast[0].ID)
	assert.Equal(t, "Carmen Dauset", result.Title.Cast[0].Name)
}

func TestValidate_PersonScrape(t *testing.T) {
	v := newValidator(t)

	result, err := v.Validate([]byte(`{
		"person": {
			"id": "nm0000001",
			"timestamp": 1650000000,
			"name": "Carmen Dauset",
			"birthday": "1868-08-10",
			"filmography": {
				"tt0000001": {
					"id": "tt0000001",
					"credit_type": ["actress"],
					"tags": [],
					"title_info": {"title": "Carmencita", "year": "1894", "tags": ["short"]}
				}
			}
		}
	}`))
	require.NoError(t, err)

	require.NotNil(t, result.Person)
	assert.Nil(t, result.Title)
	assert.Equal(t, "nm0000001", result.Person.ID)
	require.Contains(t, result.Person.Filmography, "tt0000001")
	assert.Equal(t, []string{"actress"}, result.Person.Filmography["tt0000001"].CreditType)
}

func TestValidate_Rejections(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{
			name:    "not json",
			payload: `{"title": `,
			wantErr: ErrMalformedJSON,
		},
		{
			name:    "neither title nor person",
			payload: `{"something": {}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "missing timestamp",
			payload: `{"title": {"id": "tt0000001"}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "missing id",
			payload: `{"person": {"timestamp": 1650000000}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "cast member with too many elements",
			payload: `{"title": {"id": "tt1", "timestamp": 1, "cast": [["nm1", "Name", "extra"]]}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "cast member not a tuple",
			payload: `{"title": {"id": "tt1", "timestamp": 1, "cast": ["nm1"]}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "numeric id",
			payload: `{"title": {"id": 7, "timestamp": 1}}`,
			wantErr: ErrSchemaViolation,
		},
		{
			name:    "filmography entry without credit_type",
			payload: `{"person": {"id": "nm1", "timestamp": 1, "filmography": {"tt1": {"id": "tt1", "tags": [], "title_info": {}}}}}`,
			wantErr: ErrSchemaViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
