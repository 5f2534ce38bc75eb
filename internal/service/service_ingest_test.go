// SPDX-License-Identifier: GPL-2.0-or-later

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/internal/store"
	"github.com/schnusch/limdberator/internal/telemetry"
	"github.com/schnusch/limdberator/models"
)

type scrapeRepoStub struct {
	storedTitles  []models.ScrapedTitle
	storedPersons []models.ScrapedPerson
	err           error
}

func (s *scrapeRepoStub) StoreTitle(_ context.Context, scrape models.ScrapedTitle) error {
	if s.err != nil {
		return s.err
	}
	s.storedTitles = append(s.storedTitles, scrape)
	return nil
}

func (s *scrapeRepoStub) StorePerson(_ context.Context, scrape models.ScrapedPerson) error {
	if s.err != nil {
		return s.err
	}
	s.storedPersons = append(s.storedPersons, scrape)
	return nil
}

func newIngestFixture(repo *scrapeRepoStub) (IngestService, *telemetry.Metrics) {
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	return NewIngestService(repo, metrics, logger.Nop()), metrics
}

func TestStoreScrapeResult_Title(t *testing.T) {
	repo := &scrapeRepoStub{}
	svc, metrics := newIngestFixture(repo)

	title := "Carmencita"
	err := svc.StoreScrapeResult(context.Background(), models.ScrapeResult{
		Title: &models.ScrapedTitle{ID: "tt0000001", Timestamp: 1650000000, Title: &title},
	})
	require.NoError(t, err)

	require.Len(t, repo.storedTitles, 1)
	assert.Equal(t, "tt0000001", repo.storedTitles[0].ID)
	assert.Empty(t, repo.storedPersons)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ScrapesStored.WithLabelValues(models.ScrapeKindTitle)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ScrapeStoreErrors))
}

func TestStoreScrapeResult_Person(t *testing.T) {
	repo := &scrapeRepoStub{}
	svc, metrics := newIngestFixture(repo)

	err := svc.StoreScrapeResult(context.Background(), models.ScrapeResult{
		Person: &models.ScrapedPerson{ID: "nm0000001", Timestamp: 1650000000},
	})
	require.NoError(t, err)

	require.Len(t, repo.storedPersons, 1)
	assert.Equal(t, "nm0000001", repo.storedPersons[0].ID)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ScrapesStored.WithLabelValues(models.ScrapeKindPerson)))
}

func TestStoreScrapeResult_Empty(t *testing.T) {
	repo := &scrapeRepoStub{}
	svc, metrics := newIngestFixture(repo)

	err := svc.StoreScrapeResult(context.Background(), models.ScrapeResult{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidScrapePayload)
	assert.ErrorIs(t, err, models.ErrEmptyScrapeResult)

	assert.Empty(t, repo.storedTitles)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ScrapeStoreErrors))
}

func TestStoreScrapeResult_RepositoryError(t *testing.T) {
	repo := &scrapeRepoStub{err: store.ErrExecutingQuery}
	svc, metrics := newIngestFixture(repo)

	err := svc.StoreScrapeResult(context.Background(), models.ScrapeResult{
		Title: &models.ScrapedTitle{ID: "tt0000001", Timestamp: 1650000000},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ScrapeStoreErrors))
}

type catalogRepoStub struct {
	title  models.TitleRecord
	person models.PersonRecord
	err    error
}

func (s *catalogRepoStub) GetTitle(context.Context, string) (models.TitleRecord, error) {
	return s.title, s.err
}

func (s *catalogRepoStub) GetPerson(context.Context, string) (models.PersonRecord, error) {
	return s.person, s.err
}

func TestCatalogService_PassThrough(t *testing.T) {
	repo := &catalogRepoStub{
		title:  models.TitleRecord{ID: "tt0000001"},
		person: models.PersonRecord{ID: "nm0000001"},
	}
	svc := NewCatalogService(repo, logger.Nop())

	title, err := svc.GetTitle(context.Background(), "tt0000001")
	require.NoError(t, err)
	assert.Equal(t, "tt0000001", title.ID)

	person, err := svc.GetPerson(context.Background(), "nm0000001")
	require.NoError(t, err)
	assert.Equal(t, "nm0000001", person.ID)
}

func TestCatalogService_NotFound(t *testing.T) {
	svc := NewCatalogService(&catalogRepoStub{err: store.ErrTitleNotFound}, logger.Nop())

	_, err := svc.GetTitle(context.Background(), "tt9999999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrTitleNotFound))
}
