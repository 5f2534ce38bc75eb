// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/models"
)

// catalogRepository is the SQLite-backed implementation of
// [CatalogRepository]. It reads the change-tracked tables back into
// aggregated per-title and per-person records: every observed value together
// with the timestamp of the most recent scrape that reported it.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

// GetTitle assembles the read model of a single title: attribute history,
// tags, and credits. Returns [ErrTitleNotFound] when no scrape has ever
// mentioned the title.
func (c *catalogRepository) GetTitle(ctx context.Context, titleID string) (models.TitleRecord, error) {
	log := logger.FromContext(ctx)

	record := models.TitleRecord{ID: titleID}

	attrs, err := c.queryAttributes(ctx, "title_info", "title_id", titleID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetTitle").
			Str("title_id", titleID).
			Msg("failed to query title attributes")
		return models.TitleRecord{}, err
	}
	record.Attributes = attrs

	tags, err := c.queryTitleTags(ctx, titleID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetTitle").
			Str("title_id", titleID).
			Msg("failed to query title tags")
		return models.TitleRecord{}, err
	}
	record.Tags = tags

	credits, err := c.queryCredits(ctx, "title_id", titleID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetTitle").
			Str("title_id", titleID).
			Msg("failed to query title credits")
		return models.TitleRecord{}, err
	}
	record.Credits = credits

	if len(record.Attributes) == 0 && len(record.Tags) == 0 && len(record.Credits) == 0 {
		return models.TitleRecord{}, ErrTitleNotFound
	}

	return record, nil
}

// GetPerson assembles the read model of a single person: attribute history
// and credits. Returns [ErrPersonNotFound] when no scrape has ever mentioned
// the person.
func (c *catalogRepository) GetPerson(ctx context.Context, personID string) (models.PersonRecord, error) {
	log := logger.FromContext(ctx)

	record := models.PersonRecord{ID: personID}

	attrs, err := c.queryAttributes(ctx, "people_info", "person_id", personID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetPerson").
			Str("person_id", personID).
			Msg("failed to query person attributes")
		return models.PersonRecord{}, err
	}
	record.Attributes = attrs

	credits, err := c.queryCredits(ctx, "person_id", personID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.GetPerson").
			Str("person_id", personID).
			Msg("failed to query person credits")
		return models.PersonRecord{}, err
	}
	record.Credits = credits

	if len(record.Attributes) == 0 && len(record.Credits) == 0 {
		return models.PersonRecord{}, ErrPersonNotFound
	}

	return record, nil
}

func (c *catalogRepository) queryAttributes(ctx context.Context, table, idColumn, id string) ([]models.AttributeValue, error) {
	query, args, err := buildAttributeHistoryQuery(table, idColumn, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	attrs := make([]models.AttributeValue, 0, 16)
	for rows.Next() {
		var attr models.AttributeValue
		var value []byte

		if scanErr := rows.Scan(&attr.Key, &value, &attr.LastSeen); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		attr.Value = string(value)

		attrs = append(attrs, attr)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attrs, nil
}

func (c *catalogRepository) queryTitleTags(ctx context.Context, titleID string) ([]models.TagValue, error) {
	query, args, err := buildTitleTagHistoryQuery(titleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.TagValue, 0, 8)
	for rows.Next() {
		var tag sql.NullString
		var lastSeen int64

		if scanErr := rows.Scan(&tag, &lastSeen); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, models.TagValue{Tag: tag.String, LastSeen: lastSeen})
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

func (c *catalogRepository) queryCredits(ctx context.Context, idColumn, id string) ([]models.CreditValue, error) {
	query, args, err := buildCreditHistoryQuery(idColumn, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credits := make([]models.CreditValue, 0, 16)
	for rows.Next() {
		var credit models.CreditValue
		var creditType sql.NullString

		if scanErr := rows.Scan(&credit.TitleID, &credit.PersonID, &creditType, &credit.LastSeen); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if creditType.Valid {
			credit.CreditType = &creditType.String
		}

		credits = append(credits, credit)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return credits, nil
}
