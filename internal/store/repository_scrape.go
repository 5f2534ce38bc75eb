// SPDX-License-Identifier: GPL-2.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/schnusch/limdberator/internal/logger"
	"github.com/schnusch/limdberator/models"
)

// scrapeRepository is the SQLite-backed implementation of [ScrapeRepository].
//
// Every scrape is persisted inside a single transaction: one row in "scrapes"
// plus a set of change-tracked attribute rows. An attribute row that already
// exists (same identifying columns and value) is not duplicated; its change
// id is merely linked to the new scrape in "changes", so repeated scrapes of
// unchanged pages stay cheap while the full observation history is kept.
type scrapeRepository struct {
	*DB
	logger *logger.Logger
}

// NewScrapeRepository constructs a [ScrapeRepository] backed by the provided
// database connection and logger.
func NewScrapeRepository(db *DB, logger *logger.Logger) ScrapeRepository {
	return &scrapeRepository{
		DB:     db,
		logger: logger,
	}
}

// StoreTitle persists a single title scrape.
//
// Scalar attributes and languages go into title_info; every credited person
// (directors, writers, cast) produces a people_info name row and a typed
// credits row.
func (r *scrapeRepository) StoreTitle(ctx context.Context, scrape models.ScrapedTitle) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "scrapeRepository.StoreTitle").
			Str("title_id", scrape.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	scrapeID, err := insertNewScrape(ctx, tx, scrape.Timestamp)
	if err != nil {
		log.Err(err).
			Str("func", "scrapeRepository.StoreTitle").
			Str("title_id", scrape.ID).
			Msg("failed to insert scrape")
		return err
	}

	for _, row := range titleInfoRows(scrape) {
		if err := insertWithChange(ctx, tx, scrapeID, row); err != nil {
			log.Err(err).
				Str("func", "scrapeRepository.StoreTitle").
				Str("title_id", scrape.ID).
				Str("table", row.table).
				Msg("failed to insert change-tracked row")
			return err
		}
	}

	credited := []struct {
		members    []models.CastMember
		creditType string
	}{
		{scrape.Directors, "director"},
		{scrape.Writers, "writer"},
		{scrape.Cast, "actor"},
	}
	for _, group := range credited {
		for _, member := range group.members {
			rows := []attrRow{
				{
					table: "people_info",
					cols:  []string{"person_id", "key", "value"},
					vals:  []any{member.ID, "name", member.Name},
				},
				{
					table: "credits",
					cols:  []string{"title_id", "credit_type", "person_id"},
					vals:  []any{scrape.ID, group.creditType, member.ID},
				},
			}
			for _, row := range rows {
				if err := insertWithChange(ctx, tx, scrapeID, row); err != nil {
					log.Err(err).
						Str("func", "scrapeRepository.StoreTitle").
						Str("title_id", scrape.ID).
						Str("person_id", member.ID).
						Str("credit_type", group.creditType).
						Msg("failed to insert credit row")
					return err
				}
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "scrapeRepository.StoreTitle").
			Str("title_id", scrape.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "scrapeRepository.StoreTitle").
		Str("title_id", scrape.ID).
		Int64("scrape_id", scrapeID).
		Msg("stored title scrape")

	return nil
}

// StorePerson persists a single person scrape.
//
// Name and birthday go into people_info; each filmography entry produces one
// credits row per credit type (a single NULL-typed row when the scrape
// carried none), credit_tags rows, and whatever title information and tags
// came along with the entry.
func (r *scrapeRepository) StorePerson(ctx context.Context, scrape models.ScrapedPerson) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "scrapeRepository.StorePerson").
			Str("person_id", scrape.ID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	scrapeID, err := insertNewScrape(ctx, tx, scrape.Timestamp)
	if err != nil {
		log.Err(err).
			Str("func", "scrapeRepository.StorePerson").
			Str("person_id", scrape.ID).
			Msg("failed to insert scrape")
		return err
	}

	for _, row := range personInfoRows(scrape) {
		if err := insertWithChange(ctx, tx, scrapeID, row); err != nil {
			log.Err(err).
				Str("func", "scrapeRepository.StorePerson").
				Str("person_id", scrape.ID).
				Msg("failed to insert person attribute row")
			return err
		}
	}

	for titleID, credit := range scrape.Filmography {
		for _, row := range filmCreditRows(scrape.ID, titleID, credit) {
			if err := insertWithChange(ctx, tx, scrapeID, row); err != nil {
				log.Err(err).
					Str("func", "scrapeRepository.StorePerson").
					Str("person_id", scrape.ID).
					Str("title_id", titleID).
					Str("table", row.table).
					Msg("failed to insert filmography row")
				return err
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "scrapeRepository.StorePerson").
			Str("person_id", scrape.ID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "scrapeRepository.StorePerson").
		Str("person_id", scrape.ID).
		Int64("scrape_id", scrapeID).
		Msg("stored person scrape")

	return nil
}

// insertNewScrape records the scrape event itself and returns its row id.
func insertNewScrape(ctx context.Context, tx *sql.Tx, timestamp int64) (int64, error) {
	res, err := tx.ExecContext(ctx, insertScrape, timestamp)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	scrapeID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return scrapeID, nil
}

// insertWithChange inserts row into its change-tracked table. If an equal row
// exists already, only its change id is linked with the current scrape;
// otherwise a new change id is allocated, linked, and the row is inserted.
func insertWithChange(ctx context.Context, tx *sql.Tx, scrapeID int64, row attrRow) error {
	query, args, err := buildChangeLookupQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var changeID int64
	scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&changeID)

	switch {
	case scanErr == nil:
		// equal row exists: associate its change id with this scrape
		if _, err := tx.ExecContext(ctx, linkChangeToScrape, changeID, scrapeID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil

	case errors.Is(scanErr, sql.ErrNoRows):
		// new row: allocate a change id, link it, insert the row
		res, err := tx.ExecContext(ctx, insertChangeID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		changeID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if _, err := tx.ExecContext(ctx, linkChangeToScrape, changeID, scrapeID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		insertQuery, insertArgs, err := buildInsertWithChangeQuery(row, changeID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}
}

// titleInfoRows flattens the scalar attributes and languages of a title
// scrape into title_info rows.
func titleInfoRows(scrape models.ScrapedTitle) []attrRow {
	rows := make([]attrRow, 0, 8)

	appendAttr := func(key string, value any) {
		rows = append(rows, attrRow{
			table: "title_info",
			cols:  []string{"title_id", "key", "value"},
			vals:  []any{scrape.ID, key, value},
		})
	}

	if scrape.Title != nil {
		appendAttr("title", *scrape.Title)
	}
	if scrape.OriginalTitle != nil {
		appendAttr("original_title", *scrape.OriginalTitle)
	}
	if scrape.Rating != nil {
		appendAttr("rating", *scrape.Rating)
	}
	if scrape.RatingCount != nil {
		appendAttr("rating_count", *scrape.RatingCount)
	}
	if scrape.Year != nil {
		appendAttr("year", *scrape.Year)
	}
	if scrape.Duration != nil {
		appendAttr("duration", *scrape.Duration)
	}
	for _, lang := range scrape.Languages {
		appendAttr("language", lang)
	}

	return rows
}

// personInfoRows flattens the scalar attributes of a person scrape into
// people_info rows.
func personInfoRows(scrape models.ScrapedPerson) []attrRow {
	rows := make([]attrRow, 0, 2)

	if scrape.Name != nil {
		rows = append(rows, attrRow{
			table: "people_info",
			cols:  []string{"person_id", "key", "value"},
			vals:  []any{scrape.ID, "name", *scrape.Name},
		})
	}
	if scrape.Birthday != nil {
		rows = append(rows, attrRow{
			table: "people_info",
			cols:  []string{"person_id", "key", "value"},
			vals:  []any{scrape.ID, "birthday", *scrape.Birthday},
		})
	}

	return rows
}

// filmCreditRows flattens one filmography entry into credits, credit_tags,
// title_info, and title_tags rows.
func filmCreditRows(personID, titleID string, credit models.FilmCredit) []attrRow {
	rows := make([]attrRow, 0, 4)

	// actual credit; an entry without credit types still records the
	// connection, with a NULL credit_type
	creditTypes := make([]any, 0, len(credit.CreditType))
	for _, ct := range credit.CreditType {
		creditTypes = append(creditTypes, ct)
	}
	if len(creditTypes) == 0 {
		creditTypes = append(creditTypes, nil)
	}
	for _, ct := range creditTypes {
		rows = append(rows, attrRow{
			table: "credits",
			cols:  []string{"title_id", "credit_type", "person_id"},
			vals:  []any{titleID, ct, personID},
		})
	}

	// credit tags
	for _, tag := range credit.Tags {
		rows = append(rows, attrRow{
			table: "credit_tags",
			cols:  []string{"title_id", "person_id", "tag"},
			vals:  []any{titleID, personID, tag},
		})
	}

	// title information carried by the filmography entry
	titleInfo := models.ScrapedTitle{
		ID:    titleID,
		Title: credit.TitleInfo.Title,
		Year:  credit.TitleInfo.Year,
	}
	rows = append(rows, titleInfoRows(titleInfo)...)

	// title tags
	for _, tag := range credit.TitleInfo.Tags {
		rows = append(rows, attrRow{
			table: "title_tags",
			cols:  []string{"title_id", "tag"},
			vals:  []any{titleID, tag},
		})
	}

	return rows
}
