// Package postgresql persists domain entities in a single key/value style
// records table, mirroring the store contract the calculation core assumes:
//
//	CREATE TABLE records (
//	    record_type TEXT        NOT NULL,
//	    id          TEXT        NOT NULL,
//	    school_id   TEXT        NOT NULL,
//	    payload     JSONB       NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (record_type, id)
//	);
//	CREATE INDEX records_school_idx ON records (school_id, record_type);
//
// Keys are (record_type, id); monthly attendance uses record types like
// "attendance#2023-07" so a school's records for a month or a whole year
// resolve with one prefix query.
package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jukulabs/juku-backend-go/internal/pkg/database"
)

var errRecordNotFound = errors.New("record not found")

func getRecord(ctx context.Context, db *database.DB, recordType, id string) ([]byte, error) {
	q := GetQuerier(ctx, db)

	var payload []byte
	err := q.QueryRow(ctx,
		`SELECT payload FROM records WHERE record_type = $1 AND id = $2`,
		recordType, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errRecordNotFound
		}
		return nil, fmt.Errorf("get record (%s, %s): %w", recordType, id, err)
	}

	return payload, nil
}

func listRecords(ctx context.Context, db *database.DB, recordType string) ([][]byte, error) {
	q := GetQuerier(ctx, db)

	rows, err := q.Query(ctx,
		`SELECT payload FROM records WHERE record_type = $1 ORDER BY id`,
		recordType,
	)
	if err != nil {
		return nil, fmt.Errorf("list records %s: %w", recordType, err)
	}
	defer rows.Close()

	return collectPayloads(rows)
}

func queryBySchool(ctx context.Context, db *database.DB, schoolID, recordTypePrefix string) ([][]byte, error) {
	q := GetQuerier(ctx, db)

	rows, err := q.Query(ctx,
		`SELECT payload FROM records
		 WHERE school_id = $1 AND record_type LIKE $2 || '%'
		 ORDER BY record_type, id`,
		schoolID, recordTypePrefix,
	)
	if err != nil {
		return nil, fmt.Errorf("query records %s* for school %s: %w", recordTypePrefix, schoolID, err)
	}
	defer rows.Close()

	return collectPayloads(rows)
}

func saveRecord(ctx context.Context, db *database.DB, recordType, id, schoolID string, payload []byte) error {
	q := GetQuerier(ctx, db)

	_, err := q.Exec(ctx,
		`INSERT INTO records (record_type, id, school_id, payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (record_type, id) DO UPDATE SET
		     school_id = EXCLUDED.school_id,
		     payload = EXCLUDED.payload,
		     updated_at = NOW()`,
		recordType, id, schoolID, payload,
	)
	if err != nil {
		return fmt.Errorf("save record (%s, %s): %w", recordType, id, err)
	}
	return nil
}

func deleteRecord(ctx context.Context, db *database.DB, recordType, id string) error {
	q := GetQuerier(ctx, db)

	tag, err := q.Exec(ctx,
		`DELETE FROM records WHERE record_type = $1 AND id = $2`,
		recordType, id,
	)
	if err != nil {
		return fmt.Errorf("delete record (%s, %s): %w", recordType, id, err)
	}
	if tag.RowsAffected() == 0 {
		return errRecordNotFound
	}
	return nil
}

func collectPayloads(rows pgx.Rows) ([][]byte, error) {
	var payloads [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record payload: %w", err)
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return payloads, nil
}
