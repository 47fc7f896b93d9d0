// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

package emulator

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/trippr-app/trippr-admin/models"
)

var errDocumentNotFound = errors.New("document not found")

// docStore keeps collections of schemaless JSON documents in a single SQLite
// table. Filter evaluation happens in Go after loading the collection: the
// emulator favors fidelity to the hosted store's comparison rules over query
// pushdown.
type docStore struct {
	db *sql.DB
}

func newDocStore(db *sql.DB) *docStore {
	return &docStore{db: db}
}

func (s *docStore) list(collection string) ([]json.RawMessage, error) {
	query, args, err := sq.Select("id", "body").
		From("documents").
		Where(sq.Eq{"collection": collection}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var id, body string
		if err = rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc, err := withID(body, id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (s *docStore) query(collection string, filters []models.Filter) ([]json.RawMessage, error) {
	docs, err := s.list(collection)
	if err != nil {
		return nil, err
	}

	matched := docs[:0]
	for _, doc := range docs {
		ok, err := matchesAll(doc, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, doc)
		}
	}

	return matched, nil
}

func (s *docStore) get(collection, id string) (json.RawMessage, error) {
	query, args, err := sq.Select("body").
		From("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var body string
	if err = s.db.QueryRow(query, args...).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errDocumentNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	return withID(body, id)
}

func (s *docStore) create(collection string, body json.RawMessage) (string, error) {
	id := uuid.NewString()
	if err := s.set(collection, id, body); err != nil {
		return "", err
	}
	return id, nil
}

func (s *docStore) set(collection, id string, body json.RawMessage) error {
	if !json.Valid(body) {
		return fmt.Errorf("document body is not valid JSON")
	}

	query, args, err := sq.Insert("documents").
		Columns("collection", "id", "body").
		Values(collection, id, string(body)).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}

	return nil
}

// patch merges the top-level fields of the patch body into the stored
// document. Nested objects are replaced wholesale, matching the hosted
// store's shallow update semantics.
func (s *docStore) patch(collection, id string, patch json.RawMessage) error {
	current, err := s.get(collection, id)
	if err != nil {
		return err
	}

	var doc, fields map[string]json.RawMessage
	if err = json.Unmarshal(current, &doc); err != nil {
		return fmt.Errorf("decode stored document: %w", err)
	}
	if err = json.Unmarshal(patch, &fields); err != nil {
		return fmt.Errorf("decode patch body: %w", err)
	}

	for key, value := range fields {
		doc[key] = value
	}
	delete(doc, "id")

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode merged document: %w", err)
	}

	return s.set(collection, id, merged)
}

func (s *docStore) delete(collection, id string) error {
	query, args, err := sq.Delete("documents").
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}

	return nil
}

// withID returns the document body with its id injected as a top-level field.
func withID(body, id string) (json.RawMessage, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}

	rawID, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	doc["id"] = rawID

	return json.Marshal(doc)
}

func matchesAll(doc json.RawMessage, filters []models.Filter) (bool, error) {
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false, fmt.Errorf("decode document for filtering: %w", err)
	}

	for _, filter := range filters {
		value, ok := fields[filter.Field]
		if !ok {
			return false, nil
		}
		matched, err := matches(value, filter)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}

	return true, nil
}

func matches(value any, filter models.Filter) (bool, error) {
	switch want := filter.Value.(type) {
	case string:
		got, ok := value.(string)
		if !ok {
			return false, nil
		}
		if filter.Fold {
			got = strings.ToLower(got)
			want = strings.ToLower(want)
		}
		return compareStrings(got, want, filter.Op)

	case float64:
		got, ok := value.(float64)
		if !ok {
			return false, nil
		}
		return compareFloats(got, want, filter.Op)

	case bool:
		got, ok := value.(bool)
		if !ok || filter.Op != models.OpEqual {
			return false, nil
		}
		return got == want, nil

	default:
		return false, fmt.Errorf("unsupported filter value type %T", filter.Value)
	}
}

func compareStrings(got, want, op string) (bool, error) {
	switch op {
	case models.OpEqual:
		return got == want, nil
	case models.OpGreaterOrEqual:
		return got >= want, nil
	case models.OpLessOrEqual:
		return got <= want, nil
	default:
		return false, fmt.Errorf("unsupported filter op %q", op)
	}
}

func compareFloats(got, want float64, op string) (bool, error) {
	switch op {
	case models.OpEqual:
		return got == want, nil
	case models.OpGreaterOrEqual:
		return got >= want, nil
	case models.OpLessOrEqual:
		return got <= want, nil
	default:
		return false, fmt.Errorf("unsupported filter op %q", op)
	}
}
