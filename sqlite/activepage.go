package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ devhub.ActivePageService = (*ActivePageService)(nil)

// ActivePageService implements devhub.ActivePageService using SQLite.
type ActivePageService struct {
	db *DB
}

// NewActivePageService creates a new ActivePageService.
func NewActivePageService(db *DB) *ActivePageService {
	return &ActivePageService{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectActivePages = `
	SELECT id, external_id, title, slug, category, source_url, selected_at, last_synced, active, updated_at
	FROM active_pages
	ORDER BY selected_at DESC, external_id ASC
`

// FindActivePages returns every stored page, newest selection first.
func (s *ActivePageService) FindActivePages(ctx context.Context) ([]*devhub.ActivePage, error) {
	return findActivePages(ctx, s.db.db)
}

// LastUpdated returns the latest modification time, or now if the
// registry is empty.
func (s *ActivePageService) LastUpdated(ctx context.Context) (time.Time, error) {
	var updatedAt sql.NullString
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(updated_at) FROM active_pages").Scan(&updatedAt); err != nil {
		return time.Time{}, err
	}
	if !updatedAt.Valid {
		return s.db.now(), nil
	}
	return parseTime(updatedAt.String, "updated_at")
}

// SyncActivePages replaces the registry's active set with inputs.
// Every input is upserted by external ID and every stored page missing from
// inputs is marked inactive, all within one transaction. Slugs must be unique
// among active pages only, so a swept page's slug is free for reuse and pages
// may swap slugs within one sync.
func (s *ActivePageService) SyncActivePages(ctx context.Context, inputs []devhub.ActivePageInput) ([]*devhub.ActivePage, error) {
	seen := make(map[string]bool, len(inputs))
	slugs := make(map[string]string, len(inputs))
	ids := make([]string, 0, len(inputs))
	for i := range inputs {
		in := &inputs[i]
		if err := in.Validate(); err != nil {
			return nil, err
		}
		if seen[in.ExternalID] {
			return nil, devhub.Errorf(devhub.EINVALID, "duplicate page id %q", in.ExternalID)
		}
		seen[in.ExternalID] = true
		ids = append(ids, in.ExternalID)

		if in.Slug == "" || !in.IsActive() {
			continue
		}
		if other, ok := slugs[in.Slug]; ok {
			return nil, devhub.Errorf(devhub.ECONFLICT, "slug %q is used by both %q and %q", in.Slug, other, in.ExternalID)
		}
		slugs[in.Slug] = in.ExternalID
	}

	idList, err := jsonArray(ids)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := formatTime(s.db.now())

	// Sweep everything outside the submitted set, then release the slugs of
	// submitted pages so the upserts below only compete with each other.
	if _, err := tx.ExecContext(ctx, `
		UPDATE active_pages SET active = 0, updated_at = ?
		WHERE active = 1 AND external_id NOT IN (SELECT value FROM json_each(?))
	`, now, idList); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE active_pages SET slug = ''
		WHERE external_id IN (SELECT value FROM json_each(?))
	`, idList); err != nil {
		return nil, err
	}

	for _, in := range inputs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO active_pages (id, external_id, title, slug, category, source_url, selected_at, last_synced, active, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(external_id) DO UPDATE SET
				title = excluded.title,
				slug = excluded.slug,
				category = excluded.category,
				source_url = excluded.source_url,
				last_synced = excluded.last_synced,
				active = excluded.active,
				updated_at = excluded.updated_at
		`, uuid.New().String(), in.ExternalID, in.Title, in.Slug, in.Category, in.SourceURL,
			now, now, in.IsActive(), now)
		if isUniqueViolation(err) {
			return nil, devhub.Errorf(devhub.ECONFLICT, "slug %q is already used by another page", in.Slug)
		}
		if err != nil {
			return nil, err
		}
	}

	pages, err := findActivePages(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return pages, nil
}

// DeleteActivePages permanently removes pages by external ID and returns
// the remaining set. Unknown IDs are ignored.
func (s *ActivePageService) DeleteActivePages(ctx context.Context, ids []string) ([]*devhub.ActivePage, error) {
	var trimmed []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			trimmed = append(trimmed, id)
		}
	}
	if len(trimmed) == 0 {
		return nil, devhub.Errorf(devhub.EINVALID, "at least one page id required")
	}
	idList, err := jsonArray(trimmed)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM active_pages WHERE external_id IN (SELECT value FROM json_each(?))", idList); err != nil {
		return nil, err
	}

	pages, err := findActivePages(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return pages, nil
}

func findActivePages(ctx context.Context, q queryer) ([]*devhub.ActivePage, error) {
	rows, err := q.QueryContext(ctx, selectActivePages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*devhub.ActivePage{}
	for rows.Next() {
		page, err := scanActivePage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

func scanActivePage(rows *sql.Rows) (*devhub.ActivePage, error) {
	var page devhub.ActivePage
	var selectedAt, updatedAt string
	var lastSynced sql.NullString

	if err := rows.Scan(&page.ID, &page.ExternalID, &page.Title, &page.Slug, &page.Category, &page.SourceURL,
		&selectedAt, &lastSynced, &page.Active, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if page.SelectedAt, err = parseTime(selectedAt, "selected_at"); err != nil {
		return nil, err
	}
	if page.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	if lastSynced.Valid {
		t, err := parseTime(lastSynced.String, "last_synced")
		if err != nil {
			return nil, err
		}
		page.LastSynced = &t
	}
	return &page, nil
}
