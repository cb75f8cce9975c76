// Package store persists documents to a local sqlite database. The write path
// is whole-document: every save rewrites all tables from a snapshot inside one
// transaction, which keeps the schema honest and makes partially written state
// impossible.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"folio/common"
	"folio/config"
	"folio/document"
)

// ErrNoDocument is returned by Load when the database is valid but holds no
// document yet.
var ErrNoDocument = errors.New("storage contains no document")

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS folios (
	id            TEXT PRIMARY KEY,
	idx           INTEGER NOT NULL,
	orientation   TEXT    NOT NULL,
	margin_top    REAL    NOT NULL,
	margin_right  REAL    NOT NULL,
	margin_bottom REAL    NOT NULL,
	margin_left   REAL    NOT NULL,
	section_id    TEXT    NOT NULL DEFAULT '',
	locked        INTEGER NOT NULL DEFAULT 0,
	content       BLOB,
	created_at    INTEGER NOT NULL,
	updated_at    INTEGER NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS sections (
	id         TEXT PRIMARY KEY,
	idx        INTEGER NOT NULL,
	name       TEXT    NOT NULL,
	numbering  TEXT    NOT NULL,
	collapsed  INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS contents (
	id                 TEXT PRIMARY KEY,
	kind               TEXT    NOT NULL,
	segments           TEXT    NOT NULL,
	height             REAL    NOT NULL,
	show_on_first_page INTEGER NOT NULL,
	different_odd_even INTEGER NOT NULL,
	even_segments      TEXT    NOT NULL DEFAULT '',
	show_border        INTEGER NOT NULL,
	created_at         INTEGER NOT NULL,
	updated_at         INTEGER NOT NULL
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS overrides (
	folio_id   TEXT NOT NULL,
	slot       TEXT NOT NULL,
	state      TEXT NOT NULL,
	content_id TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (folio_id, slot)
) WITHOUT ROWID;

CREATE TABLE IF NOT EXISTS defaults (
	slot       TEXT PRIMARY KEY,
	content_id TEXT NOT NULL
) WITHOUT ROWID;
`

// Store is a single-connection handle to one document database. It is not
// safe for concurrent use, matching the document it persists.
type Store struct {
	conn *sqlite.Conn
	log  *zap.Logger
}

// Open creates or opens a document database at path (":memory:" works for
// tests) and applies the schema. Re-opening an existing database is a no-op
// schema-wise.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	flags := []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL}
	if path == ":memory:" {
		flags = []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenMemory}
	}
	conn, err := sqlite.OpenConn(path, flags...)
	if err != nil {
		return nil, fmt.Errorf("open document db %s: %w", path, err)
	}
	if err := sqlitex.ExecScript(conn, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := sqlitex.Execute(conn,
		`INSERT INTO meta(key, value) VALUES('schema_version', ?) ON CONFLICT(key) DO NOTHING`,
		&sqlitex.ExecOptions{Args: []any{fmt.Sprintf("%d", schemaVersion)}}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("record schema version: %w", err)
	}
	return &Store{conn: conn, log: log}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Save rewrites the database from the document's current state in one
// transaction and marks the document clean on success.
func (s *Store) Save(d *document.Document) (err error) {
	snap := d.Snapshot()

	defer sqlitex.Save(s.conn)(&err)

	for _, table := range []string{"folios", "sections", "contents", "overrides", "defaults"} {
		if err := sqlitex.Execute(s.conn, "DELETE FROM "+table, nil); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := s.saveMeta(snap); err != nil {
		return err
	}
	if err := s.saveFolios(snap.Folios); err != nil {
		return err
	}
	if err := s.saveSections(snap.Sections); err != nil {
		return err
	}
	if err := s.saveContents(snap.Contents); err != nil {
		return err
	}
	if err := s.saveAssignments(common.SlotHeader, snap.HeaderAssignments); err != nil {
		return err
	}
	if err := s.saveAssignments(common.SlotFooter, snap.FooterAssignments); err != nil {
		return err
	}
	if err := s.saveDefault(common.SlotHeader, snap.DefaultHeaderID); err != nil {
		return err
	}
	if err := s.saveDefault(common.SlotFooter, snap.DefaultFooterID); err != nil {
		return err
	}

	d.MarkClean()
	s.log.Debug("Saved document",
		zap.Int("folios", len(snap.Folios)),
		zap.Int("sections", len(snap.Sections)),
		zap.Int("contents", len(snap.Contents)))
	return nil
}

func (s *Store) saveMeta(snap document.Snapshot) error {
	for key, value := range map[string]string{
		"title":           snap.Title,
		"author":          snap.Author,
		"active_folio_id": snap.ActiveFolioID,
	} {
		err := sqlitex.Execute(s.conn,
			`INSERT INTO meta(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
			&sqlitex.ExecOptions{Args: []any{key, value}})
		if err != nil {
			return fmt.Errorf("save meta %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) saveFolios(folios []document.Folio) error {
	for _, f := range folios {
		err := sqlitex.Execute(s.conn, `
			INSERT INTO folios(id, idx, orientation,
				margin_top, margin_right, margin_bottom, margin_left,
				section_id, locked, content, created_at, updated_at)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{
				f.ID, f.Index, f.Orientation.String(),
				f.Margins.Top, f.Margins.Right, f.Margins.Bottom, f.Margins.Left,
				f.SectionID, f.Locked, []byte(f.Content), f.CreatedAt.Unix(), f.UpdatedAt.Unix(),
			}})
		if err != nil {
			return fmt.Errorf("save folio %s: %w", f.ID, err)
		}
	}
	return nil
}

func (s *Store) saveSections(sections []document.Section) error {
	for _, sec := range sections {
		err := sqlitex.Execute(s.conn, `
			INSERT INTO sections(id, idx, name, numbering, collapsed, created_at, updated_at)
			VALUES(?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{
				sec.ID, sec.Index, sec.Name, sec.Numbering.String(), sec.Collapsed,
				sec.CreatedAt.Unix(), sec.UpdatedAt.Unix(),
			}})
		if err != nil {
			return fmt.Errorf("save section %s: %w", sec.ID, err)
		}
	}
	return nil
}

func (s *Store) saveContents(contents []document.Content) error {
	for _, c := range contents {
		segments, err := json.Marshal(c.Segments)
		if err != nil {
			return fmt.Errorf("encode segments of %s: %w", c.ID, err)
		}
		even := ""
		if c.EvenSegments != nil {
			b, err := json.Marshal(c.EvenSegments)
			if err != nil {
				return fmt.Errorf("encode even segments of %s: %w", c.ID, err)
			}
			even = string(b)
		}
		err = sqlitex.Execute(s.conn, `
			INSERT INTO contents(id, kind, segments, height,
				show_on_first_page, different_odd_even, even_segments,
				show_border, created_at, updated_at)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{
				c.ID, c.Kind.String(), string(segments), c.Height,
				c.ShowOnFirstPage, c.DifferentOddEven, even,
				c.ShowBorder, c.CreatedAt.Unix(), c.UpdatedAt.Unix(),
			}})
		if err != nil {
			return fmt.Errorf("save content %s: %w", c.ID, err)
		}
	}
	return nil
}

func (s *Store) saveAssignments(slot common.Slot, assignments map[string]document.Assignment) error {
	for folioID, a := range assignments {
		err := sqlitex.Execute(s.conn,
			`INSERT INTO overrides(folio_id, slot, state, content_id) VALUES(?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{folioID, slot.String(), a.State.String(), a.ContentID}})
		if err != nil {
			return fmt.Errorf("save %s override for folio %s: %w", slot, folioID, err)
		}
	}
	return nil
}

func (s *Store) saveDefault(slot common.Slot, contentID string) error {
	if len(contentID) == 0 {
		return nil
	}
	err := sqlitex.Execute(s.conn,
		`INSERT INTO defaults(slot, content_id) VALUES(?, ?)`,
		&sqlitex.ExecOptions{Args: []any{slot.String(), contentID}})
	if err != nil {
		return fmt.Errorf("save %s default: %w", slot, err)
	}
	return nil
}

// Load rebuilds a document from the database. An empty database yields
// ErrNoDocument so callers can distinguish "start fresh" from real failures.
func (s *Store) Load(cfg *config.Config, log *zap.Logger) (*document.Document, error) {
	snap := document.Snapshot{
		HeaderAssignments: make(map[string]document.Assignment),
		FooterAssignments: make(map[string]document.Assignment),
	}

	err := sqlitex.Execute(s.conn, `SELECT key, value FROM meta`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			switch stmt.ColumnText(0) {
			case "title":
				snap.Title = stmt.ColumnText(1)
			case "author":
				snap.Author = stmt.ColumnText(1)
			case "active_folio_id":
				snap.ActiveFolioID = stmt.ColumnText(1)
			}
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("read meta: %w", err)
	}

	if err := s.loadFolios(&snap); err != nil {
		return nil, err
	}
	if len(snap.Folios) == 0 {
		return nil, ErrNoDocument
	}
	if err := s.loadSections(&snap); err != nil {
		return nil, err
	}
	if err := s.loadContents(&snap); err != nil {
		return nil, err
	}
	if err := s.loadAssignments(&snap); err != nil {
		return nil, err
	}
	if err := s.loadDefaults(&snap); err != nil {
		return nil, err
	}

	return document.FromSnapshot(snap, cfg, log)
}

func (s *Store) loadFolios(snap *document.Snapshot) error {
	err := sqlitex.Execute(s.conn, `
		SELECT id, idx, orientation,
			margin_top, margin_right, margin_bottom, margin_left,
			section_id, locked, content, created_at, updated_at
		FROM folios`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			f := document.Folio{
				ID:    stmt.ColumnText(0),
				Index: stmt.ColumnInt(1),
				Margins: document.Margins{
					Top:    stmt.ColumnFloat(3),
					Right:  stmt.ColumnFloat(4),
					Bottom: stmt.ColumnFloat(5),
					Left:   stmt.ColumnFloat(6),
				},
				SectionID: stmt.ColumnText(7),
				Locked:    stmt.ColumnBool(8),
				CreatedAt: time.Unix(stmt.ColumnInt64(10), 0),
				UpdatedAt: time.Unix(stmt.ColumnInt64(11), 0),
			}
			var err error
			if f.Orientation, err = common.ParseOrientation(stmt.ColumnText(2)); err != nil {
				return fmt.Errorf("folio %s: %w", f.ID, err)
			}
			content, err := io.ReadAll(stmt.ColumnReader(9))
			if err != nil {
				return fmt.Errorf("folio %s content: %w", f.ID, err)
			}
			if len(content) != 0 {
				f.Content = content
			}
			snap.Folios = append(snap.Folios, f)
			return nil
		}})
	if err != nil {
		return fmt.Errorf("read folios: %w", err)
	}
	return nil
}

func (s *Store) loadSections(snap *document.Snapshot) error {
	err := sqlitex.Execute(s.conn,
		`SELECT id, idx, name, numbering, collapsed, created_at, updated_at FROM sections`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			sec := document.Section{
				ID:        stmt.ColumnText(0),
				Index:     stmt.ColumnInt(1),
				Name:      stmt.ColumnText(2),
				Collapsed: stmt.ColumnBool(4),
				CreatedAt: time.Unix(stmt.ColumnInt64(5), 0),
				UpdatedAt: time.Unix(stmt.ColumnInt64(6), 0),
			}
			var err error
			if sec.Numbering, err = common.ParseNumberingStyle(stmt.ColumnText(3)); err != nil {
				return fmt.Errorf("section %s: %w", sec.ID, err)
			}
			snap.Sections = append(snap.Sections, sec)
			return nil
		}})
	if err != nil {
		return fmt.Errorf("read sections: %w", err)
	}
	return nil
}

func (s *Store) loadContents(snap *document.Snapshot) error {
	err := sqlitex.Execute(s.conn, `
		SELECT id, kind, segments, height,
			show_on_first_page, different_odd_even, even_segments,
			show_border, created_at, updated_at
		FROM contents`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			c := document.Content{
				ID:               stmt.ColumnText(0),
				Height:           stmt.ColumnFloat(3),
				ShowOnFirstPage:  stmt.ColumnBool(4),
				DifferentOddEven: stmt.ColumnBool(5),
				ShowBorder:       stmt.ColumnBool(7),
				CreatedAt:        time.Unix(stmt.ColumnInt64(8), 0),
				UpdatedAt:        time.Unix(stmt.ColumnInt64(9), 0),
			}
			var err error
			if c.Kind, err = common.ParseSlot(stmt.ColumnText(1)); err != nil {
				return fmt.Errorf("content %s: %w", c.ID, err)
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &c.Segments); err != nil {
				return fmt.Errorf("content %s segments: %w", c.ID, err)
			}
			if even := stmt.ColumnText(6); len(even) != 0 {
				c.EvenSegments = new(document.SegmentSet)
				if err := json.Unmarshal([]byte(even), c.EvenSegments); err != nil {
					return fmt.Errorf("content %s even segments: %w", c.ID, err)
				}
			}
			snap.Contents = append(snap.Contents, c)
			return nil
		}})
	if err != nil {
		return fmt.Errorf("read contents: %w", err)
	}
	return nil
}

func (s *Store) loadAssignments(snap *document.Snapshot) error {
	err := sqlitex.Execute(s.conn,
		`SELECT folio_id, slot, state, content_id FROM overrides`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			folioID := stmt.ColumnText(0)
			slot, err := common.ParseSlot(stmt.ColumnText(1))
			if err != nil {
				return fmt.Errorf("override for folio %s: %w", folioID, err)
			}
			state, err := common.ParseAssignmentState(stmt.ColumnText(2))
			if err != nil {
				return fmt.Errorf("override for folio %s: %w", folioID, err)
			}
			a := document.Assignment{State: state, ContentID: stmt.ColumnText(3)}
			if slot == common.SlotHeader {
				snap.HeaderAssignments[folioID] = a
			} else {
				snap.FooterAssignments[folioID] = a
			}
			return nil
		}})
	if err != nil {
		return fmt.Errorf("read overrides: %w", err)
	}
	return nil
}

func (s *Store) loadDefaults(snap *document.Snapshot) error {
	err := sqlitex.Execute(s.conn,
		`SELECT slot, content_id FROM defaults`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			slot, err := common.ParseSlot(stmt.ColumnText(0))
			if err != nil {
				return fmt.Errorf("defaults: %w", err)
			}
			if slot == common.SlotHeader {
				snap.DefaultHeaderID = stmt.ColumnText(1)
			} else {
				snap.DefaultFooterID = stmt.ColumnText(1)
			}
			return nil
		}})
	if err != nil {
		return fmt.Errorf("read defaults: %w", err)
	}
	return nil
}
