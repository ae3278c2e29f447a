package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"hris/internal/apperr"
)

// Meta carries the store-assigned fields every stored record has. The
// store owns all three: callers never supply them and updates cannot
// change id or createdAt.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Meta) RecordID() string { return m.ID }

type Record interface {
	RecordID() string
}

// Table is a typed handle for one logical table. Declaring tables as
// typed handles instead of bare strings keeps a table name tied to its
// record type at compile time.
type Table[T Record] struct {
	name string
}

func NewTable[T Record](name string) Table[T] {
	return Table[T]{name: name}
}

func (t Table[T]) Name() string { return t.name }

// Filter selects records whose JSON form carries exactly the given
// value for every listed field. Equality only, no ranges.
type Filter map[string]any

// Store persists each table as a single JSON array blob under a
// namespaced key. Every operation reads and rewrites the whole table,
// so a single mutex serializes them; fine at this scale, where tables
// are dashboard-sized.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	prefix    string
	connected bool
}

func New(backend Backend) *Store {
	return &Store{backend: backend, prefix: "hris:"}
}

// Connect marks the store connected and pings the backend. Best-effort:
// a failed ping is reported but the store remains usable once the
// backend recovers.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()
	return s.backend.Ping(ctx)
}

func (s *Store) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	s.connected = false
	s.mu.Unlock()
	return s.backend.Close()
}

func (s *Store) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) key(table string) string {
	return s.prefix + table
}

func (s *Store) loadRows(ctx context.Context, table string) ([]map[string]any, error) {
	blob, err := s.backend.Load(ctx, s.key(table))
	if err != nil {
		return nil, apperr.Wrap(err, fmt.Sprintf("load table %s failed", table))
	}
	if len(blob) == 0 {
		return nil, nil
	}
	var rows []map[string]any
	if err := json.Unmarshal(blob, &rows); err != nil {
		return nil, apperr.Wrap(err, fmt.Sprintf("table %s is corrupt", table))
	}
	return rows, nil
}

func (s *Store) saveRows(ctx context.Context, table string, rows []map[string]any) error {
	if rows == nil {
		rows = []map[string]any{}
	}
	blob, err := json.Marshal(rows)
	if err != nil {
		return apperr.Wrap(err, fmt.Sprintf("encode table %s failed", table))
	}
	if err := s.backend.Save(ctx, s.key(table), blob); err != nil {
		return apperr.Wrap(err, fmt.Sprintf("save table %s failed", table))
	}
	return nil
}

// Create assigns a fresh id and identical createdAt/updatedAt stamps,
// appends the record, and returns it fully populated.
func Create[T Record](ctx context.Context, s *Store, tbl Table[T], rec T) (T, error) {
	var zero T

	row, err := toRow(rec)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows(ctx, tbl.name)
	if err != nil {
		return zero, err
	}

	now := time.Now().UTC()
	row["id"] = newID()
	row["createdAt"] = now
	row["updatedAt"] = now

	rows = append(rows, row)
	if err := s.saveRows(ctx, tbl.name, rows); err != nil {
		return zero, err
	}
	return fromRow[T](row)
}

// Get returns the record with the given id or a NotFound error.
func Get[T Record](ctx context.Context, s *Store, tbl Table[T], id string) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows(ctx, tbl.name)
	if err != nil {
		return zero, err
	}
	for _, row := range rows {
		if rowID(row) == id {
			return fromRow[T](row)
		}
	}
	return zero, apperr.NotFoundf("%s record %s not found", tbl.name, id)
}

// List returns every record in the table, or only those matching all
// filter fields when a filter is given. A nil filter returns the full
// collection.
func List[T Record](ctx context.Context, s *Store, tbl Table[T], filter Filter) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows(ctx, tbl.name)
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if !matches(row, normalized) {
			continue
		}
		rec, err := fromRow[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Update merges the patch over the stored record and stamps a new
// updatedAt. The id and createdAt fields in the patch are ignored.
func Update[T Record](ctx context.Context, s *Store, tbl Table[T], id string, patch map[string]any) (T, error) {
	var zero T

	normalized, err := normalizePatch(patch)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows(ctx, tbl.name)
	if err != nil {
		return zero, err
	}

	for i, row := range rows {
		if rowID(row) != id {
			continue
		}
		for field, value := range normalized {
			row[field] = value
		}
		row["updatedAt"] = time.Now().UTC()
		rows[i] = row
		if err := s.saveRows(ctx, tbl.name, rows); err != nil {
			return zero, err
		}
		return fromRow[T](row)
	}
	return zero, apperr.NotFoundf("%s record %s not found", tbl.name, id)
}

// Delete removes the record with the given id and reports whether a
// removal occurred.
func Delete[T Record](ctx context.Context, s *Store, tbl Table[T], id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadRows(ctx, tbl.name)
	if err != nil {
		return false, err
	}
	for i, row := range rows {
		if rowID(row) == id {
			rows = append(rows[:i], rows[i+1:]...)
			if err := s.saveRows(ctx, tbl.name, rows); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func rowID(row map[string]any) string {
	id, _ := row["id"].(string)
	return id
}

// toRow converts a record to its JSON object form so merges and filter
// comparisons operate on one representation.
func toRow(rec any) (map[string]any, error) {
	blob, err := json.Marshal(rec)
	if err != nil {
		return nil, apperr.Wrap(err, "encode record failed")
	}
	var row map[string]any
	if err := json.Unmarshal(blob, &row); err != nil {
		return nil, apperr.Wrap(err, "decode record failed")
	}
	return row, nil
}

func fromRow[T Record](row map[string]any) (T, error) {
	var rec T
	blob, err := json.Marshal(row)
	if err != nil {
		return rec, apperr.Wrap(err, "encode row failed")
	}
	if err := json.Unmarshal(blob, &rec); err != nil {
		return rec, apperr.Wrap(err, "decode row failed")
	}
	return rec, nil
}

func normalizeFilter(filter Filter) (map[string]any, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	return normalizeValues(filter, false)
}

func normalizePatch(patch map[string]any) (map[string]any, error) {
	return normalizeValues(patch, true)
}

func normalizeValues(fields map[string]any, skipMeta bool) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for field, value := range fields {
		if skipMeta && (field == "id" || field == "createdAt" || field == "updatedAt") {
			continue
		}
		blob, err := json.Marshal(value)
		if err != nil {
			return nil, apperr.Wrap(err, fmt.Sprintf("encode field %s failed", field))
		}
		var normalized any
		if err := json.Unmarshal(blob, &normalized); err != nil {
			return nil, apperr.Wrap(err, fmt.Sprintf("decode field %s failed", field))
		}
		out[field] = normalized
	}
	return out, nil
}

func matches(row map[string]any, filter map[string]any) bool {
	for field, want := range filter {
		got, ok := row[field]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// newID builds a time-ordered id with a random suffix. Unique in
// practice for a single store instance; backends shared by independent
// processes would need real UUIDs instead.
func newID() string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
