package titles_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"savescout/internal/titles"
)

func openTestDatabase(t *testing.T) *titles.Database {
	t.Helper()
	db, err := titles.Open(filepath.Join(t.TempDir(), "titles.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDatabaseImportAndFind(t *testing.T) {
	ctx := context.Background()
	db := openTestDatabase(t)

	added, err := db.Import(ctx, []string{"Foo Game", "Bar", "", "Foo Game"}, false)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 titles added, got %d", added)
	}

	if got, ok := db.FindOne(titles.Query{Names: []string{"Bar"}}); !ok || got != "Bar" {
		t.Fatalf("expected exact match, got %q ok=%v", got, ok)
	}
	if got, ok := db.FindOne(titles.Query{Names: []string{"FOO GAME™"}, Normalized: true}); !ok || got != "Foo Game" {
		t.Fatalf("expected normalized match, got %q ok=%v", got, ok)
	}
	if _, ok := db.FindOne(titles.Query{Names: []string{"FOO GAME™"}}); ok {
		t.Fatal("expected no match without normalization")
	}
}

func TestDatabaseImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openTestDatabase(t)

	if _, err := db.Import(ctx, []string{"B", "A"}, false); err != nil {
		t.Fatalf("Import: %v", err)
	}
	added, err := db.Import(ctx, []string{"A", "B"}, false)
	if err != nil {
		t.Fatalf("second Import: %v", err)
	}
	if added != 0 {
		t.Fatalf("expected no new titles, got %d", added)
	}
	list, err := db.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(list, []string{"A", "B"}) {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestDatabaseImportReplace(t *testing.T) {
	ctx := context.Background()
	db := openTestDatabase(t)

	if _, err := db.Import(ctx, []string{"Old"}, false); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if _, err := db.Import(ctx, []string{"New"}, true); err != nil {
		t.Fatalf("replace Import: %v", err)
	}
	count, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 title after replace, got %d", count)
	}
	if _, ok := db.FindOne(titles.Query{Names: []string{"Old"}}); ok {
		t.Fatal("replaced title should be gone")
	}
}

func TestDatabaseImportLocked(t *testing.T) {
	db := openTestDatabase(t)

	holder := flock.New(db.Path() + ".lock")
	locked, err := holder.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = holder.Unlock() }()

	_, err = db.Import(context.Background(), []string{"X"}, false)
	if !errors.Is(err, titles.ErrImportLocked) {
		t.Fatalf("expected ErrImportLocked, got %v", err)
	}
}

func TestDatabaseSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.db")
	db, err := titles.Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	_ = db.Close()

	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw: %v", err)
	}
	if _, err := raw.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	_ = raw.Close()

	_, err = titles.Open(path, nil)
	if !errors.Is(err, titles.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestReadTitleList(t *testing.T) {
	input := "# canonical titles\nFoo Game\n\n  Bar  \n#skip\n"
	got, err := titles.ReadTitleList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTitleList: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Foo Game", "Bar"}) {
		t.Fatalf("unexpected titles: %v", got)
	}
}
