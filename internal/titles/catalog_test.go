package titles_test

import (
	"testing"

	"savescout/internal/titles"
)

func TestCatalogExactMatchWithoutNormalization(t *testing.T) {
	catalog := titles.NewCatalog("Foo Game", "Bar")

	got, ok := catalog.FindOne(titles.Query{Names: []string{"Foo Game"}})
	if !ok || got != "Foo Game" {
		t.Fatalf("expected exact match, got %q ok=%v", got, ok)
	}
	if _, ok := catalog.FindOne(titles.Query{Names: []string{"foo game"}}); ok {
		t.Fatal("expected no match without normalization")
	}
}

func TestCatalogNormalizedMatch(t *testing.T) {
	catalog := titles.NewCatalog("Foo Game", "Bar")

	got, ok := catalog.FindOne(titles.Query{Names: []string{"Foo Game™: Definitive Edition"}, Normalized: true})
	if !ok || got != "Foo Game" {
		t.Fatalf("expected normalized match, got %q ok=%v", got, ok)
	}
}

func TestCatalogTriesNamesInOrder(t *testing.T) {
	catalog := titles.NewCatalog("Foo", "Bar")

	got, ok := catalog.FindOne(titles.Query{Names: []string{"Missing", "Bar", "Foo"}})
	if !ok || got != "Bar" {
		t.Fatalf("expected first matching candidate, got %q ok=%v", got, ok)
	}
}

func TestCatalogAmbiguousNormalizedKey(t *testing.T) {
	catalog := titles.NewCatalog("Foo: Game", "Foo - Game")

	if got, ok := catalog.FindOne(titles.Query{Names: []string{"foo game"}, Normalized: true}); ok {
		t.Fatalf("expected ambiguous key to yield no match, got %q", got)
	}
	if got, ok := catalog.FindOne(titles.Query{Names: []string{"Foo: Game"}, Normalized: true}); !ok || got != "Foo: Game" {
		t.Fatalf("exact match should still win, got %q ok=%v", got, ok)
	}
}

func TestCatalogIgnoresBlankAndDuplicateTitles(t *testing.T) {
	catalog := titles.NewCatalog("", "  ", "Foo", "Foo")
	if catalog.Len() != 1 {
		t.Fatalf("expected 1 title, got %d", catalog.Len())
	}
}
