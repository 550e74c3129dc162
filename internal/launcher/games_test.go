package launcher_test

import (
	"reflect"
	"testing"

	"savescout/internal/launcher"
)

func TestGamesOverwriteKeepsPosition(t *testing.T) {
	games := launcher.NewGames()
	games.Put("Foo", launcher.Game{InstallDir: "first"})
	games.Put("Bar", launcher.Game{InstallDir: "bar"})
	games.Put("Foo", launcher.Game{InstallDir: "second"})

	if games.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", games.Len())
	}
	if got := games.Titles(); !reflect.DeepEqual(got, []string{"Foo", "Bar"}) {
		t.Fatalf("unexpected order: %v", got)
	}
	foo, ok := games.Get("Foo")
	if !ok || foo.InstallDir != "second" {
		t.Fatalf("expected later Foo entry, got %+v (ok=%v)", foo, ok)
	}
}

func TestGamesMergeLastWins(t *testing.T) {
	first := launcher.NewGames()
	first.Put("Foo", launcher.Game{InstallDir: "a", Platform: launcher.PlatformWindows})
	second := launcher.NewGames()
	second.Put("Foo", launcher.Game{InstallDir: "b", Platform: launcher.PlatformLinux})
	second.Put("Baz", launcher.Game{})

	first.Merge(second)

	foo, _ := first.Get("Foo")
	if foo.InstallDir != "b" || foo.Platform != launcher.PlatformLinux {
		t.Fatalf("expected merged entry from second mapping, got %+v", foo)
	}
	if got := first.Titles(); !reflect.DeepEqual(got, []string{"Foo", "Baz"}) {
		t.Fatalf("unexpected order after merge: %v", got)
	}
}

func TestGamesNilSafe(t *testing.T) {
	var games *launcher.Games
	if games.Len() != 0 {
		t.Fatal("nil mapping should be empty")
	}
	if _, ok := games.Get("x"); ok {
		t.Fatal("nil mapping should not contain entries")
	}
	if !games.Equal(launcher.NewGames()) {
		t.Fatal("nil mapping should equal an empty one")
	}
}
