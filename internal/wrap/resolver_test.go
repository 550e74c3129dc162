package wrap_test

import (
	"testing"

	"savescout/internal/heroic"
	"savescout/internal/launcher"
	"savescout/internal/testsupport"
	"savescout/internal/wrap"
)

type fakeSource struct {
	gog       map[string][]heroic.Record
	legendary map[string][]heroic.Record
	reads     []string
}

func (f *fakeSource) GOGLibrary(root launcher.Root) heroic.Loaded[heroic.Record] {
	f.reads = append(f.reads, "gog:"+root.Path)
	return loaded(f.gog[root.Path])
}

func (f *fakeSource) LegendaryInstalled(root launcher.Root) heroic.Loaded[heroic.Record] {
	f.reads = append(f.reads, "legendary:"+root.Path)
	return loaded(f.legendary[root.Path])
}

func loaded(records []heroic.Record) heroic.Loaded[heroic.Record] {
	if records == nil {
		return heroic.Loaded[heroic.Record]{Status: heroic.LoadMissing}
	}
	return heroic.Loaded[heroic.Record]{Items: records, Status: heroic.LoadOK}
}

func heroicRoots(paths ...string) []launcher.Root {
	roots := make([]launcher.Root, 0, len(paths))
	for _, p := range paths {
		roots = append(roots, launcher.Root{Path: p, Store: launcher.StoreHeroic})
	}
	return roots
}

func TestFindInRootsFirstMatchWins(t *testing.T) {
	source := &fakeSource{gog: map[string][]heroic.Record{
		"/r1": {{AppName: "1207658924", Title: "Game One (R1)"}},
		"/r2": {{AppName: "1207658924", Title: "Game One (R2)"}},
	}}
	resolver := wrap.NewResolver(source, nil)

	title, ok := resolver.FindInRoots(heroicRoots("/r1", "/r2"), "1207658924", wrap.ParseRunner("gog"))
	if !ok || title != "Game One (R1)" {
		t.Fatalf("expected R1 title, got %q (ok=%v)", title, ok)
	}
	if len(source.reads) != 1 || source.reads[0] != "gog:/r1" {
		t.Fatalf("expected only R1 to be read, got %v", source.reads)
	}
}

func TestFindInRootsFallsThroughToLaterRoot(t *testing.T) {
	source := &fakeSource{legendary: map[string][]heroic.Record{
		"/r1": {{AppName: "Other", Title: "Other"}},
		"/r2": {{AppName: "Fish", Title: "Fishing Game"}},
	}}
	resolver := wrap.NewResolver(source, nil)

	title, ok := resolver.FindInRoots(heroicRoots("/missing", "/r1", "/r2"), "Fish", wrap.ParseRunner("legendary"))
	if !ok || title != "Fishing Game" {
		t.Fatalf("expected Fishing Game, got %q (ok=%v)", title, ok)
	}
	if len(source.reads) != 3 {
		t.Fatalf("expected every root to be read once, got %v", source.reads)
	}
}

func TestFindInRootsSkipsOtherStores(t *testing.T) {
	source := &fakeSource{gog: map[string][]heroic.Record{
		"/steam": {{AppName: "1", Title: "Wrong"}},
	}}
	resolver := wrap.NewResolver(source, nil)
	roots := []launcher.Root{{Path: "/steam", Store: launcher.StoreSteam}}

	if title, ok := resolver.FindInRoots(roots, "1", wrap.ParseRunner("gog")); ok {
		t.Fatalf("expected no match, got %q", title)
	}
	if len(source.reads) != 0 {
		t.Fatalf("expected non-heroic roots to be skipped, got %v", source.reads)
	}
}

func TestFindInRootsUnsupportedRunnersReadNothing(t *testing.T) {
	for _, raw := range []string{"nile", "sideload", "unknown-runner", ""} {
		source := &fakeSource{gog: map[string][]heroic.Record{"/r1": {{AppName: "x", Title: "X"}}}}
		resolver := wrap.NewResolver(source, nil)

		if title, ok := resolver.FindInRoots(heroicRoots("/r1"), "x", wrap.ParseRunner(raw)); ok {
			t.Fatalf("runner %q: expected no match, got %q", raw, title)
		}
		if len(source.reads) != 0 {
			t.Fatalf("runner %q: expected no manifest reads, got %v", raw, source.reads)
		}
	}
}

func TestFindInRootsReadsRealManifests(t *testing.T) {
	root := testsupport.HeroicRoot(t)
	testsupport.WriteGOGLibrary(t, root, testsupport.LibraryGame{AppName: "42", Title: "Answer: The Game", Platform: "windows"})
	testsupport.WriteLegendaryInstalled(t, testsupport.LegendaryDir(root),
		testsupport.LegendaryInstall{AppName: "Epic", Title: "Epic Title", Platform: "Windows", InstallPath: "/epic"})
	resolver := wrap.NewResolver(nil, nil)

	if title, ok := resolver.FindInRoots([]launcher.Root{root}, "42", wrap.ParseRunner("gog")); !ok || title != "Answer: The Game" {
		t.Fatalf("gog lookup: got %q (ok=%v)", title, ok)
	}
	if title, ok := resolver.FindInRoots([]launcher.Root{root}, "Epic", wrap.ParseRunner("legendary")); !ok || title != "Epic Title" {
		t.Fatalf("legendary lookup: got %q (ok=%v)", title, ok)
	}
	if _, ok := resolver.FindInRoots([]launcher.Root{root}, "nope", wrap.ParseRunner("gog")); ok {
		t.Fatal("expected no match for unknown app name")
	}
}

func envLookup(vars map[string]string) wrap.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestFromEnvironment(t *testing.T) {
	source := &fakeSource{gog: map[string][]heroic.Record{"/r1": {{AppName: "7", Title: "Seven"}}}}
	resolver := wrap.NewResolver(source, nil)
	roots := heroicRoots("/r1")

	title, ok := resolver.FromEnvironment(roots, envLookup(map[string]string{
		wrap.EnvAppName:   "7",
		wrap.EnvAppRunner: "gog",
		wrap.EnvAppSource: "gog",
	}))
	if !ok || title != "Seven" {
		t.Fatalf("expected Seven, got %q (ok=%v)", title, ok)
	}
}

func TestFromEnvironmentMissingVariables(t *testing.T) {
	cases := []map[string]string{
		{},
		{wrap.EnvAppName: "7"},
		{wrap.EnvAppRunner: "gog"},
	}
	for _, vars := range cases {
		source := &fakeSource{gog: map[string][]heroic.Record{"/r1": {{AppName: "7", Title: "Seven"}}}}
		resolver := wrap.NewResolver(source, nil)
		if title, ok := resolver.FromEnvironment(heroicRoots("/r1"), envLookup(vars)); ok {
			t.Fatalf("vars %v: expected no match, got %q", vars, title)
		}
		if len(source.reads) != 0 {
			t.Fatalf("vars %v: expected no reads, got %v", vars, source.reads)
		}
	}
}

func TestFromEnvironmentProcessEnv(t *testing.T) {
	t.Setenv(wrap.EnvAppName, "7")
	t.Setenv(wrap.EnvAppRunner, "gog")
	source := &fakeSource{gog: map[string][]heroic.Record{"/r1": {{AppName: "7", Title: "Seven"}}}}
	resolver := wrap.NewResolver(source, nil)

	if title, ok := resolver.FromEnvironment(heroicRoots("/r1"), nil); !ok || title != "Seven" {
		t.Fatalf("expected Seven from process env, got %q (ok=%v)", title, ok)
	}
}
