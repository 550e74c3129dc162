package main

import (
	"testing"

	"savescout/internal/preflight"
	"savescout/internal/testsupport"
)

func TestDoctorPassesWithManifestsAndTitles(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteSideloadLibrary(t, env.root)
	importTitles(t, env, "Celeste")

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}
	requireContains(t, out, "[OK]")
	requireContains(t, out, "(1 titles)")
}

func TestDoctorFailsWithoutTitleDatabase(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteSideloadLibrary(t, env.root)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err == nil {
		t.Fatal("expected doctor to fail without a title database")
	}
	requireContains(t, out, "Title database:")
	requireContains(t, out, "[FAIL]")
}

func TestRenderCheckLine(t *testing.T) {
	line := renderCheckLine(preflight.Result{Name: "Root (heroic)", Passed: true, Detail: "/x (read ok)"}, false)
	want := "  Root (heroic):               [OK] /x (read ok)"
	if line != want {
		t.Fatalf("got %q want %q", line, want)
	}
}
