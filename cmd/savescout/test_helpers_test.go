package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"savescout/internal/launcher"
	"savescout/internal/testsupport"
)

type cliTestEnv struct {
	root       launcher.Root
	configPath string
	dbPath     string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("SAVESCOUT_DEBUG", "")
	os.Unsetenv("SAVESCOUT_DEBUG")
	for _, key := range []string{"HEROIC_APP_NAME", "HEROIC_APP_RUNNER", "HEROIC_APP_SOURCE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	root := testsupport.HeroicRoot(t)
	env := &cliTestEnv{
		root:       root,
		configPath: filepath.Join(homeDir, ".config", "savescout", "config.toml"),
		dbPath:     filepath.Join(base, "data", "titles.db"),
		baseDir:    base,
	}
	writeTestConfig(t, env.configPath, root, env.dbPath)
	return env
}

func writeTestConfig(t *testing.T, path string, root launcher.Root, dbPath string) {
	t.Helper()
	content := fmt.Sprintf(
		"[[roots]]\npath = %q\nstore = %q\n\n[titles]\ndatabase_path = %q\n\n[logging]\nlevel = \"error\"\n",
		root.Path,
		root.Store,
		dbPath,
	)
	testsupport.WriteFile(t, path, []byte(content))
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIWithInput(t, args, configPath, "")
}

func runCLIWithInput(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func importTitles(t *testing.T, env *cliTestEnv, titles ...string) {
	t.Helper()
	input := strings.Join(titles, "\n") + "\n"
	if _, _, err := runCLIWithInput(t, []string{"titles", "import", "-"}, env.configPath, input); err != nil {
		t.Fatalf("titles import: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
