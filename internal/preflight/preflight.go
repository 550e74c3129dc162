package preflight

import (
	"context"
	"fmt"

	"savescout/internal/config"
	"savescout/internal/launcher"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// RunAll executes every applicable preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	if len(cfg.Roots) == 0 {
		results = append(results, Result{Name: "Roots", Detail: "no roots configured"})
	}
	for _, root := range cfg.Roots {
		name := rootCheckName(root)
		access := CheckDirectoryAccess(name, root.Path)
		results = append(results, access)
		if access.Passed && root.Store == launcher.StoreHeroic {
			results = append(results, CheckHeroicManifests(name+" manifests", root, cfg.Heroic.LegendaryConfigDir))
		}
	}

	if cfg.Heroic.LegendaryConfigDir != "" {
		results = append(results, CheckDirectoryAccess("Legendary config", cfg.Heroic.LegendaryConfigDir))
	}

	results = append(results, CheckTitleDatabase(ctx, cfg.Titles.DatabasePath))
	return results
}

func rootCheckName(root launcher.Root) string {
	return fmt.Sprintf("Root (%s)", root.Store)
}
