package heroic

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"savescout/internal/logging"
)

// PrefixProber locates the directory holding a game's saves and settings
// outside its install dir, typically a Wine prefix. platform is lower-cased.
type PrefixProber interface {
	FindPrefix(rootPath, title, platform, appName string) (string, bool)
}

// GamesConfigProber reads Heroic's per-game GamesConfig/<app_name>.json.
type GamesConfigProber struct {
	logger *slog.Logger
}

// NewGamesConfigProber constructs the default prober.
func NewGamesConfigProber(logger *slog.Logger) *GamesConfigProber {
	return &GamesConfigProber{logger: logging.NewComponentLogger(logger, "heroic")}
}

type gameConfig struct {
	WinePrefix  string `json:"winePrefix"`
	WineVersion struct {
		Type string `json:"type"`
	} `json:"wineVersion"`
}

// FindPrefix implements PrefixProber. Only Windows builds have prefixes.
func (p *GamesConfigProber) FindPrefix(rootPath, title, platform, appName string) (string, bool) {
	switch platform {
	case "windows":
		return p.windowsPrefix(rootPath, title, appName)
	case "linux", "mac", "osx":
		logging.Trace(p.logger, "native game has no prefix",
			logging.String(logging.FieldTitle, title),
			logging.String("platform", platform))
		return "", false
	default:
		p.logger.Info("game has unhandled platform",
			logging.String(logging.FieldTitle, title),
			logging.String("platform", platform))
		return "", false
	}
}

func (p *GamesConfigProber) windowsPrefix(rootPath, title, appName string) (string, bool) {
	path := filepath.Join(rootPath, "GamesConfig", appName+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Trace(p.logger, "no games config",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return "", false
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		logging.Trace(p.logger, "unable to parse games config",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return "", false
	}
	raw, ok := wrapper[appName]
	if !ok {
		return "", false
	}
	var cfg gameConfig
	if err := json.Unmarshal(raw, &cfg); err != nil || cfg.WinePrefix == "" {
		logging.Trace(p.logger, "games config has no wine prefix",
			logging.String(logging.FieldPath, path),
			logging.String(logging.FieldAppName, appName))
		return "", false
	}

	switch cfg.WineVersion.Type {
	case "wine":
		return cfg.WinePrefix, true
	case "proton":
		return filepath.Join(cfg.WinePrefix, "pfx"), true
	default:
		p.logger.Info("game uses unknown wine type",
			logging.String(logging.FieldTitle, title),
			logging.String(logging.FieldAppName, appName),
			logging.String("wine_type", cfg.WineVersion.Type))
		return "", false
	}
}
