package launcher

import (
	"fmt"
	"strings"
)

// Store identifies the launcher or layout that owns a root.
type Store string

const (
	StoreEA           Store = "ea"
	StoreEpic         Store = "epic"
	StoreGOG          Store = "gog"
	StoreGOGGalaxy    Store = "gogGalaxy"
	StoreHeroic       Store = "heroic"
	StoreLegendary    Store = "legendary"
	StoreLutris       Store = "lutris"
	StoreMicrosoft    Store = "microsoft"
	StoreOrigin       Store = "origin"
	StorePrime        Store = "prime"
	StoreSteam        Store = "steam"
	StoreUplay        Store = "uplay"
	StoreOtherHome    Store = "otherHome"
	StoreOtherWine    Store = "otherWine"
	StoreOtherWindows Store = "otherWindows"
	StoreOtherLinux   Store = "otherLinux"
	StoreOtherMac     Store = "otherMac"
	StoreOther        Store = "other"
)

var knownStores = []Store{
	StoreEA, StoreEpic, StoreGOG, StoreGOGGalaxy, StoreHeroic, StoreLegendary,
	StoreLutris, StoreMicrosoft, StoreOrigin, StorePrime, StoreSteam, StoreUplay,
	StoreOtherHome, StoreOtherWine, StoreOtherWindows, StoreOtherLinux, StoreOtherMac,
	StoreOther,
}

// ParseStore matches value against the known stores, ignoring case.
func ParseStore(value string) (Store, error) {
	trimmed := strings.TrimSpace(value)
	for _, store := range knownStores {
		if strings.EqualFold(trimmed, string(store)) {
			return store, nil
		}
	}
	return "", fmt.Errorf("unknown store %q", value)
}

// Stores lists every recognized store in declaration order.
func Stores() []Store {
	out := make([]Store, len(knownStores))
	copy(out, knownStores)
	return out
}

func (s Store) String() string { return string(s) }

// UnmarshalText lets TOML decoding reject unknown store names.
func (s *Store) UnmarshalText(text []byte) error {
	parsed, err := ParseStore(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText renders the canonical store name.
func (s Store) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// Root is one configured directory scanned for a single store.
type Root struct {
	Path  string `toml:"path" json:"path"`
	Store Store  `toml:"store" json:"store"`
}

func (r Root) String() string {
	return fmt.Sprintf("%s (%s)", r.Path, r.Store)
}
