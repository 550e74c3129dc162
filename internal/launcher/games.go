package launcher

// Game is what a scanner learned about one installed game.
// Zero-valued fields mean the launcher did not tell us.
type Game struct {
	InstallDir string   `json:"install_dir,omitempty"`
	Prefix     string   `json:"prefix,omitempty"`
	Platform   Platform `json:"platform,omitempty"`
}

// Games maps canonical titles to games and remembers insertion order.
// Overwriting an existing title keeps its original position.
type Games struct {
	order []string
	games map[string]Game
}

// NewGames returns an empty mapping.
func NewGames() *Games {
	return &Games{games: make(map[string]Game)}
}

// Put stores game under title, replacing any earlier entry.
func (g *Games) Put(title string, game Game) {
	if g.games == nil {
		g.games = make(map[string]Game)
	}
	if _, exists := g.games[title]; !exists {
		g.order = append(g.order, title)
	}
	g.games[title] = game
}

// Get returns the game stored under title.
func (g *Games) Get(title string) (Game, bool) {
	if g == nil {
		return Game{}, false
	}
	game, ok := g.games[title]
	return game, ok
}

// Len reports the number of titles.
func (g *Games) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// Titles returns the titles in insertion order.
func (g *Games) Titles() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Each visits every entry in insertion order until fn returns false.
func (g *Games) Each(fn func(title string, game Game) bool) {
	if g == nil {
		return
	}
	for _, title := range g.order {
		if !fn(title, g.games[title]) {
			return
		}
	}
}

// Merge copies every entry of other into g. Entries from other win.
func (g *Games) Merge(other *Games) {
	other.Each(func(title string, game Game) bool {
		g.Put(title, game)
		return true
	})
}

// Equal reports whether both mappings hold the same entries in the same order.
func (g *Games) Equal(other *Games) bool {
	if g.Len() != other.Len() {
		return false
	}
	for i, title := range g.Titles() {
		if other.order[i] != title || other.games[title] != g.games[title] {
			return false
		}
	}
	return true
}
