package filter

import (
	"errors"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"savescout/internal/launcher"
)

// ErrInvalidExpression wraps compile failures.
var ErrInvalidExpression = errors.New("invalid filter expression")

// env is what an expression sees for one game.
type env struct {
	Title      string `expr:"title"`
	Platform   string `expr:"platform"`
	InstallDir string `expr:"install_dir"`
	Prefix     string `expr:"prefix"`
	HasPrefix  bool   `expr:"has_prefix"`
}

func newEnv(title string, game launcher.Game) env {
	return env{
		Title:      title,
		Platform:   game.Platform.String(),
		InstallDir: game.InstallDir,
		Prefix:     game.Prefix,
		HasPrefix:  game.Prefix != "",
	}
}

// Filter is a compiled expression. The zero value and a nil *Filter match
// every game.
type Filter struct {
	expression string
	program    *exprvm.Program
}

// Compile parses expression. An empty or blank expression matches
// everything.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}
	program, err := exprlang.Compile(expression, exprlang.Env(env{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidExpression, expression, err)
	}
	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expression
}

// Match evaluates the filter for one game.
func (f *Filter) Match(title string, game launcher.Game) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	out, err := exprlang.Run(f.program, newEnv(title, game))
	if err != nil {
		return false, fmt.Errorf("evaluate %q for %s: %w", f.expression, title, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("evaluate %q for %s: result %T is not a bool", f.expression, title, out)
	}
	return matched, nil
}

// Apply returns the games that match, preserving order.
func (f *Filter) Apply(games *launcher.Games) (*launcher.Games, error) {
	if f == nil || f.program == nil {
		return games, nil
	}
	selected := launcher.NewGames()
	var matchErr error
	games.Each(func(title string, game launcher.Game) bool {
		ok, err := f.Match(title, game)
		if err != nil {
			matchErr = err
			return false
		}
		if ok {
			selected.Put(title, game)
		}
		return true
	})
	if matchErr != nil {
		return nil, matchErr
	}
	return selected, nil
}
