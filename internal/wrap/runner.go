package wrap

// RunnerKind enumerates the Heroic runners.
type RunnerKind int

const (
	RunnerUnrecognized RunnerKind = iota
	RunnerGOG
	RunnerLegendary
	RunnerNile
	RunnerSideload
)

func (k RunnerKind) String() string {
	switch k {
	case RunnerGOG:
		return "gog"
	case RunnerLegendary:
		return "legendary"
	case RunnerNile:
		return "nile"
	case RunnerSideload:
		return "sideload"
	default:
		return "unrecognized"
	}
}

// Runner is a parsed HEROIC_APP_RUNNER value. Raw keeps the original text
// so unrecognized values can still be reported.
type Runner struct {
	Kind RunnerKind
	Raw  string
}

// ParseRunner classifies raw. Matching is exact; Heroic always writes the
// lower-case names.
func ParseRunner(raw string) Runner {
	kind := RunnerUnrecognized
	switch raw {
	case "gog":
		kind = RunnerGOG
	case "legendary":
		kind = RunnerLegendary
	case "nile":
		kind = RunnerNile
	case "sideload":
		kind = RunnerSideload
	}
	return Runner{Kind: kind, Raw: raw}
}

// Supported reports whether the resolver can look up games for r.
func (r Runner) Supported() bool {
	return r.Kind == RunnerGOG || r.Kind == RunnerLegendary
}

func (r Runner) String() string {
	if r.Kind == RunnerUnrecognized {
		return r.Raw
	}
	return r.Kind.String()
}
