package pipeline

// State is a step of the installation.
type State int

const (
	Idle State = iota
	ResolvingDestination
	Fetching
	Installing
	Cleaning
	EditingManifest
	PostProcessing
	Completed
	Aborted
)

var stateNames = map[State]string{
	Idle:                 "idle",
	ResolvingDestination: "resolving destination",
	Fetching:             "fetching template",
	Installing:           "installing dependencies",
	Cleaning:             "cleaning metadata",
	EditingManifest:      "editing manifest",
	PostProcessing:       "removing comments",
	Completed:            "completed",
	Aborted:              "aborted",
}

// String returns the human-readable stage name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == Completed || s == Aborted
}
