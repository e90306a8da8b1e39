// Package plugin defines the boundary between a launcher host and a plugin.
//
// A host constructs the plugin once, asks it for matches on every query and
// resubmits the match the user picked. All calls are in-process.
package plugin

// Info identifies a plugin to its host.
type Info struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Match is one candidate result shown to the user.
type Match struct {
	Title       string  `json:"title"`
	Icon        string  `json:"icon,omitempty"`
	Description string  `json:"description,omitempty"`
	ID          *uint64 `json:"id,omitempty"` // opaque selection token
}

// HandleResult tells the host what to do after a selection.
type HandleResult int

const (
	// Close ends the interaction and closes the launcher surface.
	Close HandleResult = iota
)

// String returns the wire name of the result.
func (r HandleResult) String() string {
	switch r {
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Plugin is implemented by plugin state returned from the plugin's Init.
type Plugin interface {
	Info() Info
	GetMatches(query string) []Match
	HandleSelection(selection Match) HandleResult
}

// SelectionID returns id as a Match.ID value.
func SelectionID(id uint64) *uint64 {
	return &id
}
