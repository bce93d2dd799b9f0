package gallery

// Keyboard shortcuts
const (
	KeyFocusSearch = "/"
	KeyClearSearch = "Escape"
)

// KeyAction is what the UI should do in response to a key press
type KeyAction int

const (
	KeyIgnored KeyAction = iota
	// KeyActionFocusSearch focuses the search field
	KeyActionFocusSearch
	// KeyActionClearSearch blurs and empties the search field
	KeyActionClearSearch
)

// String returns a readable name for the action
func (a KeyAction) String() string {
	switch a {
	case KeyIgnored:
		return "Ignored"
	case KeyActionFocusSearch:
		return "FocusSearch"
	case KeyActionClearSearch:
		return "ClearSearch"
	default:
		return "Unknown"
	}
}

// HandleKey maps a key press to an action. Escape also resets the filter, so
// the grid shows the full catalog again. When the query is already empty the
// grid is not rendered again.
func (c *Controller) HandleKey(key string, searchFocused bool) KeyAction {
	switch key {
	case KeyFocusSearch:
		if searchFocused {
			return KeyIgnored
		}
		return KeyActionFocusSearch
	case KeyClearSearch:
		if c.Query() != "" {
			c.Filter("")
		}
		return KeyActionClearSearch
	default:
		return KeyIgnored
	}
}
