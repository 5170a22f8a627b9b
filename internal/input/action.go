package input

// Direction represents a directional command.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp indicates upward direction.
	DirUp
	// DirDown indicates downward direction.
	DirDown
	// DirLeft indicates leftward direction.
	DirLeft
	// DirRight indicates rightward direction.
	DirRight
	// DirForward indicates the character under the cursor (deletion).
	DirForward
	// DirBackward indicates the character before the cursor (deletion).
	DirBackward
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action was resolved from a key press.
	SourceKeyboard ActionSource = iota
	// SourceOverlay indicates the action was produced by an overlay.
	SourceOverlay
	// SourcePlugin indicates the action originated from the init script.
	SourcePlugin
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceOverlay:
		return "overlay"
	case SourcePlugin:
		return "plugin"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert operations.
	Text string

	// Direction for directional commands.
	Direction Direction

	// Extra holds additional key-value pairs for extensibility.
	Extra map[string]any
}

// Get retrieves a value from Extra.
func (a ActionArgs) Get(key string) (any, bool) {
	if a.Extra == nil {
		return nil, false
	}
	v, ok := a.Extra[key]
	return v, ok
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if v, ok := a.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "buffer.save", "cursor.down").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// WithText returns a copy of the action carrying text.
func (a Action) WithText(text string) Action {
	a.Args.Text = text
	return a
}

// WithSource returns a copy of the action with the specified source.
func (a Action) WithSource(src ActionSource) Action {
	a.Source = src
	return a
}

// IsZero returns true if the action has no name.
func (a Action) IsZero() bool {
	return a.Name == ""
}
