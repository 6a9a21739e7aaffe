package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "" // browser/web
	IconVersion = "" // tag
	IconGo      = "" // go gopher
	IconCheck   = "" // check
	IconTrash   = "" // trash
	IconConfig  = "" // config
	IconClock   = "" // clock
	IconSession = "" // window
)
