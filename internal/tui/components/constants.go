package components

const (
	// TopBarHeight is the bordered bar at the top of the screen
	TopBarHeight = 3

	// StatusBarHeight is the help line at the bottom of the screen
	StatusBarHeight = 1

	cardBorderWidth  = 2 // left + right border
	cardBorderHeight = 2 // top + bottom border

	// AppTitle is shown in the top bar
	AppTitle = "Emoji Release"
)
