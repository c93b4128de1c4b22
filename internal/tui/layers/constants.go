package layers

const (
	OverlayWidthDivisor = 2

	OverlayMinWidth = 40
	OverlayMaxWidth = 80

	OverlayMaxHeightDivisor   = 5 // 4/5 = 80% of screen height
	OverlayMaxHeightNumerator = 4

	OverlayChromeHeight = 4 // border + padding
	OverlayChromeWidth  = 4
)
