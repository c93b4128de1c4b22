package components

// RenderSwitch renders the dark mode switch as plain text
func RenderSwitch(on bool) string {
	if on {
		return "☾ [  ●]"
	}
	return "☀ [○  ]"
}
