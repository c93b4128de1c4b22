package notifications

import "github.com/thenoetrevino/emojiboard/internal/config/colors"

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style(p colors.Palette) style {
	switch s {
	case Error:
		return style{
			icon:       "✕",
			foreground: p.InfoBg,
			background: p.InfoFg,
		}
	default:
		return style{
			foreground: p.InfoFg,
			background: p.InfoBg,
		}
	}
}
