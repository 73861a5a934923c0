package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitColorProfile picks the color profile used by Render. A prompt segment
// is usually produced with stdout captured by the shell, so automatic
// detection would strip all colors; CLICOLOR_FORCE and COLORTERM restore
// them and NO_COLOR disables them.
func InitColorProfile() {
	lipgloss.SetColorProfile(profileFromEnv(os.Getenv))
}

func profileFromEnv(getenv func(string) string) termenv.Profile {
	switch {
	case getenv("NO_COLOR") != "":
		return termenv.Ascii
	case getenv("COLORTERM") == "truecolor" || getenv("COLORTERM") == "24bit":
		return termenv.TrueColor
	case getenv("CLICOLOR_FORCE") == "1":
		return termenv.ANSI256
	}
	return termenv.EnvColorProfile()
}
