package cli

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
	ThemeBrown ColorTheme = "brown"
)

type themeColors struct {
	lightBg string
	darkBg  string
	black   string
	white   string
	hint    string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeGreen: {
		lightBg: "\033[48;5;28m", // Felt green
		darkBg:  "\033[48;5;22m", // Dark green
		black:   "\033[30m",
		white:   "\033[97m",
		hint:    "\033[93m",
		reset:   Reset,
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m",
		darkBg:  "\033[48;5;245m",
		black:   "\033[30m",
		white:   "\033[97m",
		hint:    "\033[34m",
		reset:   Reset,
	},
	ThemeBrown: {
		lightBg: "\033[48;5;180m", // Tan
		darkBg:  "\033[48;5;137m",
		black:   "\033[30m",
		white:   "\033[97m",
		hint:    "\033[31m",
		reset:   Reset,
	},
}

// paint wraps text in color when the theme is on
func (c *CLI) paint(color, text string) string {
	if c.theme == ThemeOff {
		return text
	}
	return color + text + Reset
}
