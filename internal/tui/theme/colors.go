package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorTeal           = lipgloss.Color("#00F19F") // CTA, highlights, positive evaluations
	ColorRecoveryBlue   = lipgloss.Color("#67AEE6") // recovery data without valuation
	ColorHighRecovery   = lipgloss.Color("#16EC06") // recovered
	ColorMediumRecovery = lipgloss.Color("#FFDE00") // moderate_recovery
	ColorLowRecovery    = lipgloss.Color("#FF0026") // needs_recovery
	ColorSleep          = lipgloss.Color("#7BA1BB") // sleep related data
)

// Macro bar fills.
var (
	ColorProtein = lipgloss.Color("#00F19F")
	ColorCarbs   = lipgloss.Color("#0093E7")
	ColorFat     = lipgloss.Color("#FFDE00")
)

var (
	ColorBgDark  = lipgloss.Color("#101518") // Darker end of gradient
	ColorBgLight = lipgloss.Color("#283339") // Lighter end of gradient
)
