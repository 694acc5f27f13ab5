package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the TUI and command output.
var (
	colorGreen  = lipgloss.Color("35")  // growth, success
	colorAmber  = lipgloss.Color("220") // break phase
	colorRed    = lipgloss.Color("167") // errors
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
	colorLeafBg = lipgloss.Color("22")  // progress bar fill
)

var (
	// styleTitle for headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// styleClock for the large remaining-time readout.
	styleClock = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// styleBreak recolors the clock during breaks.
	styleBreak = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)

	// styleDim for help lines and secondary text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleValue for data values in command output.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleLabel for field labels in command output.
	styleLabel = lipgloss.NewStyle().Foreground(colorGray)

	// styleError for error lines.
	styleError = lipgloss.NewStyle().Foreground(colorRed)

	// styleBarFill / styleBarEmpty for the growth bar.
	styleBarFill  = lipgloss.NewStyle().Foreground(colorGreen).Background(colorLeafBg)
	styleBarEmpty = lipgloss.NewStyle().Foreground(colorDim)
)
