package repl

import "github.com/charmbracelet/lipgloss"

// Output styles, grounded on ardnew-aenv's cli/cmd/repl style-variable
// idiom (promptStyle/resultStyle/errorStyle as package-level lipgloss
// styles). lipgloss itself degrades to plain text automatically when
// stdout isn't a terminal, so no separate isatty check is needed here.
var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)
