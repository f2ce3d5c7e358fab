// Package display renders the questionnaire and its results for the terminal.
//
// Everything writes to an io.Writer so output can be captured in tests.
// Colors come from a Theme chosen by the user's dark mode preference:
//
//	theme := display.NewTheme(prefs.DarkMode, display.IsTerminal(os.Stdout))
//	display.RenderQuestion(os.Stdout, theme, q, p.Current, p.Total, response)
//	display.RenderResults(os.Stdout, theme, results)
//
// A disabled Theme emits plain text. ShareText produces the one-line-per-domain
// form used by results --plain and the MCP summary tool.
package display
