package tui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# dialogwrap demo

The page on screen is a live document tree. Keys dispatch real click events
into it; everything else is the wrapper reacting.

## Keys

- **o** — click the trigger button (declarative ` + "`show-modal`" + ` command)
- **c** — click the close button inside the dialog
- **b** — click the dialog backdrop (light dismissal, ` + "`closedby=\"any\"`" + `)
- **?** — toggle this help dialog
- **esc** — close the topmost open dialog
- **q** — quit

## What to watch

- The page style line shows the scroll lock forcing ` + "`overflow: hidden`" + `
  while a modal dialog is open, and restoring it on close.
- The event pane shows every normalized open notification with its modality.
- Closing the settings dialog resets its embedded frame: the source is
  removed and restored so playback stops.
`

// renderHelp renders the help text for the help dialog's body. Plain
// markdown is an acceptable fallback if the renderer cannot be built.
func renderHelp() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(64),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
