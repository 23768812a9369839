package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dialogwrap/internal/dom"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	base := m.renderPage()

	// An open dialog overlays the page, centered. The help dialog stacks
	// above settings when both are open.
	top := m.topDialog()
	if top == nil {
		return base
	}
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.renderDialog(top),
	)
}

// topDialog returns the most recently relevant open dialog, or nil.
func (m Model) topDialog() *dom.Element {
	if m.help.Open() {
		return m.help
	}
	if m.settings.Open() {
		return m.settings
	}
	return nil
}

func (m Model) renderPage() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(" dialogwrap demo "))
	sb.WriteString("\n\n")

	caps := m.doc.Caps()
	sb.WriteString(statusKeyStyle.Render("host commands: "))
	sb.WriteString(renderCapability(caps.CommandEvents))
	sb.WriteString(statusKeyStyle.Render("   host light-dismiss: "))
	sb.WriteString(renderCapability(caps.LightDismiss))
	sb.WriteString("\n")

	sb.WriteString(statusKeyStyle.Render("scroll lock: "))
	if m.locker.Depth() > 0 {
		sb.WriteString(lockedStyle.Render(fmt.Sprintf("held (%d)", m.locker.Depth())))
	} else {
		sb.WriteString(statusOffStyle.Render("free"))
	}
	style, _ := m.doc.Root().Attr("style")
	sb.WriteString(statusKeyStyle.Render("   page style: "))
	if style == "" {
		sb.WriteString(statusOffStyle.Render("(none)"))
	} else {
		sb.WriteString(lockedStyle.Render(style))
	}
	sb.WriteString("\n\n")

	sb.WriteString(buttonStyle.Render(m.trigger.Text))
	sb.WriteString("\n\n")

	sb.WriteString(feedBoxStyle.Width(m.feedView.Width).Render(m.feedView.View()))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("o:open  c:close  b:backdrop  ?:help  esc:dismiss  q:quit"))

	return sb.String()
}

func renderCapability(on bool) string {
	if on {
		return statusOnStyle.Render("native")
	}
	return statusOffStyle.Render("polyfill")
}

// renderDialog draws a dialog element's subtree as a modal box.
func (m Model) renderDialog(dlg *dom.Element) string {
	contentWidth := m.width * 60 / 100
	if contentWidth > 76 {
		contentWidth = 76
	}
	if contentWidth < 36 {
		contentWidth = 36
	}

	var lines []string
	lines = append(lines, modalTitleStyle.Render(dlg.ID()))
	lines = append(lines, "")

	var buttons []string
	for _, child := range dlg.Children() {
		switch child.Tag {
		case "p":
			lines = append(lines, child.Text)

		case "iframe":
			src, _ := child.Attr("src")
			loading, _ := child.Attr("loading")
			label := fmt.Sprintf("[frame] %s", src)
			if loading != "" {
				label += " (" + loading + ")"
			}
			lines = append(lines, frameStyle.Render(ansi.Truncate(label, contentWidth, "…")))

		case "button":
			if child.HasAttr("autofocus") {
				buttons = append(buttons, buttonFocusedStyle.Render(child.Text))
			} else {
				buttons = append(buttons, buttonStyle.Render(child.Text))
			}
		}
	}

	if len(buttons) > 0 {
		lines = append(lines, "")
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(buttons, "  ")))
	}

	content := strings.Join(lines, "\n")
	return modalBoxStyle.Width(contentWidth).Render(content)
}
