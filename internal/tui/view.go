package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pathshadow/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	pathHighlightStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
				Bold(true)

	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Scanning PATH... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}
	if m.ShowDiagnostics {
		return m.renderDiagnostics()
	}

	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	netWidth := m.WindowSize.Width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	interiorHeight := m.WindowSize.Height - 8
	if interiorHeight < 4 {
		interiorHeight = 4
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.renderList(leftWidth, interiorHeight))

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.renderDetails())

	help := "↑/↓: Navigate • s: Same-file mode • /: Search • d: Diagnostics • q: Quit"
	footer := "\n\n" + help
	if m.InputMode {
		footer = fmt.Sprintf("\n\nSearch: %s", m.InputBuffer.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}

func (m AppModel) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Shadowed Commands (show-same=%s)", m.Visibility)))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("No shadowed commands."))
		return b.String()
	}

	// Keep the selection roughly centred once the list outgrows the panel
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if len(m.FilteredIndices) > visible && m.SelectedIdx >= visible/2 {
		start = m.SelectedIdx - visible/2
		if start+visible > len(m.FilteredIndices) {
			start = len(m.FilteredIndices) - visible
		}
	}
	end := min(start+visible, len(m.FilteredIndices))

	for i := start; i < end; i++ {
		ev := m.Events[m.FilteredIndices[i]]
		icon := model.IconDifferent
		if ev.Identical {
			icon = model.IconIdentical
		}
		line := fmt.Sprintf("%s %s", icon, ev.Name)
		if len(line) > width-2 {
			line = line[:width-5] + "..."
		}
		style := normalStyle
		if i == m.SelectedIdx {
			style = selectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) renderDetails() string {
	ev, ok := m.Selected()
	if !ok {
		return dimStyle.Render("Nothing selected.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(ev.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s Runs:     %s\n", model.IconWinner, pathHighlightStyle.Render(ev.Shadowing))
	fmt.Fprintf(&b, "   (entry %d of the search path)\n\n", ev.ShadowingIndex+1)
	fmt.Fprintf(&b, "%s Shadowed: %s\n", model.IconShadowed, ev.Shadowed)
	fmt.Fprintf(&b, "   (entry %d of the search path)\n\n", ev.ShadowedIndex+1)
	if ev.Identical {
		b.WriteString(dimStyle.Render(model.IconIdentical + " Both paths are the same file; the shadow is harmless."))
	} else {
		b.WriteString(adviceStyle.Render(model.IconDifferent + " Different files: the later one can only be run by its full path."))
	}
	return b.String()
}

func (m AppModel) renderDiagnostics() string {
	vp := m.DetailsViewport
	vp.Width = max(m.WindowSize.Width-4, 20)
	vp.Height = max(m.WindowSize.Height-6, 5)
	if len(m.Diagnostics) == 0 {
		vp.SetContent(dimStyle.Render("No diagnostics."))
	} else {
		vp.SetContent(adviceStyle.Render(strings.Join(m.Diagnostics, "\n")))
	}

	dialog := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")). // Orange
		Render(titleStyle.Render(fmt.Sprintf("Diagnostics (%d)", len(m.Diagnostics))) + "\n\n" + vp.View())

	return dialog + "\n\nd/esc: Close • q: Quit"
}
