package render

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	warning lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	hunk    lipgloss.Style
	swatch  lipgloss.Style
}

func colorStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("244")),
		pass:    r.NewStyle().Foreground(lipgloss.Color("42")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		added:   r.NewStyle().Foreground(lipgloss.Color("42")),
		removed: r.NewStyle().Foreground(lipgloss.Color("196")),
		hunk:    r.NewStyle().Foreground(lipgloss.Color("39")),
		swatch:  r.NewStyle().Padding(0, 2),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		title:   plain,
		section: plain,
		muted:   plain,
		pass:    plain,
		fail:    plain,
		warning: plain,
		added:   plain,
		removed: plain,
		hunk:    plain,
		swatch:  plain,
	}
}
