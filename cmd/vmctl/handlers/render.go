package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sigs.k8s.io/yaml"

	"github.com/imamik/vmctl/internal/descriptor"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	priceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// renderSummary produces the styled confirmation screen: header, the
// descriptor as YAML, and the hourly estimate (or its absence).
func renderSummary(vs descriptor.VirtualServer, price string, priced bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  vmctl deploy: %s/%s", vs.Namespace, vs.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Descriptor"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(indent(renderDescriptorYAML(vs), "  "))
	b.WriteString("\n")

	if priced {
		b.WriteString(priceStyle.Render(fmt.Sprintf("  Estimated hourly cost: $%s", price)))
	} else {
		b.WriteString(dimStyle.Render("  No estimate available for the selected compute class."))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Note: the estimate is informational, never a committed price."))
	b.WriteString("\n\n")

	return b.String()
}

// renderDescriptorYAML renders the descriptor with passwords masked. Only
// the display copy is masked; the submitted descriptor is untouched.
func renderDescriptorYAML(vs descriptor.VirtualServer) string {
	if len(vs.Users) > 0 {
		users := make([]descriptor.User, len(vs.Users))
		copy(users, vs.Users)
		for i := range users {
			users[i].Password = "********"
		}
		vs.Users = users
	}

	out, err := yaml.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("(failed to render: %v)", err)
	}
	return strings.TrimRight(string(out), "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
