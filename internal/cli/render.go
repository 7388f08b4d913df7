package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/depot/svc/product"
)

var (
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	dim     = lipgloss.Color("#6B7280")

	passStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// renderValidation prints "valid" or one line per full violation message.
func renderValidation(messages []string) string {
	if len(messages) == 0 {
		return passStyle.Render("✓ valid") + "\n"
	}

	var b strings.Builder
	b.WriteString(failStyle.Render(fmt.Sprintf("✗ %d error(s) prohibited this product from being saved:", len(messages))))
	b.WriteString("\n")
	for _, m := range messages {
		b.WriteString("  • ")
		b.WriteString(m)
		b.WriteString("\n")
	}
	return b.String()
}

func renderProducts(products []*product.Product) string {
	if len(products) == 0 {
		return dimStyle.Render("no products") + "\n"
	}

	var b strings.Builder
	for _, p := range products {
		b.WriteString(titleStyle.Render(p.Title))
		b.WriteString("  ")
		b.WriteString(p.Price.String())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s  %s", p.ID, p.ImageURL)))
		b.WriteString("\n")
	}
	return b.String()
}
