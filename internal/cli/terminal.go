package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/lipgloss"
)

// printer renders shell output. Styles degrade to plain text when out is
// not a terminal.
type printer struct {
	out      io.Writer
	word     lipgloss.Style
	missing  lipgloss.Style
	errStyle lipgloss.Style
	dim      lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:      out,
		word:     r.NewStyle().Foreground(lipgloss.ANSIColor(75)),
		missing:  r.NewStyle().Underline(true),
		errStyle: r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:      r.NewStyle().Faint(true),
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) prompt(exitWord string) {
	p.printf("Enter a word (or '%s' to quit): ", exitWord)
}

// words joins words for display, re-applying the user's capitals
func (p *printer) words(words []string, caps *utils.CapitalInfo) string {
	styled := make([]string, len(words))
	for i, w := range words {
		styled[i] = p.word.Render(utils.ApplyCapitals(w, caps))
	}
	return strings.Join(styled, " ")
}

func (p *printer) prefixMatches(token string, matches []string, limit int, caps *utils.CapitalInfo) {
	if len(matches) == 0 {
		return
	}
	more := ""
	if limit > 0 && len(matches) > limit {
		more = p.dim.Render(fmt.Sprintf(" (+%d more)", len(matches)-limit))
		matches = matches[:limit]
	}
	p.printf("Suggestions for prefix '%s': %s%s\n", token, p.words(matches, caps), more)
}

func (p *printer) found(token string) {
	p.printf("Word found: %s\n", token)
}

func (p *printer) notFound(token string, suggestions []string, caps *utils.CapitalInfo) {
	p.printf("%s\n", p.missing.Render("Word not found: "+token))
	if len(suggestions) == 0 {
		p.printf("No suggestions found.\n")
		return
	}
	sorted := append([]string(nil), suggestions...)
	sort.Strings(sorted)
	p.printf("Did you mean: %s\n", p.words(sorted, caps))
}

func (p *printer) err(format string, args ...any) {
	p.printf("%s\n", p.errStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) stats(stats map[string]int) {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.printf("  %-14s %s\n", k, utils.FormatWithCommas(stats[k]))
	}
}
