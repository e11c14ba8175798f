// Package renderer turns bullion report structures into markdown strings.
// It holds no computation: every figure is taken as-is from the core.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/sonaworks/bullion"
)

//go:embed templates/*.md
var templates embed.FS

// Holding renders the live batch inventory to markdown.
func Holding(h *bullion.HoldingReport) string {
	return renderTemplate("holding", "holding.md", h)
}

// Aging renders the stock aging breakdown to markdown.
func Aging(r *bullion.AgingReport) string {
	return renderTemplate("aging", "aging.md", r)
}

// Suppliers renders the supplier statistics to markdown.
func Suppliers(r *bullion.SupplierReport) string {
	return renderTemplate("suppliers", "suppliers.md", r)
}

// Turnover renders the turnover statistics to markdown.
func Turnover(r *bullion.TurnoverReport) string {
	return renderTemplate("turnover", "turnover.md", r)
}

// Audit renders the audit report to markdown.
func Audit(r *bullion.AuditReport) string {
	return renderTemplate("audit", "audit.md", r)
}

// History renders the stock trend to markdown.
func History(r *bullion.HistoryReport) string {
	return renderTemplate("history", "history.md", r)
}

// Transactions renders an annotated transaction log to markdown.
func Transactions(txs []bullion.Transaction) string {
	return renderTemplate("transactions", "transactions.md", txs)
}

var funcs = template.FuncMap{
	"ratio": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"days":  func(v float64) string { return fmt.Sprintf("%.1f", v) },
}

// renderTemplate executes one embedded template over the report data.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
