// Package report formats analysis results into aligned plain-text tables and
// persists them. No analytic logic lives here.
package report

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const bannerWidth = 60

// Section is one titled block of a rendered report.
type Section struct {
	Title string
	Body  string
}

// printer localizes numbers with English thousands separators ("1,220").
var printer = message.NewPrinter(language.English)

// banner returns the ===== framing line.
func banner() string {
	return strings.Repeat("=", bannerWidth)
}

// Render assembles sections into a single report text.
func Render(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(banner() + "\n")
		b.WriteString(s.Title + "\n")
		b.WriteString(banner() + "\n\n")
		b.WriteString(strings.TrimRight(s.Body, "\n") + "\n")
	}
	return b.String()
}

// Export writes text to path, creating parent directories and overwriting any
// existing file.
func Export(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "report: create dir for %s", path)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}
