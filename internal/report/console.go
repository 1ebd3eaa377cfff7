package report

import (
	"fmt"
	"io"
	"strings"
)

// banner is printed at startup unless the run is silent.
const banner = `
 ____   _    ____      _    ____   ___  ____ _____
|  _ \ / \  |  _ \    / \  / ___| / _ \|  _ \_   _|
| |_) / _ \ | |_) |  / _ \ \___ \| | | | |_) || |
|  __/ ___ \|  _ <  / ___ \ ___) | |_| |  _ < | |
|_| /_/   \_\_| \_\/_/   \_\____/ \___/|_| \_\|_|
`

// tagline is printed under the banner.
const tagline = "      URL Parameter Categorizer & Extraction"

// maxEchoedParams is the number of custom parameters echoed before the list
// is cut with "...".
const maxEchoedParams = 10

// Console prints progress messages while a run is in progress.
// A silent Console prints nothing.
type Console struct {
	output  io.Writer
	palette *Palette
	silent  bool
}

// NewConsole creates a Console writing to output.
func NewConsole(output io.Writer, palette *Palette, silent bool) *Console {
	return &Console{output: output, palette: palette, silent: silent}
}

// Banner prints the startup banner.
func (c *Console) Banner() {
	c.println(c.palette.Header(banner) + c.palette.Value(tagline) + "\n")
}

// Processing announces the start of a run.
func (c *Console) Processing(urls int, mode string) {
	c.println(c.palette.Header(fmt.Sprintf("Processing %d URLs using %s...", urls, mode)))
}

// Domain announces the domain whose URLs are being written.
func (c *Console) Domain(domain string) {
	c.println("Processing: " + c.palette.Success(domain))
}

// Saved reports a written export file.
func (c *Console) Saved(what, path string) {
	c.println(c.palette.Success(fmt.Sprintf("  [+] %s saved: %s", what, path)))
}

// CustomParams echoes an inline custom parameter list.
func (c *Console) CustomParams(params []string) {
	text := strings.Join(params, ", ")
	if len(params) > maxEchoedParams {
		text = strings.Join(params[:maxEchoedParams], ", ") + "..."
	}
	c.println(c.palette.Success("Custom parameters: " + text))
}

// CustomParamsFile reports a loaded custom parameter file.
func (c *Console) CustomParamsFile(count int, path string) {
	c.println(c.palette.Success(fmt.Sprintf("Loaded %d parameters from %s", count, path)))
}

// Info prints a neutral message.
func (c *Console) Info(format string, args ...any) {
	c.println(c.palette.Header(fmt.Sprintf(format, args...)))
}

// Warn prints a recoverable problem.
func (c *Console) Warn(format string, args ...any) {
	c.println(c.palette.Warning(fmt.Sprintf(format, args...)))
}

func (c *Console) println(text string) {
	if c.silent {
		return
	}
	fmt.Fprintln(c.output, text)
}
