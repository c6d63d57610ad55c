// Package output provides mode-aware rendering for CLI commands.
//
// Commands write through a Renderer that adapts to the environment:
// interactive terminals get styled text, pipes get markdown (agent
// friendly), and --output json gets machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

const (
	// ModeAuto detects the format: TTY renders text, non-TTY markdown.
	ModeAuto Mode = "auto"
	// ModeText renders styled terminal output.
	ModeText Mode = "text"
	// ModeMarkdown renders plain markdown.
	ModeMarkdown Mode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// Renderer writes command output in the effective mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a Renderer, detecting TTY state from the output
// writer when it is an *os.File.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a Renderer with an explicit TTY state.
// Used by tests to force either branch of auto detection.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	colored := isTTY && termenv.EnvColorProfile() != termenv.Ascii
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(colored),
	}
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the lipgloss styles for the renderer's environment.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Out returns the output writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Header writes a styled section header in text mode, or a markdown
// header otherwise.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeText {
		r.Println(r.styles.Header.Render(text))
		return
	}
	r.Println(FormatHeader(level, text))
}

// Errorf writes a formatted error line to the error writer.
func (r *Renderer) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if r.EffectiveMode() == ModeText {
		msg = r.styles.Error.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

// JSON encodes v to the output writer with indentation.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatHeader renders a markdown header of the given level.
func FormatHeader(level int, text string) string {
	prefix := ""
	for i := 0; i < level; i++ {
		prefix += "#"
	}
	return prefix + " " + text
}

// FormatKeyValue renders a markdown key/value bullet line.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s**: %s", key, value)
}
