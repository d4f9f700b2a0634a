package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	screenWidth   = 60
	clearSequence = "\x1b[H\x1b[2J"
)

// Screen renders game output to a terminal or any other writer.
// The first write error is kept and every later write is skipped; callers
// check Err once per screen.
type Screen struct {
	w           io.Writer
	styles      styles
	typewriter  Typewriter
	clearScreen bool
	err         error
}

// NewScreen creates a Screen writing to w. Text passed to Type is emitted
// through typewriter.
func NewScreen(w io.Writer, typewriter Typewriter, clearScreen bool) *Screen {
	return &Screen{
		w:           w,
		styles:      newStyles(lipgloss.NewRenderer(w)),
		typewriter:  typewriter,
		clearScreen: clearScreen,
	}
}

// Header prints title centered in a framed banner.
// Titles as wide as the frame or wider are printed as is, left-justified.
func (s *Screen) Header(title string) {
	rule := strings.Repeat("=", screenWidth)

	s.Println(s.styles.header, rule)
	s.Println(s.styles.header, centerTitle(title))
	s.Println(s.styles.header, rule)
	s.write("\n")
}

// Divider prints a horizontal rule.
func (s *Screen) Divider() {
	s.Println(s.styles.divider, strings.Repeat("-", screenWidth))
}

// Println prints styled text followed by a newline.
func (s *Screen) Println(style lipgloss.Style, text string) {
	s.write(paint(style, text) + "\n")
}

// Type prints styled text through the typewriter followed by a newline.
func (s *Screen) Type(style lipgloss.Style, text string) {
	if s.err != nil {
		return
	}
	if s.err = s.typewriter.Type(s.w, paint(style, text)); s.err != nil {
		return
	}
	s.write("\n")
}

// Prompt prints styled text without a trailing newline.
func (s *Screen) Prompt(text string) {
	s.write(paint(s.styles.prompt, text))
}

// Clear clears the terminal if clearing is enabled.
func (s *Screen) Clear() {
	if s.clearScreen {
		s.write(clearSequence)
	}
}

// Err returns the first write error, if any.
func (s *Screen) Err() error {
	return s.err
}

func (s *Screen) write(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

func centerTitle(title string) string {
	if lipgloss.Width(title) >= screenWidth {
		return title
	}
	return lipgloss.PlaceHorizontal(screenWidth, lipgloss.Center, title)
}

// paint styles every line separately, so multi-line text is not padded to
// a common width.
func paint(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
