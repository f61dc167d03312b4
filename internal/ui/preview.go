package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/literati/internal/render"
)

// viewMode selects what the pager shows
type viewMode int

const (
	modeRendered viewMode = iota // Output of the preview renderer
	modeMarkdown                 // Raw Markdown from the transformer
)

func (m viewMode) String() string {
	if m == modeMarkdown {
		return "markdown"
	}
	return "rendered"
}

const (
	headerHeight = 2
	footerHeight = 2
)

// previewModel is a scrollable pager over one document
type previewModel struct {
	title    string
	markdown string
	rendered string
	mode     viewMode
	viewport viewport.Model
	ready    bool
}

func newPreviewModel(title, markdown, rendered string) previewModel {
	return previewModel{
		title:    title,
		markdown: markdown,
		rendered: rendered,
		mode:     modeRendered,
	}
}

// content returns the text for the current mode
func (m previewModel) content() string {
	if m.mode == modeMarkdown {
		return m.markdown
	}
	return m.rendered
}

// Init implements tea.Model
func (m previewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "m":
			if m.mode == modeRendered {
				m.mode = modeMarkdown
			} else {
				m.mode = modeRendered
			}
			if m.ready {
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		height := maxInt(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m previewModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View(), m.renderFooter())
}

func (m previewModel) renderHeader() string {
	title := styles.Title.Render(m.title)
	mode := styles.Mode.Render("[" + m.mode.String() + "]")
	return title + " " + mode + "\n" + styles.Divider.Render(strings.Repeat("─", maxInt(m.viewport.Width, 1)))
}

func (m previewModel) renderFooter() string {
	help := styles.Help.Render("q quit • m toggle markdown • ↑/↓ scroll")
	pct := styles.Footer.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	gap := maxInt(m.viewport.Width-lipgloss.Width(help)-lipgloss.Width(pct), 1)
	return styles.Divider.Render(strings.Repeat("─", maxInt(m.viewport.Width, 1))) + "\n" +
		help + strings.Repeat(" ", gap) + pct
}

// ============================================================================
// Run
// ============================================================================

// getTTY returns file handles for TUI input/output
// Uses /dev/tty to bypass shell pipes and command substitution
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()

	// If stdout is not a terminal (piped or captured), use /dev/tty
	if !isTerminal(os.Stdout) {
		out, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			out = os.Stderr // Last resort fallback
		} else {
			closers = append(closers, func() { out.Close() })
		}

		in, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
		if err != nil {
			in = os.Stdin
		} else {
			closers = append(closers, func() { in.Close() })
		}

		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

		return in, out, func() {
			for _, c := range closers {
				c()
			}
		}
	}

	return os.Stdin, os.Stdout, func() {}
}

// isTerminal reports whether f is a character device. A file that cannot
// be stat'ed is treated as not a terminal.
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice != 0
}

// Run renders markdown with r and opens it in a full-screen pager
func Run(title, markdown string, r render.Renderer) error {
	rendered, err := render.Render(markdown, r)
	if err != nil {
		return err
	}

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()

	p := tea.NewProgram(newPreviewModel(title, markdown, rendered),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(ttyOut),
		tea.WithInput(ttyIn),
	)
	_, err = p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
