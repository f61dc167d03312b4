package output

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		_, err := io.WriteString(c.fallback, text)
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Output Handling
// ============================================================================

// Mode represents where a rendered document goes
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
	ModeFile  Mode = "file"
)

// ParseMode validates a mode name
func ParseMode(name string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(name))); mode {
	case "", ModePrint:
		return ModePrint, nil
	case ModeCopy, ModeFile:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: print, copy, file)", name)
	}
}

// Emitter delivers rendered documents
type Emitter struct {
	stdout    io.Writer
	clipboard Clipboard
}

// NewEmitter creates an emitter writing to stdout and the system clipboard
func NewEmitter() *Emitter {
	return &Emitter{
		stdout:    os.Stdout,
		clipboard: &systemClipboard{fallback: os.Stdout},
	}
}

// WithStdout sets the writer used by print mode
func (e *Emitter) WithStdout(w io.Writer) *Emitter {
	e.stdout = w
	return e
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (e *Emitter) WithClipboard(c Clipboard) *Emitter {
	e.clipboard = c
	return e
}

// Emit sends doc to the destination selected by mode. path is only used in
// file mode.
func (e *Emitter) Emit(doc string, mode Mode, path string) error {
	switch mode {
	case ModeCopy:
		return e.clipboard.Copy(doc)
	case ModeFile:
		if path == "" {
			return fmt.Errorf("file output needs a path")
		}
		return WriteFile(path, doc)
	default: // print
		_, err := io.WriteString(e.stdout, doc)
		return err
	}
}

// WriteFile writes doc to path, creating parent directories
func WriteFile(path, doc string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
