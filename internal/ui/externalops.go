package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// BrowserEnv overrides the command used to open video links
const BrowserEnv = "SIGNASSIST_BROWSER"

var errNoProgram = errors.New("program not set")

// ExternalOps runs things outside the TUI: the browser, the clipboard and
// the pager.
type ExternalOps struct {
	program *tea.Program

	openURL   func(url string) error
	writeClip func(text string) error
	runPager  func(title, content string) error
}

// NewExternalOps creates ExternalOps using the system browser, clipboard and ov
func NewExternalOps() *ExternalOps {
	ops := &ExternalOps{
		openURL:   openInBrowser,
		writeClip: clipboard.WriteAll,
	}
	ops.runPager = ops.showInOv
	return ops
}

// SetProgram sets the program reference for terminal management
func (o *ExternalOps) SetProgram(p *tea.Program) {
	o.program = p
}

// OpenURL opens url in the browser
func (o *ExternalOps) OpenURL(url string) error {
	return o.openURL(url)
}

// CopyToClipboard copies text to the system clipboard
func (o *ExternalOps) CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return o.writeClip(text)
}

// ShowInPager shows content in ov, handing it the terminal until it exits
func (o *ExternalOps) ShowInPager(title, content string) error {
	return o.runPager(title, content)
}

func (o *ExternalOps) showInOv(_, content string) error {
	if o.program == nil {
		return errNoProgram
	}

	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// browserCommand returns the command that opens url on goos
func browserCommand(goos, url string) (string, []string) {
	if custom := strings.TrimSpace(os.Getenv(BrowserEnv)); custom != "" {
		fields := strings.Fields(custom)
		return fields[0], append(fields[1:], url)
	}
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func openInBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the opener without blocking the UI
	go func() { _ = cmd.Wait() }()
	return nil
}
