package service

import (
	"io"
	"os"
	"sync"

	"github.com/groupmix/groupmix/domain"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// ProgressManagerImpl implements the ProgressManager interface around the
// grouping restart search.
type ProgressManagerImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	progressBar *progressbar.ProgressBar
	interactive bool
	maxValue    int
}

// NewProgressManager creates a new progress manager
func NewProgressManager() domain.ProgressManager {
	return &ProgressManagerImpl{
		writer:      os.Stderr,
		interactive: IsInteractiveEnvironment(),
	}
}

// Initialize sets up progress tracking with the maximum value
func (pm *ProgressManagerImpl) Initialize(maxValue int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.maxValue = maxValue
}

// Start starts the progress bar
func (pm *ProgressManagerImpl) Start() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.interactive && pm.progressBar == nil {
		pm.progressBar = pm.createProgressBar("Searching groupings", pm.maxValue)
	}
}

// Update updates the progress
func (pm *ProgressManagerImpl) Update(processed, total int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.progressBar == nil && pm.interactive {
		pm.progressBar = pm.createProgressBar("Searching groupings", total)
	}
	if pm.progressBar != nil {
		_ = pm.progressBar.Set(processed)
	}
}

// Complete marks the progress as completed (finishes the progress bar)
func (pm *ProgressManagerImpl) Complete(success bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.progressBar != nil {
		_ = pm.progressBar.Finish()
	}
}

// SetWriter sets the output writer for progress bars
func (pm *ProgressManagerImpl) SetWriter(writer io.Writer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.writer = writer

	if file, ok := writer.(*os.File); ok {
		pm.interactive = term.IsTerminal(int(file.Fd()))
	} else {
		pm.interactive = false
	}
}

// IsInteractive returns true if progress bars should be shown
func (pm *ProgressManagerImpl) IsInteractive() bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	return pm.interactive
}

// Close cleans up any resources
func (pm *ProgressManagerImpl) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.progressBar != nil {
		_ = pm.progressBar.Close()
		pm.progressBar = nil
	}
}

func (pm *ProgressManagerImpl) createProgressBar(description string, max int) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(pm.writer),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
}

// IsInteractiveEnvironment reports whether progress output makes sense:
// stderr is a terminal and we are not running under CI.
func IsInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// NoopProgressManager discards all progress events; useful for tests and
// for the MCP server, where stdout carries JSON-RPC.
type NoopProgressManager struct{}

// NewNoopProgressManager creates a progress manager that reports nothing
func NewNoopProgressManager() domain.ProgressManager {
	return &NoopProgressManager{}
}

func (n *NoopProgressManager) Initialize(maxValue int)     {}
func (n *NoopProgressManager) Start()                      {}
func (n *NoopProgressManager) Update(processed, total int) {}
func (n *NoopProgressManager) Complete(success bool)       {}
func (n *NoopProgressManager) SetWriter(writer io.Writer)  {}
func (n *NoopProgressManager) IsInteractive() bool         { return false }
func (n *NoopProgressManager) Close()                      {}
