// Package app wires the editor together: configuration, logging, the
// session store, os-backed file collaborators, the terminal, and the
// poll/dispatch/draw run loop.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/gust/internal/config"
	"github.com/dshills/gust/internal/editor"
	"github.com/dshills/gust/internal/renderer"
	"github.com/dshills/gust/internal/session"
)

// Options configures application startup.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// SessionPath overrides the default session file location.
	SessionPath string

	// LogLevel, when non-empty, overrides the configured log level.
	LogLevel string

	// WorkspaceDir is the root the path finder walks. Empty means the
	// current directory.
	WorkspaceDir string

	// Files are opened in order at startup; the last becomes active.
	Files []string
}

// Application owns the wired-up editor session.
type Application struct {
	cfg     config.Config
	logger  *Logger
	logFile *os.File
	editor  *editor.Editor
	sess    *session.Store
	term    *renderer.Terminal
	rend    *renderer.Renderer
}

// New builds an application from the options: load config, open the
// log, load the session, construct the editor with os-backed
// collaborators, and open the startup files. The terminal is attached
// separately with SetTerminal, keeping construction testable without a
// tty.
func New(opts Options) (*Application, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, WrapError(err, "loading configuration")
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	a := &Application{cfg: cfg, logger: NullLogger}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, NewOperationError("open log", cfg.Log.File, err)
		}
		a.logFile = f
		a.logger = NewLogger(LoggerConfig{
			Level:  ParseLogLevel(cfg.Log.Level),
			Output: f,
			Prefix: "gust",
		})
	}

	sessPath := opts.SessionPath
	if sessPath == "" {
		sessPath = session.DefaultPath()
	}
	sess, err := session.Load(sessPath)
	if err != nil {
		a.logger.Warn("session unavailable: %v", err)
	}
	a.sess = sess

	workspace := opts.WorkspaceDir
	if workspace == "" {
		workspace = "."
	}
	ed, err := editor.New(cfg, editor.Host{
		ReadFile:  readFile,
		WriteFile: writeFile,
		FindPaths: pathFinder(workspace, cfg.Find.Ignore),
		Session:   sess,
	})
	if err != nil {
		return nil, WrapError(err, "building editor")
	}
	a.editor = ed

	for _, path := range opts.Files {
		ed.Open(path)
		if msg := ed.Status(); msg != "" {
			a.logger.Warn("startup open: %s", msg)
		}
	}

	a.logger.Info("started: config=%s files=%d", cfgPath, len(opts.Files))
	return a, nil
}

// SetTerminal attaches the terminal and builds the renderer over it.
func (a *Application) SetTerminal(term *renderer.Terminal) error {
	theme, err := renderer.NewTheme(a.cfg.Theme)
	if err != nil {
		return WrapError(err, "resolving theme")
	}
	a.term = term
	a.rend = renderer.New(term, theme, a.cfg.Editor.ScrollMargin)
	return nil
}

// Editor returns the wired editor, for tests and the run loop.
func (a *Application) Editor() *editor.Editor {
	return a.editor
}

// Run drives the editor until quit or context cancellation. The screen
// is restored on every exit path, panics included.
func (a *Application) Run(ctx context.Context) (err error) {
	if a.term == nil {
		return ErrNoTerminal
	}
	if err := a.term.Init(); err != nil {
		return WrapError(err, "initializing terminal")
	}
	defer func() {
		a.term.Fini()
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			a.logger.Error("panic in run loop: %v", r)
		}
	}()

	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			a.term.Interrupt()
		case <-watchDone:
		}
	}()

	for {
		a.rend.Draw(a.editor)

		ev := a.term.PollEvent()
		switch ev.Kind {
		case renderer.EventKey:
			a.editor.HandleKey(ev.Key)
		case renderer.EventInterrupt:
			a.logger.Info("interrupted")
			return a.saveSession()
		case renderer.EventResize, renderer.EventNone:
			continue
		}

		if a.editor.ShouldQuit() {
			a.logger.Info("quit")
			return a.saveSession()
		}
	}
}

// Shutdown releases resources held outside the run loop.
func (a *Application) Shutdown() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// saveSession persists the session store; a failure is logged, not
// fatal.
func (a *Application) saveSession() error {
	if a.sess == nil {
		return nil
	}
	if err := a.sess.Save(); err != nil {
		a.logger.Warn("saving session: %v", err)
	}
	return nil
}

// readFile is the os-backed read collaborator.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeFile is the os-backed write collaborator.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// maxFindCandidates bounds the workspace walk so a huge tree cannot
// stall a keystroke.
const maxFindCandidates = 10000

// pathFinder returns a FindPaths collaborator walking root. The query
// is unused; the editor ranks the candidates itself.
func pathFinder(root string, ignore []string) func(string) ([]string, error) {
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	return func(string) ([]string, error) {
		var paths []string
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable entries are not candidates
			}
			if d.IsDir() {
				if skip[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			paths = append(paths, rel)
			if len(paths) >= maxFindCandidates {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return paths, nil
	}
}
