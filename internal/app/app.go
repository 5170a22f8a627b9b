// Package app wires configuration, buffers, the editor and the renderer
// together and runs the terminal event loop.
package app

import (
	"fmt"
	"io"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/linewise/internal/config"
	"github.com/dshills/linewise/internal/config/watcher"
	"github.com/dshills/linewise/internal/editor"
	"github.com/dshills/linewise/internal/plugin/lua"
	"github.com/dshills/linewise/internal/renderer"
	"github.com/dshills/linewise/internal/renderer/backend"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the config file. Empty means no file.
	ConfigPath string

	// LogLevel and LogFile override the configured logging.
	LogLevel string
	LogFile  string

	// Files are opened in tabs, in order.
	Files []string

	// Clipboard replaces the system clipboard.
	Clipboard editor.Clipboard

	// Watch enables reloading the config file when it changes.
	Watch bool
}

// Application is the running editor.
type Application struct {
	opts Options

	settings  *config.Settings
	configMap map[string]any
	theme     *renderer.Theme

	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	editor   *editor.Editor
	backend  backend.Backend
	renderer *renderer.Renderer
	script   *lua.State
	watcher  *watcher.Watcher

	running      atomic.Bool
	shutdownOnce sync.Once
}

// reloadRequest is posted to the event loop when the config file changes.
type reloadRequest struct {
	Path string
}

// quitRequest is posted to the event loop by RequestQuit.
type quitRequest struct{}

// New loads the configuration, opens the files and builds the editor.
// Errors in the init script are reported in the status bar rather than
// failing startup.
func New(opts Options) (*Application, error) {
	a := &Application{
		opts:    opts,
		metrics: NewMetrics(),
	}

	data, err := config.LoadMap(a.configOptions())
	if err != nil {
		return nil, &OperationError{Op: "load", Target: "config", Err: err}
	}
	settings, err := config.Decode(data)
	if err != nil {
		return nil, &OperationError{Op: "load", Target: opts.ConfigPath, Err: err}
	}
	settings.Path = opts.ConfigPath
	a.settings, a.configMap = settings, data

	if err := a.openLog(); err != nil {
		return nil, err
	}

	if a.theme, err = renderer.NewTheme(settings.Theme); err != nil {
		a.closeLog()
		return nil, &OperationError{Op: "load", Target: "theme", Err: err}
	}

	buffers, err := OpenBuffers(opts.Files)
	if err != nil {
		a.closeLog()
		return nil, err
	}

	editorLog := a.logger.WithComponent("editor")
	a.editor, err = editor.New(buffers, editor.Config{
		Clipboard:     opts.Clipboard,
		LogFunc:       editorLog.Debug,
		EnableMetrics: a.logger.Level() == LogLevelDebug,
	})
	if err != nil {
		a.closeLog()
		return nil, err
	}
	if err := a.editor.BindAll("config", settings.Keymap); err != nil {
		a.closeLog()
		return nil, &OperationError{Op: "load", Target: "keymap", Err: err}
	}

	if path := settings.Editor.InitScript; path != "" {
		if err := a.runInitScript(path); err != nil {
			a.logger.Error("%v", err)
			a.editor.SetStatus(err.Error())
		}
	}

	a.logger.Info("started with %d tab(s)", len(a.editor.Tabs()))
	return a, nil
}

func (a *Application) configOptions() config.Options {
	return config.Options{
		Path: a.opts.ConfigPath,
		Flags: map[string]string{
			"logging.level": a.opts.LogLevel,
			"logging.file":  a.opts.LogFile,
		},
	}
}

func (a *Application) openLog() error {
	path := a.settings.Logging.File
	if path == "" {
		a.logger = NullLogger()
		return nil
	}
	f, err := OpenLogFile(path)
	if err != nil {
		return &OperationError{Op: "open", Target: path, Err: err}
	}
	a.logFile = f
	a.logger = NewLogger(ParseLogLevel(a.settings.Logging.Level), f)
	return nil
}

func (a *Application) closeLog() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// SetBackend replaces the terminal, for tests. It must be called before
// Run.
func (a *Application) SetBackend(b backend.Backend) error {
	if a.running.Load() {
		return ErrAlreadyRunning
	}
	a.backend = b
	return nil
}

// Run draws and handles events until the editor quits. The terminal is
// restored on return, including when a panic is recovered.
func (a *Application) Run() (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if a.backend == nil {
		t, err := backend.NewTerminal()
		if err != nil {
			return err
		}
		a.backend = t
	}
	if err := a.backend.Init(); err != nil {
		return err
	}
	defer a.backend.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
			a.logger.Error("%v", err)
		}
	}()

	a.renderer = renderer.New(a.backend, a.theme)
	if a.opts.Watch {
		a.startWatcher()
	}

	for a.editor.IsActive() {
		start := time.Now()
		a.renderer.Render(a.editor)
		a.metrics.RecordFrame(time.Since(start))

		a.handleEvent(a.backend.PollEvent())
	}
	return nil
}

func (a *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		start := time.Now()
		if err := a.editor.HandleKey(ev.Key); err != nil {
			a.logger.Debug("key %s: %v", ev.Key, err)
		}
		a.metrics.RecordKey(time.Since(start))

	case backend.EventResize:
		a.logger.Debug("resize %dx%d", ev.Width, ev.Height)

	case backend.EventInterrupt:
		switch req := ev.Data.(type) {
		case reloadRequest:
			a.logger.Info("config changed: %s", req.Path)
			_ = a.Reload()
		case quitRequest:
			a.logger.Info("quit requested")
			a.editor.Quit()
		}
	}
}

func (a *Application) startWatcher() {
	path := a.settings.Path
	if path == "" {
		return
	}
	w, err := watcher.New(func(ev watcher.Event) {
		if err := a.backend.PostInterrupt(reloadRequest{Path: ev.Path}); err != nil {
			a.logger.Warn("post reload: %v", err)
		}
	}, watcher.WithErrorHandler(func(err error) {
		a.logger.Warn("watch config: %v", err)
	}))
	if err != nil {
		a.logger.Warn("watch config: %v", err)
		return
	}
	if err := w.Watch(path); err != nil {
		a.logger.Warn("watch config: %v", err)
		_ = w.Close()
		return
	}
	a.watcher = w
}

// Reload re-reads the configuration and applies the theme, keymap and
// log level. Bindings removed from the file stay active until restart.
// Failures are shown in the status bar and leave the current settings
// in place.
func (a *Application) Reload() error {
	data, err := config.LoadMap(a.configOptions())
	var settings *config.Settings
	if err == nil {
		settings, err = config.Decode(data)
	}
	var theme *renderer.Theme
	if err == nil {
		theme, err = renderer.NewTheme(settings.Theme)
	}
	if err == nil {
		err = a.editor.BindAll("config", settings.Keymap)
	}
	if err != nil {
		a.logger.Warn("reload config: %v", err)
		a.editor.SetStatus("config: " + err.Error())
		return err
	}

	changed := config.Changed(a.configMap, data)
	settings.Path = a.settings.Path
	a.settings, a.configMap, a.theme = settings, data, theme
	if a.renderer != nil {
		a.renderer.SetTheme(theme)
	}
	if a.logFile != nil {
		a.logger.SetLevel(ParseLogLevel(settings.Logging.Level))
	}

	a.logger.Info("config reloaded: %v", changed)
	a.editor.SetStatus(fmt.Sprintf("config reloaded (%d change(s))", len(changed)))
	return nil
}

// RequestQuit asks a running event loop to stop. It is safe to call from
// any goroutine, such as a signal handler.
func (a *Application) RequestQuit() error {
	if !a.running.Load() || a.backend == nil {
		return nil
	}
	return a.backend.PostInterrupt(quitRequest{})
}

// Shutdown releases the watcher, script state and log file. It is safe
// to call more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		if a.script != nil {
			_ = a.script.Close()
		}
		s := a.metrics.Snapshot()
		a.logger.Debug("frames=%d avg=%s max=%s keys=%d avg=%s uptime=%s",
			s.Frames, s.AvgFrame, s.MaxFrame, s.Keys, s.AvgKey, s.Uptime.Round(time.Second))
		if dm := a.editor.Dispatcher().Metrics(); dm != nil {
			for _, am := range dm.TopActions(5) {
				a.logger.Debug("action %s: count=%d errors=%d max=%s",
					am.Name, am.DispatchCount, am.ErrorCount, am.MaxDuration)
			}
		}
		a.logger.Info("shutdown")
		a.closeLog()
	})
}

// Editor returns the editor.
func (a *Application) Editor() *editor.Editor { return a.editor }

// Settings returns the settings in effect.
func (a *Application) Settings() *config.Settings { return a.settings }

// Theme returns the theme in effect.
func (a *Application) Theme() *renderer.Theme { return a.theme }

// Metrics returns the run loop metrics.
func (a *Application) Metrics() *Metrics { return a.metrics }

// IsRunning reports whether Run is in progress.
func (a *Application) IsRunning() bool { return a.running.Load() }
