package launcher

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// ServerArgs is the fixed argument vector passed to the server process.
var ServerArgs = []string{
	"+exec", "server.cfg",
	"+set", "onesync", "on",
	"+set", "svgui_disable", "1",
}

// Runner starts a process without waiting for it to exit.
type Runner interface {
	Start(dir, bin string, args ...string) error
}

// ExecRunner runs processes through os/exec and releases them immediately.
// The started process keeps running after this program exits.
type ExecRunner struct{}

func (ExecRunner) Start(dir, bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	if err := cmd.Start(); err != nil {
		return err
	}
	// Drop the handle so nothing ever waits on the child.
	return cmd.Process.Release()
}

// Launcher starts the game server and hands the connect deep link to the OS.
type Launcher struct {
	cfg    Config
	runner Runner
	opener Opener
	logger *zap.Logger
}

// New creates a new launcher.
func New(cfg Config, runner Runner, opener Opener, logger *zap.Logger) *Launcher {
	return &Launcher{
		cfg:    cfg,
		runner: runner,
		opener: opener,
		logger: logger,
	}
}

// Launch spawns the server executable with DataPath as working directory.
// It issues exactly one process-creation request and returns without
// waiting: the child's output is not captured and its health is not
// monitored afterwards.
func (l *Launcher) Launch() error {
	l.logger.Info("starting server",
		zap.String("exe", l.cfg.ExePath),
		zap.String("data", l.cfg.DataPath),
	)

	if err := l.runner.Start(l.cfg.DataPath, l.cfg.ExePath, ServerArgs...); err != nil {
		return fmt.Errorf("launch server: %w", err)
	}

	return nil
}

// Connect asks the OS to open the connect deep link with its registered
// default handler. Best effort: no check that a handler exists or that the
// server is reachable.
func (l *Launcher) Connect() error {
	uri := ConnectURI(l.cfg)

	l.logger.Info("opening deep link", zap.String("uri", uri))

	if err := l.opener.Open(uri); err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}

	return nil
}

// Run performs the full launch sequence: spawn the server, then open the
// client deep link. The two steps are independent fire-and-forget actions;
// a failed spawn does not stop the connect attempt, and neither failure is
// retried.
func (l *Launcher) Run() {
	if err := l.Launch(); err != nil {
		l.logger.Warn("server launch failed", zap.Error(err))
	}

	if err := l.Connect(); err != nil {
		l.logger.Warn("client connect failed", zap.Error(err))
	}
}
