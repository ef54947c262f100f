package servercfg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var cfgLine = regexp.MustCompile(`(?i)^([a-z]+)[ \t]+([a-z\d_.-]+)`)

// ServerConfig is the resource start list read from a server.cfg, with
// exec'd includes resolved.
type ServerConfig struct {
	Path      string
	resources []string
	started   map[string]bool
}

// Load parses the config at path. A missing file is an error; exec'd
// includes that cannot be read are logged and skipped, matching how the
// server itself keeps going.
func Load(path string, logger *zap.Logger) (*ServerConfig, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}

	c := &ServerConfig{
		Path:    abs,
		started: map[string]bool{},
	}

	seen := map[string]bool{}
	c.parse(abs, seen, logger)

	return c, nil
}

func (c *ServerConfig) parse(path string, seen map[string]bool, logger *zap.Logger) {
	if seen[path] {
		logger.Warn("cyclic exec", zap.String("path", path))
		return
	}
	seen[path] = true

	contents, err := os.ReadFile(path)
	if err != nil {
		logger.Error("unable to read config", zap.String("path", path), zap.Error(err))
		return
	}

	logger.Debug("processing config", zap.String("path", path))

	for _, raw := range strings.Split(string(contents), "\n") {
		line := strings.TrimSpace(raw)

		// Filter out empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		match := cfgLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		command, name := strings.ToLower(match[1]), match[2]

		switch command {
		case "exec":
			include := filepath.Join(filepath.Dir(c.Path), name)
			c.parse(include, seen, logger)

		case "ensure", "start", "restart":
			// Ignore if already started to keep initial position
			if c.started[name] {
				continue
			}
			c.started[name] = true
			c.resources = append(c.resources, name)

		case "stop":
			if c.started[name] {
				delete(c.started, name)
				c.resources = remove(c.resources, name)
			}
		}
	}
}

func remove(list []string, name string) []string {
	out := list[:0]
	for _, v := range list {
		if v != name {
			out = append(out, v)
		}
	}
	return out
}

// Resources returns the started resources in config order.
func (c *ServerConfig) Resources() []string {
	return c.resources
}

// Enabled reports whether the named resource is started by the config.
func (c *ServerConfig) Enabled(name string) bool {
	return c.started[name]
}
