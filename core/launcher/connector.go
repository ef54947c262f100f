package launcher

import (
	"fmt"
	"runtime"
)

// Scheme is the deep link scheme registered by the game client.
const Scheme = "fivem"

// ConnectURI builds the client deep link for the configured host and port.
// The port is formatted literally; out-of-range values are not rejected.
func ConnectURI(cfg Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	return fmt.Sprintf("%s://connect/%s:%d", Scheme, host, cfg.Port)
}

// Opener hands a URI to the OS default handler registered for its scheme.
type Opener interface {
	Open(uri string) error
}

// ShellOpener opens URIs through the platform shell-open command.
type ShellOpener struct {
	Runner Runner
}

func (o ShellOpener) Open(uri string) error {
	bin, args := openCommand(runtime.GOOS, uri)
	return o.Runner.Start("", bin, args...)
}

// openCommand returns the platform command that resolves a URI through the
// OS default-handler registry.
func openCommand(goos, uri string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	case "darwin":
		return "open", []string{uri}
	default:
		return "xdg-open", []string{uri}
	}
}
