package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectURI(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"Default", Config{Port: 30120, Host: "localhost"}, "fivem://connect/localhost:30120"},
		{"EmptyHostFallsBack", Config{Port: 30120}, "fivem://connect/localhost:30120"},
		{"CustomHost", Config{Port: 30120, Host: "10.0.0.5"}, "fivem://connect/10.0.0.5:30120"},
		// Out-of-range ports are passed through literally, not validated.
		{"PortZero", Config{Port: 0, Host: "localhost"}, "fivem://connect/localhost:0"},
		{"PortAboveRange", Config{Port: 70000, Host: "localhost"}, "fivem://connect/localhost:70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConnectURI(tt.cfg))
		})
	}
}

func TestOpenCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantBin  string
		wantArgs []string
	}{
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "fivem://connect/localhost:30120"}},
		{"darwin", "open", []string{"fivem://connect/localhost:30120"}},
		{"linux", "xdg-open", []string{"fivem://connect/localhost:30120"}},
		{"freebsd", "xdg-open", []string{"fivem://connect/localhost:30120"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			bin, args := openCommand(tt.goos, "fivem://connect/localhost:30120")
			assert.Equal(t, tt.wantBin, bin)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
