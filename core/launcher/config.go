package launcher

// Config holds configuration for launching the game server and client.
//
// None of the values are validated here: a bad executable path surfaces when
// the spawn is attempted, and an out-of-range port is passed through into the
// deep link literally.
type Config struct {
	// Port is the port the server listens on (1-65535). It is only used to
	// build the connect deep link.
	Port int `mapstructure:"port" default:"30120"`
	// ExePath is the path to the FXServer executable.
	ExePath string `mapstructure:"exe_path" default:"/srv/FXServer"`
	// DataPath is the server data directory containing server.cfg. It becomes
	// the working directory of the spawned server.
	DataPath string `mapstructure:"data_path" default:"/srv/server-data"`
	// Host is the host placed in the connect deep link.
	Host string `mapstructure:"host" default:"localhost"`
}
