package config

const (
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
	defaultEndpointPath       = "/mcp"
	defaultStdio              = true
	defaultFetchTimeout       = 30
	defaultUserAgent          = "agenda-mcp/dev"
	defaultMaxBodyBytes int64 = 16 << 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Server: Server{
			EndpointPath: defaultEndpointPath,
			Stdio:        defaultStdio,
		},
		Fetch: Fetch{
			TimeoutSeconds: defaultFetchTimeout,
			UserAgent:      defaultUserAgent,
			MaxBodyBytes:   defaultMaxBodyBytes,
		},
	}
}
