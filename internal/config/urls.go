// Package config provides URL resolution for the skills API.
//
// The default base URL points at the local agent-ui server. In dev mode
// the port is auto-detected across common local API ports so the CLI
// keeps working when the server comes up somewhere non-standard.
package config

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	// DefaultAPIPort is the port the agent-ui server listens on by default.
	DefaultAPIPort = "3001"

	// apiPathPrefix is the path prefix of the skills API on the server.
	apiPathPrefix = "/api/strapi"

	// portCheckTimeout is the timeout for checking if a port is open.
	portCheckTimeout = 100 * time.Millisecond
)

// commonAPIPorts are the ports to try when auto-detecting the server.
// Order matters - most common ports first.
var commonAPIPorts = []string{"3001", "1337", "3000", "8080"}

// GetAPIPort returns the skills API port, honoring the
// SKILLCTL_API_PORT environment variable override.
//
// Returns:
//   - string: The API port number
func GetAPIPort() string {
	if port := os.Getenv("SKILLCTL_API_PORT"); port != "" {
		return port
	}
	return DefaultAPIPort
}

// GetAPIPortWithAutoDetect returns the skills API port, and if no server
// is listening on it, tries common alternative ports.
//
// Returns:
//   - string: The API port number (either configured or auto-detected)
func GetAPIPortWithAutoDetect() string {
	configuredPort := GetAPIPort()

	if isPortOpen("localhost", configuredPort) {
		return configuredPort
	}

	for _, port := range commonAPIPorts {
		if port != configuredPort && isPortOpen("localhost", port) {
			return port
		}
	}

	// Fall back to the configured port even if not responding
	// (let the actual request fail with a clear error)
	return configuredPort
}

// isPortOpen checks if a TCP port is open on the given host.
func isPortOpen(host, port string) bool {
	address := net.JoinHostPort(host, port)
	conn, err := net.DialTimeout("tcp", address, portCheckTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// GetAPIBaseURL returns the skills API base URL.
// In dev mode, the port is auto-detected across common local ports.
//
// Parameters:
//   - devMode: If true, auto-detect the port of a running server
//
// Returns:
//   - string: The skills API base URL including the path prefix
func GetAPIBaseURL(devMode bool) string {
	if devMode {
		return fmt.Sprintf("http://localhost:%s%s", GetAPIPortWithAutoDetect(), apiPathPrefix)
	}
	return fmt.Sprintf("http://localhost:%s%s", GetAPIPort(), apiPathPrefix)
}
