package mcp

import (
	"fmt"
	"strings"
)

// ConnectionString assembles the key=value pair form the sqlserver driver
// accepts, mirroring the ODBC string the platform driver takes:
//
//	server=host,port;database=db;user id=u;password=p;encrypt=true
//
// LocalDB hosts pass through verbatim and never carry a port.
func (c *Config) ConnectionString() string {
	parts := make([]string, 0, 6)

	if c.Port != DefaultPort && !c.IsLocalDB() {
		parts = append(parts, fmt.Sprintf("server=%s,%d", c.Server, c.Port))
	} else {
		parts = append(parts, "server="+c.Server)
	}

	parts = append(parts, "database="+c.Database)

	if c.AuthMode == AuthModeWindows {
		parts = append(parts, "trusted_connection=yes")
	} else {
		parts = append(parts, "user id="+c.User, "password="+c.Password)
	}

	if c.Encrypt {
		if c.IsAzure() {
			// Azure refuses self-signed certificates
			parts = append(parts, "encrypt=true", "TrustServerCertificate=false")
		} else {
			parts = append(parts, "encrypt=true", "TrustServerCertificate=true")
		}
	}

	return strings.Join(parts, ";")
}
