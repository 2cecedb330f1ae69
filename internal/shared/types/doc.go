// Package types holds the service, tool and result shapes shared by the
// providers, the service registry and the HTTP API.
package types
