// Package handlers holds the HTTP layer: thin decode/validate/respond
// wrappers around the services.
package handlers

import "net/url"

// urlEscape percent-encodes a filename for a Content-Disposition
// filename* parameter (RFC 5987). Slip filenames are mostly CJK.
func urlEscape(s string) string {
	return url.PathEscape(s)
}
