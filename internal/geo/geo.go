// Package geo defines the failure taxonomy of device geolocation and the
// coordinate fix the enrichment helper works with. Geolocation runs on
// the client device; the API only ever receives a fix or one of the
// failure kinds below and must never treat either as fatal.
package geo

import "fmt"

// ErrorKind classifies why a geolocation attempt produced no fix.
type ErrorKind string

const (
	KindUnsupported      ErrorKind = "unsupported"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindUnavailable      ErrorKind = "unavailable"
)

// Error is a non-fatal geolocation failure. The draft it was meant to
// enrich is left unchanged.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("geolocation failed: %s", e.Kind)
}

// ParseKind maps a client-reported failure string to an ErrorKind.
// Unknown strings fall back to KindUnavailable so a misbehaving client
// cannot produce an unclassified error.
func ParseKind(s string) ErrorKind {
	switch ErrorKind(s) {
	case KindUnsupported, KindPermissionDenied:
		return ErrorKind(s)
	default:
		return KindUnavailable
	}
}

// Fix is a successful coordinate acquisition.
type Fix struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
