// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import "fmt"

// Status is the outcome of one SetBuffersDataSpace call. Zero means the
// platform accepted the data space; the two negative values below are
// produced by this package; any other negative value is a platform error
// code returned verbatim.
type Status int32

const (
	// StatusOK: the platform call succeeded.
	StatusOK Status = 0

	// StatusNoWindow: no native window could be obtained from the surface.
	// The platform setter was not invoked.
	StatusNoWindow Status = -1

	// StatusUnavailable: ANativeWindow_setBuffersDataSpace does not exist on
	// this OS release (API < 28). The surface was not touched.
	StatusUnavailable Status = -2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoWindow:
		return "no native window"
	case StatusUnavailable:
		return "setBuffersDataSpace unavailable"
	}
	return fmt.Sprintf("platform error %d", int32(s))
}
