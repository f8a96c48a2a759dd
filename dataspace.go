// Copyright (c) 2026 Lumakit
// Licensed under the MIT License. See LICENSE file in the project root.

package hdrsurface

import "fmt"

// DataSpace is the numeric tag SurfaceFlinger reads from each buffer to
// decide how to interpret its pixels: a color standard, a transfer function
// and a range packed into one 32-bit value, matching the NDK ADataSpace
// layout. Values outside the named constants are passed to the platform
// verbatim.
type DataSpace int32

// Bit-field layout of a data space value (ADataSpace).
const (
	dataSpaceStandardShift = 16
	dataSpaceStandardMask  = 0x3f << dataSpaceStandardShift

	dataSpaceTransferShift = 22
	dataSpaceTransferMask  = 0x1f << dataSpaceTransferShift

	dataSpaceRangeShift = 27
	dataSpaceRangeMask  = 0x7 << dataSpaceRangeShift
)

// Component values used by the composed constants below.
const (
	// StandardBT2020 selects the BT.2020 primaries.
	StandardBT2020 DataSpace = 6 << dataSpaceStandardShift

	// TransferST2084 selects the PQ (SMPTE ST 2084) transfer function.
	TransferST2084 DataSpace = 7 << dataSpaceTransferShift

	// TransferHLG selects the Hybrid Log-Gamma transfer function.
	TransferHLG DataSpace = 5 << dataSpaceTransferShift

	// RangeFull selects full-range encoding.
	RangeFull DataSpace = 1 << dataSpaceRangeShift
)

const (
	// DataSpaceUnknown lets the platform pick a default interpretation.
	DataSpaceUnknown DataSpace = 0

	// DataSpaceBT2020PQ (0x09C60000) produces HDR10 output.
	DataSpaceBT2020PQ = StandardBT2020 | TransferST2084 | RangeFull

	// DataSpaceBT2020HLG (0x09460000) produces HLG output.
	DataSpaceBT2020HLG = StandardBT2020 | TransferHLG | RangeFull
)

// Standard returns the color-standard component of d.
func (d DataSpace) Standard() DataSpace { return d & dataSpaceStandardMask }

// Transfer returns the transfer-function component of d.
func (d DataSpace) Transfer() DataSpace { return d & dataSpaceTransferMask }

// Range returns the range component of d.
func (d DataSpace) Range() DataSpace { return d & dataSpaceRangeMask }

// IsHDR reports whether d uses an HDR transfer function (PQ or HLG).
func (d DataSpace) IsHDR() bool {
	t := d.Transfer()
	return t == TransferST2084 || t == TransferHLG
}

func (d DataSpace) String() string {
	switch d {
	case DataSpaceUnknown:
		return "unknown"
	case DataSpaceBT2020PQ:
		return "BT2020_PQ"
	case DataSpaceBT2020HLG:
		return "BT2020_HLG"
	}
	return fmt.Sprintf("0x%08x", uint32(d))
}
