package texfmt

import (
	"math"
	"math/bits"

	"github.com/gogpu/gputypes"
)

// Footprint is the storage layout of one mip level of a texture.
//
// For compressed formats rows are rows of blocks, and the padded extent is
// rounded up to whole blocks. For uncompressed formats rows are texel rows
// and the padded extent equals the requested one. Row-alignment padding
// required by a particular upload API is not included.
type Footprint struct {
	// Width and Height are the requested extent in pixels.
	Width  int
	Height int

	// PaddedWidth and PaddedHeight are the extent actually covered by storage.
	PaddedWidth  int
	PaddedHeight int

	// Layers is the number of array layers.
	Layers int

	// RowBytes is the byte stride of one row of texels or blocks.
	RowBytes int

	// Rows is the number of texel rows or block rows per layer.
	Rows int

	// LayerBytes is the size of one layer: RowBytes * Rows.
	LayerBytes int

	// TotalBytes is the size of all layers.
	TotalBytes int
}

// DataLayout returns the modern backend's upload layout for this footprint.
// The layout fields are 32-bit; values above math.MaxUint32 saturate and no
// device accepts such an upload.
func (f Footprint) DataLayout() gputypes.TextureDataLayout {
	return gputypes.TextureDataLayout{
		BytesPerRow:  saturateUint32(f.RowBytes),
		RowsPerImage: saturateUint32(f.Rows),
	}
}

func saturateUint32(n int) uint32 {
	if uint64(max(n, 0)) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(max(n, 0))
}

// ComputeFootprint computes the storage footprint of a single-layer texture
// of the given extent. It fails with ErrInvalidExtent when width or height is
// not positive.
func ComputeFootprint(desc FormatDescriptor, width, height int) (Footprint, error) {
	return footprint(desc, width, height, 1)
}

// FootprintOf looks up id and computes its footprint.
func FootprintOf(id string, width, height int) (Footprint, error) {
	desc, err := Lookup(id)
	if err != nil {
		return Footprint{}, err
	}
	return ComputeFootprint(desc, width, height)
}

// FootprintExtent computes the footprint of a layered texture. A zero
// DepthOrArrayLayers is treated as a single layer.
func FootprintExtent(desc FormatDescriptor, extent gputypes.Extent3D) (Footprint, error) {
	layers := int(extent.DepthOrArrayLayers)
	if layers == 0 {
		layers = 1
	}
	return footprint(desc, int(extent.Width), int(extent.Height), layers)
}

func footprint(desc FormatDescriptor, width, height, layers int) (Footprint, error) {
	if width <= 0 || height <= 0 || layers <= 0 {
		return Footprint{}, &FormatError{Op: "footprint", ID: desc.ID, Err: ErrInvalidExtent}
	}

	f := Footprint{
		Width:        width,
		Height:       height,
		PaddedWidth:  width,
		PaddedHeight: height,
		Layers:       layers,
	}

	if c := desc.Compressed; c != nil {
		blocksX := ceilDiv(width, c.BlockWidth)
		blocksY := ceilDiv(height, c.BlockHeight)
		f.PaddedWidth = blocksX * c.BlockWidth
		f.PaddedHeight = blocksY * c.BlockHeight
		f.RowBytes = blocksX * c.BlockBytes
		f.Rows = blocksY
	} else {
		bpt := desc.BytesPerTexel()
		if bpt <= 0 {
			return Footprint{}, &FormatError{Op: "footprint", ID: desc.ID, Err: ErrUnknownFormat}
		}
		f.RowBytes = width * bpt
		f.Rows = height
	}

	f.LayerBytes = f.RowBytes * f.Rows
	f.TotalBytes = f.LayerBytes * layers
	return f, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// MipExtent returns the extent of a mip level: each dimension is the base
// dimension shifted right by level, clamped to 1. A negative level is treated
// as level 0. The base extent is not validated; MipChain rejects
// non-positive extents.
func MipExtent(width, height, level int) (int, int) {
	level = max(0, level)
	return max(1, width>>level), max(1, height>>level)
}

// MipLevelCount returns the length of a full mip chain for the given base
// extent, down to and including the 1x1 level.
func MipLevelCount(width, height int) int {
	size := max(width, height)
	if size <= 0 {
		return 0
	}
	return bits.Len(uint(size))
}

// MipChain returns the footprint of each level of a mip chain. Block counts
// are recomputed from every level's own extent. A non-positive levels value
// requests the full chain; larger values are clamped to it.
func MipChain(desc FormatDescriptor, width, height, levels int) ([]Footprint, error) {
	if width <= 0 || height <= 0 {
		return nil, &FormatError{Op: "mip chain", ID: desc.ID, Err: ErrInvalidExtent}
	}
	full := MipLevelCount(width, height)
	if levels <= 0 || levels > full {
		levels = full
	}

	chain := make([]Footprint, 0, levels)
	for level := range levels {
		w, h := MipExtent(width, height, level)
		f, err := ComputeFootprint(desc, w, h)
		if err != nil {
			return nil, err
		}
		chain = append(chain, f)
	}
	return chain, nil
}

// ChainBytes sums the total size of a mip chain.
func ChainBytes(chain []Footprint) int {
	total := 0
	for _, f := range chain {
		total += f.TotalBytes
	}
	return total
}
