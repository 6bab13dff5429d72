package texfmt

// FormatDescriptor describes one canonical pixel or block encoding.
//
// A descriptor is either uncompressed (Compressed is nil, TexelBytes > 0) or
// block-compressed (Compressed is non-nil). Uncompressed formats usually carry
// a Legacy binding; a nil Legacy means the legacy backend has no
// representation for the format. Descriptors returned by Lookup are private
// copies; changing one never affects the registry.
type FormatDescriptor struct {
	// ID is the canonical identifier. It doubles as the modern backend's
	// native format token.
	ID string

	// CanGenerateMipmaps reports whether automatic mip-chain generation is
	// well-defined. Always false for compressed formats.
	CanGenerateMipmaps bool

	// SRGB marks sRGB-encoded variants.
	SRGB bool

	// TexelBytes is the size of one texel for uncompressed formats.
	TexelBytes int

	// Legacy holds the fixed-format backend binding of an uncompressed format.
	Legacy *LegacyBinding

	// Compressed holds the block geometry of a block-compressed format.
	Compressed *CompressedBlock
}

// LegacyBinding is the upload parameter set for an uncompressed format on
// the fixed-format backend.
type LegacyBinding struct {
	UploadFormat        GLEnum
	UploadType          GLEnum
	SizedInternalFormat GLEnum
}

// CompressedBlock describes the block geometry of a block-compressed format.
type CompressedBlock struct {
	// BlockBytes is the size in bytes of one compressed block.
	BlockBytes int

	// BlockWidth and BlockHeight are the pixel dimensions covered by a block.
	BlockWidth  int
	BlockHeight int

	// BitsPerPixel is the nominal bit rate of the encoding.
	BitsPerPixel int

	// SizedInternalFormat is the legacy backend's compressed format enum.
	SizedInternalFormat GLEnum

	// TexStorage reports whether the legacy backend must allocate immutable
	// storage (texStorage2D) before uploading blocks. When false the data is
	// uploaded directly with compressedTexImage2D.
	TexStorage bool
}

// clone returns a copy of d that shares no memory with d.
func (d FormatDescriptor) clone() FormatDescriptor {
	if d.Legacy != nil {
		l := *d.Legacy
		d.Legacy = &l
	}
	if d.Compressed != nil {
		c := *d.Compressed
		d.Compressed = &c
	}
	return d
}

// IsCompressed reports whether the format is block-compressed.
func (d FormatDescriptor) IsCompressed() bool { return d.Compressed != nil }

// BytesPerTexel returns the size of one texel, or 0 for compressed formats.
func (d FormatDescriptor) BytesPerTexel() int {
	if d.Compressed != nil {
		return 0
	}
	if d.Legacy != nil {
		return texelBytes(d.Legacy.UploadFormat, d.Legacy.UploadType)
	}
	return d.TexelBytes
}
