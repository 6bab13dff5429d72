package texfmt

import (
	"errors"
	"fmt"
	"slices"
)

// Canonical format identifiers.
const (
	R8Unorm            = "r8unorm"
	RG8Unorm           = "rg8unorm"
	RGB8Unorm          = "rgb8unorm"
	RGBA8Unorm         = "rgba8unorm"
	RGBA8UnormSRGB     = "rgba8unorm-srgb"
	BGRA8Unorm         = "bgra8unorm"
	BGRA8UnormSRGB     = "bgra8unorm-srgb"
	Luminance8         = "luminance8"
	LuminanceAlpha8    = "luminance-alpha8"
	Alpha8             = "alpha8"
	RGB565Unorm        = "rgb565unorm"
	RGBA4Unorm         = "rgba4unorm"
	RGB5A1Unorm        = "rgb5a1unorm"
	BC1RGBUnorm        = "bc1-rgb-unorm"
	BC1RGBAUnorm       = "bc1-rgba-unorm"
	BC1RGBAUnormSRGB   = "bc1-rgba-unorm-srgb"
	BC2RGBAUnorm       = "bc2-rgba-unorm"
	BC2RGBAUnormSRGB   = "bc2-rgba-unorm-srgb"
	BC3RGBAUnorm       = "bc3-rgba-unorm"
	BC3RGBAUnormSRGB   = "bc3-rgba-unorm-srgb"
	BC7RGBAUnorm       = "bc7-rgba-unorm"
	BC7RGBAUnormSRGB   = "bc7-rgba-unorm-srgb"
	ETC1RGBUnorm       = "etc1-rgb-unorm"
	ETC2RGB8Unorm      = "etc2-rgb8unorm"
	ETC2RGB8UnormSRGB  = "etc2-rgb8unorm-srgb"
	ETC2RGBA8Unorm     = "etc2-rgba8unorm"
	ETC2RGBA8UnormSRGB = "etc2-rgba8unorm-srgb"
	ASTC4x4Unorm       = "astc-4x4-rgba-unorm"
	ASTC4x4UnormSRGB   = "astc-4x4-rgba-unorm-srgb"
	PVRTC4RGBUnorm     = "pvrtc1-4bpp-rgb-unorm"
	PVRTC4RGBAUnorm    = "pvrtc1-4bpp-rgba-unorm"
)

func uncompressed(format, typ, sized GLEnum) FormatDescriptor {
	return FormatDescriptor{
		CanGenerateMipmaps: true,
		TexelBytes:         texelBytes(format, typ),
		Legacy: &LegacyBinding{
			UploadFormat:        format,
			UploadType:          typ,
			SizedInternalFormat: sized,
		},
	}
}

// block4x4 describes a 4x4 block family at the given bit rate.
func block4x4(bpp int, sized GLEnum, texStorage bool) FormatDescriptor {
	return FormatDescriptor{
		Compressed: &CompressedBlock{
			BlockBytes:          bpp * 16 / 8,
			BlockWidth:          4,
			BlockHeight:         4,
			BitsPerPixel:        bpp,
			SizedInternalFormat: sized,
			TexStorage:          texStorage,
		},
	}
}

func srgb(d FormatDescriptor) FormatDescriptor {
	d.SRGB = true
	return d
}

// formatTable is the process-wide descriptor table. It is populated by the
// declarations below, checked by validateTable in init and never written
// again.
//
// ETC1 and PVRTC cannot be allocated with texStorage2D on WebGL; every other
// compressed family can.
var formatTable = map[string]FormatDescriptor{
	R8Unorm:         uncompressed(GLRed, GLUnsignedByte, GLR8),
	RG8Unorm:        uncompressed(GLRG, GLUnsignedByte, GLRG8),
	RGB8Unorm:       uncompressed(GLRGB, GLUnsignedByte, GLRGB8),
	RGBA8Unorm:      uncompressed(GLRGBA, GLUnsignedByte, GLRGBA8),
	RGBA8UnormSRGB:  srgb(uncompressed(GLRGBA, GLUnsignedByte, GLSRGB8Alpha8)),
	Luminance8:      uncompressed(GLLuminance, GLUnsignedByte, GLLuminance),
	LuminanceAlpha8: uncompressed(GLLuminanceAlpha, GLUnsignedByte, GLLuminanceAlpha),
	Alpha8:          uncompressed(GLAlpha, GLUnsignedByte, GLAlpha),
	RGB565Unorm:     uncompressed(GLRGB, GLUnsignedShort565, GLRGB565),
	RGBA4Unorm:      uncompressed(GLRGBA, GLUnsignedShort4444, GLRGBA4),
	RGB5A1Unorm:     uncompressed(GLRGBA, GLUnsignedShort5551, GLRGB5A1),

	// No legacy representation: WebGL has no BGRA upload path.
	BGRA8Unorm:     {CanGenerateMipmaps: true, TexelBytes: 4},
	BGRA8UnormSRGB: {CanGenerateMipmaps: true, TexelBytes: 4, SRGB: true},

	BC1RGBUnorm:      block4x4(4, GLCompressedRGBS3TCDXT1, true),
	BC1RGBAUnorm:     block4x4(4, GLCompressedRGBAS3TCDXT1, true),
	BC1RGBAUnormSRGB: srgb(block4x4(4, GLCompressedSRGBAlphaS3TCDXT1, true)),
	BC2RGBAUnorm:     block4x4(8, GLCompressedRGBAS3TCDXT3, true),
	BC2RGBAUnormSRGB: srgb(block4x4(8, GLCompressedSRGBAlphaS3TCDXT3, true)),
	BC3RGBAUnorm:     block4x4(8, GLCompressedRGBAS3TCDXT5, true),
	BC3RGBAUnormSRGB: srgb(block4x4(8, GLCompressedSRGBAlphaS3TCDXT5, true)),
	BC7RGBAUnorm:     block4x4(8, GLCompressedRGBABPTCUnorm, true),
	BC7RGBAUnormSRGB: srgb(block4x4(8, GLCompressedSRGBAlphaBPTCUnorm, true)),

	ETC1RGBUnorm:       block4x4(4, GLETC1RGB8, false),
	ETC2RGB8Unorm:      block4x4(4, GLCompressedRGB8ETC2, true),
	ETC2RGB8UnormSRGB:  srgb(block4x4(4, GLCompressedSRGB8ETC2, true)),
	ETC2RGBA8Unorm:     block4x4(8, GLCompressedRGBA8ETC2EAC, true),
	ETC2RGBA8UnormSRGB: srgb(block4x4(8, GLCompressedSRGB8Alpha8ETC2EAC, true)),

	ASTC4x4Unorm:     block4x4(8, GLCompressedRGBAASTC4x4, true),
	ASTC4x4UnormSRGB: srgb(block4x4(8, GLCompressedSRGB8Alpha8ASTC4x4, true)),

	PVRTC4RGBUnorm:  block4x4(4, GLCompressedRGBPVRTC4BPPV1, false),
	PVRTC4RGBAUnorm: block4x4(4, GLCompressedRGBAPVRTC4BPPV1, false),
}

// formatIDs is the sorted key set of formatTable.
var formatIDs []string

func init() {
	for id, d := range formatTable {
		d.ID = id
		formatTable[id] = d
	}
	if err := validateTable(formatTable); err != nil {
		panic(err)
	}
	formatIDs = make([]string, 0, len(formatTable))
	for id := range formatTable {
		formatIDs = append(formatIDs, id)
	}
	slices.Sort(formatIDs)
}

// Lookup returns a copy of the descriptor registered under id.
// It fails with ErrUnknownFormat when id is not in the table.
func Lookup(id string) (FormatDescriptor, error) {
	d, ok := formatTable[id]
	if !ok {
		return FormatDescriptor{}, &FormatError{Op: "lookup", ID: id, Err: ErrUnknownFormat}
	}
	return d.clone(), nil
}

// MustLookup is like Lookup but panics if id is unknown.
// It is intended for static initializers naming built-in formats.
func MustLookup(id string) FormatDescriptor {
	d, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return d
}

// Has reports whether id is a registered format.
func Has(id string) bool {
	_, ok := formatTable[id]
	return ok
}

// Formats returns all registered identifiers in sorted order.
// The returned slice is a copy.
func Formats() []string {
	return slices.Clone(formatIDs)
}

// validateTable checks the structural invariants of a descriptor table:
// compressed and uncompressed bindings are mutually exclusive, block sizes
// agree with the bit rate, and compressed formats never generate mipmaps.
func validateTable(table map[string]FormatDescriptor) error {
	for id, d := range table {
		if err := validateDescriptor(d); err != nil {
			return fmt.Errorf("texfmt: invalid descriptor %q: %w", id, err)
		}
	}
	return nil
}

func validateDescriptor(d FormatDescriptor) error {
	if d.ID == "" {
		return errors.New("empty identifier")
	}
	c := d.Compressed
	if c == nil {
		if d.TexelBytes <= 0 {
			return errors.New("uncompressed format without texel size")
		}
		if d.Legacy != nil {
			if n := texelBytes(d.Legacy.UploadFormat, d.Legacy.UploadType); n != d.TexelBytes {
				return fmt.Errorf("upload %s/%s is %d bytes per texel, descriptor says %d",
					d.Legacy.UploadFormat, d.Legacy.UploadType, n, d.TexelBytes)
			}
		}
		return nil
	}
	if d.Legacy != nil {
		return errors.New("compressed format carries an upload binding")
	}
	if d.TexelBytes != 0 {
		return errors.New("compressed format carries a texel size")
	}
	if d.CanGenerateMipmaps {
		return errors.New("compressed format marked as mip-generatable")
	}
	if c.BlockBytes <= 0 || c.BlockWidth <= 0 || c.BlockHeight <= 0 {
		return fmt.Errorf("non-positive block geometry %dx%d/%d bytes", c.BlockWidth, c.BlockHeight, c.BlockBytes)
	}
	if c.BlockBytes*8 != c.BitsPerPixel*c.BlockWidth*c.BlockHeight {
		return fmt.Errorf("%d-byte block does not match %d bpp over %dx%d",
			c.BlockBytes, c.BitsPerPixel, c.BlockWidth, c.BlockHeight)
	}
	if c.SizedInternalFormat == 0 {
		return errors.New("compressed format without internal format")
	}
	return nil
}
