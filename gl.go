package texfmt

import "fmt"

// GLEnum is a Khronos OpenGL ES / WebGL enumeration value as passed to
// texImage2D, texStorage2D and compressedTexImage2D.
type GLEnum uint32

// Pixel upload formats.
const (
	GLRed            GLEnum = 0x1903
	GLAlpha          GLEnum = 0x1906
	GLRGB            GLEnum = 0x1907
	GLRGBA           GLEnum = 0x1908
	GLLuminance      GLEnum = 0x1909
	GLLuminanceAlpha GLEnum = 0x190A
	GLRG             GLEnum = 0x8227
)

// Pixel upload types.
const (
	GLUnsignedByte      GLEnum = 0x1401
	GLUnsignedShort4444 GLEnum = 0x8033
	GLUnsignedShort5551 GLEnum = 0x8034
	GLUnsignedShort565  GLEnum = 0x8363
)

// Sized internal formats for uncompressed textures.
const (
	GLRGBA4       GLEnum = 0x8056
	GLRGB5A1      GLEnum = 0x8057
	GLRGB8        GLEnum = 0x8051
	GLRGBA8       GLEnum = 0x8058
	GLR8          GLEnum = 0x8229
	GLRG8         GLEnum = 0x822B
	GLSRGB8Alpha8 GLEnum = 0x8C43
	GLRGB565      GLEnum = 0x8D62
)

// Compressed internal formats, grouped by the extension that exposes them.
const (
	// WEBGL_compressed_texture_s3tc
	GLCompressedRGBS3TCDXT1  GLEnum = 0x83F0
	GLCompressedRGBAS3TCDXT1 GLEnum = 0x83F1
	GLCompressedRGBAS3TCDXT3 GLEnum = 0x83F2
	GLCompressedRGBAS3TCDXT5 GLEnum = 0x83F3

	// WEBGL_compressed_texture_s3tc_srgb
	GLCompressedSRGBAlphaS3TCDXT1 GLEnum = 0x8C4D
	GLCompressedSRGBAlphaS3TCDXT3 GLEnum = 0x8C4E
	GLCompressedSRGBAlphaS3TCDXT5 GLEnum = 0x8C4F

	// EXT_texture_compression_bptc
	GLCompressedRGBABPTCUnorm      GLEnum = 0x8E8C
	GLCompressedSRGBAlphaBPTCUnorm GLEnum = 0x8E8D

	// WEBGL_compressed_texture_etc1
	GLETC1RGB8 GLEnum = 0x8D64

	// WEBGL_compressed_texture_etc
	GLCompressedRGB8ETC2           GLEnum = 0x9274
	GLCompressedSRGB8ETC2          GLEnum = 0x9275
	GLCompressedRGBA8ETC2EAC       GLEnum = 0x9278
	GLCompressedSRGB8Alpha8ETC2EAC GLEnum = 0x9279

	// WEBGL_compressed_texture_astc
	GLCompressedRGBAASTC4x4        GLEnum = 0x93B0
	GLCompressedSRGB8Alpha8ASTC4x4 GLEnum = 0x93D0

	// WEBGL_compressed_texture_pvrtc
	GLCompressedRGBPVRTC4BPPV1  GLEnum = 0x8C00
	GLCompressedRGBAPVRTC4BPPV1 GLEnum = 0x8C02
)

var glEnumNames = map[GLEnum]string{
	GLRed:                          "RED",
	GLAlpha:                        "ALPHA",
	GLRGB:                          "RGB",
	GLRGBA:                         "RGBA",
	GLLuminance:                    "LUMINANCE",
	GLLuminanceAlpha:               "LUMINANCE_ALPHA",
	GLRG:                           "RG",
	GLUnsignedByte:                 "UNSIGNED_BYTE",
	GLUnsignedShort4444:            "UNSIGNED_SHORT_4_4_4_4",
	GLUnsignedShort5551:            "UNSIGNED_SHORT_5_5_5_1",
	GLUnsignedShort565:             "UNSIGNED_SHORT_5_6_5",
	GLRGBA4:                        "RGBA4",
	GLRGB5A1:                       "RGB5_A1",
	GLRGB8:                         "RGB8",
	GLRGBA8:                        "RGBA8",
	GLR8:                           "R8",
	GLRG8:                          "RG8",
	GLSRGB8Alpha8:                  "SRGB8_ALPHA8",
	GLRGB565:                       "RGB565",
	GLCompressedRGBS3TCDXT1:        "COMPRESSED_RGB_S3TC_DXT1_EXT",
	GLCompressedRGBAS3TCDXT1:       "COMPRESSED_RGBA_S3TC_DXT1_EXT",
	GLCompressedRGBAS3TCDXT3:       "COMPRESSED_RGBA_S3TC_DXT3_EXT",
	GLCompressedRGBAS3TCDXT5:       "COMPRESSED_RGBA_S3TC_DXT5_EXT",
	GLCompressedSRGBAlphaS3TCDXT1:  "COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT",
	GLCompressedSRGBAlphaS3TCDXT3:  "COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT",
	GLCompressedSRGBAlphaS3TCDXT5:  "COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT",
	GLCompressedRGBABPTCUnorm:      "COMPRESSED_RGBA_BPTC_UNORM_EXT",
	GLCompressedSRGBAlphaBPTCUnorm: "COMPRESSED_SRGB_ALPHA_BPTC_UNORM_EXT",
	GLETC1RGB8:                     "ETC1_RGB8_OES",
	GLCompressedRGB8ETC2:           "COMPRESSED_RGB8_ETC2",
	GLCompressedSRGB8ETC2:          "COMPRESSED_SRGB8_ETC2",
	GLCompressedRGBA8ETC2EAC:       "COMPRESSED_RGBA8_ETC2_EAC",
	GLCompressedSRGB8Alpha8ETC2EAC: "COMPRESSED_SRGB8_ALPHA8_ETC2_EAC",
	GLCompressedRGBAASTC4x4:        "COMPRESSED_RGBA_ASTC_4x4_KHR",
	GLCompressedSRGB8Alpha8ASTC4x4: "COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR",
	GLCompressedRGBPVRTC4BPPV1:     "COMPRESSED_RGB_PVRTC_4BPPV1_IMG",
	GLCompressedRGBAPVRTC4BPPV1:    "COMPRESSED_RGBA_PVRTC_4BPPV1_IMG",
}

// String returns the GL constant name without the GL_ prefix.
func (e GLEnum) String() string {
	if name, ok := glEnumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("GLEnum(0x%04X)", uint32(e))
}

// componentCount returns the number of components carried by an upload format.
func componentCount(format GLEnum) int {
	switch format {
	case GLRed, GLAlpha, GLLuminance:
		return 1
	case GLRG, GLLuminanceAlpha:
		return 2
	case GLRGB:
		return 3
	case GLRGBA:
		return 4
	default:
		return 0
	}
}

// texelBytes derives the size of one texel from an upload format/type pair.
// Packed 16-bit types hold all components in a single value.
func texelBytes(format, typ GLEnum) int {
	switch typ {
	case GLUnsignedByte:
		return componentCount(format)
	case GLUnsignedShort565, GLUnsignedShort4444, GLUnsignedShort5551:
		return 2
	default:
		return 0
	}
}
