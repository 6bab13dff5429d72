// Package texfmt is a texture-format capability registry for GPU backends.
//
// # Overview
//
// texfmt maps canonical, backend-neutral texture format identifiers such as
// "rgba8unorm", "bc7-rgba-unorm" or "astc-4x4-rgba-unorm" to the parameters a
// renderer needs to allocate and upload a texture on one of two backends:
//
//   - BackendLegacy: a fixed-format backend (OpenGL ES / WebGL enums).
//     Uncompressed formats resolve to an upload format, upload type and sized
//     internal format. Compressed formats resolve to a sized internal format
//     and a flag telling whether immutable storage must be allocated first.
//   - BackendModern: an explicit-format backend (WebGPU). Format tokens mirror
//     the canonical identifiers one-to-one.
//
// # Quick Start
//
//	desc, err := texfmt.Lookup("bc1-rgb-unorm")
//	if err != nil {
//	    return err
//	}
//	fp, err := texfmt.ComputeFootprint(desc, 10, 10) // 3x3 blocks of 8 bytes
//	fmt.Println(fp.TotalBytes)                        // 72
//
//	params, err := texfmt.Resolve("bgra8unorm", texfmt.BackendLegacy)
//	if errors.Is(err, texfmt.ErrUnsupportedOnBackend) {
//	    // substitute "rgba8unorm" or reject the asset
//	}
//
// # Block-compressed formats
//
// Compressed formats store fixed-size byte blocks covering a tile of pixels.
// Extents that are not a multiple of the block size still allocate a whole
// block for the remainder. Mip levels must be measured one level at a time
// with MipExtent or MipChain; block counts do not scale linearly with level.
//
// # Concurrency
//
// The format table is built and validated once at package initialization and
// is never modified afterwards. All lookups and geometry calculations are pure
// and safe for concurrent use.
//
// The companion package texfmt/shader bootstraps the physically based shading
// program used to render textures loaded through this registry.
package texfmt
