package texfmt

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// Backend identifies a GPU backend capability model.
type Backend uint8

const (
	// BackendLegacy is the fixed-format backend (OpenGL ES 3 / WebGL 2).
	BackendLegacy Backend = iota + 1

	// BackendModern is the explicit-format backend (WebGPU).
	BackendModern
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendLegacy:
		return "legacy"
	case BackendModern:
		return "modern"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// ParseBackend parses a backend name. It accepts "legacy", "gl", "webgl",
// "modern" and "webgpu", case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legacy", "gl", "webgl":
		return BackendLegacy, nil
	case "modern", "webgpu":
		return BackendModern, nil
	default:
		return 0, fmt.Errorf("texfmt: unknown backend %q", s)
	}
}

// BindingParams are the backend-specific parameters needed to allocate and
// upload a texture.
//
// On BackendLegacy an uncompressed format sets UploadFormat, UploadType and
// SizedInternalFormat; a compressed format sets Compressed,
// SizedInternalFormat and TexStorage. On BackendModern only Token is set.
type BindingParams struct {
	Backend Backend

	UploadFormat        GLEnum
	UploadType          GLEnum
	SizedInternalFormat GLEnum

	// Compressed reports that the legacy upload goes through
	// compressedTexImage2D / compressedTexSubImage2D.
	Compressed bool

	// TexStorage reports that immutable storage must be allocated before
	// a compressed upload.
	TexStorage bool

	// Token is the modern backend's native format token.
	Token string
}

// Resolve returns the binding parameters of format id on backend b.
//
// It fails with ErrUnknownFormat for identifiers outside the table and with
// ErrUnsupportedOnBackend when the format has no representation on b, as is
// the case for "bgra8unorm" on BackendLegacy. The caller decides whether to
// substitute another format or reject the asset.
func Resolve(id string, b Backend) (BindingParams, error) {
	desc, err := Lookup(id)
	if err != nil {
		return BindingParams{}, err
	}
	return ResolveDescriptor(desc, b)
}

// ResolveDescriptor is like Resolve for an already looked-up descriptor.
func ResolveDescriptor(desc FormatDescriptor, b Backend) (BindingParams, error) {
	switch b {
	case BackendModern:
		return BindingParams{Backend: b, Token: desc.ID}, nil

	case BackendLegacy:
		if c := desc.Compressed; c != nil {
			Logger().Debug("texfmt: resolved compressed legacy binding",
				"format", desc.ID,
				"internalFormat", c.SizedInternalFormat.String(),
				"texStorage", c.TexStorage)
			return BindingParams{
				Backend:             b,
				SizedInternalFormat: c.SizedInternalFormat,
				Compressed:          true,
				TexStorage:          c.TexStorage,
			}, nil
		}
		if l := desc.Legacy; l != nil {
			return BindingParams{
				Backend:             b,
				UploadFormat:        l.UploadFormat,
				UploadType:          l.UploadType,
				SizedInternalFormat: l.SizedInternalFormat,
			}, nil
		}
		Logger().Warn("texfmt: format has no legacy binding", "format", desc.ID)
		return BindingParams{}, &FormatError{Op: "resolve", ID: desc.ID, Backend: b, Err: ErrUnsupportedOnBackend}

	default:
		return BindingParams{}, &FormatError{Op: "resolve", ID: desc.ID, Backend: b, Err: ErrUnsupportedOnBackend}
	}
}

// CanAutoGenerateMipmaps reports whether the renderer may generate the mip
// chain of format id at runtime. It is the single source of truth for that
// policy: compressed formats always report false.
func CanAutoGenerateMipmaps(id string) (bool, error) {
	desc, err := Lookup(id)
	if err != nil {
		return false, err
	}
	return desc.CanGenerateMipmaps, nil
}

// modernFormats maps canonical tokens to the typed gputypes enumeration for
// the formats render targets and upload paths use in the gogpu stack.
var modernFormats = map[string]gputypes.TextureFormat{
	RGBA8Unorm: gputypes.TextureFormatRGBA8Unorm,
	BGRA8Unorm: gputypes.TextureFormatBGRA8Unorm,
	R8Unorm:    gputypes.TextureFormatR8Unorm,
}

// ModernFormat returns the typed WebGPU format for id. The second result is
// false when id has no typed counterpart; the canonical token from Resolve is
// then passed to the backend unchanged.
func ModernFormat(id string) (gputypes.TextureFormat, bool) {
	f, ok := modernFormats[id]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return f, true
}
