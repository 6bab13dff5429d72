package shader

import (
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/spirv"
)

// Option configures a Compiler.
type Option func(*options)

type options struct {
	spirvVersion spirv.Version
	glslVersion  glsl.Version
	validate     bool
	debug        bool
}

func defaultOptions() options {
	return options{
		spirvVersion: spirv.Version1_3,
		glslVersion:  glsl.VersionES300,
		validate:     true,
	}
}

// WithSPIRVVersion sets the SPIR-V version emitted for the modern backend.
func WithSPIRVVersion(v spirv.Version) Option {
	return func(o *options) {
		o.spirvVersion = v
	}
}

// WithGLSLVersion sets the GLSL dialect emitted for the legacy backend.
// The default is GLSL ES 3.00 (WebGL 2).
func WithGLSLVersion(v glsl.Version) Option {
	return func(o *options) {
		o.glslVersion = v
	}
}

// WithValidation enables or disables IR validation before code generation.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithDebugInfo emits SPIR-V debug names.
func WithDebugInfo(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}
