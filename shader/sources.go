package shader

import _ "embed"

// EntryPoint is the entry point name of both program stages.
const EntryPoint = "main"

//go:embed shaders/pbr_vertex.wgsl
var vertexSource string

//go:embed shaders/pbr_fragment.wgsl
var fragmentSource string

// VertexSource returns the WGSL source of the vertex stage.
func VertexSource() string { return vertexSource }

// FragmentSource returns the WGSL source of the fragment stage.
func FragmentSource() string { return fragmentSource }
