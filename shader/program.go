package shader

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// Program is an instance of the shading program with its two bound stages.
type Program struct {
	vertex   *CompiledStage
	fragment *CompiledStage
}

// Vertex returns the vertex stage.
func (p *Program) Vertex() *CompiledStage { return p.vertex }

// Fragment returns the fragment stage.
func (p *Program) Fragment() *CompiledStage { return p.fragment }

// Stage returns the compiled stage s, or nil for an unknown stage.
func (p *Program) Stage(s Stage) *CompiledStage {
	switch s {
	case StageVertex:
		return p.vertex
	case StageFragment:
		return p.fragment
	default:
		return nil
	}
}

// ModuleFactory creates and destroys shader modules. hal.Device satisfies it.
type ModuleFactory interface {
	CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error)
	DestroyShaderModule(module hal.ShaderModule)
}

// CreateModules creates the vertex and fragment shader modules on a modern
// backend device. If the fragment module fails, the vertex module is
// destroyed before returning.
func (p *Program) CreateModules(f ModuleFactory) (vertex, fragment hal.ShaderModule, err error) {
	vertex, err = createModule(f, p.vertex)
	if err != nil {
		return nil, nil, err
	}
	fragment, err = createModule(f, p.fragment)
	if err != nil {
		f.DestroyShaderModule(vertex)
		return nil, nil, err
	}
	return vertex, fragment, nil
}

func createModule(f ModuleFactory, s *CompiledStage) (hal.ShaderModule, error) {
	m, err := f.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "pbr_" + s.Stage.String(),
		Source: hal.ShaderSource{
			SPIRV: s.SPIRV,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("shader: create %s module: %w", s.Stage, err)
	}
	return m, nil
}
