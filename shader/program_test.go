package shader

import (
	"errors"
	"testing"

	"github.com/gogpu/wgpu/hal"
)

// mockShaderModule is a test double for hal.ShaderModule.
type mockShaderModule struct {
	label string
	words int
}

// Destroy implements hal.Resource.
func (m *mockShaderModule) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (m *mockShaderModule) NativeHandle() uintptr { return 0 }

// mockModuleFactory records shader module creation like a hal.Device.
type mockModuleFactory struct {
	failLabel string
	created   []string
	destroyed []string
}

func (f *mockModuleFactory) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if desc.Label == f.failLabel {
		return nil, errors.New("device lost")
	}
	f.created = append(f.created, desc.Label)
	return &mockShaderModule{label: desc.Label, words: len(desc.Source.SPIRV)}, nil
}

func (f *mockModuleFactory) DestroyShaderModule(m hal.ShaderModule) {
	f.destroyed = append(f.destroyed, m.(*mockShaderModule).label)
}

func readyProgram(t *testing.T) *Program {
	t.Helper()
	c, _, release := stubCompiler(t, nil)
	close(release)
	if err := c.Wait(); err != nil {
		t.Fatal(err)
	}
	return c.MustNewProgram()
}

func TestCreateModules(t *testing.T) {
	p := readyProgram(t)
	f := &mockModuleFactory{}

	vs, fs, err := p.CreateModules(f)
	if err != nil {
		t.Fatalf("CreateModules: %v", err)
	}
	if got := vs.(*mockShaderModule); got.label != "pbr_vertex" || got.words != len(p.Vertex().SPIRV) {
		t.Errorf("vertex module = %+v", got)
	}
	if got := fs.(*mockShaderModule); got.label != "pbr_fragment" {
		t.Errorf("fragment module = %+v", got)
	}
	if len(f.destroyed) != 0 {
		t.Errorf("destroyed %v on success", f.destroyed)
	}
}

func TestCreateModulesReleasesVertexOnFailure(t *testing.T) {
	p := readyProgram(t)
	f := &mockModuleFactory{failLabel: "pbr_fragment"}

	vs, fs, err := p.CreateModules(f)
	if err == nil {
		t.Fatal("CreateModules succeeded despite fragment failure")
	}
	if vs != nil || fs != nil {
		t.Error("CreateModules returned modules on failure")
	}
	if len(f.destroyed) != 1 || f.destroyed[0] != "pbr_vertex" {
		t.Errorf("destroyed = %v, want [pbr_vertex]", f.destroyed)
	}
}

func TestCreateModulesVertexFailure(t *testing.T) {
	p := readyProgram(t)
	f := &mockModuleFactory{failLabel: "pbr_vertex"}

	if _, _, err := p.CreateModules(f); err == nil {
		t.Fatal("CreateModules succeeded despite vertex failure")
	}
	if len(f.created) != 0 {
		t.Errorf("created %v after vertex failure", f.created)
	}
}
