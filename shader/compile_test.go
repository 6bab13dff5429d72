package shader

import (
	"strings"
	"testing"

	"github.com/gogpu/naga/spirv"
)

func TestEmbeddedSourcesDeclareMain(t *testing.T) {
	if !strings.Contains(VertexSource(), "@vertex\nfn main(") {
		t.Error("vertex source lacks @vertex fn main")
	}
	if !strings.Contains(FragmentSource(), "@fragment\nfn main(") {
		t.Error("fragment source lacks @fragment fn main")
	}
	if !strings.Contains(FragmentSource(), "-5.55473") || !strings.Contains(FragmentSource(), "6.98316") {
		t.Error("fragment source lacks the spherical-Gaussian Fresnel constants")
	}
}

func TestCompileEmbeddedProgram(t *testing.T) {
	c := NewCompiler()
	if err := c.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	p, err := c.NewProgram()
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}

	for _, s := range []*CompiledStage{p.Vertex(), p.Fragment()} {
		if len(s.SPIRV) < 5 {
			t.Fatalf("%s: SPIR-V too short: %d words", s.Stage, len(s.SPIRV))
		}
		if s.SPIRV[0] != spirv.MagicNumber {
			t.Errorf("%s: magic = %#08x, want %#08x", s.Stage, s.SPIRV[0], spirv.MagicNumber)
		}
		if !strings.Contains(s.GLSL, "#version 300 es") {
			t.Errorf("%s: GLSL does not target ES 3.00:\n%s", s.Stage, s.GLSL)
		}
		if !strings.Contains(s.GLSL, "void main(") {
			t.Errorf("%s: GLSL lacks main", s.Stage)
		}
	}
}

func TestCompileStageRejectsWrongStage(t *testing.T) {
	if _, err := compileStage(fragmentSource, StageVertex, defaultOptions()); err == nil {
		t.Error("compiling the fragment source as a vertex stage succeeded")
	}
}

func TestCompileStageRejectsInvalidSource(t *testing.T) {
	if _, err := compileStage("fn main( {", StageVertex, defaultOptions()); err == nil {
		t.Error("compiling malformed WGSL succeeded")
	}
}
