package shader

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/gogpu/texfmt"
)

// Stage identifies a program stage.
type Stage uint8

const (
	StageVertex Stage = iota + 1
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

func (s Stage) irStage() ir.ShaderStage {
	if s == StageFragment {
		return ir.StageFragment
	}
	return ir.StageVertex
}

// StageHandle is an opaque identifier of a compiled stage.
type StageHandle uint64

// InvalidStageHandle is the zero handle.
const InvalidStageHandle StageHandle = 0

var nextStageHandle atomic.Uint64

// CompiledStage is one compiled program stage. It is shared read-only by
// every Program built from the same Compiler.
type CompiledStage struct {
	Handle     StageHandle
	Stage      Stage
	EntryPoint string

	// SPIRV is the modern backend module as little-endian 32-bit words.
	SPIRV []uint32

	// GLSL is the legacy backend source.
	GLSL string
}

// compileFunc turns one WGSL stage into a CompiledStage.
type compileFunc func(source string, stage Stage, opts options) (*CompiledStage, error)

// Compiler performs the one-time compilation of the shading program.
// The zero value is not usable; create one with NewCompiler.
type Compiler struct {
	opts    options
	compile compileFunc

	once  sync.Once
	done  chan struct{}
	ready atomic.Bool

	// Written before done is closed.
	vertex   *CompiledStage
	fragment *CompiledStage
	err      error
}

// NewCompiler returns an uninitialized compiler.
func NewCompiler(opts ...Option) *Compiler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compiler{
		opts:    o,
		compile: compileStage,
		done:    make(chan struct{}),
	}
}

// Init starts the compilation if it has not started yet and returns a
// channel that is closed once it has finished. Concurrent and repeated calls
// share the same compilation. Compilation is not cancelable.
func (c *Compiler) Init() <-chan struct{} {
	c.once.Do(func() {
		go c.run()
	})
	return c.done
}

// Wait starts the compilation if needed and blocks until it finishes.
// A compilation failure is permanent: every call returns the same error.
func (c *Compiler) Wait() error {
	<-c.Init()
	return c.err
}

// Ready reports whether the compiler finished successfully.
func (c *Compiler) Ready() bool {
	return c.ready.Load()
}

func (c *Compiler) run() {
	defer close(c.done)

	log := texfmt.Logger()
	start := time.Now()

	vertex, err := c.compile(vertexSource, StageVertex, c.opts)
	if err != nil {
		c.err = fmt.Errorf("shader: compile vertex stage: %w", err)
		log.Warn("shader: compilation failed", "err", c.err)
		return
	}
	fragment, err := c.compile(fragmentSource, StageFragment, c.opts)
	if err != nil {
		c.err = fmt.Errorf("shader: compile fragment stage: %w", err)
		log.Warn("shader: compilation failed", "err", c.err)
		return
	}

	c.vertex, c.fragment = vertex, fragment
	c.ready.Store(true)
	log.Info("shader: compiler ready",
		"elapsed", time.Since(start),
		"vertexWords", len(vertex.SPIRV),
		"fragmentWords", len(fragment.SPIRV))
}

// NewProgram builds a program from the compiled stages. It fails with
// texfmt.ErrShaderCompilerNotReady until the compiler is Ready. Building
// further programs is cheap; they share the compiled stages.
func (c *Compiler) NewProgram() (*Program, error) {
	if !c.ready.Load() {
		return nil, fmt.Errorf("shader: new program: %w", texfmt.ErrShaderCompilerNotReady)
	}
	return &Program{vertex: c.vertex, fragment: c.fragment}, nil
}

// MustNewProgram is like NewProgram but panics when the compiler is not
// Ready. Building a program too early is a programming error.
func (c *Compiler) MustNewProgram() *Program {
	p, err := c.NewProgram()
	if err != nil {
		panic(err)
	}
	return p
}

// compileStage compiles one WGSL stage to SPIR-V and GLSL with naga.
func compileStage(source string, stage Stage, opts options) (*CompiledStage, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, err
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}
	if err := checkEntryPoint(module, stage); err != nil {
		return nil, err
	}
	if opts.validate {
		validationErrors, err := naga.Validate(module)
		if err != nil {
			return nil, fmt.Errorf("validation error: %w", err)
		}
		if len(validationErrors) > 0 {
			return nil, fmt.Errorf("validation failed: %w", &validationErrors[0])
		}
	}

	spirvBytes, err := naga.GenerateSPIRV(module, spirv.Options{
		Version: opts.spirvVersion,
		Debug:   opts.debug,
	})
	if err != nil {
		return nil, err
	}

	// The SPIR-V writer may annotate the module, so GLSL gets a fresh one.
	glslModule, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lowering error: %w", err)
	}
	glslSource, _, err := glsl.Compile(glslModule, glsl.Options{
		LangVersion:        opts.glslVersion,
		EntryPoint:         EntryPoint,
		ForceHighPrecision: true,
	})
	if err != nil {
		return nil, err
	}

	texfmt.Logger().Debug("shader: compiled stage",
		"stage", stage.String(),
		"spirvBytes", len(spirvBytes),
		"glslBytes", len(glslSource))

	return &CompiledStage{
		Handle:     StageHandle(nextStageHandle.Add(1)),
		Stage:      stage,
		EntryPoint: EntryPoint,
		SPIRV:      spirvWords(spirvBytes),
		GLSL:       glslSource,
	}, nil
}

// checkEntryPoint verifies that the module exposes EntryPoint for stage.
func checkEntryPoint(module *ir.Module, stage Stage) error {
	for _, ep := range module.EntryPoints {
		if ep.Name == EntryPoint && ep.Stage == stage.irStage() {
			return nil
		}
	}
	return fmt.Errorf("no %s entry point %q", stage, EntryPoint)
}

// spirvWords converts a SPIR-V byte stream to little-endian 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}

var (
	defaultOnce     sync.Once
	defaultCompiler *Compiler
)

// Default returns the process-wide compiler used by the package-level
// functions.
func Default() *Compiler {
	defaultOnce.Do(func() {
		defaultCompiler = NewCompiler()
	})
	return defaultCompiler
}

// Init starts the process-wide compilation. See Compiler.Init.
func Init() <-chan struct{} { return Default().Init() }

// Wait blocks until the process-wide compilation finishes. See Compiler.Wait.
func Wait() error { return Default().Wait() }

// Ready reports whether the process-wide compiler is Ready.
func Ready() bool { return Default().Ready() }

// NewProgram builds a program from the process-wide compiler.
func NewProgram() (*Program, error) { return Default().NewProgram() }

// MustNewProgram is like NewProgram but panics when the compiler is not Ready.
func MustNewProgram() *Program { return Default().MustNewProgram() }
