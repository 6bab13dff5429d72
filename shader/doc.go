// Package shader bootstraps the physically based shading program used to
// draw textures resolved through texfmt.
//
// The program has a vertex and a fragment stage, each with the entry point
// "main". Both are compiled once per Compiler with the pure Go naga
// compiler: to SPIR-V for the modern backend and to GLSL ES 3.00 for the
// legacy backend.
//
// A Compiler moves from Uninitialized to Ready exactly once. Init starts the
// compilation and returns a channel closed when it finishes; concurrent and
// repeated callers share the same compilation. NewProgram refuses to build a
// program before the compiler is Ready, because GPU pipeline objects cannot
// be patched after creation:
//
//	if err := shader.Wait(); err != nil {
//	    log.Fatal(err)
//	}
//	prog := shader.MustNewProgram()
//	vs, fs, err := prog.CreateModules(device)
package shader
