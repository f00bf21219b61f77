package task

import "fmt"

// A Binding fixes the tool, argument template, and output mapping for one
// task kind. Bindings carry configuration only — the engine supplies all
// behavior.
type Binding struct {
	Kind string

	// Tool is the default executable name, resolved via config/env/PATH.
	Tool string

	// Outputs is the kind's output mapper.
	Outputs OutputMap

	// Invocations returns the argument lists to run, in order, to
	// transform input into outputs. input is the absolute input path and
	// outputs the mapped paths for it.
	Invocations func(input string, outputs []string) [][]string

	// OutputGlob matches this kind's artifacts inside the output
	// directory, used to clear stale artifacts on a full rebuild.
	OutputGlob string

	// DirOutputs marks kinds whose outputs are directories.
	DirOutputs bool
}

// Material compiles source materials with matc: optimized, mobile
// profile, one compiled file per input.
func Material() Binding {
	return Binding{
		Kind:    "material",
		Tool:    "matc",
		Outputs: MaterialOutputs,
		Invocations: func(input string, outputs []string) [][]string {
			return [][]string{
				{"-O", "-p", "mobile", "-o", outputs[0], input},
			}
		},
		OutputGlob: "*.filamat",
	}
}

// IBL generates image-based-lighting artifacts with cmgen. The tool runs
// twice per input: once to process into the artifact directory, once to
// extract the blurred reflection variant with an explicit format and
// blur radius.
func IBL() Binding {
	return Binding{
		Kind:    "ibl",
		Tool:    "cmgen",
		Outputs: IBLOutputs,
		Invocations: func(input string, outputs []string) [][]string {
			dest := outputs[0]
			return [][]string{
				{"-q", "-x", dest, input},
				{"-q", "--format=rgbm", "--extract-blur=0.1", "--extract=" + dest, input},
			}
		},
		OutputGlob: "*",
		DirOutputs: true,
	}
}

// Mesh compiles source meshes with filamesh: input path and explicit
// output path, one compiled file per input.
func Mesh() Binding {
	return Binding{
		Kind:    "mesh",
		Tool:    "filamesh",
		Outputs: MeshOutputs,
		Invocations: func(input string, outputs []string) [][]string {
			return [][]string{
				{input, outputs[0]},
			}
		},
		OutputGlob: "*.filamesh",
	}
}

// ForKind returns the binding for a config task kind.
func ForKind(kind string) (Binding, error) {
	switch kind {
	case "material":
		return Material(), nil
	case "ibl":
		return IBL(), nil
	case "mesh":
		return Mesh(), nil
	}
	return Binding{}, fmt.Errorf("unknown task kind '%s'", kind)
}
