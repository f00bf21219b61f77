package task

import (
	"path/filepath"
	"strings"
)

// An OutputMap derives the output path(s) one input produces. Pure and
// deterministic: it performs no I/O and is recomputed on demand, both
// when compiling an input and when deleting the outputs of a removed one.
//
// rel is the input path relative to the input root (slash-separated);
// returned paths are rooted at outDir and preserve any subdirectories.
type OutputMap func(rel, outDir string) []string

// MaterialOutputs maps a source material to its single compiled file.
func MaterialOutputs(rel, outDir string) []string {
	return []string{filepath.Join(outDir, replaceExt(rel, ".filamat"))}
}

// IBLOutputs maps an environment map to the artifact directory the
// generator populates. The exact file set inside is produced by the
// tool, so only the directory is mapped — that is all deletion needs.
func IBLOutputs(rel, outDir string) []string {
	return []string{filepath.Join(outDir, stripExt(rel))}
}

// MeshOutputs maps a source mesh to its single compiled file.
func MeshOutputs(rel, outDir string) []string {
	return []string{filepath.Join(outDir, replaceExt(rel, ".filamesh"))}
}

// stripExt removes the final extension. A name without one is used whole
// as the base. The same policy applies to every task kind.
func stripExt(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}

func replaceExt(rel, ext string) string {
	return stripExt(rel) + ext
}
