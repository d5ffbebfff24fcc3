package pipeline

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/mklandgo/internal/landscape"
)

// Directory convention: a configuration root holds problem_generation/
// (input configs), codomain_files/ (value tables, nested per configuration)
// and problems/ (generated problem files), with matching names across the
// three trees.
const (
	codomainFilesDir     = "codomain_files"
	problemsDir          = "problems"
	problemGenerationDir = "problem_generation"
)

// OutputFolder derives the sibling output folder for a configuration file:
// <root>/problem_generation/<name>.hcl maps to <root>/<kind>/<name>.
func OutputFolder(configPath, kind string) string {
	stem := strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
	root := filepath.Dir(filepath.Dir(configPath))
	return filepath.Join(root, kind, stem)
}

// ReplicateFileName builds the deterministic, collision-avoiding name shared
// by a codomain file and its paired problem file:
// <codomain id>_<m>_<k>_<o>_<b>_<replicate>.txt.
func ReplicateFileName(fn landscape.Function, params landscape.InputParameters, replicate int) string {
	var b strings.Builder
	b.WriteString(fn.IOString())
	for _, v := range []int{params.M, params.K, params.O, params.B, replicate} {
		b.WriteByte('_')
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(".txt")
	return b.String()
}
