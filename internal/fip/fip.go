// Package fip loads a project's `.fip` directory: the set of tagged
// foreign modules an `extern` declaration may bind to (SPEC_FULL.md
// §4.3, recovered from original_source/'s FIP error family — spec.md
// never describes the directory's contents, only the error names a
// missing/ambiguous one produces). Each module is one
// `.fip/config/<tag>.kdl` file listing the extern function names it
// provides.
package fip

import (
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// DirName is the fixed interop-directory name `extern` declarations are
// validated against.
const DirName = ".fip"

// Index is a loaded (or absent) `.fip` directory: for each extern
// function name, the tags of every module that claims to provide it.
type Index struct {
	present bool
	modules map[string][]string
}

// Empty is the "no .fip directory" index; every lookup reports absent.
var Empty = &Index{}

func (idx *Index) Present() bool { return idx != nil && idx.present }

// ModulesProviding returns the tags of every module claiming to provide
// fnName, in config-file discovery order.
func (idx *Index) ModulesProviding(fnName string) []string {
	if idx == nil {
		return nil
	}
	return idx.modules[fnName]
}

// Load reads projectRoot/.fip/config/*.kdl. A missing .fip directory is
// not an error — it just means Present() reports false and every extern
// declaration raises ExternWithoutFIP. A present but unreadable config
// file is skipped (that module simply provides nothing); this mirrors
// the tolerant, never-abort posture every other loader in this compiler
// takes toward malformed ambient files.
func Load(projectRoot string) (*Index, error) {
	dir := filepath.Join(projectRoot, DirName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Empty, nil
	}

	idx := &Index{present: true, modules: make(map[string][]string)}

	configDir := filepath.Join(dir, "config")
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return idx, nil
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".kdl") {
			continue
		}
		tag := strings.TrimSuffix(e.Name(), ".kdl")
		content, err := os.ReadFile(filepath.Join(configDir, e.Name()))
		if err != nil {
			continue
		}
		doc, err := kdl.Parse(strings.NewReader(string(content)))
		if err != nil {
			continue
		}
		for _, n := range doc.Nodes {
			if nodeName(n) != "functions" {
				continue
			}
			for _, fn := range collectStringArgs(n) {
				idx.modules[fn] = append(idx.modules[fn], tag)
			}
		}
	}

	return idx, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func collectStringArgs(n *document.Node) []string {
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
