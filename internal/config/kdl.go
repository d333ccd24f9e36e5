package config

import (
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/flintc/internal/cerr"
)

// fileName is the project config file's fixed name (spec.md §9: a single
// unprefixed project-root file, mirroring the teacher's `.lci.kdl`
// convention for this compiler's own domain).
const fileName = ".flint.kdl"

// Load reads projectRoot/.flint.kdl if present and layers it over
// Default(); a missing file is not an error — it just means every
// setting keeps its default. Grounded on the teacher's
// internal/config.LoadKDL/parseKDL two-step (stat-then-parse, defaults
// seeded before the document is walked).
func Load(projectRoot string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(projectRoot, fileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.ConfigErrorf("config.Load", path, err)
	}

	if err := parseInto(cfg, string(content)); err != nil {
		return nil, cerr.ConfigErrorf("config.Load", path, err)
	}
	return cfg, nil
}

func parseInto(cfg *Config, content string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return err
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "tab-size":
			if v, ok := firstIntArg(n); ok {
				cfg.TabSize = v
			}
		case "hard-crash":
			if b, ok := firstBoolArg(n); ok {
				cfg.HardCrash = b
			}
		case "library-root":
			if s, ok := firstStringArg(n); ok {
				cfg.LibraryRoot = s
			}
		case "core-modules":
			cfg.CoreModules = append(cfg.CoreModules, collectStringArgs(n)...)
		case "reserved-identifier-prefixes":
			if args := collectStringArgs(n); len(args) > 0 {
				cfg.ReservedIdentifierPrefixes = args
			}
		}
	}
	return nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

// collectStringArgs reads either the inline form (`core-modules "a" "b"`)
// or the block form (`core-modules { a; b; }`, where each child's node
// name is itself the string value), matching the two shapes the
// teacher's own KDL config accepts for list-valued settings.
func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
