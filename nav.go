package devhub

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HomeLabel is the breadcrumb label of the root path.
const HomeLabel = "Home"

// NodeKind distinguishes files from directories in the navigation tree.
type NodeKind string

// NodeKind constants.
const (
	NodeFile      NodeKind = "file"
	NodeDirectory NodeKind = "directory"
)

// TreeNode is a node of the static navigation tree.
//
// A directory and its "Overview" file child may share a path. That is the
// only shape in which a path may appear twice; see ValidateTree.
type TreeNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Kind     NodeKind   `json:"kind"`
	Children []TreeNode `json:"children,omitempty"`
}

// NavConfig configures sidebar expansion.
type NavConfig struct {
	// ForceExpanded lists section paths that render expanded wherever the
	// reader currently is.
	ForceExpanded []string
}

// DefaultNavConfig returns the portal's navigation configuration: the
// domains section is always open.
func DefaultNavConfig() NavConfig {
	return NavConfig{ForceExpanded: []string{"/domains"}}
}

// ExpandedSet is the set of tree paths that render expanded.
// It is session-local and recomputed on every navigation.
type ExpandedSet map[string]struct{}

// Has reports whether path is expanded.
func (s ExpandedSet) Has(path string) bool {
	_, ok := s[path]
	return ok
}

// Toggle flips the membership of path.
func (s ExpandedSet) Toggle(path string) {
	if s.Has(path) {
		delete(s, path)
		return
	}
	s[path] = struct{}{}
}

// Paths returns the expanded paths in lexical order.
func (s ExpandedSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SplitPath returns the non-empty segments of a URL path.
func SplitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// JoinPath joins segments into a rooted URL path.
func JoinPath(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// ExpandedPaths returns the default expanded set for the current path:
// every ancestor on the root-to-current path, the current path itself, and
// the configured force-expanded sections.
func ExpandedPaths(current string, cfg NavConfig) ExpandedSet {
	set := make(ExpandedSet)
	segments := SplitPath(current)
	for i := 1; i <= len(segments); i++ {
		set[JoinPath(segments[:i])] = struct{}{}
	}
	for _, section := range cfg.ForceExpanded {
		if section = JoinPath(SplitPath(section)); section != "/" {
			set[section] = struct{}{}
		}
	}
	return set
}

// Breadcrumb is one step of the root-to-current trail.
type Breadcrumb struct {
	Label string `json:"label"`
	Href  string `json:"href"`

	// Current marks the terminal crumb, which renders as plain text.
	Current bool `json:"current,omitempty"`
}

// Breadcrumbs returns the trail from the home page to current.
// Returns nil on the home page itself.
func Breadcrumbs(current string) []Breadcrumb {
	segments := SplitPath(current)
	if len(segments) == 0 {
		return nil
	}

	crumbs := make([]Breadcrumb, 0, len(segments)+1)
	crumbs = append(crumbs, Breadcrumb{Label: HomeLabel, Href: "/"})
	for i, seg := range segments {
		crumbs = append(crumbs, Breadcrumb{
			Label:   LabelFromSegment(seg),
			Href:    JoinPath(segments[:i+1]),
			Current: i == len(segments)-1,
		})
	}
	return crumbs
}

// LabelFromSegment converts a kebab-case path segment to a label by
// upper-casing the first letter of each hyphen-delimited word.
// Example: "30-tooling" → "30 Tooling".
func LabelFromSegment(segment string) string {
	words := strings.Split(segment, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// SidebarItem is one visible row of the rendered sidebar.
type SidebarItem struct {
	Name  string   `json:"name"`
	Path  string   `json:"path"`
	Kind  NodeKind `json:"kind"`
	Depth int      `json:"depth"`

	HasChildren bool `json:"hasChildren,omitempty"`
	Expanded    bool `json:"expanded,omitempty"`

	// Active is set only on an exact path match with the current location.
	Active bool `json:"active,omitempty"`
}

// BuildSidebar walks the tree and returns the visible rows in display order.
// Children of collapsed nodes are omitted.
func BuildSidebar(tree []TreeNode, current string, expanded ExpandedSet) []SidebarItem {
	var items []SidebarItem
	walkSidebar(tree, 0, current, expanded, &items)
	return items
}

func walkSidebar(nodes []TreeNode, depth int, current string, expanded ExpandedSet, items *[]SidebarItem) {
	for _, n := range nodes {
		item := SidebarItem{
			Name:        n.Name,
			Path:        n.Path,
			Kind:        n.Kind,
			Depth:       depth,
			HasChildren: len(n.Children) > 0,
			Expanded:    expanded.Has(n.Path),
			Active:      n.Path == current,
		}
		*items = append(*items, item)
		if item.HasChildren && item.Expanded {
			walkSidebar(n.Children, depth+1, current, expanded, items)
		}
	}
}

// ValidateTree checks that every node has a name and a rooted path, and that
// no path appears twice except for a file that shares the path of its
// parent directory (the directory's overview page).
func ValidateTree(tree []TreeNode) error {
	seen := make(map[string]bool)
	var problems []string
	validateNodes(tree, "", seen, &problems)
	if len(problems) > 0 {
		return &Error{
			Code:    EINVALID,
			Message: "invalid navigation tree",
			Details: problems,
		}
	}
	return nil
}

func validateNodes(nodes []TreeNode, parentDir string, seen map[string]bool, problems *[]string) {
	for _, n := range nodes {
		switch {
		case n.Name == "":
			*problems = append(*problems, "node at "+n.Path+" has no name")
		case !strings.HasPrefix(n.Path, "/"):
			*problems = append(*problems, "node "+n.Name+" has unrooted path "+n.Path)
		case n.Kind != NodeFile && n.Kind != NodeDirectory:
			*problems = append(*problems, "node "+n.Name+" has unknown kind "+string(n.Kind))
		}

		overview := n.Kind == NodeFile && parentDir != "" && n.Path == parentDir
		if !overview {
			if seen[n.Path] {
				*problems = append(*problems, "duplicate path "+n.Path)
			}
			seen[n.Path] = true
		}

		if len(n.Children) > 0 {
			dir := ""
			if n.Kind == NodeDirectory {
				dir = n.Path
			}
			validateNodes(n.Children, dir, seen, problems)
		}
	}
}
