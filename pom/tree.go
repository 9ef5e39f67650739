package pom

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TreeNode is one resolved coordinate in a Maven dependency tree, parsed
// from `mvn dependency:tree -DoutputType=dot` output.
type TreeNode struct {
	GroupID    string
	ArtifactID string
	Version    string
	Scope      string
	Children   []*TreeNode
}

// ParseDependencyTreeDot parses the Graphviz dot output of the
// maven-dependency-plugin's tree goal into a forest of TreeNode roots. The
// dot format is a flat edge list ("a:b:jar:1.0:compile" -> "c:d:jar:2.0:compile")
// so this builds the node table first, then links parent to children in a
// second pass.
func ParseDependencyTreeDot(r io.Reader) ([]*TreeNode, error) {
	nodes := make(map[string]*TreeNode)
	var order []string
	var roots []string
	hasParent := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.Contains(line, "->") {
			continue
		}
		left, right, ok := strings.Cut(line, "->")
		if !ok {
			continue
		}
		parentKey := unquote(strings.TrimSpace(left))
		childKey := unquote(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(right), ";")))

		if _, ok := nodes[parentKey]; !ok {
			nodes[parentKey] = nodeFromCoordinate(parentKey)
			order = append(order, parentKey)
		}
		if _, ok := nodes[childKey]; !ok {
			nodes[childKey] = nodeFromCoordinate(childKey)
			order = append(order, childKey)
		}

		nodes[parentKey].Children = append(nodes[parentKey].Children, nodes[childKey])
		hasParent[childKey] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan dependency tree: %w", err)
	}

	for _, key := range order {
		if !hasParent[key] {
			roots = append(roots, key)
		}
	}

	result := make([]*TreeNode, 0, len(roots))
	for _, key := range roots {
		result = append(result, nodes[key])
	}
	return result, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"")
}

// nodeFromCoordinate parses "group:artifact:packaging:version:scope" (or
// the 6-field classifier variant) into a TreeNode.
func nodeFromCoordinate(coord string) *TreeNode {
	parts := strings.Split(coord, ":")
	node := &TreeNode{}
	switch len(parts) {
	case 4:
		// the project's own root coordinate carries no scope: group:artifact:packaging:version
		node.GroupID, node.ArtifactID, node.Version = parts[0], parts[1], parts[3]
	case 5:
		node.GroupID, node.ArtifactID, node.Version, node.Scope = parts[0], parts[1], parts[3], parts[4]
	case 6:
		node.GroupID, node.ArtifactID, node.Version, node.Scope = parts[0], parts[1], parts[4], parts[5]
	default:
		node.ArtifactID = coord
	}
	return node
}

// RunDependencyTree shells out to `mvn dependency:tree` in projectDir and
// parses the result, the same external-collaborator pattern as
// MavenFetcher's HTTP calls: the binary is trusted infrastructure, not
// something this package re-implements.
func RunDependencyTree(projectDir string) ([]*TreeNode, error) {
	outFile := filepath.Join(os.TempDir(), "javasem-dependency-tree.dot")
	defer os.Remove(outFile)

	cmd := exec.Command("mvn", "-q", "dependency:tree",
		"-DoutputType=dot", "-DoutputFile="+outFile)
	cmd.Dir = projectDir
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("run mvn dependency:tree: %w", err)
	}

	f, err := os.Open(outFile)
	if err != nil {
		return nil, fmt.Errorf("open dependency tree output: %w", err)
	}
	defer f.Close()

	return ParseDependencyTreeDot(f)
}

// LocalRepoClasspath resolves a TreeNode forest to absolute jar paths under
// a Maven local repository (~/.m2/repository by convention), skipping nodes
// whose jar hasn't been downloaded there.
func LocalRepoClasspath(repoDir string, roots []*TreeNode) []string {
	var paths []string
	seen := make(map[string]bool)

	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		if n == nil {
			return
		}
		key := n.GroupID + ":" + n.ArtifactID + ":" + n.Version
		if !seen[key] && n.GroupID != "" {
			seen[key] = true
			groupPath := strings.ReplaceAll(n.GroupID, ".", string(filepath.Separator))
			jarPath := filepath.Join(repoDir, groupPath, n.ArtifactID, n.Version, n.ArtifactID+"-"+n.Version+".jar")
			if _, err := os.Stat(jarPath); err == nil {
				paths = append(paths, jarPath)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return paths
}

// DefaultLocalRepo returns the default `~/.m2/repository` path.
func DefaultLocalRepo() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".m2/repository"
	}
	return filepath.Join(home, ".m2", "repository")
}
