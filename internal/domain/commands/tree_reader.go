package commands

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// treeReader wraps a node with its location so failures can name the missing element.
type treeReader struct {
	node repositories.TreeNode
	path string
}

func newTreeReader(node repositories.TreeNode, path string) treeReader {
	return treeReader{node: node, path: path}
}

func (r treeReader) location(name string) string {
	if r.path == "" {
		return name
	}
	return r.path + "/" + name
}

// single returns the required child name.
func (r treeReader) single(name string) (treeReader, error) {
	child := r.node.Single(name)
	if child == nil {
		return treeReader{}, fmt.Errorf("%w: %s", ErrMissingElement, r.location(name))
	}
	return treeReader{node: child, path: r.location(name)}, nil
}

// optional returns the child name and whether it exists.
func (r treeReader) optional(name string) (treeReader, bool) {
	child := r.node.Single(name)
	if child == nil {
		return treeReader{}, false
	}
	return treeReader{node: child, path: r.location(name)}, true
}

// text returns the trimmed text of the required child name.
func (r treeReader) text(name string) (string, error) {
	child, err := r.single(name)
	if err != nil {
		return "", err
	}
	return child.trimmed(), nil
}

// optionalText returns the trimmed text of the child name, or "" when absent.
func (r treeReader) optionalText(name string) string {
	child, ok := r.optional(name)
	if !ok {
		return ""
	}
	return child.trimmed()
}

func (r treeReader) trimmed() string {
	return strings.TrimSpace(r.node.Text())
}

// items returns the repeated children item of the required container child.
func (r treeReader) items(container, item string) ([]treeReader, error) {
	parent, err := r.single(container)
	if err != nil {
		return nil, err
	}
	return parent.children(item), nil
}

func (r treeReader) children(name string) []treeReader {
	nodes := r.node.Children(name)
	readers := make([]treeReader, 0, len(nodes))
	for i, node := range nodes {
		readers = append(readers, treeReader{node: node, path: fmt.Sprintf("%s[%d]", r.location(name), i)})
	}
	return readers
}
