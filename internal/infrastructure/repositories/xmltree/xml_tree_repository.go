package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/gradlesync/internal/domain/repositories"
)

// Node is an element of a parsed XML document.
type Node struct {
	name     string
	text     strings.Builder
	children []*Node
}

var _ repositories.TreeNode = (*Node)(nil)

// Single returns the first child element called name, or nil.
func (n *Node) Single(name string) repositories.TreeNode {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// Children returns the child elements called name in document order.
func (n *Node) Children(name string) []repositories.TreeNode {
	var nodes []repositories.TreeNode
	for _, child := range n.children {
		if child.name == name {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// Text returns the character data directly inside the element.
func (n *Node) Text() string {
	return n.text.String()
}

// TreeRepository parses the XML written by the Gradle output task.
type TreeRepository struct{}

var _ repositories.EffectiveTreeRepository = (*TreeRepository)(nil)

// NewTreeRepository creates a TreeRepository.
func NewTreeRepository() *TreeRepository {
	return &TreeRepository{}
}

// Parse returns an unnamed document node whose children are the top-level elements.
func (r *TreeRepository) Parse(data []byte) (repositories.TreeNode, error) {
	document := &Node{}
	stack := []*Node{document}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XML: %w", err)
		}

		current := stack[len(stack)-1]
		switch t := token.(type) {
		case xml.StartElement:
			child := &Node{name: t.Name.Local}
			current.children = append(current.children, child)
			stack = append(stack, child)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			current.text.Write(t)
		}
	}

	if len(stack) != 1 {
		return nil, errors.New("malformed XML: unclosed elements")
	}
	return document, nil
}
