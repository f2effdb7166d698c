package entity

// LayoutNode is a node of a container's splitter tree.
// It is either:
//   - Leaf node: holds a single DockArea
//   - Splitter node: two or more children laid out along Orientation,
//     Sizes[i] being the relative share of Children[i]
type LayoutNode struct {
	ID       string
	Parent   *LayoutNode // nil for root
	Children []*LayoutNode

	Orientation Orientation
	Sizes       []float64

	Area *DockArea // Non-nil for leaf nodes
}

// NewLeaf creates a leaf node for area and links the area back to it.
func NewLeaf(id string, area *DockArea) *LayoutNode {
	n := &LayoutNode{ID: id, Area: area}
	area.Node = n
	return n
}

// IsLeaf returns true if this node holds an area.
func (n *LayoutNode) IsLeaf() bool {
	return n.Area != nil
}

// IsSplitter returns true if this node arranges children.
func (n *LayoutNode) IsSplitter() bool {
	return n.Area == nil
}

// IndexOf returns the position of child, or -1.
func (n *LayoutNode) IndexOf(child *LayoutNode) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Walk traverses the tree calling fn for each node. Returns early if fn returns false.
func (n *LayoutNode) Walk(fn func(*LayoutNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Areas returns the areas below n in depth-first (visual) order.
func (n *LayoutNode) Areas() []*DockArea {
	var areas []*DockArea
	n.Walk(func(node *LayoutNode) bool {
		if node.IsLeaf() {
			areas = append(areas, node.Area)
		}
		return true
	})
	return areas
}

// Depth returns the number of ancestors of n.
func (n *LayoutNode) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
