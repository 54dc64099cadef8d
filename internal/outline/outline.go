package outline

// Outline is the root of a parsed document, one per input file.
type Outline struct {
	Title string  // Document title (from content or filename)
	Nodes []*Node // Top-level sections
}

// Node is a recursive section of the outline.
type Node struct {
	Level    int      // Heading depth (1 for h1, 2 for h2, ...)
	Text     string   // Section heading text
	Bullets  []string // Bullet points and paragraphs attached to this heading
	Quote    bool     // Set when the section's body is a block quote
	Children []*Node  // Subsections, levels strictly greater than this node's
}

// Walk visits every node in depth-first order.
func (o *Outline) Walk(fn func(*Node)) {
	for _, n := range o.Nodes {
		walkNode(n, fn)
	}
}

func walkNode(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		walkNode(c, fn)
	}
}

// NodeCount returns the total number of nodes in the outline.
func (o *Outline) NodeCount() int {
	count := 0
	o.Walk(func(*Node) { count++ })
	return count
}

// Empty reports whether the outline carries no content at all.
func (o *Outline) Empty() bool {
	empty := true
	o.Walk(func(n *Node) {
		if n.Text != "" || len(n.Bullets) > 0 {
			empty = false
		}
	})
	return empty
}
