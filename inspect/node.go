package inspect

// Accessibility state keys carried by nodes.
const (
	AriaHasPopup = "aria-haspopup"
	AriaExpanded = "aria-expanded"
	AriaLabel    = "aria-label"
	Role         = "role"
)

// Roles
const (
	RoleMenu     = "menu"
	RoleMenuItem = "menuitem"
)

// Node represents a UI component in the inspection tree.
type Node struct {
	// Type is the component type (e.g., "NavBar", "Trigger", "Viewport").
	Type string `json:"type"`

	// ID is an optional identifier for the component.
	ID string `json:"id,omitempty"`

	// Bounds contains the component position and dimensions in cells.
	Bounds Bounds `json:"bounds"`

	// Visible indicates if the component is currently rendered.
	Visible bool `json:"visible"`

	// State contains component-specific state, including ARIA attributes.
	State map[string]interface{} `json:"state,omitempty"`

	// Children contains child components.
	Children []*Node `json:"children,omitempty"`

	// Content is the text content if applicable.
	Content string `json:"content,omitempty"`
}

// Bounds represents component position and dimensions.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewNode creates a new Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithVisible sets visibility and returns the node for chaining.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns the nodes in the tree matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if pred(c) {
			out = append(out, c)
		}
	})
	return out
}

// FindRole returns the nodes with the given role.
func (n *Node) FindRole(role string) []*Node {
	return n.FindAll(func(c *Node) bool {
		return c.State[Role] == role
	})
}

// Find returns the first node with type nodeType and id, or nil.
func (n *Node) Find(nodeType, id string) *Node {
	found := n.FindAll(func(c *Node) bool {
		return c.Type == nodeType && c.ID == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
