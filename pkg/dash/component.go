// Package dash is a small host for declarative dashboards: a JSON component tree
// rendered by the browser and a registry of callbacks keyed by (component id, property).
package dash

const (
	NamespaceHTML = "dash_html_components"
	NamespaceCore = "dash_core_components"
)

type Props map[string]any

type Style map[string]any

// Component is one node of the layout tree. Children live in Props["children"]
// so the wire format matches what the page script walks.
type Component struct {
	Type      string `json:"type"`
	Namespace string `json:"namespace"`
	Props     Props  `json:"props"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func newComponent(namespace, typ, id string) *Component {
	c := &Component{Type: typ, Namespace: namespace, Props: Props{}}
	if id != "" {
		c.Props["id"] = id
	}
	return c
}

func Div(style Style, children ...*Component) *Component {
	c := newComponent(NamespaceHTML, "Div", "")
	c.Props["children"] = children
	if style != nil {
		c.Props["style"] = style
	}
	return c
}

func Label(text string) *Component {
	c := newComponent(NamespaceHTML, "Label", "")
	c.Props["children"] = text
	return c
}

func Dropdown(id string, options []Option, value string, clearable bool) *Component {
	c := newComponent(NamespaceCore, "Dropdown", id)
	c.Props["options"] = options
	c.Props["value"] = value
	c.Props["clearable"] = clearable
	return c
}

func RadioItems(id string, options []Option, value string, labelStyle Style) *Component {
	c := newComponent(NamespaceCore, "RadioItems", id)
	c.Props["options"] = options
	c.Props["value"] = value
	if labelStyle != nil {
		c.Props["labelStyle"] = labelStyle
	}
	return c
}

// Slider with step left null snaps to the marks only.
func Slider(id string, min, max, value int, marks map[string]string) *Component {
	c := newComponent(NamespaceCore, "Slider", id)
	c.Props["min"] = min
	c.Props["max"] = max
	c.Props["value"] = value
	c.Props["marks"] = marks
	c.Props["step"] = nil
	return c
}

func Graph(id string) *Component {
	return newComponent(NamespaceCore, "Graph", id)
}

func (c *Component) WithStyle(style Style) *Component {
	c.Props["style"] = style
	return c
}

func (c *Component) WithProp(name string, value any) *Component {
	c.Props[name] = value
	return c
}

func (c *Component) ID() string {
	id, _ := c.Props["id"].(string)
	return id
}

func (c *Component) Children() []*Component {
	children, _ := c.Props["children"].([]*Component)
	return children
}

// Walk visits c and every descendant depth first. Returning false stops the walk.
func (c *Component) Walk(fn func(*Component) bool) bool {
	if !fn(c) {
		return false
	}
	for _, child := range c.Children() {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the component with the given id, or nil.
func (c *Component) Find(id string) *Component {
	var found *Component
	c.Walk(func(n *Component) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}
