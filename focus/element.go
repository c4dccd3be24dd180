// Package focus defines which rendered elements take part in keyboard focus order.
package focus

// Kind is the type of an interactive element.
type Kind int

const (
	// KindGeneric is any element that is only focusable through a tab index.
	KindGeneric Kind = iota
	KindLink
	KindButton
	KindInput
	KindTextarea
	KindSelect
	KindDetails
)

func (k Kind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindTextarea:
		return "textarea"
	case KindSelect:
		return "select"
	case KindDetails:
		return "details"
	default:
		return "generic"
	}
}

// Element is a rendered control that may receive focus.
type Element struct {
	ID   string
	Kind Kind
	// Href is only meaningful for links; a link without one is not focusable.
	Href string

	// TabIndex is honoured when HasTabIndex is set.
	HasTabIndex bool
	TabIndex    int

	Disabled   bool
	AriaHidden bool
}

// Focusable reports whether e can take keyboard focus: links with an href,
// form controls, details, and anything with a non-negative tab index, unless
// disabled or aria-hidden.
func (e Element) Focusable() bool {
	if e.Disabled || e.AriaHidden {
		return false
	}
	if e.HasTabIndex && e.TabIndex < 0 {
		return false
	}
	switch e.Kind {
	case KindLink:
		return e.Href != "" || e.HasTabIndex
	case KindButton, KindInput, KindTextarea, KindSelect, KindDetails:
		return true
	default:
		return e.HasTabIndex
	}
}

// Focusables filters elements down to the focusable ones, keeping order.
func Focusables(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.Focusable() {
			out = append(out, e)
		}
	}
	return out
}

// IndexOf returns the position of id among elements, or -1.
func IndexOf(elements []Element, id string) int {
	for i, e := range elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}
