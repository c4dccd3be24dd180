package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusable(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{name: "link with href", el: Element{Kind: KindLink, Href: "#"}, want: true},
		{name: "link without href", el: Element{Kind: KindLink}, want: false},
		{name: "button", el: Element{Kind: KindButton}, want: true},
		{name: "input", el: Element{Kind: KindInput}, want: true},
		{name: "textarea", el: Element{Kind: KindTextarea}, want: true},
		{name: "select", el: Element{Kind: KindSelect}, want: true},
		{name: "details", el: Element{Kind: KindDetails}, want: true},
		{name: "generic", el: Element{Kind: KindGeneric}, want: false},
		{name: "generic tabindex 0", el: Element{HasTabIndex: true}, want: true},
		{name: "generic tabindex 2", el: Element{HasTabIndex: true, TabIndex: 2}, want: true},
		{name: "button tabindex -1", el: Element{Kind: KindButton, HasTabIndex: true, TabIndex: -1}, want: false},
		{name: "disabled button", el: Element{Kind: KindButton, Disabled: true}, want: false},
		{name: "aria-hidden link", el: Element{Kind: KindLink, Href: "#", AriaHidden: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.Focusable())
		})
	}
}

func TestFocusablesKeepsOrder(t *testing.T) {
	els := []Element{
		{ID: "a", Kind: KindLink, Href: "#"},
		{ID: "b", Kind: KindButton, Disabled: true},
		{ID: "c", Kind: KindButton},
		{ID: "d"},
	}

	got := Focusables(els)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, 1, IndexOf(got, "c"))
	assert.Equal(t, -1, IndexOf(got, "b"))
}
