// Package layout provides responsive page layout calculations for the demo page.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutStandard is for terminals of at least StandardWidth x StandardHeight.
	LayoutStandard LayoutMode = iota

	// LayoutCompact is for terminals at or above the minimum size.
	LayoutCompact

	// LayoutMinimal is for terminals below the minimum size.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode picks the mode for the given size using the more
// restrictive of the two dimensions.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}
	if width >= StandardWidth && height >= StandardHeight {
		return LayoutStandard
	}
	return LayoutCompact
}
