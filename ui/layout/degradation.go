package layout

// Degradation holds flags for features that are dropped on small terminals.
type Degradation struct {
	// HideDescriptions renders panel entries as labels only. This changes the
	// measured size of panel content.
	HideDescriptions bool
	// CompactTriggers removes the horizontal padding around triggers.
	CompactTriggers bool
	ShowMinWarning  bool
}

// Threshold constants for degradation
const (
	DescriptionHideWidth  = 70
	DescriptionHideHeight = 24
	TriggerCompactWidth   = CompactWidth
)

// ComputeDegradation calculates which features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideDescriptions: c.TerminalWidth < DescriptionHideWidth || c.TerminalHeight < DescriptionHideHeight,
		CompactTriggers:  c.TerminalWidth < TriggerCompactWidth,
		ShowMinWarning:   c.ShowMinWarning,
	}
}
