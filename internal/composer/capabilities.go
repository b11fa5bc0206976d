package composer

import "fmt"

// Capability identifies one operation the composer may be permitted to
// perform through its injected collaborators. The permitted set is fixed at
// construction; a composition that would need an operation outside the set
// is rejected before any rendering begins.
type Capability string

const (
	// CapEscape permits HTML-escaping text before insertion.
	CapEscape Capability = "escape"
	// CapStripTags permits removing markup from caption text.
	CapStripTags Capability = "strip_tags"
	// CapTranslate permits resolving localized display strings.
	CapTranslate Capability = "translate"
	// CapAttachAsset permits registering named script/style bundles.
	CapAttachAsset Capability = "attach_asset"
)

// CapabilitySet is the fixed allow-list of operations granted to a composer.
type CapabilitySet map[Capability]bool

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// AllCapabilities returns the full operation set a page composition can use.
func AllCapabilities() CapabilitySet {
	return NewCapabilitySet(CapEscape, CapStripTags, CapTranslate, CapAttachAsset)
}

// Has reports whether the capability is granted.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

// CapabilityError reports an operation outside the composer's allow-list,
// identifying the template construct that needed it.
type CapabilityError struct {
	Capability Capability
	Construct  string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("operation %q is not permitted (required by %s)", e.Capability, e.Construct)
}

// require returns a CapabilityError when c is missing from the set.
func (s CapabilitySet) require(c Capability, construct string) error {
	if s.Has(c) {
		return nil
	}
	return &CapabilityError{Capability: c, Construct: construct}
}
