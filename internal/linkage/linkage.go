// Package linkage maintains the denormalized components list inside a
// profile: one entry per satellite entity the profile owns or has joined.
// The storage layer does not enforce consistency between this list and the
// satellite collections; the transaction coordinator does.
package linkage

import "github.com/nstuweb/campus-backend/internal/types"

// HasLinkage reports whether the profile already holds a component of the
// given kind and title. This is the duplicate-creation guard: keyed by
// (kind, title) within one profile, not by global title uniqueness.
func HasLinkage(p *types.Profile, kind types.Kind, title string) bool {
	for _, c := range p.Components {
		if c.Kind == kind && c.Title == title {
			return true
		}
	}
	return false
}

// AddLinkage appends without deduplication; callers check HasLinkage first.
func AddLinkage(p *types.Profile, entry types.Component) {
	p.Components = append(p.Components, entry)
}

// RemoveLinkage drops the component pointing at the given satellite
// shortid. No-op when absent.
func RemoveLinkage(p *types.Profile, shortid string) {
	for i, c := range p.Components {
		if c.ShortID == shortid {
			p.Components = append(p.Components[:i:i], p.Components[i+1:]...)
			return
		}
	}
}
