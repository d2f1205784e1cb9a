package urn

import "github.com/lehigh-university-libraries/urnpubid/publication"

// ContextResolver resolves presses, answering from the press of the current
// request when its id matches and falling back to a full lookup otherwise.
type ContextResolver struct {
	Current  *publication.Press
	Fallback PressResolver
}

// Press implements PressResolver.
func (r *ContextResolver) Press(id int64) (*publication.Press, bool) {
	if r.Current != nil && r.Current.ID == id {
		return r.Current, true
	}
	if r.Fallback == nil {
		return nil, false
	}
	return r.Fallback.Press(id)
}
