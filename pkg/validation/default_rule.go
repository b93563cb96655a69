package validation

// StringOr returns *p, or def when p is nil. An explicit empty string is kept.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// BoolOr returns *p, or def when p is nil.
func BoolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
