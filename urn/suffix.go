package urn

import (
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/urnpubid/publication"
)

// Suffix builds the URN suffix for obj according to the configured strategy.
// It returns "" for unsupported objects or an empty pattern.
func Suffix(cfg Config, press *publication.Press, obj publication.Object) string {
	switch cfg.Suffix {
	case SuffixPattern:
		return patternSuffix(cfg.Pattern(publication.TypeOf(obj)), press, obj)
	default:
		return defaultSuffix(press, obj)
	}
}

// patternSuffix expands %p (press path), %m (monograph id) and %f (format id).
// Tokens are replaced in that order, one pass each.
func patternSuffix(pattern string, press *publication.Press, obj publication.Object) string {
	if pattern == "" {
		return ""
	}

	suffix := strings.ReplaceAll(pattern, "%p", strings.ToLower(press.Path))

	switch o := obj.(type) {
	case *publication.PublicationFormat:
		suffix = strings.ReplaceAll(suffix, "%m", strconv.FormatInt(o.MonographID, 10))
		suffix = strings.ReplaceAll(suffix, "%f", strconv.FormatInt(o.ID, 10))
	case *publication.Monograph:
		suffix = strings.ReplaceAll(suffix, "%m", strconv.FormatInt(o.ID, 10))
	}

	return suffix
}

// defaultSuffix yields "path.monograph" or "path.monograph.format".
func defaultSuffix(press *publication.Press, obj publication.Object) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(press.Path))

	switch o := obj.(type) {
	case *publication.PublicationFormat:
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(o.MonographID, 10))
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(o.ID, 10))
	case *publication.Monograph:
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(o.ID, 10))
	}

	return b.String()
}
