// Package textenc converts internal text to the report's external
// encoding (UTF-8). The conversion is total for well-formed input and is
// the only place an encoding failure can surface.
package textenc

import (
	"unicode/utf8"

	"infreport/internal/errdefs"
)

// ToExternal validates s as well-formed UTF-8 and returns it unchanged.
// Go strings carry arbitrary bytes, so values that passed through the
// document reader untranscoded can still be ill-formed; those fail with
// errdefs.KindEncoding.
func ToExternal(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errdefs.Newf(errdefs.KindEncoding, "ill-formed text %q", s)
	}
	return s, nil
}

// SliceToExternal converts every element of in, preserving order. A nil
// or empty input yields an empty, non-nil slice so serializers emit [].
func SliceToExternal(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		conv, err := ToExternal(s)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, nil
}
