package lcd

import "unicode/utf16"

// encodeWide converts a display string to the SDK's wire form: UTF-16 code
// units followed by a single zero terminator. A zero code unit anywhere in
// the input would truncate the string on the far side of the boundary, so it
// is rejected with ErrNullCharacter instead of being passed through.
func encodeWide(s string) ([]uint16, error) {
	units := utf16.Encode([]rune(s))

	for _, u := range units {
		if u == 0 {
			return nil, ErrNullCharacter
		}
	}

	return append(units, 0), nil
}
