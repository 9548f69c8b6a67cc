// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
)

// PaletteFn names the colour of the idx-th cell. It must be pure: the same
// idx always yields the same name.
type PaletteFn func(idx int) string

// MonochromePalette alternates "black" and "white".
func MonochromePalette(idx int) string {
	if idx%2 == 0 {
		return "black"
	}

	return "white"
}

// CyclePalette repeats colours in order. Panics on an empty list.
func CyclePalette(colours ...string) PaletteFn {
	if len(colours) == 0 {
		panic("builder: CyclePalette()")
	}
	cs := append([]string(nil), colours...)
	return func(idx int) string {
		if idx < 0 {
			idx = -idx
		}
		return cs[idx%len(cs)]
	}
}

// NumberedPalette returns prefix + decimal index, e.g. "c0", "c1", ...
// A checker coloured this way has no repeating string column.
func NumberedPalette(prefix string) PaletteFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
