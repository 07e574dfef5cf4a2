package culture

import "strings"

var defaultGrouping = []int{3}

// DecodeGrouping turns a host grouping string ("3;2;0") into group sizes.
// A trailing 0 stops grouping after the previous size; without it the last
// size repeats. Empty or malformed input yields [3], a leading 0 yields [0].
func DecodeGrouping(s string) []int {
	if s == "" {
		return cloneInts(defaultGrouping)
	}
	if s[0] == '0' {
		return []int{0}
	}

	parts := strings.Split(s, ";")
	sizes := make([]int, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return cloneInts(defaultGrouping)
		}
		size := 0
		for _, r := range part {
			if r < '0' || r > '9' {
				return cloneInts(defaultGrouping)
			}
			size = size*10 + int(r-'0')
		}
		if size == 0 && i != len(parts)-1 {
			return cloneInts(defaultGrouping)
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// firstDayOfWeek converts the host numbering (0 = Monday) to 0 = Sunday.
func firstDayOfWeek(v int64) int {
	if v < 0 || v > 6 {
		return 0
	}
	return int((v + 1) % 7)
}

func cloneInts(values []int) []int {
	if values == nil {
		return nil
	}
	return append([]int(nil), values...)
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}
