package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parse reads "v1.2.3", "1.2" or "1.2.3-rc1" into major, minor and patch.
// Missing parts count as zero; pre-release and build suffixes are ignored.
func parse(s string) ([3]int, error) {
	var parts [3]int

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	fields := strings.Split(core, ".")
	if len(fields) > len(parts) {
		return parts, fmt.Errorf("malformed version %q", s)
	}

	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return parts, fmt.Errorf("malformed version %q", s)
		}
		parts[i] = n
	}

	return parts, nil
}

// Compare returns 1 if a is newer than b, -1 if older and 0 if they are the same release.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	return 0, nil
}
