package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

const CodeWidth = 6

// NextCode derives the code that follows last. A missing or unparsable
// last code counts as zero.
func NextCode(last string) string {
	n, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil || n < 0 {
		n = 0
	}
	return FormatCode(n + 1)
}

func FormatCode(n int) string {
	return fmt.Sprintf("%0*d", CodeWidth, n)
}

// NextClientCode is the tenant numbering space: same find-max-and-increment
// rule, kept as a plain integer.
func NextClientCode(last int) int {
	if last < 0 {
		last = 0
	}
	return last + 1
}
