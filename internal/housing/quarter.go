package housing

import (
	"fmt"
	"strconv"
	"strings"
)

// Quarter is a calendar quarter; Q1 is January through March.
type Quarter struct {
	Year int
	Q    int
}

// String renders the label used throughout, e.g. "2008q3".
func (q Quarter) String() string { return fmt.Sprintf("%dq%d", q.Year, q.Q) }

// Next returns the following quarter.
func (q Quarter) Next() Quarter {
	if q.Q == 4 {
		return Quarter{Year: q.Year + 1, Q: 1}
	}
	return Quarter{Year: q.Year, Q: q.Q + 1}
}

// Before reports whether q precedes o.
func (q Quarter) Before(o Quarter) bool {
	return q.Year < o.Year || (q.Year == o.Year && q.Q < o.Q)
}

// ParseQuarter accepts "2008q3" or "2008Q3".
func ParseQuarter(label string) (Quarter, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	i := strings.IndexByte(s, 'q')
	if i <= 0 || i == len(s)-1 {
		return Quarter{}, fmt.Errorf("invalid quarter label %q", label)
	}
	y, err := strconv.Atoi(s[:i])
	if err != nil {
		return Quarter{}, fmt.Errorf("invalid quarter label %q", label)
	}
	q, err := strconv.Atoi(s[i+1:])
	if err != nil || q < 1 || q > 4 {
		return Quarter{}, fmt.Errorf("invalid quarter label %q", label)
	}
	return Quarter{Year: y, Q: q}, nil
}

// monthQuarter parses a "YYYY-MM" column label.
func monthQuarter(label string) (Quarter, bool) {
	if len(label) != 7 || label[4] != '-' {
		return Quarter{}, false
	}
	y, err := strconv.Atoi(label[:4])
	if err != nil {
		return Quarter{}, false
	}
	m, err := strconv.Atoi(label[5:])
	if err != nil || m < 1 || m > 12 {
		return Quarter{}, false
	}
	return Quarter{Year: y, Q: (m-1)/3 + 1}, true
}
