package rcctl

import (
	"bufio"
	"fmt"
	"strings"
)

// Disabled is the value rcctl reports for the flags of a disabled service.
const Disabled = "NO"

// IsDisabled reports whether a flags value is the disabled sentinel.
func IsDisabled(flags string) bool {
	return flags == Disabled
}

// ParseFlagsLine scans the output of "rcctl get <service>" for the line
// "<service>_flags=<value>" and returns value. found is false when no such
// line exists. A line that cannot be scanned is an error, never "absent".
func ParseFlagsLine(output, service string) (value string, found bool, err error) {
	prefix := service + "_flags="
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return v, true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", false, fmt.Errorf("rcctl: parse get %s output: %w", service, err)
	}
	return "", false, nil
}

// EnabledFromGet reports whether the "rcctl get <service>" output describes
// an enabled service. A missing flags line counts as not enabled.
func EnabledFromGet(output, service string) (bool, error) {
	value, found, err := ParseFlagsLine(output, service)
	if err != nil || !found {
		return false, err
	}
	return !IsDisabled(value), nil
}
