package matchers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InterfaceMatcher decides whether an interface feeds into a series.
type InterfaceMatcher interface {
	Match(interfaceName string) bool
	String() string
}

type hostFacingMatcher struct {
	switchName string
	minPort    int
}

// NewHostFacingMatcher selects the downstream, host-connecting ports of one
// switch: names of the form "<switch>-eth<N>" with N >= minPort. Uplink and
// internal ports (N < minPort), other switches and the switch's own bridge
// interface are rejected.
func NewHostFacingMatcher(switchName string, minPort int) InterfaceMatcher {
	return &hostFacingMatcher{switchName: switchName, minPort: minPort}
}

func (m *hostFacingMatcher) Match(interfaceName string) bool {
	port, ok := portNumber(m.switchName, interfaceName)
	return ok && port >= m.minPort
}

func (m *hostFacingMatcher) String() string {
	return fmt.Sprintf("%s-eth>=%d", m.switchName, m.minPort)
}

type patternMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewPatternMatcher selects interfaces whose whole name matches pattern, an
// exact name ("s1-eth4") or a bracketed range ("s1-eth[4-6]"). The pattern is
// anchored at both ends, so "s1-eth4" does not select "s1-eth40".
func NewPatternMatcher(pattern string) (InterfaceMatcher, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty interface pattern")
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid interface pattern %q: %w", pattern, err)
	}
	return &patternMatcher{pattern: pattern, re: re}, nil
}

func (m *patternMatcher) Match(interfaceName string) bool {
	return m.re.MatchString(interfaceName)
}

func (m *patternMatcher) String() string {
	return m.pattern
}

// portNumber parses N out of "<switch>-eth<N>".
func portNumber(switchName, interfaceName string) (int, bool) {
	suffix, ok := strings.CutPrefix(interfaceName, switchName+"-eth")
	if !ok || suffix == "" {
		return 0, false
	}
	port, err := strconv.Atoi(suffix)
	if err != nil || port < 0 {
		return 0, false
	}
	return port, true
}
