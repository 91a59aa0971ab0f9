package catalog

import (
	"fmt"
	"sort"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

// Fix quality indicators as reported in NMEA GGA sentences.
var fixQualities = map[int]string{
	0: "No Fix",
	1: "GPS Fix",
	2: "DGPS Fix",
	3: "PPS Fix",
	4: "RTK Fixed",
	5: "RTK Float",
	6: "DR",
	7: "Manual",
	8: "Simulation",
}

// Per-satellite signal quality indicators from UBX NAV-SAT.
var signalQualities = map[int]string{
	0: "No Signal",
	1: "Searching",
	2: "Acquired",
	3: "Unusable",
	4: "Code Lock",
	5: "Code & Carrier Lock",
	6: "Code & Carrier Lock (Time)",
}

func FixQuality(code int) (string, error) {
	name, ok := fixQualities[code]
	if !ok {
		return "", fmt.Errorf("fix quality %d: %w", code, domain.ErrUnknownCode)
	}
	return name, nil
}

func SignalQuality(code int) (string, error) {
	name, ok := signalQualities[code]
	if !ok {
		return "", fmt.Errorf("signal quality %d: %w", code, domain.ErrUnknownCode)
	}
	return name, nil
}

// FixQualityCodes returns all known fix quality codes in ascending order.
func FixQualityCodes() []int {
	return sortedIntKeys(fixQualities)
}

// SignalQualityCodes returns all known signal quality codes in ascending order.
func SignalQualityCodes() []int {
	return sortedIntKeys(signalQualities)
}

func sortedIntKeys(table map[int]string) []int {
	keys := make([]int, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

func sortedStringKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
