package catalog

import (
	"fmt"
	"sort"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

// UBX message class identifiers understood by the u-blox ZED-F9P.
var ubxClasses = map[byte]string{
	0x01: "NAV",
	0x02: "RXM",
	0x04: "INF",
	0x05: "ACK",
	0x06: "CFG",
	0x0A: "MON",
	0x0D: "TIM",
	0x10: "ESF",
	0x13: "MGA",
	0x21: "LOG",
	0x27: "SEC",
	0x28: "HNR",
}

// NMEA sentence types emitted by the receiver.
var nmeaSentences = map[string]string{
	"GGA":  "Global Positioning System Fix Data",
	"GLL":  "Geographic Position - Latitude/Longitude",
	"GSA":  "GNSS DOP and Active Satellites",
	"GSV":  "GNSS Satellites in View",
	"RMC":  "Recommended Minimum Specific GNSS Data",
	"VTG":  "Course Over Ground and Ground Speed",
	"ZDA":  "Time & Date",
	"PUBX": "u-blox Proprietary",
}

func UBXClass(id byte) (string, error) {
	name, ok := ubxClasses[id]
	if !ok {
		return "", fmt.Errorf("ubx class 0x%02X: %w", id, domain.ErrUnknownCode)
	}
	return name, nil
}

func NMEASentence(code string) (string, error) {
	description, ok := nmeaSentences[code]
	if !ok {
		return "", fmt.Errorf("nmea sentence %s: %w", code, domain.ErrUnknownCode)
	}
	return description, nil
}

// UBXClassIDs returns all known UBX class identifiers in ascending order.
func UBXClassIDs() []byte {
	ids := make([]byte, 0, len(ubxClasses))
	for id := range ubxClasses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NMEASentenceCodes returns all known sentence codes in ascending order.
func NMEASentenceCodes() []string {
	return sortedStringKeys(nmeaSentences)
}
