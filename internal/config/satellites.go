package config

import (
	"fmt"
	"sort"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

const (
	SystemGPS     = "GPS"
	SystemGLONASS = "GLONASS"
	SystemGalileo = "Galileo"
	SystemBeiDou  = "BeiDou"
	SystemQZSS    = "QZSS"
	SystemSBAS    = "SBAS"
)

// SatelliteSystem describes one GNSS constellation as shown in the UI.
type SatelliteSystem struct {
	Enabled     bool
	Color       string
	Priority    int
	Description string
}

type SatelliteConfig struct {
	Systems map[string]SatelliteSystem
}

// defaultSatelliteSystems builds the constellation registry. The registry is
// fixed, a fresh map is returned so callers can never share mutable state.
func defaultSatelliteSystems() map[string]SatelliteSystem {
	return map[string]SatelliteSystem{
		SystemGPS: {
			Enabled:     true,
			Color:       "#00ff88",
			Priority:    1,
			Description: "Global Positioning System (USA)",
		},
		SystemGLONASS: {
			Enabled:     true,
			Color:       "#ff4444",
			Priority:    2,
			Description: "Global Navigation Satellite System (Russia)",
		},
		SystemGalileo: {
			Enabled:     true,
			Color:       "#4488ff",
			Priority:    3,
			Description: "European Global Navigation Satellite System",
		},
		SystemBeiDou: {
			Enabled:     true,
			Color:       "#ffaa00",
			Priority:    4,
			Description: "BeiDou Navigation Satellite System (China)",
		},
		SystemQZSS: {
			Enabled:     false,
			Color:       "#aa00ff",
			Priority:    5,
			Description: "Quasi-Zenith Satellite System (Japan)",
		},
		SystemSBAS: {
			Enabled:     false,
			Color:       "#ff00aa",
			Priority:    6,
			Description: "Satellite-Based Augmentation Systems",
		},
	}
}

func loadSatellites() SatelliteConfig {
	return SatelliteConfig{Systems: defaultSatelliteSystems()}
}

func (c SatelliteConfig) System(name string) (SatelliteSystem, error) {
	system, ok := c.Systems[name]
	if !ok {
		return SatelliteSystem{}, fmt.Errorf("satellite system %s: %w", name, domain.ErrUnknownSystem)
	}
	return system, nil
}

// ByPriority returns all system names ordered by ascending priority.
func (c SatelliteConfig) ByPriority() []string {
	names := make([]string, 0, len(c.Systems))
	for name := range c.Systems {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return c.Systems[names[i]].Priority < c.Systems[names[j]].Priority
	})
	return names
}

// EnabledSystems returns the enabled system names ordered by priority.
func (c SatelliteConfig) EnabledSystems() []string {
	var names []string
	for _, name := range c.ByPriority() {
		if c.Systems[name].Enabled {
			names = append(names, name)
		}
	}
	return names
}
