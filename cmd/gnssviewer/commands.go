package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/catalog"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/config"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/export"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/logging"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration loaded from the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			if flagJSON {
				return printJSON(settings)
			}
			printSettings(settings)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and prepare runtime directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			closeLog, err := logging.Setup(settings.Logging)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			defer closeLog()

			if err := settings.EnsureDirectories(); err != nil {
				return fmt.Errorf("preparing directories: %w", err)
			}
			if err := checkCatalog(); err != nil {
				return fmt.Errorf("checking constants catalog: %w", err)
			}
			for _, name := range settings.Satellites.ByPriority() {
				if _, err := settings.Satellites.System(name); err != nil {
					return fmt.Errorf("checking satellite registry: %w", err)
				}
			}
			for _, format := range settings.Data.ExportFormats {
				switch format {
				case export.FormatCSV, export.FormatJSON, export.FormatKML:
				default:
					log.WithFields(log.Fields{
						"component": "check",
						"format":    format,
					}).Warn("configured export format has no writer")
				}
			}

			fmt.Println(styleOK.Render("configuration ok"))
			printField("Log level", settings.Logging.Level)
			printField("Track store", settings.Data.TrackDBPath())
			printField("Export directory", settings.Data.ExportDirectory)
			printField("Constellations", fmt.Sprintf("%d enabled of %d",
				len(settings.Satellites.EnabledSystems()), len(settings.Satellites.Systems)))
			return nil
		},
	}
}

func newConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Dump the protocol and UI constant tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagJSON {
				return printJSON(constantsDump())
			}
			printConstants()
			return nil
		},
	}
}

func newSatellitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "satellites",
		Short: "Show the satellite system registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			if flagJSON {
				return printJSON(settings.Satellites.Systems)
			}
			printSatellites(settings.Satellites)
			return nil
		},
	}
}

// checkCatalog resolves every enumerated key so a broken table is caught
// before the viewer starts.
func checkCatalog() error {
	for _, code := range catalog.FixQualityCodes() {
		if _, err := catalog.FixQuality(code); err != nil {
			return err
		}
	}
	for _, code := range catalog.SignalQualityCodes() {
		if _, err := catalog.SignalQuality(code); err != nil {
			return err
		}
	}
	for _, id := range catalog.UBXClassIDs() {
		if _, err := catalog.UBXClass(id); err != nil {
			return err
		}
	}
	for _, code := range catalog.NMEASentenceCodes() {
		if _, err := catalog.NMEASentence(code); err != nil {
			return err
		}
	}
	for _, code := range catalog.ErrorCodes() {
		if _, err := catalog.ErrorMessage(code); err != nil {
			return err
		}
	}
	for _, key := range catalog.StatusKeys() {
		if _, err := catalog.StatusMessage(key); err != nil {
			return err
		}
	}
	for _, token := range catalog.UIColorTokens() {
		if _, err := catalog.UIColor(token); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printField(name, value string) {
	fmt.Printf("  %s %s\n", styleKey.Render(name), styleValue.Render(value))
}

func printSettings(s *config.Settings) {
	fmt.Println(styleTitle.Render("Effective configuration"))

	fmt.Println(styleSection.Render("GNSS receiver"))
	printField("Port", s.GNSS.Port)
	printField("Baud rate", strconv.Itoa(s.GNSS.BaudRate))
	printField("Timeout", s.GNSS.Timeout.String())
	printField("Protocol", s.GNSS.Protocol)
	printField("RTCM enabled", strconv.FormatBool(s.GNSS.EnableRTCM))
	printField("NMEA enabled", strconv.FormatBool(s.GNSS.EnableNMEA))
	printField("UBX rate", strconv.Itoa(s.GNSS.UBXRate))
	printField("Nav rate", strconv.Itoa(s.GNSS.NavRate))

	fmt.Println(styleSection.Render("Web server"))
	printField("Address", s.Web.Addr())
	printField("Debug", strconv.FormatBool(s.Web.Debug))
	printField("Secret key", s.Web.SecretKey)
	printField("CORS origins", strings.Join(s.Web.CORSOrigins, ", "))
	printField("Session timeout", s.Web.SessionTimeout.String())
	printField("Rate limit", s.Web.RateLimit)

	fmt.Println(styleSection.Render("Map"))
	printField("Tile provider", s.Map.TileProvider)
	printField("Satellite layer", strconv.FormatBool(s.Map.SatelliteLayer))
	printField("Satellite URL", s.Map.SatelliteURL)
	printField("Default zoom", strconv.Itoa(s.Map.DefaultZoom))
	printField("Max zoom", strconv.Itoa(s.Map.MaxZoom))

	fmt.Println(styleSection.Render("Logging"))
	printField("Level", s.Logging.Level)
	printField("File enabled", strconv.FormatBool(s.Logging.FileEnabled))
	printField("File path", s.Logging.FilePath)
	printField("Max file size", formatBytes(s.Logging.MaxFileSize))
	printField("Backup count", strconv.Itoa(s.Logging.BackupCount))

	fmt.Println(styleSection.Render("Data"))
	printField("Logging enabled", strconv.FormatBool(s.Data.EnableLogging))
	printField("Log directory", s.Data.LogDirectory)
	printField("Export directory", s.Data.ExportDirectory)
	printField("Max history", strconv.Itoa(s.Data.MaxHistoryPoints))
	printField("Export formats", strings.Join(s.Data.ExportFormats, ", "))
	printField("Cache enabled", strconv.FormatBool(s.Data.CacheEnabled))
	printField("Cache TTL", s.Data.CacheTTL.String())

	fmt.Println(styleSection.Render("Satellite systems"))
	for _, name := range s.Satellites.ByPriority() {
		system := s.Satellites.Systems[name]
		state := styleDim.Render("disabled")
		if system.Enabled {
			state = styleOK.Render("enabled")
		}
		fmt.Printf("  %s %s %s\n", styleKey.Render(name), swatch(system.Color), state)
	}
}

func printConstants() {
	fmt.Println(styleTitle.Render(fmt.Sprintf("Constants catalog %s (api %s)", catalog.Version, catalog.APIVersion)))

	fmt.Println(styleSection.Render("Fix quality (NMEA GGA)"))
	for _, code := range catalog.FixQualityCodes() {
		name, _ := catalog.FixQuality(code)
		printField(strconv.Itoa(code), name)
	}

	fmt.Println(styleSection.Render("Signal quality (UBX NAV-SAT)"))
	for _, code := range catalog.SignalQualityCodes() {
		name, _ := catalog.SignalQuality(code)
		printField(strconv.Itoa(code), name)
	}

	fmt.Println(styleSection.Render("UBX message classes"))
	for _, id := range catalog.UBXClassIDs() {
		name, _ := catalog.UBXClass(id)
		printField(fmt.Sprintf("0x%02X", id), name)
	}

	fmt.Println(styleSection.Render("NMEA sentences"))
	for _, code := range catalog.NMEASentenceCodes() {
		description, _ := catalog.NMEASentence(code)
		printField(code, description)
	}

	fmt.Println(styleSection.Render("Error codes"))
	for _, code := range catalog.ErrorCodes() {
		message, _ := catalog.ErrorMessage(code)
		printField(code, message)
	}

	fmt.Println(styleSection.Render("Status messages"))
	for _, key := range catalog.StatusKeys() {
		message, _ := catalog.StatusMessage(key)
		printField(key, message)
	}

	fmt.Println(styleSection.Render("UI colors"))
	for _, token := range catalog.UIColorTokens() {
		hex, _ := catalog.UIColor(token)
		printField(token, swatch(hex))
	}
}

func constantsDump() map[string]interface{} {
	fix := make(map[string]string)
	for _, code := range catalog.FixQualityCodes() {
		fix[strconv.Itoa(code)], _ = catalog.FixQuality(code)
	}
	signal := make(map[string]string)
	for _, code := range catalog.SignalQualityCodes() {
		signal[strconv.Itoa(code)], _ = catalog.SignalQuality(code)
	}
	ubx := make(map[string]string)
	for _, id := range catalog.UBXClassIDs() {
		ubx[fmt.Sprintf("0x%02X", id)], _ = catalog.UBXClass(id)
	}
	nmea := make(map[string]string)
	for _, code := range catalog.NMEASentenceCodes() {
		nmea[code], _ = catalog.NMEASentence(code)
	}
	errorCodes := make(map[string]string)
	for _, code := range catalog.ErrorCodes() {
		errorCodes[code], _ = catalog.ErrorMessage(code)
	}
	status := make(map[string]string)
	for _, key := range catalog.StatusKeys() {
		status[key], _ = catalog.StatusMessage(key)
	}
	colors := make(map[string]string)
	for _, token := range catalog.UIColorTokens() {
		colors[token], _ = catalog.UIColor(token)
	}

	return map[string]interface{}{
		"version":         catalog.Version,
		"api_version":     catalog.APIVersion,
		"fix_quality":     fix,
		"signal_quality":  signal,
		"ubx_classes":     ubx,
		"nmea_sentences":  nmea,
		"error_codes":     errorCodes,
		"status_messages": status,
		"ui_colors":       colors,
	}
}

func printSatellites(cfg config.SatelliteConfig) {
	fmt.Println(styleTitle.Render("Satellite systems"))
	for _, name := range cfg.ByPriority() {
		system := cfg.Systems[name]
		state := styleDim.Render("disabled")
		if system.Enabled {
			state = styleOK.Render("enabled")
		}
		fmt.Printf("  %d. %s %s %s\n     %s\n",
			system.Priority,
			styleKey.Render(name),
			swatch(system.Color),
			state,
			styleDim.Render(system.Description))
	}
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
