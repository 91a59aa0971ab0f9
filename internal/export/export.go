package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/config"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatKML  = "kml"
)

type Exporter struct {
	cfg config.DataConfig
}

func NewExporter(cfg config.DataConfig) *Exporter {
	return &Exporter{cfg: cfg}
}

// Export writes points to a new file in the export directory and returns its
// path. The format must be enabled in the configuration and known to the
// exporter.
func (e *Exporter) Export(ctx context.Context, points []domain.TrackPoint, format string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !e.cfg.ExportFormatSupported(format) {
		return "", fmt.Errorf("export format %s: %w", format, domain.ErrUnsupportedFormat)
	}

	// No file is created until the format has a writer.
	var write func(io.Writer, []domain.TrackPoint) error
	switch format {
	case FormatCSV:
		write = writeCSV
	case FormatJSON:
		write = writeJSON
	case FormatKML:
		write = writeKML
	default:
		return "", fmt.Errorf("export format %s: %w", format, domain.ErrUnsupportedFormat)
	}

	if err := os.MkdirAll(e.cfg.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	name := fmt.Sprintf("track_%s.%s", time.Now().UTC().Format("20060102_150405"), format)
	path := filepath.Join(e.cfg.ExportDirectory, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer file.Close()

	if err := write(file, points); err != nil {
		return "", fmt.Errorf("writing %s export: %w", format, err)
	}

	log.WithFields(log.Fields{
		"component": "export",
		"format":    format,
		"points":    len(points),
		"file":      path,
	}).Info("track exported")

	return path, nil
}

func writeCSV(w io.Writer, points []domain.TrackPoint) error {
	cw := csv.NewWriter(w)

	header := []string{"timestamp", "latitude", "longitude", "altitude", "speed", "course", "fix_quality", "satellites", "hdop"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		record := []string{
			p.Timestamp.UTC().Format(time.RFC3339),
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			strconv.FormatFloat(p.Altitude, 'f', -1, 64),
			strconv.FormatFloat(p.Speed, 'f', -1, 64),
			strconv.FormatFloat(p.Course, 'f', -1, 64),
			strconv.Itoa(p.FixQuality),
			strconv.Itoa(p.Satellites),
			strconv.FormatFloat(p.HDOP, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, points []domain.TrackPoint) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(points)
}

type kml struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name      string       `xml:"name"`
	Placemark kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string        `xml:"name"`
	LineString kmlLineString `xml:"LineString"`
}

type kmlLineString struct {
	Tessellate  int    `xml:"tessellate"`
	Coordinates string `xml:"coordinates"`
}

func writeKML(w io.Writer, points []domain.TrackPoint) error {
	var coords strings.Builder
	for _, p := range points {
		// KML orders coordinates as lon,lat,alt.
		fmt.Fprintf(&coords, "%f,%f,%f\n", p.Longitude, p.Latitude, p.Altitude)
	}

	doc := kml{
		Xmlns: "http://www.opengis.net/kml/2.2",
		Document: kmlDocument{
			Name: "GNSS Track",
			Placemark: kmlPlacemark{
				Name: "Position History",
				LineString: kmlLineString{
					Tessellate:  1,
					Coordinates: coords.String(),
				},
			},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(doc)
}
