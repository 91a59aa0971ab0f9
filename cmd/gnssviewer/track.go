package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timshannon/bolthold"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/catalog"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/config"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/export"
	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/storage"
)

func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Inspect and export the recorded position history",
	}
	cmd.AddCommand(newTrackListCmd())
	cmd.AddCommand(newTrackExportCmd())
	return cmd
}

func newTrackListCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent track points",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			repo, err := openTrackRepository(dbPath, settings)
			if err != nil {
				return err
			}
			defer repo.Close()

			points, err := repo.Recent(cmd.Context(), limit)
			if errors.Is(err, domain.ErrNoTrackPoints) {
				if flagJSON {
					return printJSON([]domain.TrackPoint{})
				}
				fmt.Println(styleDim.Render("no track points recorded"))
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading track points: %w", err)
			}

			if flagJSON {
				return printJSON(points)
			}
			printTrackPoints(points)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Track database path (default: from configuration)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of recent points to show")
	return cmd
}

func newTrackExportCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded track points to csv, json or kml",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}

			repo, err := openTrackRepository(dbPath, settings)
			if err != nil {
				return err
			}
			defer repo.Close()

			var points []domain.TrackPoint
			if limit > 0 {
				points, err = repo.Recent(cmd.Context(), limit)
			} else {
				points, err = repo.All(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("reading track points: %w", err)
			}

			exporter := export.NewExporter(settings.Data)
			path, err := exporter.Export(cmd.Context(), points, format)
			if err != nil {
				return fmt.Errorf("exporting track: %w", err)
			}

			fmt.Println(styleOK.Render("exported"), styleValue.Render(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Track database path (default: from configuration)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Export only the most recent N points (0 = all)")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv, json or kml")
	return cmd
}

func openTrackRepository(dbPath string, settings *config.Settings) (domain.TrackRepository, error) {
	if dbPath == "" {
		dbPath = settings.Data.TrackDBPath()
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("track database %s does not exist", dbPath)
	}

	store, err := bolthold.Open(dbPath, 0666, nil)
	if err != nil {
		return nil, fmt.Errorf("opening track database: %w", err)
	}
	return storage.NewTrackRepository(store, settings.Data.MaxHistoryPoints), nil
}

func printTrackPoints(points []domain.TrackPoint) {
	fmt.Println(styleTitle.Render(fmt.Sprintf("Track points (%d)", len(points))))
	for _, p := range points {
		fixName, err := catalog.FixQuality(p.FixQuality)
		if err != nil {
			fixName = fmt.Sprintf("quality %d", p.FixQuality)
		}
		fmt.Printf("  %s  %s  %s\n",
			styleValue.Render(p.Timestamp.Format("2006-01-02 15:04:05")),
			styleKey.Render(fmt.Sprintf("%.6f, %.6f", p.Latitude, p.Longitude)),
			styleDim.Render(fmt.Sprintf("alt %.1fm  sats %d  %s", p.Altitude, p.Satellites, fixName)))
	}
}
