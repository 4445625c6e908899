// Command donutdemo renders ggchart donut charts described in a config file.
//
// Usage:
//
//	donutdemo render -c chart.yaml -o donut.png [--touch 420,180] [--progress 0.5]
//	donutdemo frames -c chart.yaml -d frames/ [--fps 30] [--jobs 8]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands.
type app struct {
	configPath string
	logLevel   string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "donutdemo",
		Short:         "Render donut charts with ggchart",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setupLogging(cmd); err != nil {
				return err
			}
			if cmd.Name() == "version" {
				return nil
			}
			if a.configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "chart description file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd(a), newFramesCmd(a), newVersionCmd())
	return root
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ggchart.SetLogger(a.log)
	gg.SetLogger(a.log)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "donutdemo %s (commit %s)\n", version, commit)
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		output   string
		touch    string
		progress float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pt *gg.Point
			if touch != "" {
				p, err := parsePoint(touch)
				if err != nil {
					return err
				}
				pt = &p
			}

			dc, hit, err := renderFrame(a.cfg, progress, pt)
			if err != nil {
				return err
			}
			defer dc.Close()

			if err := dc.SavePNG(output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			a.log.Info("chart saved", "output", output, "width", a.cfg.Width, "height", a.cfg.Height)
			if pt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "touch %v,%v -> sector %d\n", pt.X, pt.Y, hit)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "donut.png", "output PNG file")
	cmd.Flags().StringVar(&touch, "touch", "", "simulate a touch at x,y and draw its marker")
	cmd.Flags().Float64Var(&progress, "progress", 1, "animation progress in [0, 1]")
	return cmd
}

func newFramesCmd(a *app) *cobra.Command {
	var (
		dir  string
		fps  int
		jobs int
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Render the entrance animation as numbered PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				fps = a.cfg.Animation.FPS
			}
			anim, err := a.cfg.ChartAnimation()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}

			n, err := renderFrames(cmd.Context(), a.cfg, anim.Frames(fps), dir, jobs)
			if err != nil {
				return err
			}
			a.log.Info("frames saved", "dir", dir, "frames", n, "fps", fps)
			fmt.Fprintf(cmd.OutOrStdout(), "%d frames written to %s\n", n, dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "frames", "output directory")
	cmd.Flags().IntVar(&fps, "fps", 0, "frames per second (default from config)")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "frames rendered in parallel")
	return cmd
}

// renderFrames renders one PNG per progress value. Every frame has its own
// chart and context, so frames render in parallel.
func renderFrames(ctx context.Context, cfg *config.Config, frames []float64, dir string, jobs int) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, progress := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dc, _, err := renderFrame(cfg, progress, nil)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			defer dc.Close()

			path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
			if err := dc.SavePNG(path); err != nil {
				return fmt.Errorf("frame %d: save %s: %w", i, path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(frames), nil
}

// renderFrame draws the configured chart at the given progress. When touch
// is set, the chart is drawn once, touched, and drawn again with its marker,
// like a host view handling a touch between two paints.
func renderFrame(cfg *config.Config, progress float64, touch *gg.Point) (*gg.Context, int, error) {
	entries, err := cfg.ChartEntries()
	if err != nil {
		return nil, ggchart.NoSector, err
	}
	opts, err := cfg.ChartOptions()
	if err != nil {
		return nil, ggchart.NoSector, err
	}

	chart := ggchart.NewDonut(entries, opts...)
	chart.SetAnimationProgress(progress)

	dc := gg.NewContext(cfg.Width, cfg.Height)
	paint := func() {
		if cfg.Background != "" {
			bg, _ := config.ParseColor(cfg.Background) // validated on load
			dc.ClearWithColor(bg)
		} else {
			dc.Clear()
		}
		chart.Draw(dc, cfg.Width, cfg.Height)
	}

	paint()
	hit := ggchart.NoSector
	if touch != nil {
		hit = chart.Touch(*touch)
		paint()
	}
	return dc, hit, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (gg.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gg.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return gg.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return gg.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return gg.Pt(x, y), nil
}
