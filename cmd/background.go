package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vlivernoche/portfolio/internal/config"
	"github.com/vlivernoche/portfolio/internal/particles"
	"github.com/vlivernoche/portfolio/internal/termview"
)

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Preview the particle background in the terminal",
	Long: `Runs the same particle simulation as the site's canvas background,
drawn with terminal cells. Move the mouse to attract particles; press
q, Esc or Ctrl-C to quit.`,
	RunE: runBackground,
}

func init() {
	rootCmd.AddCommand(backgroundCmd)
}

func runBackground(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	preview, err := termview.NewPreview(screen, particleConfig(cfg.Background))
	if err != nil {
		return err
	}
	return preview.Run(cmd.Context())
}

// particleConfig applies the configured overrides to the site defaults.
func particleConfig(bg config.BackgroundConfig) particles.Config {
	pc := particles.DefaultConfig()
	pc.Count = bg.Particles
	pc.LinkDistance = bg.LinkDistance
	pc.ReducedMotion = bg.ReducedMotion
	pc.Primary = particles.ParseColor(bg.Primary, particles.DefaultPrimary)
	pc.Accent = particles.ParseColor(bg.Accent, particles.DefaultAccent)
	return pc
}
