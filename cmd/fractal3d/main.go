package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtraverso3/fractal3D/internal/fractal3d"
	"github.com/mtraverso3/fractal3D/internal/panel"
	"github.com/mtraverso3/fractal3D/internal/viewer"
)

func mainCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "fractal3d",
		Short: "Real-time mandelbulb renderer",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			fractal3d.Debug = debug || os.Getenv("DEBUG") != ""
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose debug output")

	cmd.AddCommand(viewCmd(), renderCmd(), animateCmd())
	return cmd
}

func viewCmd() *cobra.Command {
	var (
		width, height int
		panelAddr     string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer window",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			store := fractal3d.NewStore()

			if panelAddr != "" {
				srv := panel.New(store)
				go func() {
					if err := srv.ListenAndServe(context.Background(), panelAddr); err != nil {
						log.Printf("control panel: %v", err)
					}
				}()
			}

			return viewer.Run(store, width, height, "fractal3D", nil)
		},
	}
	cmd.Flags().IntVar(&width, "width", 640, "render width in pixels")
	cmd.Flags().IntVar(&height, "height", 360, "render height in pixels")
	cmd.Flags().StringVar(&panelAddr, "panel", "", "serve the browser control panel on this address (e.g. localhost:8080)")
	return cmd
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [config.json]",
		Short: "Render one frame to a 16-bit PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return fractal3d.RunRender(configPath(args))
		},
	}
}

func animateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "animate [config.json]",
		Short: "Render the configured animation to an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return fractal3d.RunAnimate(configPath(args))
		},
	}
}

func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "configs/bulb.json"
}

func main() {
	if err := mainCmd().ExecuteContext(context.Background()); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
