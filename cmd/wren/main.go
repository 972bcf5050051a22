// wren renders an HTML file plus an optional stylesheet to a PNG.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wren/pkg/images"
	"wren/pkg/render"
)

var (
	cssFile      string
	outFile      string
	width        int
	height       int
	verbose      bool
	allowNetwork bool
)

var rootCmd = &cobra.Command{
	Use:          "wren [html file]",
	Short:        "wren renders an HTML file and a stylesheet to a PNG",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&cssFile, "css", "c", "", "stylesheet file applied to the page")
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "out.png", "output PNG path")
	rootCmd.Flags().IntVarP(&width, "width", "w", 1024, "viewport width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 768, "viewport height in pixels")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&allowNetwork, "network", false, "allow fetching images over http(s)")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	htmlSrc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading html: %w", err)
	}

	var cssSrc []byte
	if cssFile != "" {
		cssSrc, err = os.ReadFile(cssFile)
		if err != nil {
			return fmt.Errorf("reading css: %w", err)
		}
	}

	loader := images.NewLoader()
	if allowNetwork {
		loader.EnableNetwork(10 * time.Second)
	}

	surface := render.NewSurface(width, height)
	engine := render.NewEngine(
		render.WithLogger(logger),
		render.WithImageLoader(loader),
	)

	start := time.Now()
	if err := engine.Render(string(htmlSrc), string(cssSrc), surface); err != nil {
		return fmt.Errorf("rendering %s: %w", args[0], err)
	}
	if err := surface.SavePNG(outFile); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}

	logger.Info("rendered",
		zap.String("input", args[0]),
		zap.String("output", outFile),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
