// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mdhender/svgicons"
	"github.com/mdhender/svgicons/config"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		cmd.PersistentFlags().Float64("default-size", 0, "default icon size (overrides SVGICONS_SIZE)")
		cmd.PersistentFlags().String("default-color", "", "default stroke color (overrides SVGICONS_COLOR)")
		cmd.PersistentFlags().Float64("default-stroke-width", 0, "default stroke width (overrides SVGICONS_STROKE_WIDTH)")
		cmd.PersistentFlags().Bool("default-absolute-stroke-width", false, "do not scale stroke width with size (overrides SVGICONS_ABSOLUTE_STROKE_WIDTH)")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "svgicons",
		Short: "SVG icon command line utility",
		Long:  `Render, list, export and serve stroked SVG icons`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("svgicons: version %q\n", svgicons.Version().Core())
			}

			return loadDefaults(cmd)
		},
	}
	cmdRoot.AddCommand(cmdRender())
	cmdRoot.AddCommand(cmdList())
	cmdRoot.AddCommand(cmdCatalog())
	cmdRoot.AddCommand(cmdSprite())
	cmdRoot.AddCommand(cmdExport())
	cmdRoot.AddCommand(cmdServe())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDefaults installs the process-wide defaults from the environment,
// then applies any --default-* flags on top.
func loadDefaults(cmd *cobra.Command) error {
	d, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("default-size") {
		d.Size, _ = flags.GetFloat64("default-size")
	}
	if flags.Changed("default-color") {
		d.Color, _ = flags.GetString("default-color")
	}
	if flags.Changed("default-stroke-width") {
		d.StrokeWidth, _ = flags.GetFloat64("default-stroke-width")
	}
	if flags.Changed("default-absolute-stroke-width") {
		d.AbsoluteStrokeWidth, _ = flags.GetBool("default-absolute-stroke-width")
	}
	if err := config.Set(d); err != nil {
		return err
	}
	if debug, _ := flags.GetBool("debug"); debug {
		log.Printf("defaults: %+v\n", d)
	}
	return nil
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(svgicons.Version().String())
				return nil
			}
			fmt.Println(svgicons.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
