// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdhender/svgicons/catalog"
	"github.com/mdhender/svgicons/config"
	"github.com/mdhender/svgicons/renderer"
	store "github.com/mdhender/svgicons/stores/sqlite"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// output is where commands write files and standard output.
// Tests swap in an in-memory file system.
var output = struct {
	fs     afero.Fs
	stdout io.Writer
}{
	fs:     afero.NewOsFs(),
	stdout: os.Stdout,
}

func newRenderer() (*renderer.Renderer, error) {
	return renderer.New(config.Get().Option())
}

// loadSet returns a built-in set, or a stored set when dbPath is set.
func loadSet(ctx context.Context, dbPath, name string) (*catalog.Set, error) {
	if dbPath == "" {
		set, ok := catalog.Builtin(name)
		if !ok {
			return nil, fmt.Errorf("unknown icon set %q (built-in sets: %s)", name, strings.Join(catalog.BuiltinNames(), ", "))
		}
		return set, nil
	}
	s, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: dbPath})
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadSet(ctx, name)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := output.stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := output.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(output.fs, path, data, 0o644); err != nil {
		return err
	}
	log.Printf("%s: wrote %d bytes\n", path, len(data))
	return nil
}

// propFlags registers the per-call render flags on cmd.
// Sprite symbols are unsized, so sprite commands leave out --size.
// Only flags the user sets become props, so omitted values fall through
// to the icon family and then the process defaults.
type propFlags struct {
	size        float64
	color       string
	strokeWidth float64
	absolute    bool
	classes     []string
}

func (pf *propFlags) add(cmd *cobra.Command, sized bool) {
	if sized {
		cmd.Flags().Float64Var(&pf.size, "size", pf.size, "icon width and height")
	}
	cmd.Flags().StringVar(&pf.color, "color", pf.color, "stroke color")
	cmd.Flags().Float64Var(&pf.strokeWidth, "stroke-width", pf.strokeWidth, "stroke width")
	cmd.Flags().BoolVar(&pf.absolute, "absolute-stroke-width", pf.absolute, "do not scale stroke width with size")
	cmd.Flags().StringSliceVar(&pf.classes, "class", pf.classes, "class names for the root element")
}

func (pf *propFlags) props(cmd *cobra.Command) ([]renderer.Prop, error) {
	var props []renderer.Prop
	flags := cmd.Flags()
	if flags.Changed("size") {
		if pf.size < 0 {
			return nil, fmt.Errorf("--size %v: must not be negative", pf.size)
		}
		props = append(props, renderer.Size(pf.size))
	}
	if flags.Changed("color") {
		props = append(props, renderer.Color(pf.color))
	}
	if flags.Changed("stroke-width") {
		if pf.strokeWidth < 0 {
			return nil, fmt.Errorf("--stroke-width %v: must not be negative", pf.strokeWidth)
		}
		props = append(props, renderer.StrokeWidth(pf.strokeWidth))
	}
	if flags.Changed("absolute-stroke-width") {
		props = append(props, renderer.AbsoluteStrokeWidth(pf.absolute))
	}
	if len(pf.classes) != 0 {
		props = append(props, renderer.Class(pf.classes...))
	}
	return props, nil
}

func cmdRender() *cobra.Command {
	var dbPath, outputFile string
	setName := "lucide"
	var pf propFlags
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "load the icon set from a SQLite export")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save svg to file")
		cmd.Flags().StringVar(&setName, "set", setName, "icon set name")
		pf.add(cmd, true)
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "render <icon-name>",
		Short:        "render one icon as svg",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			props, err := pf.props(cmd)
			if err != nil {
				return err
			}
			set, err := loadSet(ctx, dbPath, setName)
			if err != nil {
				return err
			}
			icon, err := set.Get(args[0])
			if err != nil {
				return err
			}
			r, err := newRenderer()
			if err != nil {
				return err
			}
			var sb strings.Builder
			if err := icon.Render(r, props...).Render(ctx, &sb); err != nil {
				return err
			}
			sb.WriteByte('\n')
			return writeOutput(outputFile, []byte(sb.String()))
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdList() *cobra.Command {
	var dbPath string
	setName := "lucide"
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "load the icon set from a SQLite export")
		cmd.Flags().StringVar(&setName, "set", setName, "icon set name")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "list",
		Short:        "list the icons in a set",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(context.Background(), dbPath, setName)
			if err != nil {
				return err
			}
			var sb strings.Builder
			for _, name := range set.Names() {
				sb.WriteString(name)
				sb.WriteByte('\n')
			}
			return writeOutput("", []byte(sb.String()))
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdCatalog() *cobra.Command {
	var dbPath, outputFile string
	setName := "lucide"
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "load the icon set from a SQLite export")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save markdown to file")
		cmd.Flags().StringVar(&setName, "set", setName, "icon set name")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "catalog",
		Short:        "write the icon catalog as markdown",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadSet(context.Background(), dbPath, setName)
			if err != nil {
				return err
			}
			return writeOutput(outputFile, []byte(set.Markdown()))
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdSprite() *cobra.Command {
	var dbPath, outputFile, prefix string
	setName := "lucide"
	var pf propFlags
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "load the icon set from a SQLite export")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save sprite to file")
		cmd.Flags().StringVar(&prefix, "prefix", prefix, "symbol id prefix (default \"<set>-\")")
		cmd.Flags().StringVar(&setName, "set", setName, "icon set name")
		pf.add(cmd, false)
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "sprite",
		Short:        "write every icon of a set as one svg sprite sheet",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := pf.props(cmd)
			if err != nil {
				return err
			}
			set, err := loadSet(context.Background(), dbPath, setName)
			if err != nil {
				return err
			}
			r, err := newRenderer()
			if err != nil {
				return err
			}
			if prefix == "" {
				prefix = set.Name() + "-"
			}
			return writeOutput(outputFile, []byte(set.Sprite(r, prefix, props...).String()+"\n"))
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdExport() *cobra.Command {
	var dbPath string
	var setNames []string
	compact := true
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "SQLite database file (created if missing)")
		cmd.Flags().StringSliceVar(&setNames, "set", catalog.BuiltinNames(), "built-in sets to export")
		cmd.Flags().BoolVar(&compact, "compact", compact, "vacuum the database after export")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "export",
		Short:        "export built-in icon sets to a SQLite database",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			verbose, _ := cmd.Flags().GetBool("verbose")

			s, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: dbPath, InitSchema: true})
			if err != nil {
				return err
			}
			for _, name := range setNames {
				set, ok := catalog.Builtin(name)
				if !ok {
					s.Close()
					return fmt.Errorf("unknown icon set %q", name)
				}
				id, err := s.SaveSet(ctx, set)
				if err != nil {
					s.Close()
					return fmt.Errorf("export %s: %w", name, err)
				}
				if verbose {
					log.Printf("export: %s: set %d: %d icons\n", name, id, set.Len())
				}
			}
			if err := s.Close(); err != nil {
				return err
			}
			if compact {
				if err := store.CompactDatabase(ctx, dbPath); err != nil {
					return err
				}
			}
			log.Printf("export: %s: %d sets\n", dbPath, len(setNames))
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
