package cli

import (
	"fmt"
	goimage "image"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/sunsetology/internal/colour"
	"github.com/jmylchreest/sunsetology/internal/config"
	"github.com/jmylchreest/sunsetology/internal/export"
)

// kindAll renders every artwork kind.
const kindAll export.Kind = "all"

// imageSource is a loaded input image and where it came from.
type imageSource struct {
	path string
	img  goimage.Image
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	mode := newEnumFlag(colour.ThemeSunset, colour.ValidThemes())
	algorithm := newEnumFlag(colour.AlgorithmBucket, colour.ValidAlgorithms())
	gradient := newEnumFlag(export.GradientLinear, export.ValidGradientTypes())
	kind := newEnumFlag(export.KindWallpaper, append(export.ValidKinds(), kindAll))
	lang := newEnumFlag(export.LangEnglish, export.ValidLangs())
	var quote, date string

	cmd := &cobra.Command{
		Use:   "export <image|directory>",
		Short: "Render gradient artwork from an image's palette",
		Long: `Render PNG artwork from the palette of an image.

Kinds:
  wallpaper  1080x1920 gradient wallpaper with the gradient stops and a quote
  compare    the photo beside its gradient wallpaper
  card       1080x1350 card with the photo, five swatches and a quote
  all        every kind above

Examples:
  # Render a wallpaper into the current directory
  sunsetology export sunset.jpg

  # Render every kind with a radial gradient into ./art
  sunsetology export --kind all --gradient radial -d art sunset.jpg

  # Use your own caption
  sunsetology export --kind card --quote "Golden hour." sunset.jpg

  # Japanese caption, drawn with a font that has Japanese glyphs
  sunsetology export --lang ja --quote-font NotoSansJP-Regular.otf sunset.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0], quote, date)
		},
	}

	cmd.Flags().VarP(kind, config.KeyKind, "k", kind.usage("artwork kind"))
	cmd.Flags().VarP(mode, config.KeyMode, "m", mode.usage("weighting mode"))
	cmd.Flags().VarP(algorithm, config.KeyAlgorithm, "a", algorithm.usage("candidate algorithm"))
	cmd.Flags().VarP(gradient, config.KeyGradient, "g", gradient.usage("gradient type"))
	cmd.Flags().StringP(config.KeyOutputDir, "d", ".", "directory to write artwork to")
	cmd.Flags().StringVar(&quote, "quote", "", "caption text (default: chosen from the palette)")
	cmd.Flags().Var(lang, config.KeyLang, lang.usage("language of the built-in quotes"))
	cmd.Flags().String(config.KeyQuoteFont, "", "OpenType/TrueType font file for the caption")
	cmd.Flags().StringVar(&date, "date", "", "date printed on the artwork as YYYYMMDD (default: today)")

	return cmd
}

func runExport(cmd *cobra.Command, opts *globalOptions, input, quote, date string) error {
	logger := opts.logger.Named("export")
	cfg := opts.config

	now := time.Now()
	printed := now
	if date != "" {
		var err error
		if printed, err = time.Parse("20060102", date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYYMMDD: %w", date, err)
		}
	}

	kinds := []export.Kind{export.Kind(cfg.String(config.KeyKind))}
	if kinds[0] == kindAll {
		kinds = export.ValidKinds()
	}

	palette, src, err := extractPalette(input, cfg, logger)
	if err != nil {
		return err
	}

	dir := cfg.String(config.KeyOutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderOpts := export.Options{
		Gradient: export.GradientType(cfg.String(config.KeyGradient)),
		Quote:    quote,
		Lang:     export.Lang(cfg.String(config.KeyLang)),
		Date:     printed,
		Photo:    src.img,
	}

	if fontPath := cfg.String(config.KeyQuoteFont); fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("failed to read quote font: %w", err)
		}
		renderOpts.QuoteFont = data
	} else if !renderOpts.Lang.Latin() {
		logger.Warn("bundled fonts cannot draw this language, pass --quote-font", "lang", renderOpts.Lang)
	}

	for _, k := range kinds {
		img, err := export.Render(k, palette, renderOpts)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", k, err)
		}

		path := filepath.Join(dir, export.Filename(k, now))
		if err := export.Save(img, path); err != nil {
			return err
		}
		logger.Info("artwork saved", "kind", k, "path", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
