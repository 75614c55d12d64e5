package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/Fepozopo/instafilm/pkg/film"
)

// Version is the build version; releases override it via
// -ldflags "-X github.com/Fepozopo/instafilm/pkg/cli.Version=x.y.z".
var Version = "0.1.0"

func init() {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env not present; it's optional
	}
}

// envOr returns the value of the environment variable key, or fallback when
// it is unset or empty. Environment variables seed flag defaults so a .env
// file can carry per-project settings.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Run parses os.Args and executes one file-to-file transform, exiting with
// the resulting status code.
func Run() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("instafilm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	styleFlag := fs.String("leak-style", envOr("INSTAFILM_LEAK_STYLE", "warm"), "leak color recipe: warm, cool, pink, burn, none, auto")
	posFlag := fs.String("leak-position", envOr("INSTAFILM_LEAK_POSITION", "upper_right"), "leak anchor: upper_left, upper_right, bottom_left, bottom_right, none")
	intensityFlag := fs.String("leak-intensity", envOr("INSTAFILM_LEAK_INTENSITY", "0.5"), "leak strength in [0,1], or auto")
	vignetteFlag := fs.Float64("vignette", 0, "vignette strength in [0,1], 0 disables")
	borderFlag := fs.Int("border", 0, "uniform border size in pixels, 0 disables")
	frameFlag := fs.Bool("frame", false, "compose onto the 54x86mm instax card instead of a uniform border")
	scaleFlag := fs.Int("scale", 10, "mm-to-pixel factor for -frame (10 gives a 540x860 card)")
	captionFlag := fs.String("caption", "", "caption text for the bottom margin")
	fontFlag := fs.String("font", envOr("INSTAFILM_FONT", ""), "path to an OpenType/TrueType font for -caption")
	halationFlag := fs.Float64("halation", 0, "highlight glow amount in [0,1], 0 disables")
	qualityFlag := fs.Int("quality", 92, "JPEG output quality")
	previewFlag := fs.Bool("preview", false, "preview the result inline in a compatible terminal")
	verboseFlag := fs.Bool("verbose", false, "log processing steps to stderr")
	versionFlag := fs.Bool("version", false, "print version and exit")
	updateFlag := fs.Bool("update", false, "check for a newer release and self-update")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: instafilm [flags] <input> <output>\n\n")
		fmt.Fprintf(stderr, "Crops <input> to the instax print ratio, adds a light leak, optional\n")
		fmt.Fprintf(stderr, "vignette and border/frame, and writes the result to <output>.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "instafilm %s\n", Version)
		return 0
	}
	if *updateFlag {
		if err := CheckForUpdates(); err != nil {
			fmt.Fprintf(stderr, "instafilm: %v\n", err)
			return 1
		}
		return 0
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fs.Usage()
		return 2
	}
	inputPath := rest[0]
	outputPath := rest[1]

	opts, err := buildOptions(*styleFlag, *posFlag, *intensityFlag)
	if err != nil {
		fmt.Fprintf(stderr, "instafilm: %v\n", err)
		return 2
	}
	opts.VignetteStrength = *vignetteFlag
	opts.BorderSize = *borderFlag
	opts.Frame = *frameFlag
	opts.Scale = *scaleFlag
	opts.Caption = *captionFlag
	opts.FontPath = *fontFlag
	opts.Halation = *halationFlag

	logf := func(format string, a ...interface{}) {
		if *verboseFlag {
			fmt.Fprintf(stderr, format+"\n", a...)
		}
	}

	img, err := LoadImage(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "instafilm: failed to read %s: %v\n", inputPath, err)
		return 1
	}
	logf("loaded %s (%dx%d)", inputPath, img.Bounds().Dx(), img.Bounds().Dy())

	out, err := film.Apply(img, opts)
	if err != nil {
		fmt.Fprintf(stderr, "instafilm: %v\n", err)
		if errors.Is(err, film.ErrInvalidParameter) {
			return 2
		}
		return 1
	}
	logf("applied leak=%s position=%s vignette=%g border=%d frame=%v halation=%g",
		opts.Style, opts.Position, opts.VignetteStrength, opts.BorderSize, opts.Frame, opts.Halation)

	if err := SaveImage(out, outputPath, *qualityFlag); err != nil {
		fmt.Fprintf(stderr, "instafilm: failed to write %s: %v\n", outputPath, err)
		return 1
	}
	logf("wrote %s (%dx%d)", outputPath, out.Bounds().Dx(), out.Bounds().Dy())

	if *previewFlag {
		// Preview is best effort; unsupported terminals just skip it.
		if err := PreviewImage(out); err != nil {
			logf("preview unavailable: %v", err)
		}
	}
	return 0
}

// buildOptions parses the enum-valued flags into pipeline options. Numeric
// ranges are validated by the pipeline itself.
func buildOptions(style, pos, intensity string) (film.Options, error) {
	opts := film.DefaultOptions()
	var err error
	if opts.Style, err = film.ParseLeakStyle(style); err != nil {
		return opts, err
	}
	if opts.Position, err = film.ParseLeakPosition(pos); err != nil {
		return opts, err
	}
	if opts.Intensity, err = film.ParseIntensity(intensity); err != nil {
		return opts, err
	}
	return opts, nil
}
