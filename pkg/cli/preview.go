package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"os/exec"
	"strings"
)

// Terminal preview for the processed image, used by the -preview flag.
//
// Backend order:
//   - kitty graphics protocol when kitty (or a kitty-compatible terminal such
//     as ghostty) is detected: chunked base64 inside ESC _G ... ESC \.
//   - iTerm2-style OSC 1337 inline file sequence for iTerm2, WezTerm, Warp,
//     VSCode and friends.
//   - chafa on PATH as a block-character fallback for everything else.
//
// Set INSTAFILM_PREVIEW_DEBUG=1 to trace backend selection on stderr.
var previewDebug = false

func init() {
	debug := os.Getenv("INSTAFILM_PREVIEW_DEBUG")
	if debug == "1" || debug == "true" {
		previewDebug = true
	}
}

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "instafilm-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "kitty") || strings.Contains(term, "ghostty")
}

// isInlineImageCapable detects terminals implementing the iTerm2-style
// inline image OSC, based on TERM_PROGRAM and common TERM substrings.
func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "Tabby":
		return true
	}
	if os.Getenv("ITERM_SESSION_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	return strings.Contains(term, "wezterm") || strings.Contains(term, "warp") ||
		strings.Contains(term, "tabby") || strings.Contains(term, "vscode")
}

func hasChafa() bool {
	_, err := exec.LookPath("chafa")
	return err == nil
}

// previewSize is the target placement in terminal character cells.
type previewSize struct {
	Cols        int
	Rows        int
	PixelWidth  int
	PixelHeight int
}

// computePreviewSize maps the image dimensions into character cells,
// preserving aspect ratio and never scaling up. Cell geometry is assumed
// 8x16 which is close enough for placement hints.
func computePreviewSize(img image.Image) previewSize {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	const charW = 8
	const charH = 16
	const minCols, minRows = 6, 3
	const maxCols, maxRows = 80, 40

	scaleW := float64(maxCols*charW) / float64(w)
	scaleH := float64(maxRows*charH) / float64(h)
	scale := math.Min(1.0, math.Min(scaleW, scaleH))

	cols := int(math.Round(float64(w) * scale / charW))
	rows := int(math.Round(float64(h) * scale / charH))

	if cols < minCols {
		cols = minCols
	}
	if cols > maxCols {
		cols = maxCols
	}
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}

	return previewSize{Cols: cols, Rows: rows, PixelWidth: cols * charW, PixelHeight: rows * charH}
}

// postImageNewlines picks a small number of blank lines to emit after the
// image so the shell prompt lands directly below it.
func postImageNewlines(rows int) int {
	switch {
	case rows > 0 && rows <= 2:
		return 1
	case rows > 0 && rows <= 6:
		return 2
	case rows > 0:
		return 3
	default:
		return 1
	}
}

// PreviewImage encodes img as PNG and renders it inline in the terminal.
// Returns an error when no supported backend is available.
func PreviewImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	size := computePreviewSize(img)

	if isKitty() {
		debugf("attempting kitty protocol")
		if err := sendKittyImage(buf.Bytes(), size); err == nil {
			return nil
		} else {
			debugf("kitty protocol failed: %v", err)
		}
	}
	if isInlineImageCapable() {
		debugf("attempting inline protocol")
		if err := sendInlineImage(buf.Bytes(), size); err == nil {
			return nil
		} else {
			debugf("inline protocol failed: %v", err)
		}
	}
	if hasChafa() {
		debugf("attempting chafa fallback")
		if err := sendChafaImage(buf.Bytes(), size); err == nil {
			return nil
		} else {
			debugf("chafa failed: %v", err)
		}
	}
	return fmt.Errorf("no preview protocol matched")
}

// sendKittyImage sends PNG bytes using the kitty graphics protocol, chunking
// the base64 payload into <=4096-byte chunks per spec. The first chunk
// carries transmit+display (a=T), direct payload (t=d), f=100 for PNG,
// q=2 to suppress terminal responses, and the requested placement area.
func sendKittyImage(data []byte, size previewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	debugf("sendKittyImage sending %d bytes, placement %dx%d cells", len(data), size.Cols, size.Rows)

	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	writeSeq := func(s string) error {
		_, err := os.Stdout.Write([]byte(s))
		return err
	}

	total := len(enc)
	first := true
	for pos := 0; pos < total; pos += chunkSize {
		end := pos + chunkSize
		if end > total {
			end = total
		}
		chunk := enc[pos:end]
		mVal := "0"
		if end != total {
			mVal = "1"
		}

		var seq string
		if first {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, mVal, chunk)
			first = false
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + chunk + "\x1b\\"
		}
		if err := writeSeq(seq); err != nil {
			return err
		}
	}

	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}

// sendInlineImage emits the iTerm2-style OSC 1337 inline file sequence.
func sendInlineImage(data []byte, size previewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	enc := base64.StdEncoding.EncodeToString(data)
	meta := fmt.Sprintf("size=%d;", len(data))
	if size.PixelWidth > 0 && size.PixelHeight > 0 {
		meta += fmt.Sprintf("width=%dpx;height=%dpx;", size.PixelWidth, size.PixelHeight)
	}
	seq := "\x1b]1337;File=name=preview.png;inline=1;" + meta + ":" + enc + "\a"
	_, err := os.Stdout.Write([]byte(seq))
	if err != nil {
		return err
	}
	for i := 0; i < postImageNewlines(0); i++ {
		fmt.Println()
	}
	return nil
}

// sendChafaImage pipes PNG bytes through chafa for a block-character
// rendering that works in most terminals.
func sendChafaImage(data []byte, size previewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	cmd := exec.Command("chafa", "--fill=block", "--symbols=block",
		"-s", fmt.Sprintf("%dx%d", size.Cols, size.Rows), "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}
	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}
