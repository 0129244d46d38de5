package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Tesseract recognizes text by invoking the local tesseract binary. It is
// the default engine, requiring nothing beyond a tesseract installation.
type Tesseract struct {
	Lang    string        // recognition language, tesseract's -l flag
	Timeout time.Duration // upper bound for one recognition run
	Path    string        // binary name or path, "tesseract" by default
}

// NewTesseract returns a Tesseract engine with English recognition and a
// 30 second timeout.
func NewTesseract() *Tesseract {
	return &Tesseract{Lang: "eng", Timeout: 30 * time.Second, Path: "tesseract"}
}

// Available reports whether the tesseract binary can be found.
func (t *Tesseract) Available() error {
	if _, err := exec.LookPath(t.Path); err != nil {
		return fmt.Errorf("tesseract not found in PATH: %w", err)
	}
	return nil
}

// Recognize writes the image to a temporary file and runs tesseract over it,
// returning the recognized text from stdout.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := t.Available(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "timelog-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()
	if _, err := f.Write(image); err != nil {
		return "", fmt.Errorf("failed to write temp image: %w", err)
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := []string{f.Name(), "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}

	var out, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.Path, args...)
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %s", strings.TrimSpace(stderr.String()))
	}
	return out.String(), nil
}
