package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// CommandEngine is a secondary OCR backend that shells out to a tesseract
// binary. It yields plain text without token geometry, which is enough for
// report-only pipelines when the primary in-process backend is unavailable.
type CommandEngine struct {
	binary      string
	language    string
	tessdataDir string
	runner      Runner
}

func NewCommandEngine(binary, language, tessdataDir string, runner Runner) *CommandEngine {
	if binary == "" {
		binary = "tesseract"
	}
	if language == "" {
		language = "eng"
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &CommandEngine{binary: binary, language: language, tessdataDir: tessdataDir, runner: runner}
}

func (e *CommandEngine) Name() string { return "tesseract-cli" }

func (e *CommandEngine) Recognize(ctx context.Context, image []byte) (Result, error) {
	tmp, err := os.CreateTemp("", "ps-ocr-*.png")
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(image); err != nil {
		_ = tmp.Close()
		return Result{}, err
	}
	if err := tmp.Close(); err != nil {
		return Result{}, err
	}

	args := []string{tmp.Name(), "stdout", "-l", e.language}
	if e.tessdataDir != "" {
		args = append(args, "--tessdata-dir", e.tessdataDir)
	}
	out, errb, err := e.runner.Run(ctx, e.binary, args...)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract: %s: %w", truncate(string(errb), 512), err)
	}
	text := strings.TrimRight(string(out), "\n")
	return Result{Text: text}, nil
}
