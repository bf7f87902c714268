package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := Setup(Options{Stderr: &buf})
	defer closer.Close()

	logger.Debug("parsed", "records", 3)
	logger.Info("ready")

	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	logger.Warn("slow read")
	if !strings.Contains(buf.String(), "slow read") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestSetupVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := Setup(Options{Verbose: true, Stderr: &buf})
	defer closer.Close()

	logger.Debug("parsed", "records", 3)

	if !strings.Contains(buf.String(), "records=3") {
		t.Errorf("expected debug attributes in output, got %q", buf.String())
	}
}

func TestSetupFileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logtally.log")

	logger, closer := Setup(Options{File: path, Stderr: &buf})
	logger.Error("source unreadable", "path", "missing.log")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "path=missing.log") {
		t.Errorf("expected log file to contain the entry, got %q", raw)
	}
	if !strings.Contains(buf.String(), "path=missing.log") {
		t.Errorf("expected stderr to contain the entry, got %q", buf.String())
	}
}
