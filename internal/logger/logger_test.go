package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNewWritesDailyJSONFile(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	root := t.TempDir()
	log, err := New(root, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Infow("template rendered", "path", "/x/y.html")
	_ = log.Sync()

	p := filepath.Join(root, "logs", time.Now().Format("2006-01-02")+".log")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(b)
	if !strings.Contains(line, `"msg":"template rendered"`) || !strings.Contains(line, `"level":"info"`) {
		t.Fatalf("unexpected log line: %s", line)
	}
	if zap.S().Desugar().Core() != log.Desugar().Core() {
		t.Fatal("logger not installed globally")
	}
}
