package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"debug", true, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"bogus", false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := Setup(&buf, tt.level, "text")

			buf.Reset()
			log.Debug("d")
			if got := buf.Len() > 0; got != tt.wantDebug {
				t.Errorf("debug emitted = %v, want %v", got, tt.wantDebug)
			}
			buf.Reset()
			log.Info("i")
			if got := buf.Len() > 0; got != tt.wantInfo {
				t.Errorf("info emitted = %v, want %v", got, tt.wantInfo)
			}
			buf.Reset()
			log.Warn("w")
			if got := buf.Len() > 0; got != tt.wantWarn {
				t.Errorf("warn emitted = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "info", "JSON").Info("wrote favicon", "bytes", 1118)

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}
	if rec["msg"] != "wrote favicon" || rec["bytes"] != float64(1118) {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestSetupText(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, "", "").Info("hello", "path", "static/favicon.ico")
	if !strings.Contains(buf.String(), "path=static/favicon.ico") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}
