package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Stage", KeyStage, "build_packages", Stage("build_packages")},
		{"Package", KeyPackage, "react", Package("react")},
		{"OutName", KeyOutName, "index", OutName("index")},
		{"Target", KeyTarget, "nodejs", Target("nodejs")},
		{"Mode", KeyMode, "test", Mode("test")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"RunID", KeyRunID, "abc", RunID("abc")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.attr.Key != c.attrKey {
				t.Errorf("key = %q, want %q", c.attr.Key, c.attrKey)
			}
			if c.attr.Value.String() != c.attrVal {
				t.Errorf("value = %q, want %q", c.attr.Value.String(), c.attrVal)
			}
		})
	}
}

func TestErrorHelper(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Errorf("Error(nil) value = %q, want empty", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Errorf("Error(err) value = %q, want boom", got)
	}
}
