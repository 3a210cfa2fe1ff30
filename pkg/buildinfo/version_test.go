package buildinfo

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	dev := Info{Version: "dev", Commit: "abc123", Date: "unknown"}
	if !dev.Dev() {
		t.Error("dev build should report Dev()")
	}
	if got := dev.String(); got != "dev (commit abc123)" {
		t.Errorf("String() = %q", got)
	}

	rel := Info{Version: "v0.3.0", Commit: "abc123", Date: "2026-01-02"}
	if rel.Dev() {
		t.Error("stamped build should not report Dev()")
	}
	if got := rel.String(); !strings.Contains(got, "built 2026-01-02") {
		t.Errorf("String() = %q", got)
	}
	if tmpl := rel.Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v0.3.0\n") {
		t.Errorf("Template() = %q", tmpl)
	}
}
