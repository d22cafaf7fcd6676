package buildinfo

import (
	"strings"
	"testing"
)

func TestGetPrefersLdflags(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "v1.2.3", "abc123"
	i := Get()
	if i.Version != "v1.2.3" || i.Commit != "abc123" {
		t.Errorf("Get() = %+v", i)
	}
	if i.GoVersion == "" {
		t.Error("GoVersion should be set")
	}
	if !strings.Contains(Template(), "version v1.2.3") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: abc123") {
		t.Errorf("String() = %q", String())
	}
}
