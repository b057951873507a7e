package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{
			name:    "dev build",
			version: "dev", commit: "unknown", date: "unknown",
			want: "sunsetology version dev (" + runtime.Version(),
		},
		{
			name:    "release build",
			version: "1.2.0", commit: "0123456789abcdef", date: "2025-06-21T20:30:00Z",
			want: "sunsetology version 1.2.0 (commit: 01234567, built: 2025-06-21T20:30:00Z",
		},
		{
			name:    "short commit",
			version: "1.2.1", commit: "abc", date: "2025-06-22T00:00:00Z",
			want: "(commit: abc, built:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if Short() != tt.version {
				t.Errorf("Short() = %q, want %q", Short(), tt.version)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}
}
