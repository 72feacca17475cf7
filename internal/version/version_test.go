package version

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{name: "no build info", ok: false, want: "dev"},
		{name: "no revision", info: &debug.BuildInfo{}, ok: true, want: "dev"},
		{
			name: "module version",
			info: &debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}},
			ok:   true,
			want: "v0.3.0",
		},
		{
			name: "clean revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			}},
			ok:   true,
			want: "0123456",
		},
		{
			name: "dirty revision",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			}},
			ok:   true,
			want: "abc (dirty)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.info, tt.ok)
			if got := GetVersion(); got != tt.want {
				t.Fatalf("GetVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetVersionPrefersLinkTimeVersion(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "v1.2.3"
	stubBuildInfo(t, nil, false)

	if got := GetVersion(); got != "v1.2.3" {
		t.Fatalf("GetVersion() = %q", got)
	}
}
