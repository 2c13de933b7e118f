// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	base := Info{Go: runtime.Version(), OS: runtime.GOOS, Arch: runtime.GOARCH}
	with := func(f func(*Info)) Info {
		i := base
		f(&i)
		return i
	}

	cases := map[string]struct {
		bi    *debug.BuildInfo
		want  Info
		short string
	}{
		"no build info": {
			want:  with(func(i *Info) { i.Version = "devel" }),
			short: "devel",
		},
		"release": {
			bi:    &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			want:  with(func(i *Info) { i.Version = "v1.2.3" }),
			short: "v1.2.3",
		},
		"development build": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: with(func(i *Info) {
				i.Version = "devel"
				i.Commit = "0123456789abcdef0123"
				i.BuiltAt = "2026-01-02T03:04:05Z"
				i.Dirty = true
			}),
			short: "0123456789ab",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := loadInfo(func() (*debug.BuildInfo, bool) {
				return tc.bi, tc.bi != nil
			})
			testutil.AssertEqual(t, got, tc.want)
			testutil.AssertEqual(t, got.Short(), tc.short)
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	i := Info{
		Version: "devel",
		Commit:  "abc",
		BuiltAt: "2026-01-02T03:04:05Z",
		Dirty:   true,
		Go:      "go1.23.0",
		OS:      "linux",
		Arch:    "amd64",
	}
	want := CmdName() + " devel (go1.23.0, linux/amd64)\n" +
		"commit abc-dirty\n" +
		"built at 2026-01-02T03:04:05Z\n"
	testutil.AssertEqual(t, i.String(), want)
}
