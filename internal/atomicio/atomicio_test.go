// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		existing []byte
		data     []byte
	}{
		"new file":  {data: []byte("hello")},
		"overwrite": {existing: []byte("old contents"), data: []byte("new")},
		"empty":     {existing: []byte("old"), data: []byte{}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			file := filepath.Join(dir, "state.json")
			if tc.existing != nil {
				if err := os.WriteFile(file, tc.existing, 0o644); err != nil {
					t.Fatal(err)
				}
			}

			if err := WriteFile(file, tc.data, 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, string(got), string(tc.data))

			fi, err := os.Stat(file)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, fi.Mode().Perm(), os.FileMode(0o600))

			// No temporary files are left behind.
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, len(entries), 1)
		})
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "missing", "state.json")
	if err := WriteFile(file, []byte("x"), 0o600); err == nil {
		t.Fatal("want error")
	}
}
