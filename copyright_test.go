// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"
)

var copyrightHeader = regexp.MustCompile(`\A// © \d{4} Ilya Mateyko\. All rights reserved\.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE\.md file\.
`)

// Files derived from code under other licenses keep their own headers.
var copyrightExclusions = []string{
	// Based on LUCI code.
	"internal/starlark/interpreter/loaders.go",
}

func TestCopyright(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != "." && (d.Name()[0] == '_' || d.Name()[0] == '.' || d.Name() == "testdata") {
			return filepath.SkipDir
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || slices.Contains(copyrightExclusions, filepath.ToSlash(path)) {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !copyrightHeader.Match(content) {
			t.Errorf("%s: missing copyright header", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
