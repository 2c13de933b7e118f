// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
)

func TestLogfWriter(t *testing.T) {
	t.Parallel()

	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestSlog(t *testing.T) {
	t.Parallel()

	var lines []string
	logf := Logf(func(format string, args ...any) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf(format, args...)))
	})

	log := logf.Slog(slog.LevelInfo)
	log.Debug("hidden")
	log.Warn("request rejected", "method", "getMe", "error_code", 401)

	testutil.AssertEqual(t, lines, []string{`level=WARN msg="request rejected" method=getMe error_code=401`})
}
