// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package interpreter_test

import (
	"context"
	"fmt"
	"log"

	"go.astrophena.name/botapi/internal/starlark/interpreter"
)

func ExampleInterpreter() {
	files := map[string]string{
		"format.star": "def headline(feed, title):\n    return feed.upper() + \": \" + title\n",
		"post.star":   "load(\"format.star\", \"headline\")\nprint(headline(\"blog\", \"New post\"))",
	}

	intr := &interpreter.Interpreter{
		Loader: interpreter.MemoryLoader(files),
		Logger: func(file string, line int, message string) {
			fmt.Printf("%s:%d: %s\n", file, line, message)
		},
	}
	if _, err := intr.ExecModule(context.Background(), "post.star"); err != nil {
		log.Fatal(err)
	}

	// Output: post.star:2: BLOG: New post
}
