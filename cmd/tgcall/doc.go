// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Tgcall calls the Telegram Bot API from the command line.

# Usage

	$ tgcall [flags...] <command> [args...]

Commands:

	call <method> [name=value...]
		Call any Bot API method with the given parameters. Values that
		look like JSON arrays or objects are passed as is. Methods whose
		name starts with "get" are called with GET, the rest with POST.

	me
		Print information about the bot.

	send <chat> <text>
		Send a text message. The chat is a numeric ID or a @username. Use
		"-" as text to read it from standard input and -markdown to format
		it as Markdown.

	script <file.star>
		Run a Starlark script. Scripts can use the telegram and json
		modules, and load other scripts relative to the script directory.

	feed <chat> [url...]
		Post the latest items of RSS, Atom or JSON feeds to a chat. Without
		URLs, feeds are taken from the configuration file. With -state,
		posted items are remembered and never posted again. The state is
		kept in a JSON file or, for postgres:// URLs, in PostgreSQL.

The output format is set by -format: object prints the decoded result, json
prints the whole response and raw prints the response as received.

# Configuration

Tgcall reads an optional YAML file given by -config:

	token: "123456:ABC..."
	base_url: "https://api.telegram.org"
	timeout: 30s
	format: json
	chat: "@channel"
	feeds:
	  - https://example.com/feed.xml
	state: /var/lib/tgcall/state.json

Flags and environment variables take precedence over the file.

If the last request fails, the error reported by Telegram is printed to
standard error and tgcall exits with a non-zero status.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/botapi/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
