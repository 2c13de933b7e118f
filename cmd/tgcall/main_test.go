// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/cli"
	"go.astrophena.name/botapi/internal/cli/clitest"
	"go.astrophena.name/botapi/internal/store"
	"go.astrophena.name/botapi/internal/testutil"
	"go.astrophena.name/botapi/types"

	"github.com/mmcdole/gofeed"
)

const testToken = "123456:test-token"

var testEnv = map[string]string{"TGCALL_TOKEN": testToken}

func fakeAPI(t *testing.T) http.Handler {
	feed, err := os.ReadFile("testdata/feed.xml")
	if err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write(feed)
	})
	mux.HandleFunc("/bot"+testToken+"/getMe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Test","username":"test_bot"}}`))
	})
	mux.HandleFunc("/bot"+testToken+"/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		msg := map[string]any{
			"message_id": 1,
			"date":       0,
			"chat":       map[string]any{"id": 1, "type": "private"},
			"text":       q.Get("text"),
		}
		if entities := q.Get("entities"); entities != "" {
			msg["entities"] = testutil.UnmarshalJSON[[]map[string]any](t, []byte(entities))
		}
		b, err := json.Marshal(map[string]any{"ok": true, "result": msg})
		if err != nil {
			t.Error(err)
		}
		w.Write(b)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})
	return mux
}

func TestRun(t *testing.T) {
	clitest.Run(t, func(t *testing.T) *app {
		return &app{httpc: testutil.MockHTTPClient(fakeAPI(t))}
	}, map[string]clitest.Case[*app]{
		"no token": {
			Args:    []string{"me"},
			WantErr: cli.ErrInvalidArgs,
		},
		"no command": {
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"unknown command": {
			Args:    []string{"dance"},
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"bad format": {
			Args:    []string{"-format", "yaml", "me"},
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"me": {
			Args:       []string{"me"},
			Env:        testEnv,
			WantStdout: "@test_bot (42)\n",
		},
		"me as json": {
			Args:         []string{"-format", "json", "me"},
			Env:          testEnv,
			WantInStdout: `"username": "test_bot"`,
		},
		"format from environment": {
			Args:         []string{"me"},
			Env:          map[string]string{"TGCALL_TOKEN": testToken, "TGCALL_FORMAT": "raw"},
			WantInStdout: `{"ok":true,"result":{"id":42`,
		},
		"call": {
			Args:         []string{"call", "sendMessage", "chat_id=1", "text=hi"},
			Env:          testEnv,
			WantInStdout: `"text": "hi"`,
		},
		"call with bad parameter": {
			Args:    []string{"call", "sendMessage", "chat_id"},
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"call failure": {
			Args:            []string{"call", "sendSticker", "chat_id=1"},
			Env:             testEnv,
			WantErrContains: "sendSticker failed",
			WantInStderr:    "400: Bad Request: chat not found",
		},
		"send": {
			Args:         []string{"send", "1", "hi"},
			Env:          testEnv,
			WantInStdout: `"message_id": 1`,
		},
		"send markdown": {
			Args:         []string{"-markdown", "send", "@chan", "**hi**"},
			Env:          testEnv,
			WantInStdout: `"type": "bold"`,
		},
		"send from stdin": {
			Args:         []string{"send", "1", "-"},
			Env:          testEnv,
			Stdin:        strings.NewReader("from stdin\n"),
			WantInStdout: `"text": "from stdin"`,
		},
		"send without chat": {
			Args:    []string{"send", "hi"},
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
		"send to configured chat": {
			Args:         []string{"-config", "testdata/config.yaml", "send", "hi"},
			WantInStdout: `"text": "hi"`,
		},
		"script": {
			Args:         []string{"script", "testdata/hello.star"},
			Env:          testEnv,
			WantInStderr: "hello.star:2: hello from test_bot",
		},
		"feed": {
			Args:         []string{"-limit", "2", "feed", "1", "https://example.com/feed.xml"},
			Env:          testEnv,
			WantInStdout: "https://example.com/2\nhttps://example.com/3\n",
			WantInStderr: "posted 2 items",
		},
		"feeds from config": {
			Args:         []string{"-config", "testdata/config.yaml", "feed", "@chan"},
			WantInStdout: "https://example.com/1\nhttps://example.com/2\nhttps://example.com/3\n",
		},
		"feed without urls": {
			Args:    []string{"feed", "1"},
			Env:     testEnv,
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestFeedState(t *testing.T) {
	t.Parallel()

	state := filepath.Join(t.TempDir(), "state.json")
	run := func(limit string) string {
		var stdout, stderr bytes.Buffer
		err := cli.Run(context.Background(), &app{httpc: testutil.MockHTTPClient(fakeAPI(t))}, &cli.Env{
			Args:   []string{"-state", state, "-limit", limit, "feed", "1", "https://example.com/feed.xml"},
			Getenv: func(name string) string { return testEnv[name] },
			Stdin:  strings.NewReader(""),
			Stdout: &stdout,
			Stderr: &stderr,
		})
		if err != nil {
			t.Fatalf("%v (stderr: %s)", err, stderr.String())
		}
		return stdout.String()
	}

	testutil.AssertEqual(t, run("1"), "https://example.com/3\n")
	// Only items not posted before are considered.
	testutil.AssertEqual(t, run("5"), "https://example.com/1\nhttps://example.com/2\n")
	testutil.AssertEqual(t, run("5"), "")

	st, err := store.NewFileStore(state)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	b, err := st.Get(context.Background(), "feed:https://example.com/feed.xml")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, testutil.UnmarshalJSON[[]string](t, b), []string{
		"https://example.com/3",
		"https://example.com/1",
		"https://example.com/2",
	})
}

func TestFormatItem(t *testing.T) {
	t.Parallel()

	feed := &gofeed.Feed{Title: "Blog"}
	cases := map[string]struct {
		item *gofeed.Item
		want string
		link string
	}{
		"title and link": {
			item: &gofeed.Item{Title: "Post", Link: "https://example.com/1"},
			want: "Blog\nPost",
			link: "https://example.com/1",
		},
		"link only": {
			item: &gofeed.Item{Link: "https://example.com/2"},
			want: "Blog\nhttps://example.com/2",
			link: "https://example.com/2",
		},
		"title only": {
			item: &gofeed.Item{Title: "Note"},
			want: "Blog\nNote",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := formatItem(feed, tc.item)
			testutil.AssertEqual(t, msg.Text, tc.want)
			testutil.AssertEqual(t, msg.Entities[0].Type, types.EntityBold)
			if tc.link != "" {
				testutil.AssertEqual(t, msg.Entities[1].URL, tc.link)
			} else {
				testutil.AssertEqual(t, len(msg.Entities), 1)
			}
		})
	}
}
