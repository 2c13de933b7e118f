// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"go.astrophena.name/botapi"
	"go.astrophena.name/botapi/internal/starlark/interpreter"
	"go.astrophena.name/botapi/internal/testutil"

	"go.starlark.net/starlark"
)

const testToken = "123456:test-token"

type request struct {
	method string
	path   string
	query  string
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []request
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, request{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/bot" + testToken + "/getMe":
		w.Write([]byte(`{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Test","username":"test_bot"}}`))
	case "/bot" + testToken + "/sendMessage":
		w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"},"text":"hi"}}`))
	case "/bot" + testToken + "/getFile":
		w.Write([]byte(`{"ok":true,"result":{"file_id":"f","file_unique_id":"u","file_path":"docs/a.txt"}}`))
	case "/file/bot" + testToken + "/docs/a.txt":
		w.Write([]byte("file contents"))
	default:
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}
}

func run(t *testing.T, script string) (starlark.StringDict, *fakeAPI, error) {
	t.Helper()
	api := &fakeAPI{}
	c, err := botapi.New(botapi.Config{
		Token:      testToken,
		BaseURL:    "https://api.example.com",
		HTTPClient: testutil.MockHTTPClient(api),
	})
	if err != nil {
		t.Fatal(err)
	}
	intr := &interpreter.Interpreter{
		Predeclared: starlark.StringDict{"telegram": Module(c)},
		Loader:      interpreter.MemoryLoader(map[string]string{"main.star": script}),
	}
	globals, err := intr.ExecModule(context.Background(), "main.star")
	return globals, api, err
}

func TestModule(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		script    string
		want      string
		wantErr   string
		wantQuery string
	}{
		"get me": {
			script: `result = telegram.get_me()["username"]`,
			want:   `"test_bot"`,
		},
		"call": {
			script:    `result = telegram.call(method = "sendMessage", args = {"chat_id": 1, "text": "hi"})["result"]["text"]`,
			want:      `"hi"`,
			wantQuery: "chat_id=1&text=hi",
		},
		"call failure": {
			script: "r = telegram.call(method = \"sendSticker\")\nresult = (r[\"ok\"], telegram.last_error()[\"description\"])",
			want:   `(False, "Bad Request: chat not found")`,
		},
		"last error after success": {
			script: "telegram.get_me()\nresult = telegram.last_error()",
			want:   "None",
		},
		"send message": {
			script:    `result = telegram.send_message(chat_id = "@chan", text = "hi", disable_notification = True)["ok"]`,
			want:      "True",
			wantQuery: "chat_id=%40chan&text=hi&disable_notification=true",
		},
		"send markdown": {
			script:    `result = telegram.send_message(chat_id = 1, text = "**hi**", markdown = True)["ok"]`,
			want:      "True",
			wantQuery: "chat_id=1&text=hi&entities=%5B%7B%22type%22%3A%22bold%22%2C%22offset%22%3A0%2C%22length%22%3A2%7D%5D",
		},
		"send without chat": {
			script:  `telegram.send_message(text = "hi")`,
			wantErr: "missing argument for chat_id",
		},
		"get file": {
			script: `result = telegram.get_file("f")`,
			want:   `b"file contents"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			globals, api, err := run(t, tc.script)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, globals["result"].String(), tc.want)
			if tc.wantQuery != "" {
				testutil.AssertEqual(t, api.requests[len(api.requests)-1].query, tc.wantQuery)
			}
		})
	}
}

// TestScripts runs every script in testdata. Scripts call fail() when
// something is wrong.
func TestScripts(t *testing.T) {
	testutil.Run(t, "testdata/*.star", func(t *testing.T, match string) {
		script, err := os.ReadFile(match)
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := run(t, string(script)); err != nil {
			t.Fatal(err)
		}
	})
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in      starlark.Value
		want    string
		wantErr bool
	}{
		"int":          {in: starlark.MakeInt(-1001), want: "-1001"},
		"numeric text": {in: starlark.String("-1001"), want: "-1001"},
		"username":     {in: starlark.String("chan"), want: "@chan"},
		"other":        {in: starlark.True, wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := recipient(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, r.Recipient(), tc.want)
		})
	}
}
