// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// recorder answers every method with true and remembers the last request.
type recorder struct {
	mu                  sync.Mutex
	verb, method, query string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.verb = req.Method
	r.method = strings.TrimPrefix(req.URL.Path, "/bot"+testToken+"/")
	r.query = req.URL.RawQuery
	r.mu.Unlock()
	io.WriteString(w, `{"ok":true,"result":true}`)
}

func TestEndpoints(t *testing.T) {
	t.Parallel()

	var (
		chat = types.ChatID(-100)
		user = types.ChatID(7)
	)

	cases := map[string]struct {
		call      func(context.Context, *Client) error
		wantVerb  string
		wantQuery string
	}{
		"getUpdates": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Bot().GetUpdates(ctx, params.Of("offset", 10, "timeout", 30))
				return err
			},
			wantVerb:  http.MethodGet,
			wantQuery: "offset=10&timeout=30",
		},
		"setWebhook": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Bot().SetWebhook(ctx, "https://example.com/hook", nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "url=https%3A%2F%2Fexample.com%2Fhook",
		},
		"answerCallbackQuery": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Bot().AnswerCallbackQuery(ctx, "cb", params.Of("text", "done"))
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "callback_query_id=cb&text=done",
		},
		"banChatMember": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Chat().BanChatMember(ctx, chat, user, params.Of("revoke_messages", true))
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=-100&user_id=7&revoke_messages=true",
		},
		"setChatTitle": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Chat().SetChatTitle(ctx, types.Username("group"), "New title", nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=%40group&title=New+title",
		},
		"getChatMemberCount": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Chat().GetChatMemberCount(ctx, chat, nil)
				return err
			},
			wantVerb:  http.MethodGet,
			wantQuery: "chat_id=-100",
		},
		"closeForumTopic": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ForumTopic().CloseForumTopic(ctx, chat, 5, nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=-100&message_thread_id=5",
		},
		"hideGeneralForumTopic": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.ForumTopic().HideGeneralForumTopic(ctx, chat, nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=-100",
		},
		"setStickerEmojiList": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Sticker().SetStickerEmojiList(ctx, "s1", []string{"👍"}, nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "sticker=s1&emoji_list=%5B%22%F0%9F%91%8D%22%5D",
		},
		"setStickerPositionInSet": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Sticker().SetStickerPositionInSet(ctx, "s1", 0, nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "sticker=s1&position=0",
		},
		"sendSticker by file id": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Sticker().SendSticker(ctx, chat, types.FileID("CAAC"), nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=-100&sticker=CAAC",
		},
		"sendChatAction": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Content().SendChatAction(ctx, chat, "typing", nil)
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "chat_id=-100&action=typing",
		},
		"setMyName": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Profile().SetMyName(ctx, "Bot", params.Of("language_code", "en"))
				return err
			},
			wantVerb:  http.MethodPost,
			wantQuery: "name=Bot&language_code=en",
		},
		"getUserProfilePhotos": {
			call: func(ctx context.Context, c *Client) error {
				_, err := c.Profile().GetUserProfilePhotos(ctx, user, params.Of("limit", 1))
				return err
			},
			wantVerb:  http.MethodGet,
			wantQuery: "user_id=7&limit=1",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rec := new(recorder)
			srv := httptest.NewServer(rec)
			t.Cleanup(srv.Close)
			c, err := New(Config{Token: testToken, BaseURL: srv.URL})
			if err != nil {
				t.Fatal(err)
			}

			if err := tc.call(context.Background(), c); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, c.LastError() == nil, true)

			rec.mu.Lock()
			defer rec.mu.Unlock()
			testutil.AssertEqual(t, rec.verb, tc.wantVerb)
			testutil.AssertEqual(t, rec.method, strings.Fields(name)[0])
			testutil.AssertEqual(t, rec.query, tc.wantQuery)
		})
	}
}
