// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import (
	"strings"
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
	"go.astrophena.name/botapi/record"
)

func TestFromJSONNil(t *testing.T) {
	t.Parallel()

	if UserFromJSON(nil) != nil {
		t.Error("UserFromJSON(nil) != nil")
	}
	if ChatFromJSON(nil) != nil {
		t.Error("ChatFromJSON(nil) != nil")
	}
	if MessageFromJSON(nil) != nil {
		t.Error("MessageFromJSON(nil) != nil")
	}
	if StickerSetFromJSON(nil) != nil {
		t.Error("StickerSetFromJSON(nil) != nil")
	}
	if ChatPermissionsFromJSON(nil) != nil {
		t.Error("ChatPermissionsFromJSON(nil) != nil")
	}
	if InlineQueryResultFromJSON(nil) != nil {
		t.Error("InlineQueryResultFromJSON(nil) != nil")
	}
}

func TestUserFromJSON(t *testing.T) {
	t.Parallel()

	got := UserFromJSON(record.MustParse(`{"id":123456789,"is_bot":true,"first_name":"TestBot","username":"test_bot"}`))
	want := &User{
		ID:        123456789,
		IsBot:     true,
		FirstName: "TestBot",
		Username:  "test_bot",
	}
	testutil.AssertEqual(t, got, want)
	testutil.AssertEqual(t, got.Recipient(), "123456789")
}

func TestMessageFromJSON(t *testing.T) {
	t.Parallel()

	o := record.MustParse(`{
		"message_id": 42,
		"date": 1700000000,
		"chat": {"id": -100500, "type": "supergroup", "title": "Test"},
		"from": {"id": 1, "is_bot": false, "first_name": "Ann"},
		"text": "/start hi",
		"entities": [{"type": "bot_command", "offset": 0, "length": 6}],
		"photo": [{"file_id": "a", "file_unique_id": "ua", "width": 90, "height": 90}],
		"reply_markup": {"inline_keyboard": [[{"text": "Go", "url": "https://example.com"}]]}
	}`)
	m := MessageFromJSON(o)

	testutil.AssertEqual(t, m.MessageID, int64(42))
	testutil.AssertEqual(t, m.Chat.ID, int64(-100500))
	testutil.AssertEqual(t, m.Chat.Type, ChatSupergroup)
	testutil.AssertEqual(t, m.From.FirstName, "Ann")
	testutil.AssertEqual(t, m.Entities, []*MessageEntity{{Type: "bot_command", Offset: 0, Length: 6, User: nil}})
	testutil.AssertEqual(t, len(m.Photo), 1)
	testutil.AssertEqual(t, m.Photo[0].FileSize, int64(-1))
	testutil.AssertEqual(t, m.ReplyMarkup, NewInlineKeyboard(Row(URLButton("Go", "https://example.com"))))
	testutil.AssertEqual(t, m.MessageThreadID, int64(-1))
	testutil.AssertEqual(t, m.Caption, "")
	if m.ReplyToMessage != nil || m.Sticker != nil {
		t.Error("absent nested records must be nil")
	}
	testutil.AssertEqual(t, o.Err(), nil)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   Recipient
		want string
	}{
		"chat id":          {in: ChatID(-1001234567890), want: "-1001234567890"},
		"username":         {in: Username("channel"), want: "@channel"},
		"username with at": {in: Username("@channel"), want: "@channel"},
		"chat":             {in: &Chat{ID: 5}, want: "5"},
		"user":             {in: &User{ID: 7}, want: "7"},
		"zero chat id":     {in: ChatID(0), want: "0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.Recipient(), tc.want)
		})
	}
}

func TestChatPermissions(t *testing.T) {
	t.Parallel()

	p := &ChatPermissions{}
	testutil.AssertEqual(t, p.String(), "{}")

	p.Set("can_send_messages", true)
	p.Set("can_pin_messages", false)
	testutil.AssertEqual(t, p.String(), `{"can_send_messages":true,"can_pin_messages":false}`)
	if p.Set("can_fly", true) {
		t.Error("Set accepted an unknown permission")
	}

	p.Unset("can_pin_messages")
	testutil.AssertEqual(t, p.String(), `{"can_send_messages":true}`)
	testutil.AssertEqual(t, p.Allowed("can_send_messages"), true)
	testutil.AssertEqual(t, p.Allowed("can_pin_messages"), false)

	back := ChatPermissionsFromJSON(record.MustParse(p.String()))
	testutil.AssertEqual(t, back.String(), p.String())

	all := NewChatPermissions(true)
	for _, key := range []string{"can_send_messages", "can_send_polls", "can_manage_topics"} {
		if !all.Allowed(key) {
			t.Errorf("NewChatPermissions(true): %s not allowed", key)
		}
	}
}

func TestChatMemberRestricted(t *testing.T) {
	t.Parallel()

	m := ChatMemberFromJSON(record.MustParse(`{
		"status": "restricted",
		"user": {"id": 9, "is_bot": false, "first_name": "Bob"},
		"is_member": true,
		"can_send_messages": false,
		"until_date": 0
	}`))
	testutil.AssertEqual(t, m.Status, MemberRestricted)
	testutil.AssertEqual(t, m.User.ID, int64(9))
	if m.Permissions == nil {
		t.Fatal("restricted member must carry permissions")
	}
	testutil.AssertEqual(t, m.Permissions.String(), `{"can_send_messages":false}`)
}

func TestKeyboards(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   ReplyMarkup
		want string
	}{
		"inline": {
			in:   NewInlineKeyboard(Row(CallbackButton("Yes", "y"), CallbackButton("No", "n"))),
			want: `{"inline_keyboard":[[{"text":"Yes","callback_data":"y"},{"text":"No","callback_data":"n"}]]}`,
		},
		"empty inline": {
			in:   NewInlineKeyboard(),
			want: `{"inline_keyboard":[]}`,
		},
		"switch inline with empty query": {
			in:   NewInlineKeyboard(Row(SwitchInlineButton("Share", ""))),
			want: `{"inline_keyboard":[[{"text":"Share","switch_inline_query":""}]]}`,
		},
		"reply": {
			in:   &ReplyKeyboardMarkup{Keyboard: [][]*KeyboardButton{{TextButton("A")}}, ResizeKeyboard: true},
			want: `{"keyboard":[[{"text":"A"}]],"resize_keyboard":true}`,
		},
		"remove": {
			in:   &ReplyKeyboardRemove{},
			want: `{"remove_keyboard":true}`,
		},
		"force reply": {
			in:   &ForceReply{InputFieldPlaceholder: "Name?"},
			want: `{"force_reply":true,"input_field_placeholder":"Name?"}`,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}

func TestInlineKeyboardRoundTrip(t *testing.T) {
	t.Parallel()

	direct := NewInlineKeyboard(
		Row(URLButton("Site", "https://example.com")),
		Row(CallbackButton("A", "a"), SwitchInlineButton("Share", "q")),
	)
	decoded := InlineKeyboardMarkupFromJSON(record.MustParse(direct.String()))
	testutil.AssertEqual(t, decoded, direct)
}

func TestInlineQueryResults(t *testing.T) {
	t.Parallel()

	a := NewInlineQueryResultArticle("Hello", "Hello, world!")
	b := NewInlineQueryResultArticle("Hello", "Hello, world!")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("generated ids must be unique and non-empty: %q, %q", a.ID, b.ID)
	}
	testutil.AssertEqual(t, a.ResultType(), "article")

	decoded := InlineQueryResultFromJSON(record.MustParse(marshal(a)))
	testutil.AssertEqual(t, decoded, InlineQueryResult(a))

	results := []InlineQueryResult{
		NewInlineQueryResultPhoto("https://example.com/p.jpg", "https://example.com/t.jpg"),
		NewInlineQueryResultGif("https://example.com/a.gif", "https://example.com/t.jpg"),
		NewInlineQueryResultVideo("https://example.com/v.mp4", "video/mp4", "https://example.com/t.jpg", "Video"),
		NewInlineQueryResultAudio("https://example.com/a.mp3", "Song"),
		NewInlineQueryResultDocument("Doc", "https://example.com/d.pdf", "application/pdf"),
		NewInlineQueryResultLocation(51.5, -0.12, "London"),
		NewInlineQueryResultVenue(51.5, -0.12, "Office", "Baker Street"),
		NewInlineQueryResultContact("+100000", "Ann"),
		NewInlineQueryResultCachedSticker("CAAC"),
	}
	for _, r := range results {
		t.Run(r.ResultType(), func(t *testing.T) {
			raw := marshal(r)
			if !strings.Contains(raw, `"type":"`+r.ResultType()+`"`) {
				t.Fatalf("%s: type field missing: %s", r.ResultType(), raw)
			}
			testutil.AssertEqual(t, InlineQueryResultFromJSON(record.MustParse(raw)), r)
		})
	}

	if InlineQueryResultFromJSON(record.MustParse(`{"type":"game","id":"1"}`)) != nil {
		t.Error("unknown result types must decode to nil")
	}
}

func TestUserProfilePhotos(t *testing.T) {
	t.Parallel()

	p := UserProfilePhotosFromJSON(record.MustParse(`{
		"total_count": 2,
		"photos": [
			[{"file_id": "a1", "file_unique_id": "u1", "width": 160, "height": 160}],
			[{"file_id": "b1", "file_unique_id": "u2", "width": 160, "height": 160}, {"file_id": "b2", "file_unique_id": "u3", "width": 640, "height": 640}]
		]
	}`))
	testutil.AssertEqual(t, p.TotalCount, 2)
	testutil.AssertEqual(t, len(p.Photos), 2)
	testutil.AssertEqual(t, p.Photos[1][1].FileID, "b2")
}

func TestInputFile(t *testing.T) {
	t.Parallel()

	testutil.AssertEqual(t, FileID("abc").Ref(), "abc")
	testutil.AssertEqual(t, FileURL("https://example.com/a.png").Ref(), "https://example.com/a.png")
	testutil.AssertEqual(t, FileID("abc").IsUpload(), false)
	testutil.AssertEqual(t, FileBytes("a.txt", []byte("hi")).IsUpload(), true)
}

func TestOutboundStrings(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   interface{ String() string }
		want string
	}{
		"scope": {
			in:   &BotCommandScope{Type: ScopeAllGroupChats},
			want: `{"type":"all_group_chats"}`,
		},
		"chat member scope": {
			in:   ChatScope(ScopeChatMember, ChatID(-5), 7),
			want: `{"type":"chat_member","chat_id":"-5","user_id":7}`,
		},
		"menu button": {
			in:   &MenuButton{Type: MenuButtonWebApp, Text: "Open", WebApp: &WebAppInfo{URL: "https://example.com"}},
			want: `{"type":"web_app","text":"Open","web_app":{"url":"https://example.com"}}`,
		},
		"mask position": {
			in:   &MaskPosition{Point: MaskEyes, XShift: 0.5, Scale: 2},
			want: `{"point":"eyes","x_shift":0.5,"y_shift":0,"scale":2}`,
		},
		"input sticker": {
			in:   &InputSticker{Sticker: "CAAC", Format: StickerFormatStatic, EmojiList: []string{"🙂"}},
			want: `{"sticker":"CAAC","format":"static","emoji_list":["🙂"]}`,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.in.String(), tc.want)
		})
	}
}
