// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package tgmarkup

import (
	"testing"

	"go.astrophena.name/botapi/internal/testutil"
	"go.astrophena.name/botapi/types"
)

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want Message
	}{
		"plain": {
			in:   "hello",
			want: Message{Text: "hello"},
		},
		"emphasis": {
			in: "**bold** and _it_",
			want: Message{
				Text: "bold and it",
				Entities: []*types.MessageEntity{
					{Type: types.EntityBold, Offset: 0, Length: 4},
					{Type: types.EntityItalic, Offset: 9, Length: 2},
				},
			},
		},
		"link": {
			in: "Привет, [мир](https://example.com)",
			want: Message{
				Text: "Привет, мир",
				Entities: []*types.MessageEntity{
					{Type: types.EntityTextLink, Offset: 8, Length: 3, URL: "https://example.com"},
				},
			},
		},
		"surrogate pairs": {
			in: "😀 `x`",
			want: Message{
				Text: "😀 x",
				Entities: []*types.MessageEntity{
					{Type: types.EntityCode, Offset: 3, Length: 1},
				},
			},
		},
		"heading": {
			in: "# Title\n\ntext",
			want: Message{
				Text: "Title\n\ntext",
				Entities: []*types.MessageEntity{
					{Type: types.EntityBold, Offset: 0, Length: 5},
				},
			},
		},
		"code block": {
			in: "```go\nfmt.Println()\n```",
			want: Message{
				Text: "fmt.Println()",
				Entities: []*types.MessageEntity{
					{Type: types.EntityPre, Offset: 0, Length: 13, Language: "go"},
				},
			},
		},
		"quote": {
			in: "> quoted",
			want: Message{
				Text: "quoted",
				Entities: []*types.MessageEntity{
					{Type: types.EntityBlockquote, Offset: 0, Length: 6},
				},
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, FromMarkdown(tc.in), tc.want)
		})
	}
}

func TestParams(t *testing.T) {
	t.Parallel()

	m := FromMarkdown("**bold** and _it_")
	testutil.AssertEqual(t, m.Params().Keys(), []string{"text", "entities"})
	entities, _ := m.Params().Get("entities")
	testutil.AssertEqual(t, entities, `[{"type":"bold","offset":0,"length":4},{"type":"italic","offset":9,"length":2}]`)

	caption := FromMarkdown("plain").CaptionParams()
	testutil.AssertEqual(t, caption.Keys(), []string{"caption"})
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	var b Builder
	got := b.Bold("Блог").Text("\n").Link("[Новый] *пост*", "https://example.com/1").Text("\n").Message()
	testutil.AssertEqual(t, got, Message{
		Text: "Блог\n[Новый] *пост*",
		Entities: []*types.MessageEntity{
			{Type: types.EntityBold, Offset: 0, Length: 4},
			{Type: types.EntityTextLink, Offset: 5, Length: 14, URL: "https://example.com/1"},
		},
	})
}
