// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tgmarkup converts Markdown to plain text with Telegram message
// entities, so that formatted text can be sent without a parse mode and
// without escaping.
package tgmarkup

import (
	"strings"
	"unicode/utf16"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"

	"rsc.io/markdown"
)

// Message is text with the entities that format it. Offsets and lengths are
// in UTF-16 code units, as the Bot API expects.
type Message struct {
	Text     string
	Entities []*types.MessageEntity
}

// Params returns the text and entities parameters of sendMessage.
func (m Message) Params() *params.Bag {
	return params.Of("text", m.Text, "entities", m.Entities)
}

// CaptionParams returns the caption and caption_entities parameters of
// methods that send media.
func (m Message) CaptionParams() *params.Bag {
	return params.Of("caption", m.Text, "caption_entities", m.Entities)
}

// FromMarkdown converts Markdown text to a [Message]. The text has no
// trailing newline.
func FromMarkdown(text string) Message {
	p := markdown.Parser{Strikethrough: true, AutoLinkText: true}
	doc := p.Parse(text)

	c := &converter{}
	for i, b := range doc.Blocks {
		if i > 0 {
			c.sb.WriteString("\n")
		}
		c.block(b)
	}
	return c.message()
}

// Builder assembles a [Message] from pieces of plain text. Unlike
// [FromMarkdown], text added to a Builder is never interpreted.
type Builder struct {
	c converter
}

// Text appends plain text.
func (b *Builder) Text(s string) *Builder {
	b.c.sb.WriteString(s)
	return b
}

// Bold appends bold text.
func (b *Builder) Bold(s string) *Builder {
	b.c.wrap(types.EntityBold, func() { b.c.sb.WriteString(s) })
	return b
}

// Link appends text linked to url.
func (b *Builder) Link(s, url string) *Builder {
	e := b.c.wrap(types.EntityTextLink, func() { b.c.sb.WriteString(s) })
	e.URL = url
	return b
}

// Message returns the assembled message.
func (b *Builder) Message() Message { return b.c.message() }

func (c *converter) message() Message {
	out := strings.TrimRight(c.sb.String(), "\n")
	n := utf16len(out)
	for _, e := range c.entities {
		if e.Offset+e.Length > n {
			e.Length = n - e.Offset
		}
	}
	var entities []*types.MessageEntity
	for _, e := range c.entities {
		if e.Length > 0 {
			entities = append(entities, e)
		}
	}
	return Message{Text: out, Entities: entities}
}

type converter struct {
	sb       strings.Builder
	entities []*types.MessageEntity
}

func (c *converter) offset() int { return utf16len(c.sb.String()) }

// wrap records an entity of type typ covering everything f writes.
func (c *converter) wrap(typ string, f func()) *types.MessageEntity {
	start := c.offset()
	f()
	e := &types.MessageEntity{Type: typ, Offset: start, Length: c.offset() - start}
	c.entities = append(c.entities, e)
	return e
}

func (c *converter) block(b markdown.Block) {
	switch block := b.(type) {
	case *markdown.Paragraph:
		c.inlines(block.Text.Inline)
		c.sb.WriteString("\n")
	case *markdown.Quote:
		c.wrap(types.EntityBlockquote, func() {
			for _, b := range block.Blocks {
				c.block(b)
			}
		})
	case *markdown.CodeBlock:
		e := c.wrap(types.EntityPre, func() {
			c.sb.WriteString(strings.Join(block.Text, "\n"))
		})
		e.Language = block.Info
		c.sb.WriteString("\n")
	case *markdown.Heading:
		c.wrap(types.EntityBold, func() { c.inlines(block.Text.Inline) })
		c.sb.WriteString("\n")
	case *markdown.List:
		for _, ib := range block.Items {
			item, ok := ib.(*markdown.Item)
			if !ok {
				continue
			}
			c.sb.WriteString("• ")
			for _, b := range item.Blocks {
				c.block(b)
			}
		}
	case *markdown.ThematicBreak:
		c.sb.WriteString("⸻\n")
	}
}

func (c *converter) inlines(inlines markdown.Inlines) {
	for _, i := range inlines {
		c.inline(i)
	}
}

func (c *converter) inline(i markdown.Inline) {
	switch inline := i.(type) {
	case *markdown.Plain:
		c.sb.WriteString(inline.Text)
	case *markdown.Strong:
		c.wrap(types.EntityBold, func() { c.inlines(inline.Inner) })
	case *markdown.Emph:
		c.wrap(types.EntityItalic, func() { c.inlines(inline.Inner) })
	case *markdown.Del:
		c.wrap(types.EntityStrikethrough, func() { c.inlines(inline.Inner) })
	case *markdown.Link:
		e := c.wrap(types.EntityTextLink, func() { c.inlines(inline.Inner) })
		e.URL = inline.URL
	case *markdown.AutoLink:
		c.wrap(types.EntityURL, func() { c.sb.WriteString(inline.Text) })
	case *markdown.Code:
		c.wrap(types.EntityCode, func() { c.sb.WriteString(inline.Text) })
	case *markdown.SoftBreak, *markdown.HardBreak:
		c.sb.WriteString("\n")
	}
}

func utf16len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
