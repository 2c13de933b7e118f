// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import "go.astrophena.name/botapi/record"

// ReplyMarkup is one of [InlineKeyboardMarkup], [ReplyKeyboardMarkup],
// [ReplyKeyboardRemove] or [ForceReply], sent in the reply_markup parameter.
type ReplyMarkup interface {
	replyMarkup()
	String() string
}

// InlineKeyboardMarkup is an inline keyboard that appears right next to the
// message it belongs to.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]*InlineKeyboardButton `json:"inline_keyboard"`
}

// NewInlineKeyboard returns an inline keyboard made of rows.
func NewInlineKeyboard(rows ...[]*InlineKeyboardButton) *InlineKeyboardMarkup {
	if rows == nil {
		rows = [][]*InlineKeyboardButton{}
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// Row is a convenience for building a keyboard row.
func Row[T any](buttons ...*T) []*T { return buttons }

// AddRow appends a row of buttons to the keyboard and returns k.
func (k *InlineKeyboardMarkup) AddRow(buttons ...*InlineKeyboardButton) *InlineKeyboardMarkup {
	k.InlineKeyboard = append(k.InlineKeyboard, buttons)
	return k
}

func (*InlineKeyboardMarkup) replyMarkup() {}

// String returns the JSON form of k.
func (k *InlineKeyboardMarkup) String() string { return marshal(k) }

// InlineKeyboardMarkupFromJSON decodes an InlineKeyboardMarkup.
func InlineKeyboardMarkupFromJSON(o *record.Object) *InlineKeyboardMarkup {
	if o == nil {
		return nil
	}
	k := &InlineKeyboardMarkup{InlineKeyboard: [][]*InlineKeyboardButton{}}
	for _, row := range o.Arrays("inline_keyboard") {
		k.InlineKeyboard = append(k.InlineKeyboard, List(row, InlineKeyboardButtonFromJSON))
	}
	return k
}

// InlineKeyboardButton is one button of an inline keyboard. Exactly one of the
// optional fields must be set.
type InlineKeyboardButton struct {
	Text                         string      `json:"text"`
	URL                          string      `json:"url,omitempty"`
	CallbackData                 string      `json:"callback_data,omitempty"`
	WebApp                       *WebAppInfo `json:"web_app,omitempty"`
	SwitchInlineQuery            *string     `json:"switch_inline_query,omitempty"`
	SwitchInlineQueryCurrentChat *string     `json:"switch_inline_query_current_chat,omitempty"`
	Pay                          bool        `json:"pay,omitempty"`
}

// URLButton returns a button that opens url.
func URLButton(text, url string) *InlineKeyboardButton {
	return &InlineKeyboardButton{Text: text, URL: url}
}

// CallbackButton returns a button that sends a callback query with data.
func CallbackButton(text, data string) *InlineKeyboardButton {
	return &InlineKeyboardButton{Text: text, CallbackData: data}
}

// SwitchInlineButton returns a button that prompts the user to select a chat
// and inserts the bot's username and query in the input field. An empty query
// is valid.
func SwitchInlineButton(text, query string) *InlineKeyboardButton {
	return &InlineKeyboardButton{Text: text, SwitchInlineQuery: &query}
}

// InlineKeyboardButtonFromJSON decodes an InlineKeyboardButton.
func InlineKeyboardButtonFromJSON(o *record.Object) *InlineKeyboardButton {
	if o == nil {
		return nil
	}
	b := &InlineKeyboardButton{
		Text:         o.String("text"),
		URL:          o.String("url"),
		CallbackData: o.String("callback_data"),
		WebApp:       WebAppInfoFromJSON(o.Object("web_app")),
		Pay:          o.Bool("pay"),
	}
	if o.Has("switch_inline_query") {
		s := o.String("switch_inline_query")
		b.SwitchInlineQuery = &s
	}
	if o.Has("switch_inline_query_current_chat") {
		s := o.String("switch_inline_query_current_chat")
		b.SwitchInlineQueryCurrentChat = &s
	}
	return b
}

// WebAppInfo describes a Web App.
type WebAppInfo struct {
	URL string `json:"url"`
}

// WebAppInfoFromJSON decodes a WebAppInfo.
func WebAppInfoFromJSON(o *record.Object) *WebAppInfo {
	if o == nil {
		return nil
	}
	return &WebAppInfo{URL: o.String("url")}
}

// ReplyKeyboardMarkup is a custom keyboard with reply options.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]*KeyboardButton `json:"keyboard"`
	IsPersistent          bool                `json:"is_persistent,omitempty"`
	ResizeKeyboard        bool                `json:"resize_keyboard,omitempty"`
	OneTimeKeyboard       bool                `json:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string              `json:"input_field_placeholder,omitempty"`
	Selective             bool                `json:"selective,omitempty"`
}

// NewReplyKeyboard returns a reply keyboard made of rows.
func NewReplyKeyboard(rows ...[]*KeyboardButton) *ReplyKeyboardMarkup {
	if rows == nil {
		rows = [][]*KeyboardButton{}
	}
	return &ReplyKeyboardMarkup{Keyboard: rows}
}

func (*ReplyKeyboardMarkup) replyMarkup() {}

// String returns the JSON form of k.
func (k *ReplyKeyboardMarkup) String() string { return marshal(k) }

// KeyboardButton is one button of a reply keyboard.
type KeyboardButton struct {
	Text            string      `json:"text"`
	RequestContact  bool        `json:"request_contact,omitempty"`
	RequestLocation bool        `json:"request_location,omitempty"`
	WebApp          *WebAppInfo `json:"web_app,omitempty"`
}

// TextButton returns a keyboard button that sends text.
func TextButton(text string) *KeyboardButton { return &KeyboardButton{Text: text} }

// ReplyKeyboardRemove asks clients to remove the current custom keyboard.
type ReplyKeyboardRemove struct {
	Selective bool `json:"selective,omitempty"`
}

func (*ReplyKeyboardRemove) replyMarkup() {}

// String returns the JSON form of r.
func (r *ReplyKeyboardRemove) String() string {
	if r.Selective {
		return `{"remove_keyboard":true,"selective":true}`
	}
	return `{"remove_keyboard":true}`
}

// MarshalJSON implements [encoding/json.Marshaler].
func (r *ReplyKeyboardRemove) MarshalJSON() ([]byte, error) { return []byte(r.String()), nil }

// ForceReply asks clients to display a reply interface to the user.
type ForceReply struct {
	InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
	Selective             bool   `json:"selective,omitempty"`
}

func (*ForceReply) replyMarkup() {}

// String returns the JSON form of f.
func (f *ForceReply) String() string {
	return marshal(struct {
		ForceReply            bool   `json:"force_reply"`
		InputFieldPlaceholder string `json:"input_field_placeholder,omitempty"`
		Selective             bool   `json:"selective,omitempty"`
	}{true, f.InputFieldPlaceholder, f.Selective})
}

// MarshalJSON implements [encoding/json.Marshaler].
func (f *ForceReply) MarshalJSON() ([]byte, error) { return []byte(f.String()), nil }
