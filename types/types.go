// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package types defines the records exchanged with the Telegram Bot API.
//
// Every record can be built directly as a struct literal or decoded from a
// [record.Object] with its FromJSON constructor. FromJSON constructors return
// nil for a nil object, and fields absent from the JSON keep their unset
// value: "" for strings, -1 for numbers, false for booleans and nil for nested
// records.
//
// Records that are sent to the API (keyboards, inline query results, commands
// and so on) use 0 as the unset value of numeric fields, so they can be
// marshaled back without spurious fields.
//
// See https://core.telegram.org/bots/api#available-types.
package types

import (
	"io"
	"strconv"
	"strings"

	"go.astrophena.name/botapi/record"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Recipient identifies the target of a request: a chat, a user or a channel
// username.
type Recipient interface {
	// Recipient returns the chat_id parameter value.
	Recipient() string
}

// ChatID is a numeric chat or user identifier.
type ChatID int64

// Recipient implements the [Recipient] interface.
func (id ChatID) Recipient() string { return strconv.FormatInt(int64(id), 10) }

// Username is a public chat or channel username, with or without the leading
// "@".
type Username string

// Recipient implements the [Recipient] interface.
func (u Username) Recipient() string {
	if strings.HasPrefix(string(u), "@") {
		return string(u)
	}
	return "@" + string(u)
}

// Parse modes for message text and captions.
const (
	ParseModeHTML       = "HTML"
	ParseModeMarkdown   = "Markdown"
	ParseModeMarkdownV2 = "MarkdownV2"
)

// Chat actions accepted by sendChatAction.
const (
	ActionTyping          = "typing"
	ActionUploadPhoto     = "upload_photo"
	ActionRecordVideo     = "record_video"
	ActionUploadVideo     = "upload_video"
	ActionRecordVoice     = "record_voice"
	ActionUploadVoice     = "upload_voice"
	ActionUploadDocument  = "upload_document"
	ActionChooseSticker   = "choose_sticker"
	ActionFindLocation    = "find_location"
	ActionRecordVideoNote = "record_video_note"
	ActionUploadVideoNote = "upload_video_note"
)

// InputFile is a file to be sent: a file_id already stored on Telegram
// servers, an HTTP URL, or content uploaded with the request.
type InputFile struct {
	FileID string
	URL    string
	Name   string
	Reader io.Reader
}

// FileID returns an InputFile referencing a file already stored on Telegram
// servers.
func FileID(id string) InputFile { return InputFile{FileID: id} }

// FileURL returns an InputFile that Telegram downloads from url.
func FileURL(url string) InputFile { return InputFile{URL: url} }

// FileReader returns an InputFile uploaded from r under the given name.
func FileReader(name string, r io.Reader) InputFile { return InputFile{Name: name, Reader: r} }

// FileBytes returns an InputFile uploaded from b under the given name.
func FileBytes(name string, b []byte) InputFile {
	return InputFile{Name: name, Reader: strings.NewReader(string(b))}
}

// IsUpload reports whether f carries content to upload.
func (f InputFile) IsUpload() bool { return f.Reader != nil }

// Ref returns the file_id or URL f refers to.
func (f InputFile) Ref() string {
	if f.FileID != "" {
		return f.FileID
	}
	return f.URL
}

// List decodes every object in objs with f, skipping nil results.
func List[T any](objs []*record.Object, f func(*record.Object) *T) []*T {
	if objs == nil {
		return nil
	}
	out := make([]*T, 0, len(objs))
	for _, o := range objs {
		if v := f(o); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// marshal returns the JSON form of v. It is used by the String methods of
// records sent as JSON-serialized parameters.
func marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// User is a Telegram user or bot.
type User struct {
	ID                      int64  `json:"id"`
	IsBot                   bool   `json:"is_bot"`
	FirstName               string `json:"first_name"`
	LastName                string `json:"last_name,omitempty"`
	Username                string `json:"username,omitempty"`
	LanguageCode            string `json:"language_code,omitempty"`
	IsPremium               bool   `json:"is_premium,omitempty"`
	AddedToAttachmentMenu   bool   `json:"added_to_attachment_menu,omitempty"`
	CanJoinGroups           bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool   `json:"supports_inline_queries,omitempty"`
}

// UserFromJSON decodes a User.
func UserFromJSON(o *record.Object) *User {
	if o == nil {
		return nil
	}
	return &User{
		ID:                      o.Int64("id"),
		IsBot:                   o.Bool("is_bot"),
		FirstName:               o.String("first_name"),
		LastName:                o.String("last_name"),
		Username:                o.String("username"),
		LanguageCode:            o.String("language_code"),
		IsPremium:               o.Bool("is_premium"),
		AddedToAttachmentMenu:   o.Bool("added_to_attachment_menu"),
		CanJoinGroups:           o.Bool("can_join_groups"),
		CanReadAllGroupMessages: o.Bool("can_read_all_group_messages"),
		SupportsInlineQueries:   o.Bool("supports_inline_queries"),
	}
}

// Recipient implements the [Recipient] interface.
func (u *User) Recipient() string { return strconv.FormatInt(u.ID, 10) }

// UserProfilePhotos is a user's list of profile pictures, each in several
// sizes.
type UserProfilePhotos struct {
	TotalCount int            `json:"total_count"`
	Photos     [][]*PhotoSize `json:"photos"`
}

// UserProfilePhotosFromJSON decodes UserProfilePhotos.
func UserProfilePhotosFromJSON(o *record.Object) *UserProfilePhotos {
	if o == nil {
		return nil
	}
	p := &UserProfilePhotos{TotalCount: o.Int("total_count")}
	for _, row := range o.Arrays("photos") {
		p.Photos = append(p.Photos, List(row, PhotoSizeFromJSON))
	}
	return p
}
