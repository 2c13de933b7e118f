// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// ContentManager sends messages of every kind.
//
// Common optional parameters are message_thread_id, parse_mode, entities,
// disable_notification, protect_content, reply_to_message_id and
// reply_markup. A reply_markup may be any [types.ReplyMarkup].
type ContentManager struct{ *Client }

// NewContentManager returns a ContentManager for cfg. A zero cfg means the
// default configuration.
func NewContentManager(cfg Config) (*ContentManager, error) {
	return newManager(cfg, (*Client).Content)
}

// Content returns a ContentManager that shares c.
func (c *Client) Content() *ContentManager { return &ContentManager{c} }

var messageIDDecoder = ObjectDecoder(types.MessageIDFromJSON)

func (m *ContentManager) send(ctx context.Context, method string, chat types.Recipient, field string, f types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return callUpload(ctx, m.Client, method, with(opts, "chat_id", id(chat)), field, f, messageDecoder)
}

// SendMessage sends a text message.
func (m *ContentManager) SendMessage(ctx context.Context, chat types.Recipient, text string, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "sendMessage", with(opts, "chat_id", id(chat), "text", text), messageDecoder)
}

// ForwardMessage forwards a message of any kind from fromChat to chat.
func (m *ContentManager) ForwardMessage(ctx context.Context, chat, fromChat types.Recipient, messageID int64, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "forwardMessage", with(opts, "chat_id", id(chat), "from_chat_id", id(fromChat), "message_id", messageID), messageDecoder)
}

// CopyMessage copies a message without a link to the original.
func (m *ContentManager) CopyMessage(ctx context.Context, chat, fromChat types.Recipient, messageID int64, opts *params.Bag) (*Result[*types.MessageID], error) {
	return call(ctx, m.Client, "copyMessage", with(opts, "chat_id", id(chat), "from_chat_id", id(fromChat), "message_id", messageID), messageIDDecoder)
}

// SendPhoto sends a photo. Optional parameters include caption and
// has_spoiler.
func (m *ContentManager) SendPhoto(ctx context.Context, chat types.Recipient, photo types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendPhoto", chat, "photo", photo, opts)
}

// SendAudio sends an audio file to be shown in the music player.
func (m *ContentManager) SendAudio(ctx context.Context, chat types.Recipient, audio types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendAudio", chat, "audio", audio, opts)
}

func (m *ContentManager) SendDocument(ctx context.Context, chat types.Recipient, document types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendDocument", chat, "document", document, opts)
}

func (m *ContentManager) SendVideo(ctx context.Context, chat types.Recipient, video types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendVideo", chat, "video", video, opts)
}

// SendAnimation sends a GIF or an H.264/MPEG-4 AVC video without sound.
func (m *ContentManager) SendAnimation(ctx context.Context, chat types.Recipient, animation types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendAnimation", chat, "animation", animation, opts)
}

// SendVoice sends an OGG file encoded with OPUS to be shown as a playable
// voice message.
func (m *ContentManager) SendVoice(ctx context.Context, chat types.Recipient, voice types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendVoice", chat, "voice", voice, opts)
}

func (m *ContentManager) SendVideoNote(ctx context.Context, chat types.Recipient, videoNote types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return m.send(ctx, "sendVideoNote", chat, "video_note", videoNote, opts)
}

// SendLocation sends a point on the map. Pass live_period in opts to send a
// live location.
func (m *ContentManager) SendLocation(ctx context.Context, chat types.Recipient, latitude, longitude float64, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "sendLocation", with(opts, "chat_id", id(chat), "latitude", latitude, "longitude", longitude), messageDecoder)
}

func (m *ContentManager) SendVenue(ctx context.Context, chat types.Recipient, latitude, longitude float64, title, address string, opts *params.Bag) (*Result[*types.Message], error) {
	p := with(opts, "chat_id", id(chat), "latitude", latitude, "longitude", longitude, "title", title, "address", address)
	return call(ctx, m.Client, "sendVenue", p, messageDecoder)
}

func (m *ContentManager) SendContact(ctx context.Context, chat types.Recipient, phoneNumber, firstName string, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "sendContact", with(opts, "chat_id", id(chat), "phone_number", phoneNumber, "first_name", firstName), messageDecoder)
}

// SendPoll sends a native poll with 2-10 answer options.
func (m *ContentManager) SendPoll(ctx context.Context, chat types.Recipient, question string, options []string, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "sendPoll", with(opts, "chat_id", id(chat), "question", question, "options", options), messageDecoder)
}

// SendDice sends an animated emoji that displays a random value. The emoji
// defaults to 🎲.
func (m *ContentManager) SendDice(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, "sendDice", with(opts, "chat_id", id(chat)), messageDecoder)
}

// SendChatAction tells the user that something is happening on the bot's
// side. The status lasts 5 seconds or until the next message arrives.
func (m *ContentManager) SendChatAction(ctx context.Context, chat types.Recipient, action string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "sendChatAction", with(opts, "chat_id", id(chat), "action", action), BoolDecoder)
}
