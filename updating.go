// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// UpdatingMessagesManager edits and deletes messages that were already sent.
type UpdatingMessagesManager struct{ *Client }

// NewUpdatingMessagesManager returns an UpdatingMessagesManager for cfg. A
// zero cfg means the default configuration.
func NewUpdatingMessagesManager(cfg Config) (*UpdatingMessagesManager, error) {
	return newManager(cfg, (*Client).UpdatingMessages)
}

// UpdatingMessages returns an UpdatingMessagesManager that shares c.
func (c *Client) UpdatingMessages() *UpdatingMessagesManager { return &UpdatingMessagesManager{c} }

// MessageRef identifies the message to edit: either a message in a chat or
// a message sent via inline mode.
type MessageRef struct {
	Chat            types.Recipient
	MessageID       int64
	InlineMessageID string
}

// ChatMessage returns a reference to message id in chat.
func ChatMessage(chat types.Recipient, id int64) MessageRef {
	return MessageRef{Chat: chat, MessageID: id}
}

// InlineMessage returns a reference to a message sent via inline mode.
func InlineMessage(id string) MessageRef { return MessageRef{InlineMessageID: id} }

// Params returns the parameters identifying r.
func (r MessageRef) Params() *params.Bag {
	if r.InlineMessageID != "" {
		return params.Of("inline_message_id", r.InlineMessageID)
	}
	return params.Of("chat_id", id(r.Chat), "message_id", r.MessageID)
}

// The edit methods return the edited message. When ref is an inline message
// the API returns true instead and Object reports a nil message.

func (m *UpdatingMessagesManager) edit(ctx context.Context, method string, ref MessageRef, opts *params.Bag) (*Result[*types.Message], error) {
	return call(ctx, m.Client, method, ref.Params().Merge(opts), editedMessageDecoder)
}

// EditMessageText edits a text or game message.
func (m *UpdatingMessagesManager) EditMessageText(ctx context.Context, ref MessageRef, text string, opts *params.Bag) (*Result[*types.Message], error) {
	return m.edit(ctx, "editMessageText", ref, with(opts, "text", text))
}

// EditMessageCaption edits the caption of a message. Without a caption in
// opts the caption is removed.
func (m *UpdatingMessagesManager) EditMessageCaption(ctx context.Context, ref MessageRef, opts *params.Bag) (*Result[*types.Message], error) {
	return m.edit(ctx, "editMessageCaption", ref, opts)
}

func (m *UpdatingMessagesManager) EditMessageLiveLocation(ctx context.Context, ref MessageRef, latitude, longitude float64, opts *params.Bag) (*Result[*types.Message], error) {
	return m.edit(ctx, "editMessageLiveLocation", ref, with(opts, "latitude", latitude, "longitude", longitude))
}

func (m *UpdatingMessagesManager) StopMessageLiveLocation(ctx context.Context, ref MessageRef, opts *params.Bag) (*Result[*types.Message], error) {
	return m.edit(ctx, "stopMessageLiveLocation", ref, opts)
}

// EditMessageReplyMarkup replaces the inline keyboard of a message. A nil
// markup removes it.
func (m *UpdatingMessagesManager) EditMessageReplyMarkup(ctx context.Context, ref MessageRef, markup *types.InlineKeyboardMarkup, opts *params.Bag) (*Result[*types.Message], error) {
	return m.edit(ctx, "editMessageReplyMarkup", ref, with(opts, "reply_markup", markup))
}

// StopPoll stops a poll sent by the bot and returns its final state.
func (m *UpdatingMessagesManager) StopPoll(ctx context.Context, chat types.Recipient, messageID int64, opts *params.Bag) (*Result[*types.Poll], error) {
	return call(ctx, m.Client, "stopPoll", with(opts, "chat_id", id(chat), "message_id", messageID), ObjectDecoder(types.PollFromJSON))
}

// DeleteMessage deletes a message. Messages older than 48 hours can't be
// deleted.
func (m *UpdatingMessagesManager) DeleteMessage(ctx context.Context, chat types.Recipient, messageID int64, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteMessage", with(opts, "chat_id", id(chat), "message_id", messageID), BoolDecoder)
}

// DeleteMessages deletes up to 100 messages at once. Messages that can't be
// found are skipped.
func (m *UpdatingMessagesManager) DeleteMessages(ctx context.Context, chat types.Recipient, messageIDs []int64, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteMessages", with(opts, "chat_id", id(chat), "message_ids", messageIDs), BoolDecoder)
}
