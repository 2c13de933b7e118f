// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// ForumTopicManager manages topics in forum supergroups.
type ForumTopicManager struct{ *Client }

// NewForumTopicManager returns a ForumTopicManager for cfg. A zero cfg means
// the default configuration.
func NewForumTopicManager(cfg Config) (*ForumTopicManager, error) {
	return newManager(cfg, (*Client).ForumTopic)
}

// ForumTopic returns a ForumTopicManager that shares c.
func (c *Client) ForumTopic() *ForumTopicManager { return &ForumTopicManager{c} }

func (m *ForumTopicManager) topic(ctx context.Context, method string, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, method, with(opts, "chat_id", id(chat), "message_thread_id", threadID), BoolDecoder)
}

func (m *ForumTopicManager) general(ctx context.Context, method string, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, method, with(opts, "chat_id", id(chat)), BoolDecoder)
}

// GetForumTopicIconStickers returns the custom emoji stickers any user can
// use as a topic icon.
func (m *ForumTopicManager) GetForumTopicIconStickers(ctx context.Context, opts *params.Bag) (*Result[[]*types.Sticker], error) {
	return call(ctx, m.Client, "getForumTopicIconStickers", with(opts), stickersDecoder)
}

// CreateForumTopic creates a topic. Optional parameters are icon_color and
// icon_custom_emoji_id.
func (m *ForumTopicManager) CreateForumTopic(ctx context.Context, chat types.Recipient, name string, opts *params.Bag) (*Result[*types.ForumTopic], error) {
	return call(ctx, m.Client, "createForumTopic", with(opts, "chat_id", id(chat), "name", name), forumTopicDecoder)
}

// EditForumTopic changes the name and icon of a topic.
func (m *ForumTopicManager) EditForumTopic(ctx context.Context, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return m.topic(ctx, "editForumTopic", chat, threadID, opts)
}

func (m *ForumTopicManager) CloseForumTopic(ctx context.Context, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return m.topic(ctx, "closeForumTopic", chat, threadID, opts)
}

func (m *ForumTopicManager) ReopenForumTopic(ctx context.Context, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return m.topic(ctx, "reopenForumTopic", chat, threadID, opts)
}

// DeleteForumTopic deletes a topic along with all its messages.
func (m *ForumTopicManager) DeleteForumTopic(ctx context.Context, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return m.topic(ctx, "deleteForumTopic", chat, threadID, opts)
}

func (m *ForumTopicManager) UnpinAllForumTopicMessages(ctx context.Context, chat types.Recipient, threadID int64, opts *params.Bag) (*Result[bool], error) {
	return m.topic(ctx, "unpinAllForumTopicMessages", chat, threadID, opts)
}

// EditGeneralForumTopic renames the General topic.
func (m *ForumTopicManager) EditGeneralForumTopic(ctx context.Context, chat types.Recipient, name string, opts *params.Bag) (*Result[bool], error) {
	return m.general(ctx, "editGeneralForumTopic", chat, with(opts, "name", name))
}

func (m *ForumTopicManager) CloseGeneralForumTopic(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.general(ctx, "closeGeneralForumTopic", chat, opts)
}

func (m *ForumTopicManager) ReopenGeneralForumTopic(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.general(ctx, "reopenGeneralForumTopic", chat, opts)
}

// HideGeneralForumTopic hides the General topic. The topic is closed
// automatically if it was open.
func (m *ForumTopicManager) HideGeneralForumTopic(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.general(ctx, "hideGeneralForumTopic", chat, opts)
}

func (m *ForumTopicManager) UnhideGeneralForumTopic(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.general(ctx, "unhideGeneralForumTopic", chat, opts)
}
