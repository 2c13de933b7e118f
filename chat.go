// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// ChatManager administers chats: members, permissions, invite links, pinned
// messages and chat settings.
//
// Chats and users are passed as a [types.Recipient], so a raw identifier
// ([types.ChatID], [types.Username]) and a decoded [*types.Chat] or
// [*types.User] work the same.
type ChatManager struct{ *Client }

// NewChatManager returns a ChatManager for cfg. A zero cfg means the default
// configuration.
func NewChatManager(cfg Config) (*ChatManager, error) {
	return newManager(cfg, (*Client).Chat)
}

// Chat returns a ChatManager that shares c.
func (c *Client) Chat() *ChatManager { return &ChatManager{c} }

func (m *ChatManager) member(ctx context.Context, method string, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, method, with(opts, "chat_id", id(chat), "user_id", id(user)), BoolDecoder)
}

func (m *ChatManager) simple(ctx context.Context, method string, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, method, with(opts, "chat_id", id(chat)), BoolDecoder)
}

// BanChatMember bans user from chat. Optional parameters are until_date and
// revoke_messages.
func (m *ChatManager) BanChatMember(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "banChatMember", chat, user, opts)
}

// UnbanChatMember unbans a previously banned user. Pass only_if_banned in
// opts to avoid removing a member that isn't banned.
func (m *ChatManager) UnbanChatMember(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "unbanChatMember", chat, user, opts)
}

// RestrictChatMember sets the permissions of user in a supergroup.
func (m *ChatManager) RestrictChatMember(ctx context.Context, chat, user types.Recipient, perms *types.ChatPermissions, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "restrictChatMember", chat, user, with(opts, "permissions", perms))
}

// PromoteChatMember promotes or demotes user. Administrator rights are
// passed in opts as can_* booleans.
func (m *ChatManager) PromoteChatMember(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "promoteChatMember", chat, user, opts)
}

func (m *ChatManager) SetChatAdministratorCustomTitle(ctx context.Context, chat, user types.Recipient, title string, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "setChatAdministratorCustomTitle", chat, user, with(opts, "custom_title", title))
}

// BanChatSenderChat bans a channel chat in a supergroup or a channel.
func (m *ChatManager) BanChatSenderChat(ctx context.Context, chat, sender types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "banChatSenderChat", with(opts, "chat_id", id(chat), "sender_chat_id", id(sender)), BoolDecoder)
}

func (m *ChatManager) UnbanChatSenderChat(ctx context.Context, chat, sender types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "unbanChatSenderChat", with(opts, "chat_id", id(chat), "sender_chat_id", id(sender)), BoolDecoder)
}

// SetChatPermissions sets the default permissions of all members.
func (m *ChatManager) SetChatPermissions(ctx context.Context, chat types.Recipient, perms *types.ChatPermissions, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "setChatPermissions", chat, with(opts, "permissions", perms))
}

// ExportChatInviteLink generates a new primary invite link, revoking the
// previous one.
func (m *ChatManager) ExportChatInviteLink(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[string], error) {
	return call(ctx, m.Client, "exportChatInviteLink", with(opts, "chat_id", id(chat)), StringDecoder)
}

// CreateChatInviteLink creates an additional invite link. Optional
// parameters are name, expire_date, member_limit and creates_join_request.
func (m *ChatManager) CreateChatInviteLink(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[*types.ChatInviteLink], error) {
	return call(ctx, m.Client, "createChatInviteLink", with(opts, "chat_id", id(chat)), inviteLinkDecoder)
}

func (m *ChatManager) EditChatInviteLink(ctx context.Context, chat types.Recipient, link string, opts *params.Bag) (*Result[*types.ChatInviteLink], error) {
	return call(ctx, m.Client, "editChatInviteLink", with(opts, "chat_id", id(chat), "invite_link", link), inviteLinkDecoder)
}

func (m *ChatManager) RevokeChatInviteLink(ctx context.Context, chat types.Recipient, link string, opts *params.Bag) (*Result[*types.ChatInviteLink], error) {
	return call(ctx, m.Client, "revokeChatInviteLink", with(opts, "chat_id", id(chat), "invite_link", link), inviteLinkDecoder)
}

func (m *ChatManager) ApproveChatJoinRequest(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "approveChatJoinRequest", chat, user, opts)
}

func (m *ChatManager) DeclineChatJoinRequest(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.member(ctx, "declineChatJoinRequest", chat, user, opts)
}

// SetChatPhoto sets a new profile photo for chat. The photo must be
// uploaded.
func (m *ChatManager) SetChatPhoto(ctx context.Context, chat types.Recipient, photo types.InputFile, opts *params.Bag) (*Result[bool], error) {
	return callUpload(ctx, m.Client, "setChatPhoto", with(opts, "chat_id", id(chat)), "photo", photo, BoolDecoder)
}

func (m *ChatManager) DeleteChatPhoto(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "deleteChatPhoto", chat, opts)
}

func (m *ChatManager) SetChatTitle(ctx context.Context, chat types.Recipient, title string, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "setChatTitle", chat, with(opts, "title", title))
}

// SetChatDescription changes the description of chat. Without a description
// in opts the description is removed.
func (m *ChatManager) SetChatDescription(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "setChatDescription", chat, opts)
}

// PinChatMessage adds a message to the list of pinned messages. Pass
// disable_notification in opts to pin silently.
func (m *ChatManager) PinChatMessage(ctx context.Context, chat types.Recipient, messageID int64, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "pinChatMessage", chat, with(opts, "message_id", messageID))
}

// UnpinChatMessage removes a message from the list of pinned messages. The
// most recent pinned message is removed when opts has no message_id.
func (m *ChatManager) UnpinChatMessage(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "unpinChatMessage", chat, opts)
}

func (m *ChatManager) UnpinAllChatMessages(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "unpinAllChatMessages", chat, opts)
}

// LeaveChat makes the bot leave a group, supergroup or channel.
func (m *ChatManager) LeaveChat(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "leaveChat", chat, opts)
}

// GetChat returns up to date information about chat.
func (m *ChatManager) GetChat(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[*types.Chat], error) {
	return call(ctx, m.Client, "getChat", with(opts, "chat_id", id(chat)), chatDecoder)
}

// GetChatAdministrators returns the administrators of chat that aren't bots.
func (m *ChatManager) GetChatAdministrators(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[[]*types.ChatMember], error) {
	return call(ctx, m.Client, "getChatAdministrators", with(opts, "chat_id", id(chat)), membersDecoder)
}

func (m *ChatManager) GetChatMemberCount(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[int], error) {
	return call(ctx, m.Client, "getChatMemberCount", with(opts, "chat_id", id(chat)), IntDecoder)
}

func (m *ChatManager) GetChatMember(ctx context.Context, chat, user types.Recipient, opts *params.Bag) (*Result[*types.ChatMember], error) {
	return call(ctx, m.Client, "getChatMember", with(opts, "chat_id", id(chat), "user_id", id(user)), memberDecoder)
}

// SetChatStickerSet sets the group sticker set of a supergroup.
func (m *ChatManager) SetChatStickerSet(ctx context.Context, chat types.Recipient, name string, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "setChatStickerSet", chat, with(opts, "sticker_set_name", name))
}

func (m *ChatManager) DeleteChatStickerSet(ctx context.Context, chat types.Recipient, opts *params.Bag) (*Result[bool], error) {
	return m.simple(ctx, "deleteChatStickerSet", chat, opts)
}
