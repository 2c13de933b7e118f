// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import "go.astrophena.name/botapi/record"

// BotCommand is a command supported by the bot.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// BotCommandFromJSON decodes a BotCommand.
func BotCommandFromJSON(o *record.Object) *BotCommand {
	if o == nil {
		return nil
	}
	return &BotCommand{Command: o.String("command"), Description: o.String("description")}
}

// Bot command scope types.
const (
	ScopeDefault               = "default"
	ScopeAllPrivateChats       = "all_private_chats"
	ScopeAllGroupChats         = "all_group_chats"
	ScopeAllChatAdministrators = "all_chat_administrators"
	ScopeChat                  = "chat"
	ScopeChatAdministrators    = "chat_administrators"
	ScopeChatMember            = "chat_member"
)

// BotCommandScope is the scope to which bot commands are applied. ChatID is
// required for the chat scopes and UserID for the chat_member scope.
type BotCommandScope struct {
	Type   string `json:"type"`
	ChatID string `json:"chat_id,omitempty"`
	UserID int64  `json:"user_id,omitempty"`
}

// ChatScope returns a scope of kind typ for chat, and user if typ is
// [ScopeChatMember].
func ChatScope(typ string, chat Recipient, user int64) *BotCommandScope {
	return &BotCommandScope{Type: typ, ChatID: chat.Recipient(), UserID: user}
}

// String returns the JSON form of s.
func (s *BotCommandScope) String() string { return marshal(s) }

// BotName is the bot's name.
type BotName struct {
	Name string `json:"name"`
}

// BotNameFromJSON decodes a BotName.
func BotNameFromJSON(o *record.Object) *BotName {
	if o == nil {
		return nil
	}
	return &BotName{Name: o.String("name")}
}

// BotDescription is the bot's description.
type BotDescription struct {
	Description string `json:"description"`
}

// BotDescriptionFromJSON decodes a BotDescription.
func BotDescriptionFromJSON(o *record.Object) *BotDescription {
	if o == nil {
		return nil
	}
	return &BotDescription{Description: o.String("description")}
}

// BotShortDescription is the bot's short description.
type BotShortDescription struct {
	ShortDescription string `json:"short_description"`
}

// BotShortDescriptionFromJSON decodes a BotShortDescription.
func BotShortDescriptionFromJSON(o *record.Object) *BotShortDescription {
	if o == nil {
		return nil
	}
	return &BotShortDescription{ShortDescription: o.String("short_description")}
}

// Menu button types.
const (
	MenuButtonCommands = "commands"
	MenuButtonWebApp   = "web_app"
	MenuButtonDefault  = "default"
)

// MenuButton is the bot's menu button in a private chat.
type MenuButton struct {
	Type   string      `json:"type"`
	Text   string      `json:"text,omitempty"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

// String returns the JSON form of b.
func (b *MenuButton) String() string { return marshal(b) }

// MenuButtonFromJSON decodes a MenuButton.
func MenuButtonFromJSON(o *record.Object) *MenuButton {
	if o == nil {
		return nil
	}
	return &MenuButton{
		Type:   o.String("type"),
		Text:   o.String("text"),
		WebApp: WebAppInfoFromJSON(o.Object("web_app")),
	}
}

// WebhookInfo is the current status of a webhook.
type WebhookInfo struct {
	URL                          string   `json:"url"`
	HasCustomCertificate         bool     `json:"has_custom_certificate"`
	PendingUpdateCount           int      `json:"pending_update_count"`
	IPAddress                    string   `json:"ip_address,omitempty"`
	LastErrorDate                int64    `json:"last_error_date,omitempty"`
	LastErrorMessage             string   `json:"last_error_message,omitempty"`
	LastSynchronizationErrorDate int64    `json:"last_synchronization_error_date,omitempty"`
	MaxConnections               int      `json:"max_connections,omitempty"`
	AllowedUpdates               []string `json:"allowed_updates,omitempty"`
}

// WebhookInfoFromJSON decodes a WebhookInfo.
func WebhookInfoFromJSON(o *record.Object) *WebhookInfo {
	if o == nil {
		return nil
	}
	return &WebhookInfo{
		URL:                          o.String("url"),
		HasCustomCertificate:         o.Bool("has_custom_certificate"),
		PendingUpdateCount:           o.Int("pending_update_count"),
		IPAddress:                    o.String("ip_address"),
		LastErrorDate:                o.Int64("last_error_date"),
		LastErrorMessage:             o.String("last_error_message"),
		LastSynchronizationErrorDate: o.Int64("last_synchronization_error_date"),
		MaxConnections:               o.Int("max_connections"),
		AllowedUpdates:               o.Strings("allowed_updates"),
	}
}

// Update is an incoming update. At most one of the optional fields is set.
type Update struct {
	UpdateID           int64               `json:"update_id"`
	Message            *Message            `json:"message,omitempty"`
	EditedMessage      *Message            `json:"edited_message,omitempty"`
	ChannelPost        *Message            `json:"channel_post,omitempty"`
	EditedChannelPost  *Message            `json:"edited_channel_post,omitempty"`
	InlineQuery        *InlineQuery        `json:"inline_query,omitempty"`
	ChosenInlineResult *ChosenInlineResult `json:"chosen_inline_result,omitempty"`
	CallbackQuery      *CallbackQuery      `json:"callback_query,omitempty"`
	Poll               *Poll               `json:"poll,omitempty"`
	MyChatMember       *ChatMemberUpdated  `json:"my_chat_member,omitempty"`
	ChatMember         *ChatMemberUpdated  `json:"chat_member,omitempty"`
	ChatJoinRequest    *ChatJoinRequest    `json:"chat_join_request,omitempty"`
}

// UpdateFromJSON decodes an Update.
func UpdateFromJSON(o *record.Object) *Update {
	if o == nil {
		return nil
	}
	return &Update{
		UpdateID:           o.Int64("update_id"),
		Message:            MessageFromJSON(o.Object("message")),
		EditedMessage:      MessageFromJSON(o.Object("edited_message")),
		ChannelPost:        MessageFromJSON(o.Object("channel_post")),
		EditedChannelPost:  MessageFromJSON(o.Object("edited_channel_post")),
		InlineQuery:        InlineQueryFromJSON(o.Object("inline_query")),
		ChosenInlineResult: ChosenInlineResultFromJSON(o.Object("chosen_inline_result")),
		CallbackQuery:      CallbackQueryFromJSON(o.Object("callback_query")),
		Poll:               PollFromJSON(o.Object("poll")),
		MyChatMember:       ChatMemberUpdatedFromJSON(o.Object("my_chat_member")),
		ChatMember:         ChatMemberUpdatedFromJSON(o.Object("chat_member")),
		ChatJoinRequest:    ChatJoinRequestFromJSON(o.Object("chat_join_request")),
	}
}

// CallbackQuery is an incoming callback query from an inline keyboard button.
type CallbackQuery struct {
	ID              string   `json:"id"`
	From            *User    `json:"from"`
	Message         *Message `json:"message,omitempty"`
	InlineMessageID string   `json:"inline_message_id,omitempty"`
	ChatInstance    string   `json:"chat_instance"`
	Data            string   `json:"data,omitempty"`
	GameShortName   string   `json:"game_short_name,omitempty"`
}

// CallbackQueryFromJSON decodes a CallbackQuery.
func CallbackQueryFromJSON(o *record.Object) *CallbackQuery {
	if o == nil {
		return nil
	}
	return &CallbackQuery{
		ID:              o.String("id"),
		From:            UserFromJSON(o.Object("from")),
		Message:         MessageFromJSON(o.Object("message")),
		InlineMessageID: o.String("inline_message_id"),
		ChatInstance:    o.String("chat_instance"),
		Data:            o.String("data"),
		GameShortName:   o.String("game_short_name"),
	}
}

// InlineQuery is an incoming inline query.
type InlineQuery struct {
	ID       string    `json:"id"`
	From     *User     `json:"from"`
	Query    string    `json:"query"`
	Offset   string    `json:"offset"`
	ChatType string    `json:"chat_type,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// InlineQueryFromJSON decodes an InlineQuery.
func InlineQueryFromJSON(o *record.Object) *InlineQuery {
	if o == nil {
		return nil
	}
	return &InlineQuery{
		ID:       o.String("id"),
		From:     UserFromJSON(o.Object("from")),
		Query:    o.String("query"),
		Offset:   o.String("offset"),
		ChatType: o.String("chat_type"),
		Location: LocationFromJSON(o.Object("location")),
	}
}

// ChosenInlineResult is an inline query result chosen by a user.
type ChosenInlineResult struct {
	ResultID        string    `json:"result_id"`
	From            *User     `json:"from"`
	Location        *Location `json:"location,omitempty"`
	InlineMessageID string    `json:"inline_message_id,omitempty"`
	Query           string    `json:"query"`
}

// ChosenInlineResultFromJSON decodes a ChosenInlineResult.
func ChosenInlineResultFromJSON(o *record.Object) *ChosenInlineResult {
	if o == nil {
		return nil
	}
	return &ChosenInlineResult{
		ResultID:        o.String("result_id"),
		From:            UserFromJSON(o.Object("from")),
		Location:        LocationFromJSON(o.Object("location")),
		InlineMessageID: o.String("inline_message_id"),
		Query:           o.String("query"),
	}
}

// ChatMemberUpdated is a change in the status of a chat member.
type ChatMemberUpdated struct {
	Chat          *Chat           `json:"chat"`
	From          *User           `json:"from"`
	Date          int64           `json:"date"`
	OldChatMember *ChatMember     `json:"old_chat_member"`
	NewChatMember *ChatMember     `json:"new_chat_member"`
	InviteLink    *ChatInviteLink `json:"invite_link,omitempty"`
}

// ChatMemberUpdatedFromJSON decodes a ChatMemberUpdated.
func ChatMemberUpdatedFromJSON(o *record.Object) *ChatMemberUpdated {
	if o == nil {
		return nil
	}
	return &ChatMemberUpdated{
		Chat:          ChatFromJSON(o.Object("chat")),
		From:          UserFromJSON(o.Object("from")),
		Date:          o.Int64("date"),
		OldChatMember: ChatMemberFromJSON(o.Object("old_chat_member")),
		NewChatMember: ChatMemberFromJSON(o.Object("new_chat_member")),
		InviteLink:    ChatInviteLinkFromJSON(o.Object("invite_link")),
	}
}

// ChatJoinRequest is a request to join a chat.
type ChatJoinRequest struct {
	Chat       *Chat           `json:"chat"`
	From       *User           `json:"from"`
	UserChatID int64           `json:"user_chat_id"`
	Date       int64           `json:"date"`
	Bio        string          `json:"bio,omitempty"`
	InviteLink *ChatInviteLink `json:"invite_link,omitempty"`
}

// ChatJoinRequestFromJSON decodes a ChatJoinRequest.
func ChatJoinRequestFromJSON(o *record.Object) *ChatJoinRequest {
	if o == nil {
		return nil
	}
	return &ChatJoinRequest{
		Chat:       ChatFromJSON(o.Object("chat")),
		From:       UserFromJSON(o.Object("from")),
		UserChatID: o.Int64("user_chat_id"),
		Date:       o.Int64("date"),
		Bio:        o.String("bio"),
		InviteLink: ChatInviteLinkFromJSON(o.Object("invite_link")),
	}
}

// SentWebAppMessage describes an inline message sent by a Web App on behalf of
// a user.
type SentWebAppMessage struct {
	InlineMessageID string `json:"inline_message_id,omitempty"`
}

// SentWebAppMessageFromJSON decodes a SentWebAppMessage.
func SentWebAppMessageFromJSON(o *record.Object) *SentWebAppMessage {
	if o == nil {
		return nil
	}
	return &SentWebAppMessage{InlineMessageID: o.String("inline_message_id")}
}
