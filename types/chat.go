// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import (
	"strconv"
	"strings"

	"go.astrophena.name/botapi/record"
)

// Chat types.
const (
	ChatPrivate    = "private"
	ChatGroup      = "group"
	ChatSupergroup = "supergroup"
	ChatChannel    = "channel"
)

// Chat is a private chat, group, supergroup or channel.
type Chat struct {
	ID                    int64            `json:"id"`
	Type                  string           `json:"type"`
	Title                 string           `json:"title,omitempty"`
	Username              string           `json:"username,omitempty"`
	FirstName             string           `json:"first_name,omitempty"`
	LastName              string           `json:"last_name,omitempty"`
	IsForum               bool             `json:"is_forum,omitempty"`
	Photo                 *ChatPhoto       `json:"photo,omitempty"`
	ActiveUsernames       []string         `json:"active_usernames,omitempty"`
	Bio                   string           `json:"bio,omitempty"`
	HasPrivateForwards    bool             `json:"has_private_forwards,omitempty"`
	Description           string           `json:"description,omitempty"`
	InviteLink            string           `json:"invite_link,omitempty"`
	PinnedMessage         *Message         `json:"pinned_message,omitempty"`
	Permissions           *ChatPermissions `json:"permissions,omitempty"`
	SlowModeDelay         int              `json:"slow_mode_delay,omitempty"`
	MessageAutoDeleteTime int              `json:"message_auto_delete_time,omitempty"`
	HasProtectedContent   bool             `json:"has_protected_content,omitempty"`
	StickerSetName        string           `json:"sticker_set_name,omitempty"`
	CanSetStickerSet      bool             `json:"can_set_sticker_set,omitempty"`
	LinkedChatID          int64            `json:"linked_chat_id,omitempty"`
	Location              *ChatLocation    `json:"location,omitempty"`
}

// ChatFromJSON decodes a Chat.
func ChatFromJSON(o *record.Object) *Chat {
	if o == nil {
		return nil
	}
	return &Chat{
		ID:                    o.Int64("id"),
		Type:                  o.String("type"),
		Title:                 o.String("title"),
		Username:              o.String("username"),
		FirstName:             o.String("first_name"),
		LastName:              o.String("last_name"),
		IsForum:               o.Bool("is_forum"),
		Photo:                 ChatPhotoFromJSON(o.Object("photo")),
		ActiveUsernames:       o.Strings("active_usernames"),
		Bio:                   o.String("bio"),
		HasPrivateForwards:    o.Bool("has_private_forwards"),
		Description:           o.String("description"),
		InviteLink:            o.String("invite_link"),
		PinnedMessage:         MessageFromJSON(o.Object("pinned_message")),
		Permissions:           ChatPermissionsFromJSON(o.Object("permissions")),
		SlowModeDelay:         o.Int("slow_mode_delay"),
		MessageAutoDeleteTime: o.Int("message_auto_delete_time"),
		HasProtectedContent:   o.Bool("has_protected_content"),
		StickerSetName:        o.String("sticker_set_name"),
		CanSetStickerSet:      o.Bool("can_set_sticker_set"),
		LinkedChatID:          o.Int64("linked_chat_id"),
		Location:              ChatLocationFromJSON(o.Object("location")),
	}
}

// Recipient implements the [Recipient] interface.
func (c *Chat) Recipient() string { return strconv.FormatInt(c.ID, 10) }

// ChatPhoto is a chat photo in two sizes.
type ChatPhoto struct {
	SmallFileID       string `json:"small_file_id"`
	SmallFileUniqueID string `json:"small_file_unique_id"`
	BigFileID         string `json:"big_file_id"`
	BigFileUniqueID   string `json:"big_file_unique_id"`
}

// ChatPhotoFromJSON decodes a ChatPhoto.
func ChatPhotoFromJSON(o *record.Object) *ChatPhoto {
	if o == nil {
		return nil
	}
	return &ChatPhoto{
		SmallFileID:       o.String("small_file_id"),
		SmallFileUniqueID: o.String("small_file_unique_id"),
		BigFileID:         o.String("big_file_id"),
		BigFileUniqueID:   o.String("big_file_unique_id"),
	}
}

// ChatLocation is the location a supergroup is connected to.
type ChatLocation struct {
	Location *Location `json:"location"`
	Address  string    `json:"address"`
}

// ChatLocationFromJSON decodes a ChatLocation.
func ChatLocationFromJSON(o *record.Object) *ChatLocation {
	if o == nil {
		return nil
	}
	return &ChatLocation{
		Location: LocationFromJSON(o.Object("location")),
		Address:  o.String("address"),
	}
}

// ChatPermissions describes actions a non-administrator user is allowed to
// take in a chat. Unlike other records it is mutable, so a permission set can
// be built up before sending it with setChatPermissions or
// restrictChatMember. A nil field means the permission is not specified.
type ChatPermissions struct {
	CanSendMessages       *bool `json:"can_send_messages,omitempty"`
	CanSendAudios         *bool `json:"can_send_audios,omitempty"`
	CanSendDocuments      *bool `json:"can_send_documents,omitempty"`
	CanSendPhotos         *bool `json:"can_send_photos,omitempty"`
	CanSendVideos         *bool `json:"can_send_videos,omitempty"`
	CanSendVideoNotes     *bool `json:"can_send_video_notes,omitempty"`
	CanSendVoiceNotes     *bool `json:"can_send_voice_notes,omitempty"`
	CanSendPolls          *bool `json:"can_send_polls,omitempty"`
	CanSendOtherMessages  *bool `json:"can_send_other_messages,omitempty"`
	CanAddWebPagePreviews *bool `json:"can_add_web_page_previews,omitempty"`
	CanChangeInfo         *bool `json:"can_change_info,omitempty"`
	CanInviteUsers        *bool `json:"can_invite_users,omitempty"`
	CanPinMessages        *bool `json:"can_pin_messages,omitempty"`
	CanManageTopics       *bool `json:"can_manage_topics,omitempty"`
}

type permissionField struct {
	key string
	val **bool
}

// fields maps every permission to its JSON key, in the order the API
// documents them.
func (p *ChatPermissions) fields() []permissionField {
	return []permissionField{
		{"can_send_messages", &p.CanSendMessages},
		{"can_send_audios", &p.CanSendAudios},
		{"can_send_documents", &p.CanSendDocuments},
		{"can_send_photos", &p.CanSendPhotos},
		{"can_send_videos", &p.CanSendVideos},
		{"can_send_video_notes", &p.CanSendVideoNotes},
		{"can_send_voice_notes", &p.CanSendVoiceNotes},
		{"can_send_polls", &p.CanSendPolls},
		{"can_send_other_messages", &p.CanSendOtherMessages},
		{"can_add_web_page_previews", &p.CanAddWebPagePreviews},
		{"can_change_info", &p.CanChangeInfo},
		{"can_invite_users", &p.CanInviteUsers},
		{"can_pin_messages", &p.CanPinMessages},
		{"can_manage_topics", &p.CanManageTopics},
	}
}

// NewChatPermissions returns a permission set with every permission set to
// allowed.
func NewChatPermissions(allowed bool) *ChatPermissions {
	p := new(ChatPermissions)
	for _, f := range p.fields() {
		v := allowed
		*f.val = &v
	}
	return p
}

// Set sets the permission identified by its JSON key, such as
// "can_send_messages". It reports whether the key is known.
func (p *ChatPermissions) Set(key string, allowed bool) bool {
	for _, f := range p.fields() {
		if f.key == key {
			v := allowed
			*f.val = &v
			return true
		}
	}
	return false
}

// Unset clears the permission identified by its JSON key.
func (p *ChatPermissions) Unset(key string) {
	for _, f := range p.fields() {
		if f.key == key {
			*f.val = nil
		}
	}
}

// Allowed reports whether the permission identified by its JSON key is set
// and allowed.
func (p *ChatPermissions) Allowed(key string) bool {
	for _, f := range p.fields() {
		if f.key == key {
			return *f.val != nil && **f.val
		}
	}
	return false
}

// String returns the JSON representation of the specified permissions.
func (p *ChatPermissions) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for _, f := range p.fields() {
		if *f.val == nil {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(strconv.Quote(f.key))
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatBool(**f.val))
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (p *ChatPermissions) MarshalJSON() ([]byte, error) { return []byte(p.String()), nil }

// ChatPermissionsFromJSON decodes ChatPermissions. Only the keys present in
// the object are set.
func ChatPermissionsFromJSON(o *record.Object) *ChatPermissions {
	if o == nil {
		return nil
	}
	p := new(ChatPermissions)
	for _, f := range p.fields() {
		if o.Has(f.key) {
			v := o.Bool(f.key)
			*f.val = &v
		}
	}
	return p
}

// Chat member statuses.
const (
	MemberCreator       = "creator"
	MemberAdministrator = "administrator"
	MemberMember        = "member"
	MemberRestricted    = "restricted"
	MemberLeft          = "left"
	MemberBanned        = "kicked"
)

// ChatMember is information about one member of a chat. Which fields are
// set depends on Status.
type ChatMember struct {
	Status              string           `json:"status"`
	User                *User            `json:"user"`
	IsAnonymous         bool             `json:"is_anonymous,omitempty"`
	CustomTitle         string           `json:"custom_title,omitempty"`
	UntilDate           int64            `json:"until_date,omitempty"`
	IsMember            bool             `json:"is_member,omitempty"`
	CanBeEdited         bool             `json:"can_be_edited,omitempty"`
	CanManageChat       bool             `json:"can_manage_chat,omitempty"`
	CanDeleteMessages   bool             `json:"can_delete_messages,omitempty"`
	CanManageVideoChats bool             `json:"can_manage_video_chats,omitempty"`
	CanRestrictMembers  bool             `json:"can_restrict_members,omitempty"`
	CanPromoteMembers   bool             `json:"can_promote_members,omitempty"`
	CanChangeInfo       bool             `json:"can_change_info,omitempty"`
	CanInviteUsers      bool             `json:"can_invite_users,omitempty"`
	CanPostMessages     bool             `json:"can_post_messages,omitempty"`
	CanEditMessages     bool             `json:"can_edit_messages,omitempty"`
	CanPinMessages      bool             `json:"can_pin_messages,omitempty"`
	CanManageTopics     bool             `json:"can_manage_topics,omitempty"`
	Permissions         *ChatPermissions `json:"-"`
}

// ChatMemberFromJSON decodes a ChatMember. For restricted members the
// can_send_* flags are collected into Permissions.
func ChatMemberFromJSON(o *record.Object) *ChatMember {
	if o == nil {
		return nil
	}
	m := &ChatMember{
		Status:              o.String("status"),
		User:                UserFromJSON(o.Object("user")),
		IsAnonymous:         o.Bool("is_anonymous"),
		CustomTitle:         o.String("custom_title"),
		UntilDate:           o.Int64("until_date"),
		IsMember:            o.Bool("is_member"),
		CanBeEdited:         o.Bool("can_be_edited"),
		CanManageChat:       o.Bool("can_manage_chat"),
		CanDeleteMessages:   o.Bool("can_delete_messages"),
		CanManageVideoChats: o.Bool("can_manage_video_chats"),
		CanRestrictMembers:  o.Bool("can_restrict_members"),
		CanPromoteMembers:   o.Bool("can_promote_members"),
		CanChangeInfo:       o.Bool("can_change_info"),
		CanInviteUsers:      o.Bool("can_invite_users"),
		CanPostMessages:     o.Bool("can_post_messages"),
		CanEditMessages:     o.Bool("can_edit_messages"),
		CanPinMessages:      o.Bool("can_pin_messages"),
		CanManageTopics:     o.Bool("can_manage_topics"),
	}
	if m.Status == MemberRestricted {
		m.Permissions = ChatPermissionsFromJSON(o)
	}
	return m
}

// ChatInviteLink is an invite link for a chat.
type ChatInviteLink struct {
	InviteLink              string `json:"invite_link"`
	Creator                 *User  `json:"creator"`
	CreatesJoinRequest      bool   `json:"creates_join_request"`
	IsPrimary               bool   `json:"is_primary"`
	IsRevoked               bool   `json:"is_revoked"`
	Name                    string `json:"name,omitempty"`
	ExpireDate              int64  `json:"expire_date,omitempty"`
	MemberLimit             int    `json:"member_limit,omitempty"`
	PendingJoinRequestCount int    `json:"pending_join_request_count,omitempty"`
}

// ChatInviteLinkFromJSON decodes a ChatInviteLink.
func ChatInviteLinkFromJSON(o *record.Object) *ChatInviteLink {
	if o == nil {
		return nil
	}
	return &ChatInviteLink{
		InviteLink:              o.String("invite_link"),
		Creator:                 UserFromJSON(o.Object("creator")),
		CreatesJoinRequest:      o.Bool("creates_join_request"),
		IsPrimary:               o.Bool("is_primary"),
		IsRevoked:               o.Bool("is_revoked"),
		Name:                    o.String("name"),
		ExpireDate:              o.Int64("expire_date"),
		MemberLimit:             o.Int("member_limit"),
		PendingJoinRequestCount: o.Int("pending_join_request_count"),
	}
}

// ChatAdministratorRights are the rights of an administrator in a chat. It
// is both returned by and sent to the API.
type ChatAdministratorRights struct {
	IsAnonymous         bool `json:"is_anonymous"`
	CanManageChat       bool `json:"can_manage_chat"`
	CanDeleteMessages   bool `json:"can_delete_messages"`
	CanManageVideoChats bool `json:"can_manage_video_chats"`
	CanRestrictMembers  bool `json:"can_restrict_members"`
	CanPromoteMembers   bool `json:"can_promote_members"`
	CanChangeInfo       bool `json:"can_change_info"`
	CanInviteUsers      bool `json:"can_invite_users"`
	CanPostMessages     bool `json:"can_post_messages,omitempty"`
	CanEditMessages     bool `json:"can_edit_messages,omitempty"`
	CanPinMessages      bool `json:"can_pin_messages,omitempty"`
	CanManageTopics     bool `json:"can_manage_topics,omitempty"`
}

// ChatAdministratorRightsFromJSON decodes ChatAdministratorRights.
func ChatAdministratorRightsFromJSON(o *record.Object) *ChatAdministratorRights {
	if o == nil {
		return nil
	}
	return &ChatAdministratorRights{
		IsAnonymous:         o.Bool("is_anonymous"),
		CanManageChat:       o.Bool("can_manage_chat"),
		CanDeleteMessages:   o.Bool("can_delete_messages"),
		CanManageVideoChats: o.Bool("can_manage_video_chats"),
		CanRestrictMembers:  o.Bool("can_restrict_members"),
		CanPromoteMembers:   o.Bool("can_promote_members"),
		CanChangeInfo:       o.Bool("can_change_info"),
		CanInviteUsers:      o.Bool("can_invite_users"),
		CanPostMessages:     o.Bool("can_post_messages"),
		CanEditMessages:     o.Bool("can_edit_messages"),
		CanPinMessages:      o.Bool("can_pin_messages"),
		CanManageTopics:     o.Bool("can_manage_topics"),
	}
}

// ForumTopic is a topic of a forum supergroup.
type ForumTopic struct {
	MessageThreadID   int64  `json:"message_thread_id"`
	Name              string `json:"name"`
	IconColor         int    `json:"icon_color"`
	IconCustomEmojiID string `json:"icon_custom_emoji_id,omitempty"`
}

// ForumTopicFromJSON decodes a ForumTopic.
func ForumTopicFromJSON(o *record.Object) *ForumTopic {
	if o == nil {
		return nil
	}
	return &ForumTopic{
		MessageThreadID:   o.Int64("message_thread_id"),
		Name:              o.String("name"),
		IconColor:         o.Int("icon_color"),
		IconCustomEmojiID: o.String("icon_custom_emoji_id"),
	}
}
