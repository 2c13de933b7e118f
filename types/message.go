// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import "go.astrophena.name/botapi/record"

// Message is a message in a chat.
type Message struct {
	MessageID            int64                 `json:"message_id"`
	MessageThreadID      int64                 `json:"message_thread_id,omitempty"`
	From                 *User                 `json:"from,omitempty"`
	SenderChat           *Chat                 `json:"sender_chat,omitempty"`
	Date                 int64                 `json:"date"`
	Chat                 *Chat                 `json:"chat"`
	ForwardFrom          *User                 `json:"forward_from,omitempty"`
	ForwardFromChat      *Chat                 `json:"forward_from_chat,omitempty"`
	ForwardFromMessageID int64                 `json:"forward_from_message_id,omitempty"`
	ForwardDate          int64                 `json:"forward_date,omitempty"`
	IsTopicMessage       bool                  `json:"is_topic_message,omitempty"`
	IsAutomaticForward   bool                  `json:"is_automatic_forward,omitempty"`
	ReplyToMessage       *Message              `json:"reply_to_message,omitempty"`
	ViaBot               *User                 `json:"via_bot,omitempty"`
	EditDate             int64                 `json:"edit_date,omitempty"`
	HasProtectedContent  bool                  `json:"has_protected_content,omitempty"`
	MediaGroupID         string                `json:"media_group_id,omitempty"`
	AuthorSignature      string                `json:"author_signature,omitempty"`
	Text                 string                `json:"text,omitempty"`
	Entities             []*MessageEntity      `json:"entities,omitempty"`
	Caption              string                `json:"caption,omitempty"`
	CaptionEntities      []*MessageEntity      `json:"caption_entities,omitempty"`
	Animation            *Animation            `json:"animation,omitempty"`
	Audio                *Audio                `json:"audio,omitempty"`
	Document             *Document             `json:"document,omitempty"`
	Photo                []*PhotoSize          `json:"photo,omitempty"`
	Sticker              *Sticker              `json:"sticker,omitempty"`
	Video                *Video                `json:"video,omitempty"`
	VideoNote            *VideoNote            `json:"video_note,omitempty"`
	Voice                *Voice                `json:"voice,omitempty"`
	Contact              *Contact              `json:"contact,omitempty"`
	Dice                 *Dice                 `json:"dice,omitempty"`
	Poll                 *Poll                 `json:"poll,omitempty"`
	Venue                *Venue                `json:"venue,omitempty"`
	Location             *Location             `json:"location,omitempty"`
	NewChatMembers       []*User               `json:"new_chat_members,omitempty"`
	LeftChatMember       *User                 `json:"left_chat_member,omitempty"`
	NewChatTitle         string                `json:"new_chat_title,omitempty"`
	NewChatPhoto         []*PhotoSize          `json:"new_chat_photo,omitempty"`
	DeleteChatPhoto      bool                  `json:"delete_chat_photo,omitempty"`
	GroupChatCreated     bool                  `json:"group_chat_created,omitempty"`
	PinnedMessage        *Message              `json:"pinned_message,omitempty"`
	ReplyMarkup          *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// MessageFromJSON decodes a Message.
func MessageFromJSON(o *record.Object) *Message {
	if o == nil {
		return nil
	}
	return &Message{
		MessageID:            o.Int64("message_id"),
		MessageThreadID:      o.Int64("message_thread_id"),
		From:                 UserFromJSON(o.Object("from")),
		SenderChat:           ChatFromJSON(o.Object("sender_chat")),
		Date:                 o.Int64("date"),
		Chat:                 ChatFromJSON(o.Object("chat")),
		ForwardFrom:          UserFromJSON(o.Object("forward_from")),
		ForwardFromChat:      ChatFromJSON(o.Object("forward_from_chat")),
		ForwardFromMessageID: o.Int64("forward_from_message_id"),
		ForwardDate:          o.Int64("forward_date"),
		IsTopicMessage:       o.Bool("is_topic_message"),
		IsAutomaticForward:   o.Bool("is_automatic_forward"),
		ReplyToMessage:       MessageFromJSON(o.Object("reply_to_message")),
		ViaBot:               UserFromJSON(o.Object("via_bot")),
		EditDate:             o.Int64("edit_date"),
		HasProtectedContent:  o.Bool("has_protected_content"),
		MediaGroupID:         o.String("media_group_id"),
		AuthorSignature:      o.String("author_signature"),
		Text:                 o.String("text"),
		Entities:             List(o.Array("entities"), MessageEntityFromJSON),
		Caption:              o.String("caption"),
		CaptionEntities:      List(o.Array("caption_entities"), MessageEntityFromJSON),
		Animation:            AnimationFromJSON(o.Object("animation")),
		Audio:                AudioFromJSON(o.Object("audio")),
		Document:             DocumentFromJSON(o.Object("document")),
		Photo:                List(o.Array("photo"), PhotoSizeFromJSON),
		Sticker:              StickerFromJSON(o.Object("sticker")),
		Video:                VideoFromJSON(o.Object("video")),
		VideoNote:            VideoNoteFromJSON(o.Object("video_note")),
		Voice:                VoiceFromJSON(o.Object("voice")),
		Contact:              ContactFromJSON(o.Object("contact")),
		Dice:                 DiceFromJSON(o.Object("dice")),
		Poll:                 PollFromJSON(o.Object("poll")),
		Venue:                VenueFromJSON(o.Object("venue")),
		Location:             LocationFromJSON(o.Object("location")),
		NewChatMembers:       List(o.Array("new_chat_members"), UserFromJSON),
		LeftChatMember:       UserFromJSON(o.Object("left_chat_member")),
		NewChatTitle:         o.String("new_chat_title"),
		NewChatPhoto:         List(o.Array("new_chat_photo"), PhotoSizeFromJSON),
		DeleteChatPhoto:      o.Bool("delete_chat_photo"),
		GroupChatCreated:     o.Bool("group_chat_created"),
		PinnedMessage:        MessageFromJSON(o.Object("pinned_message")),
		ReplyMarkup:          InlineKeyboardMarkupFromJSON(o.Object("reply_markup")),
	}
}

// MessageID is the identifier of a message, as returned by copyMessage.
type MessageID struct {
	MessageID int64 `json:"message_id"`
}

// MessageIDFromJSON decodes a MessageID.
func MessageIDFromJSON(o *record.Object) *MessageID {
	if o == nil {
		return nil
	}
	return &MessageID{MessageID: o.Int64("message_id")}
}

// Message entity types.
const (
	EntityMention       = "mention"
	EntityHashtag       = "hashtag"
	EntityCashtag       = "cashtag"
	EntityBotCommand    = "bot_command"
	EntityURL           = "url"
	EntityEmail         = "email"
	EntityPhoneNumber   = "phone_number"
	EntityBold          = "bold"
	EntityItalic        = "italic"
	EntityUnderline     = "underline"
	EntityStrikethrough = "strikethrough"
	EntitySpoiler       = "spoiler"
	EntityBlockquote    = "blockquote"
	EntityCode          = "code"
	EntityPre           = "pre"
	EntityTextLink      = "text_link"
	EntityTextMention   = "text_mention"
	EntityCustomEmoji   = "custom_emoji"
)

// MessageEntity is a special entity in a text message, such as a hashtag,
// a link or a formatted span. Offset and Length are in UTF-16 code units.
type MessageEntity struct {
	Type          string `json:"type"`
	Offset        int    `json:"offset"`
	Length        int    `json:"length"`
	URL           string `json:"url,omitempty"`
	User          *User  `json:"user,omitempty"`
	Language      string `json:"language,omitempty"`
	CustomEmojiID string `json:"custom_emoji_id,omitempty"`
}

// MessageEntityFromJSON decodes a MessageEntity.
func MessageEntityFromJSON(o *record.Object) *MessageEntity {
	if o == nil {
		return nil
	}
	return &MessageEntity{
		Type:          o.String("type"),
		Offset:        o.Int("offset"),
		Length:        o.Int("length"),
		URL:           o.String("url"),
		User:          UserFromJSON(o.Object("user")),
		Language:      o.String("language"),
		CustomEmojiID: o.String("custom_emoji_id"),
	}
}

// PhotoSize is one size of a photo or a file or sticker thumbnail.
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// PhotoSizeFromJSON decodes a PhotoSize.
func PhotoSizeFromJSON(o *record.Object) *PhotoSize {
	if o == nil {
		return nil
	}
	return &PhotoSize{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Width:        o.Int("width"),
		Height:       o.Int("height"),
		FileSize:     o.Int64("file_size"),
	}
}

// Audio is an audio file to be treated as music.
type Audio struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Duration     int        `json:"duration"`
	Performer    string     `json:"performer,omitempty"`
	Title        string     `json:"title,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
}

// AudioFromJSON decodes an Audio.
func AudioFromJSON(o *record.Object) *Audio {
	if o == nil {
		return nil
	}
	return &Audio{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Duration:     o.Int("duration"),
		Performer:    o.String("performer"),
		Title:        o.String("title"),
		FileName:     o.String("file_name"),
		MimeType:     o.String("mime_type"),
		FileSize:     o.Int64("file_size"),
		Thumbnail:    PhotoSizeFromJSON(o.Object("thumbnail")),
	}
}

// Document is a general file.
type Document struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// DocumentFromJSON decodes a Document.
func DocumentFromJSON(o *record.Object) *Document {
	if o == nil {
		return nil
	}
	return &Document{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Thumbnail:    PhotoSizeFromJSON(o.Object("thumbnail")),
		FileName:     o.String("file_name"),
		MimeType:     o.String("mime_type"),
		FileSize:     o.Int64("file_size"),
	}
}

// Video is a video file.
type Video struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// VideoFromJSON decodes a Video.
func VideoFromJSON(o *record.Object) *Video {
	if o == nil {
		return nil
	}
	return &Video{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Width:        o.Int("width"),
		Height:       o.Int("height"),
		Duration:     o.Int("duration"),
		Thumbnail:    PhotoSizeFromJSON(o.Object("thumbnail")),
		FileName:     o.String("file_name"),
		MimeType:     o.String("mime_type"),
		FileSize:     o.Int64("file_size"),
	}
}

// Animation is an animation file: a GIF or an H.264/MPEG-4 AVC video without
// sound.
type Animation struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	Duration     int        `json:"duration"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
	FileName     string     `json:"file_name,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// AnimationFromJSON decodes an Animation.
func AnimationFromJSON(o *record.Object) *Animation {
	if o == nil {
		return nil
	}
	return &Animation{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Width:        o.Int("width"),
		Height:       o.Int("height"),
		Duration:     o.Int("duration"),
		Thumbnail:    PhotoSizeFromJSON(o.Object("thumbnail")),
		FileName:     o.String("file_name"),
		MimeType:     o.String("mime_type"),
		FileSize:     o.Int64("file_size"),
	}
}

// Voice is a voice note.
type Voice struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Duration     int    `json:"duration"`
	MimeType     string `json:"mime_type,omitempty"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// VoiceFromJSON decodes a Voice.
func VoiceFromJSON(o *record.Object) *Voice {
	if o == nil {
		return nil
	}
	return &Voice{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Duration:     o.Int("duration"),
		MimeType:     o.String("mime_type"),
		FileSize:     o.Int64("file_size"),
	}
}

// VideoNote is a round video message.
type VideoNote struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Length       int        `json:"length"`
	Duration     int        `json:"duration"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
}

// VideoNoteFromJSON decodes a VideoNote.
func VideoNoteFromJSON(o *record.Object) *VideoNote {
	if o == nil {
		return nil
	}
	return &VideoNote{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		Length:       o.Int("length"),
		Duration:     o.Int("duration"),
		Thumbnail:    PhotoSizeFromJSON(o.Object("thumbnail")),
		FileSize:     o.Int64("file_size"),
	}
}

// Contact is a phone contact.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	VCard       string `json:"vcard,omitempty"`
}

// ContactFromJSON decodes a Contact.
func ContactFromJSON(o *record.Object) *Contact {
	if o == nil {
		return nil
	}
	return &Contact{
		PhoneNumber: o.String("phone_number"),
		FirstName:   o.String("first_name"),
		LastName:    o.String("last_name"),
		UserID:      o.Int64("user_id"),
		VCard:       o.String("vcard"),
	}
}

// Location is a point on the map.
type Location struct {
	Longitude            float64 `json:"longitude"`
	Latitude             float64 `json:"latitude"`
	HorizontalAccuracy   float64 `json:"horizontal_accuracy,omitempty"`
	LivePeriod           int     `json:"live_period,omitempty"`
	Heading              int     `json:"heading,omitempty"`
	ProximityAlertRadius int     `json:"proximity_alert_radius,omitempty"`
}

// LocationFromJSON decodes a Location.
func LocationFromJSON(o *record.Object) *Location {
	if o == nil {
		return nil
	}
	return &Location{
		Longitude:            o.Float64("longitude"),
		Latitude:             o.Float64("latitude"),
		HorizontalAccuracy:   o.Float64("horizontal_accuracy"),
		LivePeriod:           o.Int("live_period"),
		Heading:              o.Int("heading"),
		ProximityAlertRadius: o.Int("proximity_alert_radius"),
	}
}

// Venue is a venue.
type Venue struct {
	Location        *Location `json:"location"`
	Title           string    `json:"title"`
	Address         string    `json:"address"`
	FoursquareID    string    `json:"foursquare_id,omitempty"`
	FoursquareType  string    `json:"foursquare_type,omitempty"`
	GooglePlaceID   string    `json:"google_place_id,omitempty"`
	GooglePlaceType string    `json:"google_place_type,omitempty"`
}

// VenueFromJSON decodes a Venue.
func VenueFromJSON(o *record.Object) *Venue {
	if o == nil {
		return nil
	}
	return &Venue{
		Location:        LocationFromJSON(o.Object("location")),
		Title:           o.String("title"),
		Address:         o.String("address"),
		FoursquareID:    o.String("foursquare_id"),
		FoursquareType:  o.String("foursquare_type"),
		GooglePlaceID:   o.String("google_place_id"),
		GooglePlaceType: o.String("google_place_type"),
	}
}

// Dice is an animated emoji that displays a random value.
type Dice struct {
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
}

// DiceFromJSON decodes a Dice.
func DiceFromJSON(o *record.Object) *Dice {
	if o == nil {
		return nil
	}
	return &Dice{Emoji: o.String("emoji"), Value: o.Int("value")}
}

// Poll is a native poll.
type Poll struct {
	ID                    string        `json:"id"`
	Question              string        `json:"question"`
	Options               []*PollOption `json:"options"`
	TotalVoterCount       int           `json:"total_voter_count"`
	IsClosed              bool          `json:"is_closed"`
	IsAnonymous           bool          `json:"is_anonymous"`
	Type                  string        `json:"type"`
	AllowsMultipleAnswers bool          `json:"allows_multiple_answers"`
	CorrectOptionID       int           `json:"correct_option_id,omitempty"`
	Explanation           string        `json:"explanation,omitempty"`
	OpenPeriod            int           `json:"open_period,omitempty"`
	CloseDate             int64         `json:"close_date,omitempty"`
}

// PollFromJSON decodes a Poll.
func PollFromJSON(o *record.Object) *Poll {
	if o == nil {
		return nil
	}
	return &Poll{
		ID:                    o.String("id"),
		Question:              o.String("question"),
		Options:               List(o.Array("options"), PollOptionFromJSON),
		TotalVoterCount:       o.Int("total_voter_count"),
		IsClosed:              o.Bool("is_closed"),
		IsAnonymous:           o.Bool("is_anonymous"),
		Type:                  o.String("type"),
		AllowsMultipleAnswers: o.Bool("allows_multiple_answers"),
		CorrectOptionID:       o.Int("correct_option_id"),
		Explanation:           o.String("explanation"),
		OpenPeriod:            o.Int("open_period"),
		CloseDate:             o.Int64("close_date"),
	}
}

// PollOption is one answer option of a poll.
type PollOption struct {
	Text       string `json:"text"`
	VoterCount int    `json:"voter_count"`
}

// PollOptionFromJSON decodes a PollOption.
func PollOptionFromJSON(o *record.Object) *PollOption {
	if o == nil {
		return nil
	}
	return &PollOption{Text: o.String("text"), VoterCount: o.Int("voter_count")}
}

// File is a file ready to be downloaded with the link returned by
// the client's FileURL method.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// FileFromJSON decodes a File.
func FileFromJSON(o *record.Object) *File {
	if o == nil {
		return nil
	}
	return &File{
		FileID:       o.String("file_id"),
		FileUniqueID: o.String("file_unique_id"),
		FileSize:     o.Int64("file_size"),
		FilePath:     o.String("file_path"),
	}
}
