// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import (
	"go.astrophena.name/botapi/record"

	"github.com/google/uuid"
)

// InlineQueryResult is one result of an inline query. The concrete types are
// the InlineQueryResult* structs of this package.
type InlineQueryResult interface {
	// ResultType returns the value of the type field.
	ResultType() string
	// ResultID returns the unique identifier of the result.
	ResultID() string
}

// NewResultID returns a random identifier for an inline query result.
func NewResultID() string { return uuid.NewString() }

// InputTextMessageContent is the text message sent as the result of an inline
// query.
type InputTextMessageContent struct {
	MessageText           string           `json:"message_text"`
	ParseMode             string           `json:"parse_mode,omitempty"`
	Entities              []*MessageEntity `json:"entities,omitempty"`
	DisableWebPagePreview bool             `json:"disable_web_page_preview,omitempty"`
}

// InputTextMessageContentFromJSON decodes an InputTextMessageContent.
func InputTextMessageContentFromJSON(o *record.Object) *InputTextMessageContent {
	if o == nil || !o.Has("message_text") {
		return nil
	}
	return &InputTextMessageContent{
		MessageText:           o.String("message_text"),
		ParseMode:             o.String("parse_mode"),
		Entities:              List(o.Array("entities"), MessageEntityFromJSON),
		DisableWebPagePreview: o.Bool("disable_web_page_preview"),
	}
}

// InlineQueryResultArticle is a link to an article or web page.
type InlineQueryResultArticle struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	URL                 string                   `json:"url,omitempty"`
	HideURL             bool                     `json:"hide_url,omitempty"`
	Description         string                   `json:"description,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url,omitempty"`
}

// NewInlineQueryResultArticle returns an article result with a generated ID
// that sends text when chosen.
func NewInlineQueryResultArticle(title, text string) *InlineQueryResultArticle {
	return &InlineQueryResultArticle{
		Type:                "article",
		ID:                  NewResultID(),
		Title:               title,
		InputMessageContent: &InputTextMessageContent{MessageText: text},
	}
}

func (r *InlineQueryResultArticle) ResultType() string { return "article" }
func (r *InlineQueryResultArticle) ResultID() string   { return r.ID }

// InlineQueryResultPhoto is a link to a photo.
type InlineQueryResultPhoto struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	PhotoURL            string                   `json:"photo_url"`
	ThumbnailURL        string                   `json:"thumbnail_url"`
	PhotoWidth          int                      `json:"photo_width,omitempty"`
	PhotoHeight         int                      `json:"photo_height,omitempty"`
	Title               string                   `json:"title,omitempty"`
	Description         string                   `json:"description,omitempty"`
	Caption             string                   `json:"caption,omitempty"`
	ParseMode           string                   `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
}

// NewInlineQueryResultPhoto returns a photo result with a generated ID.
func NewInlineQueryResultPhoto(photoURL, thumbnailURL string) *InlineQueryResultPhoto {
	return &InlineQueryResultPhoto{Type: "photo", ID: NewResultID(), PhotoURL: photoURL, ThumbnailURL: thumbnailURL}
}

func (r *InlineQueryResultPhoto) ResultType() string { return "photo" }
func (r *InlineQueryResultPhoto) ResultID() string   { return r.ID }

// InlineQueryResultGif is a link to an animated GIF file.
type InlineQueryResultGif struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	GifURL              string                   `json:"gif_url"`
	GifWidth            int                      `json:"gif_width,omitempty"`
	GifHeight           int                      `json:"gif_height,omitempty"`
	GifDuration         int                      `json:"gif_duration,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url"`
	Title               string                   `json:"title,omitempty"`
	Caption             string                   `json:"caption,omitempty"`
	ParseMode           string                   `json:"parse_mode,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
}

// NewInlineQueryResultGif returns a GIF result with a generated ID.
func NewInlineQueryResultGif(gifURL, thumbnailURL string) *InlineQueryResultGif {
	return &InlineQueryResultGif{Type: "gif", ID: NewResultID(), GifURL: gifURL, ThumbnailURL: thumbnailURL}
}

func (r *InlineQueryResultGif) ResultType() string { return "gif" }
func (r *InlineQueryResultGif) ResultID() string   { return r.ID }

// InlineQueryResultVideo is a link to a page containing an embedded video
// player or a video file.
type InlineQueryResultVideo struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	VideoURL            string                   `json:"video_url"`
	MimeType            string                   `json:"mime_type"`
	ThumbnailURL        string                   `json:"thumbnail_url"`
	Title               string                   `json:"title"`
	Caption             string                   `json:"caption,omitempty"`
	ParseMode           string                   `json:"parse_mode,omitempty"`
	VideoWidth          int                      `json:"video_width,omitempty"`
	VideoHeight         int                      `json:"video_height,omitempty"`
	VideoDuration       int                      `json:"video_duration,omitempty"`
	Description         string                   `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
}

// NewInlineQueryResultVideo returns a video result with a generated ID.
func NewInlineQueryResultVideo(videoURL, mimeType, thumbnailURL, title string) *InlineQueryResultVideo {
	return &InlineQueryResultVideo{
		Type:         "video",
		ID:           NewResultID(),
		VideoURL:     videoURL,
		MimeType:     mimeType,
		ThumbnailURL: thumbnailURL,
		Title:        title,
	}
}

func (r *InlineQueryResultVideo) ResultType() string { return "video" }
func (r *InlineQueryResultVideo) ResultID() string   { return r.ID }

// InlineQueryResultAudio is a link to an MP3 audio file.
type InlineQueryResultAudio struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	AudioURL            string                   `json:"audio_url"`
	Title               string                   `json:"title"`
	Caption             string                   `json:"caption,omitempty"`
	ParseMode           string                   `json:"parse_mode,omitempty"`
	Performer           string                   `json:"performer,omitempty"`
	AudioDuration       int                      `json:"audio_duration,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
}

// NewInlineQueryResultAudio returns an audio result with a generated ID.
func NewInlineQueryResultAudio(audioURL, title string) *InlineQueryResultAudio {
	return &InlineQueryResultAudio{Type: "audio", ID: NewResultID(), AudioURL: audioURL, Title: title}
}

func (r *InlineQueryResultAudio) ResultType() string { return "audio" }
func (r *InlineQueryResultAudio) ResultID() string   { return r.ID }

// InlineQueryResultDocument is a link to a PDF or ZIP file.
type InlineQueryResultDocument struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	Title               string                   `json:"title"`
	Caption             string                   `json:"caption,omitempty"`
	ParseMode           string                   `json:"parse_mode,omitempty"`
	DocumentURL         string                   `json:"document_url"`
	MimeType            string                   `json:"mime_type"`
	Description         string                   `json:"description,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url,omitempty"`
}

// NewInlineQueryResultDocument returns a document result with a generated
// ID.
func NewInlineQueryResultDocument(title, documentURL, mimeType string) *InlineQueryResultDocument {
	return &InlineQueryResultDocument{Type: "document", ID: NewResultID(), Title: title, DocumentURL: documentURL, MimeType: mimeType}
}

func (r *InlineQueryResultDocument) ResultType() string { return "document" }
func (r *InlineQueryResultDocument) ResultID() string   { return r.ID }

// InlineQueryResultLocation is a location on a map.
type InlineQueryResultLocation struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	Latitude            float64                  `json:"latitude"`
	Longitude           float64                  `json:"longitude"`
	Title               string                   `json:"title"`
	HorizontalAccuracy  float64                  `json:"horizontal_accuracy,omitempty"`
	LivePeriod          int                      `json:"live_period,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url,omitempty"`
}

// NewInlineQueryResultLocation returns a location result with a generated
// ID.
func NewInlineQueryResultLocation(latitude, longitude float64, title string) *InlineQueryResultLocation {
	return &InlineQueryResultLocation{Type: "location", ID: NewResultID(), Latitude: latitude, Longitude: longitude, Title: title}
}

func (r *InlineQueryResultLocation) ResultType() string { return "location" }
func (r *InlineQueryResultLocation) ResultID() string   { return r.ID }

// InlineQueryResultVenue is a venue.
type InlineQueryResultVenue struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	Latitude            float64                  `json:"latitude"`
	Longitude           float64                  `json:"longitude"`
	Title               string                   `json:"title"`
	Address             string                   `json:"address"`
	FoursquareID        string                   `json:"foursquare_id,omitempty"`
	GooglePlaceID       string                   `json:"google_place_id,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url,omitempty"`
}

// NewInlineQueryResultVenue returns a venue result with a generated ID.
func NewInlineQueryResultVenue(latitude, longitude float64, title, address string) *InlineQueryResultVenue {
	return &InlineQueryResultVenue{
		Type:      "venue",
		ID:        NewResultID(),
		Latitude:  latitude,
		Longitude: longitude,
		Title:     title,
		Address:   address,
	}
}

func (r *InlineQueryResultVenue) ResultType() string { return "venue" }
func (r *InlineQueryResultVenue) ResultID() string   { return r.ID }

// InlineQueryResultContact is a contact with a phone number.
type InlineQueryResultContact struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	PhoneNumber         string                   `json:"phone_number"`
	FirstName           string                   `json:"first_name"`
	LastName            string                   `json:"last_name,omitempty"`
	VCard               string                   `json:"vcard,omitempty"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
	ThumbnailURL        string                   `json:"thumbnail_url,omitempty"`
}

// NewInlineQueryResultContact returns a contact result with a generated ID.
func NewInlineQueryResultContact(phoneNumber, firstName string) *InlineQueryResultContact {
	return &InlineQueryResultContact{Type: "contact", ID: NewResultID(), PhoneNumber: phoneNumber, FirstName: firstName}
}

func (r *InlineQueryResultContact) ResultType() string { return "contact" }
func (r *InlineQueryResultContact) ResultID() string   { return r.ID }

// InlineQueryResultCachedSticker is a link to a sticker stored on Telegram
// servers.
type InlineQueryResultCachedSticker struct {
	Type                string                   `json:"type"`
	ID                  string                   `json:"id"`
	StickerFileID       string                   `json:"sticker_file_id"`
	ReplyMarkup         *InlineKeyboardMarkup    `json:"reply_markup,omitempty"`
	InputMessageContent *InputTextMessageContent `json:"input_message_content,omitempty"`
}

// NewInlineQueryResultCachedSticker returns a cached sticker result with a
// generated ID.
func NewInlineQueryResultCachedSticker(stickerFileID string) *InlineQueryResultCachedSticker {
	return &InlineQueryResultCachedSticker{Type: "sticker", ID: NewResultID(), StickerFileID: stickerFileID}
}

func (r *InlineQueryResultCachedSticker) ResultType() string { return "sticker" }
func (r *InlineQueryResultCachedSticker) ResultID() string   { return r.ID }

// InlineQueryResultFromJSON decodes an inline query result, choosing the
// concrete type by the type field. It returns nil for nil input and for
// unknown result types.
func InlineQueryResultFromJSON(o *record.Object) InlineQueryResult {
	if o == nil {
		return nil
	}
	var (
		typ     = o.String("type")
		id      = o.String("id")
		markup  = InlineKeyboardMarkupFromJSON(o.Object("reply_markup"))
		content = InputTextMessageContentFromJSON(o.Object("input_message_content"))
	)
	switch typ {
	case "article":
		return &InlineQueryResultArticle{
			Type:                typ,
			ID:                  id,
			Title:               o.String("title"),
			InputMessageContent: content,
			ReplyMarkup:         markup,
			URL:                 o.String("url"),
			HideURL:             o.Bool("hide_url"),
			Description:         o.String("description"),
			ThumbnailURL:        o.String("thumbnail_url"),
		}
	case "photo":
		return &InlineQueryResultPhoto{
			Type:                typ,
			ID:                  id,
			PhotoURL:            o.String("photo_url"),
			ThumbnailURL:        o.String("thumbnail_url"),
			PhotoWidth:          o.IntOr("photo_width", 0),
			PhotoHeight:         o.IntOr("photo_height", 0),
			Title:               o.String("title"),
			Description:         o.String("description"),
			Caption:             o.String("caption"),
			ParseMode:           o.String("parse_mode"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
		}
	case "gif":
		return &InlineQueryResultGif{
			Type:                typ,
			ID:                  id,
			GifURL:              o.String("gif_url"),
			GifWidth:            o.IntOr("gif_width", 0),
			GifHeight:           o.IntOr("gif_height", 0),
			GifDuration:         o.IntOr("gif_duration", 0),
			ThumbnailURL:        o.String("thumbnail_url"),
			Title:               o.String("title"),
			Caption:             o.String("caption"),
			ParseMode:           o.String("parse_mode"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
		}
	case "video":
		return &InlineQueryResultVideo{
			Type:                typ,
			ID:                  id,
			VideoURL:            o.String("video_url"),
			MimeType:            o.String("mime_type"),
			ThumbnailURL:        o.String("thumbnail_url"),
			Title:               o.String("title"),
			Caption:             o.String("caption"),
			ParseMode:           o.String("parse_mode"),
			VideoWidth:          o.IntOr("video_width", 0),
			VideoHeight:         o.IntOr("video_height", 0),
			VideoDuration:       o.IntOr("video_duration", 0),
			Description:         o.String("description"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
		}
	case "audio":
		return &InlineQueryResultAudio{
			Type:                typ,
			ID:                  id,
			AudioURL:            o.String("audio_url"),
			Title:               o.String("title"),
			Caption:             o.String("caption"),
			ParseMode:           o.String("parse_mode"),
			Performer:           o.String("performer"),
			AudioDuration:       o.IntOr("audio_duration", 0),
			ReplyMarkup:         markup,
			InputMessageContent: content,
		}
	case "document":
		return &InlineQueryResultDocument{
			Type:                typ,
			ID:                  id,
			Title:               o.String("title"),
			Caption:             o.String("caption"),
			ParseMode:           o.String("parse_mode"),
			DocumentURL:         o.String("document_url"),
			MimeType:            o.String("mime_type"),
			Description:         o.String("description"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
			ThumbnailURL:        o.String("thumbnail_url"),
		}
	case "location":
		return &InlineQueryResultLocation{
			Type:                typ,
			ID:                  id,
			Latitude:            o.Float64("latitude"),
			Longitude:           o.Float64("longitude"),
			Title:               o.String("title"),
			HorizontalAccuracy:  o.Float64Or("horizontal_accuracy", 0),
			LivePeriod:          o.IntOr("live_period", 0),
			ReplyMarkup:         markup,
			InputMessageContent: content,
			ThumbnailURL:        o.String("thumbnail_url"),
		}
	case "venue":
		return &InlineQueryResultVenue{
			Type:                typ,
			ID:                  id,
			Latitude:            o.Float64("latitude"),
			Longitude:           o.Float64("longitude"),
			Title:               o.String("title"),
			Address:             o.String("address"),
			FoursquareID:        o.String("foursquare_id"),
			GooglePlaceID:       o.String("google_place_id"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
			ThumbnailURL:        o.String("thumbnail_url"),
		}
	case "contact":
		return &InlineQueryResultContact{
			Type:                typ,
			ID:                  id,
			PhoneNumber:         o.String("phone_number"),
			FirstName:           o.String("first_name"),
			LastName:            o.String("last_name"),
			VCard:               o.String("vcard"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
			ThumbnailURL:        o.String("thumbnail_url"),
		}
	case "sticker":
		return &InlineQueryResultCachedSticker{
			Type:                typ,
			ID:                  id,
			StickerFileID:       o.String("sticker_file_id"),
			ReplyMarkup:         markup,
			InputMessageContent: content,
		}
	}
	return nil
}
