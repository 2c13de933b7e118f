// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package types

import "go.astrophena.name/botapi/record"

// Sticker types.
const (
	StickerRegular     = "regular"
	StickerMask        = "mask"
	StickerCustomEmoji = "custom_emoji"
)

// Sticker formats.
const (
	StickerFormatStatic   = "static"
	StickerFormatAnimated = "animated"
	StickerFormatVideo    = "video"
)

// Sticker is a sticker.
type Sticker struct {
	FileID           string        `json:"file_id"`
	FileUniqueID     string        `json:"file_unique_id"`
	Type             string        `json:"type"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	IsAnimated       bool          `json:"is_animated"`
	IsVideo          bool          `json:"is_video"`
	Thumbnail        *PhotoSize    `json:"thumbnail,omitempty"`
	Emoji            string        `json:"emoji,omitempty"`
	SetName          string        `json:"set_name,omitempty"`
	MaskPosition     *MaskPosition `json:"mask_position,omitempty"`
	CustomEmojiID    string        `json:"custom_emoji_id,omitempty"`
	NeedsRepainting  bool          `json:"needs_repainting,omitempty"`
	FileSize         int64         `json:"file_size,omitempty"`
	PremiumAnimation *File         `json:"premium_animation,omitempty"`
}

// StickerFromJSON decodes a Sticker.
func StickerFromJSON(o *record.Object) *Sticker {
	if o == nil {
		return nil
	}
	return &Sticker{
		FileID:           o.String("file_id"),
		FileUniqueID:     o.String("file_unique_id"),
		Type:             o.String("type"),
		Width:            o.Int("width"),
		Height:           o.Int("height"),
		IsAnimated:       o.Bool("is_animated"),
		IsVideo:          o.Bool("is_video"),
		Thumbnail:        PhotoSizeFromJSON(o.Object("thumbnail")),
		Emoji:            o.String("emoji"),
		SetName:          o.String("set_name"),
		MaskPosition:     MaskPositionFromJSON(o.Object("mask_position")),
		CustomEmojiID:    o.String("custom_emoji_id"),
		NeedsRepainting:  o.Bool("needs_repainting"),
		FileSize:         o.Int64("file_size"),
		PremiumAnimation: FileFromJSON(o.Object("premium_animation")),
	}
}

// StickerSet is a named set of stickers.
type StickerSet struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	StickerType string     `json:"sticker_type"`
	Stickers    []*Sticker `json:"stickers"`
	Thumbnail   *PhotoSize `json:"thumbnail,omitempty"`
}

// StickerSetFromJSON decodes a StickerSet.
func StickerSetFromJSON(o *record.Object) *StickerSet {
	if o == nil {
		return nil
	}
	return &StickerSet{
		Name:        o.String("name"),
		Title:       o.String("title"),
		StickerType: o.String("sticker_type"),
		Stickers:    List(o.Array("stickers"), StickerFromJSON),
		Thumbnail:   PhotoSizeFromJSON(o.Object("thumbnail")),
	}
}

// Mask position points.
const (
	MaskForehead = "forehead"
	MaskEyes     = "eyes"
	MaskMouth    = "mouth"
	MaskChin     = "chin"
)

// MaskPosition is the position on faces where a mask is placed by default.
type MaskPosition struct {
	Point  string  `json:"point"`
	XShift float64 `json:"x_shift"`
	YShift float64 `json:"y_shift"`
	Scale  float64 `json:"scale"`
}

// MaskPositionFromJSON decodes a MaskPosition.
func MaskPositionFromJSON(o *record.Object) *MaskPosition {
	if o == nil {
		return nil
	}
	return &MaskPosition{
		Point:  o.String("point"),
		XShift: o.Float64("x_shift"),
		YShift: o.Float64("y_shift"),
		Scale:  o.Float64("scale"),
	}
}

// String returns the JSON form of p, as sent in the mask_position parameter.
func (p *MaskPosition) String() string { return marshal(p) }

// InputSticker describes a sticker to be added to a sticker set. The sticker
// itself must be a file_id or an HTTP URL; to upload a new file use
// uploadStickerFile first.
type InputSticker struct {
	Sticker      string        `json:"sticker"`
	Format       string        `json:"format,omitempty"`
	EmojiList    []string      `json:"emoji_list"`
	MaskPosition *MaskPosition `json:"mask_position,omitempty"`
	Keywords     []string      `json:"keywords,omitempty"`
}

// String returns the JSON form of s.
func (s *InputSticker) String() string { return marshal(s) }
