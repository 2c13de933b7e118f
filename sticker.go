// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// StickerManager sends stickers and manages sticker sets created by the
// bot.
type StickerManager struct{ *Client }

// NewStickerManager returns a StickerManager for cfg. A zero cfg means the
// default configuration.
func NewStickerManager(cfg Config) (*StickerManager, error) {
	return newManager(cfg, (*Client).Sticker)
}

// Sticker returns a StickerManager that shares c.
func (c *Client) Sticker() *StickerManager { return &StickerManager{c} }

// SendSticker sends a static, animated or video sticker.
func (m *StickerManager) SendSticker(ctx context.Context, chat types.Recipient, sticker types.InputFile, opts *params.Bag) (*Result[*types.Message], error) {
	return callUpload(ctx, m.Client, "sendSticker", with(opts, "chat_id", id(chat)), "sticker", sticker, messageDecoder)
}

func (m *StickerManager) GetStickerSet(ctx context.Context, name string, opts *params.Bag) (*Result[*types.StickerSet], error) {
	return call(ctx, m.Client, "getStickerSet", with(opts, "name", name), stickerSetDecoder)
}

// GetCustomEmojiStickers returns custom emoji stickers by their identifiers.
func (m *StickerManager) GetCustomEmojiStickers(ctx context.Context, ids []string, opts *params.Bag) (*Result[[]*types.Sticker], error) {
	return call(ctx, m.Client, "getCustomEmojiStickers", with(opts, "custom_emoji_ids", ids), stickersDecoder)
}

// UploadStickerFile uploads a file for later use in CreateNewStickerSet and
// AddStickerToSet. format is one of the types.StickerFormat constants.
func (m *StickerManager) UploadStickerFile(ctx context.Context, user types.Recipient, sticker types.InputFile, format string, opts *params.Bag) (*Result[*types.File], error) {
	return callUpload(ctx, m.Client, "uploadStickerFile", with(opts, "user_id", id(user), "sticker_format", format), "sticker", sticker, fileDecoder)
}

// CreateNewStickerSet creates a sticker set owned by user. The name must end
// in "_by_<bot username>".
func (m *StickerManager) CreateNewStickerSet(ctx context.Context, user types.Recipient, name, title string, stickers []*types.InputSticker, opts *params.Bag) (*Result[bool], error) {
	p := with(opts, "user_id", id(user), "name", name, "title", title, "stickers", stickers)
	return call(ctx, m.Client, "createNewStickerSet", p, BoolDecoder)
}

func (m *StickerManager) AddStickerToSet(ctx context.Context, user types.Recipient, name string, sticker *types.InputSticker, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "addStickerToSet", with(opts, "user_id", id(user), "name", name, "sticker", sticker), BoolDecoder)
}

// SetStickerPositionInSet moves a sticker in a set to a zero-based position.
func (m *StickerManager) SetStickerPositionInSet(ctx context.Context, sticker string, position int, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setStickerPositionInSet", with(opts, "sticker", sticker, "position", position), BoolDecoder)
}

func (m *StickerManager) DeleteStickerFromSet(ctx context.Context, sticker string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteStickerFromSet", with(opts, "sticker", sticker), BoolDecoder)
}

func (m *StickerManager) SetStickerEmojiList(ctx context.Context, sticker string, emoji []string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setStickerEmojiList", with(opts, "sticker", sticker, "emoji_list", emoji), BoolDecoder)
}

// SetStickerKeywords changes the search keywords of a regular or custom
// emoji sticker. Without keywords in opts they are removed.
func (m *StickerManager) SetStickerKeywords(ctx context.Context, sticker string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setStickerKeywords", with(opts, "sticker", sticker), BoolDecoder)
}

// SetStickerMaskPosition changes the mask position of a mask sticker. A nil
// position removes it.
func (m *StickerManager) SetStickerMaskPosition(ctx context.Context, sticker string, position *types.MaskPosition, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setStickerMaskPosition", with(opts, "sticker", sticker, "mask_position", position), BoolDecoder)
}

func (m *StickerManager) SetStickerSetTitle(ctx context.Context, name, title string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setStickerSetTitle", with(opts, "name", name, "title", title), BoolDecoder)
}

// SetStickerSetThumbnail sets the thumbnail of a regular or mask sticker
// set. A zero thumbnail drops the current one.
func (m *StickerManager) SetStickerSetThumbnail(ctx context.Context, name string, user types.Recipient, thumbnail types.InputFile, opts *params.Bag) (*Result[bool], error) {
	p := with(opts, "name", name, "user_id", id(user))
	if !thumbnail.IsUpload() && thumbnail.Ref() == "" {
		return call(ctx, m.Client, "setStickerSetThumbnail", p, BoolDecoder)
	}
	return callUpload(ctx, m.Client, "setStickerSetThumbnail", p, "thumbnail", thumbnail, BoolDecoder)
}

// SetCustomEmojiStickerSetThumbnail sets the thumbnail of a custom emoji
// sticker set to the custom_emoji_id in opts, or the first sticker of the
// set without one.
func (m *StickerManager) SetCustomEmojiStickerSetThumbnail(ctx context.Context, name string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setCustomEmojiStickerSetThumbnail", with(opts, "name", name), BoolDecoder)
}

func (m *StickerManager) DeleteStickerSet(ctx context.Context, name string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteStickerSet", with(opts, "name", name), BoolDecoder)
}
