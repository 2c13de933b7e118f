// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// BotManager receives updates and manages the webhook of a bot.
type BotManager struct{ *Client }

// NewBotManager returns a BotManager for cfg. A zero cfg means the default
// configuration.
func NewBotManager(cfg Config) (*BotManager, error) {
	return newManager(cfg, (*Client).Bot)
}

// Bot returns a BotManager that shares c.
func (c *Client) Bot() *BotManager { return &BotManager{c} }

// GetUpdates receives incoming updates using long polling. Optional
// parameters are offset, limit, timeout and allowed_updates.
func (m *BotManager) GetUpdates(ctx context.Context, opts *params.Bag) (*Result[[]*types.Update], error) {
	return call(ctx, m.Client, "getUpdates", with(opts), updatesDecoder)
}

// SetWebhook specifies a URL to receive incoming updates. A certificate in
// opts must be a file_id or URL; use [BotManager.SetWebhookCertificate] to
// upload one.
func (m *BotManager) SetWebhook(ctx context.Context, url string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setWebhook", with(opts, "url", url), BoolDecoder)
}

// SetWebhookCertificate is like SetWebhook, but uploads a self-signed
// public key certificate.
func (m *BotManager) SetWebhookCertificate(ctx context.Context, url string, cert types.InputFile, opts *params.Bag) (*Result[bool], error) {
	return callUpload(ctx, m.Client, "setWebhook", with(opts, "url", url), "certificate", cert, BoolDecoder)
}

// DeleteWebhook removes the webhook integration.
func (m *BotManager) DeleteWebhook(ctx context.Context, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteWebhook", with(opts), BoolDecoder)
}

// GetWebhookInfo returns the current webhook status.
func (m *BotManager) GetWebhookInfo(ctx context.Context, opts *params.Bag) (*Result[*types.WebhookInfo], error) {
	return call(ctx, m.Client, "getWebhookInfo", with(opts), webhookInfoDecoder)
}

// AnswerCallbackQuery sends an answer to a callback query sent from an
// inline keyboard.
func (m *BotManager) AnswerCallbackQuery(ctx context.Context, queryID string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "answerCallbackQuery", with(opts, "callback_query_id", queryID), BoolDecoder)
}

// GetFile returns basic information about a file and prepares it for
// downloading. See [Client.FileURL] and [Client.Download].
func (m *BotManager) GetFile(ctx context.Context, fileID string, opts *params.Bag) (*Result[*types.File], error) {
	return call(ctx, m.Client, "getFile", with(opts, "file_id", fileID), fileDecoder)
}
