// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// InlineModeManager answers inline queries and Web App queries.
type InlineModeManager struct{ *Client }

// NewInlineModeManager returns an InlineModeManager for cfg. A zero cfg means
// the default configuration.
func NewInlineModeManager(cfg Config) (*InlineModeManager, error) {
	return newManager(cfg, (*Client).InlineMode)
}

// InlineMode returns an InlineModeManager that shares c.
func (c *Client) InlineMode() *InlineModeManager { return &InlineModeManager{c} }

// AnswerInlineQuery sends up to 50 results for an inline query. Optional
// parameters are cache_time, is_personal, next_offset and button.
func (m *InlineModeManager) AnswerInlineQuery(ctx context.Context, queryID string, results []types.InlineQueryResult, opts *params.Bag) (*Result[bool], error) {
	if results == nil {
		results = []types.InlineQueryResult{}
	}
	return call(ctx, m.Client, "answerInlineQuery", with(opts, "inline_query_id", queryID, "results", results), BoolDecoder)
}

// AnswerWebAppQuery sets the result of an interaction with a Web App and
// sends a message on behalf of the user to the chat the query came from.
func (m *InlineModeManager) AnswerWebAppQuery(ctx context.Context, queryID string, result types.InlineQueryResult, opts *params.Bag) (*Result[*types.SentWebAppMessage], error) {
	return call(ctx, m.Client, "answerWebAppQuery", with(opts, "web_app_query_id", queryID, "result", result), ObjectDecoder(types.SentWebAppMessageFromJSON))
}
