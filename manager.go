// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"
	"net/http"
	"strings"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"

	jsoniter "github.com/json-iterator/go"
)

// call makes a request to method and wraps the response. Methods starting
// with "get" use GET, the rest use POST.
func call[T any](ctx context.Context, c *Client, method string, p *params.Bag, dec Decoder[T]) (*Result[T], error) {
	httpMethod := http.MethodPost
	if strings.HasPrefix(method, "get") {
		httpMethod = http.MethodGet
	}
	raw, ok, err := c.dispatch(ctx, httpMethod, method, p, nil, "")
	if err != nil {
		return nil, err
	}
	return NewResult(raw, ok, dec), nil
}

// callUpload is like call, but sends f in field with [Client.Upload].
func callUpload[T any](ctx context.Context, c *Client, method string, p *params.Bag, field string, f types.InputFile, dec Decoder[T]) (*Result[T], error) {
	raw, ok, err := c.upload(ctx, method, p, field, f)
	if err != nil {
		return nil, err
	}
	return NewResult(raw, ok, dec), nil
}

// with returns a bag holding the required parameters kv followed by the
// optional ones in opts.
func with(opts *params.Bag, kv ...any) *params.Bag {
	return params.Of(kv...).Merge(opts)
}

// id returns the parameter value of r, or nil if r is nil.
func id(r types.Recipient) any {
	if r == nil {
		return nil
	}
	return r.Recipient()
}

var (
	userDecoder        = ObjectDecoder(types.UserFromJSON)
	chatDecoder        = ObjectDecoder(types.ChatFromJSON)
	messageDecoder     = ObjectDecoder(types.MessageFromJSON)
	messagesDecoder    = ListDecoder(types.MessageFromJSON)
	memberDecoder      = ObjectDecoder(types.ChatMemberFromJSON)
	membersDecoder     = ListDecoder(types.ChatMemberFromJSON)
	inviteLinkDecoder  = ObjectDecoder(types.ChatInviteLinkFromJSON)
	fileDecoder        = ObjectDecoder(types.FileFromJSON)
	stickerSetDecoder  = ObjectDecoder(types.StickerSetFromJSON)
	stickersDecoder    = ListDecoder(types.StickerFromJSON)
	forumTopicDecoder  = ObjectDecoder(types.ForumTopicFromJSON)
	rightsDecoder      = ObjectDecoder(types.ChatAdministratorRightsFromJSON)
	menuButtonDecoder  = ObjectDecoder(types.MenuButtonFromJSON)
	commandsDecoder    = ListDecoder(types.BotCommandFromJSON)
	updatesDecoder     = ListDecoder(types.UpdateFromJSON)
	webhookInfoDecoder = ObjectDecoder(types.WebhookInfoFromJSON)
)

// editedMessageDecoder decodes the result of an edit, which is the edited
// message, or true when the message was sent via inline mode.
func editedMessageDecoder(v jsoniter.Any) (*types.Message, error) {
	if v.ValueType() == jsoniter.BoolValue {
		return nil, nil
	}
	return messageDecoder(v)
}
