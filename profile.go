// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"context"

	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/types"
)

// ProfileManager manages the bot's own account: its commands, names,
// descriptions and menu button.
type ProfileManager struct{ *Client }

// NewProfileManager returns a ProfileManager for cfg. A zero cfg means the
// default configuration.
func NewProfileManager(cfg Config) (*ProfileManager, error) {
	return newManager(cfg, (*Client).Profile)
}

// Profile returns a ProfileManager that shares c.
func (c *Client) Profile() *ProfileManager { return &ProfileManager{c} }

var (
	botNameDecoder             = ObjectDecoder(types.BotNameFromJSON)
	botDescriptionDecoder      = ObjectDecoder(types.BotDescriptionFromJSON)
	botShortDescriptionDecoder = ObjectDecoder(types.BotShortDescriptionFromJSON)
	profilePhotosDecoder       = ObjectDecoder(types.UserProfilePhotosFromJSON)
)

// GetMe returns basic information about the bot.
func (m *ProfileManager) GetMe(ctx context.Context, opts *params.Bag) (*Result[*types.User], error) {
	return call(ctx, m.Client, "getMe", with(opts), userDecoder)
}

// LogOut logs the bot out from the cloud Bot API server.
func (m *ProfileManager) LogOut(ctx context.Context, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "logOut", with(opts), BoolDecoder)
}

// Close closes the bot instance on a local Bot API server before moving it
// to another one.
func (m *ProfileManager) Close(ctx context.Context, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "close", with(opts), BoolDecoder)
}

// SetMyCommands changes the list of the bot's commands. Optional parameters
// are scope ([types.BotCommandScope]) and language_code.
func (m *ProfileManager) SetMyCommands(ctx context.Context, commands []*types.BotCommand, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setMyCommands", with(opts, "commands", commands), BoolDecoder)
}

func (m *ProfileManager) DeleteMyCommands(ctx context.Context, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "deleteMyCommands", with(opts), BoolDecoder)
}

func (m *ProfileManager) GetMyCommands(ctx context.Context, opts *params.Bag) (*Result[[]*types.BotCommand], error) {
	return call(ctx, m.Client, "getMyCommands", with(opts), commandsDecoder)
}

// SetMyName changes the bot's name. An empty name removes the dedicated name
// for the language_code in opts.
func (m *ProfileManager) SetMyName(ctx context.Context, name string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setMyName", with(opts, "name", name), BoolDecoder)
}

func (m *ProfileManager) GetMyName(ctx context.Context, opts *params.Bag) (*Result[*types.BotName], error) {
	return call(ctx, m.Client, "getMyName", with(opts), botNameDecoder)
}

// SetMyDescription changes the text shown in an empty chat with the bot.
func (m *ProfileManager) SetMyDescription(ctx context.Context, description string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setMyDescription", with(opts, "description", description), BoolDecoder)
}

func (m *ProfileManager) GetMyDescription(ctx context.Context, opts *params.Bag) (*Result[*types.BotDescription], error) {
	return call(ctx, m.Client, "getMyDescription", with(opts), botDescriptionDecoder)
}

// SetMyShortDescription changes the text shown on the bot's profile page.
func (m *ProfileManager) SetMyShortDescription(ctx context.Context, description string, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setMyShortDescription", with(opts, "short_description", description), BoolDecoder)
}

func (m *ProfileManager) GetMyShortDescription(ctx context.Context, opts *params.Bag) (*Result[*types.BotShortDescription], error) {
	return call(ctx, m.Client, "getMyShortDescription", with(opts), botShortDescriptionDecoder)
}

// SetChatMenuButton changes the menu button of a private chat, or the
// default one when opts has no chat_id.
func (m *ProfileManager) SetChatMenuButton(ctx context.Context, button *types.MenuButton, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setChatMenuButton", with(opts, "menu_button", button), BoolDecoder)
}

func (m *ProfileManager) GetChatMenuButton(ctx context.Context, opts *params.Bag) (*Result[*types.MenuButton], error) {
	return call(ctx, m.Client, "getChatMenuButton", with(opts), menuButtonDecoder)
}

// SetMyDefaultAdministratorRights changes the rights requested when the bot
// is added as an administrator. Nil rights clear them.
func (m *ProfileManager) SetMyDefaultAdministratorRights(ctx context.Context, rights *types.ChatAdministratorRights, opts *params.Bag) (*Result[bool], error) {
	return call(ctx, m.Client, "setMyDefaultAdministratorRights", with(opts, "rights", rights), BoolDecoder)
}

func (m *ProfileManager) GetMyDefaultAdministratorRights(ctx context.Context, opts *params.Bag) (*Result[*types.ChatAdministratorRights], error) {
	return call(ctx, m.Client, "getMyDefaultAdministratorRights", with(opts), rightsDecoder)
}

// GetUserProfilePhotos returns the profile pictures of user.
func (m *ProfileManager) GetUserProfilePhotos(ctx context.Context, user types.Recipient, opts *params.Bag) (*Result[*types.UserProfilePhotos], error) {
	return call(ctx, m.Client, "getUserProfilePhotos", with(opts, "user_id", id(user)), profilePhotosDecoder)
}
