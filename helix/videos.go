package helix

import (
	"context"

	"github.com/goliatone/go-twitch/core"
)

type Videos struct {
	client *Client
}

func NewVideos(client *Client) *Videos {
	return &Videos{client: client}
}

func (v *Videos) GetByID(ctx context.Context, ids []string) (core.Result, error) {
	return v.helix().RequestGet(ctx, "/videos", core.Form{}.AddAll("id", ids...), nil, core.AuthClientID)
}

// GetByUserID appends filter (first, after, language, period, sort, type...)
// after user_id, in the order given.
func (v *Videos) GetByUserID(ctx context.Context, id string, filter core.Form) (core.Result, error) {
	query := core.Form{}.Add("user_id", id).Append(filter)
	return v.helix().RequestGet(ctx, "/videos", query, nil, core.AuthClientID)
}

func (v *Videos) GetByGameID(ctx context.Context, id string, filter core.Form) (core.Result, error) {
	query := core.Form{}.Add("game_id", id).Append(filter)
	return v.helix().RequestGet(ctx, "/videos", query, nil, core.AuthClientID)
}

func (v *Videos) helix() *Client {
	if v == nil {
		return nil
	}
	return v.client
}
