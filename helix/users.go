package helix

import (
	"context"
	"strconv"

	"github.com/goliatone/go-twitch/core"
)

// Users covers the /users endpoints. It borrows the Client; it never owns it.
type Users struct {
	client *Client
}

func NewUsers(client *Client) *Users {
	return &Users{client: client}
}

// Follows lists follow relationships. Blank strings and a zero first are
// left out of the query.
func (u *Users) Follows(ctx context.Context, after string, first int, fromID string, toID string) (core.Result, error) {
	query := core.Form{}.AddIf("after", after)
	if first > 0 {
		query = query.Add("first", strconv.Itoa(first))
	}
	query = query.AddIf("from_id", fromID).AddIf("to_id", toID)
	return u.helix().RequestGet(ctx, "/users/follows", query, nil, core.AuthClientID)
}

// GetByID needs a user token; with no ids Twitch returns the token owner.
func (u *Users) GetByID(ctx context.Context, ids []string) (core.Result, error) {
	return u.helix().RequestGet(ctx, "/users", core.Form{}.AddAll("id", ids...), nil, core.AuthBearer)
}

func (u *Users) GetByLogin(ctx context.Context, logins []string) (core.Result, error) {
	return u.helix().RequestGet(ctx, "/users", core.Form{}.AddAll("login", logins...), nil, core.AuthBearer)
}

func (u *Users) helix() *Client {
	if u == nil {
		return nil
	}
	return u.client
}
