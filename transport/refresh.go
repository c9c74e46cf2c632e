package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refreshResponse accepts the pair at the top level or inside the envelope data.
type refreshResponse struct {
	tokenPair
	Data *tokenPair `json:"data"`
}

func (r refreshResponse) pair() (tokenPair, bool) {
	if r.AccessToken != "" {
		return r.tokenPair, true
	}
	if r.Data != nil && r.Data.AccessToken != "" {
		return *r.Data, true
	}
	return tokenPair{}, false
}

// Refresh exchanges the stored refresh token for a new token pair and persists both.
// The refresh call itself is never refreshed or retried.
func (c *Client) Refresh(ctx context.Context) error {
	rt, err := c.creds.RefreshToken(ctx)
	if err != nil {
		return err
	}

	r, err := newRequest(http.MethodPost, c.refreshPath, refreshRequest{RefreshToken: rt}, []RequestOption{withoutRefresh()})
	if err != nil {
		return err
	}
	raw, err := c.send(ctx, r)
	if err != nil {
		return wellbeerrors.Wrapf(wellbeerrors.ErrRefreshFailed, "%s", ErrorMessage(err))
	}

	var resp refreshResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return errors.Wrap(wellbeerrors.ErrRefreshFailed, err.Error())
	}
	pair, ok := resp.pair()
	if !ok {
		return errors.Wrap(wellbeerrors.ErrRefreshFailed, "no access token in response")
	}

	if pair.RefreshToken == "" {
		return c.creds.SetAccessToken(ctx, pair.AccessToken)
	}
	return c.creds.Rotate(ctx, pair.AccessToken, pair.RefreshToken)
}
