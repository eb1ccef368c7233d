package backend

import (
	"context"
	"net/http"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/users"
)

func (c *Client) FetchProfile(ctx context.Context) (users.Profile, error) {
	var out users.Profile
	err := c.do(ctx, "fetch_profile", http.MethodGet, "/api/core/profile/", nil, &out)
	return out, err
}
