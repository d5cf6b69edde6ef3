package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophgallery/internal/common"
	"github.com/dmitrijs2005/gophgallery/internal/netx"
)

const requestIDHeader = common.RequestIDHeaderName

// outbound runs before every request. It reads the credential at call time
// and never fails: anonymous requests go out without Authorization.
func (c *Client) outbound(req *http.Request) {
	if credential := c.session.Credential(); credential != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerToken(credential))
	} else {
		req.Header.Del(common.AuthorizationHeaderName)
	}
	req.Header.Set(requestIDHeader, c.requestID())
}

// inboundStatusError handles a response with status >= 400 and returns the
// error the caller receives.
func (c *Client) inboundStatusError(ctx context.Context, status int, body []byte, o requestOptions) error {
	respErr := &ResponseError{StatusCode: status, Message: serverMessage(body), Body: body}

	if status == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
		return respErr
	}

	if !o.quiet {
		msg := respErr.Message
		if msg == "" {
			msg = MsgRequestFailed
		}
		c.notifier.Notify(ctx, LevelError, msg)
	}
	return respErr
}

// handleUnauthorized ends the session once. Repeated 401s while the user is
// already on the login screen stay silent.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if c.nav.Current() == c.loginPath {
		return
	}

	c.notifier.Notify(ctx, LevelWarning, MsgSessionExpired)
	if err := c.session.Logout(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session after 401", "error", err)
	}
	c.nav.Redirect(ctx, c.loginPath)
}

// inboundTransportError handles failures where no response was received.
func (c *Client) inboundTransportError(ctx context.Context, err error, o requestOptions) error {
	if netx.IsCanceled(err) {
		return err
	}
	if !o.quiet {
		msg := MsgNetworkError
		if netx.IsTimeout(err) {
			msg = MsgTimeout
		}
		c.notifier.Notify(ctx, LevelError, msg)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
