package session

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/services"
	"github.com/desertthunder/flick/internal/shared"
	"golang.org/x/oauth2"
)

// Policy implements [services.SessionPolicy]: it attaches the bearer
// credential to outgoing requests and reacts to authorization failures by
// tearing the session down and signaling the signed-out hook.
type Policy struct {
	store     *Store
	signedOut func()
	logger    *log.Logger
}

// NewPolicy creates a policy over store. signedOut is invoked whenever the
// session is forced back to the anonymous state: an unauthenticated attempt
// at an authenticated resource, or an observed 401. It may be nil.
func NewPolicy(store *Store, signedOut func(), logger *log.Logger) *Policy {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Policy{store: store, signedOut: signedOut, logger: logger}
}

// SetSignedOutHook replaces the signed-out hook. The TUI uses this to route
// to its anonymous entry view instead of the CLI's plain message.
func (p *Policy) SetSignedOutHook(fn func()) {
	p.signedOut = fn
}

// tokenSource adapts the store to [oauth2.TokenSource], reading the current
// token at request time so one client survives login and logout.
type tokenSource struct {
	store *Store
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	token, _ := s.store.Current()
	if token == "" {
		return nil, shared.ErrNotLoggedIn
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// TokenSource returns an [oauth2.TokenSource] over the live session.
func (p *Policy) TokenSource() oauth2.TokenSource {
	return tokenSource{store: p.store}
}

// transport attaches the bearer header when a token is present. With no
// session the request proceeds unauthenticated; whether that is valid is
// the caller's decision via [Policy.Authorize].
type transport struct {
	source oauth2.TokenSource
	base   http.RoundTripper
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.source.Token()
	if err != nil {
		return t.base.RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	token.SetAuthHeader(authed)
	return t.base.RoundTrip(authed)
}

// Client builds an [http.Client] whose transport injects the current
// session's bearer credential. base may be nil for [http.DefaultClient]
// semantics.
func (p *Policy) Client(base *http.Client) *http.Client {
	if base == nil {
		base = &http.Client{}
	}

	rt := base.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &http.Client{
		Transport:     &transport{source: p.TokenSource(), base: rt},
		Timeout:       base.Timeout,
		CheckRedirect: base.CheckRedirect,
		Jar:           base.Jar,
	}
}

// Authorize fails authenticated operations that have no session. The
// signed-out hook fires because this is a fatal local state requiring
// navigation to the anonymous entry view, not a retryable condition.
func (p *Policy) Authorize(ctx context.Context) error {
	if p.store.Authenticated() {
		return nil
	}

	p.logger.Debug("unauthenticated access to authenticated resource")
	if p.signedOut != nil {
		p.signedOut()
	}
	return shared.ErrNotLoggedIn
}

// OnResponse classifies a transport result. A 401 unconditionally clears
// the session and fires the signed-out hook, exactly once per failing
// request; other failures pass through without session mutation.
func (p *Policy) OnResponse(ctx context.Context, resp *services.APIResponse, err error) services.Outcome {
	out := services.Classify(resp, err)

	switch out.Kind {
	case services.OutcomeUnauthorized:
		p.logger.Info("session rejected by backend, signing out")
		if clearErr := p.store.Clear(ctx); clearErr != nil {
			p.logger.Error("failed to clear session", "error", clearErr)
		}
		if p.signedOut != nil {
			p.signedOut()
		}
	case services.OutcomeServerError:
		p.logger.Warn("transient backend failure", "status", out.Status, "message", out.Message)
	}

	return out
}
