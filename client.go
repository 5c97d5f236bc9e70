package freshcart

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	"github.com/RivoltaAlpha/FreshCart-sub001/api"
	"github.com/RivoltaAlpha/FreshCart-sub001/internal/flows"
	"github.com/RivoltaAlpha/FreshCart-sub001/session"
	"github.com/RivoltaAlpha/FreshCart-sub001/token"
)

// Client is the FreshCart client engine. Exactly one live session exists per
// client; the durable store is its source of truth and the reactive store a
// cache of it, both mutated only through the flows wired here.
//
// Two goroutines hitting a stale token at once will both run the refresh flow;
// that is redundant but safe, since both write the same eventual value and the
// last write wins.
type Client struct {
	config   Config
	log      *slog.Logger
	metrics  *Metrics
	validate *validator.Validate

	store    *session.Store
	reactive *session.Reactive

	auth       *api.AuthService
	orders     *api.OrderService
	products   *api.ProductService
	categories *api.CategoryService
	payments   *api.PaymentService
	stores     *api.StoreService

	deps   flows.Deps
	closed atomic.Bool
}

func newClient(
	cfg Config,
	rdb redis.UniversalClient,
	logger *slog.Logger,
	validate *validator.Validate,
) *Client {
	c := &Client{
		config:   cfg,
		log:      logger,
		validate: validate,
		store:    session.NewStore(rdb, cfg.Session.RedisPrefix),
		reactive: session.NewReactive(),
	}
	if cfg.Metrics.Enabled {
		c.metrics = NewMetrics()
	}
	return c
}

// attachAPI finishes construction once the low-level API client exists. The
// two-step wiring breaks the cycle between the API credential source and the
// client that owns the session it reads.
func (c *Client) attachAPI(apiClient *api.Client) {
	c.auth = api.NewAuthService(apiClient)
	c.orders = api.NewOrderService(apiClient)
	c.products = api.NewProductService(apiClient)
	c.categories = api.NewCategoryService(apiClient)
	c.payments = api.NewPaymentService(apiClient)
	c.stores = api.NewStoreService(apiClient)

	warn := func(msg string, args ...any) { c.log.Warn(msg, args...) }

	c.deps = flows.Deps{
		SignIn: flows.SignInDeps{
			Validate: func(creds flows.Credentials) error {
				return c.validate.Struct(api.SignInRequest{Email: creds.Email, Password: creds.Password})
			},
			Call: func(ctx context.Context, creds flows.Credentials) (session.Session, error) {
				resp, err := c.auth.SignIn(ctx, api.SignInRequest{Email: creds.Email, Password: creds.Password})
				if err != nil {
					return session.Session{}, err
				}
				return sessionFromResponse(resp), nil
			},
			Persist: c.store.Save,
			Apply:   c.reactive.SetState,
		},
		SignUp: flows.SignUpDeps{
			Validate: func(profile flows.SignUpProfile) error {
				return c.validate.Struct(signUpRequest(profile))
			},
			Call: func(ctx context.Context, profile flows.SignUpProfile) (session.Session, error) {
				resp, err := c.auth.SignUp(ctx, signUpRequest(profile))
				if err != nil {
					return session.Session{}, err
				}
				return sessionFromResponse(resp), nil
			},
			Persist: c.store.Save,
			Apply:   c.reactive.SetState,
		},
		SignOut: flows.SignOutDeps{
			CurrentSession: c.reactive.GetState,
			Call:           c.auth.SignOut,
			ClearDurable:   c.store.Clear,
			ResetReactive:  c.reactive.Reset,
			Warn:           warn,
		},
		Refresh: flows.RefreshDeps{
			CurrentSession: c.reactive.GetState,
			Call:           c.auth.Refresh,
			Persist:        c.store.Save,
			Apply:          c.reactive.SetState,
			Warn:           warn,
		},
	}
}

func sessionFromResponse(resp *api.SessionResponse) session.Session {
	user := resp.User
	user.Role = session.ParseRole(string(user.Role))
	return session.Session{User: user, Tokens: resp.Tokens}
}

func signUpRequest(profile flows.SignUpProfile) api.SignUpRequest {
	return api.SignUpRequest{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Password:  profile.Password,
		Role:      profile.Role,
	}
}

func (c *Client) ready() error {
	if c == nil || c.auth == nil {
		return ErrClientNotReady
	}
	if c.closed.Load() {
		return ErrClientNotReady
	}
	return nil
}

func (c *Client) metricInc(id MetricID) {
	c.metrics.Inc(id)
}

// Initialize seeds the reactive store from durable storage. When nothing is
// stored, the empty session stands. Call it once at startup, before any
// guarded navigation or API call.
func (c *Client) Initialize(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	sess, err := c.store.Read(ctx)
	if err != nil {
		return err
	}
	c.reactive.SetState(sess)
	return nil
}

// Close tears down the in-memory state. The durable session is left intact:
// closing the client is not a sign-out.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.closed.CompareAndSwap(false, true) {
		c.reactive.Reset()
	}
}

// SignIn exchanges credentials for a session and establishes it in both
// stores.
func (c *Client) SignIn(ctx context.Context, email, password string) (session.Session, error) {
	if err := c.ready(); err != nil {
		return session.Empty(), err
	}
	res := flows.RunSignIn(ctx, flows.Credentials{Email: email, Password: password}, c.deps.SignIn)
	return c.finishEstablish(res, MetricSignInSuccess, MetricSignInFailure)
}

// SignUpParams is the account creation payload. Role is advisory; the
// backend decides the effective role on the returned session.
type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// SignUp creates an account and establishes its session in both stores.
func (c *Client) SignUp(ctx context.Context, params SignUpParams) (session.Session, error) {
	if err := c.ready(); err != nil {
		return session.Empty(), err
	}
	profile := flows.SignUpProfile{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		Password:  params.Password,
		Role:      params.Role,
	}
	res := flows.RunSignUp(ctx, profile, c.deps.SignUp)
	return c.finishEstablish(res, MetricSignUpSuccess, MetricSignUpFailure)
}

func (c *Client) finishEstablish(res flows.SignInResult, success, failure MetricID) (session.Session, error) {
	switch res.Failure {
	case flows.SignInFailureNone:
		c.metricInc(success)
		return res.Session, nil
	case flows.SignInFailureValidation:
		c.metricInc(failure)
		return session.Empty(), fmt.Errorf("%w: %w", ErrInvalidSignIn, res.Err)
	case flows.SignInFailureInvalidSession:
		c.metricInc(failure)
		return session.Empty(), ErrInvalidSession
	default:
		c.metricInc(failure)
		return session.Empty(), res.Err
	}
}

// SignOut invalidates the remote session best-effort and always clears both
// local stores.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	err := flows.RunSignOut(ctx, c.deps.SignOut)
	c.metricInc(MetricSignOut)
	c.metricInc(MetricSessionCleared)
	return err
}

// Refresh runs one refresh attempt and returns the new access token. Any
// failure — missing credentials, network, non-2xx — tears the whole session
// down before the error surfaces; callers must treat it as a sign-out.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	res := flows.RunRefresh(ctx, c.deps.Refresh)
	switch res.Failure {
	case flows.RefreshFailureNone:
		c.metricInc(MetricRefreshSuccess)
		return res.AccessToken, nil
	case flows.RefreshFailureUnauthenticated:
		c.metricInc(MetricRefreshSkippedUnauthenticated)
		c.log.Warn("refresh skipped: no refresh credentials in state")
		c.teardown(ctx)
		return "", ErrMissingRefreshCredentials
	default:
		c.metricInc(MetricRefreshFailure)
		c.log.Warn("refresh failed, signing out", "error", res.Err)
		c.teardown(ctx)
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, res.Err)
	}
}

// teardown clears both stores without a network call.
func (c *Client) teardown(ctx context.Context) {
	if err := flows.RunTeardown(ctx, c.deps.SignOut); err != nil {
		c.log.Warn("durable session clear failed during teardown", "error", err)
	}
	c.metricInc(MetricSessionCleared)
}

// Session returns the current reactive session snapshot.
func (c *Client) Session() session.Session {
	if c == nil {
		return session.Empty()
	}
	return c.reactive.GetState()
}

// PersistedSession reads the durable store directly. Route guards use this:
// it is a synchronous local read that works before Initialize has run.
func (c *Client) PersistedSession(ctx context.Context) session.Session {
	if c == nil {
		return session.Empty()
	}
	sess, err := c.store.Read(ctx)
	if err != nil {
		c.log.Warn("durable session read failed, treating as signed out", "error", err)
		return session.Empty()
	}
	return sess
}

// Subscribe registers fn for every session replacement and returns an
// unsubscribe func.
func (c *Client) Subscribe(fn func(session.Session)) func() {
	return c.reactive.Subscribe(fn)
}

// SelectStore fetches a storefront and records it as the durable selection.
func (c *Client) SelectStore(ctx context.Context, storeID string) (*api.StoreFront, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	front, err := c.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	sel := session.SelectedStore{StoreID: front.StoreID, Name: front.Name, Address: front.Address}
	if err := c.store.SaveSelectedStore(ctx, sel); err != nil {
		return nil, err
	}
	return front, nil
}

// SelectedStore returns the durable storefront selection.
func (c *Client) SelectedStore(ctx context.Context) (session.SelectedStore, error) {
	if err := c.ready(); err != nil {
		return session.SelectedStore{}, err
	}
	sel, ok, err := c.store.ReadSelectedStore(ctx)
	if err != nil {
		return session.SelectedStore{}, err
	}
	if !ok {
		return session.SelectedStore{}, ErrNoSelectedStore
	}
	return sel, nil
}

// ClearSelectedStore drops the storefront selection.
func (c *Client) ClearSelectedStore(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}
	return c.store.ClearSelectedStore(ctx)
}

// MetricsSnapshot returns a copy of the client's counters. With metrics
// disabled all counters read zero.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

// Orders is the /orders resource client.
func (c *Client) Orders() *api.OrderService { return c.orders }

// Products is the /products resource client.
func (c *Client) Products() *api.ProductService { return c.products }

// Categories is the /categories resource client.
func (c *Client) Categories() *api.CategoryService { return c.categories }

// Payments is the /payments resource client.
func (c *Client) Payments() *api.PaymentService { return c.payments }

// Stores is the /stores resource client.
func (c *Client) Stores() *api.StoreService { return c.stores }

// credentialSource adapts the client's session state to the api package.
// Every authenticated request funnels through here: a stale access token is
// refreshed on demand, and a failed refresh fails the request closed with the
// session already torn down.
type credentialSource struct {
	client *Client
}

func (s *credentialSource) AccessToken(ctx context.Context) (string, error) {
	c := s.client
	sess := c.reactive.GetState()
	if !sess.Authenticated || sess.Tokens.AccessToken == "" {
		return "", ErrUnauthenticated
	}

	if !token.IsStale(sess.Tokens.AccessToken) {
		return sess.Tokens.AccessToken, nil
	}

	c.metricInc(MetricStaleTokenDetected)
	c.log.Debug("access token stale, refreshing", "user_id", sess.User.UserID)
	return c.Refresh(ctx)
}
