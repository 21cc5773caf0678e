package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-post-hub/internal/config"
	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

// hopByHopHeaders are meaningful for a single transport hop only and are
// never relayed (RFC 9110, section 7.6.1).
var hopByHopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// forwardedHeaderKey carries the exact header set of a forwarded request
// through the resty pipeline to restoreForwardedHeader.
type forwardedHeaderKey struct{}

type usersHTTPAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewUsersHTTPAdapter constructs the HTTP implementation of [UsersAdapter].
// It normalises adapterCfg.UsersAddress into a base URL and applies
// adapterCfg.RequestTimeout to every call.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewUsersHTTPAdapter(adapterCfg config.Adapter, logger *logger.Logger) (UsersAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.UsersAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid users service address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetPreRequestHook(restoreForwardedHeader)

	logger.Info().Str("base_url", baseURL).Msg("users adapter created")
	return &usersHTTPAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Forward implements [UsersAdapter].
func (a *usersHTTPAdapter) Forward(ctx context.Context, r *http.Request) (UpstreamResponse, error) {
	log := logger.FromContext(ctx)

	header := endToEndHeaders(r.Header)
	setTraceID(ctx, header)

	req := a.client.R().SetContext(context.WithValue(ctx, forwardedHeaderKey{}, header))
	if r.Body != nil {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return UpstreamResponse{}, fmt.Errorf("reading request body: %w", err)
		}
		if len(body) > 0 {
			req.SetBody(body)
		}
	}

	req.Header = header.Clone()
	req.QueryParam = r.URL.Query()

	resp, err := req.Execute(r.Method, r.URL.Path)
	if err != nil {
		log.Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("users service unreachable")
		return UpstreamResponse{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	respHeader := endToEndHeaders(resp.Header())
	respHeader.Del("Content-Length")

	return UpstreamResponse{
		StatusCode: resp.StatusCode(),
		Header:     respHeader,
		Body:       resp.Body(),
	}, nil
}

// ResolveCaller implements [UsersAdapter].
func (a *usersHTTPAdapter) ResolveCaller(ctx context.Context, token string) (models.User, error) {
	var user models.User

	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user)
	setTraceID(ctx, req.Header)

	resp, err := req.Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if user.ID == 0 {
		return models.User{}, fmt.Errorf("%w: users service answered without a user id", ErrUpstreamFailure)
	}

	return user, nil
}

// endToEndHeaders copies h without the hop-by-hop headers, including the
// ones the Connection header names.
func endToEndHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		return http.Header{}
	}

	for _, field := range h.Values("Connection") {
		for name := range strings.SplitSeq(field, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out.Del(name)
			}
		}
	}
	for _, name := range hopByHopHeaders {
		out.Del(name)
	}
	out.Del("Host")

	return out
}

// restoreForwardedHeader replaces the headers resty filled in on its own
// (Content-Type, Accept, User-Agent) with the inbound set of a forwarded
// request. An absent User-Agent is kept absent on the wire.
func restoreForwardedHeader(_ *resty.Client, r *http.Request) error {
	header, ok := r.Context().Value(forwardedHeaderKey{}).(http.Header)
	if !ok {
		return nil
	}

	out := header.Clone()
	if _, set := out["User-Agent"]; !set {
		out["User-Agent"] = []string{""}
	}
	r.Header = out

	return nil
}

func setTraceID(ctx context.Context, h http.Header) {
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		h.Set(utils.TraceIDHeader, traceID)
	}
}
