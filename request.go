package camdram

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cccteam/camdram/internal/util"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
)

// AuthenticatedData performs an authenticated GET of path, relative to the domain, and returns the parsed body.
// A response with a status of 400 or above fails with a *ClientError and a body carrying an "error" key
// fails with an *OAuthError.
func (p *Provider) AuthenticatedData(ctx context.Context, path string, token *oauth2.Token) (any, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Provider.AuthenticatedData()")
	defer span.End()

	data, err := p.fetch(ctx, p.domain+path, token)
	if err != nil {
		return nil, errors.Wrap(err, "Provider.fetch()")
	}

	return data, nil
}

// AuthorisedShows returns the shows the token's user is authorised to administer
func (p *Provider) AuthorisedShows(ctx context.Context, token *oauth2.Token) (any, error) {
	data, err := p.AuthenticatedData(ctx, showsPath, token)
	if err != nil {
		return nil, errors.Wrap(err, "Provider.AuthenticatedData()")
	}

	return data, nil
}

// AuthorisedOrganisations returns the societies and venues the token's user is authorised to administer
func (p *Provider) AuthorisedOrganisations(ctx context.Context, token *oauth2.Token) (any, error) {
	data, err := p.AuthenticatedData(ctx, organisationsPath, token)
	if err != nil {
		return nil, errors.Wrap(err, "Provider.AuthenticatedData()")
	}

	return data, nil
}

// AuthenticatedRequest returns a request for uri that asks for a JSON response.
// The bearer credential is attached by the engine's client when the request is sent.
func (p *Provider) AuthenticatedRequest(ctx context.Context, method, uri string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext()")
	}
	req.Header.Set("Accept", acceptHeaderValue)

	return req, nil
}

// CheckResponse inspects a response and its parsed body for failure signals.
// A nil response is reported as an error rather than treated as success.
func (p *Provider) CheckResponse(resp *http.Response, data any) error {
	if resp == nil {
		return errors.New("nil response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &ClientError{StatusCode: resp.StatusCode, Body: data}
	}

	body, ok := data.(map[string]any)
	if !ok {
		return nil
	}

	if code, ok := util.ValueByKey(body, "error"); ok && code != nil {
		description, _ := util.ValueByKey(body, "error_description")

		return &OAuthError{
			StatusCode:  resp.StatusCode,
			Code:        stringValue(code),
			Description: stringValue(description),
			Body:        body,
		}
	}

	return nil
}

func (p *Provider) fetch(ctx context.Context, uri string, token *oauth2.Token) (any, error) {
	if token == nil {
		return nil, errors.New("access token is required")
	}

	req, err := p.AuthenticatedRequest(ctx, http.MethodGet, uri)
	if err != nil {
		return nil, errors.Wrap(err, "Provider.AuthenticatedRequest()")
	}

	resp, err := p.config.Client(p.engineContext(ctx), token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http.Client.Do()")
	}
	defer resp.Body.Close()

	data, err := parseResponse(resp)
	if err != nil {
		return nil, errors.Wrap(err, "parseResponse()")
	}

	if err := p.CheckResponse(resp, data); err != nil {
		return nil, err
	}

	return data, nil
}

// parseResponse decodes a form-encoded or JSON body. An empty body parses to nil.
func parseResponse(resp *http.Response) (any, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "io.ReadAll()")
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "urlencoded") {
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, errors.Wrap(err, "url.ParseQuery()")
		}

		return formData(values), nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var data any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		// Error pages are rarely JSON, keep the text so it reaches the ClientError
		if resp.StatusCode >= http.StatusBadRequest {
			return string(body), nil
		}

		return nil, &UnparsableResponseError{StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}

	return data, nil
}

func formData(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) == 1 {
			data[k] = v[0]

			continue
		}

		list := make([]any, 0, len(v))
		for _, s := range v {
			list = append(list, s)
		}
		data[k] = list
	}

	return data
}
