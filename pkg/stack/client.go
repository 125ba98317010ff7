// Package stack is the Go client for the registry API.
package stack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/junaway/serverless-stack/pkg/api/web"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func Dial(addr string, opts ...DialOption) (*Client, error) {
	config := &options{}

	for _, opt := range opts {
		opt(config)
	}

	scheme := "http"
	transport := &http.Transport{}
	if config.tlsConfig != nil {
		scheme = "https"
		transport.TLSClientConfig = config.tlsConfig
	}

	return &Client{
		baseURL: fmt.Sprintf("%s://%s", scheme, addr),
		client:  &http.Client{Transport: transport},
	}, nil
}

func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

func (c *Client) CreateRole(ctx context.Context, name string, statements ...permissions.Statement) (permissions.ExecutionRole, error) {
	req := web.CreateRoleRequest{
		Name:       name,
		Statements: statements,
	}

	var res web.RoleResponse
	err := c.do(ctx, http.MethodPost, "/v1/roles", req, http.StatusCreated, &res)
	if err != nil {
		return permissions.ExecutionRole{}, err
	}

	return permissions.ExecutionRole{Name: res.Name}, nil
}

func (c *Client) GetRole(ctx context.Context, name string) (permissions.ExecutionRole, error) {
	path := "/v1/roles/" + url.PathEscape(name)

	var res web.RoleResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &res); err != nil {
		return permissions.ExecutionRole{}, err
	}

	return permissions.ExecutionRole{Name: res.Name}, nil
}

func (c *Client) DeleteRole(ctx context.Context, name string) error {
	path := "/v1/roles/" + url.PathEscape(name)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusNoContent, nil)
}

// AttachPermissions resolves a permission specification on the server and
// returns the attached statements. Construct shapes only exist in code and
// cannot be sent over the wire.
func (c *Client) AttachPermissions(ctx context.Context, name string, perms permissions.Permissions) ([]permissions.Statement, error) {
	req, err := attachRequest(perms)
	if err != nil {
		return nil, err
	}

	path := "/v1/roles/" + url.PathEscape(name) + "/permissions"

	var res web.ListStatementsResponse
	if err := c.do(ctx, http.MethodPost, path, req, http.StatusOK, &res); err != nil {
		return nil, err
	}

	return res.Statements, nil
}

func (c *Client) ListRoleStatements(ctx context.Context, name string) ([]permissions.Statement, error) {
	path := "/v1/roles/" + url.PathEscape(name) + "/statements"

	var res web.ListStatementsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &res); err != nil {
		return nil, err
	}

	return res.Statements, nil
}

func (c *Client) HasAccess(ctx context.Context, roleName, action, resource string) (bool, error) {
	req := web.HasAccessRequest{
		RoleName: roleName,
		Action:   action,
		Resource: resource,
	}

	var res web.HasAccessResponse
	if err := c.do(ctx, http.MethodPost, "/v1/access/query", req, http.StatusOK, &res); err != nil {
		return false, err
	}

	return res.HasAccess, nil
}

func (c *Client) ListAllowedResources(ctx context.Context, roleName, action string) ([]string, error) {
	req := web.ListAllowedResourcesRequest{
		RoleName: roleName,
		Action:   action,
	}

	var res web.ListAllowedResourcesResponse
	if err := c.do(ctx, http.MethodPost, "/v1/access/allowed-resources", req, http.StatusOK, &res); err != nil {
		return nil, err
	}

	return res.Resources, nil
}

func attachRequest(perms permissions.Permissions) (web.AttachPermissionsRequest, error) {
	if perms.IsAll() {
		return web.AttachPermissionsRequest{All: true}, nil
	}

	var entries []web.PermissionEntry
	for _, item := range perms.Items() {
		switch p := item.(type) {
		case permissions.ServiceAccess:
			entries = append(entries, web.PermissionEntry{Service: string(p)})
		case permissions.Statement:
			statement := p
			entries = append(entries, web.PermissionEntry{Statement: &statement})
		default:
			return web.AttachPermissionsRequest{}, ErrNotRepresentable
		}
	}

	return web.AttachPermissionsRequest{Permissions: entries}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return ErrFailedToConnect
	}
	defer res.Body.Close()

	if res.StatusCode != wantStatus {
		return statusError(res)
	}

	if out == nil {
		_, _ = io.Copy(ioutil.Discard, res.Body)
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}
