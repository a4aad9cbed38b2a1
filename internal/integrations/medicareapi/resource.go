package medicareapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Resource generic CRUD over /{name}, used by the admin console
type Resource struct {
	client *Client
	path   string
}

// Resource возвращает CRUD для ресурса, например "admin/users"
func (c *Client) Resource(name string) *Resource {
	return &Resource{client: c, path: "/" + name}
}

func (r *Resource) List(ctx context.Context, params url.Values) (json.RawMessage, error) {
	var out json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, r.path, params, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource) Get(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource) Create(ctx context.Context, body interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource) Update(ctx context.Context, id string, body interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	if err := r.client.do(ctx, http.MethodPut, r.itemPath(id), nil, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

func (r *Resource) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
