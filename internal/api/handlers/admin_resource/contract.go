package admin_resource

import (
	"context"
	"encoding/json"
	"net/url"
)

type AdminService interface {
	AdminList(ctx context.Context, resource string, params url.Values) (json.RawMessage, error)
	AdminGet(ctx context.Context, resource, id string) (json.RawMessage, error)
	AdminCreate(ctx context.Context, resource string, body map[string]interface{}) (json.RawMessage, error)
	AdminUpdate(ctx context.Context, resource, id string, body map[string]interface{}) (json.RawMessage, error)
	AdminDelete(ctx context.Context, resource, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
