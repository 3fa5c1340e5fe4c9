package api

import (
	"context"
	"net/url"
)

// Collection is a typed view over one entity family on the remote API. T is
// the entity, C and U are its create and update payloads. Reads go through the
// item path, writes through the management path; the two differ because the
// platform exposes public listings separately from admin mutation endpoints.
type Collection[T any, C any, U any] struct {
	client *Client

	// listPath serves the admin listing, e.g. "/teacher/management".
	listPath string
	// itemPath serves single-entity reads, e.g. "/teacher".
	itemPath string
	// managePath receives create and update calls.
	managePath string
}

// List fetches the admin listing. Repeating the call issues a fresh request
// each time; the client never caches.
func (col Collection[T, C, U]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.get(ctx, col.listPath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID fetches a single entity by its identifier.
func (col Collection[T, C, U]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := col.client.get(ctx, col.itemPath+"/"+url.PathEscape(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create submits a new entity to the management endpoint.
func (col Collection[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	var item T
	if err := col.client.post(ctx, col.managePath, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the entity identified by id on the management endpoint.
func (col Collection[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	var item T
	if err := col.client.put(ctx, col.managePath+"/"+url.PathEscape(id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
