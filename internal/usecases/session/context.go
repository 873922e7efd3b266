package session

import "context"

type contextKey struct{}

func NewContext(ctx context.Context, w *Workspace) context.Context {
	return context.WithValue(ctx, contextKey{}, w)
}

func FromContext(ctx context.Context) (*Workspace, bool) {
	w, ok := ctx.Value(contextKey{}).(*Workspace)
	return w, ok && w != nil
}
