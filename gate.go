package checksumcache

import "context"

// ExecuteIfChanged invokes fn only when the file at path has changed,
// returning fn's result and true. When the file is unchanged it returns
// the zero value of T and false without invoking fn. The bool reports
// whether fn was invoked; fn's side effects are the caller's
// responsibility.
func ExecuteIfChanged[T any](c *Cache, path string, fn func() (T, error)) (T, bool, error) {
	var zero T
	changed, err := c.HasChanged(path)
	if err != nil || !changed {
		return zero, false, err
	}
	result, err := fn()
	if err != nil {
		return zero, true, err
	}
	return result, true, nil
}

// ExecuteIfChangedContext is the cancellable variant of ExecuteIfChanged.
func ExecuteIfChangedContext[T any](ctx context.Context, c *Cache, path string, fn func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	changed, err := c.HasChangedContext(ctx, path)
	if err != nil || !changed {
		return zero, false, err
	}
	result, err := fn(ctx)
	if err != nil {
		return zero, true, err
	}
	return result, true, nil
}

// ExecuteIfAnyChanged invokes fn when any of the given files changed.
// The underlying check evaluates every path, so all cache entries are
// refreshed before fn runs.
func ExecuteIfAnyChanged[T any](c *Cache, paths []string, fn func() (T, error)) (T, bool, error) {
	var zero T
	changed, err := c.AnyChanged(paths)
	if err != nil || !changed {
		return zero, false, err
	}
	result, err := fn()
	if err != nil {
		return zero, true, err
	}
	return result, true, nil
}

// ExecuteIfAnyChangedContext is the cancellable variant of
// ExecuteIfAnyChanged.
func ExecuteIfAnyChangedContext[T any](ctx context.Context, c *Cache, paths []string, fn func(context.Context) (T, error)) (T, bool, error) {
	var zero T
	changed, err := c.AnyChangedContext(ctx, paths)
	if err != nil || !changed {
		return zero, false, err
	}
	result, err := fn(ctx)
	if err != nil {
		return zero, true, err
	}
	return result, true, nil
}
