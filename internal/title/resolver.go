package title

// Static returns a Resolver that ignores the key and always yields value.
func Static(value string) Resolver {
	return ResolverFunc(func(string) string { return value })
}

// WithFallback wraps r so that an empty resolution yields fallback instead.
// NewComposer never installs this; callers opt in when the underlying
// lookup may come back empty.
func WithFallback(r Resolver, fallback string) Resolver {
	return ResolverFunc(func(key string) string {
		if s := r.Resolve(key); s != "" {
			return s
		}
		return fallback
	})
}
