package resource

// CloserFunc adapts a plain function to io.Closer so it can be tracked
// by a Manager.
type CloserFunc func() error

// Close calls f.
func (f CloserFunc) Close() error { return f() }
