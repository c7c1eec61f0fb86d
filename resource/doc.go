// Package resource provides a generic tracker for closable resources.
//
// A Manager collects io.Closer handles and releases all of them on Close,
// continuing past individual failures. Registration after teardown closes
// the handle immediately instead of retaining it, so late registrations
// cannot leak.
//
//	mgr := resource.NewManager()
//	mgr.Register(file)
//	mgr.Register(conn)
//	defer mgr.Close()
package resource
