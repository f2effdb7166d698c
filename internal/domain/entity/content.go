package entity

// Content is the opaque host window a dock widget presents.
// The engine only reparents, resizes, shows or hides it; it never looks inside.
type Content interface {
	Show()
	Hide()
	SetBounds(bounds Rect)
	// Reparent moves the content under the host window identified by hostID
	// (a container ID).
	Reparent(hostID string)
	// Release is called once when the engine destroys content it owns
	// (DeleteContentOnClose).
	Release()
}
