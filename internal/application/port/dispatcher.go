package port

// Dispatcher schedules work on the host's UI thread.
// Timer callbacks (auto-save, coalesced relayout) hop through it so that
// layout mutation stays single-threaded.
type Dispatcher interface {
	Post(fn func())
}
