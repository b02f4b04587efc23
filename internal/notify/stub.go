//go:build !linux

package notify

type stubNotifier struct{}

// New returns a no-op notifier where D-Bus is not available.
func New() (Notifier, error) {
	return &stubNotifier{}, nil
}

func (*stubNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (*stubNotifier) Close(_ uint32) error { return nil }
