package session

import "sync"

// CheckoutRecorder captures the checkout URL a registration hands off to,
// so the HTTP layer can return it in the response instead of opening a
// browser window.
type CheckoutRecorder struct {
	mu  sync.Mutex
	url string
}

func NewCheckoutRecorder() *CheckoutRecorder {
	return &CheckoutRecorder{}
}

func (r *CheckoutRecorder) OpenCheckout(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.url = url
}

// Take returns the recorded URL and clears it. A second Take without a new
// handoff returns the empty string.
func (r *CheckoutRecorder) Take() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	url := r.url
	r.url = ""
	return url
}
