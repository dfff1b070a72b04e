package ports

// Navigator receives the checkout handoff. Once OpenCheckout is called,
// control leaves the application; the flow does no further state management.
type Navigator interface {
	OpenCheckout(url string)
}
