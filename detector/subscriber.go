package detector

// Subscriber is the debug-output capability spec.md §4.7/§9 describes: a
// predicate guarding whether debug projection work is worth doing at
// all, plus a producer-invoking setter so that work only happens when
// someone is actually listening.
type Subscriber interface {
	// IsSubscribed reports whether a debug consumer is currently
	// attached. Detect skips all re-projection work when this is false.
	IsSubscribed() bool

	// FillIfSubscribed invokes produce and delivers its result, but only
	// if IsSubscribed reports true. produce is never called otherwise.
	FillIfSubscribed(produce func() ImageLines)
}

// FuncSubscriber is a Subscriber backed by a plain callback, suitable for
// tests and the cmd/linedetect demo, where the "channel" is just a Go
// function call.
type FuncSubscriber struct {
	Enabled bool
	OnFill  func(ImageLines)
}

// IsSubscribed reports whether the subscriber is enabled.
func (s *FuncSubscriber) IsSubscribed() bool { return s.Enabled }

// FillIfSubscribed calls produce and forwards its result to OnFill, but
// only when Enabled is true.
func (s *FuncSubscriber) FillIfSubscribed(produce func() ImageLines) {
	if !s.Enabled {
		return
	}
	if s.OnFill != nil {
		s.OnFill(produce())
	}
}
