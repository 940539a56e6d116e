package pulse

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate unless Keep was called. Defer Release
// right after creating a gpu object and call Keep once ownership was handed
// over successfully.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
