package session

import "time"

// SetOption configures one Set call.
type SetOption func(*setOptions)

type setOptions struct {
	callback *Callback
}

// WithCallback registers cb for every report kind the command enables, as
// if On had been called for each. The command must be a catalog.Reporter.
// Registration is idempotent, so repeating the Set does not duplicate cb.
func WithCallback(cb *Callback) SetOption {
	return func(o *setOptions) {
		o.callback = cb
	}
}

// GetOption configures one Get call.
type GetOption func(*getOptions)

type getOptions struct {
	timeout time.Duration
}

// WithTimeout overrides the session's default Get deadline.
func WithTimeout(d time.Duration) GetOption {
	return func(o *getOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}
