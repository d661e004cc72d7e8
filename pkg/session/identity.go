package session

// Identity is the key of one board's session: the board address plus the
// local address its reports arrive on.
type Identity struct {
	// Remote is the board address, for example "10.0.0.101:50000".
	Remote string

	// Listen is the local listen address, for example "0.0.0.0:50101".
	Listen string
}

// String returns "remote/listen".
func (id Identity) String() string {
	return id.Remote + "/" + id.Listen
}

// IsZero reports whether id is unset.
func (id Identity) IsZero() bool {
	return id.Remote == "" && id.Listen == ""
}
