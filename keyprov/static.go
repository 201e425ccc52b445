package keyprov

// Static implements 'Provider' by returning the same fixed key for every host, the common case of an
// application holding a single key.
type Static struct {
	Key, UserAgent string
}

var _ Provider = (*Static)(nil)

func (s *Static) GetKey(_ string) string {
	return s.Key
}

func (s *Static) GetUserAgent() string {
	return s.UserAgent
}
