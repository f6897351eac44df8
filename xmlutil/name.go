package xmlutil

// Matches reports whether an element name as seen on the wire refers
// to the given local name, either bare or carrying the expected
// namespace prefix.
//
// This is a prefix-literal check, not namespace-URI resolution: it
// recognizes "features" and "stream:features" for
// Matches(name, "features", "stream"), and nothing else.
func Matches(actual, local, prefix string) bool {
	return actual == local || actual == prefix+":"+local
}
