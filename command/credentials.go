package command

// Credentials accumulates an in-progress authentication attempt.
//
// A single logical authentication stanza arrives as several parse
// events, so each field is set independently as its element is seen.
// A nil field means the client did not supply it; the engine decides
// whether that is acceptable for the protocol variant in use. Fields
// are never cleared once set.
type Credentials struct {
	Username *string
	Password *string
	Resource *string
}

// SetUsername records the attempt's username.
func (c *Credentials) SetUsername(v string) { c.Username = &v }

// SetPassword records the attempt's password.
func (c *Credentials) SetPassword(v string) { c.Password = &v }

// SetResource records the attempt's requested resource.
func (c *Credentials) SetResource(v string) { c.Resource = &v }
