package session

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ondrik/xmpp-server/command"
	"github.com/ondrik/xmpp-server/transport"
)

var (
	xpAuthFeature = xpath.MustCompile(`//stream:features/auth`)
	xpResultIQ    = xpath.MustCompile(`//iq[@type='result']`)
	xpErrorIQ     = xpath.MustCompile(`//iq[@type='error']/error/not-authorized`)
)

func testAuthenticator(username, password string) bool {
	return username == "romeo" && password == "s3cret"
}

func testConfig() Config {
	return Config{Domain: "example.net", Authenticate: testAuthenticator}
}

// runEngine feeds cmds through a fresh session's channel and runs the
// engine to completion, returning the session and everything written.
func runEngine(t *testing.T, cmds ...command.Command) (*Session, string) {
	t.Helper()
	var buf bytes.Buffer
	s := New(transport.NewWriter(&buf), testConfig())
	for _, cmd := range cmds {
		s.Commands.Send(cmd)
	}
	s.Commands.Close()

	e := NewEngine(s, testConfig(), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, e.Run(context.Background()))
	return s, buf.String()
}

func creds(username, password, resource string) *command.Credentials {
	c := &command.Credentials{}
	if username != "" {
		c.SetUsername(username)
	}
	if password != "" {
		c.SetPassword(password)
	}
	if resource != "" {
		c.SetResource(resource)
	}
	return c
}

func TestEngineOpenStream(t *testing.T) {
	_, out := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.EndOfStream(),
	)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.True(t, strings.HasSuffix(out, `</stream:stream>`))

	doc, err := xmlquery.Parse(strings.NewReader(out))
	require.NoError(t, err)
	root := xmlquery.FindOne(doc, "/*")
	require.NotNil(t, root)
	assert.Equal(t, "example.net", root.SelectAttr("from"))
	assert.Contains(t, out, `xml:lang="en"`)

	// an unauthenticated stream advertises legacy iq auth
	assert.NotNil(t, xmlquery.QuerySelector(doc, xpAuthFeature))
}

func TestEngineUnsupportedVersion(t *testing.T) {
	_, out := runEngine(t, command.OpenStream("en", "2.0"))

	assert.Contains(t, out, "<unsupported-version")
	assert.NotContains(t, out, "<stream:features")
}

func TestEngineAuthenticateSuccess(t *testing.T) {
	s, out := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Authenticate(creds("romeo", "s3cret", "orchard"), "auth1"),
		command.EndOfStream(),
	)

	assert.Equal(t, StateAuthenticated, s.State)
	assert.Equal(t, "romeo@example.net/orchard", s.Identity.Full())

	doc, err := xmlquery.Parse(strings.NewReader(out))
	require.NoError(t, err)
	result := xmlquery.QuerySelector(doc, xpResultIQ)
	require.NotNil(t, result)
	assert.Equal(t, "auth1", result.SelectAttr("id"))
}

func TestEngineAuthenticateFailure(t *testing.T) {
	s, out := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Authenticate(creds("romeo", "wrong", ""), "auth1"),
		command.EndOfStream(),
	)

	assert.Equal(t, StateUnauthenticated, s.State)
	assert.Equal(t, JID{}, s.Identity)

	doc, err := xmlquery.Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.NotNil(t, xmlquery.QuerySelector(doc, xpErrorIQ))
}

func TestEngineAuthenticateAbsentFields(t *testing.T) {
	// absent fields verify as empty strings and are rejected here
	s, _ := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Authenticate(&command.Credentials{}, "auth2"),
		command.EndOfStream(),
	)
	assert.Equal(t, StateUnauthenticated, s.State)
}

func TestEngineAuthenticateGeneratesResource(t *testing.T) {
	s, _ := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Authenticate(creds("romeo", "s3cret", ""), "auth3"),
		command.EndOfStream(),
	)
	assert.Equal(t, StateAuthenticated, s.State)
	assert.NotEmpty(t, s.Identity.Resource)
}

func TestEngineRepeatAuthenticate(t *testing.T) {
	s, out := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Authenticate(creds("romeo", "s3cret", "orchard"), "auth1"),
		command.Authenticate(creds("romeo", "s3cret", "balcony"), "auth2"),
		command.EndOfStream(),
	)

	// the first resource sticks; the repeat gets an error reply
	assert.Equal(t, "orchard", s.Identity.Resource)
	doc, err := xmlquery.Parse(strings.NewReader(out))
	require.NoError(t, err)
	errIQ := xmlquery.QuerySelector(doc, xpErrorIQ)
	require.NotNil(t, errIQ)
}

func TestEngineErrorCommand(t *testing.T) {
	_, out := runEngine(t,
		command.OpenStream("en", "1.0"),
		command.Error("XML format error!"),
		// anything after the terminal command is never processed
		command.OpenStream("en", "1.0"),
	)

	assert.Contains(t, out, "<bad-format")
	assert.Contains(t, out, "XML format error!")
	assert.Equal(t, 1, strings.Count(out, "<stream:features"))
}

func TestEngineContextCancel(t *testing.T) {
	var buf bytes.Buffer
	s := New(transport.NewWriter(&buf), testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewEngine(s, testConfig()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServe(t *testing.T) {
	input := `<stream:stream xmlns:stream="http://etherx.jabber.org/streams" ` +
		`xmlns="jabber:client" xml:lang="en" version="1.0">` +
		`<iq type="set" id="auth1"><query xmlns="jabber:iq:auth">` +
		`<username>romeo</username><password>s3cret</password>` +
		`<resource>orchard</resource></query></iq>` +
		`</stream:stream>`

	var buf bytes.Buffer
	err := Serve(context.Background(), strings.NewReader(input), &buf, testConfig(),
		WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	doc, perr := xmlquery.Parse(strings.NewReader(buf.String()))
	require.NoError(t, perr)
	result := xmlquery.QuerySelector(doc, xpResultIQ)
	require.NotNil(t, result)
	assert.Equal(t, "auth1", result.SelectAttr("id"))
}
