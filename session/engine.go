package session

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/ondrik/xmpp-server/command"
	"github.com/ondrik/xmpp-server/stream"
	"github.com/ondrik/xmpp-server/transport"
	"github.com/ondrik/xmpp-server/xmlutil"
	"github.com/ondrik/xmpp-server/xmpperr"
)

// Engine consumes a session's commands and writes protocol replies.
// It is the sole mutator of the session's state and identity.
type Engine struct {
	s      *Session
	config Config
	logger *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine returns an Engine serving s.
func NewEngine(s *Session, config Config, opts ...EngineOption) *Engine {
	e := &Engine{s: s, config: config, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run drains the session's command channel in FIFO order until a
// terminal command, channel close or context cancellation. The
// transport is closed before Run returns.
func (e *Engine) Run(ctx context.Context) error {
	defer e.s.Out.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-e.s.Commands.C():
			if !ok {
				return nil
			}
			e.logger.Debug("command", zap.Stringer("kind", cmd.Kind))
			if terminal := e.handle(cmd); terminal {
				return nil
			}
		}
	}
}

func (e *Engine) handle(cmd command.Command) (terminal bool) {
	switch cmd.Kind {
	case command.KindOpenStream:
		return e.openStream(cmd.Lang, cmd.Version)
	case command.KindAuthenticate:
		e.authenticate(cmd.Credentials, cmd.RequestID)
		return false
	case command.KindError:
		e.writeNode(xmpperr.BadFormat(xmpperr.WithText(cmd.Message)).Node())
		return true
	case command.KindEndOfStream:
		return true
	}
	e.writeNode(xmpperr.InternalServerError().Node())
	return true
}

// openStream answers the client's stream open with the server header
// and the feature set matching the session's authentication state.
func (e *Engine) openStream(lang, version string) (terminal bool) {
	if version != "1.0" {
		e.writeNode(xmpperr.UnsupportedVersion(xmpperr.WithText("only version 1.0 is supported")).Node())
		return true
	}
	if lang == "" {
		lang = stream.DefaultLang
	}
	err := e.s.Out.WriteHeader(transport.Header{
		ID:   newStreamID(),
		From: e.config.Domain,
		Lang: lang,
	})
	if err != nil {
		e.logger.Debug("write header", zap.Error(err))
		return true
	}
	features := xmlutil.Elem("stream:features")
	if e.s.State == StateUnauthenticated {
		features.AddChild(xmlutil.Elem("auth",
			xmlutil.Attr{Name: "xmlns", Value: stream.IQAuthFeatureNS}))
	}
	e.writeNode(features)
	return false
}

// authenticate resolves a complete authentication request. Absent
// credential fields are treated as empty for verification.
func (e *Engine) authenticate(creds *command.Credentials, requestID string) {
	if e.s.State == StateAuthenticated {
		e.logger.Debug("repeat authenticate", zap.String("jid", e.s.Identity.Full()))
		e.writeNode(xmpperr.NotAuthorizedStanza(requestID))
		return
	}

	username := strVal(creds.Username)
	password := strVal(creds.Password)
	if e.config.Authenticate == nil || !e.config.Authenticate(username, password) {
		e.logger.Info("authentication failed", zap.String("username", username))
		e.writeNode(xmpperr.NotAuthorizedStanza(requestID))
		return
	}

	resource := strVal(creds.Resource)
	if resource == "" {
		resource = newStreamID()
	}
	e.s.State = StateAuthenticated
	e.s.Identity = JID{Node: username, Domain: e.config.Domain, Resource: resource}
	e.logger.Info("authenticated", zap.String("jid", e.s.Identity.Full()))
	e.writeNode(xmlutil.Elem("iq",
		xmlutil.Attr{Name: "type", Value: "result"},
		xmlutil.Attr{Name: "id", Value: requestID}))
}

func (e *Engine) writeNode(n *xmlutil.Node) {
	if err := e.s.Out.WriteNode(n); err != nil {
		e.logger.Debug("write reply", zap.Error(err))
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Serve wires a complete client: a translation goroutine feeding the
// session's command channel from r, and the engine consuming it on the
// calling goroutine, replying via w.
func Serve(ctx context.Context, r io.Reader, w io.Writer, config Config, opts ...EngineOption) error {
	s := New(transport.NewWriter(w), config)
	go func() {
		d := stream.NewDispatcher(s.Commands)
		stream.NewSessionHandler(d).Run(stream.NewSource(r))
		s.Commands.Close()
	}()
	return NewEngine(s, config, opts...).Run(ctx)
}
