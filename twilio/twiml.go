package twilio

import (
	"strconv"
	"strings"
)

// TwiML document builder. Documents are rendered on one line with
// self-closing tags for childless elements, e.g.
//
//	<?xml version="1.0" encoding="UTF-8"?><Response><Connect><Stream url="wss://host/media" /></Connect></Response>
//
// Verbs are appended in order; String renders the whole document.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// VoiceResponse is a TwiML document for a voice call.
type VoiceResponse struct {
	verbs []twimlNode
	err   error
}

// NewVoiceResponse returns an empty document.
func NewVoiceResponse() *VoiceResponse {
	return &VoiceResponse{}
}

type twimlNode struct {
	name     string
	attrs    []twimlAttr
	text     string
	children []twimlNode
}

type twimlAttr struct {
	key   string
	value string
}

func (n twimlNode) render(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(n.name)
	for _, a := range n.attrs {
		b.WriteString(" ")
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(escapeXML(a.value))
		b.WriteString(`"`)
	}
	if n.text == "" && len(n.children) == 0 {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	b.WriteString(escapeXML(n.text))
	for _, c := range n.children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(n.name)
	b.WriteString(">")
}

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Say speaks text to the caller.
func (r *VoiceResponse) Say(text string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{name: "Say", text: text})
	return r
}

// SayWithVoice speaks text using a specific voice and language.
func (r *VoiceResponse) SayWithVoice(text string, voice string, language string) *VoiceResponse {
	n := twimlNode{name: "Say", text: text}
	if voice != "" {
		n.attrs = append(n.attrs, twimlAttr{"voice", voice})
	}
	if language != "" {
		n.attrs = append(n.attrs, twimlAttr{"language", language})
	}
	r.verbs = append(r.verbs, n)
	return r
}

// Play plays the audio file at audioURL.
func (r *VoiceResponse) Play(audioURL string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{name: "Play", text: audioURL})
	return r
}

// Pause waits the given number of seconds in silence.
func (r *VoiceResponse) Pause(seconds int) *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{
		name:  "Pause",
		attrs: []twimlAttr{{"length", strconv.Itoa(seconds)}},
	})
	return r
}

// Hangup ends the call.
func (r *VoiceResponse) Hangup() *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{name: "Hangup"})
	return r
}

// Reject declines an incoming call without answering it. reason is
// rejected or busy; empty means the API default.
func (r *VoiceResponse) Reject(reason string) *VoiceResponse {
	n := twimlNode{name: "Reject"}
	if reason != "" {
		n.attrs = append(n.attrs, twimlAttr{"reason", reason})
	}
	r.verbs = append(r.verbs, n)
	return r
}

// Redirect transfers control of the call to the TwiML at redirectURL.
func (r *VoiceResponse) Redirect(redirectURL string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{name: "Redirect", text: redirectURL})
	return r
}

// Dial connects the caller to number.
func (r *VoiceResponse) Dial(number string) *VoiceResponse {
	r.verbs = append(r.verbs, twimlNode{name: "Dial", text: number})
	return r
}

// Connect attaches a bidirectional media stream and hands the call
// audio to it until the stream ends.
func (r *VoiceResponse) Connect(stream *StreamNoun) *VoiceResponse {
	node, err := stream.node()
	if err != nil {
		r.err = err
		return r
	}
	r.verbs = append(r.verbs, twimlNode{name: "Connect", children: []twimlNode{node}})
	return r
}

// Start attaches a unidirectional media stream and lets the call
// continue with the following verbs.
func (r *VoiceResponse) Start(stream *StreamNoun) *VoiceResponse {
	node, err := stream.node()
	if err != nil {
		r.err = err
		return r
	}
	r.verbs = append(r.verbs, twimlNode{name: "Start", children: []twimlNode{node}})
	return r
}

// String renders the document. An invalid stream URL surfaces through
// Err, and the document renders without the offending verb.
func (r *VoiceResponse) String() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	root := twimlNode{name: "Response", children: r.verbs}
	if len(r.verbs) == 0 {
		b.WriteString("<Response></Response>")
		return b.String()
	}
	root.render(&b)
	return b.String()
}

// Err reports the first construction error, nil when the document is
// valid.
func (r *VoiceResponse) Err() error { return r.err }

// StreamNoun configures the Stream element of Connect and Start verbs.
type StreamNoun struct {
	url                  string
	name                 string
	track                string
	statusCallback       string
	statusCallbackMethod string
	parameters           []StreamParameter
}

// NewStream points the stream at a websocket server. The URL must be
// wss.
func NewStream(streamURL string) *StreamNoun {
	return &StreamNoun{url: streamURL}
}

func (s *StreamNoun) WithName(name string) *StreamNoun {
	s.name = name
	return s
}

func (s *StreamNoun) WithTrack(track string) *StreamNoun {
	s.track = track
	return s
}

func (s *StreamNoun) WithStatusCallback(callbackURL string, method string) *StreamNoun {
	s.statusCallback = callbackURL
	s.statusCallbackMethod = method
	return s
}

// WithParameter adds a custom parameter delivered in the stream's
// start message.
func (s *StreamNoun) WithParameter(name string, value string) *StreamNoun {
	s.parameters = append(s.parameters, StreamParameter{Name: name, Value: value})
	return s
}

func (s *StreamNoun) node() (twimlNode, error) {
	if !validStreamURL(s.url) {
		return twimlNode{}, ErrInvalidWebSocketURL
	}
	if s.statusCallback != "" && !validCallbackURL(s.statusCallback) {
		return twimlNode{}, ErrInvalidCallbackURL
	}
	n := twimlNode{name: "Stream", attrs: []twimlAttr{{"url", s.url}}}
	if s.name != "" {
		n.attrs = append(n.attrs, twimlAttr{"name", s.name})
	}
	if s.track != "" {
		n.attrs = append(n.attrs, twimlAttr{"track", s.track})
	}
	if s.statusCallback != "" {
		n.attrs = append(n.attrs, twimlAttr{"statusCallback", s.statusCallback})
		if s.statusCallbackMethod != "" {
			n.attrs = append(n.attrs, twimlAttr{"statusCallbackMethod", s.statusCallbackMethod})
		}
	}
	for _, p := range s.parameters {
		n.children = append(n.children, twimlNode{
			name:  "Parameter",
			attrs: []twimlAttr{{"name", p.Name}, {"value", p.Value}},
		})
	}
	return n, nil
}
