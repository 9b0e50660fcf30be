// Package message implements the SAMv3 reply grammar: parsing
// "COMMAND SUBCOMMAND KEY=VALUE ..." lines sent by the router, and the
// leading destination line ahead of a repliable datagram's payload.
//
// Grammar (see spec.md §4.1):
//
//	reply   := command (WS subcommand)? (WS kv)* "\n"?
//	kv      := key "=" (quoted | bare)
//	key     := ALNUM+
//	bare    := [ALNUM . - = ~ _]+
//	quoted  := '"' ( \\" | \\n | \\\\ | [ALNUM space . - = ~ _] )* '"'
package message

import (
	"strings"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// Command is the closed set of SAMv3 reply commands this library reads.
type Command string

const (
	Hello   Command = "HELLO"
	Ping    Command = "PING"
	Session Command = "SESSION"
	Dest    Command = "DEST"
	Naming  Command = "NAMING"
	Stream  Command = "STREAM"
)

// Subcommand is the closed set of SAMv3 reply subcommands this library reads.
type Subcommand string

const (
	Reply  Subcommand = "REPLY"
	Create Subcommand = "CREATE"
	Status Subcommand = "STATUS"
	Lookup Subcommand = "LOOKUP"
)

// KV is one key/value pair from a reply, in the order it appeared on the wire.
type KV struct {
	Key   string
	Value string
}

// Message is a parsed router reply: a command, an optional subcommand, and
// an ordered list of key/value pairs. Keys may legally repeat; only the
// first occurrence is observable through Get.
type Message struct {
	Command    Command
	Subcommand Subcommand // empty string if absent
	Values     []KV
}

// Get returns the first value bound to key, and whether it was present.
func (m *Message) Get(key string) (string, bool) {
	for _, kv := range m.Values {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Result returns the RESULT= value, or "" if absent.
func (m *Message) Result() string {
	v, _ := m.Get("RESULT")
	return v
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// bareValueChar reports whether c is legal inside an unquoted (bare) value.
func bareValueChar(c byte) bool {
	return isAlnum(c) || c == '.' || c == '-' || c == '=' || c == '~' || c == '_'
}

type scanner struct {
	s   string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.s) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.s[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		c := s.peek()
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			s.pos++
			continue
		}
		break
	}
}

// token scans one run of bareValueChar bytes (used for unquoted values).
func (s *scanner) token() string {
	start := s.pos
	for !s.eof() && bareValueChar(s.peek()) {
		s.pos++
	}
	return s.s[start:s.pos]
}

// alnumToken scans one run of ALNUM-only bytes, used for the closed-set
// command/subcommand keywords and for keys. It stops at '=' so it never swallows a
// following key/value pair the way the wider bare-value charset would.
func (s *scanner) alnumToken() string {
	start := s.pos
	for !s.eof() && isAlnum(s.peek()) {
		s.pos++
	}
	return s.s[start:s.pos]
}

// quotedValue scans a double-quoted value, unescaping \" \n \\.
// It checks for and consumes the opening quote itself.
func (s *scanner) quotedValue() (string, bool) {
	if s.peek() != '"' {
		return "", false
	}
	s.pos++ // consume opening quote
	var b strings.Builder
	for {
		if s.eof() {
			return "", false
		}
		c := s.peek()
		if c == '"' {
			s.pos++
			return b.String(), true
		}
		if c == '\\' {
			s.pos++
			if s.eof() {
				return "", false
			}
			esc := s.peek()
			switch esc {
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case '\\':
				b.WriteByte('\\')
			default:
				return "", false
			}
			s.pos++
			continue
		}
		if !(isAlnum(c) || c == ' ' || c == '.' || c == '-' || c == '=' || c == '~' || c == '_') {
			return "", false
		}
		b.WriteByte(c)
		s.pos++
	}
}

// Parse parses data against the grammar and verifies it matches the
// expected command and (if non-empty) subcommand. An empty expectSub means
// the caller accepts either an absent subcommand or doesn't care.
func Parse(data string, expectCmd Command, expectSub Subcommand) (*Message, error) {
	msg, err := parseAny(data)
	if err != nil {
		return nil, err
	}
	if msg.Command != expectCmd {
		return nil, samerrors.New(samerrors.RouterError, nil,
			"expected command %s, got %s %s", expectCmd, msg.Command, msg.Subcommand)
	}
	if expectSub != "" && msg.Subcommand != expectSub {
		return nil, samerrors.New(samerrors.RouterError, nil,
			"expected subcommand %s, got %s %s", expectSub, msg.Command, msg.Subcommand)
	}
	return msg, nil
}

// parseAny parses data into a Message without checking the command/subcommand
// against any expectation; malformed input is a ParseError.
func parseAny(data string) (*Message, error) {
	s := &scanner{s: strings.TrimRight(data, "\n")}
	s.skipSpace()

	cmdTok := s.alnumToken()
	if cmdTok == "" {
		return nil, samerrors.New(samerrors.ParseError, nil, "empty or malformed command in %q", data)
	}
	msg := &Message{Command: Command(cmdTok)}

	s.skipSpace()
	// A subcommand, if present, is a bare ALNUM token from the closed set
	// that is not immediately followed by '='. Peek: if the token scanned
	// is immediately followed by '=', it was actually a key, so rewind.
	if !s.eof() && s.peek() != '"' {
		save := s.pos
		tok := s.alnumToken()
		if tok != "" && s.peek() != '=' {
			switch Subcommand(tok) {
			case Reply, Create, Status, Lookup:
				msg.Subcommand = Subcommand(tok)
			default:
				s.pos = save
			}
		} else {
			s.pos = save
		}
	}

	s.skipSpace()
	for !s.eof() {
		key := s.alnumToken()
		if key == "" {
			return nil, samerrors.New(samerrors.ParseError, nil, "expected key at offset %d in %q", s.pos, data)
		}
		if s.peek() != '=' {
			return nil, samerrors.New(samerrors.ParseError, nil, "expected '=' after key %q in %q", key, data)
		}
		s.pos++ // consume '='

		var val string
		if s.peek() == '"' {
			v, ok := s.quotedValue()
			if !ok {
				return nil, samerrors.New(samerrors.ParseError, nil, "malformed quoted value for key %q in %q", key, data)
			}
			val = v
		} else {
			val = s.token()
		}
		msg.Values = append(msg.Values, KV{Key: key, Value: val})
		s.skipSpace()
	}

	return msg, nil
}
