package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Enum is the codec of a closed enumeration whose members are string tokens on the wire.
//
// The zero value of E is the absent sentinel: decoding a JSON null yields it without error.
// It is never a member itself.
type Enum[E ~string] struct {
	typeName string
	members  []E
	byToken  map[string]E
}

// NewEnum returns the codec for the enumeration typeName with the given members.
// It panics on empty or duplicate tokens, as those can only stem from a broken definition.
func NewEnum[E ~string](typeName string, members ...E) *Enum[E] {
	e := &Enum[E]{
		typeName: typeName,
		members:  slices.Clone(members),
		byToken:  make(map[string]E, len(members)),
	}
	for _, m := range members {
		if m == "" {
			panic(fmt.Sprintf("enum %s: empty member token", typeName))
		}
		if _, dup := e.byToken[string(m)]; dup {
			panic(fmt.Sprintf("enum %s: duplicate member token %q", typeName, m))
		}
		e.byToken[string(m)] = m
	}
	return e
}

// TypeName returns the name of the enumeration.
func (e *Enum[E]) TypeName() string {
	return e.typeName
}

// Members returns all members in declaration order.
func (e *Enum[E]) Members() []E {
	return slices.Clone(e.members)
}

// Contains reports whether v is a member.
func (e *Enum[E]) Contains(v E) bool {
	_, ok := e.byToken[string(v)]
	return ok
}

// Parse maps a wire token to its member.
// Tokens are matched exactly; unknown tokens yield a *DecodeError.
func (e *Enum[E]) Parse(token string) (E, error) {
	m, ok := e.byToken[token]
	if !ok {
		return "", &DecodeError{Type: e.typeName, Token: token}
	}
	return m, nil
}

// Decode maps a raw JSON value to a member.
// JSON null yields the absent sentinel, any other non-string value is malformed.
func (e *Enum[E]) Decode(b []byte) (E, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	var token string
	if err := json.Unmarshal(b, &token); err != nil {
		return "", &MalformedPayloadError{Type: e.typeName, Reason: "expected string token", Err: err}
	}
	return e.Parse(token)
}

// Encode writes the canonical wire token of v.
func (e *Enum[E]) Encode(w io.Writer, v E) error {
	if err := e.check(v); err != nil {
		return err
	}
	return encodeJSON(w, string(v))
}

// Marshal returns the canonical wire token of v as JSON.
func (e *Enum[E]) Marshal(v E) ([]byte, error) {
	var b bytes.Buffer
	if err := e.Encode(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Text returns the wire token of v without JSON quoting.
func (e *Enum[E]) Text(v E) ([]byte, error) {
	if err := e.check(v); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (e *Enum[E]) check(v E) error {
	if !e.Contains(v) {
		return fmt.Errorf("cannot encode %q: not a member of %s", string(v), e.typeName)
	}
	return nil
}
