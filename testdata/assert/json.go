package assert

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails the test if expected and actual are not the same JSON document.
// Key order and whitespace are ignored, numbers are compared by value.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	if diff := cmp.Diff(jsonValue(t, expected), jsonValue(t, actual), cmp.Comparer(numberEqual)); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonValue(t *testing.T, input string) any {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader([]byte(input)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, input)
	}
	return v
}

// numberEqual treats 100.0, 1E+2 and 100 as the same number.
func numberEqual(a, b json.Number) bool {
	x, _, err := apd.NewFromString(a.String())
	if err != nil {
		return a == b
	}
	y, _, err := apd.NewFromString(b.String())
	if err != nil {
		return a == b
	}
	return x.Cmp(y) == 0
}
