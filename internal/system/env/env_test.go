package env

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func with(kv ...string) *T {
	e := New()
	for i := 0; i+1 < len(kv); i += 2 {
		e.Set(kv[i], kv[i+1])
	}

	return e
}

func TestSetGetRemove(t *testing.T) {
	e := New()

	if e.Contains("a") {
		t.Fatal("empty env contains a")
	}

	e.Set("a", "b")

	if v, ok := e.Get("a"); !ok || v != "b" {
		t.Fatalf("Get(a) = %q, %v; want b, true", v, ok)
	}

	if _, ok := e.Get("A"); ok {
		t.Fatal("names must be case-sensitive")
	}

	if !e.Remove("a") {
		t.Fatal("Remove(a) = false")
	}

	if e.Remove("a") {
		t.Fatal("second Remove(a) = true")
	}

	if e.Len() != 0 {
		t.Fatalf("Len() = %d after removal", e.Len())
	}
}

func TestFromOS(t *testing.T) {
	t.Setenv("CARAPACE_ENV_TEST", "42")

	if v := FromOS().Value("CARAPACE_ENV_TEST"); v != "42" {
		t.Fatalf("FromOS missing process variable, got %q", v)
	}
}

func TestEnvironIsSorted(t *testing.T) {
	e := with("b", "2", "a", "1", "?", "0")

	want := []string{"?=0", "a=1", "b=2"}
	if diff := cmp.Diff(want, e.Environ()); diff != "" {
		t.Fatalf("Environ() mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	e := with("a", "1")
	c := e.Copy()
	c.Set("a", "2")

	if e.Value("a") != "1" {
		t.Fatal("modifying a copy changed the original")
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		env  *T
		in   string
		want string
	}{
		{"no dollar", with("A", "1"), "plain text", "plain text"},
		{"general", with("ONE", "1", "TWO", "2"), "$ONE, ${TWO}, $ONE, $THREE", "1, 2, 1, $THREE"},
		{"not when subset", with("USER", "test"), "$USERNAME", "$USERNAME"},
		{"exact", with("USER", "test"), "$USER", "test"},
		{"bracketed subset", with("USER", "test"), "${USER}NAME", "testNAME"},
		{"longest match", with("USER", "test", "USERNAME", "foobar"), "$USERNAME", "foobar"},
		{"both forms", with("USER", "test", "USERNAME", "foobar"), "$USER $USERNAME ${USER}NAME", "test foobar testNAME"},
		{"status", with("?", "0"), "exit $?", "exit 0"},
		{"options", with("-", "x"), "$-", "x"},
		{"adjacent", with("A", "1", "B", "2"), "$A$B", "12"},
		{"punctuation ends name", with("A", "1"), "$A-b $A/c", "1-b 1/c"},
		{"undefined bracketed", New(), "${NOPE}", "${NOPE}"},
		{"lone dollar", with("A", "1"), "cost $ 5", "cost $ 5"},
		{"empty value", with("E", ""), "[$E]", "[]"},
		{"bracketed punctuation", with("a.b", "X"), "${a.b}", "X"},
		{"unicode", with("ÄB", "Y"), "${ÄB} $ÄB $ÄBC", "Y Y $ÄBC"},
		{"unicode digits", with("Ä1", "Z"), "$Ä1.", "Z."},
		{"inner bracketed", with("B", "2"), "${a ${B}}", "${a 2}"},
	}

	for _, tt := range tests {
		if got := tt.env.Substitute(tt.in); got != tt.want {
			t.Errorf("%s: Substitute(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestSubstituteIsDeterministic(t *testing.T) {
	e := with("U", "u", "US", "us", "USE", "use", "USER", "user")

	for i := 0; i < 50; i++ {
		if got := e.Substitute("$USER $USE $US $U"); got != "user use us u" {
			t.Fatalf("iteration %d: got %q", i, got)
		}
	}
}

func TestPartialVarAt(t *testing.T) {
	tests := []struct {
		pos  int
		text string
		want string
	}{
		{6, "hello ${world and universe", "${world"},
		{9, "hello ${world and universe", "${world"},
		{12, "hello ${world and universe", "${world"},
		{9, "hello ${world} and universe", "${world}"},
		{6, "hello ${  and universe", "${"},
		{6, "hello ${-  and universe", "${-"},
		{0, "$hello world", "$hello"},
		{12, "hello $world and universe", "$world"},
		{13, "hello $world  and universe", ""},
		{6, "hello $  and universe", "$"},
		{6, "hello $- and universe", "$-"},
		{99, "short", ""},
		{9, "echo $ÄB", "$ÄB"},
		{8, "echo ${a.b", "${a.b"},
	}

	for _, tt := range tests {
		if got := PartialVarAt(tt.pos, tt.text); got != tt.want {
			t.Errorf("PartialVarAt(%d, %q) = %q, want %q", tt.pos, tt.text, got, tt.want)
		}
	}
}
