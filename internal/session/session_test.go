package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carapace-shell/carapace/internal/system/config"
	"github.com/carapace-shell/carapace/internal/system/env"
	"github.com/google/go-cmp/cmp"
)

type harness struct {
	*T
	out *strings.Builder
	err *strings.Builder
}

func setup(t *testing.T) *harness {
	t.Helper()

	e := env.New()
	e.Set("HOME", t.TempDir())

	h := &harness{
		T:   New(config.Default(), e),
		out: &strings.Builder{},
		err: &strings.Builder{},
	}

	h.Stdout = h.out
	h.Stderr = h.err

	return h
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func canonical(t *testing.T, dir string) string {
	t.Helper()

	p, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestNewSeedsEnvironment(t *testing.T) {
	cfg := config.Default()
	cfg.Env = map[string]string{
		"GREETING": "hello $NAME",
		"NAME":     "world",
	}

	e := env.New()
	e.Set("NAME", "there")

	s := New(cfg, e)

	if got := s.Env.Value("GREETING"); got != "hello there" {
		t.Fatalf("GREETING = %q", got)
	}

	if got := s.Env.Value("NAME"); got != "world" {
		t.Fatalf("NAME = %q", got)
	}

	if got, ok := s.Env.Get("?"); !ok || got != "0" {
		t.Fatalf("$? = %q, %v", got, ok)
	}

	if got, ok := s.Env.Get("-"); !ok || got != "" {
		t.Fatalf("$- = %q, %v", got, ok)
	}
}

func TestNewEditMode(t *testing.T) {
	cfg := config.Default()
	cfg.EditMode = config.Vi

	if s := New(cfg, env.New()); s.EditMode != config.Emacs {
		t.Fatalf("EditMode = %q, want emacs", s.EditMode)
	}
}

func TestSetOptionMirrorsDash(t *testing.T) {
	h := setup(t)

	if err := h.SetOption("x", true); err != nil {
		t.Fatal(err)
	}

	if !h.Options.Xtrace || h.Env.Value("-") != "x" {
		t.Fatalf("xtrace=%v $-=%q", h.Options.Xtrace, h.Env.Value("-"))
	}

	if err := h.SetOption("errexit", true); err != nil {
		t.Fatal(err)
	}

	if err := h.SetOption("ignoreeof", true); err != nil {
		t.Fatal(err)
	}

	if got := h.Env.Value("-"); got != "ex" {
		t.Fatalf("$- = %q, want ex", got)
	}

	if err := h.SetOption("x", false); err != nil {
		t.Fatal(err)
	}

	if h.Options.Xtrace || h.Env.Value("-") != "e" {
		t.Fatalf("xtrace=%v $-=%q", h.Options.Xtrace, h.Env.Value("-"))
	}

	if !h.Options.IgnoreEOF {
		t.Fatal("ignoreeof was not set")
	}
}

func TestVerboseLevel(t *testing.T) {
	h := setup(t)

	h.SetVerbose(3)

	if err := h.SetOption("v", true); err != nil {
		t.Fatal(err)
	}

	if h.Options.Verbose != 3 || h.Env.Value("-") != "v" {
		t.Fatalf("verbose=%d $-=%q", h.Options.Verbose, h.Env.Value("-"))
	}

	if err := h.SetOption("verbose", false); err != nil {
		t.Fatal(err)
	}

	if h.Options.Verbose != 0 || h.Env.Value("-") != "" {
		t.Fatalf("verbose=%d $-=%q", h.Options.Verbose, h.Env.Value("-"))
	}
}

func TestUnknownOption(t *testing.T) {
	h := setup(t)

	err := h.SetOption("monitor", true)
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("got %v, want ErrUnknownOption", err)
	}

	if h.Env.Value("-") != "" {
		t.Fatal("$- changed")
	}
}

func TestStatus(t *testing.T) {
	h := setup(t)

	h.SetStatus(42)

	if h.Status() != 42 || h.Env.Value("?") != "42" {
		t.Fatalf("Status() = %d, $? = %q", h.Status(), h.Env.Value("?"))
	}

	h.Env.Set("?", "garbage")

	if h.Status() != 0 {
		t.Fatalf("Status() = %d for unparsable $?", h.Status())
	}
}

func TestExpandTilde(t *testing.T) {
	h := setup(t)
	home := h.Home()

	tests := map[string]string{
		"~":     home,
		"~/src": home + "/src",
		"~user": "~user",
		"a/~/b": "a/~/b",
		"/abs":  "/abs",
		"":      "",
	}

	for in, want := range tests {
		if got := h.ExpandTilde(in); got != want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestChdir(t *testing.T) {
	h := setup(t)

	start := canonical(t, t.TempDir())
	chdir(t, start)

	target := canonical(t, t.TempDir())

	old, changed, err := h.Chdir(target)
	if err != nil || !changed || old != start {
		t.Fatalf("Chdir() = %q, %v, %v", old, changed, err)
	}

	if h.Env.Value("OLDPWD") != start || h.Env.Value("PWD") != target {
		t.Fatalf("OLDPWD=%q PWD=%q", h.Env.Value("OLDPWD"), h.Env.Value("PWD"))
	}

	h.Env.Set("OLDPWD", "unchanged")

	if _, changed, err = h.Chdir("."); err != nil || changed {
		t.Fatalf("Chdir(.) changed=%v err=%v", changed, err)
	}

	if h.Env.Value("OLDPWD") != "unchanged" {
		t.Fatal("OLDPWD updated for a no-op change")
	}

	if _, _, err = h.Chdir(filepath.Join(target, "missing")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestChdirHome(t *testing.T) {
	h := setup(t)
	chdir(t, t.TempDir())

	if _, _, err := h.Chdir(""); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	if wd != canonical(t, h.Home()) {
		t.Fatalf("cwd = %q, want home %q", wd, h.Home())
	}
}

func TestStack(t *testing.T) {
	var d Stack

	if _, ok := d.Pop(); ok {
		t.Fatal("Pop on empty stack succeeded")
	}

	d.Push("/a")
	d.Push("/b")

	if d.Push("/b") {
		t.Fatal("pushing the top again changed the stack")
	}

	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	d.Push("/a")

	if diff := cmp.Diff([]string{"/a", "/b", "/a"}, d.Entries()); diff != "" {
		t.Fatalf("Entries() mismatch (-want +got):\n%s", diff)
	}

	if top, ok := d.Pop(); !ok || top != "/a" {
		t.Fatalf("Pop() = %q, %v", top, ok)
	}
}

func TestPrintDirs(t *testing.T) {
	h := setup(t)

	h.PrintDirs(false)

	if h.out.Len() != 0 {
		t.Fatalf("empty stack printed %q", h.out.String())
	}

	h.Dirs.Push("/old")
	h.Dirs.Push("/new")

	h.PrintDirs(false)
	h.PrintDirs(true)

	want := "[/new] /old\n/new\n/old\n"
	if h.out.String() != want {
		t.Fatalf("got %q, want %q", h.out.String(), want)
	}
}
