package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustRunJSON(t *testing.T, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("command failed: reelist %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", args, err, string(stderr), string(stdout))
	}
	var env map[string]any
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, string(stdout), args)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected JSON envelope to contain data key; got: %v\nstdout:\n%s", env, string(stdout))
	}
	return env
}

func dataList(t *testing.T, env map[string]any) []any {
	t.Helper()
	xs, ok := env["data"].([]any)
	if !ok {
		t.Fatalf("expected data to be a list; got: %#v", env["data"])
	}
	return xs
}

func dataMap(t *testing.T, env map[string]any) map[string]any {
	t.Helper()
	m, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data to be an object; got: %#v", env["data"])
	}
	return m
}

func TestMoviesCLI_EndToEnd(t *testing.T) {
	t.Setenv("REELIST_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	// A fresh store seeds the default list.
	seeded := dataList(t, mustRunJSON(t, "--dir", dir, "movies", "list"))
	if len(seeded) != 8 {
		t.Fatalf("expected 8 seeded movies; got %d", len(seeded))
	}

	added := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "add", "--title", "Alien", "--rating", "4.0"))
	movieID, _ := added["id"].(string)
	if movieID == "" {
		t.Fatalf("expected add to return the movie id; got: %#v", added)
	}
	if added["rating"] != 4.0 {
		t.Fatalf("expected rating 4.0; got %v", added["rating"])
	}
	if _, ok := added["description"]; ok {
		t.Fatalf("expected no description key on a bare add; got: %#v", added)
	}

	// The new movie sits at the top.
	after := dataList(t, mustRunJSON(t, "--dir", dir, "movies", "list"))
	if len(after) != 9 {
		t.Fatalf("expected 9 movies after add; got %d", len(after))
	}
	if first, _ := after[0].(map[string]any); first["id"] != movieID {
		t.Fatalf("expected %s at the top; got %#v", movieID, after[0])
	}

	shown := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "show", movieID))
	if shown["title"] != "Alien" {
		t.Fatalf("expected show to return Alien; got %#v", shown)
	}

	rated := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "rate", movieID, "4.5"))
	if rated["rating"] != 4.5 {
		t.Fatalf("expected rating 4.5; got %v", rated["rating"])
	}

	commented := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "comment", movieID, "--message", "rewatch soon"))
	if commented["comment"] != "rewatch soon" {
		t.Fatalf("expected comment; got %#v", commented)
	}

	// An explicitly empty message stays in the data as "".
	emptied := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "comment", movieID, "--message", ""))
	if v, ok := emptied["comment"]; !ok || v != "" {
		t.Fatalf("expected a literal empty comment; got %#v", emptied)
	}

	// --clear removes the field entirely.
	cleared := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "comment", movieID, "--clear"))
	if _, ok := cleared["comment"]; ok {
		t.Fatalf("expected no comment key after --clear; got %#v", cleared)
	}

	deleted := dataMap(t, mustRunJSON(t, "--dir", dir, "movies", "delete", movieID))
	if deleted["id"] != movieID {
		t.Fatalf("expected delete to return the removed movie; got %#v", deleted)
	}
	if _, stderr, err := runCLI(t, []string{"--dir", dir, "movies", "delete", movieID}); err == nil {
		t.Fatalf("expected second delete to fail")
	} else if !strings.Contains(string(stderr), "movie not found") {
		t.Fatalf("expected not-found message; got:\n%s", stderr)
	}

	sorted := mustRunJSON(t, "--dir", dir, "movies", "sort")
	xs := dataList(t, sorted)
	if len(xs) != 8 {
		t.Fatalf("expected 8 movies after delete+sort; got %d", len(xs))
	}
	if first, _ := xs[0].(map[string]any); first["rating"] != 5.0 {
		t.Fatalf("expected the highest rating first; got %#v", xs[0])
	}

	resetEnv := mustRunJSON(t, "--dir", dir, "movies", "reset")
	if got := dataList(t, resetEnv); len(got) != 8 {
		t.Fatalf("expected reset to restore 8 movies; got %d", len(got))
	}

	evs := dataList(t, mustRunJSON(t, "--dir", dir, "events", "list"))
	if len(evs) == 0 {
		t.Fatalf("expected events after mutations")
	}
	types := map[string]bool{}
	for _, e := range evs {
		if m, ok := e.(map[string]any); ok {
			if ty, _ := m["type"].(string); ty != "" {
				types[ty] = true
			}
		}
	}
	for _, want := range []string{"movie.add", "movie.rate", "movie.delete", "list.sort", "list.reset"} {
		if !types[want] {
			t.Fatalf("expected a %s event; got types %v", want, types)
		}
	}

	doctorEnv := mustRunJSON(t, "--dir", dir, "doctor")
	meta, _ := doctorEnv["meta"].(map[string]any)
	if meta == nil || meta["hasErrors"] != false {
		t.Fatalf("expected a healthy store; got %#v", doctorEnv)
	}

	raw, _, err := runCLI(t, []string{"--dir", dir, "export", "--raw"})
	if err != nil {
		t.Fatalf("export --raw: %v", err)
	}
	if !strings.HasPrefix(string(raw), "# Movies") {
		t.Fatalf("expected markdown export; got:\n%s", raw)
	}

	topics := dataMap(t, mustRunJSON(t, "--dir", dir, "docs"))
	if ts, _ := topics["topics"].([]any); len(ts) == 0 {
		t.Fatalf("expected docs topics; got %#v", topics)
	}
}

func TestMoviesCLI_ValidationErrors(t *testing.T) {
	t.Setenv("REELIST_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	_, stderr, err := runCLI(t, []string{"--dir", dir, "movies", "add", "--title", "   "})
	if err == nil || !strings.Contains(string(stderr), "title must not be empty") {
		t.Fatalf("expected empty-title rejection; err=%v stderr:\n%s", err, stderr)
	}

	_, stderr, err = runCLI(t, []string{"--dir", dir, "movies", "rate", "mov-x", "abc"})
	if err == nil || !strings.Contains(string(stderr), "invalid rating") {
		t.Fatalf("expected invalid-rating rejection; err=%v stderr:\n%s", err, stderr)
	}

	_, stderr, err = runCLI(t, []string{"--dir", dir, "movies", "rate", "mov-x", "6"})
	if err == nil || !strings.Contains(string(stderr), "out of range") {
		t.Fatalf("expected out-of-range rejection; err=%v stderr:\n%s", err, stderr)
	}

	_, stderr, err = runCLI(t, []string{"--dir", dir, "movies", "show", "mov-nope"})
	if err == nil || !strings.Contains(string(stderr), "movie not found") {
		t.Fatalf("expected not-found; err=%v stderr:\n%s", err, stderr)
	}

	_, stderr, err = runCLI(t, []string{"--dir", dir, "movies", "comment", "mov-nope"})
	if err == nil || !strings.Contains(string(stderr), "missing --message") {
		t.Fatalf("expected missing-message rejection; err=%v stderr:\n%s", err, stderr)
	}

	// Rejected adds must leave the list untouched.
	xs := dataList(t, mustRunJSON(t, "--dir", dir, "movies", "list"))
	if len(xs) != 8 {
		t.Fatalf("expected the seeded 8 after rejected mutations; got %d", len(xs))
	}
}

func TestMoviesCLI_EDNOutput(t *testing.T) {
	t.Setenv("REELIST_CONFIG_DIR", t.TempDir())
	dir := t.TempDir()

	stdout, stderr, err := runCLI(t, []string{"--dir", dir, "--format", "edn", "movies", "list"})
	if err != nil {
		t.Fatalf("movies list --format edn: %v\nstderr:\n%s", err, stderr)
	}
	out := string(stdout)
	if !strings.HasPrefix(out, "{:data [") {
		t.Fatalf("expected an EDN envelope; got:\n%s", out)
	}
	if !strings.Contains(out, ":title") {
		t.Fatalf("expected EDN keywords; got:\n%s", out)
	}
}

func TestWorkspaceFlow(t *testing.T) {
	t.Setenv("REELIST_CONFIG_DIR", t.TempDir())

	initEnv := dataMap(t, mustRunJSON(t, "workspace", "init", "family"))
	if initEnv["workspace"] != "family" {
		t.Fatalf("expected workspace family; got %#v", initEnv)
	}
	if initEnv["movies"] != 8.0 {
		t.Fatalf("expected the new workspace seeded with 8 movies; got %#v", initEnv)
	}

	// No --dir: resolution goes through the current workspace.
	xs := dataList(t, mustRunJSON(t, "movies", "list"))
	if len(xs) != 8 {
		t.Fatalf("expected 8 movies in the current workspace; got %d", len(xs))
	}

	mustRunJSON(t, "workspace", "init", "personal")
	cur := dataMap(t, mustRunJSON(t, "workspace", "current"))
	if cur["workspace"] != "personal" {
		t.Fatalf("expected personal current; got %#v", cur)
	}

	mustRunJSON(t, "workspace", "use", "family")
	cur = dataMap(t, mustRunJSON(t, "workspace", "current"))
	if cur["workspace"] != "family" {
		t.Fatalf("expected family current after use; got %#v", cur)
	}

	listEnv := dataMap(t, mustRunJSON(t, "workspace", "list"))
	names, _ := listEnv["workspaces"].([]any)
	got := map[string]bool{}
	for _, n := range names {
		if s, ok := n.(string); ok {
			got[s] = true
		}
	}
	if !got["family"] || !got["personal"] {
		t.Fatalf("expected both workspaces listed; got %#v", names)
	}

	// Mutations land in the active workspace only.
	added := dataMap(t, mustRunJSON(t, "movies", "add", "--title", "Family Pick"))
	if added["id"] == "" {
		t.Fatalf("expected add in workspace; got %#v", added)
	}
	family := dataList(t, mustRunJSON(t, "movies", "list"))
	if len(family) != 9 {
		t.Fatalf("expected 9 in family; got %d", len(family))
	}
	mustRunJSON(t, "workspace", "use", "personal")
	personal := dataList(t, mustRunJSON(t, "movies", "list"))
	if len(personal) != 8 {
		t.Fatalf("expected personal untouched at 8; got %d", len(personal))
	}
}
