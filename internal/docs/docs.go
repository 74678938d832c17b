// Package docs serves the embedded help topics shown by `reelist docs`:
// getting-started, data, and workspaces.
package docs

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// Topics lists the available topic names, one per embedded markdown file.
func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return []string{}
	}
	topics := make([]string, 0, len(entries))
	for _, p := range entries {
		name := strings.TrimSuffix(path.Base(p), ".md")
		if name != "" {
			topics = append(topics, name)
		}
	}
	return topics
}

// Get returns the markdown body for a topic. Lookup is case-insensitive.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", topic+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}
