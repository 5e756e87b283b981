// Package docs embeds the user documentation served by the topic command.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topic returns the markdown content of the named documentation topic. An
// unknown name is an error listing the available topics.
func Topic(name string) (string, error) {
	content, err := pages.ReadFile(name + ".md")
	if err != nil {
		known, _ := Topics()
		return "", fmt.Errorf("unknown topic %q, available topics: %s", name, strings.Join(known, ", "))
	}
	return string(content), nil
}

// Topics returns the sorted names of the documentation topics. The readme is
// the landing page listing them, not a topic itself.
func Topics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "readme" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
