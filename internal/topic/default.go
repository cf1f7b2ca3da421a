package topic

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed default_topic.yaml
var defaultTopicYAML []byte

var (
	defaultOnce  sync.Once
	defaultTopic Topic
	defaultErr   error
)

// Default returns the built-in topic. It panics if the embedded file is
// invalid, which only a broken build can cause.
func Default() Topic {
	defaultOnce.Do(func() {
		defaultTopic, defaultErr = Parse(defaultTopicYAML, FormatYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("embedded default topic: %v", defaultErr))
	}
	return defaultTopic.clone()
}

// Resolve returns the topic at path, or the built-in topic when path is empty.
func Resolve(path string) (Topic, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
