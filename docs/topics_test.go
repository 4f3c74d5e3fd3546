package docs

import (
	"slices"
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("readme topic: %v", err)
	}
	if !strings.Contains(content, "# nut") {
		t.Errorf("readme content unexpected: %q", content)
	}
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topic should be an error")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if slices.Contains(topics, "readme") {
		t.Error("readme should not be listed as a topic")
	}
	if !slices.IsSorted(topics) {
		t.Errorf("topics should be sorted: %v", topics)
	}

	// Every topic announced in the readme must exist.
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if !strings.Contains(readme, "`"+topic+"`") {
			t.Errorf("topic %q is not announced in the readme", topic)
		}
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("topic %q does not load: %v", topic, err)
		}
	}
}
