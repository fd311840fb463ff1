package main

import (
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sno/pkg/record"
)

// marshalEntries renders entries as one YAML mapping in input order. A key
// seen twice keeps its first position and its last value.
func marshalEntries(entries []record.Entry) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	values := make(map[string]*yaml.Node, len(entries))
	for _, e := range entries {
		val := &yaml.Node{}
		if err := val.Encode(e.Value()); err != nil {
			return nil, err
		}
		if prev, ok := values[e.Key]; ok {
			*prev = *val
			continue
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		doc.Content = append(doc.Content, key, val)
		values[e.Key] = val
	}
	return yaml.Marshal(doc)
}
