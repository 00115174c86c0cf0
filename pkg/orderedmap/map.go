// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

// Map is a string-keyed map that remembers insertion order.
type Map struct {
	items []MapItem
}

type MapItem struct {
	Key   string
	Value string
}

func NewMap() *Map {
	return &Map{}
}

func NewMapWithItems(items []MapItem) *Map {
	m := &Map{}
	for _, item := range items {
		m.Set(item.Key, item.Value)
	}
	return m
}

// Set replaces the value of an existing key in place, keeping its position.
func (m *Map) Set(key, value string) {
	for i, item := range m.items {
		if item.Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem{key, value})
}

func (m *Map) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	var keys []string
	for _, item := range m.items {
		keys = append(keys, item.Key)
	}
	return keys
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}
