package utils

import "strings"

// PathTree is a nested map of '/' separated path segments, used to render
// category hierarchies.
type PathTree map[string]interface{}

func NewPathTree() PathTree {
	return make(map[string]interface{})
}

func (t PathTree) Add(path string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := map[string]interface{}(t)

	for _, segment := range segments {
		if _, ok := current[segment]; !ok {
			current[segment] = make(map[string]interface{})
		}
		current = current[segment].(map[string]interface{})
	}
}

func (t PathTree) Contains(path string) bool {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	current := map[string]interface{}(t)

	for _, segment := range segments {
		next, ok := current[segment]
		if !ok {
			return false
		}
		current = next.(map[string]interface{})
	}

	return true
}
