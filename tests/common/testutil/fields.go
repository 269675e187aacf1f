//go:build unit || e2e

package testutil

// Mutation edits the JSON form of a request DTO before it is sent.
type Mutation func(m map[string]any)

// Field overwrites key with value, e.g. a string where the API expects a number.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		m[key] = value
	}
}

// Without drops key, simulating a client that omits a required field.
func Without(key string) Mutation {
	return func(m map[string]any) {
		delete(m, key)
	}
}
