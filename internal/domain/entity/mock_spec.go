package entity

// MockSpec is the structured object recovered from a model completion.
// It is intentionally schema-free: any string-keyed JSON object is accepted,
// and nothing beyond syntactic validity is ever enforced. The prompt asks for
// a conventional shape (a "results" array of items), but the provider is not
// trusted to comply.
type MockSpec map[string]any
