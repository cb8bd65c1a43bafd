package port

type StopwordFilter interface {
	Filter(tokens []string) []string

	Contains(token string) bool
}
