package port

type Stemmer interface {
	Stem(word string) string

	Name() string
}
