package main

type contentSearcher interface {
	Search(path string, term string) (matches []string)
}
