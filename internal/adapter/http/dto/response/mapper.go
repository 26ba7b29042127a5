package response

import (
	"log"

	"github.com/jinzhu/copier"
)

// mapTo copies same-named fields from src into a new T. Named string types
// (statuses, kinds) are converted to plain strings.
func mapTo[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		log.Printf("[http][dto] copy failed src=%T dst=%T err=%v", src, dst, err)
	}
	return dst
}

func mapAll[T any, S any](src []S) []T {
	out := make([]T, 0, len(src))
	for _, s := range src {
		out = append(out, mapTo[T](s))
	}
	return out
}
