package blogservice

import (
	"slices"
	"strings"

	"github.com/sushihentaime/blogfront/internal/apiclient"
)

// toggleMembership adds or removes id from a like list.
func toggleMembership(likes []string, id string, add bool) []string {
	if add {
		if slices.Contains(likes, id) {
			return likes
		}
		return append(likes, id)
	}

	return slices.DeleteFunc(likes, func(l string) bool { return l == id })
}

func matches(b apiclient.Blog, q string) bool {
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Subtitle), q) ||
		strings.Contains(strings.ToLower(b.Category), q)
}

func filterBlogs(blogs []apiclient.Blog, query string) []apiclient.Blog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return blogs
	}

	out := make([]apiclient.Blog, 0, len(blogs))
	for _, b := range blogs {
		if matches(b, q) {
			out = append(out, b)
		}
	}

	return out
}

func totalLikes(blogs []apiclient.Blog) int {
	n := 0
	for _, b := range blogs {
		n += b.LikeCount()
	}

	return n
}
