package common

// BlogPublished is the body of a BlogPublishedKey message.
type BlogPublished struct {
	BlogID      string `json:"blog_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	AuthorEmail string `json:"author_email"`
	AuthorName  string `json:"author_name"`
}
