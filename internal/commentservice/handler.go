package commentservice

import (
	"context"
	"strings"

	"github.com/sushihentaime/blogfront/internal/apiclient"
	"github.com/sushihentaime/blogfront/internal/common"
	"github.com/sushihentaime/blogfront/internal/store"
)

func NewCommentBox(api API, state *store.State, postID string) *CommentBox {
	return &CommentBox{api: api, state: state, postID: postID}
}

func (b *CommentBox) PostID() string {
	return b.postID
}

// Load fetches the comments of the post and replaces the comment cache.
// Without a post id nothing is requested.
func (b *CommentBox) Load(ctx context.Context) ([]CommentView, error) {
	if b.postID == "" {
		return nil, ErrMissingPostID
	}

	comments, err := b.api.GetComments(ctx, b.postID)
	if err != nil {
		return nil, err
	}

	b.state.SetComments(b.postID, comments)
	return b.Views(), nil
}

// Views renders the cached comments of the post for the current user.
func (b *CommentBox) Views() []CommentView {
	comments, ok := b.state.Comments(b.postID)
	if !ok {
		return nil
	}

	return toViews(comments, b.state.UserID(), b.state.EditingCommentID())
}

func (b *CommentBox) Add(ctx context.Context, content string) (*apiclient.Response, error) {
	if b.postID == "" {
		return nil, ErrMissingPostID
	}
	if !b.state.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	content = strings.TrimSpace(content)

	v := common.NewValidator()
	validateContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := b.api.CreateComment(ctx, b.postID, content)
	if err != nil {
		return nil, err
	}

	b.refresh(ctx, "Comment added")
	return res, nil
}

// Edit saves new content for a comment and leaves edit mode.
func (b *CommentBox) Edit(ctx context.Context, commentID, content string) (*apiclient.Response, error) {
	if b.postID == "" {
		return nil, ErrMissingPostID
	}

	content = strings.TrimSpace(content)

	v := common.NewValidator()
	validateCommentID(v, commentID)
	validateContent(v, content)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := b.api.EditComment(ctx, commentID, content)
	if err != nil {
		return nil, err
	}

	b.state.CancelEdit()
	b.refresh(ctx, "Comment updated")
	return res, nil
}

func (b *CommentBox) Delete(ctx context.Context, commentID string) (*apiclient.Response, error) {
	if b.postID == "" {
		return nil, ErrMissingPostID
	}

	v := common.NewValidator()
	validateCommentID(v, commentID)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := b.api.DeleteComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	b.refresh(ctx, "Comment deleted")
	return res, nil
}

// Like toggles the current user's like on a comment. The backend decides the direction.
func (b *CommentBox) Like(ctx context.Context, commentID string) (*apiclient.Response, error) {
	if b.postID == "" {
		return nil, ErrMissingPostID
	}
	if !b.state.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	v := common.NewValidator()
	validateCommentID(v, commentID)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := b.api.LikeComment(ctx, commentID)
	if err != nil {
		return nil, err
	}

	b.refresh(ctx, "Comment like updated")
	return res, nil
}

// BeginEdit puts one comment into edit mode, replacing any other. Only cached comments can be edited.
func (b *CommentBox) BeginEdit(commentID string) bool {
	return b.state.BeginEdit(b.postID, commentID)
}

func (b *CommentBox) CancelEdit() {
	b.state.CancelEdit()
}

// refresh refetches the list after a mutation the backend accepted. A failed refetch does
// not undo the mutation, so it only leaves a notice next to the mutation's own result.
func (b *CommentBox) refresh(ctx context.Context, done string) {
	_, err := b.Load(ctx)
	if err != nil {
		b.state.Error(done + ", but the comments could not be refreshed.")
	}
}

// MyBlogComments lists the comments left on the signed in user's blogs.
func MyBlogComments(ctx context.Context, api API, state *store.State) ([]CommentView, error) {
	if !state.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	comments, err := api.GetMyBlogComments(ctx)
	if err != nil {
		return nil, err
	}

	return toViews(comments, state.UserID(), ""), nil
}

func toViews(comments []apiclient.Comment, userID, editingID string) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		count := c.NumberOfLikes
		if count == 0 {
			count = len(c.Likes)
		}

		views = append(views, CommentView{
			ID:         c.ID,
			Content:    c.Content,
			AuthorName: c.Author.FullName(),
			AuthorID:   c.Author.ID,
			PhotoURL:   c.Author.PhotoURL,
			PostID:     c.Post.ID,
			PostTitle:  c.Post.Title,
			LikeCount:  count,
			CreatedAt:  c.CreatedAt,
			Liked:      c.LikedBy(userID),
			Editing:    editingID != "" && c.ID == editingID,
			Owned:      userID != "" && c.Author.ID == userID,
		})
	}

	return views
}
