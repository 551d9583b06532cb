package store

import (
	"slices"
	"sync"
	"time"

	"github.com/sushihentaime/blogfront/internal/apiclient"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown once on the next rendered page.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// State is everything the frontend holds for one browser session: the auth slice, the
// blog list cache, the comment list of the currently viewed post and pending notices.
// All mutation goes through its methods; it is safe for concurrent use.
type State struct {
	mu sync.Mutex

	token string
	user  *apiclient.User

	blogs []apiclient.Blog

	commentsPostID   string
	comments         []apiclient.Comment
	editingCommentID string

	notices []Notice

	// set when token or user changed since the last save
	authDirty bool
	// when the repository expiry was last pushed forward
	savedAt time.Time
}

func NewState() *State {
	return &State{}
}

// Token implements apiclient.Session.
func (s *State) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Revoke implements apiclient.Session. It drops the token and the user.
func (s *State) Revoke() {
	s.SignOut()
}

func (s *State) SignIn(token string, user apiclient.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
	s.authDirty = true
}

func (s *State) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" && s.user == nil {
		return
	}

	s.token = ""
	s.user = nil
	s.editingCommentID = ""
	s.authDirty = true
}

// SetUser replaces the signed-in user, keeping the token.
func (s *State) SetUser(user apiclient.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.authDirty = true
}

// User returns a copy of the signed-in user, or nil.
func (s *State) User() *apiclient.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	u := *s.user
	return &u
}

func (s *State) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ""
	}

	return s.user.ID
}

func (s *State) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *State) Blogs() []apiclient.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.blogs)
}

// SetBlogs replaces the blog cache wholesale.
func (s *State) SetBlogs(blogs []apiclient.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = slices.Clone(blogs)
}

func (s *State) AppendBlog(b apiclient.Blog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append(s.blogs, b)
}

func (s *State) FindBlog(id string) (apiclient.Blog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.blogIndex(id)
	if i < 0 {
		return apiclient.Blog{}, false
	}

	return s.blogs[i], true
}

// UpdateBlog applies fn to the cached blog with the given id. It reports whether the blog was cached.
func (s *State) UpdateBlog(id string, fn func(b *apiclient.Blog)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.blogIndex(id)
	if i < 0 {
		return false
	}

	b := s.blogs[i]
	b.Likes = slices.Clone(b.Likes)
	fn(&b)
	s.blogs[i] = b

	return true
}

func (s *State) ReplaceBlog(b apiclient.Blog) bool {
	return s.UpdateBlog(b.ID, func(cached *apiclient.Blog) { *cached = b })
}

func (s *State) RemoveBlog(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blogs = slices.DeleteFunc(s.blogs, func(b apiclient.Blog) bool { return b.ID == id })
}

func (s *State) blogIndex(id string) int {
	return slices.IndexFunc(s.blogs, func(b apiclient.Blog) bool { return b.ID == id })
}

// SetComments replaces the comment cache. Moving to another post leaves edit mode.
func (s *State) SetComments(postID string, comments []apiclient.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if postID != s.commentsPostID {
		s.editingCommentID = ""
	}

	s.commentsPostID = postID
	s.comments = slices.Clone(comments)

	if s.editingCommentID != "" && !slices.ContainsFunc(s.comments, func(c apiclient.Comment) bool { return c.ID == s.editingCommentID }) {
		s.editingCommentID = ""
	}
}

// Comments returns the cached comments when they belong to postID.
func (s *State) Comments(postID string) ([]apiclient.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if postID == "" || postID != s.commentsPostID {
		return nil, false
	}

	return slices.Clone(s.comments), true
}

func (s *State) CommentCount(postID string) int {
	comments, _ := s.Comments(postID)
	return len(comments)
}

// BeginEdit puts one comment of the current post in edit mode, replacing any other.
func (s *State) BeginEdit(postID, commentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if postID != s.commentsPostID || !slices.ContainsFunc(s.comments, func(c apiclient.Comment) bool { return c.ID == commentID }) {
		return false
	}

	s.editingCommentID = commentID
	return true
}

func (s *State) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingCommentID = ""
}

func (s *State) EditingCommentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingCommentID
}

func (s *State) Notify(kind NoticeKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, Notice{Kind: kind, Message: message})
}

func (s *State) Success(message string) {
	s.Notify(NoticeSuccess, message)
}

func (s *State) Error(message string) {
	s.Notify(NoticeError, message)
}

// PopNotices returns the pending notices and forgets them.
func (s *State) PopNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.notices
	s.notices = nil
	return n
}

func (s *State) snapshot() (token string, user *apiclient.User, dirty bool, savedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		u := *s.user
		user = &u
	}

	return s.token, user, s.authDirty, s.savedAt
}

func (s *State) markSaved(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authDirty = false
	s.savedAt = at
}

func restoreState(token string, user *apiclient.User, savedAt time.Time) *State {
	return &State{token: token, user: user, savedAt: savedAt}
}
