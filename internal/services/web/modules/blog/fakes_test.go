package blog

import (
	"context"
	"sync"

	"github.com/trainingken/site/internal/content"
)

type fakeContent struct {
	posts   []content.PostSummary
	post    content.PostDetail
	postErr error

	mu    sync.Mutex
	slugs []string
}

func (f *fakeContent) Home(context.Context) content.HomeView { return content.HomeView{} }

func (f *fakeContent) Posts(context.Context) []content.PostSummary { return f.posts }

func (f *fakeContent) Post(_ context.Context, slug string) (content.PostDetail, error) {
	f.mu.Lock()
	f.slugs = append(f.slugs, slug)
	f.mu.Unlock()
	if f.postErr != nil {
		return content.PostDetail{}, f.postErr
	}
	return f.post, nil
}

func (f *fakeContent) Sections() content.Sections { return content.AllSections() }

func contentFixture() content.PostDetail {
	return content.PostDetail{Title: "A", Slug: "a"}
}
