package home

import (
	"context"
	"sync/atomic"

	"github.com/trainingken/site/internal/content"
)

type fakeContent struct {
	view  content.HomeView
	calls atomic.Int32
}

func (f *fakeContent) Home(context.Context) content.HomeView {
	f.calls.Add(1)
	return f.view
}

func (f *fakeContent) Posts(context.Context) []content.PostSummary { return nil }

func (f *fakeContent) Post(context.Context, string) (content.PostDetail, error) {
	return content.PostDetail{}, content.ErrNotFound
}

func (f *fakeContent) Sections() content.Sections { return content.AllSections() }
