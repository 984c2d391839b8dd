package lessons

import (
	"context"
	"fmt"
	"io"
)

type Article struct {
	Headline string
	Location string
	Author   string
	Content  string
}

func (a Article) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

// LongestWithAnnouncement prints ann before returning the longer of x and y.
func LongestWithAnnouncement[T any](w io.Writer, x, y string, ann T) string {
	fmt.Fprintf(w, "Announcement! %v\n", ann)
	return Longest(x, y)
}

// PrintSummaries calls Summarize through the interface for each item.
func PrintSummaries(w io.Writer, items []Summary) {
	for _, item := range items {
		fmt.Fprintf(w, "Summary: %s\n", item.Summarize())
	}
}

func Lesson7(_ context.Context, w io.Writer) error {
	article := Article{
		Headline: "Go Announces Range-over-func Iterators",
		Location: "Internet",
		Author:   "The Go Team",
		Content:  "Today, the Go programming language announced ...",
	}

	fmt.Fprintf(w, "Article summary: %s\n", article.Summarize())

	longest := LongestWithAnnouncement(w, "long text", "short text", "Now comparing text lengths")
	fmt.Fprintf(w, "The longest text is '%s'\n", longest)

	PrintSummaries(w, []Summary{article, NewsArticle{Headline: "Lesson 7", Author: "lessons", Location: "here"}})
	return nil
}
