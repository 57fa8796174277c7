package mailer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

var (
	markdown     goldmark.Markdown
	markdownOnce sync.Once
)

// draftHeader is the YAML frontmatter of a message file.
type draftHeader struct {
	Date    time.Time         `yaml:"date"`
	Headers map[string]string `yaml:"headers"`
	From    string            `yaml:"from"`
	ReplyTo string            `yaml:"reply_to"`
	Subject string            `yaml:"subject"`
	To      []string          `yaml:"to"`
	CC      []string          `yaml:"cc"`
	BCC     []string          `yaml:"bcc"`
	Tags    []string          `yaml:"tags"`
}

// ParseDraft builds an Email from a message file: YAML frontmatter carrying
// addresses and subject, followed by a markdown body.
//
//	---
//	to: [alice@example.com]
//	subject: Quarterly report
//	tags: [reports]
//	---
//	Hello **Alice**, the report is attached.
//
// The body is rendered to HTML; the markdown source becomes the text part.
// Content without frontmatter yields an Email with only the body set.
func ParseDraft(content []byte) (*Email, error) {
	front, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	var hdr draftHeader
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &hdr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	email := &Email{
		Date:    hdr.Date,
		Headers: hdr.Headers,
		From:    hdr.From,
		ReplyTo: hdr.ReplyTo,
		Subject: hdr.Subject,
		To:      hdr.To,
		CC:      hdr.CC,
		BCC:     hdr.BCC,
	}
	if len(hdr.Tags) > 0 {
		email.Tags = SimpleTags(hdr.Tags...)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return email, nil
	}

	html, err := RenderMarkdown(text)
	if err != nil {
		return nil, err
	}
	email.Text = text
	email.HTML = html
	return email, nil
}

// RenderMarkdown converts markdown (GitHub flavored) to HTML.
func RenderMarkdown(src string) (string, error) {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

func splitFrontmatter(content []byte) (front, body []byte, err error) {
	delimiter := []byte("---")

	if !bytes.HasPrefix(content, delimiter) {
		return nil, content, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	return rest[:end], rest[end+len(delimiter):], nil
}
