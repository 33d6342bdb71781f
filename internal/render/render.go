// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render turns a plain-text article body written in a small markdown
// subset into an ordered sequence of display blocks. The subset covers three
// heading levels, unordered and ordered list items, bold spans, markdown-style
// links and bare URLs. Everything else is a paragraph.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockType identifies the kind of a rendered block.
type BlockType string

// Block types.
const (
	BlockHeading   BlockType = "heading"
	BlockListItem  BlockType = "list_item"
	BlockParagraph BlockType = "paragraph"
)

// Block is one structured unit of rendered article content. Consecutive list
// items are deliberately emitted as independent blocks, never grouped into a
// list container; downstream presentation depends on the flat structure.
type Block struct {
	Type    BlockType `json:"type"`
	Level   int       `json:"level,omitempty"`   // headings: 1-3
	Ordered bool      `json:"ordered,omitempty"` // list items
	Text    string    `json:"text,omitempty"`    // headings: literal text
	HTML    string    `json:"html,omitempty"`    // list items, paragraphs
}

var orderedItemRe = regexp.MustCompile(`^\d+\.\s`)

// Render splits a body into lines and classifies each non-blank line into a
// block. Blank lines are dropped. Heading text is escaped but receives no
// inline transform; list items and paragraphs go through the full inline
// transform.
func Render(body string) []Block {
	var blocks []Block

	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, heading(3, line[4:]))
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, heading(2, line[3:]))
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, heading(1, line[2:]))
		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, Block{
				Type: BlockListItem,
				HTML: inline(line[2:]),
			})
		case orderedItemRe.MatchString(line):
			blocks = append(blocks, Block{
				Type:    BlockListItem,
				Ordered: true,
				HTML:    inline(orderedItemRe.ReplaceAllString(line, "")),
			})
		default:
			blocks = append(blocks, Block{
				Type: BlockParagraph,
				HTML: inline(line),
			})
		}
	}

	return blocks
}

func heading(level int, text string) Block {
	return Block{
		Type:  BlockHeading,
		Level: level,
		Text:  text,
		HTML:  escape(text),
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escape replaces the five HTML-significant characters with entities. All
// literal text passes through here before any markup wrapping.
func escape(s string) string {
	return htmlEscaper.Replace(s)
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://[^\s<]+`)
	trailingPunct  = regexp.MustCompile(`[\]\)\}.,;:!?]+$`)
	boldRe         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	tokenRe        = regexp.MustCompile("\x00(\\d+)\x01")
)

// inline applies the inline transform to one line of text.
//
// Anchors are built in three stages so the bare-URL scan cannot re-process a
// markdown link target: stage one extracts markdown links into a side table
// and leaves opaque numbered tokens behind, stage two linkifies bare URLs the
// same way, stage three escapes the remaining literal text, wraps bold spans
// and substitutes the finished anchors back in.
func inline(text string) string {
	var anchors []string

	token := func(a string) string {
		anchors = append(anchors, a)
		return fmt.Sprintf("\x00%d\x01", len(anchors)-1)
	}

	// Stage 1: markdown links [label](https://url).
	out := markdownLinkRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := markdownLinkRe.FindStringSubmatch(m)
		return token(anchor(sub[2], sub[1]))
	})

	// Stage 2: bare URLs, with trailing punctuation kept out of the target
	// and re-emitted as plain text after the anchor.
	out = bareURLRe.ReplaceAllStringFunc(out, func(rawURL string) string {
		trimmed := trailingPunct.ReplaceAllString(rawURL, "")
		trailing := rawURL[len(trimmed):]
		return token(anchor(trimmed, trimmed)) + trailing
	})

	// Stage 3: escape literal text, wrap bold spans, restore anchors.
	out = escape(out)
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = tokenRe.ReplaceAllStringFunc(out, func(m string) string {
		// Literal placeholder bytes in the source text can match here
		// without a corresponding anchor; they collapse to nothing.
		idx, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || idx < 0 || idx >= len(anchors) {
			return ""
		}
		return anchors[idx]
	})

	return out
}

// anchor builds a safe external link; href and label are escaped before
// insertion.
func anchor(href, label string) string {
	return `<a href="` + escape(href) + `" target="_blank" rel="noopener noreferrer">` + escape(label) + `</a>`
}
