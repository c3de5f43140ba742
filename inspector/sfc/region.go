package sfc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	goerrors "github.com/go-errors/errors"
	"golang.org/x/net/html"
)

// ErrUnbalanced is returned when a top level block is never closed
var ErrUnbalanced = errors.New("unbalanced component block")

// block represents a top level block of a single-file component
type block struct {
	name       string
	attrs      map[string]string
	outerStart int // start of the opening tag
	start      int // start of the content
	end        int // end of the content
	outerEnd   int // end of the closing tag
}

func (b *block) content(src []byte) string {
	return string(src[b.start:b.end])
}

func (b *block) has(attr string) bool {
	_, ok := b.attrs[attr]
	return ok
}

// topLevelBlocks tokenizes src and returns blocks whose name is in names.
// Nested template tags are depth tracked so only the outermost template closes a block.
func topLevelBlocks(src []byte, names ...string) ([]*block, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	z := html.NewTokenizer(bytes.NewReader(src))
	var (
		blocks  []*block
		current *block
		depth   int
		offset  int
	)
	for {
		tokenType := z.Next()
		start := offset
		offset += len(z.Raw())
		switch tokenType {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, goerrors.WrapPrefix(err, "failed to tokenize component", 0)
			}
			if current != nil {
				return nil, fmt.Errorf("<%s> is not closed: %w", current.name, ErrUnbalanced)
			}
			return blocks, nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if current == nil {
				if !wanted[tag] {
					continue
				}
				current = &block{name: tag, attrs: tagAttributes(z, hasAttr), outerStart: start, start: offset}
				depth = 1
				continue
			}
			if tag == current.name {
				depth++
			}
		case html.EndTagToken:
			if current == nil {
				continue
			}
			name, _ := z.TagName()
			if string(name) != current.name {
				continue
			}
			if depth--; depth > 0 {
				continue
			}
			current.end = start
			current.outerEnd = offset
			blocks = append(blocks, current)
			current = nil
		}
	}
}

func tagAttributes(z *html.Tokenizer, hasAttr bool) map[string]string {
	attrs := map[string]string{}
	for hasAttr {
		var key, value []byte
		key, value, hasAttr = z.TagAttr()
		attrs[string(key)] = string(value)
	}
	return attrs
}

// scriptLang normalizes script lang attribute
func scriptLang(b *block) string {
	switch strings.ToLower(b.attrs["lang"]) {
	case "ts", "tsx", "typescript":
		return "ts"
	}
	return "js"
}

// splitVue returns template content as markup and script plus script setup content as logic
func splitVue(src []byte) (markup, logic, lang string, err error) {
	blocks, err := topLevelBlocks(src, "template", "script", "style")
	if err != nil {
		return "", "", "", err
	}
	lang = "js"
	var scripts []string
	var setup string
	markupFound := false
	for _, b := range blocks {
		switch b.name {
		case "template":
			if markupFound {
				continue
			}
			markupFound = true
			markup = b.content(src)
		case "script":
			if scriptLang(b) == "ts" {
				lang = "ts"
			}
			if b.has("setup") {
				setup = b.content(src)
				continue
			}
			scripts = append(scripts, b.content(src))
		}
	}
	if setup != "" {
		scripts = append(scripts, setup)
	}
	return markup, strings.Join(scripts, "\n"), lang, nil
}

// splitSvelte returns everything outside script and style blocks as markup and the scripts as logic
func splitSvelte(src []byte) (markup, logic, lang string, err error) {
	blocks, err := topLevelBlocks(src, "script", "style")
	if err != nil {
		return "", "", "", err
	}
	lang = "js"
	builder := &strings.Builder{}
	var scripts []string
	prev := 0
	for _, b := range blocks {
		builder.Write(src[prev:b.outerStart])
		prev = b.outerEnd
		if b.name != "script" {
			continue
		}
		if scriptLang(b) == "ts" {
			lang = "ts"
		}
		scripts = append(scripts, b.content(src))
	}
	builder.Write(src[prev:])
	return builder.String(), strings.Join(scripts, "\n"), lang, nil
}
