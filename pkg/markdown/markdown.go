// Package markdown converts cleaned HTML into Markdown.
//
// It configures the html-to-markdown rule engine with ATX headings, fenced
// code blocks and inline links, and layers custom rules on top for links
// (empty-text fallbacks, affiliate unwrapping, tracking-parameter cleanup),
// fenced code language tags, and image alt defaults. Conversion is a pure
// function of the input and options; no network access happens here.
package markdown

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Options controls conversion behavior for one run.
type Options struct {
	// CleanAffiliateLinks unwraps tracking redirects to their destination URL.
	CleanAffiliateLinks bool
}

// blockedClassMarkers elide an element regardless of tag when its class
// attribute contains any of them.
var blockedClassMarkers = []string{
	"speechify-ignore",
	"newsletter",
	"social-share",
	"author-info",
	"publication-info",
}

// removedTags have no Markdown representation and are dropped entirely.
var removedTags = []string{
	"script", "noscript", "style", "meta", "link", "iframe", "object",
	"embed", "button", "form", "input", "select", "textarea", "svg",
}

var languageRe = regexp.MustCompile(`language-(\S+)`)

// Convert renders html as Markdown text.
func Convert(html string, opts Options) (string, error) {
	return newConverter(opts).ConvertString(html)
}

func newConverter(opts Options) *md.Converter {
	conv := md.NewConverter("", true, &md.Options{
		HeadingStyle:     "atx",
		HorizontalRule:   "---",
		BulletListMarker: "-",
		CodeBlockStyle:   "fenced",
		Fence:            "```",
		EmDelimiter:      "_",
		StrongDelimiter:  "**",
		LinkStyle:        "inlined",
	})

	conv.Remove(removedTags...)

	conv.Before(func(selec *goquery.Selection) {
		selec.Find("*").Each(func(_ int, s *goquery.Selection) {
			class := s.AttrOr("class", "")
			for _, marker := range blockedClassMarkers {
				if strings.Contains(class, marker) {
					s.Remove()
					return
				}
			}
		})
	})

	conv.AddRules(
		linkRule(opts.CleanAffiliateLinks),
		fencedCodeRule(),
		imageRule(),
	)

	return conv
}

// fencedCodeRule renders a <pre> whose first child is <code> as a fenced
// block, carrying over a language-X class as the fence language tag. The code
// text is emitted verbatim.
func fencedCodeRule() md.Rule {
	return md.Rule{
		Filter: []string{"pre"},
		Replacement: func(content string, selec *goquery.Selection, options *md.Options) *string {
			code := selec.Children().First()
			if !code.Is("code") {
				return nil
			}

			language := ""
			if m := languageRe.FindStringSubmatch(code.AttrOr("class", "")); m != nil {
				language = m[1]
			}

			return md.String("\n\n" + options.Fence + language + "\n" + code.Text() + "\n" + options.Fence + "\n\n")
		},
	}
}

// imageRule renders ![alt](src "title"), defaulting blank alt text to
// "image" and skipping images with no src at all.
func imageRule() md.Rule {
	return md.Rule{
		Filter: []string{"img"},
		Replacement: func(content string, selec *goquery.Selection, options *md.Options) *string {
			src := selec.AttrOr("src", "")
			if src == "" {
				return md.String("")
			}

			alt := strings.TrimSpace(selec.AttrOr("alt", ""))
			if alt == "" {
				alt = "image"
			}

			out := "![" + alt + "](" + src
			if title, ok := selec.Attr("title"); ok {
				out += " \"" + title + "\""
			}
			out += ")"
			return md.String(out)
		},
	}
}
