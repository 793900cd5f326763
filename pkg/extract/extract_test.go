package extract

import (
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "simple title",
			html: `<html><head><title>My Article</title></head><body></body></html>`,
			want: "My Article",
		},
		{
			name: "title with attributes",
			html: `<title data-rh="true"> Spaced Out </title>`,
			want: "Spaced Out",
		},
		{
			name: "missing title",
			html: `<html><body><p>no title</p></body></html>`,
			want: "Untitled",
		},
		{
			name: "empty title",
			html: `<title>   </title>`,
			want: "Untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.html); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractRemoval(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "removes scripts and styles",
			html:     `<div class="content"><script>alert(1)</script><style>p{}</style><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"alert", "<style>"},
		},
		{
			name:     "removes structural chrome",
			html:     `<div class="content"><nav>Menu</nav><header>Top</header><footer>Bottom</footer><aside>Side</aside><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"Menu", "Top", "Bottom", "Side"},
		},
		{
			name:     "removes ad containers by class",
			html:     `<div class="content"><div class="ad-banner">Buy now</div><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"Buy now"},
		},
		{
			name:     "removes social widgets",
			html:     `<div class="content"><div class="social-links">Tweet</div><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"Tweet"},
		},
		{
			name:     "removes newsletter forms",
			html:     `<div class="content"><form class="newsletter" action="/s">Subscribe</form><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"Subscribe"},
		},
		{
			name:     "removes comment sections",
			html:     `<div class="content"><p>Body</p></div><div id="comments-area">First!</div>`,
			contains: []string{"Body"},
			excludes: []string{"First!"},
		},
		{
			name:     "removes speechify-ignore elements",
			html:     `<div class="content"><span class="speechify-ignore foo">skip me</span><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"skip me"},
		},
		{
			name:     "removes min read markers",
			html:     `<div class="content"><span>4 min read</span><p>Body</p></div>`,
			contains: []string{"Body"},
			excludes: []string{"min read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.html)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Extract() missing %q in %q", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("Extract() still contains %q in %q", unwanted, got)
				}
			}
		})
	}
}

func TestExtractContentCascade(t *testing.T) {
	t.Run("article beats generic content class", func(t *testing.T) {
		html := `<body><div class="content">generic fallback</div><article><p>semantic wins</p></article></body>`
		got := Extract(html)
		if !strings.Contains(got, "semantic wins") {
			t.Errorf("expected article content, got %q", got)
		}
		if strings.Contains(got, "generic fallback") {
			t.Errorf("generic container should not have been selected: %q", got)
		}
	})

	t.Run("main beats article", func(t *testing.T) {
		html := `<body><article>second</article><main><p>first</p></main></body>`
		got := Extract(html)
		if !strings.Contains(got, "first") || strings.Contains(got, "second") {
			t.Errorf("expected main content, got %q", got)
		}
	})

	t.Run("role main is the last resort", func(t *testing.T) {
		html := `<body><div role="main"><p>role content</p></div></body>`
		got := Extract(html)
		if !strings.Contains(got, "role content") {
			t.Errorf("expected role=main content, got %q", got)
		}
	})

	t.Run("no pattern match keeps stripped document", func(t *testing.T) {
		html := `<body><p>plain page</p></body>`
		got := Extract(html)
		if !strings.Contains(got, "plain page") {
			t.Errorf("expected original content, got %q", got)
		}
	})
}

func TestExtractDeterministic(t *testing.T) {
	html := `<html><head><title>T</title><script>x()</script></head>` +
		`<body><nav>nav</nav><article><p>Content</p></article><div class="content">other</div></body></html>`
	first := Extract(html)
	second := Extract(html)
	if first != second {
		t.Errorf("extraction not deterministic:\nfirst:  %q\nsecond: %q", first, second)
	}
}
