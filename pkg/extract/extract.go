// Package extract isolates the likely main content of an HTML page.
//
// It works in two phases on the raw document string: a fixed, ordered list of
// removal passes that strip markup which never carries article content
// (scripts, navigation, ads, social widgets, known boilerplate), followed by a
// pattern cascade that narrows the document to the first matching content
// container. Semantic containers are tried before heuristic class names, and
// the first match wins so the document is never narrowed twice.
package extract

import (
	"regexp"
	"strings"
)

// DefaultTitle is used when the page carries no usable <title>.
const DefaultTitle = "Untitled"

// stripPass removes markup matched by re from the working document.
type stripPass struct {
	name string
	re   *regexp.Regexp
}

var stripPasses = []stripPass{
	{"script", regexp.MustCompile(`(?is)<script\b.*?</script>`)},
	{"style", regexp.MustCompile(`(?is)<style\b.*?</style>`)},
	{"noscript", regexp.MustCompile(`(?is)<noscript\b.*?</noscript>`)},
	{"nav", regexp.MustCompile(`(?is)<nav\b.*?</nav>`)},
	{"header", regexp.MustCompile(`(?is)<header\b.*?</header>`)},
	{"footer", regexp.MustCompile(`(?is)<footer\b.*?</footer>`)},
	{"aside", regexp.MustCompile(`(?is)<aside\b.*?</aside>`)},
	{"ad-container", regexp.MustCompile(`(?is)<div[^>]*class="[^"]*(?:ads?|advertisement|banner|sponsor|promo|widget|sidebar)[^"]*"[^>]*>.*?</div>`)},
	{"iframe", regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)},
	{"social-widget", regexp.MustCompile(`(?is)<div[^>]*class="[^"]*(?:social|share|twitter|facebook|linkedin)[^"]*"[^>]*>.*?</div>`)},
	{"signup-form", regexp.MustCompile(`(?is)<form[^>]*(?:newsletter|subscribe|signup)[^>]*>.*?</form>`)},
	{"comments", regexp.MustCompile(`(?is)<div[^>]*(?:id|class)="[^"]*comment[^"]*"[^>]*>.*?</div>`)},
	{"speechify", regexp.MustCompile(`(?is)<[^>]+class="[^"]*speechify-ignore[^"]*"[^>]*>.*?</[^>]+>`)},
	{"publication-header", regexp.MustCompile(`(?is)<div[^>]*class="[^"]*(?:newsletter|publication-header)[^"]*"[^>]*>.*?</div>`)},
	{"newsletter-byline", regexp.MustCompile(`(?is)<div[^>]*>.*?Sent as a\s*Newsletter.*?</div>`)},
	{"min-read", regexp.MustCompile(`(?i)<[^>]*>\s*\d+\s*min\s*read\s*</[^>]*>`)},
}

// contentPattern captures the inner HTML of a candidate content container.
type contentPattern struct {
	name string
	re   *regexp.Regexp
}

// Ordered by reliability: semantic tags first, then platform-specific
// containers, then generic class/id guesses.
var contentPatterns = []contentPattern{
	{"main", regexp.MustCompile(`(?is)<main\b[^>]*>(.*?)</main>`)},
	{"article", regexp.MustCompile(`(?is)<article\b[^>]*>(.*?)</article>`)},
	{"section-content", regexp.MustCompile(`(?is)<div[^>]*class="[^"]*section-content[^"]*"[^>]*>(.*?)</div>`)},
	{"post-article", regexp.MustCompile(`(?is)<div[^>]*class="[^"]*postArticle-content[^"]*"[^>]*>(.*?)</div>`)},
	{"generic-content", regexp.MustCompile(`(?is)<div[^>]*(?:class|id)="[^"]*(?:content|main|body|post|entry|story)[^"]*"[^>]*>(.*?)</div>`)},
	{"role-main", regexp.MustCompile(`(?is)<div[^>]*role="main"[^>]*>(.*?)</div>`)},
}

var titleRe = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)

// Title returns the first <title> tag content, trimmed, or DefaultTitle.
func Title(html string) string {
	if m := titleRe.FindStringSubmatch(html); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			return t
		}
	}
	return DefaultTitle
}

// Extract strips non-content markup and narrows the document to its main
// content container. The pass list and pattern order are fixed, so output is
// deterministic for a given input.
func Extract(html string) string {
	for _, p := range stripPasses {
		html = p.re.ReplaceAllString(html, "")
	}

	for _, p := range contentPatterns {
		if m := p.re.FindStringSubmatch(html); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return html
}
