package cleaner

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`[ \t\r\f]+`)
	nonASCIIRe   = regexp.MustCompile(`[^\x00-\x7F]+`)
	tagRe        = regexp.MustCompile("<[^>]*>")
)

type Cleaner struct{}

func New() *Cleaner {
	return &Cleaner{}
}

// HTML reduces a pasted job posting to its readable text blocks. Job boards
// wrap the actual description in heavy chrome; keep paragraphs, list items
// and headings, drop the rest.
func (c *Cleaner) HTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return c.Text(tagRe.ReplaceAllString(html, " "))
	}
	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()
	var textBlocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			textBlocks = append(textBlocks, text)
		}
	})
	if len(textBlocks) > 0 {
		return strings.Join(textBlocks, "\n")
	}

	bodyText := strings.TrimSpace(doc.Find("body").Text())
	if len(bodyText) > 0 {
		return c.Text(bodyText)
	}

	return c.Text(doc.Text())
}

// Text normalizes extracted document text: non-ASCII artifacts from PDF
// extraction become spaces, runs of whitespace collapse to one space per
// line. Line breaks survive so section and bullet scanning still work.
func (c *Cleaner) Text(text string) string {
	text = nonASCIIRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// ModelResponse strips markdown code fences the model wraps JSON payloads in.
func (c *Cleaner) ModelResponse(response string) string {
	if !strings.Contains(response, "```") {
		return strings.TrimSpace(response)
	}

	start := -1
	if strings.Contains(response, "```json") {
		start = strings.Index(response, "```json") + 7
	} else {
		start = strings.Index(response, "```") + 3
	}

	end := strings.LastIndex(response, "```")

	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(response[start:end])
	}

	return strings.TrimSpace(response)
}
