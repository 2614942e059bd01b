package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vocabquiz/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// Labels are the header texts of the id, term and meaning columns
type Labels struct {
	ID      string
	Term    string
	Meaning string
}

// Scraper fetches the word list from an HTML table
type Scraper struct {
	url    string
	labels Labels
	client *http.Client
	logger *zap.Logger
}

// NewScraper creates a new scraper
func NewScraper(url string, labels Labels, timeout time.Duration, logger *zap.Logger) *Scraper {
	return &Scraper{
		url:    url,
		labels: labels,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load downloads the page and converts its first table
func (s *Scraper) Load(ctx context.Context) ([]domain.WordEntry, error) {
	s.logger.Info("Downloading word list", zap.String("url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.url, resp.Status)
	}

	entries, err := ParseTable(resp.Body, s.labels)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Word list downloaded", zap.Int("entries", len(entries)))
	return entries, nil
}

// ParseTable reads the first <table> in an HTML document.
// The first row names the columns; rows without an integer id are skipped.
func ParseTable(r io.Reader, labels Labels) ([]domain.WordEntry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, fmt.Errorf("no table found")
	}

	rows := tableRows(table)
	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no rows")
	}

	header := rows[0]
	idCol, termCol, meaningCol := -1, -1, -1
	for i, h := range header {
		switch h {
		case labels.ID:
			idCol = i
		case labels.Term:
			termCol = i
		case labels.Meaning:
			meaningCol = i
		}
	}
	if idCol < 0 || termCol < 0 || meaningCol < 0 {
		return nil, fmt.Errorf("table header %q is missing one of %q, %q, %q",
			header, labels.ID, labels.Term, labels.Meaning)
	}

	width := max(idCol, termCol, meaningCol) + 1
	var entries []domain.WordEntry
	for _, row := range rows[1:] {
		if len(row) < width {
			continue
		}
		id, err := strconv.Atoi(row[idCol])
		if err != nil {
			continue
		}
		entries = append(entries, domain.WordEntry{
			ID:      id,
			Term:    row[termCol],
			Meaning: row[meaningCol],
		})
	}

	return entries, nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// tableRows collects the cell texts of every row, skipping nested tables
func tableRows(table *html.Node) [][]string {
	var rows [][]string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				rows = append(rows, rowCells(c))
			default:
				walk(c)
			}
		}
	}
	walk(table)

	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, cellText(c))
		}
	}
	return cells
}

func cellText(n *html.Node) string {
	var b strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " "))
}
