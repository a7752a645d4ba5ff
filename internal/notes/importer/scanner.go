package importer

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"noteboard/internal/logs"
	"noteboard/internal/notes"
)

// Draft is a note read from disk, not yet added to a store
type Draft struct {
	Title string
	Body  string
	Path  string // Absolute path of the source file
}

type noteFrontmatter struct {
	Title string `yaml:"title"`
}

// ScanDirs reads every markdown note under dirs. Unreadable directories
// are logged and skipped.
func ScanDirs(dirs []string, recursive bool) []Draft {
	var drafts []Draft
	for _, dir := range dirs {
		found, err := ScanDir(dir, recursive)
		if err != nil {
			logs.Logger.Printf("Warning: could not scan %s: %v", dir, err)
			continue
		}
		drafts = append(drafts, found...)
	}
	return drafts
}

// ScanDir reads the markdown notes in dir, descending into subdirectories
// only when recursive is set. Hidden directories are always skipped.
func ScanDir(dir string, recursive bool) ([]Draft, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var drafts []Draft
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if !recursive || strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		draft, ok := ParseNoteFile(path)
		if !ok {
			logs.Logger.Printf("Skipping %s: empty note", path)
			return nil
		}
		drafts = append(drafts, draft)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// ParseNoteFile parses a markdown file as a Draft. The title comes from
// frontmatter, then the first H1, then the filename. Returns false when
// the file cannot be read or has no body.
func ParseNoteFile(path string) (Draft, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, false
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	fmTitle, body := splitFrontmatter(content)
	h1, body := extractTitle(body)

	title := strings.TrimSpace(fmTitle)
	if title == "" {
		title = h1
	}
	if title == "" {
		title = titleFromFilename(filepath.Base(path))
	}

	bodyStr := strings.TrimSpace(string(body))
	if bodyStr == "" {
		return Draft{}, false
	}

	return Draft{Title: title, Body: bodyStr, Path: absPath}, true
}

// AddAll adds drafts to store, returning how many were added.
func AddAll(store *notes.Store, drafts []Draft) int {
	added := 0
	for _, d := range drafts {
		if _, err := store.Add(d.Title, d.Body); err != nil {
			logs.Logger.Printf("Skipping import of %s: %v", d.Path, err)
			continue
		}
		added++
	}
	return added
}

func splitFrontmatter(content []byte) (string, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return "", content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}

	if fmEnd == 0 {
		return "", content
	}

	body := bytes.Join(lines[fmEnd+1:], []byte("\n"))

	var fm noteFrontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return "", body
	}

	return fm.Title, body
}

// extractTitle returns the text of the first level-1 heading and the
// source with that heading removed.
func extractTitle(source []byte) (string, []byte) {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var heading *ast.Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			heading = h
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if heading == nil || heading.Lines().Len() == 0 {
		return "", source
	}

	title := strings.TrimSpace(headingText(heading, source))

	lines := heading.Lines()
	start := lineStart(source, lines.At(0).Start)
	end := lineEnd(source, lines.At(lines.Len()-1).Stop)

	// Setext headings carry an underline on the following line
	atx := bytes.HasPrefix(bytes.TrimLeft(source[start:], " "), []byte("#"))
	if next := lineEnd(source, end); !atx && next > end {
		underline := bytes.TrimSpace(source[end:next])
		if len(underline) > 0 && len(bytes.Trim(underline, "=")) == 0 {
			end = next
		}
	}

	rest := make([]byte, 0, len(source))
	rest = append(rest, source[:start]...)
	rest = append(rest, source[end:]...)
	return title, rest
}

func headingText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteString(headingText(c, source))
	}
	return b.String()
}

func lineStart(source []byte, pos int) int {
	if i := bytes.LastIndexByte(source[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// lineEnd returns the offset just past the newline that ends the line
// containing pos.
func lineEnd(source []byte, pos int) int {
	if pos >= len(source) {
		return len(source)
	}
	if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(source)
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)

	if name == "" {
		return "Note"
	}

	return name
}
