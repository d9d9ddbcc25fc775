package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DocxText returns the paragraphs of a Word document joined with newlines.
func DocxText(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphs(doc.Editable().GetContent())
}

// paragraphs walks WordprocessingML and collects the text runs of each w:p.
// Tabs and breaks count only inside a run (w:r).
func paragraphs(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		out    []string
		cur    strings.Builder
		inText bool
		inPara bool
		inRun  bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				cur.Reset()
			case "r":
				inRun = true
			case "t":
				inText = true
			case "tab":
				// w:tab under w:pPr/w:tabs is a tab stop, not text.
				if inPara && inRun {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if inPara && inRun {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				inRun = false
			case "t":
				inText = false
			case "p":
				out = append(out, cur.String())
				inPara = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return strings.Join(out, "\n"), nil
}
