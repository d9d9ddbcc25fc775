package document

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:pPr><w:pStyle w:val="Title"/></w:pPr><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t xml:space="preserve">Skills: </w:t></w:r><w:r><w:t>Go</w:t></w:r><w:r><w:tab/><w:t>Kubernetes</w:t></w:r></w:p>
<w:p><w:r><w:t>line one</w:t><w:br/><w:t>line two</w:t></w:r></w:p>
</w:body>
</w:document>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

func buildDocx(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractor_Supports(t *testing.T) {
	e := NewExtractor(0)

	assert.True(t, e.Supports("cv.pdf"))
	assert.True(t, e.Supports("CV.PDF"))
	assert.True(t, e.Supports("cv.docx"))
	assert.True(t, e.Supports("cv.doc"))
	assert.False(t, e.Supports("cv.txt"))
	assert.False(t, e.Supports("cv"))
	assert.False(t, e.Supports(""))
}

func TestExtractor_UnsupportedType(t *testing.T) {
	_, err := NewExtractor(0).Extract(context.Background(), "resume.txt", strings.NewReader("Go developer"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExtractor_Docx(t *testing.T) {
	text, err := NewExtractor(0).Extract(context.Background(), "resume.docx", bytes.NewReader(buildDocx(t)))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nSkills: Go\tKubernetes\nline one\nline two", text)
}

func TestExtractor_DocRoutedToWordReader(t *testing.T) {
	text, err := NewExtractor(0).Extract(context.Background(), "resume.doc", bytes.NewReader(buildDocx(t)))
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")

	_, err = NewExtractor(0).Extract(context.Background(), "legacy.doc", strings.NewReader("\xd0\xcf\x11\xe0 binary"))
	assert.Error(t, err)
}

func TestExtractor_CorruptPDF(t *testing.T) {
	_, err := NewExtractor(0).Extract(context.Background(), "resume.pdf", strings.NewReader("not a pdf"))
	assert.Error(t, err)
}

func TestExtractor_SizeLimit(t *testing.T) {
	_, err := NewExtractor(4).Extract(context.Background(), "resume.pdf", strings.NewReader("0123456789"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestExtractor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor(0).Extract(ctx, "resume.pdf", strings.NewReader(""))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParagraphs_TabStopsAreNotText(t *testing.T) {
	const body = `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9360"/></w:tabs></w:pPr>` +
		`<w:r><w:t>Experience</w:t></w:r><w:r><w:tab/><w:t>2019</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := paragraphs(body)
	require.NoError(t, err)
	assert.Equal(t, "Experience\t2019", text)
}

func TestParagraphs_MalformedXML(t *testing.T) {
	_, err := paragraphs("<w:p><w:t>open")
	assert.Error(t, err)
}
