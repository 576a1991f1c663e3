package assembler

import (
	"strings"

	"github.com/docforge/docforge-backend/internal/types"
)

// noContentText stands in for sections that have never been generated.
const noContentText = "No content generated yet."

// RenderLongForm builds a .docx package from the ordered sections:
// centered document title, centered italic topic subtitle, then one
// first-level heading per section followed by its content lines as
// individual paragraphs. Lines keep their bullet markers verbatim; the
// long-form shape never converts them to list formatting. Pure function
// of its inputs, byte-identical across invocations.
func RenderLongForm(title, topic string, sections []*types.Section) ([]byte, error) {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	// Title block: centered heading, centered italic topic.
	b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Title"/><w:jc w:val="center"/></w:pPr>`)
	b.WriteString(run(title, false))
	b.WriteString(`</w:p>`)
	b.WriteString(`<w:p><w:pPr><w:jc w:val="center"/></w:pPr>`)
	b.WriteString(run(topic, true))
	b.WriteString(`</w:p>`)
	b.WriteString(emptyParagraph)

	for _, section := range sections {
		b.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>`)
		b.WriteString(run(section.Title, false))
		b.WriteString(`</w:p>`)

		if section.Content != nil {
			for _, line := range ContentLines(*section.Content) {
				b.WriteString(`<w:p>`)
				b.WriteString(run(line, false))
				b.WriteString(`</w:p>`)
			}
		} else {
			b.WriteString(`<w:p>`)
			b.WriteString(run(noContentText, false))
			b.WriteString(`</w:p>`)
		}
		// Trailing blank paragraph as a visual separator.
		b.WriteString(emptyParagraph)
	}

	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)

	return writePackage([]part{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/document.xml", b.String()},
		{"word/styles.xml", docxStyles},
	})
}

const emptyParagraph = `<w:p/>`

func run(text string, italic bool) string {
	rPr := ""
	if italic {
		rPr = `<w:rPr><w:i/></w:rPr>`
	}
	return `<w:r>` + rPr + `<w:t xml:space="preserve">` + esc(text) + `</w:t></w:r>`
}

const docxContentTypes = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

var docxRootRels = relsXML(
	relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument", "word/document.xml"),
)

var docxDocumentRels = relsXML(
	relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles", "styles.xml"),
)

const docxStyles = xmlHeader +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/>` +
	`<w:rPr><w:b/><w:sz w:val="56"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`</w:styles>`
