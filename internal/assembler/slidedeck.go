package assembler

import (
	"fmt"
	"strings"

	"github.com/docforge/docforge-backend/internal/types"
)

// Fixed 10 x 7.5 inch canvas for every slide.
const (
	slideWidthEMU  = 9144000
	slideHeightEMU = 6858000
)

type slideLayoutKind int

const (
	// layoutTitle is the opening-slide template: centered title plus an
	// optional subtitle placeholder.
	layoutTitle slideLayoutKind = iota
	// layoutTitleAndBody is the content-slide template: title plus a
	// body placeholder.
	layoutTitleAndBody
)

type slide struct {
	layout   slideLayoutKind
	title    string
	subtitle string
	body     []string
}

// RenderSlideDeck builds a .pptx package from the ordered sections. The
// first slide is always a synthetic title slide (document title + topic
// subtitle). The section at orderIndex 0 is skipped even when it carries
// content: outline suggestion guarantees a slide deck's first entry is an
// opening/title entry, and this renderer relies on that contract rather
// than inspecting the entry itself. Every remaining section becomes one
// title+body slide whose lines have their leading bullet markers
// stripped. Pure function of its inputs, byte-identical across
// invocations.
func RenderSlideDeck(title, topic string, sections []*types.Section) ([]byte, error) {
	slides := []slide{{layout: layoutTitle, title: title, subtitle: topic}}

	for _, section := range sections {
		if section.OrderIndex == 0 {
			continue
		}
		s := slide{layout: layoutTitleAndBody, title: section.Title}
		if section.Content != nil {
			for _, line := range ContentLines(*section.Content) {
				line = StripBulletMarkers(line)
				if line == "" {
					continue
				}
				s.body = append(s.body, line)
			}
		} else {
			s.body = []string{noContentText}
		}
		slides = append(slides, s)
	}

	parts := []part{
		{"[Content_Types].xml", pptxContentTypes(len(slides))},
		{"_rels/.rels", pptxRootRels},
		{"ppt/presentation.xml", presentationXML(len(slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRels(len(slides))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", titleLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels},
		{"ppt/slideLayouts/slideLayout2.xml", bodyLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", slideLayoutRels},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, s := range slides {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(s.layout)},
		)
	}
	return writePackage(parts)
}

const pptxNamespaces = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

func pptxContentTypes(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

var pptxRootRels = relsXML(
	relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument", "ppt/presentation.xml"),
)

func presentationXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pptxNamespaces + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, 1+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, slideWidthEMU, slideHeightEMU)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, slideHeightEMU, slideWidthEMU)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRels(slideCount int) string {
	rels := []string{
		relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster", "slideMasters/slideMaster1.xml"),
	}
	for i := 1; i <= slideCount; i++ {
		rels = append(rels, relationship(
			fmt.Sprintf("rId%d", 1+i),
			"http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide",
			fmt.Sprintf("slides/slide%d.xml", i),
		))
	}
	return relsXML(rels...)
}

const emptySpTreeHeader = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + pptxNamespaces + `>` +
	`<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg>` +
	`<p:spTree>` + emptySpTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/><p:sldLayoutId id="2147483650" r:id="rId2"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

var slideMasterRels = relsXML(
	relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout", "../slideLayouts/slideLayout1.xml"),
	relationship("rId2", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout", "../slideLayouts/slideLayout2.xml"),
	relationship("rId3", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme", "../theme/theme1.xml"),
)

var slideLayoutRels = relsXML(
	relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster", "../slideMasters/slideMaster1.xml"),
)

var titleLayoutXML = xmlHeader +
	`<p:sldLayout ` + pptxNamespaces + ` type="title">` +
	`<p:cSld><p:spTree>` + emptySpTreeHeader +
	layoutPlaceholder(2, "Title 1", `<p:ph type="ctrTitle"/>`) +
	layoutPlaceholder(3, "Subtitle 2", `<p:ph type="subTitle" idx="1"/>`) +
	`</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

var bodyLayoutXML = xmlHeader +
	`<p:sldLayout ` + pptxNamespaces + ` type="obj">` +
	`<p:cSld><p:spTree>` + emptySpTreeHeader +
	layoutPlaceholder(2, "Title 1", `<p:ph type="title"/>`) +
	layoutPlaceholder(3, "Content Placeholder 2", `<p:ph type="body" idx="1"/>`) +
	`</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

func layoutPlaceholder(id int, name, ph string) string {
	return fmt.Sprintf(
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name=%q/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>%s</p:nvPr></p:nvSpPr>`+
			`<p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr/></a:p></p:txBody></p:sp>`,
		id, name, ph)
}

func slideRels(layout slideLayoutKind) string {
	target := "../slideLayouts/slideLayout2.xml"
	if layout == layoutTitle {
		target = "../slideLayouts/slideLayout1.xml"
	}
	return relsXML(
		relationship("rId1", "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout", target),
	)
}

func slideXML(s slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pptxNamespaces + `>`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(emptySpTreeHeader)

	titlePh := `<p:ph type="title"/>`
	if s.layout == layoutTitle {
		titlePh = `<p:ph type="ctrTitle"/>`
	}
	b.WriteString(textShape(2, "Title 1", titlePh, []string{s.title}))

	switch s.layout {
	case layoutTitle:
		// The title template carries a subtitle placeholder; when a
		// template lacks one the subtitle is simply omitted.
		if s.subtitle != "" {
			b.WriteString(textShape(3, "Subtitle 2", `<p:ph type="subTitle" idx="1"/>`, []string{s.subtitle}))
		}
	case layoutTitleAndBody:
		// Body population is best effort: no body lines, no body shape.
		if len(s.body) > 0 {
			b.WriteString(textShape(3, "Content Placeholder 2", `<p:ph type="body" idx="1"/>`, s.body))
		}
	}

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

// textShape emits one placeholder shape with each line as its own
// paragraph at indent level 0.
func textShape(id int, name, ph string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<p:sp><p:nvSpPr><p:cNvPr id="%d" name=%q/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>%s</p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:bodyPr/><a:lstStyle/>`,
		id, name, ph)
	for _, line := range lines {
		b.WriteString(`<a:p><a:r><a:t>` + esc(line) + `</a:t></a:r></a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

const themeXML = xmlHeader +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst>` +
	`<a:lnStyleLst>` +
	`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`</a:lnStyleLst>` +
	`<a:effectStyleLst>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle>` +
	`</a:effectStyleLst>` +
	`<a:bgFillStyleLst>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`
