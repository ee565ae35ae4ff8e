// Package export writes slide decks as PowerPoint files. The OOXML
// package is assembled by hand (pure Go, zero dependencies): a minimal
// presentation part tree plus one slide part per deck slide.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/repopitch/internal/domain"
)

// ContentType is the MIME type for .pptx downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// 16:9 slide surface in English Metric Units.
const (
	slideWidthEMU  = 12192000
	slideHeightEMU = 6858000
	emuPerInch     = 914400
)

// Exporter converts a deck into a PowerPoint package.
type Exporter struct {
	theme domain.Theme
}

// NewExporter creates an Exporter that styles slides after the given theme.
func NewExporter(theme domain.Theme) *Exporter {
	return &Exporter{theme: theme}
}

// Write serializes the deck as a .pptx package to w.
func (e *Exporter) Write(w io.Writer, deck domain.Deck) error {
	if len(deck) == 0 {
		return fmt.Errorf("cannot export an empty deck")
	}

	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML(len(deck))},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(len(deck))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(deck))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}
	for i, slide := range deck {
		n := i + 1
		parts = append(parts,
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/slide%d.xml", n),
				e.slideXML(slide),
			},
			struct{ name, content string }{
				fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n),
				slideRelsXML(slide),
			},
		)
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("failed to create package part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("failed to write package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return nil
}

// backgroundColor and textColor mirror the on-screen theming: the bold
// theme inverts to white-on-black, every other theme stays near-white.
func (e *Exporter) backgroundColor() string {
	if e.theme.Bold() {
		return "000000"
	}
	return "FDFDFD"
}

func (e *Exporter) textColor() string {
	if e.theme.Bold() {
		return "FFFFFF"
	}
	return "000000"
}

func (e *Exporter) slideXML(slide domain.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld>`)
	fmt.Fprintf(&b, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, e.backgroundColor())
	b.WriteString(`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	color := e.textColor()
	shapeID := 2

	writeBox := func(box textBox) {
		b.WriteString(box.xml(shapeID))
		shapeID++
	}

	writeBox(textBox{
		x: 0.5, y: 0.5, w: 12, h: 1,
		paragraphs: []paragraph{{runs: []run{{text: slide.Title, size: 3200, bold: true, color: color}}}},
	})

	if slide.Text != "" {
		writeBox(textBox{
			x: 0.5, y: 1.5, w: 12, h: 1,
			paragraphs: []paragraph{{runs: []run{{text: slide.Text, size: 1800, color: color}}}},
		})
	}

	if len(slide.Bullets) > 0 {
		paras := make([]paragraph, len(slide.Bullets))
		for i, bullet := range slide.Bullets {
			paras[i] = paragraph{
				bullet: true,
				runs:   []run{{text: bullet, size: 1800, color: color}},
			}
		}
		writeBox(textBox{x: 0.5, y: 2.5, w: 12, h: 2, paragraphs: paras})
	}

	if slide.Chart != nil {
		writeBox(textBox{
			x: 0.5, y: 4.5, w: 12, h: 1.5,
			paragraphs: chartParagraphs(slide.Chart, color),
		})
	}

	if slide.Media != nil && slide.Media.URL != "" {
		writeBox(textBox{
			x: 0.5, y: 2.5, w: 12, h: 1,
			paragraphs: []paragraph{{runs: []run{{text: "Demo Link:", size: 1800, color: color}}}},
		})
		writeBox(textBox{
			x: 0.5, y: 3.0, w: 12, h: 1,
			paragraphs: []paragraph{{runs: []run{{
				text:  slide.Media.URL,
				size:  1600,
				color: "0000FF",
				// Hyperlink relationship written by slideRelsXML.
				hyperlinkID: mediaRelID,
			}}}},
		})
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

// chartParagraphs renders chart data as text lines. Native OOXML chart
// parts need a rendering pipeline the export path does not carry, so the
// numbers travel as a readable table instead.
func chartParagraphs(chart *domain.Chart, color string) []paragraph {
	title := chart.Title
	if title == "" {
		title = "Chart Data"
	}
	paras := []paragraph{{runs: []run{{text: "Chart: " + title, size: 1600, bold: true, color: color}}}}
	if len(chart.Data.Datasets) == 0 {
		return paras
	}
	ds := chart.Data.Datasets[0]
	for i, label := range chart.Data.Labels {
		if i >= len(ds.Values) {
			break
		}
		paras = append(paras, paragraph{
			bullet: true,
			runs:   []run{{text: fmt.Sprintf("%s: %g", label, ds.Values[i]), size: 1400, color: color}},
		})
	}
	return paras
}

// mediaRelID is the relationship id reserved for a slide's external
// media hyperlink. rId1 always points at the slide layout.
const mediaRelID = "rId2"

type run struct {
	text        string
	size        int // hundredths of a point
	bold        bool
	color       string
	hyperlinkID string
}

type paragraph struct {
	bullet bool
	runs   []run
}

type textBox struct {
	x, y, w, h float64 // inches
	paragraphs []paragraph
}

func (tb textBox) xml(id int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, id)
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`,
		emu(tb.x), emu(tb.y), emu(tb.w), emu(tb.h))
	b.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range tb.paragraphs {
		b.WriteString(`<a:p>`)
		if p.bullet {
			b.WriteString(`<a:pPr marL="228600" indent="-228600"><a:buChar char="&#8226;"/></a:pPr>`)
		}
		for _, r := range p.runs {
			fmt.Fprintf(&b, `<a:r><a:rPr lang="en-US" sz="%d"`, r.size)
			if r.bold {
				b.WriteString(` b="1"`)
			}
			b.WriteString(`>`)
			fmt.Fprintf(&b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, r.color)
			if r.hyperlinkID != "" {
				fmt.Fprintf(&b, `<a:hlinkClick xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" r:id="%s"/>`, r.hyperlinkID)
			}
			fmt.Fprintf(&b, `</a:rPr><a:t>%s</a:t></a:r>`, escapeXML(r.text))
		}
		b.WriteString(`</a:p>`)
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

func emu(inches float64) int {
	return int(inches * emuPerInch)
}

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

func contentTypesXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

const rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/></Relationships>`

func presentationXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, 1+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, slideWidthEMU, slideHeightEMU)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRelsXML(slideCount int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 1+i, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func slideRelsXML(slide domain.Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>`)
	if slide.Media != nil && slide.Media.URL != "" {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="%s" TargetMode="External"/>`,
			mediaRelID, escapeXML(slide.Media.URL))
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

const slideMasterXML = xmlHeader + `<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:bg><p:bgPr><a:solidFill><a:schemeClr val="bg1"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/><p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst></p:sldMaster>`

const slideMasterRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/></Relationships>`

const slideLayoutXML = xmlHeader + `<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank"><p:cSld name="Blank"><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sldLayout>`

const slideLayoutRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/></Relationships>`

const themeXML = xmlHeader + `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme"><a:themeElements><a:clrScheme name="Office"><a:dk1><a:srgbClr val="000000"/></a:dk1><a:lt1><a:srgbClr val="FFFFFF"/></a:lt1><a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2><a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2><a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4><a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6><a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme><a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme><a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst><a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst><a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`
