package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/yourusername/repopitch/internal/domain"
)

func exportDeck(t *testing.T, theme domain.Theme, deck domain.Deck) map[string]string {
	t.Helper()

	var buf bytes.Buffer
	if err := NewExporter(theme).Write(&buf, deck); err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("output is not a valid zip archive: %v", err)
	}

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open part %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read part %s: %v", f.Name, err)
		}
		parts[f.Name] = string(data)
	}
	return parts
}

func TestWritePackageStructure(t *testing.T) {
	deck := domain.Deck{
		{Title: "First"},
		{Title: "Second"},
	}
	parts := exportDeck(t, domain.Theme{}, deck)

	required := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/_rels/slide2.xml.rels",
	}
	for _, name := range required {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing package part %s", name)
		}
	}

	if !strings.Contains(parts["[Content_Types].xml"], "/ppt/slides/slide2.xml") {
		t.Error("content types do not cover slide 2")
	}
	if !strings.Contains(parts["ppt/presentation.xml"], `cx="12192000" cy="6858000"`) {
		t.Error("expected 16:9 slide size")
	}
}

func TestWriteSlideContent(t *testing.T) {
	deck := domain.Deck{
		{
			Title:   "Growth & Scale",
			Text:    "Body copy",
			Bullets: []string{"First point", "Second point"},
		},
	}
	parts := exportDeck(t, domain.Theme{}, deck)

	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, "Growth &amp; Scale") {
		t.Error("title missing or not XML-escaped")
	}
	if !strings.Contains(slide, `sz="3200" b="1"`) {
		t.Error("expected 32pt bold title run")
	}
	if !strings.Contains(slide, "Body copy") {
		t.Error("missing body text")
	}
	if !strings.Contains(slide, "First point") || !strings.Contains(slide, "Second point") {
		t.Error("missing bullet runs")
	}
	if !strings.Contains(slide, "a:buChar") {
		t.Error("bullets not rendered as bulleted paragraphs")
	}
}

func TestWriteThemeColors(t *testing.T) {
	deck := domain.Deck{{Title: "Only"}}

	bold := exportDeck(t, domain.Theme{Name: "bold"}, deck)
	if !strings.Contains(bold["ppt/slides/slide1.xml"], `<a:srgbClr val="000000"/></a:solidFill><a:effectLst/>`) {
		t.Error("bold theme should paint a black background")
	}
	if !strings.Contains(bold["ppt/slides/slide1.xml"], `val="FFFFFF"`) {
		t.Error("bold theme should use white text")
	}

	modern := exportDeck(t, domain.Theme{Name: "modern"}, deck)
	if !strings.Contains(modern["ppt/slides/slide1.xml"], `val="FDFDFD"`) {
		t.Error("non-bold themes should paint a near-white background")
	}
}

func TestWriteMediaHyperlink(t *testing.T) {
	url := "https://youtube.com/watch?v=abc&t=10"
	deck := domain.Deck{
		{Title: "Demo", Media: &domain.Media{Kind: domain.MediaVideo, URL: url}},
	}
	parts := exportDeck(t, domain.Theme{}, deck)

	rels := parts["ppt/slides/_rels/slide1.xml.rels"]
	if !strings.Contains(rels, `TargetMode="External"`) {
		t.Error("media hyperlink should be an external relationship")
	}
	if !strings.Contains(rels, "watch?v=abc&amp;t=10") {
		t.Error("media URL missing or not escaped in relationships")
	}
	if !strings.Contains(parts["ppt/slides/slide1.xml"], `a:hlinkClick`) {
		t.Error("media run is not hyperlinked")
	}
}

func TestWriteChartAsText(t *testing.T) {
	deck := domain.Deck{
		{
			Title: "Numbers",
			Chart: &domain.Chart{
				Type:  "bar",
				Title: "Revenue",
				Data: domain.ChartData{
					Labels: []string{"Jan", "Feb"},
					Datasets: []domain.Dataset{
						{Label: "Revenue", Values: []float64{100, 250}},
					},
				},
			},
		},
	}
	parts := exportDeck(t, domain.Theme{}, deck)

	slide := parts["ppt/slides/slide1.xml"]
	if !strings.Contains(slide, "Chart: Revenue") {
		t.Error("missing chart heading")
	}
	if !strings.Contains(slide, "Jan: 100") || !strings.Contains(slide, "Feb: 250") {
		t.Error("missing chart data rows")
	}
}

func TestWriteEmptyDeck(t *testing.T) {
	var buf bytes.Buffer
	if err := NewExporter(domain.Theme{}).Write(&buf, nil); err == nil {
		t.Fatal("expected an error for an empty deck")
	}
}
