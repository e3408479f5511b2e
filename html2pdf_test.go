package report

import (
	"strings"
	"testing"
)

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{
			name:       "nil uses a4 portrait defaults",
			opts:       nil,
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1.0,
		},
		{
			name:       "letter portrait",
			opts:       &pdfOptions{Page: &PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.5}},
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 0.5,
		},
		{
			name:       "legal landscape swaps dimensions",
			opts:       &pdfOptions{Page: &PageSettings{Size: "legal", Orientation: "landscape", Margin: 1}},
			wantWidth:  14,
			wantHeight: 8.5,
			wantMargin: 1,
		},
		{
			name:       "uppercase size accepted",
			opts:       &pdfOptions{Page: &PageSettings{Size: "A4", Orientation: "Portrait", Margin: 1}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1,
		},
		{
			name:       "unknown size falls back to a4",
			opts:       &pdfOptions{Page: &PageSettings{Size: "poster", Orientation: "portrait", Margin: 1}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1,
		},
		{
			name:       "zero margin falls back to default",
			opts:       &pdfOptions{Page: &PageSettings{Size: "a4", Orientation: "portrait"}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 1.0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)

			if *got.PaperWidth != tt.wantWidth {
				t.Errorf("PaperWidth = %v, want %v", *got.PaperWidth, tt.wantWidth)
			}
			if *got.PaperHeight != tt.wantHeight {
				t.Errorf("PaperHeight = %v, want %v", *got.PaperHeight, tt.wantHeight)
			}
			if *got.MarginTop != tt.wantMargin {
				t.Errorf("MarginTop = %v, want %v", *got.MarginTop, tt.wantMargin)
			}
			if !got.PrintBackground {
				t.Error("PrintBackground should always be set")
			}
		})
	}
}

func TestBuildPDFOptionsFooter(t *testing.T) {
	t.Parallel()

	t.Run("no footer", func(t *testing.T) {
		t.Parallel()
		got := buildPDFOptions(&pdfOptions{})
		if got.DisplayHeaderFooter {
			t.Error("header/footer enabled without a footer config")
		}
	})

	t.Run("footer with page numbers and title", func(t *testing.T) {
		t.Parallel()
		got := buildPDFOptions(&pdfOptions{
			Footer:      &Footer{ShowPageNumber: true},
			HeaderTitle: "County Fiscal Report",
		})
		if !got.DisplayHeaderFooter {
			t.Fatal("DisplayHeaderFooter not enabled")
		}
		if !strings.Contains(got.HeaderTemplate, "County Fiscal Report") {
			t.Errorf("header template missing title: %q", got.HeaderTemplate)
		}
		if !strings.Contains(got.FooterTemplate, `class="pageNumber"`) {
			t.Errorf("footer template missing page number: %q", got.FooterTemplate)
		}
		if !strings.Contains(got.FooterTemplate, `class="totalPages"`) {
			t.Errorf("footer template missing total pages: %q", got.FooterTemplate)
		}
	})

	t.Run("footer without page numbers", func(t *testing.T) {
		t.Parallel()
		got := buildPDFOptions(&pdfOptions{Footer: &Footer{}})
		if !got.DisplayHeaderFooter {
			t.Fatal("DisplayHeaderFooter not enabled")
		}
		if got.FooterTemplate != "<span></span>" {
			t.Errorf("FooterTemplate = %q, want empty span", got.FooterTemplate)
		}
	})
}

func TestBuildHeaderTemplate(t *testing.T) {
	t.Parallel()

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		if got := buildHeaderTemplate(""); got != "<span></span>" {
			t.Errorf("buildHeaderTemplate(\"\") = %q", got)
		}
	})

	t.Run("title escaped", func(t *testing.T) {
		t.Parallel()
		got := buildHeaderTemplate(`Budget <Draft> & "Final"`)
		if strings.Contains(got, "<Draft>") {
			t.Error("title not HTML-escaped")
		}
		if !strings.Contains(got, "Budget &lt;Draft&gt; &amp; &#34;Final&#34;") {
			t.Errorf("escaped title missing from template: %q", got)
		}
	})

	t.Run("serif font", func(t *testing.T) {
		t.Parallel()
		if got := buildHeaderTemplate("x"); !strings.Contains(got, "Georgia") {
			t.Errorf("header template missing serif font: %q", got)
		}
	})
}
