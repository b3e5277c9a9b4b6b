package constants

import "testing"

func TestMapMIMEToKind(t *testing.T) {
	tests := []struct {
		name string
		mime string
		want FileKind
	}{
		{"pdf", "application/pdf", KindPDF},
		{"png", "image/png", KindImage},
		{"tiff", "image/tiff", KindImage},
		{"csv", "text/csv", KindCSV},
		{"tsv", "text/tab-separated-values", KindCSV},
		{"plain text", "text/plain", KindText},
		{"markdown", "text/markdown", KindText},
		{"octet stream", "application/octet-stream", KindUnknown},
		{"empty", "", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapMIMEToKind(tt.mime); got != tt.want {
				t.Errorf("MapMIMEToKind(%q) = %s, want %s", tt.mime, got, tt.want)
			}
		})
	}
}

func TestMapExtToKind(t *testing.T) {
	if got := MapExtToKind(".PDF"); got != KindPDF {
		t.Errorf("MapExtToKind(.PDF) = %s, want PDF", got)
	}
	if got := MapExtToKind("bin"); got != KindUnknown {
		t.Errorf("MapExtToKind(bin) = %s, want UNKNOWN", got)
	}
}
