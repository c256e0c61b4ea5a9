package scanner

import (
	"testing"
	"time"
)

func TestExtractTimestamp(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
		ok   bool
	}{
		{
			name: "bracketed day-first date",
			line: "[10/04/2025 | 12:34:56] CTunnelMgr: No tunnel found",
			want: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso with space",
			line: "2025-04-10 12:34:56 ERROR disk full",
			want: time.Date(2025, 4, 10, 12, 34, 56, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso with T",
			line: "2025-04-10T12:34:56Z something failed",
			want: time.Date(2025, 4, 10, 12, 34, 56, 0, time.UTC),
			ok:   true,
		},
		{
			name: "no timestamp",
			line: "ERROR disk full",
			ok:   false,
		},
		{
			name: "date-like garbage",
			line: "ratio 99/99/9999 reached",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTimestamp(tt.line)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractUUID(t *testing.T) {
	line := "Session UUID 1b4e28ba-2fa1-11d2-883f-0016d3cca427 was unregistered"
	if got := ExtractUUID(line); got != "1b4e28ba-2fa1-11d2-883f-0016d3cca427" {
		t.Errorf("got %q", got)
	}
	if got := ExtractUUID("no uuid here"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestExtractSessionID(t *testing.T) {
	if got := ExtractSessionID("closing session id: 4711 now"); got != "4711" {
		t.Errorf("got %q", got)
	}
	if got := ExtractSessionID("Session ID 42"); got != "42" {
		t.Errorf("case-insensitive token: got %q", got)
	}
	if got := ExtractSessionID("no session here"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
