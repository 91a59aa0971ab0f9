package catalog

import (
	"errors"
	"sort"
	"testing"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

func TestFixQuality(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		want    string
		wantErr bool
	}{
		{
			name: "no fix",
			code: 0,
			want: "No Fix",
		},
		{
			name: "rtk fixed",
			code: 4,
			want: "RTK Fixed",
		},
		{
			name: "rtk float",
			code: 5,
			want: "RTK Float",
		},
		{
			name: "simulation",
			code: 8,
			want: "Simulation",
		},
		{
			name:    "beyond range",
			code:    9,
			wantErr: true,
		},
		{
			name:    "negative",
			code:    -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FixQuality(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("FixQuality(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("FixQuality(%d) error = %v, want ErrUnknownCode", tt.code, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("FixQuality(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestSignalQuality(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		want    string
		wantErr bool
	}{
		{
			name: "no signal",
			code: 0,
			want: "No Signal",
		},
		{
			name: "code and carrier lock",
			code: 5,
			want: "Code & Carrier Lock",
		},
		{
			name: "time lock",
			code: 6,
			want: "Code & Carrier Lock (Time)",
		},
		{
			name:    "beyond range",
			code:    7,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignalQuality(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("SignalQuality(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("SignalQuality(%d) error = %v, want ErrUnknownCode", tt.code, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("SignalQuality(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestUBXClass(t *testing.T) {
	tests := []struct {
		name    string
		id      byte
		want    string
		wantErr bool
	}{
		{
			name: "navigation",
			id:   0x01,
			want: "NAV",
		},
		{
			name: "configuration",
			id:   0x06,
			want: "CFG",
		},
		{
			name: "high nav rate",
			id:   0x28,
			want: "HNR",
		},
		{
			name:    "unknown class",
			id:      0x03,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UBXClass(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("UBXClass(0x%02X) error = %v, wantErr %v", tt.id, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("UBXClass(0x%02X) error = %v, want ErrUnknownCode", tt.id, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("UBXClass(0x%02X) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestNMEASentence(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{
			name: "gga",
			code: "GGA",
			want: "Global Positioning System Fix Data",
		},
		{
			name: "proprietary",
			code: "PUBX",
			want: "u-blox Proprietary",
		},
		{
			name:    "unknown sentence",
			code:    "XYZ",
			wantErr: true,
		},
		{
			name:    "lowercase not matched",
			code:    "gga",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NMEASentence(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("NMEASentence(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("NMEASentence(%q) error = %v, want ErrUnknownCode", tt.code, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("NMEASentence(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{
			name: "receiver not connected",
			code: "GNSS001",
			want: "GNSS receiver not connected",
		},
		{
			name: "database failure",
			code: "SYS002",
			want: "Database connection failed",
		},
		{
			name:    "unknown code",
			code:    "GNSS999",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ErrorMessage(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ErrorMessage(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("ErrorMessage(%q) error = %v, want ErrUnknownCode", tt.code, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ErrorMessage(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "rtk fixed",
			key:  "RTK_FIXED",
			want: "RTK fixed solution",
		},
		{
			name: "connecting",
			key:  "CONNECTING",
			want: "Connecting to GNSS receiver...",
		},
		{
			name:    "unknown key",
			key:     "REBOOTING",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StatusMessage(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("StatusMessage(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("StatusMessage(%q) error = %v, want ErrUnknownCode", tt.key, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("StatusMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestUIColor(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{
			name:  "primary",
			token: "primary",
			want:  "#0066cc",
		},
		{
			name:  "dark",
			token: "dark",
			want:  "#1a1a2e",
		},
		{
			name:    "unknown token",
			token:   "magenta",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UIColor(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("UIColor(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnknownCode) {
					t.Errorf("UIColor(%q) error = %v, want ErrUnknownCode", tt.token, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("UIColor(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestResponseEnvelopes(t *testing.T) {
	success := SuccessResponse()
	if success.Status != "success" || success.Code != 200 {
		t.Errorf("SuccessResponse() = %+v, want status success code 200", success)
	}

	failure := ErrorResponse()
	if failure.Status != "error" || failure.Code != 400 {
		t.Errorf("ErrorResponse() = %+v, want status error code 400", failure)
	}

	// Envelopes are value copies, mutating one must not leak into later calls.
	success.Code = 999
	if again := SuccessResponse(); again.Code != 200 {
		t.Errorf("SuccessResponse() after mutation = %+v, want code 200", again)
	}
}

func TestEnumerationOrder(t *testing.T) {
	codes := FixQualityCodes()
	if len(codes) != 9 {
		t.Errorf("FixQualityCodes() length = %d, want 9", len(codes))
	}
	if !sort.IntsAreSorted(codes) {
		t.Errorf("FixQualityCodes() not sorted: %v", codes)
	}

	if got := len(SignalQualityCodes()); got != 7 {
		t.Errorf("SignalQualityCodes() length = %d, want 7", got)
	}

	ids := UBXClassIDs()
	if len(ids) != 12 {
		t.Errorf("UBXClassIDs() length = %d, want 12", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("UBXClassIDs() not sorted: %v", ids)
			break
		}
	}

	if got := len(NMEASentenceCodes()); got != 8 {
		t.Errorf("NMEASentenceCodes() length = %d, want 8", got)
	}
	if got := len(ErrorCodes()); got != 8 {
		t.Errorf("ErrorCodes() length = %d, want 8", got)
	}
	if got := len(StatusKeys()); got != 8 {
		t.Errorf("StatusKeys() length = %d, want 8", got)
	}

	tokens := UIColorTokens()
	if len(tokens) != 9 {
		t.Errorf("UIColorTokens() length = %d, want 9", len(tokens))
	}
	if !sort.StringsAreSorted(tokens) {
		t.Errorf("UIColorTokens() not sorted: %v", tokens)
	}
}
