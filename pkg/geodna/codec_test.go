package geodna

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const wellington = "etctttagatagtgacagtcta"

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		precision int
		want      string
	}{
		{
			name:      "Wellington",
			lat:       -41.288889,
			lon:       174.777222,
			precision: DefaultPrecision,
			want:      wellington,
		},
		{
			name:      "Wellington short",
			lat:       -41.288889,
			lon:       174.777222,
			precision: 8,
			want:      "etctttag",
		},
		{
			name:      "Origin ties round down",
			lat:       0,
			lon:       0,
			precision: 5,
			want:      "egaaa",
		},
		{
			name:      "Western hemisphere",
			lat:       10,
			lon:       -0.0001,
			precision: 4,
			want:      "wctt",
		},
		{
			name:      "Precision one",
			lat:       -41.288889,
			lon:       174.777222,
			precision: 1,
			want:      "e",
		},
		{
			name:      "Non-positive precision",
			lat:       -41.288889,
			lon:       -174.777222,
			precision: -3,
			want:      "w",
		},
		{
			name:      "Wrapped pole and antimeridian",
			lat:       90,
			lon:       180,
			precision: 3,
			want:      "wgg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.lat, tt.lon, tt.precision)
			if got != tt.want {
				t.Errorf("Encode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeRadians(t *testing.T) {
	got := EncodeRadians(radians(-41.288889), radians(174.777222), DefaultPrecision)
	if got != wellington {
		t.Errorf("EncodeRadians() = %v, want %v", got, wellington)
	}
}

func TestEncodeHemisphere(t *testing.T) {
	for lon := -540.0; lon <= 540.0; lon += 7.5 {
		_, n := Normalise(0, lon)
		code := Encode(12.5, lon, 6)
		want := byte('e')
		if n < 0 {
			want = 'w'
		}
		if code[0] != want {
			t.Errorf("Encode(12.5, %v)[0] = %c, want %c", lon, code[0], want)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, m, want float64
	}{
		{-10, 180, 170},
		{10, 180, 10},
		{370, 360, 10},
		{-360, 360, 0},
		{0, 180, 0},
	}

	for _, tt := range tests {
		if got := Mod(tt.x, tt.m); got != tt.want {
			t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.m, got, tt.want)
		}
	}
}

func TestNormalise(t *testing.T) {
	tests := []struct {
		name             string
		lat, lon         float64
		wantLat, wantLon float64
	}{
		{"In range", -41.5, 174.5, -41.5, 174.5},
		{"Over the pole", 100, 190, -80, -170},
		{"Upper bounds wrap", 90, 180, -90, -180},
		{"Negative wrap", -100, -190, 80, 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := Normalise(tt.lat, tt.lon)
			if lat != tt.wantLat || lon != tt.wantLon {
				t.Errorf("Normalise() = (%v, %v), want (%v, %v)", lat, lon, tt.wantLat, tt.wantLon)
			}
			if lat < -90 || lat >= 90 || lon < -180 || lon >= 180 {
				t.Errorf("Normalise() = (%v, %v) is out of range", lat, lon)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	lat, lon, err := Decode(wellington)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if math.Abs(lat-(-41.288889)) > 0.0001 {
		t.Errorf("Decode() lat = %v, want %v", lat, -41.288889)
	}
	if math.Abs(lon-174.777222) > 0.0001 {
		t.Errorf("Decode() lon = %v, want %v", lon, 174.777222)
	}

	rlat, rlon, err := DecodeRadians(wellington)
	if err != nil {
		t.Fatalf("DecodeRadians() error = %v", err)
	}
	if math.Abs(rlat-radians(lat)) > 1e-12 || math.Abs(rlon-radians(lon)) > 1e-12 {
		t.Errorf("DecodeRadians() = (%v, %v), want (%v, %v)", rlat, rlon, radians(lat), radians(lon))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		lat float64
		lon float64
	}{
		{37.7749, -122.4194},
		{40.7128, -74.0060},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{35.6762, 139.6503},
		{-89.9999, -179.9999},
		{89.9999, 179.9999},
		{0, 0},
	}

	for _, tc := range testCases {
		for _, precision := range []int{2, 5, 10, 16, 22, 30} {
			code := Encode(tc.lat, tc.lon, precision)
			decodedLat, decodedLon, err := Decode(code)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", code, err)
			}

			lat, lon := Normalise(tc.lat, tc.lon)
			tolerance := 180 / math.Pow(2, float64(precision)/2)
			if math.Abs(decodedLat-lat) > tolerance {
				t.Errorf("Round trip failed for lat at precision %d: original %v, decoded %v", precision, lat, decodedLat)
			}
			if math.Abs(decodedLon-lon) > tolerance {
				t.Errorf("Round trip failed for lon at precision %d: original %v, decoded %v", precision, lon, decodedLon)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"Valid", wellington, false},
		{"Hemisphere only", "w", false},
		{"Empty", "", true},
		{"Bad hemisphere", "ngat", true},
		{"Bad symbol", "egatx", true},
		{"Upper case", "eGAT", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate(%q) error = %v, want ErrInvalidInput", tt.code, err)
			}
		})
	}
}

func TestParentAndChildren(t *testing.T) {
	parent, err := Parent(wellington)
	if err != nil {
		t.Fatalf("Parent() error = %v", err)
	}
	if parent != wellington[:len(wellington)-1] {
		t.Errorf("Parent() = %v, want %v", parent, wellington[:len(wellington)-1])
	}

	children, err := Children(parent)
	if err != nil {
		t.Fatalf("Children() error = %v", err)
	}
	if len(children) != 4 {
		t.Fatalf("Children() returned %d codes, want 4", len(children))
	}
	found := false
	for _, child := range children {
		if !strings.HasPrefix(child, parent) || len(child) != len(parent)+1 {
			t.Errorf("child %q is not directly below %q", child, parent)
		}
		if child == wellington {
			found = true
		}
	}
	if !found {
		t.Errorf("Children(%q) = %v, missing %q", parent, children, wellington)
	}

	if _, err := Parent("e"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Parent(\"e\") error = %v, want ErrInvalidInput", err)
	}
}

func TestCellSize(t *testing.T) {
	lat, lon := CellSize(DefaultPrecision)
	box, err := BoundingBox(wellington)
	if err != nil {
		t.Fatal(err)
	}
	if lat != box.Lat.Span() || lon != box.Lon.Span() {
		t.Errorf("CellSize() = (%v, %v), want (%v, %v)", lat, lon, box.Lat.Span(), box.Lon.Span())
	}

	lat, lon = CellSize(0)
	if lat != 180 || lon != 180 {
		t.Errorf("CellSize(0) = (%v, %v), want (180, 180)", lat, lon)
	}
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Encode(-41.288889, 174.777222, DefaultPrecision)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode(wellington)
	}
}
