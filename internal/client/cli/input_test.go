package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Name?\n> " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetDefaultText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetDefaultText(rdr("\n"), "City", "Austin", &out)
	require.NoError(t, err)
	require.Equal(t, "Austin", got)
	require.Contains(t, out.String(), "City [Austin]")

	got, err = GetDefaultText(rdr("Dallas\n"), "City", "Austin", &out)
	require.NoError(t, err)
	require.Equal(t, "Dallas", got)
}

func TestGetNumber(t *testing.T) {
	var out bytes.Buffer
	tests := []struct {
		input string
		def   float64
		want  float64
		err   bool
	}{
		{input: "1,250,000\n", want: 1250000},
		{input: "\n", def: 42, want: 42},
		{input: "\n", want: 0},
		{input: "lots\n", err: true},
	}
	for _, tt := range tests {
		got, err := GetNumber(rdr(tt.input), "Price", tt.def, &out)
		if tt.err {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestGetCount(t *testing.T) {
	var out bytes.Buffer
	tests := []struct {
		input string
		def   int
		want  int
		err   bool
	}{
		{input: "3\n", want: 3},
		{input: "\n", def: 2, want: 2},
		{input: "0\n", def: 2, want: 0},
		{input: "2.7\n", err: true},
		{input: "-1\n", err: true},
		{input: "two\n", err: true},
	}
	for _, tt := range tests {
		got, err := GetCount(rdr(tt.input), "Bedrooms", tt.def, &out)
		if tt.err {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}

func TestGetList(t *testing.T) {
	var out bytes.Buffer
	got, err := GetList(rdr(" a.jpg, ,b.png \n"), "Images", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg", "b.png"}, got)

	got, err = GetList(rdr("\n"), "Images", &out)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	require.Equal(t, "s3cret", string(pw))
	require.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Password")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false} {
		got, err := confirm(rdr(input), "Delete?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, input)
	}
}
