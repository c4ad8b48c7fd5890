package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkweon/txscreen/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with Korean characters should pass through unchanged.
	input := "거래일자;적요;입금액\n2025-03-02;이체 김철수;50000\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_EUCKR(t *testing.T) {
	// EUC-KR encoded "한글한글한글;CSV\n".
	// In EUC-KR: 한 = 0xC7D1, 글 = 0xB1DB
	euckrBytes := []byte{
		0xC7, 0xD1, 0xB1, 0xDB,
		0xC7, 0xD1, 0xB1, 0xDB,
		0xC7, 0xD1, 0xB1, 0xDB,
		';', 'C', 'S', 'V', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(euckrBytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "한글한글한글;CSV\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("거래일자;적요;입금액\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "거래일자;적요;입금액\n", string(got))
}
