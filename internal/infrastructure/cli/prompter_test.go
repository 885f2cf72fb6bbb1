package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterReadsLines(t *testing.T) {
	var out bytes.Buffer
	p := newReaderPrompter(strings.NewReader("amina\nsecret\n"), &out)

	user, err := p.Ask("Username")
	require.NoError(t, err)
	pass, err := p.Secret("Password")
	require.NoError(t, err)

	assert.Equal(t, "amina", user)
	assert.Equal(t, "secret", pass)
	assert.Equal(t, "Username: Password: ", out.String())
}

func TestPrompterAcceptsFinalLineWithoutNewline(t *testing.T) {
	p := newReaderPrompter(strings.NewReader("pw"), &bytes.Buffer{})
	got, err := p.Secret("Password")
	require.NoError(t, err)
	assert.Equal(t, "pw", got)
}

func TestPrompterEOF(t *testing.T) {
	p := newReaderPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.Ask("Username")
	assert.ErrorIs(t, err, ErrNoInput)
}
