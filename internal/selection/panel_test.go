package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanelLifecycle(t *testing.T) {
	t.Parallel()

	p := NewPanel(DefaultLimits())
	require.False(t, p.CanSubmit())
	require.Empty(t, p.Err())

	_, err := p.Finalize()
	require.ErrorIs(t, err, ErrNothingToSubmit)

	require.NoError(t, p.Submit([]File{pdf("a.pdf", 1), jpeg("b.jpg", 2), pdf("c.pdf", 3)}))
	require.True(t, p.CanSubmit())
	require.InDelta(t, 30.0, p.CapacityRatio(), 1e-9)

	err = p.Submit([]File{{Name: "x.gif", Size: 1, MIMEType: "image/gif"}})
	require.ErrorIs(t, err, ErrTypeNotAllowed)
	require.Equal(t, "Only PDF and JPEG files are allowed.", p.Err())
	require.Equal(t, 3, p.Len())

	require.True(t, p.RemoveAt(1))
	require.Equal(t, []string{"a.pdf", "c.pdf"}, names(p.Files()))
	require.NotEmpty(t, p.Err(), "removal leaves the error alone")
	require.False(t, p.RemoveAt(5))

	files, err := p.Finalize()
	require.NoError(t, err)
	files[0].Name = "mutated"
	require.Equal(t, "a.pdf", p.Files()[0].Name)
}
