package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	th := Default()

	assert.True(t, th.Slideshow.Enabled)
	assert.Len(t, th.Slideshow.Slides, 3)
	for _, slide := range th.Slideshow.Slides {
		assert.NotEmpty(t, slide.Image)
		assert.Empty(t, slide.Label, "slots use the shared localized label by default")
	}
	assert.Equal(t, 4, th.Columns.Preface)
	assert.Equal(t, 3, th.Columns.Footer)
	assert.False(t, th.Footer.ShowCredit)
}

func TestColumnClass(t *testing.T) {
	assert.Equal(t, "col-sm-12", ColumnClass(12))
	assert.Equal(t, "col-sm-6", ColumnClass(6))
	// Widths are substituted verbatim, no range enforcement.
	assert.Equal(t, "col-sm-0", ColumnClass(0))
	assert.Equal(t, "col-sm-99", ColumnClass(99))
}
