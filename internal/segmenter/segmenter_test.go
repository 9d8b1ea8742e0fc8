package segmenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/segmenter"
)

func TestRegexpSegment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three terminators",
			text: "Cats are mammals. Dogs bark! Is the sky blue?",
			want: []string{"Cats are mammals.", "Dogs bark!", "Is the sky blue?"},
		},
		{
			name: "paragraphs and whitespace",
			text: "  First line.\n\n\tSecond paragraph starts here.  ",
			want: []string{"First line.", "Second paragraph starts here."},
		},
		{
			name: "abbreviations are boundaries",
			text: "Mr. Smith went home.",
			want: []string{"Mr.", "Smith went home."},
		},
		{
			name: "repeated terminators are dropped",
			text: "Wait... what?!",
			want: []string{"Wait.", "what?"},
		},
		{
			name: "trailing text without terminator is ignored",
			text: "Done. not finished",
			want: []string{"Done."},
		},
		{
			name: "no terminator",
			text: "hello world",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}
	seg := segmenter.NewRegexp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.text))
		})
	}
}

func TestPunktSegment(t *testing.T) {
	seg, err := segmenter.NewPunkt()
	require.NoError(t, err)

	got := seg.Segment("Mr. Smith went home. He was tired.")
	assert.Equal(t, []string{"Mr. Smith went home.", "He was tired."}, got)
	assert.Empty(t, seg.Segment("   "))
}

func TestNew(t *testing.T) {
	for kind, want := range map[string]string{
		"":                   segmenter.TypeRegexp,
		segmenter.TypeRegexp: segmenter.TypeRegexp,
		segmenter.TypePunkt:  segmenter.TypePunkt,
	} {
		seg, err := segmenter.New(kind)
		require.NoError(t, err)
		assert.Equal(t, want, seg.Name())
	}

	_, err := segmenter.New("nltk")
	assert.Error(t, err)
}
