package ssml

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Parsing the rendered form of a parsed tree must reproduce the tree
// exactly. Inputs here all have non-empty roots; a childless root renders in
// self-closing form, which the grammar rejects at top level.
func TestRoundTrip_Structural(t *testing.T) {
	inputs := []string{
		"<speak>hello</speak>",
		"<speak>a &amp; b &lt; c &gt; d</speak>",
		`<speak><break time="1s"/>pause</speak>`,
		`<speak rate="fast" pitch="low">x</speak>`,
		`<speak a="1" b="2" a="3">dup</speak>`,
		"<speak><p><s>deeply</s> nested</p></speak>",
		`<speak><voice name="en-GB">mixed <break/> content</voice></speak>`,
	}
	opts := cmp.AllowUnexported(Attributes{})
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			require.NoError(t, err)

			second, err := Parse(Render(first))
			require.NoError(t, err)

			if diff := cmp.Diff(first, second, opts); diff != "" {
				t.Errorf("tree changed across render/parse round trip (-first +second):\n%s", diff)
			}
			require.True(t, first.Equal(second))
		})
	}
}

// Canonical output is a fixed point: rendering the re-parsed tree gives the
// same bytes.
func TestRoundTrip_CanonicalFixedPoint(t *testing.T) {
	messy := `<speak  lang = "en" ><p >one</p ><break time = "1s" /></speak>`
	root, err := Parse(messy)
	require.NoError(t, err)

	canonical := Render(root)
	require.Equal(t, `<speak lang="en"><p>one</p><break time="1s"/></speak>`, canonical)

	again, err := Parse(canonical)
	require.NoError(t, err)
	require.Equal(t, canonical, Render(again))
}
