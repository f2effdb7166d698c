package layoutcodec_test

import (
	"strings"
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/layoutcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *entity.LayoutState {
	return &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Widgets: []entity.WidgetState{
			{Name: "editor"},
			{Name: "console", AutoHide: entity.DockBottom},
			{Name: "outline", Features: []entity.FeatureOverride{{Feature: entity.FeatureClosable, Enabled: false}}},
			{Name: "search", Closed: true},
			{Name: "preview"},
		},
		Main: entity.ContainerState{Root: &entity.NodeState{
			Orientation: entity.OrientationHorizontal,
			Sizes:       []float64{0.25, 0.75},
			Children: []*entity.NodeState{
				{Area: &entity.AreaState{CurrentIndex: 0, Widgets: []string{"outline"}}},
				{
					Orientation: entity.OrientationVertical,
					Sizes:       []float64{0.7, 0.3},
					Children: []*entity.NodeState{
						{Area: &entity.AreaState{CurrentIndex: 0, Widgets: []string{"editor"}}},
						{Area: &entity.AreaState{CurrentIndex: 0, Widgets: []string{"console"}}},
					},
				},
			},
		}},
		Floating: []entity.FloatingState{{
			Title:     "Preview",
			Geometry:  entity.Rect{X: 120, Y: 80, W: 400, H: 300},
			Container: entity.ContainerState{Root: &entity.NodeState{Area: &entity.AreaState{CurrentIndex: 0, Widgets: []string{"preview"}}}},
		}},
		ActiveWidget: "editor",
	}
}

func TestCodecs_RoundTripPreservesState(t *testing.T) {
	for _, format := range layoutcodec.Formats() {
		t.Run(format, func(t *testing.T) {
			codec, err := layoutcodec.New(format, true)
			require.NoError(t, err)
			assert.Equal(t, format, codec.Format())

			want := sampleState()
			data, err := codec.Encode(want)
			require.NoError(t, err)

			got, err := codec.Decode(data)
			require.NoError(t, err)
			require.NoError(t, got.Validate())

			again, err := codec.Encode(got)
			require.NoError(t, err)
			assert.Equal(t, string(data), string(again))
			assert.Equal(t, want.ActiveWidget, got.ActiveWidget)
			assert.Equal(t, want.Floating[0].Geometry, got.Floating[0].Geometry)
			assert.Equal(t, want.Main.Root.Children[1].Sizes, got.Main.Root.Children[1].Sizes)
			assert.Equal(t, entity.DockBottom, got.Widgets[1].AutoHide)
		})
	}
}

func TestXMLCodec_DocumentShape(t *testing.T) {
	data, err := layoutcodec.NewXMLCodec(true).Encode(sampleState())
	require.NoError(t, err)

	doc := string(data)
	assert.Contains(t, doc, `<DockingState Version="1">`)
	assert.Contains(t, doc, `<Splitter Orientation="horizontal" Sizes="0.25 0.75">`)
	assert.Contains(t, doc, `<Area Current="0">`)
	assert.Contains(t, doc, `<Widget Name="console" Closed="false" AutoHide="bottom">`)
	assert.Contains(t, doc, `<Floating Title="Preview" X="120" Y="80" Width="400" Height="300">`)
}

func TestXMLCodec_TruncatedDocumentIsMalformed(t *testing.T) {
	data, err := layoutcodec.NewXMLCodec(false).Encode(sampleState())
	require.NoError(t, err)

	_, err = layoutcodec.NewXMLCodec(false).Decode(data[:len(data)/2])
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}

func TestXMLCodec_RejectsUnknownElements(t *testing.T) {
	doc := `<DockingState Version="1"><Container><Tabs/></Container></DockingState>`

	_, err := layoutcodec.NewXMLCodec(false).Decode([]byte(doc))
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}

func TestXMLCodec_RejectsBadOrientation(t *testing.T) {
	doc := `<DockingState Version="1"><Container><Splitter Orientation="diagonal"/></Container></DockingState>`

	_, err := layoutcodec.NewXMLCodec(false).Decode([]byte(doc))
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}

func TestJSONCodec_RejectsUnknownFields(t *testing.T) {
	_, err := layoutcodec.NewJSONCodec(false).Decode([]byte(`{"version":1,"panes":[]}`))
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}

func TestConvert_XMLToYAML(t *testing.T) {
	xmlData, err := layoutcodec.NewXMLCodec(false).Encode(sampleState())
	require.NoError(t, err)

	out, err := layoutcodec.Convert(xmlData, layoutcodec.NewXMLCodec(false), layoutcodec.NewYAMLCodec())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "version: 1"))

	back, err := layoutcodec.NewYAMLCodec().Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"outline"}, back.Main.Root.Children[0].Area.Widgets)
}

func TestNewAndFormatDetection(t *testing.T) {
	_, err := layoutcodec.New("toml", false)
	assert.Error(t, err)

	codec, err := layoutcodec.New("YML", false)
	require.NoError(t, err)
	assert.Equal(t, layoutcodec.FormatYAML, codec.Format())

	format, ok := layoutcodec.FormatFromPath("/tmp/layout.json")
	assert.True(t, ok)
	assert.Equal(t, layoutcodec.FormatJSON, format)

	_, ok = layoutcodec.FormatFromPath("/tmp/layout.txt")
	assert.False(t, ok)

	assert.Equal(t, layoutcodec.FormatXML, layoutcodec.Sniff([]byte("  <?xml version")))
	assert.Equal(t, layoutcodec.FormatJSON, layoutcodec.Sniff([]byte("{}")))
	assert.Equal(t, layoutcodec.FormatYAML, layoutcodec.Sniff([]byte("version: 1")))
}

func TestAutoCodec_DecodesAnyFormat(t *testing.T) {
	auto := layoutcodec.NewAutoCodec(layoutcodec.NewYAMLCodec(), true)
	assert.Equal(t, layoutcodec.FormatYAML, auto.Format())

	for _, format := range layoutcodec.Formats() {
		codec, err := layoutcodec.New(format, false)
		require.NoError(t, err)
		blob, err := codec.Encode(sampleState())
		require.NoError(t, err)

		got, err := auto.Decode(blob)
		require.NoError(t, err, format)
		again, err := codec.Encode(got)
		require.NoError(t, err)
		assert.Equal(t, string(blob), string(again), format)
	}

	out, err := auto.Encode(sampleState())
	require.NoError(t, err)
	assert.Equal(t, layoutcodec.FormatYAML, layoutcodec.Sniff(out))

	_, err = auto.Decode([]byte("<DockingState"))
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}
