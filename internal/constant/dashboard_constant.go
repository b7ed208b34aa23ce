package constant

// Dataset columns. "paassed_senate" is spelled the way the source file spells it.
const (
	ColumnCongress                   = "congress"
	ColumnIntroBills                 = "Intro_bills"
	ColumnPassedHouse                = "passed_house"
	ColumnPassedSenate               = "paassed_senate"
	ColumnEnactedSignedByPres        = "enacted_signed_by_pres"
	ColumnEnactedIncludedInOtherBill = "enacted_included_in_other_bill"

	// Referenced by the government-configuration slider; the dataset has neither.
	ColumnCongressionalTerm = "congressional_term"
	ColumnSplitGov          = "Split_Gov"
)

// FeatureColumns are the bill-stage counters selectable in the feature dropdown.
var FeatureColumns = []string{
	ColumnIntroBills,
	ColumnPassedHouse,
	ColumnPassedSenate,
	ColumnEnactedSignedByPres,
	ColumnEnactedIncludedInOtherBill,
}

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = append([]string{ColumnCongress}, FeatureColumns...)

const FeatureNone = "None"

// Component ids.
const (
	IDFirstModel         = "first-model"
	IDGradientScheme     = "gradient-scheme"
	IDCrossfilterFeature = "crossfilter-feature"
	IDScatterPlot        = "scatter-plot"
	IDPointPlot          = "point-plot"
	IDGraphWithSlider    = "graph-with-slider"
	IDCongressSlider     = "congress-slider"
)

// Component properties.
const (
	PropValue     = "value"
	PropFigure    = "figure"
	PropHoverData = "hoverData"
)

// HoverIndexKey is the key the stage chart reads from the first hovered point.
const HoverIndexKey = "billspassed"

const (
	DashboardBackground = "rgb(17, 17, 17)"
	ChartTheme          = "dark"
	ScatterHeight       = 650
	PointPlotHeight     = 225
	ScatterOpacity      = 0.8
	DefaultMarkerSize   = 8
	MaxMarkerSize       = 20
	DefaultMarkerColor  = "#636efa"
	IntroducedColor     = "#c178f6"
	PassedColor         = "#89efbd"
)

const CallbackTopic = "dashboard.callback"
